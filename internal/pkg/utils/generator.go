package utils

import (
	"medicore-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

// GenerateEntityID returns the opaque unique id assigned to new records.
// Collision probability is treated as negligible.
func GenerateEntityID() string {
	return uuid.NewString()
}

func GenerateRequestID() string {
	return uuid.NewString()
}

// TodayDateStamp is the creation-date stamp format used by entity
// collections, date only.
func TodayDateStamp() string {
	return time.Now().Format(constvars.DateOnlyFormat)
}

// NowTimestamp is the creation timestamp used by user accounts.
func NowTimestamp() string {
	return time.Now().Format(time.RFC3339)
}
