package contracts

import (
	"context"
	"medicore-service/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	GetSummary(ctx context.Context) (*responses.DashboardSummary, error)
}
