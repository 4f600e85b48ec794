package controllers

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/exceptions"
	"medicore-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type MedicalRecordController struct {
	Log                  *zap.Logger
	MedicalRecordUsecase contracts.MedicalRecordUsecase
	RequestTimeout       time.Duration
}

var (
	medicalRecordControllerInstance *MedicalRecordController
	onceMedicalRecordController     sync.Once
)

func NewMedicalRecordController(logger *zap.Logger, medicalRecordUsecase contracts.MedicalRecordUsecase, requestTimeout time.Duration) *MedicalRecordController {
	onceMedicalRecordController.Do(func() {
		medicalRecordControllerInstance = &MedicalRecordController{
			Log:                  logger,
			MedicalRecordUsecase: medicalRecordUsecase,
			RequestTimeout:       requestTimeout,
		}
	})
	return medicalRecordControllerInstance
}

func (ctrl *MedicalRecordController) ListMedicalRecords(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get(constvars.QueryParamSearch)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	records, err := ctrl.MedicalRecordUsecase.ListMedicalRecords(ctx, search)
	if err != nil {
		ctrl.Log.Error("Failed to list medical records",
			zap.String(constvars.LoggingQueryKey, search),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicalRecordListSuccess, records)
}

func (ctrl *MedicalRecordController) CreateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateMedicalRecordRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	record, err := ctrl.MedicalRecordUsecase.CreateMedicalRecord(ctx, request)
	if err != nil {
		ctrl.Log.Error("Failed to create medical record",
			zap.String(constvars.LoggingResourceKey, constvars.ResourceMedicalRecord),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(w, err)
		return
	}

	ctrl.Log.Info("Medical record created",
		zap.String(constvars.LoggingEntityIDKey, record.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MedicalRecordCreatedSuccess, record)
}

func (ctrl *MedicalRecordController) UpdateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, constvars.URLParamID)

	request := new(requests.UpdateMedicalRecordRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	record, err := ctrl.MedicalRecordUsecase.UpdateMedicalRecord(ctx, recordID, request)
	if err != nil {
		ctrl.Log.Error("Failed to update medical record",
			zap.String(constvars.LoggingEntityIDKey, recordID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicalRecordUpdatedSuccess, record)
}

func (ctrl *MedicalRecordController) DeleteMedicalRecord(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	if err := ctrl.MedicalRecordUsecase.DeleteMedicalRecord(ctx, recordID); err != nil {
		ctrl.Log.Error("Failed to delete medical record",
			zap.String(constvars.LoggingEntityIDKey, recordID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicalRecordDeletedSuccess, nil)
}
