package schedules

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"agenda-service/internal/app/config"
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
	InternalConfig  *config.InternalConfig
}

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase, internalConfig *config.InternalConfig) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *ScheduleController) GetWeekSchedule(w http.ResponseWriter, r *http.Request) {
	weekStart, err := parseOptionalWeekStart(r.URL.Query().Get("week_start"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.requestContext()
	defer cancel()

	result, err := ctrl.ScheduleUsecase.GetWeekSchedule(ctx, weekStart)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetWeekScheduleSuccessMessage, result)
}

func (ctrl *ScheduleController) GetSlot(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "slotID")

	ctx, cancel := ctrl.requestContext()
	defer cancel()

	result, err := ctrl.ScheduleUsecase.GetSlot(ctx, slotID)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSlotSuccessMessage, result)
}

func (ctrl *ScheduleController) BookSlot(w http.ResponseWriter, r *http.Request) {
	request := new(requests.BookAppointment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeBookAppointmentRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext()
	defer cancel()

	result, err := ctrl.ScheduleUsecase.BookSlot(ctx, request)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookSlotSuccessMessage, result)
}

func (ctrl *ScheduleController) BookSlotInRange(w http.ResponseWriter, r *http.Request) {
	request := new(requests.BookAppointmentInRange)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeBookAppointmentInRangeRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext()
	defer cancel()

	result, err := ctrl.ScheduleUsecase.BookSlotInRange(ctx, request)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookSlotSuccessMessage, result)
}

func (ctrl *ScheduleController) CancelSlot(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CancelAppointment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCancelAppointmentRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext()
	defer cancel()

	result, err := ctrl.ScheduleUsecase.CancelSlot(ctx, request)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelSlotSuccessMessage, result)
}

func (ctrl *ScheduleController) InitializeWeek(w http.ResponseWriter, r *http.Request) {
	weekStart, err := parseOptionalWeekStart(r.URL.Query().Get("week_start"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.requestContext()
	defer cancel()

	slotsCreated, err := ctrl.ScheduleUsecase.InitializeWeek(ctx, weekStart)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.InitializeWeekSuccessMessage, responses.InitializeWeek{SlotsCreated: slotsCreated})
}

func (ctrl *ScheduleController) requestContext() (context.Context, context.CancelFunc) {
	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	return context.WithTimeout(context.Background(), timeout)
}

func (ctrl *ScheduleController) writeError(w http.ResponseWriter, err error) {
	if err == context.DeadlineExceeded {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}

func parseOptionalWeekStart(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return nil, exceptions.ErrScheduleInvalidDateFormat(err)
	}
	return &parsed, nil
}
