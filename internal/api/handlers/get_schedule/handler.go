package get_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	getSchedule "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_schedule"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
	msgMissingDate    = "дата обязательна"
	msgInvalidParams  = "некорректные параметры: дата YYYY-MM-DD, staffId - числа"
	msgInvalidInput   = "некорректный запрос расписания"
	msgSalonNotFound  = "салон не найден"
)

type Handler struct {
	useCase GetScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/schedule
// Query params: date (required, YYYY-MM-DD), view (day|week|month, default day), staffId (optional, repeatable)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем salonId из URL
	salonIDStr := vars["salonId"]
	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/schedule - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /salons/{id}/schedule - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(salonID, dateStr, query.Get("view"), query["staffId"])
	if err != nil {
		h.logger.Warn("GET /salons/{id}/schedule - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getSchedule.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/schedule - Invalid input: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getSchedule.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/schedule - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		default:
			h.logger.Error("GET /salons/{id}/schedule - Failed to build schedule: salon_id=%d, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /salons/{id}/schedule - Schedule built successfully: salon_id=%d, view=%s, rows=%d, blocks=%d",
		salonID, result.View, len(result.Rows), result.BlockCount())
	handlers.RespondJSON(w, http.StatusOK, response)
}
