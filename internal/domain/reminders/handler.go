package reminders

import (
	"net/http"
	"strconv"
	"strings"

	"pet-care-scheduler/internal/domain/careplans"
	"pet-care-scheduler/internal/domain/healthrecords"
	"pet-care-scheduler/internal/middleware"
	"pet-care-scheduler/internal/platform/calendar"
	"pet-care-scheduler/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el feed. defaultDays se usa cuando no viene ?days.
func RegisterRoutes(r chi.Router, svc *Service, defaultDays int) {
	if defaultDays < 0 || defaultDays > svc.MaxHorizonDays() {
		defaultDays = min(DefaultHorizonDays, svc.MaxHorizonDays())
	}
	r.Get("/pets/health-reminders", listRemindersHandler(svc, defaultDays))
}

// reminderResponse lleva exactamente uno de plan / record según reminder_type.
type reminderResponse struct {
	ReminderType Kind                          `json:"reminder_type"`
	PetID        string                        `json:"pet_id"`
	DueDate      string                        `json:"due_date"`
	Plan         *careplans.PlanResponse       `json:"plan,omitempty"`
	Record       *healthrecords.RecordResponse `json:"record,omitempty"`
}

// listRemindersHandler godoc
// @Summary Feed de recordatorios
// @Description Une seguimientos de registros de salud y planes de cuidado de todas las mascotas activas, ordenados por fecha.
// @Tags reminders
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param days query int false "Horizonte en días (0..365, default 30)"
// @Success 200 {array} reminderResponse
// @Failure 400 {object} object "days inválido"
// @Failure 401 {object} object "unauthorized"
// @Failure 503 {object} object "store no disponible, reintentar"
// @Router /pets/health-reminders [get]
func listRemindersHandler(svc *Service, defaultDays int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Unauthorized(w)
			return
		}

		days := defaultDays
		if raw := strings.TrimSpace(r.URL.Query().Get("days")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 || n > svc.MaxHorizonDays() {
				respond.BadRequest(w, "validation failed", map[string]string{
					"days": "must be an integer between 0 and " + strconv.Itoa(svc.MaxHorizonDays()),
				})
				return
			}
			days = n
		}

		items, err := svc.ListReminders(r.Context(), userID, days)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]reminderResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toReminderResponse(it))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func toReminderResponse(it Reminder) reminderResponse {
	resp := reminderResponse{
		ReminderType: it.Kind(),
		PetID:        it.PetID(),
		DueDate:      calendar.Format(it.DueDate()),
	}
	switch v := it.(type) {
	case CarePlanReminder:
		p := careplans.NewPlanResponse(v.Plan)
		resp.Plan = &p
	case HealthRecordReminder:
		rec := healthrecords.NewRecordResponse(v.Record)
		resp.Record = &rec
	}
	return resp
}
