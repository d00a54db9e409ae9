package careplans

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pet-care-scheduler/internal/middleware"
	"pet-care-scheduler/internal/platform/calendar"
	"pet-care-scheduler/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/care-plans", func(cr chi.Router) {
		cr.Post("/", createCarePlanHandler(svc))
		cr.Get("/", listCarePlansHandler(svc))
		cr.Post("/{planID}/complete", completeCarePlanHandler(svc))
		cr.Delete("/{planID}", deleteCarePlanHandler(svc))
	})
}

// createCarePlanRequest es el cuerpo para crear un plan. next_due_date y status
// no se aceptan: los deriva el servidor.
type createCarePlanRequest struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	Category           string `json:"category" enums:"nutrition,exercise,grooming,medication,wellness,other"`
	Frequency          string `json:"frequency" enums:"once,daily,weekly,monthly,custom"`
	CustomIntervalDays *int   `json:"custom_interval_days"`
	StartDate          string `json:"start_date"` // YYYY-MM-DD
	ReminderLeadDays   *int   `json:"reminder_lead_days"`
	RemindersEnabled   *bool  `json:"reminders_enabled"`
}

// PlanResponse es la representación JSON de un plan (también embebida en recordatorios).
type PlanResponse struct {
	ID                 string     `json:"id"`
	PetID              string     `json:"pet_id"`
	UserID             string     `json:"user_id"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Category           Category   `json:"category"`
	Frequency          Frequency  `json:"frequency"`
	CustomIntervalDays *int       `json:"custom_interval_days,omitempty"`
	StartDate          string     `json:"start_date"`
	NextDueDate        string     `json:"next_due_date"`
	ReminderLeadDays   int        `json:"reminder_lead_days"`
	RemindersEnabled   bool       `json:"reminders_enabled"`
	Status             Status     `json:"status"`
	LastCompletedAt    *time.Time `json:"last_completed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// createCarePlanHandler godoc
// @Summary Crear plan de cuidado
// @Description Crea un plan para la mascota del usuario autenticado. next_due_date y status se calculan en el servidor.
// @Tags care-plans
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param payload body createCarePlanRequest true "Datos del plan; start_date en formato YYYY-MM-DD"
// @Success 201 {object} PlanResponse
// @Failure 400 {object} object "validation (con detalle por campo)"
// @Failure 401 {object} object "unauthorized"
// @Failure 404 {object} object "pet not found"
// @Failure 503 {object} object "store no disponible, reintentar"
// @Router /pets/{petID}/care-plans [post]
func createCarePlanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Unauthorized(w)
			return
		}

		var req createCarePlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.BadRequest(w, "invalid json", nil)
			return
		}

		var start time.Time
		if strings.TrimSpace(req.StartDate) != "" {
			t, err := calendar.Parse(req.StartDate)
			if err != nil {
				respond.BadRequest(w, "validation failed", map[string]string{"start_date": err.Error()})
				return
			}
			start = t
		}

		p, err := svc.Create(r.Context(), chi.URLParam(r, "petID"), userID, CreateInput{
			Title:              req.Title,
			Description:        req.Description,
			Category:           Category(strings.ToLower(strings.TrimSpace(req.Category))),
			Frequency:          Frequency(strings.ToLower(strings.TrimSpace(req.Frequency))),
			CustomIntervalDays: req.CustomIntervalDays,
			StartDate:          start,
			ReminderLeadDays:   req.ReminderLeadDays,
			RemindersEnabled:   req.RemindersEnabled,
		})
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusCreated, NewPlanResponse(p))
	}
}

// listCarePlansHandler godoc
// @Summary Listar planes de una mascota
// @Description Status se recalcula contra la fecha actual en cada lectura.
// @Tags care-plans
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} PlanResponse
// @Failure 401 {object} object "unauthorized"
// @Failure 404 {object} object "pet not found"
// @Router /pets/{petID}/care-plans [get]
func listCarePlansHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Unauthorized(w)
			return
		}

		items, err := svc.ListByPet(r.Context(), chi.URLParam(r, "petID"), userID)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]PlanResponse, 0, len(items))
		for _, p := range items {
			out = append(out, NewPlanResponse(p))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// completeCarePlanHandler godoc
// @Summary Completar plan
// @Description Registra la ocurrencia. Planes once quedan completed; recurrentes avanzan next_due_date desde hoy.
// @Tags care-plans
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param planID path string true "ID del plan"
// @Success 200 {object} PlanResponse
// @Failure 404 {object} object "pet/plan not found"
// @Failure 409 {object} object "already completed / concurrent update"
// @Router /pets/{petID}/care-plans/{planID}/complete [post]
func completeCarePlanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Unauthorized(w)
			return
		}

		p, err := svc.Complete(r.Context(), chi.URLParam(r, "petID"), chi.URLParam(r, "planID"), userID)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, NewPlanResponse(p))
	}
}

// deleteCarePlanHandler godoc
// @Summary Eliminar plan
// @Tags care-plans
// @Param petID path string true "ID de la mascota"
// @Param planID path string true "ID del plan"
// @Success 204
// @Failure 404 {object} object "pet/plan not found"
// @Router /pets/{petID}/care-plans/{planID} [delete]
func deleteCarePlanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Unauthorized(w)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID"), chi.URLParam(r, "planID"), userID); err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.NoContent(w)
	}
}

func NewPlanResponse(p CarePlan) PlanResponse {
	return PlanResponse{
		ID:                 p.ID,
		PetID:              p.PetID,
		UserID:             p.UserID,
		Title:              p.Title,
		Description:        p.Description,
		Category:           p.Category,
		Frequency:          p.Frequency,
		CustomIntervalDays: p.CustomIntervalDays,
		StartDate:          calendar.Format(p.StartDate),
		NextDueDate:        calendar.Format(p.NextDueDate),
		ReminderLeadDays:   p.ReminderLeadDays,
		RemindersEnabled:   p.RemindersEnabled,
		Status:             p.Status,
		LastCompletedAt:    p.LastCompletedAt,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
