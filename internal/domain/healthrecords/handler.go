package healthrecords

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
	r.Route("/pets/{petID}/health-records", func(hr chi.Router) {
		hr.Post("/", createRecordHandler(svc))
		hr.Get("/", listRecordsHandler(svc))
		hr.Get("/{recordID}", getRecordHandler(svc))
	})
}

type metricsPayload struct {
	Weight      *float64 `json:"weight,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	HealthScore *int     `json:"health_score,omitempty"`
}

type createRecordRequest struct {
	RecordType  string          `json:"record_type" enums:"vaccination,checkup,medication,surgery,grooming,other"`
	Title       string          `json:"title"`
	Notes       string          `json:"notes"`
	Date        string          `json:"date"`          // YYYY-MM-DD
	NextDueDate *string         `json:"next_due_date"` // opcional
	Metrics     *metricsPayload `json:"metrics"`
}

// RecordResponse es la representación JSON de un registro (también embebida en recordatorios).
type RecordResponse struct {
	ID          string          `json:"id"`
	PetID       string          `json:"pet_id"`
	UserID      string          `json:"user_id"`
	RecordType  RecordType      `json:"record_type"`
	Title       string          `json:"title"`
	Notes       string          `json:"notes,omitempty"`
	Date        string          `json:"date"`
	NextDueDate *string         `json:"next_due_date,omitempty"`
	Metrics     *metricsPayload `json:"metrics,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// createRecordHandler godoc
// @Summary Registrar evento de salud
// @Description Vacuna, control, medicación, etc. next_due_date opcional alimenta los recordatorios.
// @Tags health-records
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param petID path string true "ID de la mascota"
// @Param payload body createRecordRequest true "Datos del registro; fechas YYYY-MM-DD"
// @Success 201 {object} RecordResponse
// @Failure 400 {object} object "validation"
// @Failure 404 {object} object "pet not found"
// @Router /pets/{petID}/health-records [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Unauthorized(w)
			return
		}

		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.BadRequest(w, "invalid json", nil)
			return
		}

		fields := map[string]string{}
		var date time.Time
		if strings.TrimSpace(req.Date) != "" {
			t, err := calendar.Parse(req.Date)
			if err != nil {
				fields["date"] = err.Error()
			}
			date = t
		}
		var next *time.Time
		if req.NextDueDate != nil && strings.TrimSpace(*req.NextDueDate) != "" {
			t, err := calendar.Parse(*req.NextDueDate)
			if err != nil {
				fields["next_due_date"] = err.Error()
			}
			next = &t
		}
		if len(fields) > 0 {
			respond.BadRequest(w, "validation failed", fields)
			return
		}

		in := CreateInput{
			RecordType:  RecordType(strings.ToLower(strings.TrimSpace(req.RecordType))),
			Title:       req.Title,
			Notes:       req.Notes,
			Date:        date,
			NextDueDate: next,
		}
		if req.Metrics != nil {
			in.Metrics = Metrics{Weight: req.Metrics.Weight, Temperature: req.Metrics.Temperature, HealthScore: req.Metrics.HealthScore}
		}

		rec, err := svc.Create(r.Context(), chi.URLParam(r, "petID"), userID, in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusCreated, NewRecordResponse(rec))
	}
}

// listRecordsHandler godoc
// @Summary Historial de salud de una mascota
// @Tags health-records
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} RecordResponse
// @Failure 404 {object} object "pet not found"
// @Router /pets/{petID}/health-records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]RecordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, NewRecordResponse(rec))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getRecordHandler godoc
// @Summary Obtener registro de salud
// @Tags health-records
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param recordID path string true "ID del registro"
// @Success 200 {object} RecordResponse
// @Failure 404 {object} object "not found"
// @Router /pets/{petID}/health-records/{recordID} [get]
func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respond.Unauthorized(w)
			return
		}

		rec, err := svc.Get(r.Context(), chi.URLParam(r, "petID"), chi.URLParam(r, "recordID"), userID)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, NewRecordResponse(rec))
	}
}

func NewRecordResponse(rec Record) RecordResponse {
	out := RecordResponse{
		ID:         rec.ID,
		PetID:      rec.PetID,
		UserID:     rec.UserID,
		RecordType: rec.RecordType,
		Title:      rec.Title,
		Notes:      rec.Notes,
		Date:       calendar.Format(rec.Date),
		CreatedAt:  rec.CreatedAt,
	}
	if rec.NextDueDate != nil {
		s := calendar.Format(*rec.NextDueDate)
		out.NextDueDate = &s
	}
	if !rec.Metrics.IsZero() {
		out.Metrics = &metricsPayload{
			Weight:      rec.Metrics.Weight,
			Temperature: rec.Metrics.Temperature,
			HealthScore: rec.Metrics.HealthScore,
		}
	}
	return out
}
