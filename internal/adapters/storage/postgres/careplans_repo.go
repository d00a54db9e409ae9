package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-care-scheduler/internal/domain/careplans"
	"pet-care-scheduler/internal/platform/calendar"
)

type CarePlansRepo struct {
	db *sql.DB
}

func NewCarePlansRepo(db *sql.DB) *CarePlansRepo {
	return &CarePlansRepo{db: db}
}

const planColumns = `id, pet_id, user_id, title, description, category, frequency,
	custom_interval_days, start_date, next_due_date, reminder_lead_days, reminders_enabled,
	status, last_completed_at, created_at, updated_at`

func (r *CarePlansRepo) Create(ctx context.Context, p careplans.CarePlan) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO care_plans (`+planColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
	`,
		p.ID,
		p.PetID,
		p.UserID,
		p.Title,
		p.Description,
		string(p.Category),
		string(p.Frequency),
		nullInt(p.CustomIntervalDays),
		calendar.DateOf(p.StartDate),
		calendar.DateOf(p.NextDueDate),
		p.ReminderLeadDays,
		p.RemindersEnabled,
		string(p.Status),
		nullTimestamp(p.LastCompletedAt),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return classify("postgres.CarePlansRepo.Create", err)
}

func (r *CarePlansRepo) Get(ctx context.Context, petID, planID string) (careplans.CarePlan, error) {
	petID = strings.TrimSpace(petID)
	planID = strings.TrimSpace(planID)
	if petID == "" || planID == "" {
		return careplans.CarePlan{}, careplans.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+planColumns+`
		FROM care_plans
		WHERE pet_id = $1 AND id = $2
	`, petID, planID)

	p, err := scanPlan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return careplans.CarePlan{}, careplans.ErrNotFound
		}
		return careplans.CarePlan{}, classify("postgres.CarePlansRepo.Get", err)
	}
	return p, nil
}

func (r *CarePlansRepo) ListByPet(ctx context.Context, petID string) ([]careplans.CarePlan, error) {
	const op = "postgres.CarePlansRepo.ListByPet"

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+planColumns+`
		FROM care_plans
		WHERE pet_id = $1
		ORDER BY next_due_date ASC, id ASC
	`, strings.TrimSpace(petID))
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	out := make([]careplans.CarePlan, 0)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, classify(op, err)
		}
		out = append(out, p)
	}
	return out, classify(op, rows.Err())
}

// CompareAndSwap es un UPDATE condicionado a la revisión: la fila solo cambia si
// status y last_completed_at siguen como los leyó el caller. 0 filas => se
// distingue "no existe" de "ya la cambió otro".
func (r *CarePlansRepo) CompareAndSwap(ctx context.Context, prev careplans.Revision, next careplans.CarePlan) error {
	const op = "postgres.CarePlansRepo.CompareAndSwap"

	res, err := r.db.ExecContext(ctx, `
		UPDATE care_plans
		SET
			next_due_date = $3,
			status = $4,
			last_completed_at = $5,
			updated_at = $6
		WHERE pet_id = $1 AND id = $2
			AND status = $7
			AND last_completed_at IS NOT DISTINCT FROM $8
	`,
		next.PetID,
		next.ID,
		calendar.DateOf(next.NextDueDate),
		string(next.Status),
		nullTimestamp(next.LastCompletedAt),
		next.UpdatedAt,
		string(prev.Status),
		nullTimestamp(prev.LastCompletedAt),
	)
	if err != nil {
		return classify(op, err)
	}
	n, _ := res.RowsAffected()
	if n == 1 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM care_plans WHERE pet_id = $1 AND id = $2)
	`, next.PetID, next.ID).Scan(&exists); err != nil {
		return classify(op, err)
	}
	if !exists {
		return careplans.ErrNotFound
	}
	return careplans.ErrStale
}

func (r *CarePlansRepo) Delete(ctx context.Context, petID, planID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM care_plans WHERE pet_id = $1 AND id = $2
	`, strings.TrimSpace(petID), strings.TrimSpace(planID))
	if err != nil {
		return classify("postgres.CarePlansRepo.Delete", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return careplans.ErrNotFound
	}
	return nil
}

func scanPlan(s scanner) (careplans.CarePlan, error) {
	var (
		p                   careplans.CarePlan
		category, frequency string
		status              string
		interval            sql.NullInt64
		lastCompleted       sql.NullTime
	)
	if err := s.Scan(
		&p.ID,
		&p.PetID,
		&p.UserID,
		&p.Title,
		&p.Description,
		&category,
		&frequency,
		&interval,
		&p.StartDate,
		&p.NextDueDate,
		&p.ReminderLeadDays,
		&p.RemindersEnabled,
		&status,
		&lastCompleted,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return careplans.CarePlan{}, err
	}

	p.Category = careplans.Category(category)
	p.Frequency = careplans.Frequency(frequency)
	p.Status = careplans.Status(status)
	p.CustomIntervalDays = intFromNull(interval)
	p.StartDate = calendar.DateOf(p.StartDate)
	p.NextDueDate = calendar.DateOf(p.NextDueDate)
	p.LastCompletedAt = timeFromNull(lastCompleted)
	return p, nil
}
