package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-care-scheduler/internal/domain/healthrecords"
	"pet-care-scheduler/internal/platform/calendar"
)

type HealthRecordsRepo struct {
	db *sql.DB
}

func NewHealthRecordsRepo(db *sql.DB) *HealthRecordsRepo {
	return &HealthRecordsRepo{db: db}
}

const recordColumns = `id, pet_id, user_id, record_type, title, notes, date, next_due_date,
	weight, temperature, health_score, created_at`

func (r *HealthRecordsRepo) Create(ctx context.Context, rec healthrecords.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO health_records (`+recordColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		rec.ID,
		rec.PetID,
		rec.UserID,
		string(rec.RecordType),
		rec.Title,
		rec.Notes,
		calendar.DateOf(rec.Date),
		nullDate(rec.NextDueDate),
		nullFloat(rec.Metrics.Weight),
		nullFloat(rec.Metrics.Temperature),
		nullInt(rec.Metrics.HealthScore),
		rec.CreatedAt,
	)
	return classify("postgres.HealthRecordsRepo.Create", err)
}

func (r *HealthRecordsRepo) Get(ctx context.Context, petID, recordID string) (healthrecords.Record, error) {
	petID = strings.TrimSpace(petID)
	recordID = strings.TrimSpace(recordID)
	if petID == "" || recordID == "" {
		return healthrecords.Record{}, healthrecords.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+`
		FROM health_records
		WHERE pet_id = $1 AND id = $2
	`, petID, recordID)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return healthrecords.Record{}, healthrecords.ErrNotFound
		}
		return healthrecords.Record{}, classify("postgres.HealthRecordsRepo.Get", err)
	}
	return rec, nil
}

func (r *HealthRecordsRepo) ListByPet(ctx context.Context, petID string) ([]healthrecords.Record, error) {
	const op = "postgres.HealthRecordsRepo.ListByPet"

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+recordColumns+`
		FROM health_records
		WHERE pet_id = $1
		ORDER BY date DESC, created_at DESC, id ASC
	`, strings.TrimSpace(petID))
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	out := make([]healthrecords.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, classify(op, err)
		}
		out = append(out, rec)
	}
	return out, classify(op, rows.Err())
}

func scanRecord(s scanner) (healthrecords.Record, error) {
	var (
		rec                 healthrecords.Record
		recordType          string
		next                sql.NullTime
		weight, temperature sql.NullFloat64
		score               sql.NullInt64
	)
	if err := s.Scan(
		&rec.ID,
		&rec.PetID,
		&rec.UserID,
		&recordType,
		&rec.Title,
		&rec.Notes,
		&rec.Date,
		&next,
		&weight,
		&temperature,
		&score,
		&rec.CreatedAt,
	); err != nil {
		return healthrecords.Record{}, err
	}

	rec.RecordType = healthrecords.RecordType(recordType)
	rec.Date = calendar.DateOf(rec.Date)
	rec.NextDueDate = dateFromNull(next)
	rec.Metrics = healthrecords.Metrics{
		Weight:      floatFromNull(weight),
		Temperature: floatFromNull(temperature),
		HealthScore: intFromNull(score),
	}
	return rec, nil
}
