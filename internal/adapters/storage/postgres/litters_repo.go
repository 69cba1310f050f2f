package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"cattery-breeding/internal/adapters/storage/schema"
	"cattery-breeding/internal/domain/litters"
)

const litterColumns = `
	id, owner_user_id, name, status,
	mother_id, father_id, external_father_name, external_father_pedigree_url,
	mating_date, mating_date_from, mating_date_to, expected_date, birth_date, completion_date,
	kitten_count, reasoning, inbreeding_coefficient, blood_type_notes, alternative_combinations,
	birth_notes, evaluation, buyers_info, nrr_registered, notes, pregnancy_notes,
	mother_weight_log, created_at, updated_at`

type LittersRepo struct {
	db *sql.DB
}

func NewLittersRepo(db *sql.DB) *LittersRepo {
	return &LittersRepo{db: db}
}

func (r *LittersRepo) Create(ctx context.Context, l litters.Litter) error {
	rec := schema.FromLitter(l)
	log, err := rec.MotherWeightLogJSON()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO litters (`+litterColumns+`
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,
			$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28
		)
	`,
		rec.ID, rec.OwnerUserID, rec.Name, rec.Status,
		rec.MotherID, rec.FatherID, rec.ExternalFatherName, rec.ExternalFatherPedigreeURL,
		rec.MatingDate, rec.MatingDateFrom, rec.MatingDateTo, rec.ExpectedDate, rec.BirthDate, rec.CompletionDate,
		rec.KittenCount, rec.Reasoning, rec.InbreedingCoefficient, rec.BloodTypeNotes, rec.AlternativeCombinations,
		rec.BirthNotes, rec.Evaluation, rec.BuyersInfo, rec.NRRRegistered, rec.Notes, rec.PregnancyNotes,
		string(log), rec.CreatedAt, rec.UpdatedAt,
	)
	return err
}

func (r *LittersRepo) GetByID(ctx context.Context, id string) (litters.Litter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return litters.Litter{}, litters.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+litterColumns+` FROM litters WHERE id = $1`, id)
	l, err := scanLitter(row)
	if errors.Is(err, sql.ErrNoRows) {
		return litters.Litter{}, litters.ErrNotFound
	}
	return l, err
}

func (r *LittersRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]litters.Litter, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+litterColumns+`
		FROM litters
		WHERE owner_user_id = $1
		ORDER BY created_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]litters.Litter, 0)
	for rows.Next() {
		l, err := scanLitter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// UpdateFields solo escribe las columnas presentes en el patch.
func (r *LittersRepo) UpdateFields(ctx context.Context, id string, p litters.Patch, updatedAt time.Time) error {
	as, err := schema.LitterAssignments(p)
	if err != nil {
		return err
	}

	q, args := updateSQL("litters", as, id, updatedAt)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return litters.ErrNotFound
	}
	return nil
}

// Delete: notas, gatitos y pesos caen por ON DELETE CASCADE.
func (r *LittersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM litters WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return litters.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLitter(row rowScanner) (litters.Litter, error) {
	var rec schema.LitterRecord
	var log []byte
	if err := row.Scan(
		&rec.ID, &rec.OwnerUserID, &rec.Name, &rec.Status,
		&rec.MotherID, &rec.FatherID, &rec.ExternalFatherName, &rec.ExternalFatherPedigreeURL,
		&rec.MatingDate, &rec.MatingDateFrom, &rec.MatingDateTo, &rec.ExpectedDate, &rec.BirthDate, &rec.CompletionDate,
		&rec.KittenCount, &rec.Reasoning, &rec.InbreedingCoefficient, &rec.BloodTypeNotes, &rec.AlternativeCombinations,
		&rec.BirthNotes, &rec.Evaluation, &rec.BuyersInfo, &rec.NRRRegistered, &rec.Notes, &rec.PregnancyNotes,
		&log, &rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		return litters.Litter{}, err
	}
	if err := rec.ScanMotherWeightLog(log); err != nil {
		return litters.Litter{}, err
	}
	return rec.ToLitter(), nil
}

type PregnancyNotesRepo struct {
	db *sql.DB
}

func NewPregnancyNotesRepo(db *sql.DB) *PregnancyNotesRepo {
	return &PregnancyNotesRepo{db: db}
}

func (r *PregnancyNotesRepo) ListByLitter(ctx context.Context, litterID string) ([]litters.PregnancyNoteEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, litter_id, date, note
		FROM pregnancy_notes
		WHERE litter_id = $1
		ORDER BY date DESC
	`, litterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]litters.PregnancyNoteEntry, 0)
	for rows.Next() {
		var rec schema.PregnancyNoteRecord
		if err := rows.Scan(&rec.ID, &rec.LitterID, &rec.Date, &rec.Note); err != nil {
			return nil, err
		}
		out = append(out, rec.ToPregnancyNote())
	}
	return out, rows.Err()
}

func (r *PregnancyNotesRepo) Create(ctx context.Context, n litters.PregnancyNoteEntry) error {
	rec := schema.FromPregnancyNote(n)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pregnancy_notes (id, litter_id, date, note)
		VALUES ($1,$2,$3,$4)
	`, rec.ID, rec.LitterID, rec.Date, rec.Note)
	return err
}

func (r *PregnancyNotesRepo) Delete(ctx context.Context, litterID, noteID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pregnancy_notes WHERE id = $1 AND litter_id = $2`, noteID, litterID)
	return err
}
