package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"cattery-breeding/internal/adapters/storage/schema"
	"cattery-breeding/internal/domain/kittens"
)

const kittenColumns = `
	id, litter_id, name, gender, color, ems_code, status,
	reserved_by, notes, birth_weight, created_at, updated_at`

type KittensRepo struct {
	db *sql.DB
}

func NewKittensRepo(db *sql.DB) *KittensRepo {
	return &KittensRepo{db: db}
}

func (r *KittensRepo) ListByLitter(ctx context.Context, litterID string) ([]kittens.Kitten, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+kittenColumns+`
		FROM kittens
		WHERE litter_id = $1
		ORDER BY position ASC, created_at ASC
	`, litterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]kittens.Kitten, 0)
	for rows.Next() {
		k, err := scanKitten(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

func (r *KittensRepo) GetByID(ctx context.Context, id string) (kittens.Kitten, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return kittens.Kitten{}, kittens.ErrNotFound
	}

	k, err := scanKitten(r.db.QueryRowContext(ctx, `SELECT `+kittenColumns+` FROM kittens WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return kittens.Kitten{}, kittens.ErrNotFound
	}
	return k, err
}

// ReplaceRoster: deletes + upserts en una transacción.
func (r *KittensRepo) ReplaceRoster(ctx context.Context, litterID string, plan kittens.RosterPlan) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, id := range plan.Deleted {
		if _, err = tx.ExecContext(ctx, `DELETE FROM kittens WHERE id = $1 AND litter_id = $2`, id, litterID); err != nil {
			return err
		}
	}

	for i, k := range plan.Roster {
		rec := schema.FromKitten(k)
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO kittens (
				id, litter_id, position, name, gender, color, ems_code, status,
				reserved_by, notes, birth_weight, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
			ON CONFLICT (id) DO UPDATE SET
				position = EXCLUDED.position,
				name = EXCLUDED.name,
				gender = EXCLUDED.gender,
				color = EXCLUDED.color,
				ems_code = EXCLUDED.ems_code,
				status = EXCLUDED.status,
				reserved_by = EXCLUDED.reserved_by,
				notes = EXCLUDED.notes,
				birth_weight = EXCLUDED.birth_weight,
				updated_at = EXCLUDED.updated_at
			WHERE kittens.litter_id = EXCLUDED.litter_id
		`,
			rec.ID, litterID, i, rec.Name, rec.Gender, rec.Color, rec.EMSCode, rec.Status,
			rec.ReservedBy, rec.Notes, rec.BirthWeight, rec.CreatedAt, rec.UpdatedAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *KittensRepo) UpdateFields(ctx context.Context, id string, p kittens.Patch, updatedAt time.Time) error {
	q, args := updateSQL("kittens", schema.KittenAssignments(p), id, updatedAt)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return kittens.ErrNotFound
	}
	return nil
}

func scanKitten(row rowScanner) (kittens.Kitten, error) {
	var rec schema.KittenRecord
	if err := row.Scan(
		&rec.ID, &rec.LitterID, &rec.Name, &rec.Gender, &rec.Color, &rec.EMSCode, &rec.Status,
		&rec.ReservedBy, &rec.Notes, &rec.BirthWeight, &rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		return kittens.Kitten{}, err
	}
	return rec.ToKitten(), nil
}

type KittenWeightsRepo struct {
	db *sql.DB
}

func NewKittenWeightsRepo(db *sql.DB) *KittenWeightsRepo {
	return &KittenWeightsRepo{db: db}
}

func (r *KittenWeightsRepo) ListByKitten(ctx context.Context, kittenID string) ([]kittens.WeightEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kitten_id, date, weight
		FROM kitten_weights
		WHERE kitten_id = $1
		ORDER BY date DESC
	`, kittenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]kittens.WeightEntry, 0)
	for rows.Next() {
		var rec schema.WeightRecord
		if err := rows.Scan(&rec.ID, &rec.KittenID, &rec.Date, &rec.Weight); err != nil {
			return nil, err
		}
		out = append(out, rec.ToWeight())
	}
	return out, rows.Err()
}

func (r *KittenWeightsRepo) Create(ctx context.Context, e kittens.WeightEntry) error {
	rec := schema.FromWeight(e)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kitten_weights (id, kitten_id, date, weight)
		VALUES ($1,$2,$3,$4)
	`, rec.ID, rec.KittenID, rec.Date, rec.Weight)
	return err
}

func (r *KittenWeightsRepo) Delete(ctx context.Context, kittenID, entryID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kitten_weights WHERE id = $1 AND kitten_id = $2`, entryID, kittenID)
	return err
}
