package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"cattery-breeding/internal/domain/cats"
)

type CatsRepo struct {
	db *sql.DB
}

func NewCatsRepo(db *sql.DB) *CatsRepo {
	return &CatsRepo{db: db}
}

func (r *CatsRepo) Create(ctx context.Context, c cats.Cat) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cats (
			id, owner_user_id,
			name, sex, breed, ems_code, color,
			birth_date, registration_number, notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		c.ID,
		c.OwnerUserID,
		c.Name,
		string(c.Sex),
		c.Breed,
		c.EMSCode,
		c.Color,
		toNullDate(c.BirthDate),
		c.RegistrationNumber,
		c.Notes,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

func (r *CatsRepo) Update(ctx context.Context, c cats.Cat) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cats
		SET
			name = $2,
			sex = $3,
			breed = $4,
			ems_code = $5,
			color = $6,
			birth_date = $7,
			registration_number = $8,
			notes = $9,
			updated_at = $10
		WHERE id = $1
	`,
		c.ID,
		c.Name,
		string(c.Sex),
		c.Breed,
		c.EMSCode,
		c.Color,
		toNullDate(c.BirthDate),
		c.RegistrationNumber,
		c.Notes,
		c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return cats.ErrNotFound
	}
	return nil
}

func (r *CatsRepo) GetByID(ctx context.Context, id string) (cats.Cat, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return cats.Cat{}, cats.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, owner_user_id,
			name, sex, breed, ems_code, color,
			birth_date, registration_number, notes,
			created_at, updated_at
		FROM cats
		WHERE id = $1
	`, id)

	c, err := scanCat(row)
	if errors.Is(err, sql.ErrNoRows) {
		return cats.Cat{}, cats.ErrNotFound
	}
	return c, err
}

func (r *CatsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]cats.Cat, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_user_id,
			name, sex, breed, ems_code, color,
			birth_date, registration_number, notes,
			created_at, updated_at
		FROM cats
		WHERE owner_user_id = $1
		ORDER BY created_at ASC, name ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]cats.Cat, 0)
	for rows.Next() {
		c, err := scanCat(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCat(row rowScanner) (cats.Cat, error) {
	var c cats.Cat
	var sex string
	var bd sql.NullTime
	if err := row.Scan(
		&c.ID,
		&c.OwnerUserID,
		&c.Name,
		&sex,
		&c.Breed,
		&c.EMSCode,
		&c.Color,
		&bd,
		&c.RegistrationNumber,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return cats.Cat{}, err
	}

	c.Sex = cats.Sex(sex)
	if bd.Valid {
		// birth_date es DATE; pgx lo devuelve como medianoche
		t := time.Date(bd.Time.Year(), bd.Time.Month(), bd.Time.Day(), 0, 0, 0, 0, time.UTC)
		c.BirthDate = &t
	}
	return c, nil
}

// birth_date es DATE, lo pasamos como NullTime para simplificar
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
