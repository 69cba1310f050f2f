package cats

import (
	"context"
	"errors"
	"strings"
	"time"

	"cattery-breeding/internal/platform/dates"
	"cattery-breeding/internal/platform/optional"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("cat not found")
	ErrForbidden    = errors.New("forbidden")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name               string
	Sex                string
	Breed              string
	EMSCode            string
	Color              string
	BirthDate          *time.Time
	RegistrationNumber string
	Notes              string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Cat, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Cat{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Cat{}, ErrInvalidInput
	}
	sex := Sex(strings.ToLower(strings.TrimSpace(in.Sex)))
	if !sex.Valid() {
		return Cat{}, ErrInvalidInput
	}

	var bd *time.Time
	if in.BirthDate != nil {
		d := dates.Day(*in.BirthDate)
		bd = &d
	}

	now := s.now()
	c := Cat{
		ID:                 uuid.NewString(),
		OwnerUserID:        ownerUserID,
		Name:               strings.TrimSpace(in.Name),
		Sex:                sex,
		Breed:              strings.TrimSpace(in.Breed),
		EMSCode:            strings.TrimSpace(in.EMSCode),
		Color:              strings.TrimSpace(in.Color),
		BirthDate:          bd,
		RegistrationNumber: strings.TrimSpace(in.RegistrationNumber),
		Notes:              strings.TrimSpace(in.Notes),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Cat{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Cat, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Cat, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// UpdateProfileInput: nil = no tocar. BirthDate distingue ausente de null.
type UpdateProfileInput struct {
	Name               *string
	Sex                *string
	Breed              *string
	EMSCode            *string
	Color              *string
	BirthDate          optional.Set[time.Time]
	RegistrationNumber *string
	Notes              *string
}

// UpdateProfile edita el perfil; solo el dueño.
func (s *Service) UpdateProfile(ctx context.Context, catID, actorUserID string, in UpdateProfileInput) (Cat, error) {
	c, err := s.GetByID(ctx, catID)
	if err != nil {
		return Cat{}, err
	}
	if c.OwnerUserID != actorUserID {
		return Cat{}, ErrForbidden
	}

	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		if n == "" {
			return Cat{}, ErrInvalidInput
		}
		c.Name = n
	}
	if in.Sex != nil {
		sex := Sex(strings.ToLower(strings.TrimSpace(*in.Sex)))
		if !sex.Valid() {
			return Cat{}, ErrInvalidInput
		}
		c.Sex = sex
	}
	for _, f := range []struct {
		src *string
		dst *string
	}{
		{in.Breed, &c.Breed},
		{in.EMSCode, &c.EMSCode},
		{in.Color, &c.Color},
		{in.RegistrationNumber, &c.RegistrationNumber},
		{in.Notes, &c.Notes},
	} {
		if f.src != nil {
			*f.dst = strings.TrimSpace(*f.src)
		}
	}
	if in.BirthDate.Value != nil {
		d := dates.Day(*in.BirthDate.Value)
		in.BirthDate.Value = &d
	}
	in.BirthDate.Apply(&c.BirthDate)

	c.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, c); err != nil {
		return Cat{}, err
	}
	return c, nil
}
