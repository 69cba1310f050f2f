package cats

import "time"

// Sex del gato del catálogo.
// @Enum male, female
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// Cat es un animal del criadero (madre/padre posible de un Litter).
type Cat struct {
	ID          string
	OwnerUserID string

	Name  string
	Sex   Sex
	Breed string // p.ej. "NFO", "MCO"

	EMSCode string
	Color   string

	BirthDate          *time.Time
	RegistrationNumber string // pedigrí / número de registro

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
