package memory

import (
	"sync"

	"cattery-breeding/internal/domain/kittens"
	"cattery-breeding/internal/domain/litters"
)

// Store es el backend in-memory (dev/tests). Un solo lock para que el delete
// de un litter haga cascade a gatitos, pesos y notas igual que Postgres.
type Store struct {
	mu sync.RWMutex

	litters map[string]litters.Litter
	notes   map[string]litters.PregnancyNoteEntry
	kittens map[string]kittens.Kitten
	weights map[string]kittens.WeightEntry

	// posición de cada gatito dentro de su roster
	kittenSeq map[string]int
}

func NewStore() *Store {
	return &Store{
		litters:   make(map[string]litters.Litter),
		notes:     make(map[string]litters.PregnancyNoteEntry),
		kittens:   make(map[string]kittens.Kitten),
		weights:   make(map[string]kittens.WeightEntry),
		kittenSeq: make(map[string]int),
	}
}

func (s *Store) Litters() litters.Repository            { return &litterRepo{s: s} }
func (s *Store) PregnancyNotes() litters.NoteRepository { return &noteRepo{s: s} }
func (s *Store) Kittens() kittens.Repository            { return &kittenRepo{s: s} }
func (s *Store) Weights() kittens.WeightRepository      { return &weightRepo{s: s} }
