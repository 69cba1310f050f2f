package cached

import (
	"context"
	"errors"
	"testing"
	"time"

	cachemem "cattery-breeding/internal/adapters/cache/memory"
	"cattery-breeding/internal/adapters/storage/memory"
	"cattery-breeding/internal/domain/litters"
	"cattery-breeding/internal/platform/logger"
)

type countingRepo struct {
	litters.Repository
	gets int
}

func (c *countingRepo) GetByID(ctx context.Context, id string) (litters.Litter, error) {
	c.gets++
	return c.Repository.GetByID(ctx, id)
}

func TestLittersRepo_ReadThroughAndInvalidate(t *testing.T) {
	ctx := context.Background()
	base := &countingRepo{Repository: memory.NewStore().Litters()}
	repo := NewLittersRepo(base, cachemem.NewStore(), time.Minute, logger.Nop())

	from := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if err := repo.Create(ctx, litters.Litter{ID: "l1", Name: "Spring", Phase: litters.PhasePending, MatingDateFrom: &from}); err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 3; i++ {
		l, err := repo.GetByID(ctx, "l1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !l.MatingDateFrom.Equal(from) {
			t.Fatalf("unexpected mating date %v", l.MatingDateFrom)
		}
	}
	if base.gets != 1 {
		t.Fatalf("expected 1 store read, got %d", base.gets)
	}

	name := "Renamed"
	if err := repo.UpdateFields(ctx, "l1", litters.Patch{Name: &name}, time.Now()); err != nil {
		t.Fatalf("update: %v", err)
	}
	l, _ := repo.GetByID(ctx, "l1")
	if l.Name != "Renamed" || base.gets != 2 {
		t.Fatalf("expected fresh read after update, got %q (gets=%d)", l.Name, base.gets)
	}

	if err := repo.Delete(ctx, "l1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, "l1"); !errors.Is(err, litters.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
