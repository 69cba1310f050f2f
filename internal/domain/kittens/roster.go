package kittens

import (
	"fmt"
	"strings"
	"time"
)

// RosterPlan es el resultado de reconciliar el roster editado contra el guardado.
// Roster es el set completo a persistir (orden del input).
type RosterPlan struct {
	Roster  []Kitten
	Created []string
	Updated []string
	Deleted []string
}

// Reconcile es puro: no toca el store.
//   - id existente => update in place (CreatedAt se conserva)
//   - sin id => nuevo, con id fresco
//   - ids guardados que no vienen en target => Deleted (semántica full replace)
//
// Un id repetido en target, o un id que no está en el roster guardado, es ErrInvalidInput.
func Reconcile(litterID string, existing, target []Kitten, newID func() string, now time.Time) (RosterPlan, error) {
	stored := make(map[string]Kitten, len(existing))
	for _, k := range existing {
		stored[k.ID] = k
	}

	plan := RosterPlan{
		Roster:  make([]Kitten, 0, len(target)),
		Created: make([]string, 0),
		Updated: make([]string, 0),
		Deleted: make([]string, 0),
	}
	seen := make(map[string]struct{}, len(target))

	for _, k := range target {
		k.ID = strings.TrimSpace(k.ID)
		k.LitterID = litterID
		k.UpdatedAt = now

		if k.ID == "" {
			k.ID = newID()
			k.CreatedAt = now
			plan.Created = append(plan.Created, k.ID)
		} else {
			if _, dup := seen[k.ID]; dup {
				return RosterPlan{}, fmt.Errorf("%w: duplicate kitten id %s", ErrInvalidInput, k.ID)
			}
			prev, ok := stored[k.ID]
			if !ok {
				return RosterPlan{}, fmt.Errorf("%w: kitten %s is not in litter %s", ErrInvalidInput, k.ID, litterID)
			}
			k.CreatedAt = prev.CreatedAt
			plan.Updated = append(plan.Updated, k.ID)
		}

		seen[k.ID] = struct{}{}
		plan.Roster = append(plan.Roster, k)
	}

	for _, k := range existing {
		if _, ok := seen[k.ID]; !ok {
			plan.Deleted = append(plan.Deleted, k.ID)
		}
	}

	return plan, nil
}
