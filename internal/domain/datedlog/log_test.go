package datedlog

import (
	"fmt"
	"testing"
	"time"
)

type obs struct {
	ID   string
	Date time.Time
	Note string
}

func (o obs) EntryID() string      { return o.ID }
func (o obs) EntryDate() time.Time { return o.Date }
func (o obs) WithID(id string) obs { o.ID = id; return o }

func day(d int) time.Time {
	return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func assertDesc(t *testing.T, l Log[obs]) {
	t.Helper()
	for i := 1; i < len(l); i++ {
		if !l[i-1].Date.After(l[i].Date) {
			t.Fatalf("not strictly desc at %d: %s then %s", i, l[i-1].Date, l[i].Date)
		}
	}
}

func TestAppend_SortedAfterEveryCall(t *testing.T) {
	orders := [][]int{
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{3, 1, 5, 2, 4},
		{10, 0, 7, 3, 9, 1},
	}

	for _, order := range orders {
		var l Log[obs]
		for _, d := range order {
			l = l.Append(obs{Date: day(d), Note: fmt.Sprint(d)})
			assertDesc(t, l)
		}
		if len(l) != len(order) {
			t.Fatalf("expected %d entries, got %d", len(order), len(l))
		}
	}
}

func TestAppend_OlderEntryIsResorted(t *testing.T) {
	l := Log[obs]{}.Append(obs{ID: "a", Date: day(5)}).Append(obs{ID: "b", Date: day(9)})
	l = l.Append(obs{ID: "c", Date: day(1)})

	got := []string{l[0].ID, l[1].ID, l[2].ID}
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestAppend_AssignsIDWhenMissing(t *testing.T) {
	old := NewID
	NewID = func() string { return "fixed-id" }
	defer func() { NewID = old }()

	l := Log[obs]{}.Append(obs{Date: day(0)})
	if l[0].ID != "fixed-id" {
		t.Fatalf("expected assigned id, got %q", l[0].ID)
	}

	l = l.Append(obs{ID: "keep-me", Date: day(1)})
	if _, ok := l.Find("keep-me"); !ok {
		t.Fatalf("expected existing id to be preserved")
	}
}

func TestAppend_DoesNotMutateReceiver(t *testing.T) {
	base := Log[obs]{{ID: "a", Date: day(1)}, {ID: "b", Date: day(0)}}
	_ = base.Append(obs{ID: "c", Date: day(5)})

	if len(base) != 2 || base[0].ID != "a" || base[1].ID != "b" {
		t.Fatalf("receiver was mutated: %#v", base)
	}
}

func TestRemove_NoOpCases(t *testing.T) {
	var empty Log[obs]
	if got := empty.Remove("x"); len(got) != 0 {
		t.Fatalf("expected empty, got %#v", got)
	}

	l := Log[obs]{{ID: "a", Date: day(2)}, {ID: "b", Date: day(1)}}
	got := l.Remove("missing")
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("expected unchanged log, got %#v", got)
	}
}

func TestRemove_FiltersEntry(t *testing.T) {
	l := Log[obs]{{ID: "a", Date: day(3)}, {ID: "b", Date: day(2)}, {ID: "c", Date: day(1)}}
	got := l.Remove("b")
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("unexpected result %#v", got)
	}
}
