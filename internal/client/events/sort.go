// Package events holds the client-side event logic: the listing sort
// engine and the create/edit form with its hasPassed reconciliation.
package events

import (
	"sort"

	"github.com/lifeplan/lifeplan-cli/internal/client/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects which field the listing is ordered by.
type SortKey string

const (
	SortByDate      SortKey = "date"
	SortByTitle     SortKey = "title"
	SortByPriority  SortKey = "priority"
	SortByHasPassed SortKey = "hasPassed"
)

// Direction is the sort order, matching the API's order= parameter.
type Direction string

const (
	OrderAsc  Direction = "ASC"
	OrderDesc Direction = "DESC"
)

// titleCollator gives locale-aware, case-insensitive title ordering.
var titleCollator = collate.New(language.Und, collate.IgnoreCase)

// Sort returns a new slice ordered by the given key and direction.
// The input is never mutated. The sort is stable: events with equal
// keys keep their incoming order, so refetches do not jitter.
//
// Unknown keys fall back to date ordering, unknown directions to
// ascending. Events with an absent or malformed date have no defined
// position relative to each other; they simply never cause a panic.
func Sort(evs []models.Event, key SortKey, dir Direction) []models.Event {
	out := make([]models.Event, len(evs))
	copy(out, evs)

	cmp := comparator(key)
	desc := dir == OrderDesc

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if desc {
			c = -c
		}
		return c < 0
	})
	return out
}

func comparator(key SortKey) func(a, b models.Event) int {
	switch key {
	case SortByTitle:
		return compareTitle
	case SortByPriority:
		return comparePriority
	case SortByHasPassed:
		return compareHasPassed
	default:
		return compareDate
	}
}

func compareDate(a, b models.Event) int {
	ta, aok := a.When()
	tb, bok := b.When()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}
	return compareInt64(ta.UnixMilli(), tb.UnixMilli())
}

func compareTitle(a, b models.Event) int {
	return titleCollator.CompareString(a.Title, b.Title)
}

func comparePriority(a, b models.Event) int {
	return compareInt64(int64(a.Priority.Ordinal()), int64(b.Priority.Ordinal()))
}

func compareHasPassed(a, b models.Event) int {
	return compareInt64(boolRank(a.HasPassed), boolRank(b.HasPassed))
}

func boolRank(v bool) int64 {
	if v {
		return 1
	}
	return 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
