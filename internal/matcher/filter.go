package matcher

import (
	"strings"

	"chronicle/internal/century"
	"chronicle/internal/models"
)

// Typed is implemented by entities that carry an event type.
type Typed interface {
	models.Entity
	EventType() string
}

// ByCentury keeps entities whose reference year falls in century n.
// Entities without a reference year are dropped.
func ByCentury[E models.Dated](n int) Filter[E] {
	return func(e E) bool {
		year, ok := e.ReferenceYear()
		return ok && century.FromYear(year) == n
	}
}

// ByEventType keeps entities whose event type equals t, ignoring case.
// Entities that carry no event type are dropped.
func ByEventType[E models.Entity](t string) Filter[E] {
	return func(e E) bool {
		typed, ok := any(e).(Typed)
		return ok && strings.EqualFold(typed.EventType(), t)
	}
}

// All combines filters; an entity must pass each non-nil one.
func All[E models.Entity](filters ...Filter[E]) Filter[E] {
	return func(e E) bool {
		for _, f := range filters {
			if f != nil && !f(e) {
				return false
			}
		}

		return true
	}
}
