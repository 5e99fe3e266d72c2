// Package models defines the catalog records and the capabilities the engines consume.
package models

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a kind name is not recognized.
var ErrUnknownKind = errors.New("unknown entity kind")

// Entity is the minimal capability shared by every catalog record.
type Entity interface {
	Identifier() string
	DisplayName() string
}

// Dated is an Entity that may carry the reference year used for bucket placement.
// The boolean is false when the record has no such year.
type Dated interface {
	Entity
	ReferenceYear() (int, bool)
}

// Kind identifies a family of catalog records.
type Kind string

// Supported kinds.
const (
	KindPeople Kind = "people"
	KindEvents Kind = "events"
	KindPlaces Kind = "places"
)

// Kinds lists every supported kind in catalog order.
func Kinds() []Kind {
	return []Kind{KindPeople, KindEvents, KindPlaces}
}

// ParseKind converts a name into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// DateField returns the JSON field holding the reference year for the kind.
func (k Kind) DateField() string {
	switch k {
	case KindPeople:
		return "deathYear"
	case KindEvents:
		return "startYear"
	case KindPlaces:
		return "builtYear"
	default:
		return ""
	}
}

func yearOf(p *int) (int, bool) {
	if p == nil {
		return 0, false
	}

	return *p, true
}
