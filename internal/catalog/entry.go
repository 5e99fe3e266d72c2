// Package catalog reads the on-disk catalog into entries the engines can check.
//
// A kind directory holds one directory (or one JSON file) per century bucket:
//
//	people/
//	  century-4/athanasius.json
//	  century-16/
//	    loyola.json
//	    xavier.json
//	  century-17.json
//
// A JSON file holds either a single record or an array of records.
package catalog

import (
	"chronicle/internal/models"
)

// Entry is one catalog record together with where it was found.
type Entry struct {
	Entity models.Dated
	Kind   models.Kind
	// Source is the file path, with "#index" appended for records inside an array.
	Source string
	Bucket int
}

// Identifier returns the record's id.
func (e Entry) Identifier() string { return e.Entity.Identifier() }

// DisplayName returns the record's name.
func (e Entry) DisplayName() string { return e.Entity.DisplayName() }

// ReferenceYear returns the year that decides the record's bucket.
func (e Entry) ReferenceYear() (int, bool) { return e.Entity.ReferenceYear() }

// EventType returns the record's event type, or "" for kinds without one.
func (e Entry) EventType() string {
	if ev, ok := e.Entity.(models.Event); ok {
		return ev.Type
	}

	return ""
}
