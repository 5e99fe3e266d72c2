// Package validator checks that every dated catalog entity is filed under the
// century its reference year falls in and that no id is used twice.
package validator

import (
	"fmt"
	"strings"

	"chronicle/internal/century"
	"chronicle/internal/models"
)

// ErrorKind tags the variants of ValidationError.
type ErrorKind string

// Error kinds.
const (
	KindDuplicateID ErrorKind = "duplicate_id"
	KindWrongBucket ErrorKind = "wrong_bucket"
)

// Location is where an entity was found: its bucket and the source it came from.
type Location struct {
	Source string
	Bucket int
}

// String returns "century-N source".
func (l Location) String() string {
	return fmt.Sprintf("%s %s", century.Label(century.DefaultPrefix, l.Bucket), l.Source)
}

// ValidationError is a correctness violation found in the catalog.
// It is either a DuplicateID or a WrongBucket.
type ValidationError interface {
	error
	Kind() ErrorKind
	EntityID() string
}

// DuplicateID reports an id seen more than once. Locations holds the first
// occurrence followed by the repeated one.
type DuplicateID struct {
	ID        string
	Name      string
	Locations []Location
}

// Kind returns KindDuplicateID.
func (e DuplicateID) Kind() ErrorKind { return KindDuplicateID }

// EntityID returns the duplicated id.
func (e DuplicateID) EntityID() string { return e.ID }

func (e DuplicateID) Error() string {
	locs := make([]string, len(e.Locations))
	for i, l := range e.Locations {
		locs[i] = l.String()
	}

	return fmt.Sprintf("duplicate id %q (%s) at %s", e.ID, e.Name, strings.Join(locs, ", "))
}

// WrongBucket reports an entity filed under a century other than the one its year implies.
type WrongBucket struct {
	ID             string
	Name           string
	Location       Location
	Year           int
	ExpectedBucket int
	ActualBucket   int
}

// Kind returns KindWrongBucket.
func (e WrongBucket) Kind() ErrorKind { return KindWrongBucket }

// EntityID returns the misplaced entity's id.
func (e WrongBucket) EntityID() string { return e.ID }

func (e WrongBucket) Error() string {
	return fmt.Sprintf("%q (%s) year %d belongs in century %d, found in century %d (%s)",
		e.ID, e.Name, e.Year, e.ExpectedBucket, e.ActualBucket, e.Location.Source)
}

// MissingDateValue warns that an entity has no reference year, so its
// placement could not be checked.
type MissingDateValue struct {
	ID       string
	Name     string
	Location Location
}

func (w MissingDateValue) String() string {
	return fmt.Sprintf("%q (%s) has no date value in %s", w.ID, w.Name, w.Location)
}

// Stats summarizes a validation run.
type Stats struct {
	Buckets  map[int]int
	Checked  int
	Dated    int
	Undated  int
	Distinct int
}

// Result collects everything one validation run found.
type Result struct {
	Errors   []ValidationError
	Warnings []MissingDateValue
	Stats    Stats
}

// Failed reports whether the run found at least one error. Warnings alone never fail.
func (r *Result) Failed() bool {
	return len(r.Errors) > 0
}

// Duplicates returns the DuplicateID errors in report order.
func (r *Result) Duplicates() []DuplicateID {
	var out []DuplicateID

	for _, e := range r.Errors {
		if d, ok := e.(DuplicateID); ok {
			out = append(out, d)
		}
	}

	return out
}

// Misplaced returns the WrongBucket errors in report order.
func (r *Result) Misplaced() []WrongBucket {
	var out []WrongBucket

	for _, e := range r.Errors {
		if w, ok := e.(WrongBucket); ok {
			out = append(out, w)
		}
	}

	return out
}

// Merge appends other's findings to r.
func (r *Result) Merge(other *Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Stats.Checked += other.Stats.Checked
	r.Stats.Dated += other.Stats.Dated
	r.Stats.Undated += other.Stats.Undated
	r.Stats.Distinct += other.Stats.Distinct

	if r.Stats.Buckets == nil {
		r.Stats.Buckets = map[int]int{}
	}

	for b, n := range other.Stats.Buckets {
		r.Stats.Buckets[b] += n
	}
}

// Validate walks corpus once in order. bucketOf reports where each entity was
// found. Every repeat of an id yields a DuplicateID naming the first and the
// current location; every dated entity outside century.FromYear(year) yields a
// WrongBucket; every undated entity yields a MissingDateValue warning instead.
func Validate[E models.Dated](corpus []E, bucketOf func(E) Location) *Result {
	result := &Result{
		Errors:   []ValidationError{},
		Warnings: []MissingDateValue{},
		Stats:    Stats{Buckets: map[int]int{}},
	}

	type seenEntry struct {
		name string
		loc  Location
	}

	seen := make(map[string]seenEntry, len(corpus))

	for _, e := range corpus {
		id := e.Identifier()
		name := e.DisplayName()
		loc := bucketOf(e)

		result.Stats.Checked++
		result.Stats.Buckets[loc.Bucket]++

		if first, ok := seen[id]; ok {
			result.Errors = append(result.Errors, DuplicateID{
				ID:        id,
				Name:      first.name,
				Locations: []Location{first.loc, loc},
			})
		} else {
			seen[id] = seenEntry{name: name, loc: loc}
		}

		year, ok := e.ReferenceYear()
		if !ok {
			result.Stats.Undated++
			result.Warnings = append(result.Warnings, MissingDateValue{ID: id, Name: name, Location: loc})

			continue
		}

		result.Stats.Dated++

		if expected := century.FromYear(year); expected != loc.Bucket {
			result.Errors = append(result.Errors, WrongBucket{
				ID:             id,
				Name:           name,
				Location:       loc,
				Year:           year,
				ExpectedBucket: expected,
				ActualBucket:   loc.Bucket,
			})
		}
	}

	result.Stats.Distinct = len(seen)

	return result
}
