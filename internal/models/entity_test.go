package models

import (
	"errors"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		if err != nil {
			t.Fatalf("ParseKind(%q) returned error: %v", k, err)
		}

		if got != k {
			t.Errorf("ParseKind(%q) = %q", k, got)
		}
	}

	if _, err := ParseKind("councils"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(councils) error = %v, want ErrUnknownKind", err)
	}
}

func TestReferenceYear(t *testing.T) {
	tests := []struct {
		name     string
		entity   Dated
		wantYear int
		wantOK   bool
	}{
		{"person with death year", Person{ID: "p", Name: "P", BirthYear: intPtr(1491), DeathYear: intPtr(1556)}, 1556, true},
		{"person without death year", Person{ID: "p", Name: "P", BirthYear: intPtr(1491)}, 0, false},
		{"event uses start year", Event{ID: "e", Name: "E", StartYear: intPtr(1545), EndYear: intPtr(1563)}, 1545, true},
		{"place without year", Place{ID: "b", Name: "B"}, 0, false},
		{"place with year", Place{ID: "b", Name: "B", BuiltYear: intPtr(1626)}, 1626, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, ok := tt.entity.ReferenceYear()
			if ok != tt.wantOK || year != tt.wantYear {
				t.Errorf("ReferenceYear() = (%d, %v), want (%d, %v)", year, ok, tt.wantYear, tt.wantOK)
			}
		})
	}
}

func TestKind_DateField(t *testing.T) {
	if KindPeople.DateField() != "deathYear" {
		t.Errorf("people date field = %q", KindPeople.DateField())
	}

	if KindEvents.DateField() != "startYear" {
		t.Errorf("events date field = %q", KindEvents.DateField())
	}

	if KindPlaces.DateField() != "builtYear" {
		t.Errorf("places date field = %q", KindPlaces.DateField())
	}

	if Kind("other").DateField() != "" {
		t.Error("unknown kind should have no date field")
	}
}

func TestRawRecord_Years(t *testing.T) {
	r := RawRecord{ID: "x", Name: "X", StartYear: intPtr(325), EndYear: intPtr(325)}

	years := r.Years()
	if len(years) != 2 {
		t.Fatalf("Years() returned %d entries, want 2", len(years))
	}

	if years["startYear"] != 325 {
		t.Errorf("startYear = %d, want 325", years["startYear"])
	}
}
