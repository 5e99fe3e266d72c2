package models

// RawRecord is a catalog record as decoded from a JSON file, before it is
// checked and turned into a Person, Event or Place.
type RawRecord struct {
	BirthYear   *int   `json:"birthYear,omitempty"`
	DeathYear   *int   `json:"deathYear,omitempty"`
	StartYear   *int   `json:"startYear,omitempty"`
	EndYear     *int   `json:"endYear,omitempty"`
	BuiltYear   *int   `json:"builtYear,omitempty"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role,omitempty"`
	Type        string `json:"type,omitempty"`
	Location    string `json:"location,omitempty"`
	City        string `json:"city,omitempty"`
	Description string `json:"description,omitempty"`
}

// Years returns the named year fields that are present on the record.
func (r *RawRecord) Years() map[string]int {
	years := map[string]int{}

	fields := map[string]*int{
		"birthYear": r.BirthYear,
		"deathYear": r.DeathYear,
		"startYear": r.StartYear,
		"endYear":   r.EndYear,
		"builtYear": r.BuiltYear,
	}

	for name, v := range fields {
		if v != nil {
			years[name] = *v
		}
	}

	return years
}
