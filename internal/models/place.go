package models

// Place represents a site such as a basilica.
type Place struct {
	BuiltYear   *int   `json:"builtYear,omitempty"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city,omitempty"`
	Description string `json:"description,omitempty"`
}

// Identifier returns the place's catalog id.
func (p Place) Identifier() string { return p.ID }

// DisplayName returns the place's name.
func (p Place) DisplayName() string { return p.Name }

// ReferenceYear returns the year the place was built, if known.
func (p Place) ReferenceYear() (int, bool) { return yearOf(p.BuiltYear) }
