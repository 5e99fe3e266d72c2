package models

// Person represents a historical figure.
type Person struct {
	BirthYear   *int   `json:"birthYear,omitempty"`
	DeathYear   *int   `json:"deathYear,omitempty"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role,omitempty"`
	Description string `json:"description,omitempty"`
}

// Identifier returns the person's catalog id.
func (p Person) Identifier() string { return p.ID }

// DisplayName returns the person's name.
func (p Person) DisplayName() string { return p.Name }

// ReferenceYear returns the death year, which decides the person's century.
func (p Person) ReferenceYear() (int, bool) { return yearOf(p.DeathYear) }
