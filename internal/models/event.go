package models

// Event represents a dated event such as a council or a schism.
type Event struct {
	StartYear   *int   `json:"startYear,omitempty"`
	EndYear     *int   `json:"endYear,omitempty"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// Identifier returns the event's catalog id.
func (e Event) Identifier() string { return e.ID }

// DisplayName returns the event's name.
func (e Event) DisplayName() string { return e.Name }

// ReferenceYear returns the start year.
func (e Event) ReferenceYear() (int, bool) { return yearOf(e.StartYear) }

// EventType returns the event's type, such as "council".
func (e Event) EventType() string { return e.Type }
