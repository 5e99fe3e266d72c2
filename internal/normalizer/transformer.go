package normalizer

import (
	"fmt"
	"strings"

	"chronicle/internal/models"
	"chronicle/pkg/utils"
)

// Transformer turns raw records into typed entities.
type Transformer struct {
	strings *utils.StringHelper
}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{
		strings: utils.NewStringHelper(),
	}
}

// Transform builds the entity for kind from r. Names and descriptions have
// their whitespace collapsed; ids are trimmed but otherwise kept verbatim.
func (t *Transformer) Transform(kind models.Kind, r *models.RawRecord) (models.Dated, error) {
	id := strings.TrimSpace(r.ID)
	name := t.strings.NormalizeWhitespace(r.Name)
	desc := t.strings.NormalizeWhitespace(r.Description)

	switch kind {
	case models.KindPeople:
		return models.Person{
			ID:          id,
			Name:        name,
			Role:        strings.TrimSpace(r.Role),
			Description: desc,
			BirthYear:   r.BirthYear,
			DeathYear:   r.DeathYear,
		}, nil
	case models.KindEvents:
		return models.Event{
			ID:          id,
			Name:        name,
			Type:        strings.ToLower(strings.TrimSpace(r.Type)),
			Location:    strings.TrimSpace(r.Location),
			Description: desc,
			StartYear:   r.StartYear,
			EndYear:     r.EndYear,
		}, nil
	case models.KindPlaces:
		return models.Place{
			ID:          id,
			Name:        name,
			City:        strings.TrimSpace(r.City),
			Description: desc,
			BuiltYear:   r.BuiltYear,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownKind, kind)
	}
}
