package normalizer

import (
	"fmt"

	"chronicle/internal/models"
)

// Processor checks and converts raw records.
type Processor struct {
	validator   *Validator
	transformer *Transformer
}

// NewProcessor creates a new processor instance.
func NewProcessor() *Processor {
	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(),
	}
}

// Process validates r and converts it into the entity type for kind.
func (p *Processor) Process(kind models.Kind, r *models.RawRecord) (models.Dated, error) {
	if err := p.validator.Validate(kind, r); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	entity, err := p.transformer.Transform(kind, r)
	if err != nil {
		return nil, fmt.Errorf("transformation failed: %w", err)
	}

	return entity, nil
}
