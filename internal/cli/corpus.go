package cli

import (
	"fmt"

	"chronicle/internal/catalog"
	"chronicle/internal/models"
	"chronicle/internal/validator"
)

type kindCorpus struct {
	kind    models.Kind
	entries []catalog.Entry
}

// selectKinds returns the single requested kind, or every enabled kind when name is empty.
func (a *app) selectKinds(name string) ([]models.Kind, error) {
	if name == "" {
		return a.cfg.GetEnabledKinds(), nil
	}

	kind, err := models.ParseKind(name)
	if err != nil {
		return nil, err
	}

	return []models.Kind{kind}, nil
}

func (a *app) loadCorpora(kinds []models.Kind) ([]kindCorpus, error) {
	loader := catalog.NewLoader(a.cfg.Catalog.BucketPrefix, a.log)
	corpora := make([]kindCorpus, 0, len(kinds))

	for _, kind := range kinds {
		dir, err := a.cfg.KindDir(kind)
		if err != nil {
			return nil, err
		}

		entries, err := loader.Load(kind, dir)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", kind, err)
		}

		corpora = append(corpora, kindCorpus{kind: kind, entries: entries})
	}

	return corpora, nil
}

func locate(e catalog.Entry) validator.Location {
	return validator.Location{Bucket: e.Bucket, Source: e.Source}
}
