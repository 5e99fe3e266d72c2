package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chronicle/internal/century"
	"chronicle/internal/logger"
	"chronicle/internal/models"
	"chronicle/internal/normalizer"
)

// Loader errors.
var (
	ErrInvalidEntity = errors.New("invalid entity")
	ErrMalformedJSON = errors.New("malformed JSON")
)

// Loader reads kind directories into entries.
type Loader struct {
	processor *normalizer.Processor
	log       *logger.Logger
	prefix    string
}

// NewLoader creates a loader for buckets named prefix+N.
func NewLoader(prefix string, log *logger.Logger) *Loader {
	return &Loader{
		processor: normalizer.NewProcessor(),
		log:       log,
		prefix:    prefix,
	}
}

type bucketSource struct {
	path   string
	number int
	isDir  bool
}

// Load reads every bucket under dir. Entries come back ordered by bucket
// number, then by file name, then by position within the file. The first
// record that fails validation aborts the load.
func (l *Loader) Load(kind models.Kind, dir string) ([]Entry, error) {
	buckets, err := l.buckets(dir)
	if err != nil {
		return nil, err
	}

	var entries []Entry

	for _, b := range buckets {
		files := []string{b.path}

		if b.isDir {
			files, err = jsonFiles(b.path)
			if err != nil {
				return nil, err
			}
		}

		for _, file := range files {
			loaded, err := l.loadFile(kind, b.number, file)
			if err != nil {
				return nil, err
			}

			entries = append(entries, loaded...)
		}

		l.log.Debug("loaded bucket", "kind", kind, "bucket", b.number, "files", len(files))
	}

	l.log.Info("loaded catalog", "kind", kind, "buckets", len(buckets), "entities", len(entries))

	return entries, nil
}

func (l *Loader) buckets(dir string) ([]bucketSource, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read kind directory: %w", err)
	}

	var buckets []bucketSource

	for _, item := range items {
		name := item.Name()
		if !item.IsDir() {
			name = strings.TrimSuffix(name, ".json")
			if name == item.Name() {
				continue
			}
		}

		n, err := century.ParseLabel(l.prefix, name)
		if err != nil {
			l.log.Debug("skipping non-bucket entry", "path", filepath.Join(dir, item.Name()))
			continue
		}

		buckets = append(buckets, bucketSource{
			path:   filepath.Join(dir, item.Name()),
			number: n,
			isDir:  item.IsDir(),
		})
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].number < buckets[j].number
	})

	return buckets, nil
}

func jsonFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != dir {
				return filepath.SkipDir
			}

			return nil
		}

		if strings.ToLower(filepath.Ext(path)) == ".json" {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk bucket %s: %w", dir, err)
	}

	sort.Strings(files)

	return files, nil
}

func (l *Loader) loadFile(kind models.Kind, bucket int, path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	records, isArray, err := decodeRecords(data)
	if err != nil {
		return nil, fmt.Errorf("%w in %s: %w", ErrMalformedJSON, path, err)
	}

	entries := make([]Entry, 0, len(records))

	for i := range records {
		source := path
		if isArray {
			source = fmt.Sprintf("%s#%d", path, i)
		}

		entity, err := l.processor.Process(kind, &records[i])
		if err != nil {
			return nil, fmt.Errorf("%w at %s: %w", ErrInvalidEntity, source, err)
		}

		entries = append(entries, Entry{
			Entity: entity,
			Kind:   kind,
			Bucket: bucket,
			Source: source,
		})
	}

	return entries, nil
}

func decodeRecords(data []byte) ([]models.RawRecord, bool, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, false, nil
	}

	if trimmed[0] == '[' {
		var records []models.RawRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, true, err
		}

		return records, true, nil
	}

	var record models.RawRecord
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return nil, false, err
	}

	return []models.RawRecord{record}, false, nil
}
