// Package metadata stamps generated reports with a trailing comment block that
// records the validation outcome and a hash of the report body.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// TagStart is the start of the metadata block.
	TagStart = "<!-- METADATA_START"
	// TagEnd is the end of the metadata block.
	TagEnd = "METADATA_END -->"
)

// Metadata verification errors.
var (
	ErrNoMetadataBlock = errors.New("no metadata block found")
	ErrNoHashFound     = errors.New("no hash found in metadata")
	ErrHashMismatch    = errors.New("hash mismatch")
)

// Metadata is the content of a stamp.
type Metadata struct {
	LastModify time.Time
	Hash       string
	Errors     int
	Warnings   int
	Entities   int
	Validation bool
}

var metadataRegex = regexp.MustCompile(`(?s)\n*<!--\s*METADATA_START\s*\n(.*?)\n\s*METADATA_END\s*-->\s*`)

// Extract splits content into its metadata (nil if absent) and the body that was hashed.
func Extract(content string) (*Metadata, string) {
	match := metadataRegex.FindStringSubmatch(content)
	body := strings.TrimRight(metadataRegex.ReplaceAllString(content, ""), "\n")

	if len(match) < 2 {
		return nil, body
	}

	meta := &Metadata{}

	for _, line := range strings.Split(match[1], "\n") {
		key, val, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		switch key {
		case "VALIDATION":
			meta.Validation = strings.EqualFold(val, "TRUE")
		case "LAST_MODIFY":
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				meta.LastModify = t
			}
		case "HASH":
			meta.Hash = val
		case "ERRORS":
			meta.Errors, _ = strconv.Atoi(val)
		case "WARNINGS":
			meta.Warnings, _ = strconv.Atoi(val)
		case "ENTITIES":
			meta.Entities, _ = strconv.Atoi(val)
		}
	}

	return meta, body
}

// CalculateHash returns the hex SHA-256 of content with any metadata block removed.
func CalculateHash(content string) string {
	_, body := Extract(content)
	hash := sha256.Sum256([]byte(body))

	return hex.EncodeToString(hash[:])
}

// Sign replaces any existing block with a fresh one. Validation is true when
// meta.Errors is zero; Hash and LastModify are filled in here.
func Sign(content string, meta Metadata) string {
	_, body := Extract(content)

	valStr := "FALSE"
	if meta.Errors == 0 {
		valStr = "TRUE"
	}

	block := fmt.Sprintf("\n\n%s\nVALIDATION: %s\nERRORS: %d\nWARNINGS: %d\nENTITIES: %d\nLAST_MODIFY: %s\nHASH: %s\n%s\n",
		TagStart, valStr, meta.Errors, meta.Warnings, meta.Entities,
		time.Now().UTC().Format(time.RFC3339), CalculateHash(body), TagEnd)

	return body + block
}

// Verify checks that content still matches the hash in its metadata.
func Verify(content string) (bool, error) {
	meta, body := Extract(content)
	if meta == nil {
		return false, ErrNoMetadataBlock
	}

	if meta.Hash == "" {
		return false, ErrNoHashFound
	}

	calculated := CalculateHash(body)
	if calculated != meta.Hash {
		return false, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, meta.Hash, calculated)
	}

	return true, nil
}
