// Package directory provides the local-authority contact lookup used by the
// companion endpoints. It stands in for the external postcode resolution
// service: a read-only table loaded at startup, no network calls.
package directory

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no authority covers a postcode.
var ErrNotFound = errors.New("no local authority found for postcode")

// Authority is one local-authority contact record.
type Authority struct {
	Name             string   `yaml:"name" json:"name"`
	Phone            string   `yaml:"phone" json:"phone"`
	Email            string   `yaml:"email" json:"email"`
	Website          string   `yaml:"website" json:"website"`
	PostcodePrefixes []string `yaml:"postcode_prefixes" json:"-"`
}

// Directory resolves postcodes to local-authority contacts by longest prefix
// match. Immutable after construction.
type Directory struct {
	byPrefix map[string]Authority
	prefixes []string // sorted longest first
}

// New builds a directory from authority records.
func New(authorities []Authority) (*Directory, error) {
	d := &Directory{byPrefix: make(map[string]Authority)}
	for _, a := range authorities {
		if a.Name == "" {
			return nil, fmt.Errorf("authority with empty name")
		}
		for _, prefix := range a.PostcodePrefixes {
			normalized := normalize(prefix)
			if normalized == "" {
				return nil, fmt.Errorf("authority %q: empty postcode prefix", a.Name)
			}
			if existing, dup := d.byPrefix[normalized]; dup {
				return nil, fmt.Errorf("postcode prefix %q claimed by both %q and %q", prefix, existing.Name, a.Name)
			}
			d.byPrefix[normalized] = a
			d.prefixes = append(d.prefixes, normalized)
		}
	}
	sort.Slice(d.prefixes, func(i, j int) bool {
		if len(d.prefixes[i]) != len(d.prefixes[j]) {
			return len(d.prefixes[i]) > len(d.prefixes[j])
		}
		return d.prefixes[i] < d.prefixes[j]
	})
	return d, nil
}

// Load reads an authorities.yaml file.
func Load(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read authorities file %s: %w", path, err)
	}
	var file struct {
		Authorities []Authority `yaml:"authorities"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse authorities file %s: %w", path, err)
	}
	return New(file.Authorities)
}

// Lookup resolves a postcode to its authority contact.
func (d *Directory) Lookup(postcode string) (Authority, error) {
	normalized := normalize(postcode)
	if normalized == "" {
		return Authority{}, fmt.Errorf("postcode is required")
	}
	for _, prefix := range d.prefixes {
		if strings.HasPrefix(normalized, prefix) {
			return d.byPrefix[prefix], nil
		}
	}
	return Authority{}, fmt.Errorf("%w: %s", ErrNotFound, postcode)
}

func normalize(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
}
