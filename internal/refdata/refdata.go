// Package refdata holds the static reference tables the analysis pipeline
// reads: the claim-phrase taxonomy, the certificate registry, the
// category-to-recommended-certs table, the SDG 15 target table, and the
// certificate remediation guidance. Tables are loaded once at startup and are
// read-only afterwards.
package refdata

import (
	"fmt"
	"os"
	"time"

	"github.com/greenlens/greenlens/internal/model"
	"gopkg.in/yaml.v3"
)

// TaxonomyGroup is one claim type with its ordered phrase list
type TaxonomyGroup struct {
	Type    model.ClaimType `yaml:"type"`
	Phrases []string        `yaml:"phrases"`
}

// SDGEntry maps claim keywords to an impact target. The table is an ordered
// list and the first matching entry wins; entry order is semantically
// load-bearing.
type SDGEntry struct {
	Target   string   `yaml:"target"`
	Label    string   `yaml:"label"`
	Severity float64  `yaml:"severity"`
	Keywords []string `yaml:"keywords"`
}

// Recommendation lists certificate types expected for a product category
type Recommendation struct {
	Category string   `yaml:"category"`
	Certs    []string `yaml:"certs"`
}

// Set is the full reference-data bundle
type Set struct {
	Taxonomy        []TaxonomyGroup               `yaml:"taxonomy"`
	Registry        []model.CertificateRecord     `yaml:"registry"`
	Recommendations []Recommendation              `yaml:"recommendations"`
	SDGTargets      []SDGEntry                    `yaml:"sdg_targets"`
	Guidance        map[string]model.CertGuidance `yaml:"guidance"`
}

const expiryLayout = "2006-01-02"

// Load reads a reference-data override file and validates it. An empty path
// returns the built-in defaults. Malformed data is a hard error: reference
// tables are trusted inputs and a broken table must stop startup, not degrade
// per request.
func Load(path string) (*Set, error) {
	if path == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference data: %w", err)
	}

	var set Set
	if err := yaml.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("parse reference data: %w", err)
	}

	// Sections omitted from the override file keep the built-in tables.
	defaults := defaultSet()
	if len(set.Taxonomy) == 0 {
		set.Taxonomy = defaults.Taxonomy
	}
	if len(set.Registry) == 0 {
		set.Registry = defaults.Registry
	}
	if len(set.Recommendations) == 0 {
		set.Recommendations = defaults.Recommendations
	}
	if len(set.SDGTargets) == 0 {
		set.SDGTargets = defaults.SDGTargets
	}
	if len(set.Guidance) == 0 {
		set.Guidance = defaults.Guidance
	}

	if err := set.validate(); err != nil {
		return nil, fmt.Errorf("validate reference data: %w", err)
	}
	return &set, nil
}

// Default returns the validated built-in tables
func Default() (*Set, error) {
	set := defaultSet()
	if err := set.validate(); err != nil {
		return nil, fmt.Errorf("validate built-in reference data: %w", err)
	}
	return set, nil
}

// validate checks table shapes and parses registry expiry dates
func (s *Set) validate() error {
	if len(s.Taxonomy) == 0 {
		return fmt.Errorf("taxonomy: no claim types defined")
	}
	for _, group := range s.Taxonomy {
		if group.Type == "" {
			return fmt.Errorf("taxonomy: group with empty claim type")
		}
		if len(group.Phrases) == 0 {
			return fmt.Errorf("taxonomy: claim type %q has no phrases", group.Type)
		}
	}

	for i := range s.Registry {
		rec := &s.Registry[i]
		if rec.Company == "" {
			return fmt.Errorf("registry[%d]: missing company", i)
		}
		if rec.CertType == "" {
			return fmt.Errorf("registry[%d]: missing cert_type", i)
		}
		expiry, err := time.Parse(expiryLayout, rec.Expiry)
		if err != nil {
			return fmt.Errorf("registry[%d] %s/%s: bad expiry %q: %w",
				i, rec.Company, rec.CertType, rec.Expiry, err)
		}
		rec.ExpiryDate = expiry
		if len(rec.ApplicableCategories) == 0 {
			return fmt.Errorf("registry[%d] %s/%s: no applicable categories",
				i, rec.Company, rec.CertType)
		}
	}

	for i, entry := range s.SDGTargets {
		if entry.Target == "" {
			return fmt.Errorf("sdg_targets[%d]: missing target id", i)
		}
		if entry.Severity <= 0 {
			return fmt.Errorf("sdg_targets[%d] %s: severity must be positive", i, entry.Target)
		}
		if len(entry.Keywords) == 0 {
			return fmt.Errorf("sdg_targets[%d] %s: no keywords", i, entry.Target)
		}
	}

	for i, rec := range s.Recommendations {
		if rec.Category == "" {
			return fmt.Errorf("recommendations[%d]: missing category", i)
		}
		if len(rec.Certs) == 0 {
			return fmt.Errorf("recommendations[%d] %s: no certs", i, rec.Category)
		}
	}

	return nil
}
