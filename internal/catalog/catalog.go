// Package catalog loads the vendor plan catalog embedded in the binary.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/davidbz/brandcost/internal/domain"
)

//go:embed catalog.yaml
var rawCatalog []byte

type document struct {
	Vendors []vendorEntry `yaml:"vendors"`
}

type vendorEntry struct {
	ID         string      `yaml:"id"`
	Name       string      `yaml:"name"`
	Currency   string      `yaml:"currency"`
	PricingURL string      `yaml:"pricing_url"`
	Unit       string      `yaml:"unit"`
	Plans      []planEntry `yaml:"plans"`
}

type planEntry struct {
	Name         string   `yaml:"name"`
	PriceMonthly int64    `yaml:"price_monthly"`
	Included     int      `yaml:"included"`
	SuitedFor    string   `yaml:"suited_for"`
	Features     []string `yaml:"features"`
}

// Load parses the embedded catalog.
func Load() (*domain.StaticCatalog, error) {
	return Parse(rawCatalog)
}

// Parse builds an immutable catalog from YAML. Unknown keys are rejected.
func Parse(data []byte) (*domain.StaticCatalog, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc document
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	if len(doc.Vendors) == 0 {
		return nil, errors.New("catalog has no vendors")
	}

	profiles := make([]domain.VendorProfile, 0, len(doc.Vendors))
	for _, v := range doc.Vendors {
		profiles = append(profiles, v.toProfile())
	}

	c, err := domain.NewStaticCatalog(profiles...)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return c, nil
}

func (v vendorEntry) toProfile() domain.VendorProfile {
	plans := make([]domain.Plan, 0, len(v.Plans))
	for _, p := range v.Plans {
		plans = append(plans, domain.Plan{
			Name:         p.Name,
			PriceMonthly: p.PriceMonthly,
			Included:     p.Included,
			Features:     p.Features,
			SuitedFor:    p.SuitedFor,
		})
	}

	return domain.VendorProfile{
		ID:         domain.Vendor(v.ID),
		Name:       v.Name,
		Currency:   v.Currency,
		PricingURL: v.PricingURL,
		Unit:       v.Unit,
		Plans:      plans,
	}
}
