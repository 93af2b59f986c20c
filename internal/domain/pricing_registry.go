package domain

import (
	"errors"
	"fmt"
)

// StaticCatalog is an immutable Catalog built once at startup.
// Reads hand out copies, so it is safe for concurrent use without locking.
type StaticCatalog struct {
	order    []Vendor
	profiles map[Vendor]VendorProfile
}

// NewStaticCatalog validates and freezes the given profiles.
func NewStaticCatalog(profiles ...VendorProfile) (*StaticCatalog, error) {
	if len(profiles) == 0 {
		return nil, errors.New("catalog cannot be empty")
	}

	c := &StaticCatalog{
		order:    make([]Vendor, 0, len(profiles)),
		profiles: make(map[Vendor]VendorProfile, len(profiles)),
	}

	for _, profile := range profiles {
		if err := validateProfile(profile); err != nil {
			return nil, err
		}
		if _, exists := c.profiles[profile.ID]; exists {
			return nil, fmt.Errorf("vendor %s already registered", profile.ID)
		}

		c.order = append(c.order, profile.ID)
		c.profiles[profile.ID] = profile.clone()
	}

	return c, nil
}

func validateProfile(profile VendorProfile) error {
	if profile.ID == "" {
		return errors.New("vendor id cannot be empty")
	}
	if profile.Currency == "" {
		return fmt.Errorf("vendor %s: currency cannot be empty", profile.ID)
	}
	if len(profile.Plans) == 0 {
		return fmt.Errorf("vendor %s: at least one plan is required", profile.ID)
	}

	seen := make(map[string]bool, len(profile.Plans))
	for _, plan := range profile.Plans {
		if plan.Name == "" {
			return fmt.Errorf("vendor %s: plan name cannot be empty", profile.ID)
		}
		if seen[plan.Name] {
			return fmt.Errorf("vendor %s: duplicate plan %s", profile.ID, plan.Name)
		}
		if plan.PriceMonthly < 0 {
			return fmt.Errorf("vendor %s: plan %s has a negative price", profile.ID, plan.Name)
		}
		if plan.Included < 0 {
			return fmt.Errorf("vendor %s: plan %s has a negative allowance", profile.ID, plan.Name)
		}
		seen[plan.Name] = true
	}

	return nil
}

// Profile returns a copy of the vendor's profile.
func (c *StaticCatalog) Profile(vendor Vendor) (VendorProfile, error) {
	profile, exists := c.profiles[vendor]
	if !exists {
		return VendorProfile{}, fmt.Errorf("%w: %s", ErrVendorNotFound, vendor)
	}
	return profile.clone(), nil
}

// Profiles returns copies of all profiles in registration order.
func (c *StaticCatalog) Profiles() []VendorProfile {
	profiles := make([]VendorProfile, 0, len(c.order))
	for _, vendor := range c.order {
		profiles = append(profiles, c.profiles[vendor].clone())
	}
	return profiles
}
