package domain

import "context"

// Catalog provides read-only vendor profiles.
type Catalog interface {
	// Profile returns the profile of a vendor.
	Profile(vendor Vendor) (VendorProfile, error)

	// Profiles returns every profile in catalog order.
	Profiles() []VendorProfile
}

// Quoter computes vendor costs.
type Quoter interface {
	// Quote prices a usage against a single vendor.
	Quote(ctx context.Context, vendor Vendor, usage Usage, cycle BillingCycle) (Quote, error)

	// Compare prices a usage against every vendor.
	Compare(ctx context.Context, usage Usage, cycle BillingCycle) ([]Comparison, error)

	// Vendors lists the catalog.
	Vendors(ctx context.Context) []VendorProfile
}
