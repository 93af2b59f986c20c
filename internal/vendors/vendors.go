// Package vendors lists the tier rule of every supported vendor.
package vendors

import (
	"github.com/davidbz/brandcost/internal/domain"
	"github.com/davidbz/brandcost/internal/vendors/conductor"
	"github.com/davidbz/brandcost/internal/vendors/otterly"
	"github.com/davidbz/brandcost/internal/vendors/profound"
	"github.com/davidbz/brandcost/internal/vendors/ubersuggest"
)

// Rules returns one rule per vendor, in catalog order.
func Rules() []domain.TierRule {
	return []domain.TierRule{
		otterly.NewRule(),
		profound.NewRule(),
		ubersuggest.NewRule(),
		conductor.NewRule(),
	}
}

// NewEngine builds the pricing engine over the given catalog with every vendor rule.
func NewEngine(catalog domain.Catalog) (*domain.Engine, error) {
	return domain.NewEngine(catalog, Rules())
}
