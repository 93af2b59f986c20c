package domain

import (
	"errors"
	"fmt"
)

// Metric names a usage count.
type Metric string

// Usage metrics.
const (
	MetricPrompts     Metric = "prompts"
	MetricCompetitors Metric = "competitors"
	MetricCompanies   Metric = "companies"
	MetricDomains     Metric = "domains"
	MetricPages       Metric = "pages"
)

const (
	maxPrompts     = 10000
	maxCompetitors = 20
)

// Limit is the inclusive range accepted for a metric.
type Limit struct {
	Metric Metric
	Min    int
	Max    int
}

// PromptsLimit is the primary-metric range shared by every vendor.
func PromptsLimit() Limit {
	return Limit{Metric: MetricPrompts, Min: 1, Max: maxPrompts}
}

// CompetitorsLimit is the competitor range shared by every vendor.
func CompetitorsLimit() Limit {
	return Limit{Metric: MetricCompetitors, Min: 0, Max: maxCompetitors}
}

// Count returns the value of metric m.
func (u Usage) Count(m Metric) int {
	switch m {
	case MetricPrompts:
		return u.Prompts
	case MetricCompetitors:
		return u.Competitors
	case MetricCompanies:
		return u.Companies
	case MetricDomains:
		return u.Domains
	case MetricPages:
		return u.Pages
	default:
		return 0
	}
}

// Metrics lists every usage metric, primary first.
func Metrics() []Metric {
	return []Metric{MetricPrompts, MetricCompetitors, MetricCompanies, MetricDomains, MetricPages}
}

// ValidateCounts rejects a negative value in any usage field, including
// fields the priced vendor never reads.
func ValidateCounts(usage Usage) error {
	var errs []error
	for _, m := range Metrics() {
		if value := usage.Count(m); value < 0 {
			errs = append(errs, &InputError{
				Field:  string(m),
				Value:  value,
				Reason: fmt.Sprintf("%d is negative", value),
			})
		}
	}
	return errors.Join(errs...)
}

// ValidateUsage checks every limited metric and reports all violations.
func ValidateUsage(usage Usage, limits []Limit) error {
	var errs []error
	for _, limit := range limits {
		value := usage.Count(limit.Metric)
		if value < limit.Min || value > limit.Max {
			errs = append(errs, &InputError{
				Field: string(limit.Metric),
				Value: value,
				Min:   limit.Min,
				Max:   limit.Max,
			})
		}
	}
	return errors.Join(errs...)
}

func metricsOf(limits []Limit) []Metric {
	metrics := make([]Metric, 0, len(limits))
	for _, limit := range limits {
		metrics = append(metrics, limit.Metric)
	}
	return metrics
}
