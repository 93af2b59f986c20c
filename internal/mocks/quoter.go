// Package mocks holds testify mocks of domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/davidbz/brandcost/internal/domain"
)

// MockQuoter is a mock implementation of domain.Quoter.
type MockQuoter struct {
	mock.Mock
}

// NewMockQuoter creates a MockQuoter whose expectations are asserted on cleanup.
func NewMockQuoter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQuoter {
	m := &MockQuoter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Quote provides a mock function with given fields: ctx, vendor, usage, cycle.
func (m *MockQuoter) Quote(
	ctx context.Context,
	vendor domain.Vendor,
	usage domain.Usage,
	cycle domain.BillingCycle,
) (domain.Quote, error) {
	args := m.Called(ctx, vendor, usage, cycle)
	return args.Get(0).(domain.Quote), args.Error(1)
}

// Compare provides a mock function with given fields: ctx, usage, cycle.
func (m *MockQuoter) Compare(
	ctx context.Context,
	usage domain.Usage,
	cycle domain.BillingCycle,
) ([]domain.Comparison, error) {
	args := m.Called(ctx, usage, cycle)

	var results []domain.Comparison
	if v := args.Get(0); v != nil {
		results = v.([]domain.Comparison)
	}

	return results, args.Error(1)
}

// Vendors provides a mock function with given fields: ctx.
func (m *MockQuoter) Vendors(ctx context.Context) []domain.VendorProfile {
	args := m.Called(ctx)

	if v := args.Get(0); v != nil {
		return v.([]domain.VendorProfile)
	}

	return nil
}
