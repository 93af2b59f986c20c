package observability

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

type contextKey string

const traceIDBytes = 16

const (
	// TraceIDKey holds the W3C-sized trace ID of the request.
	TraceIDKey contextKey = "trace_id"

	// RequestIDKey holds the unique request identifier.
	RequestIDKey contextKey = "request_id"

	// VendorKey holds the vendor being priced.
	VendorKey contextKey = "vendor"

	// CycleKey holds the billing cycle being priced.
	CycleKey contextKey = "billing_cycle"
)

// WithTraceID injects trace ID into context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// WithRequestID injects request ID into context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithVendor injects the vendor identifier into context.
func WithVendor(ctx context.Context, vendor string) context.Context {
	return context.WithValue(ctx, VendorKey, vendor)
}

// WithCycle injects the billing cycle into context.
func WithCycle(ctx context.Context, cycle string) context.Context {
	return context.WithValue(ctx, CycleKey, cycle)
}

func stringValue(ctx context.Context, key contextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}

// GetTraceID extracts trace ID from context.
func GetTraceID(ctx context.Context) string { return stringValue(ctx, TraceIDKey) }

// GetRequestID extracts request ID from context.
func GetRequestID(ctx context.Context) string { return stringValue(ctx, RequestIDKey) }

// GetVendor extracts the vendor identifier from context.
func GetVendor(ctx context.Context) string { return stringValue(ctx, VendorKey) }

// GetCycle extracts the billing cycle from context.
func GetCycle(ctx context.Context) string { return stringValue(ctx, CycleKey) }

// GenerateTraceID returns 32 random hex characters, falling back to a UUID.
func GenerateTraceID() string {
	buf := make([]byte, traceIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return uuid.New().String()
	}
	return hex.EncodeToString(buf)
}

// GenerateRequestID generates a unique request identifier (UUID).
func GenerateRequestID() string {
	return uuid.New().String()
}
