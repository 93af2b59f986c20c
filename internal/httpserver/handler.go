package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/davidbz/brandcost/internal/api"
	"github.com/davidbz/brandcost/internal/config"
	"github.com/davidbz/brandcost/internal/domain"
	"github.com/davidbz/brandcost/internal/observability"
	"github.com/davidbz/brandcost/internal/report"
)

const maxBodyBytes = 1 << 16

// Handler serves the pricing API.
type Handler struct {
	quoter       domain.Quoter
	metrics      *observability.Metrics
	defaultCycle domain.BillingCycle
	now          func() time.Time
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(
	quoter domain.Quoter,
	metrics *observability.Metrics,
	cfg *config.PricingConfig,
) (*Handler, error) {
	cycle := domain.BillingMonthly
	if cfg != nil && cfg.DefaultBillingCycle != "" {
		parsed, err := domain.ParseBillingCycle(cfg.DefaultBillingCycle)
		if err != nil {
			return nil, fmt.Errorf("invalid default billing cycle: %w", err)
		}
		cycle = parsed
	}

	return &Handler{
		quoter:       quoter,
		metrics:      metrics,
		defaultCycle: cycle,
		now:          time.Now,
	}, nil
}

// Omitted usage counts keep the values of domain.DefaultUsage.
type quoteRequest struct {
	Vendor       string       `json:"vendor"`
	BillingCycle string       `json:"billing_cycle"`
	Usage        domain.Usage `json:"usage"`
}

type compareRequest struct {
	BillingCycle string       `json:"billing_cycle"`
	Usage        domain.Usage `json:"usage"`
}

type reportRequest struct {
	Vendor       string       `json:"vendor"`
	BillingCycle string       `json:"billing_cycle"`
	Usage        domain.Usage `json:"usage"`
	Brand        string       `json:"brand"`
	Industry     string       `json:"industry"`
	Platforms    []string     `json:"platforms"`
	Frequency    string       `json:"frequency"`
}

// HandleVendors lists the vendor catalog.
func (h *Handler) HandleVendors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vendors := api.NewVendors(h.quoter.Vendors(r.Context()))

	h.writeJSON(r.Context(), w, map[string]any{"vendors": vendors})
}

// HandleQuote prices a usage against one vendor.
func (h *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := quoteRequest{Usage: domain.DefaultUsage()}
	if err := decodeBody(w, r, &req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx = observability.WithVendor(ctx, req.Vendor)

	cycle, err := h.resolveCycle(req.BillingCycle)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	ctx = observability.WithCycle(ctx, string(cycle))

	logger := observability.FromContext(ctx)
	logger.Info("quote request received", observability.Int("prompts", req.Usage.Prompts))

	quote, err := h.quoter.Quote(ctx, domain.Vendor(req.Vendor), req.Usage, cycle)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	h.metrics.ObserveQuote(quote.Vendor.String(), quote.Tier, string(cycle))
	logger.Info("quote computed",
		observability.String("plan", quote.Tier),
		observability.String("monthly_cost", quote.Monthly.String()),
	)

	h.writeJSON(ctx, w, api.NewQuote(quote))
}

// HandleCompare prices a usage against every vendor.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := compareRequest{Usage: domain.DefaultUsage()}
	if err := decodeBody(w, r, &req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	cycle, err := h.resolveCycle(req.BillingCycle)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	ctx = observability.WithCycle(ctx, string(cycle))

	results, err := h.quoter.Compare(ctx, req.Usage, cycle)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	entries := api.NewComparisons(results)
	for _, res := range results {
		if res.Err == nil {
			h.metrics.ObserveQuote(res.Vendor.String(), res.Quote.Tier, string(cycle))
		}
	}

	observability.FromContext(ctx).Info("comparison computed", observability.Int("vendors", len(entries)))

	h.writeJSON(ctx, w, map[string]any{"results": entries})
}

// HandleReport renders the plain-text report as a download.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := reportRequest{Usage: domain.DefaultUsage()}
	if err := decodeBody(w, r, &req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx = observability.WithVendor(ctx, req.Vendor)

	cycle, err := h.resolveCycle(req.BillingCycle)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	input := report.Input{
		Brand:       req.Brand,
		Industry:    req.Industry,
		Platforms:   req.Platforms,
		Frequency:   report.Frequency(req.Frequency),
		GeneratedAt: h.now(),
	}
	if input.Platforms == nil {
		input.Platforms = report.DefaultPlatforms()
	}
	if input.Frequency == "" {
		input.Frequency = report.FrequencyWeekly
	}
	if err = input.Validate(); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	quote, err := h.quoter.Quote(ctx, domain.Vendor(req.Vendor), req.Usage, cycle)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	text, err := report.Render(input, quote)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	h.metrics.ObserveReport()
	observability.FromContext(ctx).Info("report rendered", observability.String("plan", quote.Tier))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName(input.GeneratedAt)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(r.Context(), w, map[string]string{"status": "healthy"})
}

func (h *Handler) resolveCycle(raw string) (domain.BillingCycle, error) {
	if raw == "" {
		return h.defaultCycle, nil
	}
	return domain.ParseBillingCycle(raw)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	logger := observability.FromContext(ctx)

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		h.metrics.ObserveRejection("invalid_input")
		logger.Info("request rejected", observability.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrVendorNotFound):
		h.metrics.ObserveRejection("unknown_vendor")
		logger.Info("unknown vendor", observability.Error(err))
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		logger.Error("pricing failed", observability.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		observability.FromContext(ctx).Error("failed to encode response", observability.Error(err))
	}
}
