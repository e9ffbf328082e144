// Package handler wires the checkout endpoints to the checkout service.
// Handlers stay thin: decode, validate, delegate, encode.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"bnpl-gateway/internal/checkout"
	dErrors "bnpl-gateway/pkg/domain-errors"
	"bnpl-gateway/pkg/platform/httputil"
	"bnpl-gateway/pkg/requestcontext"
)

// Service defines the checkout operations the handler depends on.
type Service interface {
	BuildMessagingConfig(ctx context.Context, p checkout.BuildParams) *checkout.MessagingConfig
	CheckAvailability(ctx context.Context, p checkout.AvailabilityParams) checkout.Availability
	NormalizeCartTotal(total decimal.Decimal, currency string) int64
}

// Handler exposes the checkout endpoints.
type Handler struct {
	service          Service
	logger           *slog.Logger
	endpointTemplate string
}

// New constructs a checkout handler with its dependencies.
func New(service Service, logger *slog.Logger, endpointTemplate string) *Handler {
	return &Handler{
		service:          service,
		logger:           logger,
		endpointTemplate: endpointTemplate,
	}
}

// Register mounts checkout endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/checkout/messaging-config", h.HandleMessagingConfig)
	r.Post("/checkout/bnpl-availability", h.HandleBNPLAvailability)
	r.Post("/checkout/express-buttons", h.HandleExpressButtons)
	r.Get("/checkout/cart-total", h.HandleCartTotal)
}

// HandleMessagingConfig handles POST /checkout/messaging-config. Pages that
// do not qualify for messaging get 204: nothing to render.
func (h *Handler) HandleMessagingConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.DecodeAndPrepare[MessagingConfigRequest](w, r, h.logger)
	if !ok {
		return
	}

	cfg := h.service.BuildMessagingConfig(ctx, req.buildParams(h.endpointTemplate))
	if cfg == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.logger.InfoContext(ctx, "messaging config served",
		"request_id", requestcontext.RequestID(ctx),
		"country", cfg.Country,
		"currency", cfg.CurrencyCode,
		"methods", len(cfg.PaymentMethods),
	)
	httputil.WriteJSON(w, http.StatusOK, cfg)
}

// HandleBNPLAvailability handles POST /checkout/bnpl-availability.
func (h *Handler) HandleBNPLAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.DecodeAndPrepare[AvailabilityRequest](w, r, h.logger)
	if !ok {
		return
	}

	result := h.service.CheckAvailability(ctx, checkout.AvailabilityParams{
		EnabledMethods:   req.Enabled,
		Statuses:         req.Statuses,
		Currency:         req.Currency,
		StoreCountry:     req.StoreCountry,
		BillingCountry:   req.BillingCountry,
		AmountMinorUnits: req.AmountMinorUnits,
	})
	httputil.WriteJSON(w, http.StatusOK, FromAvailability(result))
}

// HandleExpressButtons handles POST /checkout/express-buttons.
func (h *Handler) HandleExpressButtons(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[ExpressButtonsRequest](w, r, h.logger)
	if !ok {
		return
	}

	decision := checkout.DecideDisplay(
		req.Page,
		checkout.ReporterFunc(func() bool { return req.PlatformButtonShouldShow }),
		checkout.ReporterFunc(func() bool { return req.ExpressButtonShouldShow }),
		req.PayForOrderFlowSupported,
	)
	httputil.WriteJSON(w, http.StatusOK, decision)
}

// HandleCartTotal handles GET /checkout/cart-total?total=450.00&currency=EUR.
func (h *Handler) HandleCartTotal(w http.ResponseWriter, r *http.Request) {
	currency := r.URL.Query().Get("currency")
	if currency == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "currency is required"))
		return
	}

	total, err := decimal.NewFromString(r.URL.Query().Get("total"))
	if err != nil || total.IsNegative() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "total must be a non-negative decimal"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, CartTotalResponse{
		CartTotal: h.service.NormalizeCartTotal(total, currency),
		Currency:  currency,
	})
}
