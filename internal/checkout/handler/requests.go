package handler

import (
	"github.com/shopspring/decimal"

	"bnpl-gateway/internal/amount"
	"bnpl-gateway/internal/checkout"
	"bnpl-gateway/internal/eligibility"
	dErrors "bnpl-gateway/pkg/domain-errors"
	pstrings "bnpl-gateway/pkg/platform/strings"
)

// MessagingConfigRequest is the HTTP request body for
// POST /checkout/messaging-config. Capability statuses and account data are
// supplied by the host, already fetched.
type MessagingConfigRequest struct {
	Page checkout.PageContext `json:"page"`

	Product  *checkout.Product         `json:"product,omitempty"`
	Variants map[string]VariantRequest `json:"variants,omitempty"`
	Statuses eligibility.StatusMap     `json:"capabilityStatuses"`
	Enabled  []string                  `json:"enabledMethods"`

	Currency       string          `json:"currency"`
	StoreCountry   string          `json:"storeCountry"`
	BillingCountry string          `json:"billingCountry"`
	CartTotal      decimal.Decimal `json:"cartTotal"`

	Tax       amount.TaxSettings `json:"taxSettings"`
	TaxRate   decimal.Decimal    `json:"taxRate"`
	VATExempt bool               `json:"vatExempt"`

	Account          checkout.AccountInfo `json:"account"`
	Locale           string               `json:"locale"`
	Tokens           checkout.Tokens      `json:"nonce"`
	EndpointTemplate string               `json:"endpointUrl,omitempty"`
}

// VariantRequest is one inlined variant price.
type VariantRequest struct {
	Price decimal.Decimal `json:"price"`
}

// Validate validates and normalizes the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *MessagingConfigRequest) Validate() error {
	if r.Currency == "" {
		return dErrors.New(dErrors.CodeValidation, "currency is required")
	}
	if r.StoreCountry == "" {
		return dErrors.New(dErrors.CodeValidation, "storeCountry is required")
	}
	if r.CartTotal.IsNegative() {
		return dErrors.New(dErrors.CodeValidation, "cartTotal must not be negative")
	}
	if r.Product != nil && r.Product.Price.IsNegative() {
		return dErrors.New(dErrors.CodeValidation, "product.price must not be negative")
	}
	if r.TaxRate.IsNegative() {
		return dErrors.New(dErrors.CodeValidation, "taxRate must not be negative")
	}
	r.Enabled = pstrings.DedupeAndTrim(r.Enabled)
	return nil
}

// buildParams converts the request into service parameters.
func (r *MessagingConfigRequest) buildParams(defaultEndpointTemplate string) checkout.BuildParams {
	endpoint := r.EndpointTemplate
	if endpoint == "" {
		endpoint = defaultEndpointTemplate
	}

	var source checkout.ProductSource
	if len(r.Variants) > 0 {
		variants := make(checkout.VariantMap, len(r.Variants))
		for id, v := range r.Variants {
			variants[id] = checkout.Variant{ID: id, Price: v.Price}
		}
		source = variants
	}

	return checkout.BuildParams{
		Page:             r.Page,
		Product:          r.Product,
		Source:           source,
		EnabledMethods:   r.Enabled,
		Statuses:         r.Statuses,
		Currency:         r.Currency,
		StoreCountry:     r.StoreCountry,
		BillingCountry:   r.BillingCountry,
		CartTotal:        r.CartTotal,
		Tax:              r.Tax,
		TaxRate:          r.TaxRate,
		VATExempt:        r.VATExempt,
		Account:          r.Account,
		Locale:           r.Locale,
		Tokens:           r.Tokens,
		EndpointTemplate: endpoint,
	}
}

// AvailabilityRequest is the HTTP request body for
// POST /checkout/bnpl-availability, the amount-specific recheck the front-end
// issues on quantity or variation changes.
type AvailabilityRequest struct {
	Enabled  []string              `json:"enabledMethods"`
	Statuses eligibility.StatusMap `json:"capabilityStatuses"`

	Currency         string `json:"currency"`
	StoreCountry     string `json:"storeCountry"`
	BillingCountry   string `json:"billingCountry"`
	AmountMinorUnits int64  `json:"amountMinorUnits"`
}

// Validate validates and normalizes the request.
func (r *AvailabilityRequest) Validate() error {
	if r.Currency == "" {
		return dErrors.New(dErrors.CodeValidation, "currency is required")
	}
	if r.StoreCountry == "" {
		return dErrors.New(dErrors.CodeValidation, "storeCountry is required")
	}
	if r.AmountMinorUnits < 0 {
		return dErrors.New(dErrors.CodeValidation, "amountMinorUnits must not be negative")
	}
	r.Enabled = pstrings.DedupeAndTrim(r.Enabled)
	return nil
}

// ExpressButtonsRequest is the HTTP request body for
// POST /checkout/express-buttons. The button-handler booleans come from the
// host's handlers, which alone know their feature flags and device support.
type ExpressButtonsRequest struct {
	Page checkout.PageContext `json:"page"`

	PlatformButtonShouldShow bool `json:"platformButtonShouldShow"`
	ExpressButtonShouldShow  bool `json:"expressButtonShouldShow"`
	PayForOrderFlowSupported bool `json:"payForOrderFlowSupported"`
}
