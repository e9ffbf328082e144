package checkout

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"bnpl-gateway/internal/amount"
	"bnpl-gateway/internal/catalog"
	"bnpl-gateway/internal/checkout/metrics"
	"bnpl-gateway/internal/eligibility"
)

// Service assembles messaging configs and availability answers from the
// catalog and the request-supplied facts. It holds no per-request state.
type Service struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService constructs a checkout service with its dependencies.
func NewService(cat *catalog.Catalog, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{catalog: cat, logger: logger, metrics: m}
}

// BuildParams carries everything one messaging-config build needs. All remote
// data (capability statuses, account info) is already fetched by the host.
type BuildParams struct {
	Page PageContext

	// Product is nil on pages without a product, e.g. the cart page.
	Product *Product
	Source  ProductSource

	EnabledMethods []string
	Statuses       eligibility.StatusMap

	Currency       string
	StoreCountry   string
	BillingCountry string

	// CartTotal is the raw cart total in major units.
	CartTotal decimal.Decimal

	Tax       amount.TaxSettings
	TaxRate   decimal.Decimal
	VATExempt bool

	Account          AccountInfo
	Locale           string
	Tokens           Tokens
	EndpointTemplate string
}

// BuildMessagingConfig produces the messaging config payload for one page
// render, or nil when the page does not qualify for messaging.
func (s *Service) BuildMessagingConfig(ctx context.Context, p BuildParams) *MessagingConfig {
	start := time.Now()
	defer func() {
		s.metrics.ObserveBuildLatency(time.Since(start))
	}()

	if !p.Page.QualifiesForMessaging() {
		s.metrics.IncrementConfigBuild("skipped")
		return nil
	}

	normalizer := amount.Normalizer{Rate: p.TaxRate}
	cartTotal := normalizer.Normalize(p.CartTotal, p.Currency, amount.TaxPolicyNone)

	txn := eligibility.TransactionContext{
		Currency:            p.Currency,
		StoreCountry:        p.StoreCountry,
		BillingCountry:      p.BillingCountry,
		CartTotalMinorUnits: cartTotal,
	}
	country := txn.EffectiveCountry()

	cfg := &MessagingConfig{
		Country:          country,
		Locale:           ToProcessorLocale(p.Locale),
		AccountID:        p.Account.AccountID,
		PublishableKey:   p.Account.PublishableKey,
		CurrencyCode:     p.Currency,
		IsCart:           p.Page.IsCart,
		IsCartBlock:      p.Page.IsCartBlock,
		CartTotal:        cartTotal,
		Tokens:           p.Tokens,
		EndpointTemplate: p.EndpointTemplate,
		EmitContainer:    !p.Page.IsCartBlock,
	}

	// Messaging-level checks run against the base product price; cart
	// pages fall back to the cart total.
	checkAmount := cartTotal
	if p.Product != nil {
		// One policy decision covers the base product and all variants.
		policy := amount.SelectTaxPolicy(p.Tax, p.Product.Taxable, p.VATExempt)
		amounts := BuildProductAmounts(*p.Product, p.Source, normalizer, policy, p.Currency)
		cfg.ProductID = BaseProductKey
		cfg.ProductVariations = amounts.Variations
		checkAmount = amounts.BasePrice
	}

	active := eligibility.FilterActive(p.EnabledMethods, s.catalog, p.Statuses)
	eligible := eligibility.Resolve(p.EnabledMethods, s.catalog, p.Statuses, txn, checkAmount)

	cfg.PaymentMethods = eligible
	cfg.ShouldInitialize = eligibility.AnySupportsCountry(active, s.catalog, country, p.Currency)
	cfg.ShouldShowForAmount = eligibility.AnyAvailableForAmount(active, s.catalog, country, p.Currency, checkAmount)

	s.recordOutcomes(active, eligible)
	s.metrics.IncrementConfigBuild("built")
	if s.logger != nil {
		s.logger.DebugContext(ctx, "messaging config built",
			"country", country,
			"currency", p.Currency,
			"eligible_methods", len(eligible),
			"should_initialize", cfg.ShouldInitialize,
			"should_show_for_amount", cfg.ShouldShowForAmount,
		)
	}

	return cfg
}

// AvailabilityParams is the amount-specific recheck input, used when the
// front-end lazily refetches after a quantity or variation change.
type AvailabilityParams struct {
	EnabledMethods []string
	Statuses       eligibility.StatusMap

	Currency         string
	StoreCountry     string
	BillingCountry   string
	AmountMinorUnits int64
}

// Availability is the amount-specific recheck result.
type Availability struct {
	ShouldShowForAmount bool
	PaymentMethods      []string
}

// CheckAvailability re-runs the eligibility resolution for a caller-supplied
// amount, typically the current cart total.
func (s *Service) CheckAvailability(ctx context.Context, p AvailabilityParams) Availability {
	txn := eligibility.TransactionContext{
		Currency:            p.Currency,
		StoreCountry:        p.StoreCountry,
		BillingCountry:      p.BillingCountry,
		CartTotalMinorUnits: p.AmountMinorUnits,
	}

	active := eligibility.FilterActive(p.EnabledMethods, s.catalog, p.Statuses)
	eligible := eligibility.Resolve(p.EnabledMethods, s.catalog, p.Statuses, txn, p.AmountMinorUnits)
	s.recordOutcomes(active, eligible)

	return Availability{
		ShouldShowForAmount: eligibility.AnyAvailableForAmount(active, s.catalog, txn.EffectiveCountry(), p.Currency, p.AmountMinorUnits),
		PaymentMethods:      eligible,
	}
}

// NormalizeCartTotal converts a raw major-unit cart total into minor units.
func (s *Service) NormalizeCartTotal(total decimal.Decimal, currency string) int64 {
	return amount.Normalizer{}.Normalize(total, currency, amount.TaxPolicyNone)
}

func (s *Service) recordOutcomes(active, eligible []string) {
	inEligible := make(map[string]struct{}, len(eligible))
	for _, id := range eligible {
		inEligible[id] = struct{}{}
	}
	for _, id := range active {
		outcome := "excluded"
		if _, ok := inEligible[id]; ok {
			outcome = "eligible"
		}
		s.metrics.IncrementMethodOutcome(id, outcome)
	}
}
