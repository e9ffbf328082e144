package checkout

// PageContext is the host-reported page type for one render. The flags are
// not mutually exclusive: a checkout page may also be a pay-for-order page.
type PageContext struct {
	IsProduct     bool `json:"isProduct"`
	IsCart        bool `json:"isCart"`
	IsCartBlock   bool `json:"isCartBlock"`
	IsCheckout    bool `json:"isCheckout"`
	IsPayForOrder bool `json:"isPayForOrder"`
}

// QualifiesForMessaging reports whether payment messaging belongs on this
// page: product pages, cart pages, and cart-equivalent embedded views.
func (p PageContext) QualifiesForMessaging() bool {
	return p.IsProduct || p.IsCart || p.IsCartBlock
}

// ButtonReporter is implemented by the host's button handlers, which alone
// know whether their button type should show (feature flags, device support).
type ButtonReporter interface {
	ShouldShow() bool
}

// ReporterFunc adapts a plain bool-returning function to ButtonReporter.
type ReporterFunc func() bool

func (f ReporterFunc) ShouldShow() bool {
	return f()
}

// DisplayDecision is the show/hide verdict for the checkout UI elements,
// computed fresh per call. Repeated calls with identical inputs are idempotent
// by construction; de-duplication across render call-sites is the host's
// contract (attach the render at exactly one lifecycle point per page type).
type DisplayDecision struct {
	ShowMessaging      bool `json:"showMessaging"`
	ShowExpressButtons bool `json:"showExpressButtons"`
	ShowSeparator      bool `json:"showSeparator"`

	// SeparatorStartsHidden keeps the separator markup on the page but
	// invisible until client-side button libraries confirm a button
	// actually rendered. It starts hidden whenever the platform button is
	// not going to show.
	SeparatorStartsHidden bool `json:"separatorStartsHidden"`

	// RenderPlatformButton gates the platform button off pay-for-order
	// pages unless the host supports that flow.
	RenderPlatformButton bool `json:"renderPlatformButton"`
}

// DecideDisplay computes the display decision from the page context and the
// injected button reporters. A nil reporter counts as "should not show".
func DecideDisplay(page PageContext, platform, express ButtonReporter, payForOrderFlowSupported bool) DisplayDecision {
	platformShow := platform != nil && platform.ShouldShow()
	expressShow := express != nil && express.ShouldShow()

	return DisplayDecision{
		ShowMessaging:      page.QualifiesForMessaging(),
		ShowExpressButtons: platformShow || expressShow,
		// The separator is checkout-only, independent of which buttons
		// ended up visible.
		ShowSeparator:         page.IsCheckout,
		SeparatorStartsHidden: !platformShow,
		RenderPlatformButton:  !page.IsPayForOrder || payForOrderFlowSupported,
	}
}
