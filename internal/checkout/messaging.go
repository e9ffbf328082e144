package checkout

// Tokens are the opaque, host-issued anti-forgery tokens the front-end echoes
// back on its follow-up calls. The gateway never inspects them.
type Tokens struct {
	GetCartTotal     string `json:"getCartTotal"`
	BNPLAvailability string `json:"bnplAvailability"`
}

// AccountInfo identifies the merchant account at the payment processor.
type AccountInfo struct {
	AccountID      string `json:"accountId"`
	PublishableKey string `json:"publishableKey"`
}

// MessagingConfig is the configuration payload a checkout front-end uses to
// render payment messaging. It is serialized once per page load and is stable
// under repeated calls with identical inputs: no randomness, no timestamps.
type MessagingConfig struct {
	ProductID         string            `json:"productId,omitempty"`
	ProductVariations map[string]Amount `json:"productVariations,omitempty"`
	Country           string            `json:"country"`
	Locale            string            `json:"locale"`
	AccountID         string            `json:"accountId"`
	PublishableKey    string            `json:"publishableKey"`
	PaymentMethods    []string          `json:"paymentMethods"`
	CurrencyCode      string            `json:"currencyCode"`
	IsCart            bool              `json:"isCart"`
	IsCartBlock       bool              `json:"isCartBlock"`
	CartTotal         int64             `json:"cartTotal"`
	Tokens            Tokens            `json:"nonce"`
	EndpointTemplate  string            `json:"endpointUrl"`

	// ShouldInitialize reports whether any eligible method supports this
	// country+currency at all, ignoring amounts. ShouldShowForAmount adds
	// the amount-bounds check for the current amount. They are exposed
	// separately so the front-end can refresh amount-specific state (e.g.
	// on quantity change) without a full page reload.
	ShouldInitialize    bool `json:"shouldInitialize"`
	ShouldShowForAmount bool `json:"shouldShowForAmount"`

	// EmitContainer signals that a named empty container element should be
	// emitted. In embedded/block contexts the embedding renderer supplies
	// its own mount point, so no container is requested.
	EmitContainer bool `json:"emitContainer"`
}
