package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bnpl-gateway/internal/catalog"
	"bnpl-gateway/internal/checkout"
	"bnpl-gateway/pkg/testutil"
)

func newCheckoutRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := checkout.NewService(catalog.Default(), logger, nil)
	h := New(svc, logger, "/checkout/%%endpoint%%")

	r := chi.NewRouter()
	h.Register(r)
	return r
}

func activeStatuses() map[string]map[string]string {
	return map[string]map[string]string{
		"klarna_payments":            {"status": "active"},
		"affirm_payments":            {"status": "active"},
		"afterpay_clearpay_payments": {"status": "active"},
	}
}

func TestMessagingConfigEndpoint(t *testing.T) {
	router := newCheckoutRouter(t)

	body := map[string]any{
		"page":               map[string]bool{"isCart": true},
		"enabledMethods":     []string{"klarna", "card"},
		"capabilityStatuses": activeStatuses(),
		"currency":           "EUR",
		"storeCountry":       "DE",
		"billingCountry":     "FR",
		"cartTotal":          "450.00",
		"locale":             "fr_FR",
		"account": map[string]string{
			"accountId":      "acct_123",
			"publishableKey": "pk_test_123",
		},
		"nonce": map[string]string{
			"getCartTotal":     "tok-a",
			"bnplAvailability": "tok-b",
		},
	}

	req := testutil.NewJSONRequest(t, http.MethodPost, "/checkout/messaging-config", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp checkout.MessagingConfig
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "FR", resp.Country)
	assert.Equal(t, "fr-FR", resp.Locale)
	assert.Equal(t, int64(45000), resp.CartTotal)
	assert.Equal(t, []string{"klarna"}, resp.PaymentMethods)
	assert.True(t, resp.ShouldInitialize)
	assert.True(t, resp.ShouldShowForAmount)
	assert.True(t, resp.EmitContainer)
	assert.Equal(t, "/checkout/%%endpoint%%", resp.EndpointTemplate)
	assert.Equal(t, "tok-a", resp.Tokens.GetCartTotal)
}

func TestMessagingConfigNonQualifyingPageReturnsNoContent(t *testing.T) {
	router := newCheckoutRouter(t)

	body := map[string]any{
		"page":         map[string]bool{"isCheckout": true},
		"currency":     "EUR",
		"storeCountry": "DE",
	}

	req := testutil.NewJSONRequest(t, http.MethodPost, "/checkout/messaging-config", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMessagingConfigValidation(t *testing.T) {
	router := newCheckoutRouter(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing currency", map[string]any{"storeCountry": "DE"}},
		{"missing store country", map[string]any{"currency": "EUR"}},
		{"negative cart total", map[string]any{
			"currency": "EUR", "storeCountry": "DE", "cartTotal": "-1",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.NewJSONRequest(t, http.MethodPost, "/checkout/messaging-config", tt.body)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, "validation_error", body["error"])
		})
	}
}

func TestBNPLAvailabilityEndpoint(t *testing.T) {
	router := newCheckoutRouter(t)

	post := func(amount int64) *httptest.ResponseRecorder {
		body := map[string]any{
			"enabledMethods":     []string{"klarna"},
			"capabilityStatuses": activeStatuses(),
			"currency":           "EUR",
			"storeCountry":       "DE",
			"billingCountry":     "FR",
			"amountMinorUnits":   amount,
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/checkout/bnpl-availability", body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("amount within bounds", func(t *testing.T) {
		rec := post(45000)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp AvailabilityResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.ShouldShowForAmount)
		assert.Equal(t, []string{"klarna"}, resp.PaymentMethods)
	})

	t.Run("amount over max", func(t *testing.T) {
		rec := post(500000)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp AvailabilityResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.False(t, resp.ShouldShowForAmount)
		assert.Empty(t, resp.PaymentMethods)
	})
}

func TestExpressButtonsEndpoint(t *testing.T) {
	router := newCheckoutRouter(t)

	body := map[string]any{
		"page":                     map[string]bool{"isCheckout": true},
		"platformButtonShouldShow": false,
		"expressButtonShouldShow":  true,
	}

	req := testutil.NewJSONRequest(t, http.MethodPost, "/checkout/express-buttons", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp checkout.DisplayDecision
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.ShowExpressButtons)
	assert.True(t, resp.ShowSeparator)
	assert.True(t, resp.SeparatorStartsHidden)
	assert.True(t, resp.RenderPlatformButton)
}

func TestCartTotalEndpoint(t *testing.T) {
	router := newCheckoutRouter(t)

	t.Run("normalizes total", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodGet, "/checkout/cart-total?total=450.00&currency=EUR")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp CartTotalResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(45000), resp.CartTotal)
		assert.Equal(t, "EUR", resp.Currency)
	})

	t.Run("missing currency is rejected", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodGet, "/checkout/cart-total?total=450.00")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed total is rejected", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodGet, "/checkout/cart-total?total=abc&currency=EUR")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
