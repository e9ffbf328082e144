package handler

import "bnpl-gateway/internal/checkout"

// AvailabilityResponse is the HTTP response for POST /checkout/bnpl-availability.
type AvailabilityResponse struct {
	ShouldShowForAmount bool     `json:"shouldShowForAmount"`
	PaymentMethods      []string `json:"paymentMethods"`
}

// FromAvailability converts a service result to an HTTP response.
func FromAvailability(a checkout.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		ShouldShowForAmount: a.ShouldShowForAmount,
		PaymentMethods:      a.PaymentMethods,
	}
}

// CartTotalResponse is the HTTP response for GET /checkout/cart-total.
type CartTotalResponse struct {
	CartTotal int64  `json:"cartTotal"`
	Currency  string `json:"currency"`
}
