package service

import "github.com/chaatcart/kiosk-api/internal/domain/entity"

// PricingConfig holds the online-payment surcharges applied at checkout
type PricingConfig struct {
	TaxRate        float64 // e.g. 0.0825
	ConvenienceFee float64 // flat fee per online order
}

// Quote is the server-side price breakdown for a checkout. For the online
// path StripeTotal is the amount the provider should capture; a counter
// order collects Total at the window.
type Quote struct {
	Subtotal       float64 `json:"subtotal"`
	Tip            float64 `json:"tip"`
	TaxAmount      float64 `json:"tax_amount"`
	ConvenienceFee float64 `json:"convenience_fee"`
	// AmountDue is what the customer pays, never the order subtotal. A
	// checkout submission's total field must carry Subtotal, not this.
	AmountDue   float64 `json:"amount_due"`
	StripeTotal float64 `json:"stripe_total,omitempty"`
}

// BuildQuote computes the checkout breakdown so the client and the captured
// amount always agree. Tip is never taxed. All figures are rounded here
// because the quote is a presentation boundary.
func BuildQuote(cfg PricingConfig, subtotal, tip float64, online bool) Quote {
	q := Quote{
		Subtotal: entity.RoundMoney(subtotal),
		Tip:      entity.RoundMoney(tip),
	}

	if online {
		q.TaxAmount = entity.RoundMoney(subtotal * cfg.TaxRate)
		q.ConvenienceFee = entity.RoundMoney(cfg.ConvenienceFee)
		q.StripeTotal = entity.RoundMoney(q.Subtotal + q.TaxAmount + q.ConvenienceFee + q.Tip)
		q.AmountDue = q.StripeTotal
		return q
	}

	q.AmountDue = entity.RoundMoney(q.Subtotal + q.Tip)
	return q
}
