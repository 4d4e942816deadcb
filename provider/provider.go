// Package provider defines the narrow payment-provider contract the
// webshop core depends on.
package provider

import "context"

// CreateInvoiceParams describes the invoice to request. Meta is carried
// on the payment and comes back on the settlement event untouched.
type CreateInvoiceParams struct {
	Wallet   string
	Amount   float64
	Currency string
	Memo     string
	Meta     map[string]string
}

// Invoice is the provider's answer: a payment request the customer pays
// and a hash for tracking settlement.
type Invoice struct {
	PaymentRequest string
	PaymentHash    string
}

type Provider interface {
	CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*Invoice, error)
}
