// Package lnbits implements the payment provider against the host
// wallet platform's payments API.
package lnbits

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/webshop-ext/webshop/provider"
)

type Config struct {
	// EntrypointURL is the base URL of the platform API.
	EntrypointURL string
	// APIKey is the invoice key of the wallet invoices are credited to.
	APIKey string
}

func NewProvider(cfg Config, client *http.Client) *Provider {
	if client == nil {
		client = http.DefaultClient
	}
	return &Provider{
		cfg:    cfg,
		client: client,
		l:      zap.L().Named("provider_lnbits"),
	}
}

type Provider struct {
	cfg    Config
	client *http.Client
	l      *zap.Logger
}

type createInvoiceRequest struct {
	Out      bool              `json:"out"`
	Amount   float64           `json:"amount"`
	Unit     string            `json:"unit,omitempty"`
	Memo     string            `json:"memo,omitempty"`
	WalletID string            `json:"wallet_id,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
	Internal bool              `json:"internal"`
}

type createInvoiceResponse struct {
	PaymentRequest string `json:"payment_request"`
	PaymentHash    string `json:"payment_hash"`
	Detail         string `json:"detail"`
}

func (p *Provider) CreateInvoice(ctx context.Context, params provider.CreateInvoiceParams) (*provider.Invoice, error) {
	body, err := json.Marshal(createInvoiceRequest{
		Out:      false,
		Amount:   params.Amount,
		Unit:     params.Currency,
		Memo:     params.Memo,
		WalletID: params.Wallet,
		Extra:    params.Meta,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed marshal invoice request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.EntrypointURL+"/api/v1/payments", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed build invoice request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", p.cfg.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed call payments API")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.Wrap(err, "failed read payments API response")
	}

	var out createInvoiceResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrapf(err, "failed decode payments API response (status %d)", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		p.l.Warn("Invoice creation rejected.",
			zap.Int("status", resp.StatusCode),
			zap.String("detail", out.Detail),
		)
		return nil, errors.Errorf("payments API returned status %d: %s", resp.StatusCode, out.Detail)
	}
	if out.PaymentRequest == "" {
		return nil, errors.New("payments API returned empty payment request")
	}

	return &provider.Invoice{
		PaymentRequest: out.PaymentRequest,
		PaymentHash:    out.PaymentHash,
	}, nil
}
