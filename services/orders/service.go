// Package orders implements the webshop core: invoice issuance for
// submitted orders and the settlement transition that marks them paid.
package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/webshop-ext/webshop"
	"github.com/webshop-ext/webshop/provider"
)

// Tag identifies this extension's payments on the shared settlement
// stream.
const Tag = "webshop"

type ShopStore interface {
	GetByID(shopID string) (*webshop.Shop, error)
}

type ClientDataStore interface {
	Create(cd *webshop.ClientData) error
	GetByID(clientDataID string) (*webshop.ClientData, error)
	Update(cd *webshop.ClientData) error
}

func NewService(shops ShopStore, clientData ClientDataStore, p provider.Provider) *Service {
	return &Service{
		shops:      shops,
		clientData: clientData,
		provider:   p,
		l:          zap.L().Named("orders"),
	}
}

type Service struct {
	shops      ShopStore
	clientData ClientDataStore
	provider   provider.Provider
	l          *zap.Logger
}

// PaymentRequest persists a pending order for the shop and requests an
// invoice for its line-item total, tagged so the settlement listener can
// correlate the payment later.
//
// When the provider call fails the order stays persisted, unpaid and
// without a payment request; the caller sees ErrProvider and may submit
// again, creating a separate order. No shop state is written, so
// concurrent submissions against one shop are independent.
func (s *Service) PaymentRequest(ctx context.Context, shopID string, draft webshop.CreateClientData) (*webshop.ClientDataPaymentRequest, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	shop, err := s.shops.GetByID(shopID)
	if err != nil {
		return nil, err
	}

	cd, err := webshop.NewClientData(shopID, draft)
	if err != nil {
		return nil, err
	}
	if err := s.clientData.Create(cd); err != nil {
		return nil, err
	}

	items, err := cd.LineItems()
	if err != nil {
		return nil, err
	}
	total := webshop.Total(items)

	inv, err := s.provider.CreateInvoice(ctx, provider.CreateInvoiceParams{
		Wallet:   shop.Wallet,
		Amount:   total,
		Currency: shop.Currency,
		Memo:     fmt.Sprintf("%s: %s", cd.ID, cd.Product),
		Meta: map[string]string{
			"tag":            Tag,
			"client_data_id": cd.ID,
		},
	})
	if err != nil {
		s.l.Error("Failed create invoice, order left pending.",
			zap.String("client_data_id", cd.ID),
			zap.String("shop_id", shopID),
			zap.Error(err),
		)
		return nil, errors.Wrapf(webshop.ErrProvider, "order %s: %v", cd.ID, err)
	}

	s.l.Info("Invoice created.",
		zap.String("client_data_id", cd.ID),
		zap.String("payment_hash", inv.PaymentHash),
		zap.Float64("amount", total),
		zap.String("currency", shop.Currency),
	)

	return &webshop.ClientDataPaymentRequest{
		ClientDataID:   cd.ID,
		PaymentRequest: inv.PaymentRequest,
		PaymentHash:    inv.PaymentHash,
	}, nil
}

// Settle marks the order paid. Already-paid orders are left untouched,
// so redelivered settlement notifications are harmless. The paid flag
// never transitions back.
func (s *Service) Settle(ctx context.Context, clientDataID string) error {
	cd, err := s.clientData.GetByID(clientDataID)
	if err != nil {
		return err
	}
	if cd.Paid {
		return nil
	}
	cd.Paid = true
	cd.UpdatedAt = time.Now().UTC()
	return s.clientData.Update(cd)
}
