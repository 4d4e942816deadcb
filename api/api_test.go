package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/webshop-ext/webshop"
)

type fakeShops struct {
	shops map[string]*webshop.Shop
}

func (f *fakeShops) Create(shop *webshop.Shop) error {
	cp := *shop
	f.shops[shop.ID] = &cp
	return nil
}

func (f *fakeShops) Get(userID, shopID string) (*webshop.Shop, error) {
	shop, ok := f.shops[shopID]
	if !ok || shop.UserID != userID {
		return nil, webshop.ErrShopNotFound
	}
	cp := *shop
	return &cp, nil
}

func (f *fakeShops) GetByID(shopID string) (*webshop.Shop, error) {
	shop, ok := f.shops[shopID]
	if !ok {
		return nil, webshop.ErrShopNotFound
	}
	cp := *shop
	return &cp, nil
}

func (f *fakeShops) IDsByUser(userID string) ([]string, error) {
	var ids []string
	for id, shop := range f.shops {
		if shop.UserID == userID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeShops) List(userID string, _ webshop.Filters) (*webshop.Page[webshop.Shop], error) {
	page := &webshop.Page[webshop.Shop]{Data: []webshop.Shop{}}
	for _, shop := range f.shops {
		if shop.UserID == userID {
			page.Data = append(page.Data, *shop)
			page.Total++
		}
	}
	return page, nil
}

func (f *fakeShops) Update(shop *webshop.Shop) error {
	cp := *shop
	f.shops[shop.ID] = &cp
	return nil
}

func (f *fakeShops) Delete(userID, shopID string) error {
	if shop, ok := f.shops[shopID]; ok && shop.UserID == userID {
		delete(f.shops, shopID)
	}
	return nil
}

type fakeClientData struct {
	data map[string]*webshop.ClientData
}

func (f *fakeClientData) Create(cd *webshop.ClientData) error {
	cp := *cd
	f.data[cd.ID] = &cp
	return nil
}

func (f *fakeClientData) Get(shopID, clientDataID string) (*webshop.ClientData, error) {
	cd, ok := f.data[clientDataID]
	if !ok || cd.ShopID != shopID {
		return nil, webshop.ErrClientDataNotFound
	}
	cp := *cd
	return &cp, nil
}

func (f *fakeClientData) GetByID(clientDataID string) (*webshop.ClientData, error) {
	cd, ok := f.data[clientDataID]
	if !ok {
		return nil, webshop.ErrClientDataNotFound
	}
	cp := *cd
	return &cp, nil
}

func (f *fakeClientData) List(shopIDs []string, _ webshop.Filters) (*webshop.Page[webshop.ClientData], error) {
	page := &webshop.Page[webshop.ClientData]{Data: []webshop.ClientData{}}
	for _, cd := range f.data {
		for _, shopID := range shopIDs {
			if cd.ShopID == shopID {
				page.Data = append(page.Data, *cd)
				page.Total++
			}
		}
	}
	return page, nil
}

func (f *fakeClientData) Update(cd *webshop.ClientData) error {
	cp := *cd
	f.data[cd.ID] = &cp
	return nil
}

func (f *fakeClientData) Delete(shopID, clientDataID string) error {
	if cd, ok := f.data[clientDataID]; ok && cd.ShopID == shopID {
		delete(f.data, clientDataID)
	}
	return nil
}

func (f *fakeClientData) DeleteByShop(shopID string) error {
	for id, cd := range f.data {
		if cd.ShopID == shopID {
			delete(f.data, id)
		}
	}
	return nil
}

type fakeOrders struct {
	lastShopID string
	lastDraft  webshop.CreateClientData
	resp       *webshop.ClientDataPaymentRequest
	err        error
}

func (f *fakeOrders) PaymentRequest(_ context.Context, shopID string, draft webshop.CreateClientData) (*webshop.ClientDataPaymentRequest, error) {
	f.lastShopID = shopID
	f.lastDraft = draft
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type testEnv struct {
	e          *echo.Echo
	shops      *fakeShops
	clientData *fakeClientData
	orders     *fakeOrders
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		e:          echo.New(),
		shops:      &fakeShops{shops: map[string]*webshop.Shop{}},
		clientData: &fakeClientData{data: map[string]*webshop.ClientData{}},
		orders: &fakeOrders{resp: &webshop.ClientDataPaymentRequest{
			ClientDataID:   "cd-new",
			PaymentRequest: "lnbc1widget",
			PaymentHash:    "hash-1",
		}},
	}
	New(env.shops, env.clientData, env.orders).Register(env.e)
	return env
}

func (env *testEnv) addShop(userID string) *webshop.Shop {
	shop := webshop.NewShop(userID, webshop.CreateShop{Name: "My Shop", Wallet: "wallet-1"})
	env.shops.shops[shop.ID] = shop
	return shop
}

func (env *testEnv) addClientData(t *testing.T, shopID string) *webshop.ClientData {
	t.Helper()
	cd, err := webshop.NewClientData(shopID, webshop.CreateClientData{Product: "Widget", Quantity: 1})
	require.NoError(t, err)
	env.clientData.data[cd.ID] = cd
	return cd
}

func (env *testEnv) do(t *testing.T, method, target, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
