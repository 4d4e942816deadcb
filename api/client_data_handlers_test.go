package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webshop-ext/webshop"
)

func TestCreateClientData(t *testing.T) {
	env := newTestEnv(t)
	shop := env.addShop("user-1")

	rec := env.do(t, http.MethodPost, "/api/v1/client_data/"+shop.ID, "user-1", webshop.CreateClientData{
		Product:  "Widget",
		Quantity: 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var cd webshop.ClientData
	decodeJSON(t, rec, &cd)
	assert.NotEmpty(t, cd.ID)
	assert.Equal(t, shop.ID, cd.ShopID)
	assert.False(t, cd.Paid)
	assert.Contains(t, env.clientData.data, cd.ID)
}

func TestCreateClientDataForeignShop(t *testing.T) {
	env := newTestEnv(t)
	shop := env.addShop("user-1")

	rec := env.do(t, http.MethodPost, "/api/v1/client_data/"+shop.ID, "user-2", webshop.CreateClientData{
		Product:  "Widget",
		Quantity: 1,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, env.clientData.data)
}

func TestCreateClientDataInvalidQuantity(t *testing.T) {
	env := newTestEnv(t)
	shop := env.addShop("user-1")

	rec := env.do(t, http.MethodPost, "/api/v1/client_data/"+shop.ID, "user-1", webshop.CreateClientData{
		Product:  "Widget",
		Quantity: 0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetClientData(t *testing.T) {
	env := newTestEnv(t)
	shop := env.addShop("user-1")
	cd := env.addClientData(t, shop.ID)

	rec := env.do(t, http.MethodGet, "/api/v1/client_data/"+cd.ID, "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got webshop.ClientData
	decodeJSON(t, rec, &got)
	assert.Equal(t, cd.ID, got.ID)
}

func TestGetClientDataForeignOwner(t *testing.T) {
	env := newTestEnv(t)
	shop := env.addShop("user-1")
	cd := env.addClientData(t, shop.ID)

	rec := env.do(t, http.MethodGet, "/api/v1/client_data/"+cd.ID, "user-2", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// An order whose shop was deleted stays in storage but is unreachable
// through owner endpoints.
func TestGetClientDataShopDeleted(t *testing.T) {
	env := newTestEnv(t)
	cd := env.addClientData(t, "gone-shop")

	rec := env.do(t, http.MethodGet, "/api/v1/client_data/"+cd.ID, "user-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, env.clientData.data, cd.ID)
}

func TestUpdateClientDataKeepsPaid(t *testing.T) {
	env := newTestEnv(t)
	shop := env.addShop("user-1")
	cd := env.addClientData(t, shop.ID)
	env.clientData.data[cd.ID].Paid = true

	rec := env.do(t, http.MethodPut, "/api/v1/client_data/"+cd.ID, "user-1", webshop.CreateClientData{
		Product:  "Gadget",
		Quantity: 3,
		Shipped:  true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var got webshop.ClientData
	decodeJSON(t, rec, &got)
	assert.Equal(t, "Gadget", got.Product)
	assert.True(t, got.Shipped)
	assert.True(t, got.Paid)
}

func TestUpdateClientDataInvalidEmail(t *testing.T) {
	env := newTestEnv(t)
	shop := env.addShop("user-1")
	cd := env.addClientData(t, shop.ID)

	email := "not-an-email"
	rec := env.do(t, http.MethodPut, "/api/v1/client_data/"+cd.ID, "user-1", webshop.CreateClientData{
		Product:  "Widget",
		Quantity: 1,
		Email:    &email,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListClientData(t *testing.T) {
	env := newTestEnv(t)
	shop := env.addShop("user-1")
	env.addClientData(t, shop.ID)
	env.addClientData(t, shop.ID)
	foreign := env.addShop("user-2")
	env.addClientData(t, foreign.ID)

	rec := env.do(t, http.MethodGet, "/api/v1/client_data/paginated", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page webshop.Page[webshop.ClientData]
	decodeJSON(t, rec, &page)
	assert.Equal(t, int64(2), page.Total)
}

func TestListClientDataForeignShopFilter(t *testing.T) {
	env := newTestEnv(t)
	env.addShop("user-1")
	foreign := env.addShop("user-2")

	rec := env.do(t, http.MethodGet, "/api/v1/client_data/paginated?shop_id="+foreign.ID, "user-1", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListClientDataOwnShopFilter(t *testing.T) {
	env := newTestEnv(t)
	shop := env.addShop("user-1")
	other := env.addShop("user-1")
	env.addClientData(t, shop.ID)
	env.addClientData(t, other.ID)

	rec := env.do(t, http.MethodGet, "/api/v1/client_data/paginated?shop_id="+shop.ID, "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page webshop.Page[webshop.ClientData]
	decodeJSON(t, rec, &page)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, shop.ID, page.Data[0].ShopID)
}

func TestDeleteClientData(t *testing.T) {
	env := newTestEnv(t)
	shop := env.addShop("user-1")
	cd := env.addClientData(t, shop.ID)

	rec := env.do(t, http.MethodDelete, "/api/v1/client_data/"+cd.ID, "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var status SimpleStatus
	decodeJSON(t, rec, &status)
	assert.True(t, status.Success)
	assert.NotContains(t, env.clientData.data, cd.ID)
}

func TestDeleteClientDataForeignOwner(t *testing.T) {
	env := newTestEnv(t)
	shop := env.addShop("user-1")
	cd := env.addClientData(t, shop.ID)

	rec := env.do(t, http.MethodDelete, "/api/v1/client_data/"+cd.ID, "user-2", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, env.clientData.data, cd.ID)
}
