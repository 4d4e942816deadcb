package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webshop-ext/webshop"
)

func (a *API) createClientData(c echo.Context) error {
	if _, err := a.shops.Get(userID(c), c.Param("shop_id")); err != nil {
		return httpError(err)
	}

	var in webshop.CreateClientData
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := in.Validate(); err != nil {
		return httpError(err)
	}

	cd, err := webshop.NewClientData(c.Param("shop_id"), in)
	if err != nil {
		return httpError(err)
	}
	if err := a.clientData.Create(cd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cd)
}

func (a *API) updateClientData(c echo.Context) error {
	cd, _, err := a.ownedClientData(c)
	if err != nil {
		return err
	}

	var in webshop.CreateClientData
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := in.Validate(); err != nil {
		return httpError(err)
	}

	if err := cd.ApplyUpdate(in); err != nil {
		return httpError(err)
	}
	if err := a.clientData.Update(cd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cd)
}

func (a *API) getClientData(c echo.Context) error {
	cd, _, err := a.ownedClientData(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cd)
}

func (a *API) listClientData(c echo.Context) error {
	shopIDs, err := a.shops.IDsByUser(userID(c))
	if err != nil {
		return err
	}

	if shopID := c.QueryParam("shop_id"); shopID != "" {
		if !containsString(shopIDs, shopID) {
			return echo.NewHTTPError(http.StatusForbidden, "Not your shop.")
		}
		shopIDs = []string{shopID}
	}

	f := webshop.FiltersFromQuery(c.QueryParams(), webshop.ClientDataFilterSpec)
	page, err := a.clientData.List(shopIDs, f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func (a *API) deleteClientData(c echo.Context) error {
	cd, shop, err := a.ownedClientData(c)
	if err != nil {
		return err
	}
	if err := a.clientData.Delete(shop.ID, cd.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SimpleStatus{Success: true, Message: "Client Data Deleted"})
}

// ownedClientData loads the order and verifies the caller owns the shop
// it belongs to. A deleted shop makes the order unreachable through
// owner endpoints (404), a foreign shop makes it forbidden (403).
func (a *API) ownedClientData(c echo.Context) (*webshop.ClientData, *webshop.Shop, error) {
	cd, err := a.clientData.GetByID(c.Param("client_data_id"))
	if err != nil {
		return nil, nil, httpError(err)
	}
	shop, err := a.shops.GetByID(cd.ShopID)
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusNotFound, "Shop deleted for this Client Data.")
	}
	if shop.UserID != userID(c) {
		return nil, nil, httpError(webshop.ErrForbidden)
	}
	return cd, shop, nil
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
