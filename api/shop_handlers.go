package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webshop-ext/webshop"
)

func (a *API) createShop(c echo.Context) error {
	var in webshop.CreateShop
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := in.Validate(); err != nil {
		return httpError(err)
	}

	shop := webshop.NewShop(userID(c), in)
	if err := a.shops.Create(shop); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, shop)
}

func (a *API) updateShop(c echo.Context) error {
	shop, err := a.shops.GetByID(c.Param("shop_id"))
	if err != nil {
		return httpError(err)
	}
	if shop.UserID != userID(c) {
		return httpError(webshop.ErrForbidden)
	}

	var in webshop.CreateShop
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := in.Validate(); err != nil {
		return httpError(err)
	}

	shop.ApplyUpdate(in)
	if err := a.shops.Update(shop); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, shop)
}

func (a *API) getShop(c echo.Context) error {
	shop, err := a.shops.Get(userID(c), c.Param("shop_id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, shop)
}

func (a *API) listShops(c echo.Context) error {
	f := webshop.FiltersFromQuery(c.QueryParams(), webshop.ShopFilterSpec)
	page, err := a.shops.List(userID(c), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// deleteShop removes the shop. Orders are left in place unless the
// caller explicitly asks for them with clear_client_data=true; orphaned
// orders stay readable for audit.
func (a *API) deleteShop(c echo.Context) error {
	shopID := c.Param("shop_id")
	uid := userID(c)

	if c.QueryParam("clear_client_data") == "true" {
		if _, err := a.shops.Get(uid, shopID); err == nil {
			if err := a.clientData.DeleteByShop(shopID); err != nil {
				return err
			}
		}
	}
	if err := a.shops.Delete(uid, shopID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SimpleStatus{Success: true, Message: "Shop Deleted"})
}
