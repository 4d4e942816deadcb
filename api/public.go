package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webshop-ext/webshop"
)

// submitPublicClientData is the anonymous customer path: persist the
// order and answer with a payment request.
func (a *API) submitPublicClientData(c echo.Context) error {
	var in webshop.CreateClientData
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	resp, err := a.orders.PaymentRequest(c.Request().Context(), c.Param("shop_id"), in)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// publicShopPage renders the shareable storefront.
func (a *API) publicShopPage(c echo.Context) error {
	shop, err := a.shops.GetByID(c.Param("shop_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Shop does not exist.")
	}
	return c.Render(http.StatusOK, "public_page.html", map[string]interface{}{
		"Shop": shop,
	})
}

// indexPage renders the owner's admin page.
func (a *API) indexPage(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", map[string]interface{}{
		"UserID": userID(c),
	})
}
