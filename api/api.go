// Package api exposes the webshop over HTTP: owner-authenticated CRUD
// for shops and orders, the public order submission endpoint and the
// public storefront page.
package api

import (
	"context"
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/webshop-ext/webshop"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

type ShopStore interface {
	Create(shop *webshop.Shop) error
	Get(userID, shopID string) (*webshop.Shop, error)
	GetByID(shopID string) (*webshop.Shop, error)
	IDsByUser(userID string) ([]string, error)
	List(userID string, f webshop.Filters) (*webshop.Page[webshop.Shop], error)
	Update(shop *webshop.Shop) error
	Delete(userID, shopID string) error
}

type ClientDataStore interface {
	Create(cd *webshop.ClientData) error
	Get(shopID, clientDataID string) (*webshop.ClientData, error)
	GetByID(clientDataID string) (*webshop.ClientData, error)
	List(shopIDs []string, f webshop.Filters) (*webshop.Page[webshop.ClientData], error)
	Update(cd *webshop.ClientData) error
	Delete(shopID, clientDataID string) error
	DeleteByShop(shopID string) error
}

// OrderService is the issuance core behind the public submission path.
type OrderService interface {
	PaymentRequest(ctx context.Context, shopID string, draft webshop.CreateClientData) (*webshop.ClientDataPaymentRequest, error)
}

// SimpleStatus is the response of deletion endpoints.
type SimpleStatus struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func New(shops ShopStore, clientData ClientDataStore, orders OrderService) *API {
	return &API{
		shops:      shops,
		clientData: clientData,
		orders:     orders,
		l:          zap.L().Named("api"),
	}
}

type API struct {
	shops      ShopStore
	clientData ClientDataStore
	orders     OrderService
	l          *zap.Logger
}

// Register wires all routes onto the echo instance.
func (a *API) Register(e *echo.Echo) {
	e.Renderer = &renderer{
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
	e.StaticFS("/static", echo.MustSubFS(staticFS, "static"))

	g := e.Group("/api/v1", a.requireUser)
	g.POST("/shop", a.createShop)
	g.GET("/shop/paginated", a.listShops)
	g.GET("/shop/:shop_id", a.getShop)
	g.PUT("/shop/:shop_id", a.updateShop)
	g.DELETE("/shop/:shop_id", a.deleteShop)

	g.POST("/client_data/:shop_id", a.createClientData)
	g.GET("/client_data/paginated", a.listClientData)
	g.GET("/client_data/:client_data_id", a.getClientData)
	g.PUT("/client_data/:client_data_id", a.updateClientData)
	g.DELETE("/client_data/:client_data_id", a.deleteClientData)

	// Anonymous customer paths.
	e.PUT("/api/v1/client_data/public/:shop_id", a.submitPublicClientData)
	e.GET("/:shop_id", a.publicShopPage)

	e.GET("/", a.indexPage, a.requireUser)
}

// requireUser trusts the user identity established by the host
// platform's auth layer, carried on the proxied request.
func (a *API) requireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid := c.Request().Header.Get("X-User-Id")
		if uid == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing user")
		}
		c.Set("user_id", uid)
		return next(c)
	}
}

func userID(c echo.Context) string {
	uid, _ := c.Get("user_id").(string)
	return uid
}

// httpError maps domain errors onto client-facing responses.
func httpError(err error) error {
	switch {
	case errors.Is(err, webshop.ErrShopNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Shop not found.")
	case errors.Is(err, webshop.ErrClientDataNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Client Data not found.")
	case errors.Is(err, webshop.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden.")
	case errors.Is(err, webshop.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, webshop.ErrProvider):
		return echo.NewHTTPError(http.StatusBadGateway, "Payment provider unavailable.")
	default:
		return err
	}
}

type renderer struct {
	templates *template.Template
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
