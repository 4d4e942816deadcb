package webshop

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

//go:generate reform

var emailRx = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,63}$`)

// CreateClientData is the payload for creating or updating an order,
// used both by owners and by the public submission path.
type CreateClientData struct {
	Product  string  `json:"product"`
	Quantity int64   `json:"quantity"`
	Address  *string `json:"address,omitempty"`
	Email    *string `json:"email,omitempty"`
	Number   *string `json:"number,omitempty"`
	Shipped  bool    `json:"shipped"`
	Items    Items   `json:"items,omitempty"`
}

func (in CreateClientData) Validate() error {
	if in.Product == "" {
		return ValidationError("product is required")
	}
	if in.Quantity < 1 {
		return ValidationError("quantity must be at least 1")
	}
	if in.Email != nil && *in.Email != "" && !emailRx.MatchString(*in.Email) {
		return ValidationError("invalid email address")
	}
	return nil
}

//reform:webshop.client_data
type ClientData struct {
	ID        string    `reform:"id,pk" json:"id"`
	ShopID    string    `reform:"shop_id" json:"shop_id"`
	Product   string    `reform:"product" json:"product"`
	Quantity  int64     `reform:"quantity" json:"quantity"`
	Address   *string   `reform:"address" json:"address,omitempty"`
	Email     *string   `reform:"email" json:"email,omitempty"`
	Number    *string   `reform:"number" json:"number,omitempty"`
	Items     *string   `reform:"items" json:"items,omitempty"`
	Shipped   bool      `reform:"shipped" json:"shipped"`
	Paid      bool      `reform:"paid" json:"paid"`
	CreatedAt time.Time `reform:"created_at" json:"created_at"`
	UpdatedAt time.Time `reform:"updated_at" json:"updated_at"`
}

// NewClientData builds a pending (unpaid) order for the shop. Items are
// stored in their serialized form.
func NewClientData(shopID string, in CreateClientData) (*ClientData, error) {
	blob, err := in.Items.Blob()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &ClientData{
		ID:        uuid.NewString(),
		ShopID:    shopID,
		Product:   in.Product,
		Quantity:  in.Quantity,
		Address:   in.Address,
		Email:     in.Email,
		Number:    in.Number,
		Items:     blob,
		Shipped:   in.Shipped,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// LineItems parses the stored items blob back into the structured form.
func (c *ClientData) LineItems() ([]LineItem, error) {
	if c.Items == nil {
		return nil, nil
	}
	return RawItems(*c.Items).List()
}

// ApplyUpdate overwrites the owner-editable fields. ID, ShopID, Paid and
// CreatedAt are kept; the paid flag changes only through settlement.
func (c *ClientData) ApplyUpdate(in CreateClientData) error {
	blob, err := in.Items.Blob()
	if err != nil {
		return err
	}
	c.Product = in.Product
	c.Quantity = in.Quantity
	c.Address = in.Address
	c.Email = in.Email
	c.Number = in.Number
	c.Items = blob
	c.Shipped = in.Shipped
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// ClientDataPaymentRequest is the public submission response: the
// persisted order id plus the provider's payment request. PaymentRequest
// and PaymentHash stay empty when invoice creation failed after the
// order was persisted.
type ClientDataPaymentRequest struct {
	ClientDataID   string `json:"client_data_id"`
	PaymentRequest string `json:"payment_request,omitempty"`
	PaymentHash    string `json:"payment_hash,omitempty"`
}
