package webshop

import (
	"time"

	"github.com/google/uuid"
)

//go:generate reform

const DefaultCurrency = "sat"

// CreateShop is the payload for creating or updating a shop.
type CreateShop struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	PrimaryColor    string  `json:"primary_color"`
	SecondaryColor  string  `json:"secondary_color"`
	BackgroundColor *string `json:"background_color,omitempty"`
	Wallet          string  `json:"wallet"`
	InventoryID     *string `json:"inventory_id,omitempty"`
	Currency        string  `json:"currency"`
	AllowedTags     *string `json:"allowed_tags,omitempty"`
	AllowBitcoin    bool    `json:"allow_bitcoin"`
	AllowFiat       bool    `json:"allow_fiat"`
}

func (in CreateShop) Validate() error {
	if in.Name == "" {
		return ValidationError("name is required")
	}
	if in.Wallet == "" {
		return ValidationError("wallet is required")
	}
	return nil
}

//reform:webshop.shops
type Shop struct {
	ID              string    `reform:"id,pk" json:"id"`
	UserID          string    `reform:"user_id" json:"user_id"`
	Name            string    `reform:"name" json:"name"`
	Description     string    `reform:"description" json:"description"`
	PrimaryColor    string    `reform:"primary_color" json:"primary_color"`
	SecondaryColor  string    `reform:"secondary_color" json:"secondary_color"`
	BackgroundColor *string   `reform:"background_color" json:"background_color,omitempty"`
	Wallet          string    `reform:"wallet" json:"wallet"`
	InventoryID     *string   `reform:"inventory_id" json:"inventory_id,omitempty"`
	Currency        string    `reform:"currency" json:"currency"`
	AllowedTags     *string   `reform:"allowed_tags" json:"allowed_tags,omitempty"`
	AllowBitcoin    bool      `reform:"allow_bitcoin" json:"allow_bitcoin"`
	AllowFiat       bool      `reform:"allow_fiat" json:"allow_fiat"`
	CreatedAt       time.Time `reform:"created_at" json:"created_at"`
	UpdatedAt       time.Time `reform:"updated_at" json:"updated_at"`
}

func NewShop(userID string, in CreateShop) *Shop {
	now := time.Now().UTC()
	s := &Shop{
		ID:              uuid.NewString(),
		UserID:          userID,
		Name:            in.Name,
		Description:     in.Description,
		PrimaryColor:    in.PrimaryColor,
		SecondaryColor:  in.SecondaryColor,
		BackgroundColor: in.BackgroundColor,
		Wallet:          in.Wallet,
		InventoryID:     in.InventoryID,
		Currency:        in.Currency,
		AllowedTags:     in.AllowedTags,
		AllowBitcoin:    in.AllowBitcoin,
		AllowFiat:       in.AllowFiat,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}
	return s
}

// ApplyUpdate overwrites mutable fields. ID, UserID and CreatedAt are kept.
func (s *Shop) ApplyUpdate(in CreateShop) {
	s.Name = in.Name
	s.Description = in.Description
	s.PrimaryColor = in.PrimaryColor
	s.SecondaryColor = in.SecondaryColor
	s.BackgroundColor = in.BackgroundColor
	s.Wallet = in.Wallet
	s.InventoryID = in.InventoryID
	s.Currency = in.Currency
	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}
	s.AllowedTags = in.AllowedTags
	s.AllowBitcoin = in.AllowBitcoin
	s.AllowFiat = in.AllowFiat
	s.UpdatedAt = time.Now().UTC()
}
