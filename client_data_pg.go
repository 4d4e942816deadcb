package webshop

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	reform "gopkg.in/reform.v1"
)

func NewClientDataPG(db *reform.DB) *ClientDataPG {
	return &ClientDataPG{db: db}
}

// ClientDataPG is the Postgres storage for orders.
type ClientDataPG struct {
	db *reform.DB
}

func (s *ClientDataPG) Create(cd *ClientData) error {
	return errors.Wrap(s.db.Insert(cd), "failed insert client data")
}

// Get returns the order only when it belongs to the shop.
func (s *ClientDataPG) Get(shopID, clientDataID string) (*ClientData, error) {
	st, err := s.db.SelectOneFrom(ClientDataTable, "WHERE id = $1 AND shop_id = $2", clientDataID, shopID)
	if err == reform.ErrNoRows {
		return nil, ErrClientDataNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed select client data")
	}
	return st.(*ClientData), nil
}

func (s *ClientDataPG) GetByID(clientDataID string) (*ClientData, error) {
	st, err := s.db.SelectOneFrom(ClientDataTable, "WHERE id = $1", clientDataID)
	if err == reform.ErrNoRows {
		return nil, ErrClientDataNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed select client data")
	}
	return st.(*ClientData), nil
}

// List pages over orders of the given shops. An empty shop set yields an
// empty page, not all rows.
func (s *ClientDataPG) List(shopIDs []string, f Filters) (*Page[ClientData], error) {
	if len(shopIDs) == 0 {
		return &Page[ClientData]{Data: []ClientData{}}, nil
	}

	var args []interface{}
	placeholders := make([]string, 0, len(shopIDs))
	for _, id := range shopIDs {
		args = append(args, id)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}
	where := []string{"shop_id IN (" + strings.Join(placeholders, ", ") + ")"}

	tail, tailArgs := f.Tail(where, args)
	structs, err := s.db.SelectAllFrom(ClientDataTable, tail, tailArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "failed select client data")
	}

	page := &Page[ClientData]{Data: make([]ClientData, 0, len(structs))}
	for _, st := range structs {
		page.Data = append(page.Data, *st.(*ClientData))
	}

	countTail, countArgs := f.CountTail(where, args)
	row := s.db.QueryRow("SELECT COUNT(*) FROM webshop.client_data "+countTail, countArgs...)
	if err := row.Scan(&page.Total); err != nil {
		return nil, errors.Wrap(err, "failed count client data")
	}
	return page, nil
}

func (s *ClientDataPG) Update(cd *ClientData) error {
	return errors.Wrap(s.db.Update(cd), "failed update client data")
}

func (s *ClientDataPG) Delete(shopID, clientDataID string) error {
	_, err := s.db.DeleteFrom(ClientDataTable, "WHERE id = $1 AND shop_id = $2", clientDataID, shopID)
	return errors.Wrap(err, "failed delete client data")
}

// DeleteByShop removes all orders of a shop. Used only when shop
// deletion explicitly asks for it.
func (s *ClientDataPG) DeleteByShop(shopID string) error {
	_, err := s.db.DeleteFrom(ClientDataTable, "WHERE shop_id = $1", shopID)
	return errors.Wrap(err, "failed delete client data by shop")
}
