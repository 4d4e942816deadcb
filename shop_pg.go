package webshop

import (
	"github.com/pkg/errors"
	reform "gopkg.in/reform.v1"
)

func NewShopPG(db *reform.DB) *ShopPG {
	return &ShopPG{db: db}
}

// ShopPG is the Postgres storage for shops.
type ShopPG struct {
	db *reform.DB
}

func (s *ShopPG) Create(shop *Shop) error {
	return errors.Wrap(s.db.Insert(shop), "failed insert shop")
}

// Get returns the shop only when it belongs to the user.
func (s *ShopPG) Get(userID, shopID string) (*Shop, error) {
	st, err := s.db.SelectOneFrom(ShopTable, "WHERE id = $1 AND user_id = $2", shopID, userID)
	if err == reform.ErrNoRows {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed select shop")
	}
	return st.(*Shop), nil
}

func (s *ShopPG) GetByID(shopID string) (*Shop, error) {
	st, err := s.db.SelectOneFrom(ShopTable, "WHERE id = $1", shopID)
	if err == reform.ErrNoRows {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed select shop")
	}
	return st.(*Shop), nil
}

// IDsByUser lists the ids of all shops owned by the user.
func (s *ShopPG) IDsByUser(userID string) ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT id FROM webshop.shops WHERE user_id = $1", userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed select shop ids")
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "failed scan shop id")
		}
		ids = append(ids, id)
	}
	return ids, errors.Wrap(rows.Err(), "failed iterate shop ids")
}

func (s *ShopPG) List(userID string, f Filters) (*Page[Shop], error) {
	var where []string
	var args []interface{}
	if userID != "" {
		args = append(args, userID)
		where = append(where, "user_id = $1")
	}

	tail, tailArgs := f.Tail(where, args)
	structs, err := s.db.SelectAllFrom(ShopTable, tail, tailArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "failed select shops")
	}

	page := &Page[Shop]{Data: make([]Shop, 0, len(structs))}
	for _, st := range structs {
		page.Data = append(page.Data, *st.(*Shop))
	}

	countTail, countArgs := f.CountTail(where, args)
	row := s.db.QueryRow("SELECT COUNT(*) FROM webshop.shops "+countTail, countArgs...)
	if err := row.Scan(&page.Total); err != nil {
		return nil, errors.Wrap(err, "failed count shops")
	}
	return page, nil
}

func (s *ShopPG) Update(shop *Shop) error {
	return errors.Wrap(s.db.Update(shop), "failed update shop")
}

func (s *ShopPG) Delete(userID, shopID string) error {
	_, err := s.db.DeleteFrom(ShopTable, "WHERE id = $1 AND user_id = $2", shopID, userID)
	return errors.Wrap(err, "failed delete shop")
}
