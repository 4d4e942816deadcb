package webshop

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// LineItem is one priced position of an order. Price and quantity are
// decoded tolerantly: a missing or non-numeric price counts as 0, a
// missing or non-numeric quantity counts as 1, so a single malformed
// item never fails total computation.
type LineItem struct {
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
}

func (li *LineItem) UnmarshalJSON(b []byte) error {
	var aux struct {
		Name     string      `json:"name"`
		Quantity interface{} `json:"quantity"`
		Price    interface{} `json:"price"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	li.Name = aux.Name
	li.Quantity = coerceQuantity(aux.Quantity)
	li.Price = coercePrice(aux.Price)
	return nil
}

func coercePrice(v interface{}) float64 {
	switch p := v.(type) {
	case float64:
		return p
	case string:
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func coerceQuantity(v interface{}) int64 {
	switch q := v.(type) {
	case float64:
		return int64(q)
	case string:
		n, err := strconv.ParseInt(q, 10, 64)
		if err != nil {
			return 1
		}
		return n
	default:
		return 1
	}
}

// Items is the line-items collection as it crosses the system boundary:
// either a structured list or a pre-serialized JSON blob, depending on
// the call path. It is normalized to the structured form before any
// total computation; storage always receives the serialized form.
type Items struct {
	list       []LineItem
	raw        string
	structured bool
	present    bool
}

func StructuredItems(list []LineItem) Items {
	return Items{list: list, structured: true, present: true}
}

func RawItems(raw string) Items {
	return Items{raw: raw, present: true}
}

func (it Items) Present() bool { return it.present }

func (it *Items) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*it = Items{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err == nil {
		*it = RawItems(raw)
		return nil
	}
	var list []LineItem
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*it = StructuredItems(list)
	return nil
}

func (it Items) MarshalJSON() ([]byte, error) {
	if !it.present {
		return []byte("null"), nil
	}
	list, err := it.List()
	if err != nil {
		return nil, err
	}
	return json.Marshal(list)
}

// List returns the structured form, parsing the raw blob when needed.
func (it Items) List() ([]LineItem, error) {
	if !it.present {
		return nil, nil
	}
	if it.structured {
		return it.list, nil
	}
	var list []LineItem
	if err := json.Unmarshal([]byte(it.raw), &list); err != nil {
		return nil, errors.Wrap(ErrValidation, "items blob is not a valid item list")
	}
	return list, nil
}

// Blob returns the serialized form stored in the database, nil when no
// items were given. The blob is re-serialized from the structured form
// so that raw input and structured input store identically.
func (it Items) Blob() (*string, error) {
	if !it.present {
		return nil, nil
	}
	list, err := it.List()
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(list)
	if err != nil {
		return nil, errors.Wrap(err, "failed marshal items")
	}
	s := string(b)
	return &s, nil
}

// Total sums price times quantity over the items.
func Total(items []LineItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
