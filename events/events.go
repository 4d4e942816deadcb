// Package events connects the webshop to the platform-wide stream of
// payment-settled notifications.
package events

// Settlement is the typed envelope of one payment-settled event. The
// stream is shared across extensions: Tag identifies the extension the
// payment belongs to, Extra is the opaque per-payment metadata attached
// at invoice creation. The webshop reads two well-known keys from Extra
// ("tag" is mirrored into Tag, "client_data_id" references the order)
// and ignores everything else.
type Settlement struct {
	Tag         string            `json:"tag"`
	PaymentHash string            `json:"payment_hash"`
	Amount      int64             `json:"amount"`
	Extra       map[string]string `json:"extra"`
}

// ClientDataID extracts the order reference, empty when absent.
func (s Settlement) ClientDataID() string {
	if s.Extra == nil {
		return ""
	}
	return s.Extra["client_data_id"]
}

// Source pushes matching settlement events onto a provided queue.
type Source interface {
	// Subscribe registers the queue and returns an unsubscribe
	// function. Events arriving after unsubscribe are dropped.
	Subscribe(queue chan<- Settlement) (func(), error)
}
