package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSettlement(t *testing.T) {
	ev, err := DecodeSettlement([]byte(`{
		"tag": "webshop",
		"payment_hash": "abc",
		"amount": 10,
		"extra": {"tag": "webshop", "client_data_id": "cd-1", "comment": "thanks"}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "webshop", ev.Tag)
	assert.Equal(t, "abc", ev.PaymentHash)
	assert.Equal(t, int64(10), ev.Amount)
	assert.Equal(t, "cd-1", ev.ClientDataID())
}

func TestDecodeSettlementTagFallback(t *testing.T) {
	ev, err := DecodeSettlement([]byte(`{"extra": {"tag": "webshop", "client_data_id": "cd-1"}}`))
	require.NoError(t, err)
	assert.Equal(t, "webshop", ev.Tag)
}

func TestDecodeSettlementInvalid(t *testing.T) {
	_, err := DecodeSettlement([]byte(`{"tag": `))
	assert.Error(t, err)
}

func TestDecodeSettlementNoExtra(t *testing.T) {
	ev, err := DecodeSettlement([]byte(`{"tag": "webshop", "payment_hash": "abc"}`))
	require.NoError(t, err)
	assert.Equal(t, "webshop", ev.Tag)
	assert.Empty(t, ev.ClientDataID())
}
