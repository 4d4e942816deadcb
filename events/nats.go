package events

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SettledSubject is the platform subject carrying settled payments for
// every extension.
const SettledSubject = "payments.settled"

func NewNATSSource(nc *nats.Conn, queueGroup string) *NATSSource {
	return &NATSSource{
		nc:    nc,
		group: queueGroup,
		l:     zap.L().Named("events_nats"),
	}
}

// NATSSource feeds the settlement stream from a NATS queue
// subscription. Undecodable messages are logged and dropped; the
// platform owns the wire format and redelivery.
type NATSSource struct {
	nc    *nats.Conn
	group string
	l     *zap.Logger
}

func (s *NATSSource) Subscribe(queue chan<- Settlement) (func(), error) {
	sub, err := s.nc.QueueSubscribe(SettledSubject, s.group, func(msg *nats.Msg) {
		ev, err := DecodeSettlement(msg.Data)
		if err != nil {
			s.l.Warn("Failed unmarshal settlement event.", zap.Error(err))
			return
		}
		queue <- ev
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed subscribe to settled payments")
	}
	s.l.Info("Subscribed.", zap.String("subject", SettledSubject), zap.String("group", s.group))

	return func() {
		if err := sub.Unsubscribe(); err != nil {
			s.l.Warn("Failed unsubscribe.", zap.Error(err))
		}
	}, nil
}

// DecodeSettlement parses a wire payload into the typed envelope. A
// missing top-level tag falls back to the "tag" metadata key.
func DecodeSettlement(data []byte) (Settlement, error) {
	var ev Settlement
	if err := json.Unmarshal(data, &ev); err != nil {
		return Settlement{}, err
	}
	if ev.Tag == "" && ev.Extra != nil {
		ev.Tag = ev.Extra["tag"]
	}
	return ev, nil
}
