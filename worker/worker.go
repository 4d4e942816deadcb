// Package worker runs the settlement listener: one long-lived task
// draining the platform's payment-settled events and transitioning
// webshop orders to paid.
package worker

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/webshop-ext/webshop"
	"github.com/webshop-ext/webshop/events"
	"github.com/webshop-ext/webshop/services/orders"
)

var eventsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "webshop",
		Subsystem: "listener",
		Name:      "events_total",
		Help:      "Settlement events drained from the queue, by result.",
	},
	[]string{"result"},
)

func init() {
	prometheus.MustRegister(eventsTotal)
}

// Settler applies the paid transition for one order.
type Settler interface {
	Settle(ctx context.Context, clientDataID string) error
}

func NewListener(source events.Source, settler Settler) *Listener {
	return &Listener{
		source:  source,
		settler: settler,
		queue:   make(chan events.Settlement, 64),
		l:       zap.L().Named("listener"),
	}
}

// Listener owns the settlement queue. It is the sole writer of the paid
// transition: events are drained sequentially, so no two settlements for
// the same order are ever processed concurrently.
type Listener struct {
	source  events.Source
	settler Settler
	queue   chan events.Settlement
	l       *zap.Logger
}

// Run subscribes the queue and drains it until ctx is cancelled. Every
// per-event failure is logged and swallowed; the stream is expected to
// redeliver when settlement notifications matter. Run returns only on
// cancellation.
func (w *Listener) Run(ctx context.Context) error {
	unsubscribe, err := w.source.Subscribe(w.queue)
	if err != nil {
		return errors.Wrap(err, "failed subscribe settlement queue")
	}
	defer unsubscribe()

	w.l.Info("Settlement listener started.")
	for {
		select {
		case <-ctx.Done():
			w.l.Info("Settlement listener stopped.")
			return nil
		case ev := <-w.queue:
			w.handle(ctx, ev)
		}
	}
}

func (w *Listener) handle(ctx context.Context, ev events.Settlement) {
	// The stream is shared across extensions; foreign tags are not ours.
	if ev.Tag != orders.Tag {
		eventsTotal.WithLabelValues("foreign_tag").Inc()
		return
	}

	clientDataID := ev.ClientDataID()
	if clientDataID == "" {
		w.l.Warn("Settlement event without client_data_id.",
			zap.String("payment_hash", ev.PaymentHash),
		)
		eventsTotal.WithLabelValues("malformed").Inc()
		return
	}

	err := w.settler.Settle(ctx, clientDataID)
	switch {
	case err == nil:
		w.l.Info("Invoice paid.",
			zap.String("client_data_id", clientDataID),
			zap.String("payment_hash", ev.PaymentHash),
		)
		eventsTotal.WithLabelValues("ok").Inc()
	case errors.Is(err, webshop.ErrClientDataNotFound):
		// Order may have been deleted after invoice issuance.
		w.l.Warn("Settlement for unknown order.",
			zap.String("client_data_id", clientDataID),
			zap.String("payment_hash", ev.PaymentHash),
		)
		eventsTotal.WithLabelValues("unknown_order").Inc()
	default:
		w.l.Error("Failed mark order paid.",
			zap.String("client_data_id", clientDataID),
			zap.Error(err),
		)
		eventsTotal.WithLabelValues("error").Inc()
	}
}
