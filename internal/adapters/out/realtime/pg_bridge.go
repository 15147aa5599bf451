package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/pubsub"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// DefaultChannel is the NOTIFY channel used when none is configured.
const DefaultChannel = "foodorder_realtime"

// notification is the NOTIFY payload: the hub topic and the encoded Envelope.
type notification struct {
	Topic   string          `json:"topic"`
	Message json.RawMessage `json:"message"`
}

// PgNotifier implements ports.Notifier with pg_notify so that every instance
// running a Bridge on the same channel receives the event.
type PgNotifier struct {
	db      *gorm.DB
	channel string
}

func NewPgNotifier(db *gorm.DB, channel string) *PgNotifier {
	if channel == "" {
		channel = DefaultChannel
	}
	return &PgNotifier{db: db, channel: channel}
}

func (n *PgNotifier) Notify(ctx context.Context, userID kernel.UUID, eventType string, payload any) error {
	msg, err := newEnvelope(eventType, payload)
	if err != nil {
		return err
	}
	body, err := json.Marshal(notification{Topic: userID.String(), Message: msg})
	if err != nil {
		return err
	}
	return n.db.WithContext(ctx).Exec("SELECT pg_notify(?, ?)", n.channel, string(body)).Error
}

// Bridge relays NOTIFY payloads of one channel into the local hub.
type Bridge struct {
	listener *pq.Listener
	hub      *pubsub.Hub
	logger   *slog.Logger
}

// NewBridge opens a dedicated listening connection for dsn and subscribes to
// channel.
func NewBridge(dsn, channel string, hub *pubsub.Hub, logger *slog.Logger) (*Bridge, error) {
	if channel == "" {
		channel = DefaultChannel
	}
	logger = logger.With("component", "realtime-bridge", "channel", channel)

	listener := pq.NewListener(dsn, time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logger.Warn("listener event", "event", int(ev), "error", err)
		}
	})
	if err := listener.Listen(channel); err != nil {
		_ = listener.Close()
		return nil, err
	}

	return &Bridge{listener: listener, hub: hub, logger: logger}, nil
}

// Run relays notifications until ctx is done.
func (b *Bridge) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-b.listener.Notify:
			if !ok {
				return
			}
			// nil after a reconnect; events sent meanwhile are lost
			if n == nil {
				continue
			}
			b.relay(n.Extra)
		case <-time.After(90 * time.Second):
			if err := b.listener.Ping(); err != nil {
				b.logger.Warn("listener ping failed", "error", err)
			}
		}
	}
}

func (b *Bridge) relay(extra string) {
	var n notification
	if err := json.Unmarshal([]byte(extra), &n); err != nil {
		b.logger.Warn("dropping malformed notification", "error", err)
		return
	}
	b.hub.Publish(n.Topic, n.Message)
}

func (b *Bridge) Close() error {
	return b.listener.Close()
}
