package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/sohaum/nepalibazar/internal/listing/domain"
)

// Publisher mirrors every collection change onto NATS so out-of-process
// consumers (feeds, counters) can follow along. In-process re-rendering
// goes through the notify fan-out instead.
type Publisher struct {
	conn *nats.Conn
}

func NewPublisher(url string) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn}, nil
}

// Notify publishes the change as JSON on "listings.<kind>".
func (p *Publisher) Notify(ctx context.Context, c domain.Change) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return p.conn.Publish("listings."+string(c.Kind), data)
}

func (p *Publisher) Close() {
	p.conn.Close()
}
