// Package nats wraps the NATS client and JetStream publishing helpers.
package nats

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NewClient dials the NATS server at url, giving up after timeout.
func NewClient(url string, timeout time.Duration) (*nats.Conn, error) {
	conn, err := nats.Connect(url, nats.Timeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	return conn, nil
}

// NewJetStreamContext creates a JetStream context on top of an established
// connection. The connection is closed when the context cannot be created.
func NewJetStreamContext(conn *nats.Conn) (jetstream.JetStream, error) {
	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}
	return js, nil
}
