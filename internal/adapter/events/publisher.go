// Package events publishes run results to the event bus.
package events

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/nats-io/nats.go"

	"trendtracker/internal/config"
	"trendtracker/internal/domain/trend"
)

// TrendPublisher emits a computed event after a pipeline run
type TrendPublisher struct {
	conn  *nats.Conn
	topic string
}

// NewTrendPublisher creates a new trend publisher
func NewTrendPublisher(conn *nats.Conn, topic string) *TrendPublisher {
	return &TrendPublisher{
		conn:  conn,
		topic: topic,
	}
}

// Connect opens a NATS connection from configuration
func Connect(cfg config.NATSConfig) (*nats.Conn, error) {
	options := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.Timeout(cfg.ConnectTimeout),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Printf("NATS disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("NATS reconnected to %s", nc.ConnectedUrl())
		}),
	}

	nc, err := nats.Connect(cfg.URL, options...)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to NATS: %w", err)
	}

	return nc, nil
}

type computedEvent struct {
	RunID       string        `json:"run_id"`
	Granularity string        `json:"granularity"`
	ValidRows   int           `json:"valid_rows"`
	Windows     []windowEvent `json:"windows"`
}

type windowEvent struct {
	Window string       `json:"window"`
	Top    []trendEvent `json:"top"`
}

type trendEvent struct {
	Hashtag    string  `json:"hashtag"`
	TrendScore float64 `json:"trend_score"`
	Mentions   int64   `json:"mentions"`
}

// PublishComputed publishes one event carrying the top hashtags per window.
func (p *TrendPublisher) PublishComputed(res trend.Result) error {
	event := computedEvent{
		RunID:       res.RunID,
		Granularity: string(res.Granularity),
		ValidRows:   res.Report.ValidRows,
	}
	for _, ranking := range res.TopK {
		we := windowEvent{Window: ranking.Window.Label()}
		for _, e := range ranking.Entries {
			we.Top = append(we.Top, trendEvent{
				Hashtag:    e.Hashtag,
				TrendScore: e.TrendScore,
				Mentions:   e.TotalMentions,
			})
		}
		event.Windows = append(event.Windows, we)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error marshaling computed event: %w", err)
	}

	subject := fmt.Sprintf("%s.computed", p.topic)
	return p.conn.Publish(subject, data)
}
