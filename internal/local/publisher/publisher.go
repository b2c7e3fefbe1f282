// Package publisher delivers synthesized local issues to the issue-tracking
// pipeline over Kafka.
package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"beacon/internal/local/models"
	"beacon/pkg/platform/circuit"
	"beacon/pkg/platform/sentinel"
)

const (
	headerProjectID = "project_id"
	headerPillar    = "pillar_id"
)

// Producer is the slice of *kgo.Client the publisher needs.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// Publisher writes one record per issue, keyed by the fix-work dedup key so
// repeated publishes of the same gap land on the same partition and compact
// together.
type Publisher struct {
	producer Producer
	topic    string
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

type Option func(*Publisher)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func WithBreaker(b *circuit.Breaker) Option {
	return func(p *Publisher) {
		p.breaker = b
	}
}

func New(producer Producer, topic string, opts ...Option) *Publisher {
	p := &Publisher{
		producer: producer,
		topic:    topic,
		breaker:  circuit.New("local-issues-publisher", circuit.WithFailureThreshold(5), circuit.WithCooldown(30*time.Second)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewClient builds a franz-go client for the issues topic.
func NewClient(brokers []string, topic string) (*kgo.Client, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	return kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(5*time.Millisecond),
	)
}

// EnsureTopic creates the topic if it does not exist yet.
func EnsureTopic(ctx context.Context, client *kgo.Client, topic string, partitions int32, replicationFactor int16) error {
	admin := kadm.NewClient(client)
	resp, err := admin.CreateTopic(ctx, partitions, replicationFactor, nil, topic)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", topic, err)
	}
	if resp.Err != nil && !errors.Is(resp.Err, kerr.TopicAlreadyExists) {
		return fmt.Errorf("create topic %s: %w", topic, resp.Err)
	}
	return nil
}

// Publish produces every issue synchronously. Any failed record fails the call.
// While the breaker is open the call fails fast with sentinel.ErrUnavailable.
func (p *Publisher) Publish(ctx context.Context, issues []models.Issue) error {
	if len(issues) == 0 {
		return nil
	}
	if !p.breaker.Allow() {
		return fmt.Errorf("publish local issues: %w", sentinel.ErrUnavailable)
	}

	records := make([]*kgo.Record, 0, len(issues))
	for i := range issues {
		rec, err := p.record(&issues[i])
		if err != nil {
			return err
		}
		records = append(records, rec)
	}

	if err := p.producer.ProduceSync(ctx, records...).FirstErr(); err != nil {
		if _, change := p.breaker.RecordFailure(); change.Opened && p.logger != nil {
			p.logger.WarnContext(ctx, "issue publisher circuit opened", "topic", p.topic, "error", err)
		}
		return fmt.Errorf("publish local issues: %w", err)
	}
	if _, change := p.breaker.RecordSuccess(); change.Closed && p.logger != nil {
		p.logger.InfoContext(ctx, "issue publisher circuit closed", "topic", p.topic)
	}
	return nil
}

func (p *Publisher) record(issue *models.Issue) (*kgo.Record, error) {
	value, err := json.Marshal(issue)
	if err != nil {
		return nil, fmt.Errorf("encode issue %s: %w", issue.FixWorkKey, err)
	}
	return &kgo.Record{
		Topic: p.topic,
		Key:   []byte(issue.FixWorkKey),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: headerProjectID, Value: []byte(issue.ProjectID.String())},
			{Key: headerPillar, Value: []byte(issue.PillarID)},
		},
	}, nil
}
