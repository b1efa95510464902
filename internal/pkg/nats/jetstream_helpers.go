package nats

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/bikeparts/internal/pkg/constants"
)

// StreamConfig describes a JetStream stream
type StreamConfig struct {
	Name       string
	Subjects   []string
	Retention  jetstream.RetentionPolicy
	Storage    jetstream.StorageType
	Replicas   int
	MaxAge     time.Duration
	MaxBytes   int64
	MaxMsgs    int64
	Discard    jetstream.DiscardPolicy
	Duplicates time.Duration
}

func (s StreamConfig) toJetStream() jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:       s.Name,
		Subjects:   s.Subjects,
		Retention:  s.Retention,
		Storage:    s.Storage,
		Replicas:   s.Replicas,
		MaxAge:     s.MaxAge,
		MaxBytes:   s.MaxBytes,
		MaxMsgs:    s.MaxMsgs,
		Discard:    s.Discard,
		Duplicates: s.Duplicates,
	}
}

// ConsumerConfig describes a JetStream consumer
type ConsumerConfig struct {
	StreamName     string
	ConsumerName   string
	FilterSubjects []string
	DeliverPolicy  jetstream.DeliverPolicy
	AckPolicy      jetstream.AckPolicy
	AckWait        time.Duration
	MaxDeliver     int
	MaxAckPending  int
	InactiveAfter  time.Duration
}

func (c ConsumerConfig) toJetStream() jetstream.ConsumerConfig {
	return jetstream.ConsumerConfig{
		Durable:           c.ConsumerName,
		FilterSubjects:    c.FilterSubjects,
		DeliverPolicy:     c.DeliverPolicy,
		AckPolicy:         c.AckPolicy,
		AckWait:           c.AckWait,
		MaxDeliver:        c.MaxDeliver,
		MaxAckPending:     c.MaxAckPending,
		InactiveThreshold: c.InactiveAfter,
	}
}

// StreamConfigBuilder helps build stream configurations
type StreamConfigBuilder struct {
	config StreamConfig
}

// NewStreamConfigBuilder creates a new stream configuration builder
func NewStreamConfigBuilder(name string) *StreamConfigBuilder {
	return &StreamConfigBuilder{
		config: StreamConfig{
			Name:       name,
			Retention:  jetstream.LimitsPolicy,
			Storage:    jetstream.FileStorage,
			Replicas:   1,
			MaxAge:     24 * time.Hour,
			MaxBytes:   100 * 1024 * 1024, // 100MB
			MaxMsgs:    1000000,
			Discard:    jetstream.DiscardOld,
			Duplicates: 2 * time.Minute,
		},
	}
}

// WithSubjects sets the subjects for the stream
func (b *StreamConfigBuilder) WithSubjects(subjects ...string) *StreamConfigBuilder {
	b.config.Subjects = subjects
	return b
}

// WithStorage sets the storage type
func (b *StreamConfigBuilder) WithStorage(storage jetstream.StorageType) *StreamConfigBuilder {
	b.config.Storage = storage
	return b
}

// WithMaxAge sets the maximum age for messages
func (b *StreamConfigBuilder) WithMaxAge(maxAge time.Duration) *StreamConfigBuilder {
	b.config.MaxAge = maxAge
	return b
}

// WithDuplicateWindow sets how long message ids are remembered for dedupe
func (b *StreamConfigBuilder) WithDuplicateWindow(window time.Duration) *StreamConfigBuilder {
	b.config.Duplicates = window
	return b
}

// Build returns the stream configuration
func (b *StreamConfigBuilder) Build() StreamConfig {
	return b.config
}

// ConsumerConfigBuilder helps build consumer configurations
type ConsumerConfigBuilder struct {
	config ConsumerConfig
}

// NewConsumerConfigBuilder creates a new consumer configuration builder
func NewConsumerConfigBuilder(streamName, consumerName string) *ConsumerConfigBuilder {
	return &ConsumerConfigBuilder{
		config: ConsumerConfig{
			StreamName:    streamName,
			ConsumerName:  consumerName,
			DeliverPolicy: jetstream.DeliverAllPolicy,
			AckPolicy:     jetstream.AckExplicitPolicy,
			AckWait:       30 * time.Second,
			MaxDeliver:    3,
			MaxAckPending: 1000,
		},
	}
}

// WithSubjects sets the filter subjects
func (b *ConsumerConfigBuilder) WithSubjects(subjects ...string) *ConsumerConfigBuilder {
	b.config.FilterSubjects = subjects
	return b
}

// WithDeliverPolicy sets the deliver policy
func (b *ConsumerConfigBuilder) WithDeliverPolicy(policy jetstream.DeliverPolicy) *ConsumerConfigBuilder {
	b.config.DeliverPolicy = policy
	return b
}

// WithMaxDeliver sets the maximum delivery attempts
func (b *ConsumerConfigBuilder) WithMaxDeliver(maxDeliver int) *ConsumerConfigBuilder {
	b.config.MaxDeliver = maxDeliver
	return b
}

// WithInactiveThreshold removes the consumer after it has been idle this long
func (b *ConsumerConfigBuilder) WithInactiveThreshold(d time.Duration) *ConsumerConfigBuilder {
	b.config.InactiveAfter = d
	return b
}

// Build returns the consumer configuration
func (b *ConsumerConfigBuilder) Build() ConsumerConfig {
	return b.config
}

// RiderEventsStream is the stream holding task and payout events relayed
// from the outbox
func RiderEventsStream(name string) StreamConfig {
	return NewStreamConfigBuilder(name).
		WithSubjects(constants.StreamSubjects...).
		WithStorage(jetstream.FileStorage).
		WithMaxAge(7 * 24 * time.Hour).
		WithDuplicateWindow(10 * time.Minute).
		Build()
}

// RealtimeConsumer feeds the websocket gateway. Only new events are
// delivered; a restarted gateway does not replay history to sockets.
func RealtimeConsumer(streamName, instance string) ConsumerConfig {
	return NewConsumerConfigBuilder(streamName, "realtime_"+ConsumerInstance(instance)).
		WithSubjects(constants.SubjectTaskAll, constants.SubjectPayoutAll).
		WithDeliverPolicy(jetstream.DeliverNewPolicy).
		WithMaxDeliver(1).
		WithInactiveThreshold(time.Hour).
		Build()
}

// ConsumerInstance turns a host name into a token usable in a consumer
// name. Dots, wildcards and whitespace become underscores; an empty name
// is replaced by a random id.
func ConsumerInstance(hostname string) string {
	name := strings.Map(func(r rune) rune {
		if r == '.' || r == '*' || r == '>' || unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(hostname))
	if name == "" {
		return uuid.NewString()
	}
	return name
}
