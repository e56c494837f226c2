package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

const LookupEventType = "flight_lookup"

const (
	defaultQueueSize    = 1024
	defaultWriteTimeout = 5 * time.Second
)

var ErrQueueFull = errors.New("kafka producer queue is full")

type LookupEvent struct {
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id"`
	FlightID   string    `json:"flight_id"`
	Found      bool      `json:"found"`
	Time       string    `json:"time,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Producer struct {
	brokers      []string
	topic        string
	writer       *kafka.Writer
	queue        chan kafka.Message
	writeTimeout time.Duration

	closeOnce sync.Once
	done      chan struct{}
}

type ProducerOption func(*Producer)

// WithWriteTimeout bounds each background write to the broker.
func WithWriteTimeout(d time.Duration) ProducerOption {
	return func(p *Producer) {
		p.writeTimeout = d
	}
}

func WithQueueSize(n int) ProducerOption {
	return func(p *Producer) {
		p.queue = make(chan kafka.Message, n)
	}
}

// NewProducer starts a background goroutine that drains a bounded queue
// into Kafka. Publish never touches the network.
func NewProducer(brokers []string, topic string, opts ...ProducerOption) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	p := &Producer{
		brokers:      brokers,
		topic:        topic,
		writer:       writer,
		queue:        make(chan kafka.Message, defaultQueueSize),
		writeTimeout: defaultWriteTimeout,
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	go p.run()
	return p
}

// Publish enqueues payload and returns immediately. It fails with
// ErrQueueFull instead of waiting when the broker falls behind.
func (p *Producer) Publish(_ context.Context, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	select {
	case p.queue <- message:
		return nil
	default:
		return ErrQueueFull
	}
}

func (p *Producer) run() {
	defer close(p.done)
	for message := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), p.writeTimeout)
		if err := p.writer.WriteMessages(ctx, message); err != nil {
			log.Printf("kafka: failed to deliver lookup event to %s: %v", p.topic, err)
		}
		cancel()
	}
}

// Close stops accepting events, waits for the queue to drain and closes
// the writer. Publish must not be called after Close.
func (p *Producer) Close() error {
	var err error
	p.closeOnce.Do(func() {
		close(p.queue)
		<-p.done
		err = p.writer.Close()
	})
	return err
}

// CheckConnection dials the first broker and lists the topic partitions.
// The connection deadline follows ctx.
func (p *Producer) CheckConnection(ctx context.Context) error {
	if len(p.brokers) == 0 {
		return fmt.Errorf("no kafka brokers configured")
	}
	conn, err := kafka.DialContext(ctx, "tcp", p.brokers[0])
	if err != nil {
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return fmt.Errorf("failed to set deadline: %w", err)
		}
	}

	partitions, err := conn.ReadPartitions(p.topic)
	if err != nil {
		return fmt.Errorf("failed to read partitions: %w", err)
	}

	log.Printf("Connected to Kafka. Topic %s has %d partitions", p.topic, len(partitions))
	return nil
}
