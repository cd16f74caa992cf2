package kafkabroker

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// Producer publishes anomaly notifications to a single Kafka topic.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(cfg ProducerConfig) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (p *Producer) SendMessage(ctx context.Context, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Value: value,
		Time:  time.Now(),
	})
	if err != nil {
		log.Errorf("Failed to publish to topic %q: %v", p.writer.Topic, err)
		return err
	}
	log.Debugf("Published %d bytes to topic %q", len(value), p.writer.Topic)
	return nil
}

func (p *Producer) Close() error {
	log.Info("Closing kafka writer...")
	return p.writer.Close()
}
