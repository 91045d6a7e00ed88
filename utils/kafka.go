package utils

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/iic-bit/IIC-Backend/config"
)

// RegistrationEvent is the message published after a batch is persisted. The
// notification consumer fans it out as in-app notices and confirmation mail.
type RegistrationEvent struct {
	EventID      uint      `json:"event_id"`
	EventName    string    `json:"event_name"`
	GroupID      string    `json:"group_id"`
	TeamName     string    `json:"team_name"`
	MemberCount  int       `json:"member_count"`
	MemberEmails []string  `json:"member_emails"`
	RegisteredAt time.Time `json:"registered_at"`
}

var (
	kafkaWriter  *kafka.Writer
	kafkaBrokers []string
	kafkaTopic   string
)

// InitializeKafka sets up the registration-event writer. Kafka is optional;
// without brokers configured publishing becomes a no-op.
func InitializeKafka(cfg *config.Config) {
	if cfg.KafkaBrokers == "" {
		log.Println("ℹ️ Kafka not configured, registration events disabled")
		return
	}

	kafkaBrokers = strings.Split(cfg.KafkaBrokers, ",")
	kafkaTopic = cfg.KafkaRegistrationTopic

	kafkaWriter = &kafka.Writer{
		Addr:         kafka.TCP(kafkaBrokers...),
		Topic:        kafkaTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
	}

	log.Printf("✅ Kafka writer initialized (topic %s)", kafkaTopic)
}

// PublishRegistrationEvent is best-effort; registration already succeeded by
// the time this runs.
func PublishRegistrationEvent(ctx context.Context, evt RegistrationEvent) error {
	if kafkaWriter == nil {
		return nil
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	return kafkaWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(evt.EventID), 10)),
		Value: payload,
	})
}

// NewRegistrationReader returns a consumer for the registration topic, or nil
// when Kafka is not configured.
func NewRegistrationReader(groupID string) *kafka.Reader {
	if len(kafkaBrokers) == 0 {
		return nil
	}

	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  kafkaBrokers,
		Topic:    kafkaTopic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}
