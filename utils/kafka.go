package utils

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/Priyankavya/FitnessApp/config"
)

var kafkaWriter *kafka.Writer

// GoalEvent is published whenever the engine changes goal or assignment
// state for a user.
type GoalEvent struct {
	EventID   string    `json:"event_id"`
	UserID    uint      `json:"user_id"`
	EventType string    `json:"event_type"` // goal_created, goal_completed, plan_resynced
	GoalType  string    `json:"goal_type,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// InitializeKafka sets up the writer for goal lifecycle events. Without
// KAFKA_BROKERS the publisher stays disabled and PublishGoalEvent is a
// no-op returning nil.
func InitializeKafka(cfg *config.Config) {
	brokers := cfg.KafkaBrokers
	if brokers == "" {
		log.Println("ℹ️ Kafka not configured, goal events disabled")
		return
	}

	topic := cfg.KafkaTopic
	if topic == "" {
		topic = "nutrifit.goal-events"
	}

	kafkaWriter = &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(brokers, ",")...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 5 * time.Second,
	}
	log.Printf("✅ Kafka publisher ready (topic %s)", topic)
}

// PublishGoalEvent emits one event. Failures are returned to the caller
// so services can decide whether the operation should report them.
func PublishGoalEvent(ctx context.Context, userID uint, eventType, goalType, detail string) error {
	if kafkaWriter == nil {
		return nil
	}

	ev := GoalEvent{
		EventID:   uuid.New().String(),
		UserID:    userID,
		EventType: eventType,
		GoalType:  goalType,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	return kafkaWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.EventID),
		Value: payload,
	})
}
