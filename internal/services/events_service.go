package services

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/TheTestGit/LinkedInPro/internal/models"
)

// ActivityQueue is the queue activity entries are mirrored to for downstream
// consumers (notification fan-out, external audit sinks).
const ActivityQueue = "activity_events"

// EventsService publishes activity events to RabbitMQ. It is optional: when
// no broker is reachable the server runs without it and activity entries are
// only persisted.
type EventsService struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewEventsService connects to RabbitMQ using the RABBITMQ_* environment
// variables and declares the activity queue
func NewEventsService() (*EventsService, error) {
	host := getEnv("RABBITMQ_HOST", "localhost")
	port := getEnv("RABBITMQ_PORT", "5672")
	user := getEnv("RABBITMQ_USER", "guest")
	pass := getEnv("RABBITMQ_PASS", "guest")

	url := fmt.Sprintf("amqp://%s:%s@%s:%s/", user, pass, host, port)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		ActivityQueue, // name
		true,          // durable
		false,         // delete when unused
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	logrus.Info("Events service connected to RabbitMQ")
	return &EventsService{conn: conn, channel: channel}, nil
}

// PublishActivity publishes an activity entry to the activity queue. A nil
// receiver is a no-op so callers need not guard on the optional service.
func (s *EventsService) PublishActivity(entry *models.ActivityLog) error {
	if s == nil {
		return nil
	}

	body, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal activity event: %w", err)
	}

	err = s.channel.Publish(
		"",            // exchange
		ActivityQueue, // routing key
		false,         // mandatory
		false,         // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish activity event: %w", err)
	}
	return nil
}

// Close closes the RabbitMQ connection
func (s *EventsService) Close() error {
	if s == nil {
		return nil
	}
	if s.channel != nil {
		s.channel.Close()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
