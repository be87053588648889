package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	SubjectAssignmentCreated     = "transport.assignment.created"
	SubjectAssignmentDeactivated = "transport.assignment.deactivated"
)

// Publisher sends domain events to NATS. A nil Publisher is valid and all
// publishes are no-ops, so the app runs unchanged when NATS_URL is unset.
type Publisher struct {
	nc *nats.Conn
}

func NewPublisher(url string) (*Publisher, error) {
	if url == "" {
		return nil, nil
	}
	nc, err := nats.Connect(url,
		nats.Name("schooltrans-backend"),
		nats.DisconnectHandler(func(_ *nats.Conn) {
			log.Printf("nats disconnected")
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Printf("nats reconnected")
		}),
	)
	if err != nil {
		return nil, err
	}
	return &Publisher{nc: nc}, nil
}

func (p *Publisher) Close() {
	if p == nil || p.nc == nil {
		return
	}
	p.nc.Drain()
	p.nc.Close()
}

type AssignmentEvent struct {
	AssignmentID  string    `json:"assignment_id"`
	StudentID     string    `json:"student_id"`
	RouteID       string    `json:"route_id"`
	PickupPointID string    `json:"pickup_point_id"`
	MonthlyFee    float64   `json:"monthly_fee"`
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}

// Publish marshals and sends the event; publish failures are logged, never
// surfaced to the request that triggered them.
func (p *Publisher) Publish(subject string, ev AssignmentEvent) {
	if p == nil || p.nc == nil {
		return
	}
	b, err := json.Marshal(ev)
	if err != nil {
		log.Printf("event marshal err: %v", err)
		return
	}
	if err := p.nc.Publish(subject, b); err != nil {
		log.Printf("event publish err subject=%s: %v", subject, err)
	}
}
