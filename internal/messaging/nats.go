package messaging

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const submissionJudgedSubject = "submission.judged"

// SubmissionJudgedEvent is published after a submission receives a verdict.
type SubmissionJudgedEvent struct {
	SubmissionId uuid.UUID `json:"submission_id"`
	UserId       uuid.UUID `json:"user_id"`
	ProblemId    uuid.UUID `json:"problem_id"`
	Status       string    `json:"status"`
	JudgedAt     time.Time `json:"judged_at"`
}

var nc *nats.Conn

// ConnectNats establishes a NATS connection and keeps it open for future use.
func ConnectNats(url string) error {
	// Check if the connection is already established
	if nc != nil && nc.IsConnected() {
		log.Println("NATS already connected.")
		return nil
	}

	if url == "" {
		url = nats.DefaultURL
	}

	var err error
	nc, err = nats.Connect(url)
	if err != nil {
		log.Println("Failed to connect to NATS:", err)
		return err
	}

	log.Println("Connected to NATS.")
	return nil
}

// PublishSubmissionJudged sends a verdict event. Callers treat delivery as
// best effort.
func PublishSubmissionJudged(event SubmissionJudgedEvent) error {
	if nc == nil || !nc.IsConnected() {
		return nats.ErrConnectionClosed
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := nc.Publish(submissionJudgedSubject, payload); err != nil {
		log.Println("Failed to publish message to submission.judged:", err)
		return err
	}

	return nil
}

// CloseNats closes the NATS connection gracefully.
func CloseNats() {
	if nc != nil && nc.IsConnected() {
		nc.Close()
		log.Println("NATS connection closed.")
	}
}
