package service

import (
	"context"
)

// MeetupEvent represents a lifecycle transition published for async consumers
// such as analytics or delivery pipelines.
type MeetupEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	EventType  string `json:"event_type"`
	UserID     string `json:"user_id"`
	OtherID    string `json:"other_id,omitempty"`
	MatchID    string `json:"match_id,omitempty"`
	DateID     string `json:"date_id,omitempty"`
	FromStatus string `json:"from_status,omitempty"`
	ToStatus   string `json:"to_status,omitempty"`
	OccurredAt int64  `json:"occurred_at"`
}

// Event types published on lifecycle transitions.
const (
	EventMatchCreated      = "match.created"
	EventMatchAccepted     = "match.accepted"
	EventMatchRejected     = "match.rejected"
	EventMatchExpired      = "match.expired"
	EventDatesProposed     = "date.proposed"
	EventDateSelected      = "date.selected"
	EventDateConfirmed     = "date.confirmed"
	EventDateCancelled     = "date.cancelled"
	EventAttendanceStarted = "attendance.started"
	EventMeetingVerified   = "attendance.verified"
	EventMeetupClosed      = "meetup.closed"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMeetupEvent publishes a lifecycle event for async processing
	PublishMeetupEvent(ctx context.Context, event *MeetupEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
