package events

import (
	"time"

	"github.com/medcore/auth-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered      EventType = "user_registered"
	EventUserVerified        EventType = "user_verified"
	EventVerificationResent  EventType = "verification_resent"
	EventUserLoggedIn        EventType = "user_logged_in"
	EventRegistrationReverted EventType = "registration_reverted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}
