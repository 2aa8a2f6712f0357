// Package audit records authentication events (sign-in, rotation, sign-out,
// credential and profile lifecycle) to an append-only sink.
package audit

import (
	"context"
	"time"
)

type EventType string

const (
	EventSignIn         EventType = "sign_in"
	EventSignInFailed   EventType = "sign_in_failed"
	EventRotate         EventType = "rotate"
	EventSignOut        EventType = "sign_out"
	EventAuthCreated    EventType = "auth_created"
	EventAuthUpdated    EventType = "auth_updated"
	EventAuthDeleted    EventType = "auth_deleted"
	EventProfileCreated EventType = "profile_created"
	EventProfileDeleted EventType = "profile_deleted"
	EventRoleChanged    EventType = "role_changed"
)

// Event never carries passwords or session tokens.
type Event struct {
	Type      EventType `bson:"type"`
	AuthID    string    `bson:"auth_id,omitempty"`
	UserID    string    `bson:"user_id,omitempty"`
	Email     string    `bson:"email,omitempty"`
	Detail    string    `bson:"detail,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}

type Sink interface {
	Record(ctx context.Context, e Event) error
}

type nopSink struct{}

func (nopSink) Record(context.Context, Event) error { return nil }

// Nop returns a Sink that drops every event.
func Nop() Sink { return nopSink{} }
