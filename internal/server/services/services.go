// Package services contains server-side business logic: session handling,
// credential, profile and post management. Each operation asks the policy
// package first and then talks to repositories obtained from the
// RepositoryManager.
package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/blog/internal/logging"
	"github.com/dmitrijs2005/blog/internal/server/audit"
	"github.com/google/uuid"
)

// deps is embedded by every service; the function fields are seams for tests.
type deps struct {
	audit  audit.Sink
	logger logging.Logger
	now    func() time.Time
	newID  func() string
}

func newDeps(sink audit.Sink, logger logging.Logger) deps {
	if sink == nil {
		sink = audit.Nop()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return deps{
		audit:  sink,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.NewString() },
	}
}

// record never fails the caller; a broken audit sink is only logged.
func (d deps) record(ctx context.Context, e audit.Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = d.now()
	}
	if err := d.audit.Record(ctx, e); err != nil {
		d.logger.Warn(ctx, "audit record failed", "type", string(e.Type), "error", err)
	}
}
