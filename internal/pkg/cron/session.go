package cron

import (
	"context"
	"time"
)

// RevocationPurger forgets revoked session tokens once they have expired.
type RevocationPurger interface {
	PurgeExpiredRevocations(ctx context.Context) error
}

type SessionJobs struct {
	purger RevocationPurger
}

func NewSessionJobs(purger RevocationPurger) *SessionJobs {
	return &SessionJobs{purger: purger}
}

func (j *SessionJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("purge_expired_token_revocations", interval, j.purger.PurgeExpiredRevocations)
}
