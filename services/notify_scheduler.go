package services

import (
	"context"
	"log"
	"time"

	"github.com/spikenet-labs/serverdesk/adapters"
	"github.com/spikenet-labs/serverdesk/repositories"
)

// NotifyScheduler delivers durable scheduled notifications. It polls the
// store for rows whose due time has passed, claims each one and sends it.
// Because the schedule lives in the database, a restart picks up where the
// previous process left off instead of dropping pending mail.
type NotifyScheduler struct {
	notifications repositories.NotificationRepo
	notifier      adapters.Notifier
	interval      time.Duration
}

func NewNotifyScheduler(notifications repositories.NotificationRepo, notifier adapters.Notifier, interval time.Duration) *NotifyScheduler {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &NotifyScheduler{
		notifications: notifications,
		notifier:      notifier,
		interval:      interval,
	}
}

func (s *NotifyScheduler) Start(ctx context.Context) {
	go func() {
		log.Println("Notification scheduler started")
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("Notification scheduler stopped")
				return
			case <-ticker.C:
				s.DispatchDue(time.Now())
			}
		}
	}()
}

// DispatchDue sends every pending notification that is due at or before now.
// A row is claimed before sending, so each notification goes out at most
// once even with overlapping ticks.
func (s *NotifyScheduler) DispatchDue(now time.Time) {
	due, err := s.notifications.ListDue(now)
	if err != nil {
		log.Printf("Failed to list due notifications: %v", err)
		return
	}

	for _, n := range due {
		claimed, err := s.notifications.Claim(n.ID)
		if err != nil {
			log.Printf("Failed to claim notification %d: %v", n.ID, err)
			continue
		}
		if !claimed {
			continue
		}

		if err := s.notifier.Send(n.Recipient, n.Subject, n.Body); err != nil {
			log.Printf("Failed to send notification %d to %s: %v", n.ID, n.Recipient, err)
			if merr := s.notifications.MarkFailed(n.ID); merr != nil {
				log.Printf("Failed to mark notification %d failed: %v", n.ID, merr)
			}
			continue
		}

		if err := s.notifications.MarkSent(n.ID, time.Now()); err != nil {
			log.Printf("Failed to mark notification %d sent: %v", n.ID, err)
		}
	}
}
