package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/spikenet-labs/serverdesk/adapters/mock_adapters"
	"github.com/spikenet-labs/serverdesk/models"
	"github.com/spikenet-labs/serverdesk/repositories/mock_repositories"
)

func setupScheduler(t *testing.T) (*NotifyScheduler, *mock_repositories.MockNotificationRepo, *mock_adapters.MockNotifier) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	notifications := mock_repositories.NewMockNotificationRepo(ctrl)
	notifier := mock_adapters.NewMockNotifier(ctrl)
	return NewNotifyScheduler(notifications, notifier, time.Second), notifications, notifier
}

func dueNotification() models.Notification {
	return models.Notification{
		ID:        7,
		RequestID: 205,
		Recipient: "player@example.com",
		Subject:   "Your Minecraft Server Request has been Approved!",
		Body:      "live",
		DueAt:     time.Now().Add(-time.Second),
		Status:    models.NotificationStatusPending,
	}
}

func TestDispatchDueSendsOnce(t *testing.T) {
	s, notifications, notifier := setupScheduler(t)
	now := time.Now()

	notifications.EXPECT().ListDue(now).Return([]models.Notification{dueNotification()}, nil)
	notifications.EXPECT().Claim(uint(7)).Return(true, nil)
	notifier.EXPECT().Send("player@example.com", "Your Minecraft Server Request has been Approved!", "live").Return(nil)
	notifications.EXPECT().MarkSent(uint(7), gomock.Any()).Return(nil)

	s.DispatchDue(now)
}

func TestDispatchDueSkipsLostClaim(t *testing.T) {
	// Another dispatcher already claimed the row; it must not be sent again.
	s, notifications, _ := setupScheduler(t)
	now := time.Now()

	notifications.EXPECT().ListDue(now).Return([]models.Notification{dueNotification()}, nil)
	notifications.EXPECT().Claim(uint(7)).Return(false, nil)

	s.DispatchDue(now)
}

func TestDispatchDueMarksFailedSend(t *testing.T) {
	s, notifications, notifier := setupScheduler(t)
	now := time.Now()

	notifications.EXPECT().ListDue(now).Return([]models.Notification{dueNotification()}, nil)
	notifications.EXPECT().Claim(uint(7)).Return(true, nil)
	notifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
	notifications.EXPECT().MarkFailed(uint(7)).Return(nil)

	s.DispatchDue(now)
}

func TestDispatchDueNothingDue(t *testing.T) {
	s, notifications, _ := setupScheduler(t)
	now := time.Now()

	notifications.EXPECT().ListDue(now).Return(nil, nil)

	s.DispatchDue(now)
}

func TestDispatchDueListError(t *testing.T) {
	s, notifications, _ := setupScheduler(t)
	now := time.Now()

	notifications.EXPECT().ListDue(now).Return(nil, errors.New("db down"))

	s.DispatchDue(now)
}
