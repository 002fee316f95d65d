package services

import (
	"time"

	"github.com/spikenet-labs/serverdesk/adapters"
	"github.com/spikenet-labs/serverdesk/pkg/alloc"
	"github.com/spikenet-labs/serverdesk/repositories"
	"github.com/spikenet-labs/serverdesk/websocket"
)

type Services struct {
	Request   *RequestService
	Pool      *ProvisionPool
	Scheduler *NotifyScheduler
	Feed      *websocket.Feed
}

func New(repos *repositories.Repos, ads *adapters.Adapters, allocator *alloc.Allocator, cfg RequestServiceConfig, workers int) *Services {
	feed := websocket.NewFeed()
	pool := NewProvisionPool(workers, ads.Provisioner, repos.Request, feed)
	return &Services{
		Request:   NewRequestService(repos, ads, allocator, pool, feed, cfg),
		Pool:      pool,
		Scheduler: NewNotifyScheduler(repos.Notification, ads.Notifier, 5*time.Second),
		Feed:      feed,
	}
}
