package handlers

import (
	"github.com/spikenet-labs/serverdesk/services"
)

type Handlers struct {
	Request    *RequestHandler
	StatusFeed *StatusFeedHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Request:    NewRequestHandler(svc.Request),
		StatusFeed: NewStatusFeedHandler(svc.Feed),
	}
}
