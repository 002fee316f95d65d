package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/spikenet-labs/serverdesk/adapters"
	"github.com/spikenet-labs/serverdesk/models"
	"github.com/spikenet-labs/serverdesk/repositories"
	"github.com/spikenet-labs/serverdesk/websocket"
)

var errQueueFull = errors.New("provision queue full")

// ProvisionJob is one VM clone handed to the pool.
type ProvisionJob struct {
	RequestID uint
	VMID      int
	Template  int
	IP        string
	Params    adapters.InstanceParams
}

// ProvisionPool runs VM creation off the request path on a fixed set of
// supervised workers. Unlike a detached goroutine, every job reports back:
// the outcome is persisted on the request row and pushed to the status feed.
type ProvisionPool struct {
	jobs        chan ProvisionJob
	provisioner adapters.Provisioner
	requests    repositories.RequestRepo
	feed        *websocket.Feed
	workers     int
	wg          sync.WaitGroup
}

func NewProvisionPool(workers int, provisioner adapters.Provisioner, requests repositories.RequestRepo, feed *websocket.Feed) *ProvisionPool {
	if workers < 1 {
		workers = 1
	}
	return &ProvisionPool{
		jobs:        make(chan ProvisionJob, 64),
		provisioner: provisioner,
		requests:    requests,
		feed:        feed,
		workers:     workers,
	}
}

func (p *ProvisionPool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run(ctx)
	}
	log.Printf("Provision pool started with %d workers", p.workers)
}

// Enqueue hands a job to the pool. A full queue fails the request instead of
// blocking the approval path.
func (p *ProvisionPool) Enqueue(job ProvisionJob) {
	select {
	case p.jobs <- job:
	default:
		log.Printf("Provision queue full, failing request %d", job.RequestID)
		p.finish(job, errQueueFull)
	}
}

// Stop drains the queue and waits for in-flight jobs.
func (p *ProvisionPool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

func (p *ProvisionPool) run(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			err := p.provisioner.Create(ctx, job.VMID, job.Template, job.Params)
			p.finish(job, err)
		}
	}
}

func (p *ProvisionPool) finish(job ProvisionJob, err error) {
	if err != nil {
		log.Printf("Provisioning failed for request %d (vmid %d): %v", job.RequestID, job.VMID, err)
		msg := err.Error()
		if uerr := p.requests.UpdateStatus(job.RequestID, models.RequestStatusFailed, &msg); uerr != nil {
			log.Printf("Failed to persist provisioning failure for request %d: %v", job.RequestID, uerr)
		}
		if p.feed != nil {
			p.feed.Publish(websocket.StatusEvent{RequestID: job.RequestID, Status: models.RequestStatusFailed, IP: job.IP, Error: msg})
		}
		return
	}

	completed, uerr := p.requests.CompleteProvisioning(job.RequestID)
	if uerr != nil {
		log.Printf("Failed to persist provisioning result for request %d: %v", job.RequestID, uerr)
		return
	}
	if !completed {
		// The row already left PROVISIONING, e.g. a registration failure was
		// recorded while the clone was still running. Keep that state.
		log.Printf("Provisioning finished for request %d (vmid %d) but its status had already moved on", job.RequestID, job.VMID)
		return
	}
	log.Printf("Provisioning finished for request %d (vmid %d)", job.RequestID, job.VMID)
	if p.feed != nil {
		p.feed.Publish(websocket.StatusEvent{RequestID: job.RequestID, Status: models.RequestStatusActive, IP: job.IP})
	}
}
