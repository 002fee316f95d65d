package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spikenet-labs/serverdesk/adapters"
	"github.com/spikenet-labs/serverdesk/dto"
	"github.com/spikenet-labs/serverdesk/models"
	"github.com/spikenet-labs/serverdesk/pkg/alloc"
	"github.com/spikenet-labs/serverdesk/pkg/sanitize"
	"github.com/spikenet-labs/serverdesk/repositories"
	"github.com/spikenet-labs/serverdesk/websocket"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound = errors.New("request not found")
	ErrServernameTaken = errors.New("server name is already being used in another world")
	ErrNotPending      = errors.New("request is not pending")
)

const (
	defaultGamemode   = "survival"
	defaultDifficulty = "hard"
)

// RequestServiceConfig carries the deployment knobs the orchestrator needs.
type RequestServiceConfig struct {
	TemplateVMID int
	GamePort     int
	BaseDomain   string
	NotifyDelay  time.Duration
	AdminEmail   string
	GameVersion  string
}

// RequestService drives the request lifecycle: it validates submissions,
// turns approved requests into live instances through the provisioner pool
// and the DNS/proxy registries, and tears instances down again.
type RequestService struct {
	Repos     *repositories.Repos
	Adapters  *adapters.Adapters
	Allocator *alloc.Allocator
	Pool      *ProvisionPool
	Feed      *websocket.Feed
	Config    RequestServiceConfig
}

func NewRequestService(repos *repositories.Repos, ads *adapters.Adapters, allocator *alloc.Allocator, pool *ProvisionPool, feed *websocket.Feed, cfg RequestServiceConfig) *RequestService {
	if cfg.GameVersion == "" {
		cfg.GameVersion = "1.21.11"
	}
	return &RequestService{
		Repos:     repos,
		Adapters:  ads,
		Allocator: allocator,
		Pool:      pool,
		Feed:      feed,
		Config:    cfg,
	}
}

// Submit sanitizes and stores a new request. Uniqueness of the server name is
// enforced by the store's case-insensitive unique index, not by a
// check-then-insert, so racing submissions cannot both win.
func (s *RequestService) Submit(input dto.CreateRequestDTO) (models.Request, error) {
	req := models.Request{
		Email:            input.Email,
		Servername:       sanitize.Clean(input.Servername),
		Seed:             sanitize.Clean(input.Seed),
		Gamemode:         input.Gamemode,
		Difficulty:       input.Difficulty,
		WhitelistEnabled: input.WhitelistEnabled,
		OwnerName:        sanitize.Clean(input.OwnerName),
		Status:           models.RequestStatusPending,
	}

	if err := s.Repos.Request.Create(&req); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Request{}, ErrServernameTaken
		}
		return models.Request{}, err
	}

	if s.Config.AdminEmail != "" {
		body := fmt.Sprintf("New Request: %s, %s, %s, %s, %s",
			req.Email, req.Servername, req.Gamemode, req.Seed, req.Difficulty)
		if err := s.Adapters.Notifier.Send(s.Config.AdminEmail, "New Minecraft Server Request", body); err != nil {
			log.Printf("Failed to notify operator about request %d: %v", req.ID, err)
		}
	}

	return req, nil
}

// Approve moves a pending request into PROVISIONING: it derives the VM id and
// address from the request id, normalizes the instance parameters, resolves
// the owner identity, persists the result, hands the VM clone to the worker
// pool and registers the external name. Registration failures are recorded on
// the row instead of aborting the remaining steps.
func (s *RequestService) Approve(ctx context.Context, id uint) (models.Request, error) {
	req, err := s.Repos.Request.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Request{}, ErrRequestNotFound
		}
		return models.Request{}, err
	}
	if req.Status != models.RequestStatusPending {
		return req, ErrNotPending
	}

	vmid, ip, err := s.Allocator.Allocate(req.ID)
	if err != nil {
		return req, err
	}

	req.Seed = sanitize.Clean(req.Seed)
	req.Gamemode = sanitize.Enum(req.Gamemode)
	if req.Gamemode == "" {
		req.Gamemode = defaultGamemode
	}
	req.Difficulty = sanitize.Enum(req.Difficulty)
	if req.Difficulty == "" {
		req.Difficulty = defaultDifficulty
	}

	identity := s.Adapters.Identity.Resolve(ctx, req.OwnerName)

	req.IP = &ip
	req.IdentityRef = &identity
	req.Status = models.RequestStatusProvisioning
	req.LastError = nil
	if err := s.Repos.Request.Update(&req); err != nil {
		return req, err
	}

	name := req.CanonicalName()
	s.Pool.Enqueue(ProvisionJob{
		RequestID: req.ID,
		VMID:      vmid,
		Template:  s.Config.TemplateVMID,
		IP:        ip,
		Params: adapters.InstanceParams{
			Seed:             req.Seed,
			Name:             name,
			Gamemode:         req.Gamemode,
			Difficulty:       req.Difficulty,
			WhitelistEnabled: req.WhitelistEnabled,
			OwnerName:        req.OwnerName,
			IdentityRef:      identity,
		},
	})

	if err := s.Adapters.DNS.CreateSubdomain(ctx, name); err != nil {
		log.Printf("DNS registration failed for request %d: %v", req.ID, err)
		s.recordFailure(&req, err)
	}
	addr := fmt.Sprintf("%s:%d", ip, s.Config.GamePort)
	if err := s.Adapters.Proxy.AddRoute(ctx, name, addr); err != nil {
		log.Printf("Proxy registration failed for request %d: %v", req.ID, err)
		s.recordFailure(&req, err)
	}

	s.scheduleApprovalMail(&req, name)

	event := websocket.StatusEvent{RequestID: req.ID, Status: req.Status, IP: ip}
	if req.LastError != nil {
		event.Error = *req.LastError
	}
	s.Feed.Publish(event)

	return req, nil
}

// Deny notifies the requester and removes the row. Nothing was provisioned
// yet, so no external calls are made.
func (s *RequestService) Deny(ctx context.Context, id uint) error {
	req, err := s.Repos.Request.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return err
	}

	if err := s.Adapters.Notifier.Send(req.Email, "Minecraft Server Request Denied",
		"Your request for a Minecraft server has been denied."); err != nil {
		log.Printf("Failed to send denial mail for request %d: %v", req.ID, err)
	}

	return s.Repos.Request.Delete(req.ID)
}

// Decommission tears an instance down in a fixed order: destroy the VM,
// remove DNS, remove the proxy route, notify the requester, delete the row.
// Adapter failures are logged and the remaining steps still run.
func (s *RequestService) Decommission(ctx context.Context, id uint) error {
	req, err := s.Repos.Request.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return err
	}

	name := req.CanonicalName()

	if err := s.Adapters.Provisioner.Destroy(ctx, int(req.ID)); err != nil {
		log.Printf("VM destroy failed for request %d: %v", req.ID, err)
	}
	if err := s.Adapters.DNS.RemoveSubdomain(ctx, name); err != nil {
		log.Printf("DNS removal failed for request %d: %v", req.ID, err)
	}
	if err := s.Adapters.Proxy.RemoveRoute(ctx, name); err != nil {
		log.Printf("Route removal failed for request %d: %v", req.ID, err)
	}
	if err := s.Adapters.Notifier.Send(req.Email, "Minecraft Server Deleted",
		fmt.Sprintf("Your Minecraft server '%s' has been deleted.", name)); err != nil {
		log.Printf("Failed to send deletion mail for request %d: %v", req.ID, err)
	}

	return s.Repos.Request.Delete(req.ID)
}

func (s *RequestService) List() ([]models.Request, error) {
	return s.Repos.Request.List()
}

func (s *RequestService) ListPending() ([]models.Request, error) {
	return s.Repos.Request.ListPending()
}

// recordFailure marks the row FAILED, keeping the first error.
func (s *RequestService) recordFailure(req *models.Request, cause error) {
	if req.Status == models.RequestStatusFailed {
		return
	}
	msg := cause.Error()
	req.Status = models.RequestStatusFailed
	req.LastError = &msg
	if err := s.Repos.Request.UpdateStatus(req.ID, models.RequestStatusFailed, &msg); err != nil {
		log.Printf("Failed to record failure for request %d: %v", req.ID, err)
	}
}

// scheduleApprovalMail stores the deferred "approved/live" notification. The
// scheduler sends it after the configured delay; because the row is durable a
// restart does not lose it.
func (s *RequestService) scheduleApprovalMail(req *models.Request, name string) {
	body := fmt.Sprintf("Your Minecraft server request has been approved and is now live!\nConnect using IP: %s.%s\nMinecraft version %s",
		name, s.Config.BaseDomain, s.Config.GameVersion)
	n := models.Notification{
		RequestID: req.ID,
		Recipient: req.Email,
		Subject:   "Your Minecraft Server Request has been Approved!",
		Body:      body,
		DueAt:     time.Now().Add(s.Config.NotifyDelay),
		Status:    models.NotificationStatusPending,
	}
	if err := s.Repos.Notification.Create(&n); err != nil {
		log.Printf("Failed to schedule approval mail for request %d: %v", req.ID, err)
	}
}
