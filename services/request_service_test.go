package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/spikenet-labs/serverdesk/adapters"
	"github.com/spikenet-labs/serverdesk/adapters/mock_adapters"
	"github.com/spikenet-labs/serverdesk/dto"
	"github.com/spikenet-labs/serverdesk/models"
	"github.com/spikenet-labs/serverdesk/pkg/alloc"
	"github.com/spikenet-labs/serverdesk/repositories"
	"github.com/spikenet-labs/serverdesk/repositories/mock_repositories"
	"github.com/spikenet-labs/serverdesk/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type requestMocks struct {
	requests      *mock_repositories.MockRequestRepo
	notifications *mock_repositories.MockNotificationRepo
	provisioner   *mock_adapters.MockProvisioner
	dns           *mock_adapters.MockDNSRegistry
	proxy         *mock_adapters.MockProxyRegistry
	notifier      *mock_adapters.MockNotifier
	identity      *mock_adapters.MockIdentityResolver
}

func setupRequestService(t *testing.T) (*RequestService, *requestMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &requestMocks{
		requests:      mock_repositories.NewMockRequestRepo(ctrl),
		notifications: mock_repositories.NewMockNotificationRepo(ctrl),
		provisioner:   mock_adapters.NewMockProvisioner(ctrl),
		dns:           mock_adapters.NewMockDNSRegistry(ctrl),
		proxy:         mock_adapters.NewMockProxyRegistry(ctrl),
		notifier:      mock_adapters.NewMockNotifier(ctrl),
		identity:      mock_adapters.NewMockIdentityResolver(ctrl),
	}

	repos := &repositories.Repos{
		Request:      m.requests,
		Notification: m.notifications,
	}
	ads := &adapters.Adapters{
		Provisioner: m.provisioner,
		DNS:         m.dns,
		Proxy:       m.proxy,
		Notifier:    m.notifier,
		Identity:    m.identity,
	}

	allocator, err := alloc.New("10.0.10.0", 200)
	require.NoError(t, err)

	feed := websocket.NewFeed()
	pool := NewProvisionPool(1, m.provisioner, m.requests, feed)

	cfg := RequestServiceConfig{
		TemplateVMID: 129,
		GamePort:     25565,
		BaseDomain:   "spikenet.net",
		NotifyDelay:  90 * time.Second,
	}

	return NewRequestService(repos, ads, allocator, pool, feed, cfg), m
}

// --------------------- Submit ---------------------

func TestSubmit_SanitizesAndStores(t *testing.T) {
	svc, m := setupRequestService(t)

	m.requests.EXPECT().Create(gomock.Any()).DoAndReturn(func(req *models.Request) error {
		req.ID = 205
		return nil
	})

	req, err := svc.Submit(dto.CreateRequestDTO{
		Email:      "player@example.com",
		Servername: "Skyblock!!",
		Seed:       "best seed!",
		Gamemode:   "survival",
		Difficulty: "hard",
		OwnerName:  "No tch",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(205), req.ID)
	assert.Equal(t, "Skyblock", req.Servername)
	assert.Equal(t, "bestseed", req.Seed)
	assert.Equal(t, "Notch", req.OwnerName)
	assert.Equal(t, models.RequestStatusPending, req.Status)
	assert.Nil(t, req.IP)
	assert.Nil(t, req.IdentityRef)
}

func TestSubmit_NotifiesOperator(t *testing.T) {
	svc, m := setupRequestService(t)
	svc.Config.AdminEmail = "ops@spikenet.net"

	m.requests.EXPECT().Create(gomock.Any()).Return(nil)
	m.notifier.EXPECT().Send("ops@spikenet.net", "New Minecraft Server Request", gomock.Any()).Return(nil)

	_, err := svc.Submit(dto.CreateRequestDTO{Email: "player@example.com", Servername: "Hub"})
	assert.NoError(t, err)
}

func TestSubmit_Conflict(t *testing.T) {
	svc, m := setupRequestService(t)

	m.requests.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Submit(dto.CreateRequestDTO{Email: "player@example.com", Servername: "hub"})
	assert.ErrorIs(t, err, ErrServernameTaken)
}

// --------------------- Approve ---------------------

func pendingRequest() models.Request {
	return models.Request{
		ID:         205,
		Email:      "player@example.com",
		Servername: "Skyblock",
		Seed:       "best seed!",
		Gamemode:   "Survival ",
		Difficulty: "",
		OwnerName:  "Notch",
		Status:     models.RequestStatusPending,
	}
}

func TestApprove_AllocatesAndRegisters(t *testing.T) {
	svc, m := setupRequestService(t)
	ctx := context.Background()

	m.requests.EXPECT().GetByID(uint(205)).Return(pendingRequest(), nil)
	m.identity.EXPECT().Resolve(ctx, "Notch").Return("069a79f444e94726a5befca90e38aaf5")
	m.requests.EXPECT().Update(gomock.Any()).DoAndReturn(func(req *models.Request) error {
		require.NotNil(t, req.IP)
		assert.Equal(t, "10.0.10.5", *req.IP)
		assert.Equal(t, "bestseed", req.Seed)
		assert.Equal(t, "survival", req.Gamemode)
		assert.Equal(t, "hard", req.Difficulty)
		require.NotNil(t, req.IdentityRef)
		assert.Equal(t, "069a79f444e94726a5befca90e38aaf5", *req.IdentityRef)
		assert.Equal(t, models.RequestStatusProvisioning, req.Status)
		return nil
	})
	m.dns.EXPECT().CreateSubdomain(ctx, "mc-Skyblock").Return(nil)
	m.proxy.EXPECT().AddRoute(ctx, "mc-Skyblock", "10.0.10.5:25565").Return(nil)
	m.notifications.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
		assert.Equal(t, uint(205), n.RequestID)
		assert.Equal(t, "player@example.com", n.Recipient)
		assert.WithinDuration(t, time.Now().Add(90*time.Second), n.DueAt, 2*time.Second)
		return nil
	})

	req, err := svc.Approve(ctx, 205)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusProvisioning, req.Status)

	// The VM clone was dispatched to the pool, not run inline.
	job := <-svc.Pool.jobs
	assert.Equal(t, 205, job.VMID)
	assert.Equal(t, 129, job.Template)
	assert.Equal(t, "mc-Skyblock", job.Params.Name)
	assert.Equal(t, "10.0.10.5", job.IP)
}

func TestApprove_NotFound(t *testing.T) {
	svc, m := setupRequestService(t)

	m.requests.EXPECT().GetByID(uint(999)).Return(models.Request{}, gorm.ErrRecordNotFound)

	_, err := svc.Approve(context.Background(), 999)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestApprove_NotPending(t *testing.T) {
	svc, m := setupRequestService(t)

	req := pendingRequest()
	req.Status = models.RequestStatusActive
	m.requests.EXPECT().GetByID(uint(205)).Return(req, nil)

	_, err := svc.Approve(context.Background(), 205)
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestApprove_RegistrationFailureIsRecordedNotFatal(t *testing.T) {
	svc, m := setupRequestService(t)
	ctx := context.Background()

	m.requests.EXPECT().GetByID(uint(205)).Return(pendingRequest(), nil)
	m.identity.EXPECT().Resolve(ctx, "Notch").Return("069a79f444e94726a5befca90e38aaf5")
	m.requests.EXPECT().Update(gomock.Any()).Return(nil)
	m.dns.EXPECT().CreateSubdomain(ctx, "mc-Skyblock").Return(errors.New("zone unavailable"))
	m.requests.EXPECT().UpdateStatus(uint(205), models.RequestStatusFailed, gomock.Any()).Return(nil)
	// The proxy route and the deferred mail still happen.
	m.proxy.EXPECT().AddRoute(ctx, "mc-Skyblock", "10.0.10.5:25565").Return(nil)
	m.notifications.EXPECT().Create(gomock.Any()).Return(nil)

	req, err := svc.Approve(ctx, 205)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusFailed, req.Status)
	require.NotNil(t, req.LastError)
	assert.Contains(t, *req.LastError, "zone unavailable")
}

func TestApprove_LateProvisionSuccessKeepsRecordedFailure(t *testing.T) {
	// DNS registration fails fast and marks the row FAILED while the VM clone
	// is still queued. When the clone finishes, the success transition finds
	// the row no longer PROVISIONING and leaves the failure in place.
	svc, m := setupRequestService(t)
	ctx := context.Background()

	m.requests.EXPECT().GetByID(uint(205)).Return(pendingRequest(), nil)
	m.identity.EXPECT().Resolve(ctx, "Notch").Return("069a79f444e94726a5befca90e38aaf5")
	m.requests.EXPECT().Update(gomock.Any()).Return(nil)
	m.dns.EXPECT().CreateSubdomain(ctx, "mc-Skyblock").Return(errors.New("zone unavailable"))
	m.requests.EXPECT().UpdateStatus(uint(205), models.RequestStatusFailed, gomock.Any()).Return(nil)
	m.proxy.EXPECT().AddRoute(ctx, "mc-Skyblock", "10.0.10.5:25565").Return(nil)
	m.notifications.EXPECT().Create(gomock.Any()).Return(nil)

	done := make(chan struct{})
	m.provisioner.EXPECT().Create(gomock.Any(), 205, 129, gomock.Any()).Return(nil)
	m.requests.EXPECT().CompleteProvisioning(uint(205)).
		DoAndReturn(func(uint) (bool, error) {
			close(done)
			return false, nil
		})

	req, err := svc.Approve(ctx, 205)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusFailed, req.Status)

	poolCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Pool.Start(poolCtx)
	waitFor(t, done)
}

// --------------------- Deny ---------------------

func TestDeny(t *testing.T) {
	svc, m := setupRequestService(t)

	m.requests.EXPECT().GetByID(uint(205)).Return(pendingRequest(), nil)
	m.notifier.EXPECT().Send("player@example.com", "Minecraft Server Request Denied", gomock.Any()).Return(nil)
	m.requests.EXPECT().Delete(uint(205)).Return(nil)

	assert.NoError(t, svc.Deny(context.Background(), 205))
}

func TestDeny_NotFound(t *testing.T) {
	svc, m := setupRequestService(t)

	m.requests.EXPECT().GetByID(uint(999)).Return(models.Request{}, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.Deny(context.Background(), 999), ErrRequestNotFound)
}

func TestDeny_MailFailureStillDeletes(t *testing.T) {
	svc, m := setupRequestService(t)

	m.requests.EXPECT().GetByID(uint(205)).Return(pendingRequest(), nil)
	m.notifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
	m.requests.EXPECT().Delete(uint(205)).Return(nil)

	assert.NoError(t, svc.Deny(context.Background(), 205))
}

// --------------------- Decommission ---------------------

func TestDecommission_FixedOrder(t *testing.T) {
	svc, m := setupRequestService(t)
	ctx := context.Background()

	m.requests.EXPECT().GetByID(uint(205)).Return(pendingRequest(), nil)
	gomock.InOrder(
		m.provisioner.EXPECT().Destroy(ctx, 205).Return(nil),
		m.dns.EXPECT().RemoveSubdomain(ctx, "mc-Skyblock").Return(nil),
		m.proxy.EXPECT().RemoveRoute(ctx, "mc-Skyblock").Return(nil),
		m.notifier.EXPECT().Send("player@example.com", "Minecraft Server Deleted", gomock.Any()).Return(nil),
		m.requests.EXPECT().Delete(uint(205)).Return(nil),
	)

	assert.NoError(t, svc.Decommission(ctx, 205))
}

func TestDecommission_ContinuesPastAdapterFailures(t *testing.T) {
	svc, m := setupRequestService(t)
	ctx := context.Background()

	m.requests.EXPECT().GetByID(uint(205)).Return(pendingRequest(), nil)
	m.provisioner.EXPECT().Destroy(ctx, 205).Return(errors.New("node unreachable"))
	m.dns.EXPECT().RemoveSubdomain(ctx, "mc-Skyblock").Return(errors.New("zone unavailable"))
	m.proxy.EXPECT().RemoveRoute(ctx, "mc-Skyblock").Return(nil)
	m.notifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.requests.EXPECT().Delete(uint(205)).Return(nil)

	assert.NoError(t, svc.Decommission(ctx, 205))
}

func TestDecommission_NotFound(t *testing.T) {
	svc, m := setupRequestService(t)

	m.requests.EXPECT().GetByID(uint(999)).Return(models.Request{}, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.Decommission(context.Background(), 999), ErrRequestNotFound)
}

// --------------------- Listing ---------------------

func TestListPending(t *testing.T) {
	svc, m := setupRequestService(t)

	m.requests.EXPECT().ListPending().Return([]models.Request{pendingRequest()}, nil)

	reqs, err := svc.ListPending()
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, uint(205), reqs[0].ID)
}
