package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spikenet-labs/serverdesk/adapters"
	cfdns "github.com/spikenet-labs/serverdesk/adapters/cloudflare"
	"github.com/spikenet-labs/serverdesk/adapters/mailer"
	"github.com/spikenet-labs/serverdesk/adapters/mojang"
	"github.com/spikenet-labs/serverdesk/adapters/proxmox"
	"github.com/spikenet-labs/serverdesk/adapters/velocity"
	"github.com/spikenet-labs/serverdesk/config"
	"github.com/spikenet-labs/serverdesk/db"
	"github.com/spikenet-labs/serverdesk/handlers"
	"github.com/spikenet-labs/serverdesk/middleware"
	"github.com/spikenet-labs/serverdesk/pkg/alloc"
	"github.com/spikenet-labs/serverdesk/repositories"
	"github.com/spikenet-labs/serverdesk/routes"
	"github.com/spikenet-labs/serverdesk/services"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	allocator, err := alloc.New(config.BaseNetwork, config.SequenceFloor)
	if err != nil {
		log.Fatalf("Invalid base network %q: %v", config.BaseNetwork, err)
	}

	dns, err := cfdns.New(config.CfToken, config.CfZoneID, config.BaseDomain, config.DDNSTarget)
	if err != nil {
		log.Fatalf("Failed to init Cloudflare client: %v", err)
	}

	ads := &adapters.Adapters{
		Provisioner: proxmox.New(config.ProxmoxURL, config.ProxmoxNode, config.ProxmoxTokenID, config.ProxmoxSecret),
		DNS:         dns,
		Proxy:       velocity.New(config.VelocityHost, config.VelocitySSHUser, config.VelocitySSHPass, config.VelocityConfigPath, config.BaseDomain),
		Notifier:    mailer.New(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword, config.FromEmail),
		Identity:    mojang.New(),
	}

	repos := repositories.New()
	svc := services.New(repos, ads, allocator, services.RequestServiceConfig{
		TemplateVMID: config.TemplateVMID,
		GamePort:     config.GamePort,
		BaseDomain:   config.BaseDomain,
		NotifyDelay:  config.NotifyDelay,
		AdminEmail:   config.AdminEmail,
	}, config.ProvisionWorkers)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Pool.Start(ctx)
	svc.Scheduler.Start(ctx)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, handlers.New(svc))

	port := ":" + config.ServerPort
	log.Printf("Starting serverdesk on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
