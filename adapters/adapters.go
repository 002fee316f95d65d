// Package adapters defines the contracts for the external systems the
// orchestrator drives. Every implementation is injected, so tests can swap in
// doubles without touching globals.
package adapters

import "context"

// InstanceParams are handed to the provisioner when cloning a template.
type InstanceParams struct {
	Seed             string
	Name             string
	Gamemode         string
	Difficulty       string
	WhitelistEnabled bool
	OwnerName        string
	IdentityRef      string
}

// Provisioner creates and destroys virtual machines.
type Provisioner interface {
	Create(ctx context.Context, vmid, template int, params InstanceParams) error
	Destroy(ctx context.Context, vmid int) error
}

// DNSRegistry manages the subdomain for an instance's canonical name. Both
// operations are idempotent.
type DNSRegistry interface {
	CreateSubdomain(ctx context.Context, name string) error
	RemoveSubdomain(ctx context.Context, name string) error
}

// ProxyRegistry maintains the routing table mapping canonical names to
// internal addresses and reloads the proxy after each change.
type ProxyRegistry interface {
	AddRoute(ctx context.Context, name, addr string) error
	RemoveRoute(ctx context.Context, name string) error
}

// Notifier delivers mail. Failures are the caller's problem to log.
type Notifier interface {
	Send(to, subject, body string) error
}

// IdentityResolver translates a display name into a canonical identity
// reference. It never fails: lookups that error degrade to the zero sentinel.
type IdentityResolver interface {
	Resolve(ctx context.Context, ownerName string) string
}

// Adapters bundles every external collaborator for injection.
type Adapters struct {
	Provisioner Provisioner
	DNS         DNSRegistry
	Proxy       ProxyRegistry
	Notifier    Notifier
	Identity    IdentityResolver
}
