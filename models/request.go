package models

import "time"

type RequestStatus string

const (
	RequestStatusPending      RequestStatus = "PENDING"
	RequestStatusProvisioning RequestStatus = "PROVISIONING"
	RequestStatusActive       RequestStatus = "ACTIVE"
	RequestStatusFailed       RequestStatus = "FAILED"
)

// Request is a user's ask for a game-server instance. The row id doubles as
// the Proxmox VM id and as the seed for the internal address, so it is never
// reused and the sequence starts above the infrastructure floor.
type Request struct {
	ID               uint          `gorm:"primaryKey;column:id" json:"id"`
	Email            string        `gorm:"size:50;not null;column:email" json:"email"`
	OwnerName        string        `gorm:"size:32;column:owner_name" json:"owner_name"`
	Servername       string        `gorm:"size:20;not null;column:servername" json:"servername"`
	Seed             string        `gorm:"column:seed" json:"seed"`
	Gamemode         string        `gorm:"size:20;column:gamemode" json:"gamemode"`
	Difficulty       string        `gorm:"size:20;column:difficulty" json:"difficulty"`
	WhitelistEnabled bool          `gorm:"default:false;column:whitelist_enabled" json:"whitelist_enabled"`
	IP               *string       `gorm:"size:15;column:ip" json:"ip"`
	IdentityRef      *string       `gorm:"size:32;column:identity_ref" json:"identity_ref"`
	Status           RequestStatus `gorm:"default:'PENDING';type:varchar(20);column:status" json:"status"`
	LastError        *string       `gorm:"type:text;column:last_error" json:"last_error"`
	CreatedAt        time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// CanonicalName is the externally visible name for the instance, used for the
// DNS subdomain and the proxy route.
func (r *Request) CanonicalName() string {
	return "mc-" + r.Servername
}
