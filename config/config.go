package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	Issuer     string
	ServerPort string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string

	AdminUser         string
	AdminPasswordHash string

	// Request ids at or below SequenceFloor are reserved for infrastructure
	// and templates; the allocator refuses them.
	BaseNetwork   string
	SequenceFloor uint
	TemplateVMID  int
	GamePort      int

	BaseDomain string
	DDNSTarget string

	CfToken  string
	CfZoneID string

	ProxmoxURL     string
	ProxmoxNode    string
	ProxmoxTokenID string
	ProxmoxSecret  string

	VelocityHost       string
	VelocitySSHUser    string
	VelocitySSHPass    string
	VelocityConfigPath string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	FromEmail    string
	AdminEmail   string

	NotifyDelay      time.Duration
	ProvisionWorkers int
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "serverdesk")
	ServerPort = getEnv("SERVER_PORT", "8080")

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "serverdesk")

	AdminUser = getEnv("ADMIN_USER", "admin")
	AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", "")

	BaseNetwork = getEnv("BASE_NETWORK", "10.0.10.0")
	SequenceFloor = uint(getEnvInt("SEQUENCE_FLOOR", 200))
	TemplateVMID = getEnvInt("TEMPLATE_VMID", 129)
	GamePort = getEnvInt("GAME_PORT", 25565)

	BaseDomain = getEnv("BASE_DOMAIN", "spikenet.net")
	DDNSTarget = getEnv("DDNS_TARGET", "home.spikenet.net")

	CfToken = getEnv("CF_TOKEN", "")
	CfZoneID = getEnv("CF_ZONE_ID", "")

	ProxmoxURL = getEnv("PROXMOX_URL", "https://10.0.0.2:8006")
	ProxmoxNode = getEnv("PROXMOX_NODE", "pve")
	ProxmoxTokenID = getEnv("PROXMOX_TOKEN_ID", "")
	ProxmoxSecret = getEnv("PROXMOX_SECRET", "")

	VelocityHost = getEnv("VELOCITY_HOST", "10.0.0.37:22")
	VelocitySSHUser = getEnv("VELOCITY_SSH_USER", "root")
	VelocitySSHPass = getEnv("VELOCITY_SSH_PASS", "")
	VelocityConfigPath = getEnv("VELOCITY_CONFIG_PATH", "/root/velocity-proxy/velocity.toml")

	SMTPHost = getEnv("SMTP_HOST", "smtp.gmail.com")
	SMTPPort = getEnvInt("SMTP_PORT", 587)
	SMTPUser = getEnv("SMTP_USER", "")
	SMTPPassword = getEnv("SMTP_PASSWORD", "")
	FromEmail = getEnv("FROM_EMAIL", "minecraft@spikenet.net")
	AdminEmail = getEnv("ADMIN_EMAIL", "")

	NotifyDelay = time.Duration(getEnvInt("NOTIFY_DELAY_SECONDS", 90)) * time.Second
	ProvisionWorkers = getEnvInt("PROVISION_WORKERS", 2)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
