// Package velocity edits the Velocity proxy's TOML routing table over SFTP
// and signals the proxy to reload it.
package velocity

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

const reloadCmd = "pkill -SIGHUP -f velocity.jar"

type Registry struct {
	host       string
	user       string
	password   string
	configPath string
	baseDomain string
}

func New(host, user, password, configPath, baseDomain string) *Registry {
	return &Registry{
		host:       host,
		user:       user,
		password:   password,
		configPath: configPath,
		baseDomain: baseDomain,
	}
}

// AddRoute registers name -> addr in [servers] and maps the public hostname
// onto it via [forced-hosts], then reloads the proxy.
func (r *Registry) AddRoute(ctx context.Context, name, addr string) error {
	return r.edit(ctx, func(config map[string]interface{}) {
		applyRoute(config, name, addr, r.baseDomain)
	})
}

// RemoveRoute drops the server entry and its forced host, then reloads.
func (r *Registry) RemoveRoute(ctx context.Context, name string) error {
	return r.edit(ctx, func(config map[string]interface{}) {
		stripRoute(config, name, r.baseDomain)
	})
}

func applyRoute(config map[string]interface{}, name, addr, baseDomain string) {
	servers := section(config, "servers")
	servers[name] = addr

	hosts := section(config, "forced-hosts")
	hosts[fmt.Sprintf("%s.%s", name, baseDomain)] = []interface{}{name}
}

func stripRoute(config map[string]interface{}, name, baseDomain string) {
	if servers, ok := config["servers"].(map[string]interface{}); ok {
		delete(servers, name)
	}
	if hosts, ok := config["forced-hosts"].(map[string]interface{}); ok {
		delete(hosts, fmt.Sprintf("%s.%s", name, baseDomain))
	}
}

func (r *Registry) edit(ctx context.Context, mutate func(map[string]interface{})) error {
	sshCfg := &ssh.ClientConfig{
		User:            r.user,
		Auth:            []ssh.AuthMethod{ssh.Password(r.password)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         10 * time.Second,
	}

	dialer := net.Dialer{Timeout: sshCfg.Timeout}
	raw, err := dialer.DialContext(ctx, "tcp", r.host)
	if err != nil {
		return fmt.Errorf("dial velocity host: %w", err)
	}
	sshConn, chans, reqs, err := ssh.NewClientConn(raw, r.host, sshCfg)
	if err != nil {
		raw.Close()
		return fmt.Errorf("ssh handshake with %s: %w", r.host, err)
	}
	conn := ssh.NewClient(sshConn, chans, reqs)
	defer conn.Close()

	client, err := sftp.NewClient(conn)
	if err != nil {
		return fmt.Errorf("open sftp: %w", err)
	}
	defer client.Close()

	config, err := r.readConfig(client)
	if err != nil {
		return err
	}

	mutate(config)

	if err := r.writeConfig(client, config); err != nil {
		return err
	}

	// SIGHUP makes the proxy re-read the routing table.
	session, err := conn.NewSession()
	if err != nil {
		return fmt.Errorf("open reload session: %w", err)
	}
	defer session.Close()
	if err := session.Run(reloadCmd); err != nil {
		return fmt.Errorf("reload proxy: %w", err)
	}
	return nil
}

func (r *Registry) readConfig(client *sftp.Client) (map[string]interface{}, error) {
	f, err := client.Open(r.configPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", r.configPath, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.configPath, err)
	}

	config := map[string]interface{}{}
	if err := toml.Unmarshal(raw, &config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.configPath, err)
	}
	return config, nil
}

func (r *Registry) writeConfig(client *sftp.Client, config map[string]interface{}) error {
	raw, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	f, err := client.Create(r.configPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", r.configPath, err)
	}
	defer f.Close()

	if _, err := f.Write(raw); err != nil {
		return fmt.Errorf("write %s: %w", r.configPath, err)
	}
	return nil
}

func section(config map[string]interface{}, key string) map[string]interface{} {
	if m, ok := config[key].(map[string]interface{}); ok {
		return m
	}
	m := map[string]interface{}{}
	config[key] = m
	return m
}
