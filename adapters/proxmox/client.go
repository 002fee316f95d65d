// Package proxmox drives the Proxmox VE HTTP API to clone game-server
// containers from a template and tear them down again.
package proxmox

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spikenet-labs/serverdesk/adapters"
)

type Client struct {
	baseURL string
	node    string
	tokenID string
	secret  string
	http    *http.Client
}

func New(baseURL, node, tokenID, secret string) *Client {
	// Home-lab Proxmox nodes run with self-signed certificates.
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		node:    node,
		tokenID: tokenID,
		secret:  secret,
		http:    &http.Client{Transport: transport, Timeout: 60 * time.Second},
	}
}

// Create clones the template container, writes the instance parameters into
// the container config and starts it.
func (c *Client) Create(ctx context.Context, vmid, template int, params adapters.InstanceParams) error {
	clone := url.Values{}
	clone.Set("newid", strconv.Itoa(vmid))
	clone.Set("hostname", params.Name)
	clone.Set("full", "1")
	if err := c.post(ctx, fmt.Sprintf("/api2/json/nodes/%s/lxc/%d/clone", c.node, template), clone); err != nil {
		return fmt.Errorf("clone template %d to %d: %w", template, vmid, err)
	}

	desc, err := json.Marshal(params)
	if err != nil {
		return err
	}
	cfg := url.Values{}
	cfg.Set("description", string(desc))
	if err := c.put(ctx, fmt.Sprintf("/api2/json/nodes/%s/lxc/%d/config", c.node, vmid), cfg); err != nil {
		return fmt.Errorf("configure vm %d: %w", vmid, err)
	}

	if err := c.post(ctx, fmt.Sprintf("/api2/json/nodes/%s/lxc/%d/status/start", c.node, vmid), nil); err != nil {
		return fmt.Errorf("start vm %d: %w", vmid, err)
	}
	return nil
}

// Destroy stops the container and removes it. A missing container is not an
// error; destroy is allowed to race with manual cleanup.
func (c *Client) Destroy(ctx context.Context, vmid int) error {
	stop := fmt.Sprintf("/api2/json/nodes/%s/lxc/%d/status/stop", c.node, vmid)
	if err := c.post(ctx, stop, nil); err != nil {
		return fmt.Errorf("stop vm %d: %w", vmid, err)
	}

	del := url.Values{}
	del.Set("purge", "1")
	if err := c.request(ctx, http.MethodDelete, fmt.Sprintf("/api2/json/nodes/%s/lxc/%d", c.node, vmid), del); err != nil {
		return fmt.Errorf("destroy vm %d: %w", vmid, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, form url.Values) error {
	return c.request(ctx, http.MethodPost, path, form)
}

func (c *Client) put(ctx context.Context, path string, form url.Values) error {
	return c.request(ctx, http.MethodPut, path, form)
}

func (c *Client) request(ctx context.Context, method, path string, form url.Values) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Authorization", fmt.Sprintf("PVEAPIToken=%s=%s", c.tokenID, c.secret))

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("proxmox %s %s: %s: %s", method, path, resp.Status, strings.TrimSpace(string(msg)))
	}
	return nil
}
