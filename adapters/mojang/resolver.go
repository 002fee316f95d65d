// Package mojang resolves player display names to account UUIDs through the
// public Mojang profile API.
package mojang

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SentinelID is returned for every lookup that cannot be resolved. Callers
// treat it as a valid, unresolved identity rather than an error.
const SentinelID = "00000000000000000000000000000000"

const defaultBaseURL = "https://api.mojang.com"

type Resolver struct {
	baseURL string
	http    *http.Client
}

func New() *Resolver {
	return &Resolver{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// NewWithBaseURL is used in tests to point the resolver at a stub server.
func NewWithBaseURL(baseURL string) *Resolver {
	r := New()
	r.baseURL = baseURL
	return r
}

// Resolve looks up the undashed account UUID for a display name. Any failure
// (network, not-found, malformed payload) degrades to the sentinel.
func (r *Resolver) Resolve(ctx context.Context, ownerName string) string {
	if ownerName == "" {
		return SentinelID
	}

	endpoint := fmt.Sprintf("%s/users/profiles/minecraft/%s", r.baseURL, url.PathEscape(ownerName))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return SentinelID
	}

	resp, err := r.http.Do(req)
	if err != nil {
		log.Printf("UUID lookup failed for %q: %v", ownerName, err)
		return SentinelID
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("UUID lookup for %q returned %s", ownerName, resp.Status)
		return SentinelID
	}

	var profile struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		log.Printf("UUID lookup for %q: bad payload: %v", ownerName, err)
		return SentinelID
	}

	// The API hands back undashed hex; keep that canonical form but make
	// sure it actually is a UUID before trusting it.
	parsed, err := uuid.Parse(profile.ID)
	if err != nil {
		log.Printf("UUID lookup for %q: invalid id %q", ownerName, profile.ID)
		return SentinelID
	}
	return strings.ReplaceAll(parsed.String(), "-", "")
}
