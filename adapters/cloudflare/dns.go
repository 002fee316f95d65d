// Package cloudflare links instance names to the home connection by managing
// CNAME records under the base domain.
package cloudflare

import (
	"context"
	"fmt"
	"log"

	cf "github.com/cloudflare/cloudflare-go"
)

type Registry struct {
	api        *cf.API
	zone       *cf.ResourceContainer
	baseDomain string
	target     string
}

func New(token, zoneID, baseDomain, target string) (*Registry, error) {
	api, err := cf.NewWithAPIToken(token)
	if err != nil {
		return nil, err
	}
	return &Registry{
		api:        api,
		zone:       cf.ZoneIdentifier(zoneID),
		baseDomain: baseDomain,
		target:     target,
	}, nil
}

// CreateSubdomain points name.<baseDomain> at the DDNS target. Creating an
// already-present record is a no-op.
func (r *Registry) CreateSubdomain(ctx context.Context, name string) error {
	fullName := fmt.Sprintf("%s.%s", name, r.baseDomain)

	records, _, err := r.api.ListDNSRecords(ctx, r.zone, cf.ListDNSRecordsParams{Name: fullName})
	if err != nil {
		return fmt.Errorf("list dns records for %s: %w", fullName, err)
	}
	if len(records) > 0 {
		log.Printf("DNS record for %s already exists", fullName)
		return nil
	}

	_, err = r.api.CreateDNSRecord(ctx, r.zone, cf.CreateDNSRecordParams{
		Type:    "CNAME",
		Name:    name,
		Content: r.target,
		Proxied: cf.BoolPtr(false),
	})
	if err != nil {
		return fmt.Errorf("create dns record for %s: %w", fullName, err)
	}
	return nil
}

// RemoveSubdomain deletes every record for name.<baseDomain>. A missing
// record is a no-op.
func (r *Registry) RemoveSubdomain(ctx context.Context, name string) error {
	fullName := fmt.Sprintf("%s.%s", name, r.baseDomain)

	records, _, err := r.api.ListDNSRecords(ctx, r.zone, cf.ListDNSRecordsParams{Name: fullName})
	if err != nil {
		return fmt.Errorf("list dns records for %s: %w", fullName, err)
	}
	if len(records) == 0 {
		log.Printf("No DNS record found for %s", fullName)
		return nil
	}

	for _, record := range records {
		if err := r.api.DeleteDNSRecord(ctx, r.zone, record.ID); err != nil {
			return fmt.Errorf("delete dns record %s: %w", record.ID, err)
		}
	}
	return nil
}
