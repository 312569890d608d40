package processor

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"dub-server/internal/observability"
	"dub-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrLinkNotFound  = errors.New("link not found")
	ErrKeyExists     = errors.New("key already exists on this domain")
	ErrInvalidURL    = errors.New("invalid destination url")
	ErrInvalidDomain = errors.New("invalid domain")
	ErrInvalidKey    = errors.New("invalid key")
)

// maxKeyLength bounds the path segment of a short link
const maxKeyLength = 190

type LinkProcessor struct {
	store  LinkStore
	cache  LinkCache
	logger *observability.Logger
}

func New(store LinkStore, cache LinkCache, logger *observability.Logger) LinkProcessor {
	return LinkProcessor{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// CreateLinkParams represents parameters for creating a link
type CreateLinkParams struct {
	Domain          string
	Key             string
	URL             string
	ProgramID       *uuid.UUID
	PartnerID       *uuid.UUID
	TrackConversion bool
	ExpiresAt       *time.Time
	ExpiredURL      *string
}

// UpdateLinkParams represents the mutable fields of a link. Nil fields are left untouched.
type UpdateLinkParams struct {
	Key             *string
	URL             *string
	TrackConversion *bool
	ExpiresAt       *time.Time
	ExpiredURL      *string
	Archived        *bool
}

// LinkStats are the denormalised counters of a link
type LinkStats struct {
	LinkID      uuid.UUID  `json:"link_id"`
	Clicks      int64      `json:"clicks"`
	Leads       int64      `json:"leads"`
	Sales       int64      `json:"sales"`
	SaleAmount  int64      `json:"sale_amount"`
	LastClicked *time.Time `json:"last_clicked,omitempty"`
}

// CreateLink creates a short link and warms the redirect cache with it
func (p *LinkProcessor) CreateLink(ctx context.Context, workspaceID uuid.UUID, params CreateLinkParams) (store.Link, error) {
	domain := strings.ToLower(strings.TrimSpace(params.Domain))
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "workspace_id", Value: workspaceID.String()},
		observability.Field{Key: "domain", Value: domain},
		observability.Field{Key: "key", Value: params.Key},
	)

	if err := validateDomain(domain); err != nil {
		return store.Link{}, err
	}
	if err := validateKey(params.Key); err != nil {
		return store.Link{}, err
	}
	if err := validateURL(params.URL); err != nil {
		return store.Link{}, err
	}
	if params.ExpiredURL != nil {
		if err := validateURL(*params.ExpiredURL); err != nil {
			return store.Link{}, err
		}
	}

	link, err := p.store.CreateLink(ctx, store.CreateLinkParams{
		WorkspaceID:     workspaceID,
		Domain:          domain,
		Key:             params.Key,
		URL:             params.URL,
		ProgramID:       params.ProgramID,
		PartnerID:       params.PartnerID,
		TrackConversion: params.TrackConversion,
		ExpiresAt:       params.ExpiresAt,
		ExpiredURL:      params.ExpiredURL,
	})
	if err != nil {
		if errors.Is(err, store.ErrLinkKeyExists) {
			return store.Link{}, ErrKeyExists
		}
		p.logger.Error(ctx, "failed to create link", err)
		return store.Link{}, err
	}

	p.refreshCache(ctx, link)

	ctx = observability.WithFields(ctx, observability.Field{Key: "link_id", Value: link.ID.String()})
	p.logger.Info(ctx, "link created")
	return link, nil
}

// GetLink returns a link of the workspace
func (p *LinkProcessor) GetLink(ctx context.Context, workspaceID, linkID uuid.UUID) (store.Link, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "workspace_id", Value: workspaceID.String()},
		observability.Field{Key: "link_id", Value: linkID.String()},
	)

	link, err := p.store.GetLinkByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Link{}, ErrLinkNotFound
		}
		p.logger.Error(ctx, "failed to get link", err)
		return store.Link{}, err
	}
	if link.WorkspaceID != workspaceID {
		return store.Link{}, ErrLinkNotFound
	}
	return link, nil
}

// UpdateLink updates a link and rewrites its cache entry. Renaming the key drops the old entry.
func (p *LinkProcessor) UpdateLink(ctx context.Context, workspaceID, linkID uuid.UUID, params UpdateLinkParams) (store.Link, error) {
	existing, err := p.GetLink(ctx, workspaceID, linkID)
	if err != nil {
		return store.Link{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "workspace_id", Value: workspaceID.String()},
		observability.Field{Key: "link_id", Value: linkID.String()},
	)

	if params.Key != nil {
		if err := validateKey(*params.Key); err != nil {
			return store.Link{}, err
		}
	}
	if params.URL != nil {
		if err := validateURL(*params.URL); err != nil {
			return store.Link{}, err
		}
	}
	if params.ExpiredURL != nil {
		if err := validateURL(*params.ExpiredURL); err != nil {
			return store.Link{}, err
		}
	}

	link, err := p.store.UpdateLink(ctx, linkID, store.UpdateLinkParams{
		Key:             params.Key,
		URL:             params.URL,
		TrackConversion: params.TrackConversion,
		ExpiresAt:       params.ExpiresAt,
		ExpiredURL:      params.ExpiredURL,
		Archived:        params.Archived,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Link{}, ErrLinkNotFound
		case errors.Is(err, store.ErrLinkKeyExists):
			return store.Link{}, ErrKeyExists
		}
		p.logger.Error(ctx, "failed to update link", err)
		return store.Link{}, err
	}

	if link.Key != existing.Key {
		if err := p.cache.Delete(ctx, existing.Domain, existing.Key); err != nil {
			p.logger.Error(ctx, "failed to evict renamed link from cache", err)
		}
	}
	p.refreshCache(ctx, link)

	p.logger.Info(ctx, "link updated")
	return link, nil
}

// DeleteLink deletes a link and evicts it from the redirect cache
func (p *LinkProcessor) DeleteLink(ctx context.Context, workspaceID, linkID uuid.UUID) error {
	if _, err := p.GetLink(ctx, workspaceID, linkID); err != nil {
		return err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "workspace_id", Value: workspaceID.String()},
		observability.Field{Key: "link_id", Value: linkID.String()},
	)

	ref, err := p.store.DeleteLink(ctx, linkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLinkNotFound
		}
		p.logger.Error(ctx, "failed to delete link", err)
		return err
	}

	if err := p.cache.Delete(ctx, ref.Domain, ref.Key); err != nil {
		p.logger.Error(ctx, "failed to evict deleted link from cache", err)
	}

	p.logger.Info(ctx, "link deleted")
	return nil
}

// GetLinkStats returns the counters of a link
func (p *LinkProcessor) GetLinkStats(ctx context.Context, workspaceID, linkID uuid.UUID) (LinkStats, error) {
	link, err := p.GetLink(ctx, workspaceID, linkID)
	if err != nil {
		return LinkStats{}, err
	}
	return LinkStats{
		LinkID:      link.ID,
		Clicks:      link.Clicks,
		Leads:       link.Leads,
		Sales:       link.Sales,
		SaleAmount:  link.SaleAmount,
		LastClicked: link.LastClicked,
	}, nil
}

// refreshCache writes the link to the cache. When the write fails the entry is
// evicted so the next redirect reads the database.
func (p *LinkProcessor) refreshCache(ctx context.Context, link store.Link) {
	if err := p.cache.Set(ctx, link); err != nil {
		p.logger.Error(ctx, "failed to cache link", err)
		if err := p.cache.Delete(ctx, link.Domain, link.Key); err != nil {
			p.logger.Error(ctx, "failed to evict link after cache write failure", err)
		}
	}
}

func validateURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ErrInvalidURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidURL
	}
	return nil
}

func validateDomain(domain string) error {
	if domain == "" || len(domain) > 253 || !strings.Contains(domain, ".") {
		return ErrInvalidDomain
	}
	if strings.ContainsAny(domain, "/:?# ") {
		return ErrInvalidDomain
	}
	return nil
}

func validateKey(key string) error {
	if key == "" || len(key) > maxKeyLength {
		return ErrInvalidKey
	}
	if strings.ContainsAny(key, "/?# ") {
		return ErrInvalidKey
	}
	// Reserved for the API and metrics endpoints on the short domain.
	switch key {
	case "api", "metrics", "health":
		return ErrInvalidKey
	}
	return nil
}
