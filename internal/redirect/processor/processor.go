package processor

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	clickProcessor "dub-server/internal/clicks/processor"
	"dub-server/internal/observability"
	"dub-server/internal/store"
)

var (
	ErrLinkNotFound = errors.New("link not found")
	ErrLinkDisabled = errors.New("link is disabled")
	ErrLinkExpired  = errors.New("link has expired")
)

// ClickIDParam is appended to destinations of conversion-tracked links
const ClickIDParam = "dub_id"

type RedirectProcessor struct {
	store    LinkStore
	cache    LinkCache
	recorder ClickRecorder
	logger   *observability.Logger
	now      func() time.Time
}

func New(store LinkStore, cache LinkCache, recorder ClickRecorder, logger *observability.Logger) RedirectProcessor {
	return RedirectProcessor{
		store:    store,
		cache:    cache,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// RedirectRequest is an incoming visit to a short link
type RedirectRequest struct {
	Domain    string
	Key       string
	Query     url.Values
	IP        string
	UserAgent string
	Referer   string
	Viewer    observability.ViewerInfo
	NoTrack   bool
}

// RedirectResult is where the visitor goes
type RedirectResult struct {
	URL      string
	LinkID   string
	ClickID  string
	Recorded bool
}

// Resolve returns the link for (domain, key), reading through the cache
func (p *RedirectProcessor) Resolve(ctx context.Context, domain, key string) (store.Link, error) {
	domain = strings.ToLower(domain)

	cached, err := p.cache.Get(ctx, domain, key)
	if err != nil {
		p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: err.Error()}),
			"link cache unavailable, reading database")
	}
	if cached != nil {
		return *cached, nil
	}

	link, err := p.store.GetLinkByDomainKey(ctx, domain, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Link{}, ErrLinkNotFound
		}
		p.logger.Error(ctx, "failed to resolve link", err)
		return store.Link{}, err
	}

	if err := p.cache.Set(ctx, link); err != nil {
		p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: err.Error()}),
			"failed to populate link cache")
	}
	return link, nil
}

// Redirect resolves a visit to its final destination and records the click
func (p *RedirectProcessor) Redirect(ctx context.Context, req RedirectRequest) (RedirectResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "domain", Value: req.Domain},
		observability.Field{Key: "key", Value: req.Key},
	)

	link, err := p.Resolve(ctx, req.Domain, req.Key)
	if err != nil {
		if errors.Is(err, ErrLinkNotFound) {
			observability.RedirectsTotal.WithLabelValues("not_found").Inc()
		} else {
			observability.RedirectsTotal.WithLabelValues("error").Inc()
		}
		return RedirectResult{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "link_id", Value: link.ID.String()})

	if link.DisabledAt != nil || link.Archived {
		observability.RedirectsTotal.WithLabelValues("disabled").Inc()
		return RedirectResult{}, ErrLinkDisabled
	}

	if link.ExpiresAt != nil && !p.now().Before(*link.ExpiresAt) {
		if link.ExpiredURL == nil || *link.ExpiredURL == "" {
			observability.RedirectsTotal.WithLabelValues("expired").Inc()
			return RedirectResult{}, ErrLinkExpired
		}
		observability.RedirectsTotal.WithLabelValues("expired_redirect").Inc()
		return RedirectResult{URL: *link.ExpiredURL, LinkID: link.ID.String()}, nil
	}

	clickID, recorded := p.recorder.Record(ctx, clickProcessor.ClickInput{
		Link:      link,
		IP:        req.IP,
		UserAgent: req.UserAgent,
		Referer:   req.Referer,
		Viewer:    req.Viewer,
		QR:        req.Query.Get("qr") == "1",
		NoTrack:   req.NoTrack,
	})

	trackingID := ""
	if link.TrackConversion {
		trackingID = clickID
	}
	destination, err := BuildDestinationURL(link.URL, req.Query, trackingID)
	if err != nil {
		// Stored destinations were validated on write; serve them untouched.
		p.logger.Error(ctx, "failed to build destination url", err)
		destination = link.URL
	}

	observability.RedirectsTotal.WithLabelValues("redirect").Inc()
	return RedirectResult{
		URL:      destination,
		LinkID:   link.ID.String(),
		ClickID:  clickID,
		Recorded: recorded,
	}, nil
}

// BuildDestinationURL merges the visit's query parameters into the destination.
// Parameters already on the destination win. A non-empty clickID is added as dub_id.
func BuildDestinationURL(destination string, incoming url.Values, clickID string) (string, error) {
	u, err := url.Parse(destination)
	if err != nil {
		return "", err
	}

	query := u.Query()
	for name, values := range incoming {
		if name == "qr" {
			continue
		}
		if _, exists := query[name]; exists {
			continue
		}
		for _, v := range values {
			query.Add(name, v)
		}
	}
	if clickID != "" {
		query.Set(ClickIDParam, clickID)
	}

	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}
