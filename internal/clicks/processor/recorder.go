package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"dub-server/internal/clients/tinybird"
	"dub-server/internal/events"
	"dub-server/internal/observability"
	"dub-server/internal/store"

	"github.com/google/uuid"
)

const (
	// DedupeWindow is how long a (domain, key, ip) triple maps to one click id
	DedupeWindow = time.Hour
	// ClickCacheTTL is how long a recorded click stays readable for conversion tracking
	ClickCacheTTL = time.Hour
)

// DedupeKey returns the Redis key guarding one click per visitor and link
func DedupeKey(domain, key, ip string) string {
	return fmt.Sprintf("clickIdCache:%s:%s:%s", domain, key, ip)
}

// ClickCacheKey returns the Redis key of a cached click event
func ClickCacheKey(clickID string) string {
	return "clickCache:" + clickID
}

// ClickInput is everything known about a visit at redirect time
type ClickInput struct {
	Link      store.Link
	IP        string
	UserAgent string
	Referer   string
	Viewer    observability.ViewerInfo
	QR        bool
	NoTrack   bool
}

type Recorder struct {
	redis      RedisClient
	dispatcher Dispatcher
	publisher  Publisher
	logger     *observability.Logger
	now        func() time.Time
}

func New(redis RedisClient, dispatcher Dispatcher, publisher Publisher, logger *observability.Logger) *Recorder {
	return &Recorder{
		redis:      redis,
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
}

// Record assigns a click id to the visit and ships the click event for ingestion.
// Bots and visits opted out of tracking get no click id. A repeat within the dedupe window
// gets the id of the click already recorded, or none when that id cannot be read back.
// It never fails: the redirect must not depend on click tracking.
func (r *Recorder) Record(ctx context.Context, input ClickInput) (clickID string, recorded bool) {
	clickID = uuid.New().String()

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "link_id", Value: input.Link.ID.String()},
		observability.Field{Key: "click_id", Value: clickID},
	)

	if input.NoTrack {
		observability.ClicksTotal.WithLabelValues("no_track").Inc()
		return "", false
	}
	if observability.IsBot(input.UserAgent) {
		observability.ClicksTotal.WithLabelValues("bot").Inc()
		return "", false
	}

	dedupeKey := DedupeKey(input.Link.Domain, input.Link.Key, input.IP)
	first, err := r.redis.SetNX(ctx, dedupeKey, clickID, DedupeWindow)
	if err != nil {
		// Without Redis every click counts.
		r.logger.Error(ctx, "failed to check click dedupe key", err)
	} else if !first {
		observability.ClicksTotal.WithLabelValues("deduplicated").Inc()
		if existing, err := r.redis.Get(ctx, dedupeKey); err == nil && existing != "" {
			return existing, false
		}
		return "", false
	}

	click := r.buildClickEvent(clickID, input)

	if payload, err := json.Marshal(click); err != nil {
		r.logger.Error(ctx, "failed to encode click event", err)
	} else if err := r.redis.Set(ctx, ClickCacheKey(clickID), payload, ClickCacheTTL); err != nil {
		r.logger.Error(ctx, "failed to cache click event", err)
	}

	event, err := events.NewEvent(events.EventClickRecorded, input.Link.WorkspaceID.String(), input.Link.ID.String(), click)
	if err != nil {
		r.logger.Error(ctx, "failed to build click event", err)
		return clickID, false
	}

	if err := r.dispatcher.TrySubmit(event); err != nil {
		r.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "reason", Value: err.Error()}),
			"click pool unavailable, publishing inline")
		if err := r.publisher.Publish(ctx, event); err != nil {
			r.logger.Error(ctx, "failed to publish click event", err)
			return clickID, false
		}
	}

	observability.ClicksTotal.WithLabelValues("recorded").Inc()
	return clickID, true
}

func (r *Recorder) buildClickEvent(clickID string, input ClickInput) tinybird.ClickEvent {
	return tinybird.ClickEvent{
		Timestamp:   r.now().UTC().Format(time.RFC3339Nano),
		ClickID:     clickID,
		WorkspaceID: input.Link.WorkspaceID.String(),
		LinkID:      input.Link.ID.String(),
		Domain:      input.Link.Domain,
		Key:         input.Link.Key,
		URL:         input.Link.URL,
		IP:          input.IP,
		Country:     input.Viewer.Country,
		Region:      input.Viewer.Region,
		City:        input.Viewer.City,
		Continent:   input.Viewer.Continent,
		Latitude:    input.Viewer.Latitude,
		Longitude:   input.Viewer.Longitude,
		Device:      input.Viewer.DeviceType,
		OS:          input.Viewer.DeviceOS,
		Browser:     input.Viewer.Browser,
		UA:          input.UserAgent,
		Referer:     refererDomain(input.Referer),
		RefererURL:  refererURL(input.Referer),
		QR:          input.QR,
	}
}

func refererDomain(referer string) string {
	if referer == "" {
		return "(direct)"
	}
	u, err := url.Parse(referer)
	if err != nil || u.Hostname() == "" {
		return "(direct)"
	}
	return u.Hostname()
}

func refererURL(referer string) string {
	if referer == "" {
		return "(direct)"
	}
	return referer
}
