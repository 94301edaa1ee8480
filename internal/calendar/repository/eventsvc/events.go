package eventsvc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/calendar/repository"
	"kwikr-directory/internal/model"
	pkgLog "kwikr-directory/pkg/log"
)

type implRepository struct {
	client *Client
	cache  *expirable.LRU[string, calendar.RawEvents]
	l      pkgLog.Logger
}

// New creates the data service repository. Successful responses are cached
// per credential and date range for cacheTTL; a non-positive cacheTTL
// disables the cache.
func New(client *Client, cacheSize int, cacheTTL time.Duration, l pkgLog.Logger) repository.EventRepository {
	r := &implRepository{client: client, l: l}
	if cacheTTL > 0 {
		if cacheSize <= 0 {
			cacheSize = 256
		}
		r.cache = expirable.NewLRU[string, calendar.RawEvents](cacheSize, nil, cacheTTL)
	}
	return r
}

func (r *implRepository) FetchEvents(ctx context.Context, sc model.Scope, opt repository.FetchEventsOptions) (calendar.RawEvents, error) {
	start, end := opt.StartDate.String(), opt.EndDate.String()
	key := cacheKey(sc.Token, start, end)

	if r.cache != nil {
		if raw, ok := r.cache.Get(key); ok {
			return raw, nil
		}
	}

	resp, err := r.client.ListEvents(ctx, sc.Token, start, end)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Expired {
			r.l.Warnf(ctx, "eventsvc repository: session rejected: %v", err)
			return calendar.RawEvents{}, fmt.Errorf("%w: %s", calendar.ErrAuthExpired, apiErr.Message)
		}
		r.l.Errorf(ctx, "eventsvc repository: fetch %s..%s failed: %v", start, end, err)
		return calendar.RawEvents{}, fmt.Errorf("%w: %v", calendar.ErrFetchFailure, err)
	}

	if !resp.Success {
		r.l.Warnf(ctx, "eventsvc repository: data service reported failure: %q", resp.Error)
		return calendar.RawEvents{}, fmt.Errorf("%w: %s", calendar.ErrFetchFailure, failureMessage(resp.Error))
	}

	if r.cache != nil {
		r.cache.Add(key, resp.Events)
	}
	return resp.Events, nil
}

// cacheKey never embeds the credential itself.
func cacheKey(token, start, end string) string {
	return tokenDigest(token) + "|" + start + "|" + end
}

func tokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}

// invalidate drops every cached range of one credential.
func (r *implRepository) invalidate(token string) {
	if r.cache == nil {
		return
	}
	prefix := tokenDigest(token) + "|"
	for _, key := range r.cache.Keys() {
		if strings.HasPrefix(key, prefix) {
			r.cache.Remove(key)
		}
	}
}

func failureMessage(msg string) string {
	if msg == "" {
		return "success=false"
	}
	return msg
}
