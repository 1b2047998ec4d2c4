package platform

import (
	"context"
	"net/url"
	"strconv"
)

// Page size bounds for paged listings. The API rejects page sizes above
// MaxPageSize, so the client clamps rather than forwarding blindly.
const (
	DefaultPageSize = 100
	MaxPageSize     = 100
)

// Hard ceilings on exhaustive pagination, per resource kind. These bound
// worst-case latency and memory for a single tool call, not any true
// domain limit: once a ceiling triggers, the aggregation is a documented
// approximation of the full listing.
const (
	CeilingSearch      = 2000 // generic item search
	CeilingUsers       = 2000
	CeilingSpaces      = 1000
	CeilingDatasets    = 1000
	CeilingAutomations = 1000
	CeilingAlerts      = 1000
	CeilingRuns        = 500 // automation run and reload history
	CeilingMLAssets    = 500 // assistants and AutoML experiments
)

// PageFunc fetches one page of a listing. cursor is the opaque
// continuation token from the previous page, empty for the first call.
// It returns the page's items in order and the next cursor, empty when
// the listing is exhausted.
type PageFunc[T any] func(ctx context.Context, cursor string) (items []T, next string, err error)

// Collect walks a paged listing to exhaustion, or until the accumulated
// item count reaches ceiling, and returns the items in cross-page order.
//
// Pages are fetched exactly once each; there is no backward pagination
// and no deduplication (the API guarantees no duplicates while a cursor
// is held). Any fetch error aborts the whole aggregation: items already
// collected are discarded and the raw error propagates.
func Collect[T any](ctx context.Context, fetch PageFunc[T], ceiling int) ([]T, error) {
	var out []T
	cursor := ""
	for {
		items, next, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)

		if len(out) >= ceiling {
			return out[:ceiling], nil
		}
		if next == "" {
			return out, nil
		}
		cursor = next
	}
}

// listEnvelope is the wire shape of every paged listing response.
type listEnvelope[T any] struct {
	Data  []T `json:"data"`
	Links struct {
		Next struct {
			Href string `json:"href"`
		} `json:"next"`
	} `json:"links"`
}

// nextCursor extracts the continuation token from a links.next.href URL.
// The token is the "next" query parameter when present; otherwise the
// whole href is carried as the opaque cursor. Returns empty when there
// is no next page.
func nextCursor(href string) string {
	if href == "" {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if next := u.Query().Get("next"); next != "" {
		return next
	}
	return href
}

// listPage fetches one page of a paged resource listing. Extra query
// parameters (filters) are merged with the pagination parameters.
func listPage[T any](ctx context.Context, c *Client, path string, extra url.Values, cursor string) ([]T, string, error) {
	q := url.Values{}
	for k, vs := range extra {
		q[k] = vs
	}
	q.Set("limit", strconv.Itoa(c.pageSize))
	if cursor != "" {
		q.Set("next", cursor)
	}

	var env listEnvelope[T]
	if err := c.Get(ctx, path, q, &env); err != nil {
		return nil, "", err
	}
	return env.Data, nextCursor(env.Links.Next.Href), nil
}
