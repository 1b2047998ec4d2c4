// Package platform provides the REST client for the Lumina Analytics
// Cloud API.
//
// # Overview
//
// The package exposes one [Client] shared by all resource surfaces
// (items, spaces, apps, datasets, automations, reloads, users, AI
// assets, lineage). Each surface is a thin request/response mapping;
// the only logic the package owns is cursor-driven pagination via
// [Collect].
//
// # Pagination
//
// Paged listings return a continuation cursor inside links.next.href.
// [Collect] walks pages to exhaustion under a per-resource hard ceiling
// (see the Ceiling* constants). The cursor is opaque: it is extracted
// as the "next" query parameter of the returned URL and passed back
// verbatim, never inspected.
//
// # Errors
//
// HTTP status codes map to sentinel and structured errors:
//
//   - 404 → [ErrNotFound]
//   - 401/403 → UNAUTHORIZED / FORBIDDEN codes
//   - 429 → rate-limited (retried, honoring Retry-After)
//   - 5xx → retryable network error
//
// Transient failures are retried with exponential backoff via
// [httputil.Retry]; everything else propagates immediately.
package platform
