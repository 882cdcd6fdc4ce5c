// Package hub implements the TripleTen hub API gateway.
//
// The hub has no public API for leaderboard data; the internal
// endpoints serve the web client only and authenticate with browser
// session cookies. The gateway therefore reproduces the web client's
// behaviour: a fixed Firefox header fingerprint on every request, the
// full cookie jar attached verbatim, and the exact route spelling the
// front-end uses (including a doubled slash the hub's router depends
// on).
//
// # Components
//
//   - Client: implements [driven.LeaderboardGateway]; owns login,
//     leaderboard fetches, profile probes and payload normalisation
//   - Transport: a resty client carrying the fingerprint, bounded
//     retries and a proactive rate limit
//   - exchangeDump: optional per-request diagnostics files with
//     cookies redacted
//
// # Retry Behaviour
//
// Idempotent requests (GET, HEAD, OPTIONS) are retried up to three
// times on transport errors and on 429/500/502/503/504, with
// exponential backoff. A 401 is never retried: it means the session
// cookies are stale and only a fresh login fixes that. When the
// retry budget is spent the final response is surfaced as a plain
// APIError rather than a retry failure.
//
// # Payload Shapes
//
// Two leaderboard payload shapes exist in the wild. The current one
// carries full entries under `leaderboard` and is used verbatim; the
// older one carries reduced records under `top_members` and is
// synthesised into full entries (positional rank, zero values for the
// missing fields). Both normalise into [domain.Entry] so nothing
// outside this package knows the wire shapes.
package hub
