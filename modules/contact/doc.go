// Package contact serves the contact form over HTTP.
//
// Every page mount gets its own svc/contact Form, identified by a random ID
// embedded in the page and kept in an LRU cache with idle expiry. Datastar
// clients report edits to /contact/{formID}/change and submit to
// /contact/{formID}/submit, receiving element patches; browsers without
// JavaScript post the same submit endpoint and receive a full page.
// POST /api/contact accepts one-shot JSON submissions.
//
// Submit endpoints are rate limited per client IP when a limiter is
// configured.
package contact
