// Package requestid correlates log records and contact submissions with the
// HTTP request that produced them.
//
// Middleware reuses a valid incoming X-Request-ID header (letters, digits,
// '-' and '_', at most 128 characters) or generates a UUIDv7. The ID is
// stored in the request context, echoed in the response header, copied into
// submission metadata and added to logs by LoggerExtractor.
package requestid
