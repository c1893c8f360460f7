// Package clientip resolves the visitor address used for rate limiting keys
// and submission metadata.
//
// Behind a proxy the address comes from a forwarding header; otherwise from
// the connection. Middleware resolves it once per request and stores it in
// the context:
//
//	r.Use(clientip.Middleware(nil))             // DefaultHeaders
//	r.Use(clientip.Middleware([]string{}))      // RemoteAddr only
//
// Forwarding headers can be forged by clients that reach the server
// directly, so only trust them when a proxy overwrites them.
package clientip
