package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarRequestHeader is set to "true" on every datastar fetch.
	DataStarRequestHeader = "Datastar-Request"
	// DataStarAcceptHeader is the Accept value of SSE clients.
	DataStarAcceptHeader = "text/event-stream"
)

const (
	PatchOuter   = datastar.ElementPatchModeOuter   // Morphs element (default)
	PatchInner   = datastar.ElementPatchModeInner   // Replace inner HTML
	PatchReplace = datastar.ElementPatchModeReplace // Replace entire element
	PatchRemove  = datastar.ElementPatchModeRemove  // Remove element
	PatchAppend  = datastar.ElementPatchModeAppend  // Append inside element
	PatchPrepend = datastar.ElementPatchModePrepend // Prepend inside element
)

// IsDataStar reports whether r was issued by the datastar client.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader)
}

// WantsJSON reports whether a non-datastar client asked for JSON, either via
// Accept or by sending a JSON body.
func WantsJSON(r *http.Request) bool {
	if IsDataStar(r) {
		return false
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

