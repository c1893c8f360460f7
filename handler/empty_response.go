package handler

import "net/http"

type emptyResponse int

func (s emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(int(s))
	return nil
}

// Empty responds 204 No Content. Datastar actions that only need the
// request to land, such as an edit with nothing to re-render, use it.
func Empty() Response {
	return emptyResponse(http.StatusNoContent)
}
