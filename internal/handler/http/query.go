package http

import (
	"net/http"
	"strconv"

	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/listkit"
)

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}

// querySortDir reads sort_dir, defaulting to ascending for anything other
// than an explicit "desc".
func querySortDir(r *http.Request) listkit.SortDir {
	if r.URL.Query().Get("sort_dir") == string(listkit.SortDesc) {
		return listkit.SortDesc
	}
	return listkit.SortAsc
}
