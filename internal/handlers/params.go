package handlers

import (
	"net/http"
	"strconv"
	"strings"
)

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}

	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}

	return r.URL.Query().Get(name)
}

// getListParam collects repeated query values plus comma-separated lists,
// so ?genre=Action&genre=RPG and ?genre=Action,RPG read the same.
func getListParam(r *http.Request, name string) []string {
	var out []string
	for _, raw := range r.URL.Query()[name] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func getIntParam(r *http.Request, name string) int {
	n, _ := strconv.Atoi(getParam(r, name))
	return n
}

// userIDFromContext reads the id the JWT middleware stored on the request.
func userIDFromContext(r *http.Request) (int, bool) {
	id, ok := r.Context().Value("user_id").(int)
	return id, ok
}
