package middleware

import (
	"net/http"
	"sync"
)

// Serialize runs requests one at a time. The record collections model a
// single-operator desk and the services below this layer are lock-free, so
// the HTTP edge is where concurrent access gets squeezed out.
func Serialize() func(http.Handler) http.Handler {
	var mu sync.Mutex
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()
			next.ServeHTTP(w, r)
		})
	}
}
