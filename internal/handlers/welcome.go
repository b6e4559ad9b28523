package handlers

import "net/http"

// NewWelcomeHandler answers the root path with a plain greeting.
func NewWelcomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("Welcome to the Pokédex API!"))
	}
}
