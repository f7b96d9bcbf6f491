package handler

import (
	"net/http"
	"sitepro/di"
	"sitepro/helper"
	"sync"

	transport "sitepro/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

// Handler serves the API as a serverless function. The router is built on the first invocation
// and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		helper.Bootstrap()

		server = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
