package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is one entry of the route table. Advertised routes are listed by
// the discovery endpoint.
type Route struct {
	Method     string
	Path       string
	Advertised bool
	Handler    gin.HandlerFunc
}

// Routes is the route table of the service, in discovery order
func (h *StatusHandler) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/", Handler: h.Root},
		{Method: http.MethodGet, Path: "/api/health", Advertised: true, Handler: h.Health},
		{Method: http.MethodGet, Path: "/api/ping", Advertised: true, Handler: h.Ping},
		{Method: http.MethodGet, Path: "/actuator/health", Advertised: true, Handler: h.Liveness},
	}
}

// AdvertisedPaths returns the paths of the advertised routes, in order
func AdvertisedPaths(routes []Route) []string {
	paths := make([]string, 0, len(routes))
	for _, r := range routes {
		if r.Advertised {
			paths = append(paths, r.Path)
		}
	}
	return paths
}

// Register installs routes on r
func Register(r gin.IRoutes, routes []Route) {
	for _, route := range routes {
		r.Handle(route.Method, route.Path, route.Handler)
	}
}
