package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar registers routes into the public and protected groups.
// Every handler in this package implements it.
type RouteRegistrar interface {
	RegisterRoutes(public, protected *gin.RouterGroup)
}

// Router manages HTTP route registration
type Router struct {
	engine     *gin.Engine
	apiVersion string
	guard      gin.HandlerFunc
	registrars []RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// WithSessionGuard sets the middleware applied to the protected group
func WithSessionGuard(guard gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.guard = guard
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
		registrars: make([]RouteRegistrar, 0),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a RouteRegistrar to be registered later
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup registers all routes with the engine. Routes land in a
// versioned API group; the protected subgroup carries the session
// guard when one is configured.
func (r *Router) Setup() {
	public := r.engine.Group("/api/" + r.apiVersion)

	protected := public.Group("")
	if r.guard != nil {
		protected.Use(r.guard)
	}

	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(public, protected)
	}
}
