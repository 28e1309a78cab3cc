package localization

import (
	"context"
	"time"
)

// Resolver resolves the display zone for the operation carried by ctx
type Resolver interface {
	ResolveZone(ctx context.Context) (*time.Location, error)
}

// ResolverFunc adapts a plain function to Resolver
type ResolverFunc func(ctx context.Context) (*time.Location, error)

// ResolveZone calls f(ctx)
func (f ResolverFunc) ResolveZone(ctx context.Context) (*time.Location, error) {
	return f(ctx)
}

// ContextResolver reads the zone stored with WithZone. When the context has
// none it returns Fallback, or ErrZoneUnavailable if Fallback is nil.
type ContextResolver struct {
	Fallback *time.Location
}

// NewContextResolver creates a resolver with an optional fallback zone
func NewContextResolver(fallback *time.Location) *ContextResolver {
	return &ContextResolver{Fallback: fallback}
}

// ResolveZone implements Resolver
func (r *ContextResolver) ResolveZone(ctx context.Context) (*time.Location, error) {
	if zone, ok := ZoneFromContext(ctx); ok {
		return zone, nil
	}
	if r.Fallback != nil {
		return r.Fallback, nil
	}
	return nil, ErrZoneUnavailable
}
