package credentials

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"enhancer/internal/catalog"
	"enhancer/internal/domain"
)

// Checker reports remote credential availability. *ProbeClient implements it.
type Checker interface {
	HasCredential(ctx context.Context, p catalog.Provider) bool
}

// Availability maps each provider to whether a usable credential was found.
type Availability map[catalog.Provider]bool

// Resolver answers two questions: does a provider have a usable credential,
// and what is it. Local keys win over remote probes because only local keys
// can actually be attached to outbound requests.
type Resolver struct {
	store *LocalStore
	probe Checker
	log   zerolog.Logger
}

// ResolverOptions configures a Resolver.
type ResolverOptions struct {
	// Store holds locally configured keys. Required.
	Store *LocalStore
	// Probe is an optional remote availability source.
	Probe  Checker
	Logger zerolog.Logger
}

// NewResolver validates options and builds a resolver.
func NewResolver(opts ResolverOptions) (*Resolver, error) {
	if opts.Store == nil {
		return nil, errors.New("credentials: local store is required")
	}
	return &Resolver{
		store: opts.Store,
		probe: opts.Probe,
		log:   opts.Logger,
	}, nil
}

// Resolve returns the credential to use for a provider. A non-empty
// per-request override wins; otherwise the local store is consulted. A
// provider with no credential anywhere yields a credential error.
func (r *Resolver) Resolve(ctx context.Context, p catalog.Provider, override string) (string, error) {
	if key := strings.TrimSpace(override); key != "" {
		r.log.Debug().Str("provider", string(p)).Msg("using per-request credential")
		return key, nil
	}
	if key, ok := r.store.Key(p); ok {
		r.log.Debug().Str("provider", string(p)).Msg("using stored credential")
		return key, nil
	}
	return "", domain.NewCredential(string(p))
}

// CheckAvailability reports whether any source has a credential for the
// provider. The probe is consulted first so operators can see remotely
// managed keys, then the local store.
func (r *Resolver) CheckAvailability(ctx context.Context, p catalog.Provider) bool {
	if r.probe != nil && r.probe.HasCredential(ctx, p) {
		return true
	}
	return r.store.Has(p)
}

// CheckAllAvailability probes every known provider concurrently and returns
// a freshly built map. A provider whose probe fails simply reports false;
// failures never cross between providers.
func (r *Resolver) CheckAllAvailability(ctx context.Context) Availability {
	providers := catalog.Providers()
	out := make(Availability, len(providers))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range providers {
		g.Go(func() error {
			ok := r.CheckAvailability(gctx, p)
			mu.Lock()
			out[p] = ok
			mu.Unlock()
			return nil
		})
	}
	// Workers never return errors; Wait only fences completion.
	_ = g.Wait()
	return out
}
