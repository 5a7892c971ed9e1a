package projection

import (
	"context"
	"sync"

	"github.com/ksynicapp/storefront-server/internal/domain"
	"github.com/ksynicapp/storefront-server/internal/service"
)

// ProfileProjection tracks the profile screen. The profile loads once per
// process; updates persist through the service and patch the held state.
type ProfileProjection struct {
	profile *service.ProfileService

	mu     sync.Mutex
	state  State[domain.Profile]
	loaded bool
}

// NewProfileProjection creates a profile projection in the idle state.
func NewProfileProjection(profile *service.ProfileService) *ProfileProjection {
	return &ProfileProjection{
		profile: profile,
		state:   Idle[domain.Profile](),
	}
}

// Current returns the held profile state.
func (p *ProfileProjection) Current() State[domain.Profile] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Load fetches the profile, once unless forced.
func (p *ProfileProjection) Load(ctx context.Context, force bool) State[domain.Profile] {
	p.mu.Lock()
	if p.loaded && !force {
		state := p.state
		p.mu.Unlock()
		return state
	}
	p.state = Loading[domain.Profile]()
	p.mu.Unlock()

	profile, err := p.profile.Get(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.state = Errored[domain.Profile](err.Error())
		return p.state
	}
	p.state = Success(*profile)
	p.loaded = true
	return p.state
}

// Update applies a partial profile change and patches the held state.
func (p *ProfileProjection) Update(ctx context.Context, update service.ProfileUpdate) (*domain.Profile, error) {
	profile, err := p.profile.Update(ctx, update)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = Success(*profile)
	p.loaded = true
	return profile, nil
}

// Replace overwrites the profile record and patches the held state.
func (p *ProfileProjection) Replace(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	saved, err := p.profile.Replace(ctx, profile)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = Success(*saved)
	p.loaded = true
	return saved, nil
}
