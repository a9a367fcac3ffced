package network

import (
	"errors"
	"fmt"
)

// ErrUnknownNetwork is returned by registry lookups for an id or payment
// protocol alias that names no known deployment.
var ErrUnknownNetwork = errors.New("unknown network")

// Registry holds the one Profile instance per known deployment. It is
// built once at process start and passed explicitly to everything that
// needs it; after construction it is immutable and safe for unbounded
// concurrent use.
type Registry struct {
	profiles []*Profile
	byID     map[string]*Profile
	byPPID   map[string]*Profile
}

// NewRegistry constructs every known profile. A genesis hash mismatch or
// a malformed address code set means the embedded constants are wrong
// for this build; the returned error is not recoverable and callers are
// expected to abort startup.
func NewRegistry() (*Registry, error) {
	builders := []func() (*Profile, error){
		productionProfile,
		testProfile,
		unitTestProfile,
	}

	r := Registry{
		byID:   make(map[string]*Profile, len(builders)),
		byPPID: make(map[string]*Profile, len(builders)),
	}

	for _, build := range builders {
		p, err := build()
		if err != nil {
			return nil, fmt.Errorf("building network profiles: %w", err)
		}

		r.profiles = append(r.profiles, p)
		r.byID[p.ID] = p
		if p.PaymentProtocolID != "" {
			r.byPPID[p.PaymentProtocolID] = p
		}
	}

	return &r, nil
}

// FromID returns the profile for the given unique network id.
func (r *Registry) FromID(id string) (*Profile, error) {
	p, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("network id %q: %w", id, ErrUnknownNetwork)
	}
	return p, nil
}

// FromPaymentProtocolID returns the profile for the given payment
// protocol alias ("main", "test").
func (r *Registry) FromPaymentProtocolID(alias string) (*Profile, error) {
	p, exists := r.byPPID[alias]
	if !exists {
		return nil, fmt.Errorf("payment protocol id %q: %w", alias, ErrUnknownNetwork)
	}
	return p, nil
}

// Profiles returns all registered profiles in fixed preference order,
// production first.
func (r *Registry) Profiles() []*Profile {
	profiles := make([]*Profile, len(r.profiles))
	copy(profiles, r.profiles)
	return profiles
}
