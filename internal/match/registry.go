package match

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spigell/land-advisor/internal/land"
)

// ErrNotFound is returned when a buyer profile with the requested name does
// not exist. Checking for existence before matching is the caller's job.
var ErrNotFound = errors.New("buyer profile not found")

// Registry is an append-only in-memory collection of buyer profiles.
// Profiles are never auto-deleted; persistence across runs is handled by the
// store collaborator.
type Registry struct {
	engine Engine

	mu       sync.RWMutex
	profiles []BuyerProfile
}

// NewRegistry creates an empty profile registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a profile, assigning an ID when the caller left it empty,
// and returns the stored copy.
func (r *Registry) Add(profile BuyerProfile) (BuyerProfile, error) {
	if strings.TrimSpace(profile.Name) == "" {
		return BuyerProfile{}, fmt.Errorf("profile name is required")
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles = append(r.profiles, profile)
	return profile, nil
}

// Find returns the first profile with the given name.
func (r *Registry) Find(name string) (BuyerProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, profile := range r.profiles {
		if profile.Name == name {
			return profile, nil
		}
	}
	return BuyerProfile{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Len returns the number of registered profiles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.profiles)
}

// Recommend ranks the given reports for the named buyer. Unknown names fail
// with ErrNotFound rather than returning an empty list, so callers can tell
// "no such buyer" apart from "nothing matched".
func (r *Registry) Recommend(name string, reports *land.Reports) ([]MatchResult, error) {
	profile, err := r.Find(name)
	if err != nil {
		return nil, err
	}
	return r.engine.Rank(profile, reports), nil
}
