package whisperx

import (
	"fmt"
	"os/exec"
	"sync"
)

type profileKey struct {
	modelSize   string
	computeType string
}

// Registry caches one Service per model profile for the process lifetime.
// The mutex guards first-time construction so concurrent first requests
// never build the same profile twice. Construction failures are returned to
// the caller and not cached.
type Registry struct {
	mu       sync.Mutex
	services map[profileKey]*Service

	// lookPath is swapped in tests.
	lookPath func(file string) (string, error)
}

// NewRegistry creates an empty service registry.
func NewRegistry() *Registry {
	return &Registry{
		services: make(map[profileKey]*Service),
		lookPath: exec.LookPath,
	}
}

// Get returns the cached service for the profile, constructing it on first
// use. The profile is normalized before lookup so aliases share a cache
// entry.
func (r *Registry) Get(cfg Config) (*Service, error) {
	canonical, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}
	key := profileKey{modelSize: canonical.ModelSize, computeType: canonical.ComputeType}

	r.mu.Lock()
	defer r.mu.Unlock()
	if service, ok := r.services[key]; ok {
		return service, nil
	}
	if _, err := r.lookPath(UVXCommand); err != nil {
		return nil, fmt.Errorf("locate %s: %w", UVXCommand, err)
	}
	service := NewService(canonical)
	r.services[key] = service
	return service, nil
}
