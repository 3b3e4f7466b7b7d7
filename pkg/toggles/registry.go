package toggles

import (
	"sync/atomic"

	"github.com/aretw0/nodetrace/pkg/domain"
)

// Registry is the process-wide toggle state. It is safe for concurrent use.
type Registry struct {
	master atomic.Bool
	flags  map[domain.Category]*atomic.Bool
}

// NewRegistry creates a registry initialized from ts.
func NewRegistry(ts domain.ToggleSet) *Registry {
	r := &Registry{
		flags: make(map[domain.Category]*atomic.Bool, len(domain.Categories())),
	}
	for _, c := range domain.Categories() {
		r.flags[c] = new(atomic.Bool)
	}
	r.Apply(ts)
	return r
}

// IsEnabled reports master AND category. Unknown categories are disabled.
func (r *Registry) IsEnabled(c domain.Category) bool {
	f, ok := r.flags[c]
	if !ok {
		return false
	}
	return r.master.Load() && f.Load()
}

// Master reports the master switch.
func (r *Registry) Master() bool {
	return r.master.Load()
}

// SetMaster flips the master switch.
func (r *Registry) SetMaster(on bool) {
	r.master.Store(on)
}

// Set flips one category. It returns domain.ErrUnknownCategory for names outside domain.Categories().
func (r *Registry) Set(c domain.Category, on bool) error {
	f, ok := r.flags[c]
	if !ok {
		_, err := domain.ParseCategory(string(c))
		return err
	}
	f.Store(on)
	return nil
}

// Apply replaces every switch with the values of ts.
// Each switch is stored independently; readers may observe a mix while Apply runs.
func (r *Registry) Apply(ts domain.ToggleSet) {
	for c, f := range r.flags {
		f.Store(ts.Flag(c))
	}
	r.master.Store(ts.Enabled)
}

// Snapshot returns the current raw switches.
func (r *Registry) Snapshot() domain.ToggleSet {
	ts := domain.ToggleSet{Enabled: r.master.Load()}
	for c, f := range r.flags {
		ts = ts.With(c, f.Load())
	}
	return ts
}
