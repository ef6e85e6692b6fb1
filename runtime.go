package openmethods

import (
	"sync"
	"sync/atomic"

	"github.com/go-openmethods/openmethods/classgraph"
	"github.com/go-openmethods/openmethods/conform"
	"github.com/go-openmethods/openmethods/core"
	"github.com/go-openmethods/openmethods/dispatch"
	"github.com/go-openmethods/openmethods/slot"
	"github.com/go-openmethods/openmethods/table"
)

// RuntimeOption customizes a Runtime's setup-phase behavior. It mutates
// a runtimeConfig before any method or override is registered, following
// lvlath's BuilderOption/builderConfig shape: a func(*config) applied
// left-to-right over newRuntimeConfig's defaults.
type RuntimeOption func(cfg *runtimeConfig)

// runtimeConfig holds Runtime's configurable setup-phase behavior.
type runtimeConfig struct {
	// strict, when true (the default), makes RegisterSpec reject an
	// override whose declared parameter class is not yet reachable from
	// any registered method's virtual parameters (spec §7 "override
	// parameter types unreachable from the method's declared types").
	// Set false only when overrides are registered speculatively, ahead
	// of the method registrations that will make their classes reachable.
	strict bool
}

func newRuntimeConfig(opts ...RuntimeOption) *runtimeConfig {
	cfg := &runtimeConfig{strict: true}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithStrictValidation toggles RegisterSpec's reachability check. See
// runtimeConfig.strict.
func WithStrictValidation(strict bool) RuntimeOption {
	return func(cfg *runtimeConfig) { cfg.strict = strict }
}

// Runtime aggregates a class graph builder plus the registered methods
// and overrides of one dispatch session, and exposes the setup/dispatch
// facade of spec §6. It plays the same role over the algorithm packages
// that lvlath's BuildGraph plays over core.Graph: a thin, deterministic
// orchestrator with no algorithmic logic of its own.
//
// Concurrency: Register/RegisterSpec/Update are serialized by mu, the
// single-threaded setup phase of spec §5. Once Update returns, sealed is
// true and Call reads only immutable structures, lock-free.
type Runtime struct {
	mu      sync.Mutex
	builder *classgraph.Builder
	methods []*core.Method
	cfg     *runtimeConfig
	sealed  atomic.Bool
	classOf map[core.ClassInfo]*core.Class
}

// New creates a Runtime that will draw candidate descendants from source
// when Update runs classgraph.Builder.Scoop.
func New(source core.ClassSource, opts ...RuntimeOption) *Runtime {
	return &Runtime{
		builder: classgraph.NewBuilder(source),
		cfg:     newRuntimeConfig(opts...),
	}
}

// Class returns the Class node for desc, creating it if this is the
// first time desc has been seen. Callers use this to obtain the
// *core.Class values a core.Method's Params (and a core.Spec's Params)
// are declared in terms of, before registering either.
func (r *Runtime) Class(desc core.ClassInfo) *core.Class {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.builder.ClassFor(desc)
}

// Register records m as a method this Runtime will build a dispatch
// table for on Update. m.Params must already be set (via Runtime.Class)
// to a non-empty list of classes this Runtime knows about.
func (r *Runtime) Register(m *core.Method) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return core.WrapMisuse("cannot register a method after Update() has sealed the runtime")
	}
	if m == nil {
		return core.WrapMisuse("cannot register a nil method")
	}
	if len(m.Params) == 0 {
		return core.WrapMisuse("method '%s' must declare at least one virtual parameter", m.Name)
	}

	descs := make([]core.ClassInfo, len(m.Params))
	for i, p := range m.Params {
		if p == nil {
			return core.WrapMisuse("method '%s': virtual parameter %d has no declared class", m.Name, i)
		}
		descs[i] = p.Desc
	}

	r.builder.Seed(m, descs)
	r.methods = append(r.methods, m)

	return nil
}

// RegisterSpec validates s, an override already appended to its method's
// Specs by core.NewSpec. When strict validation is enabled (the
// default), every one of s's declared parameter classes must already be
// reachable from some registered method's virtual parameters, or
// RegisterSpec returns a core.ErrSetupMisuse-wrapped error instead of
// letting Update silently skip an unreachable override.
func (r *Runtime) RegisterSpec(s *core.Spec) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return core.WrapMisuse("cannot register an override after Update() has sealed the runtime")
	}
	if s == nil {
		return core.WrapMisuse("cannot register a nil override")
	}
	if !r.cfg.strict {
		return nil
	}

	for i, p := range s.Params {
		if p == nil || r.builder.Lookup(p.Desc) == nil {
			return core.WrapMisuse("override of method '%s' at position %d: class is unreachable from any registered method's declared virtual types", s.Method.Name, i)
		}
	}

	return nil
}

// Update runs the setup pipeline — scoop, initBases, layer, conformance
// closure, slot allocation, and per-method table construction — over
// everything registered so far, then seals the Runtime for dispatch.
// Calling Update more than once returns a core.ErrSetupMisuse-wrapped
// error rather than rebuilding an already-sealed runtime.
func (r *Runtime) Update() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return core.WrapMisuse("Update() has already been called on this runtime")
	}

	r.builder.Scoop()
	r.builder.InitBases()
	layered := r.builder.Layer()

	conform.Build(layered)
	slot.Allocate(layered)

	for _, m := range r.methods {
		table.Build(m)
	}

	r.classOf = r.builder.Classes()
	r.sealed.Store(true)

	return nil
}

// ClassOf resolves desc to its Class node, satisfying dispatch.ClassOf.
func (r *Runtime) ClassOf(desc core.ClassInfo) (*core.Class, bool) {
	c, ok := r.classOf[desc]

	return c, ok
}

// Call dispatches m over args, the Go rendition of spec §4.7/§6's
// exposed Call. It is safe for concurrent use once Update has returned.
func (r *Runtime) Call(m *core.Method, args ...core.Instance) (interface{}, error) {
	return dispatch.Call(r, &r.sealed, m, args...)
}
