package shape

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/text/cases"

	"github.com/gogpu/gg-qr/internal/logging"
	"github.com/gogpu/gg-qr/settings"
)

// DefaultName is the generator used when a requested name is unknown.
// Every category registers a generator under this name.
const DefaultName = "square"

// ErrUnknownGenerator is returned when no generator is registered under a
// requested name.
var ErrUnknownGenerator = errors.New("shape: unknown generator")

// PixelFactory creates a pixel generator from a configuration.
type PixelFactory func(settings.Config) PixelGenerator

// EyeFactory creates an eye generator from a configuration.
type EyeFactory func(settings.Config) EyeGenerator

// PupilFactory creates a pupil generator from a configuration.
type PupilFactory func(settings.Config) PupilGenerator

type entry[T any] struct {
	desc   Descriptor
	create func(settings.Config) T
}

// registry is the per-category generator table. It is safe for concurrent
// use; registration normally happens from init functions.
type registry[T any] struct {
	category Category
	mu       sync.RWMutex
	entries  map[string]entry[T]
}

func newRegistry[T any](c Category) *registry[T] {
	return &registry[T]{category: c, entries: make(map[string]entry[T])}
}

var (
	pixels = newRegistry[PixelGenerator](CategoryPixel)
	eyes   = newRegistry[EyeGenerator](CategoryEye)
	pupils = newRegistry[PupilGenerator](CategoryPupil)
)

func (r *registry[T]) register(d Descriptor, create func(settings.Config) T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if create == nil {
		panic(fmt.Sprintf("shape: Register %s factory is nil", r.category))
	}
	if d.Name == "" {
		panic(fmt.Sprintf("shape: Register %s generator with empty name", r.category))
	}
	if _, dup := r.entries[d.Name]; dup {
		panic(fmt.Sprintf("shape: Register called twice for %s %q", r.category, d.Name))
	}
	r.entries[d.Name] = entry[T]{desc: d, create: create}
}

func (r *registry[T]) unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// find resolves name exactly, then case-insensitively.
func (r *registry[T]) find(name string) (entry[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.entries[name]; ok {
		return e, true
	}
	fold := cases.Fold()
	want := fold.String(name)
	for key, e := range r.entries {
		if fold.String(key) == want {
			return e, true
		}
	}
	return entry[T]{}, false
}

func (r *registry[T]) list() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.desc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *registry[T]) create(name string, cfg settings.Config) (T, error) {
	e, ok := r.find(name)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s %q (forgotten import?)", ErrUnknownGenerator, r.category, name)
	}
	return e.create(cfg), nil
}

// createOrDefault falls back to DefaultName for unknown names. The zero
// value is returned only when the default itself is missing.
func (r *registry[T]) createOrDefault(name string, cfg settings.Config) T {
	g, err := r.create(name, cfg)
	if err == nil {
		return g
	}
	logging.Logger().Warn("shape: unknown generator, using default",
		"category", string(r.category), "name", name, "default", DefaultName)
	g, err = r.create(DefaultName, nil)
	if err != nil {
		logging.Logger().Error("shape: default generator not registered",
			"category", string(r.category))
	}
	return g
}

// RegisterPixel registers a pixel generator factory.
// It is typically called from init() in the package providing the
// generator, following the database/sql driver pattern.
//
// RegisterPixel panics if the factory is nil, the name is empty or a pixel
// generator with the same name is already registered.
func RegisterPixel(d Descriptor, f PixelFactory) {
	pixels.register(d, f)
}

// RegisterEye registers an eye generator factory.
// It panics under the same conditions as RegisterPixel.
func RegisterEye(d Descriptor, f EyeFactory) {
	eyes.register(d, f)
}

// RegisterPupil registers a pupil generator factory.
// It panics under the same conditions as RegisterPixel.
func RegisterPupil(d Descriptor, f PupilFactory) {
	pupils.register(d, f)
}

// Unregister removes a generator from the registry.
// This is primarily useful for testing. Unknown names are a no-op.
func Unregister(c Category, name string) {
	switch c {
	case CategoryPixel:
		pixels.unregister(name)
	case CategoryEye:
		eyes.unregister(name)
	case CategoryPupil:
		pupils.unregister(name)
	}
}

// List returns the registered generators of a category sorted by name.
func List(c Category) []Descriptor {
	switch c {
	case CategoryPixel:
		return pixels.list()
	case CategoryEye:
		return eyes.list()
	case CategoryPupil:
		return pupils.list()
	}
	return nil
}

// NewPixel creates the pixel generator registered under name. Lookup is
// exact first, then case-insensitive. An unknown name wraps
// ErrUnknownGenerator.
func NewPixel(name string, cfg settings.Config) (PixelGenerator, error) {
	return pixels.create(name, cfg)
}

// NewEye creates the eye generator registered under name.
func NewEye(name string, cfg settings.Config) (EyeGenerator, error) {
	return eyes.create(name, cfg)
}

// NewPupil creates the pupil generator registered under name.
func NewPupil(name string, cfg settings.Config) (PupilGenerator, error) {
	return pupils.create(name, cfg)
}

// CreatePixel is like NewPixel but falls back to the DefaultName generator
// with default settings when name is unknown. The substitution is logged
// at warn level.
func CreatePixel(name string, cfg settings.Config) PixelGenerator {
	return pixels.createOrDefault(name, cfg)
}

// CreateEye is like NewEye but falls back to the DefaultName generator.
func CreateEye(name string, cfg settings.Config) EyeGenerator {
	return eyes.createOrDefault(name, cfg)
}

// CreatePupil is like NewPupil but falls back to the DefaultName generator.
func CreatePupil(name string, cfg settings.Config) PupilGenerator {
	return pupils.createOrDefault(name, cfg)
}

// Create creates a generator of any category, falling back to the default
// generator for unknown names. It returns nil for an unknown category.
func Create(c Category, name string, cfg settings.Config) Codable {
	switch c {
	case CategoryPixel:
		if g := CreatePixel(name, cfg); g != nil {
			return g
		}
	case CategoryEye:
		if g := CreateEye(name, cfg); g != nil {
			return g
		}
	case CategoryPupil:
		if g := CreatePupil(name, cfg); g != nil {
			return g
		}
	}
	return nil
}
