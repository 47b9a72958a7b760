package registry

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/go-r2base/internal/logger"
	"github.com/MKhiriev/go-r2base/internal/utils"
)

// Options are passed verbatim from the registration call to the factory.
type Options map[string]any

// Factory constructs a service instance. It receives the registry the
// instance will be stored in and the options given at registration.
type Factory func(r *Registry, opts Options) (any, error)

// ConfigServicePrefix prefixes the environment name to form the name of the
// configuration service, e.g. "config/development".
const ConfigServicePrefix = "config/"

// Registry maps service names to constructed instances.
//
// Names are unique: registering an existing name replaces the previous
// instance after logging a warning. Registry is safe for concurrent use,
// although applications only write to it during startup.
type Registry struct {
	mu       sync.RWMutex
	services map[string]any

	env    string
	logger *logger.Logger
}

// New creates an empty registry for the environment env.
func New(env string, logger *logger.Logger) *Registry {
	return &Registry{
		services: make(map[string]any),
		env:      env,
		logger:   logger,
	}
}

// Env returns the environment name the registry was created for.
func (r *Registry) Env() string {
	return r.env
}

// Logger returns the logger used for registry diagnostics. Factories use it
// to derive their own loggers.
func (r *Registry) Logger() *logger.Logger {
	return r.logger
}

// Register invokes factory(r, opts) and stores the result under name.
//
// The factory runs without holding the registry lock, so it may call back
// into the registry. If it fails, nothing is stored and the error is
// returned wrapped. An existing entry under name is replaced; the overwrite
// is logged as a warning and never fails.
func (r *Registry) Register(name string, factory Factory, opts Options) error {
	if name == "" {
		return ErrEmptyServiceName
	}
	if factory == nil {
		return ErrNilFactory
	}

	svc, err := factory(r, opts)
	if err != nil {
		return fmt.Errorf("error constructing service %q: %w", name, err)
	}

	r.Set(name, svc)
	return nil
}

// Set stores a prebuilt instance under name with the same overwrite
// semantics as Register.
func (r *Registry) Set(name string, svc any) {
	r.mu.Lock()
	_, exists := r.services[name]
	r.services[name] = svc
	r.mu.Unlock()

	if exists {
		r.logger.Warn().Str("service", name).Msg("service is already registered, overwriting")
		return
	}
	r.logger.Debug().Str("service", name).Msg("service registered")
}

// Lookup returns the instance registered under name.
func (r *Registry) Lookup(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	svc, ok := r.services[name]
	return svc, ok
}

// Get returns the instance registered under name as a T.
//
//	auth, err := registry.Get[service.AuthService](reg, service.AuthServiceName)
func Get[T any](r *Registry, name string) (T, error) {
	var zero T

	svc, ok := r.Lookup(name)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrServiceNotFound, name)
	}

	typed, ok := svc.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T", ErrServiceType, name, svc)
	}

	return typed, nil
}

// Names returns the registered service names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.services))
}

// Len returns the number of registered services.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.services)
}

// Has checks that every service named in names is registered.
//
// names is a list expression accepted by [utils.Split], e.g. "auth|redis"
// or []string{"auth", "redis"}. Empty names are ignored. When something is
// missing, the missing names are logged and returned in a
// [*MissingServicesError].
func (r *Registry) Has(names any) error {
	r.mu.RLock()
	var missing []string
	for _, name := range utils.Split(names) {
		if name == "" {
			continue
		}
		if _, ok := r.services[name]; !ok && !slices.Contains(missing, name) {
			missing = append(missing, name)
		}
	}
	r.mu.RUnlock()

	if len(missing) > 0 {
		r.logger.Warn().Strs("missing", missing).Msg("required services are not registered")
		return &MissingServicesError{Missing: missing}
	}

	return nil
}
