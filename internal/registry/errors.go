package registry

import (
	"errors"
	"strings"
)

var (
	// ErrMissingServices is wrapped by [*MissingServicesError].
	ErrMissingServices = errors.New("missing services")
	// ErrServiceNotFound is returned by Get when nothing is registered
	// under the requested name.
	ErrServiceNotFound = errors.New("service not found")
	// ErrServiceType is returned by Get when the registered instance does
	// not have the requested type.
	ErrServiceType = errors.New("service has unexpected type")
	// ErrEmptyServiceName is returned when registering under "".
	ErrEmptyServiceName = errors.New("service name cannot be empty")
	// ErrNilFactory is returned when Register receives a nil factory.
	ErrNilFactory = errors.New("service factory cannot be nil")
	// ErrNoConfigService is returned by Config when the environment
	// configuration service has not been registered.
	ErrNoConfigService = errors.New("config service is not registered")
	// ErrConfigKeyNotFound is returned by Config for an unknown key.
	ErrConfigKeyNotFound = errors.New("config key not found")
	// ErrConfigDecode is returned when a config entry or options do not
	// fit the target structure.
	ErrConfigDecode = errors.New("cannot decode config")
)

// MissingServicesError lists the service names a dependency check could
// not find, in the order they were requested.
type MissingServicesError struct {
	Missing []string
}

func (e *MissingServicesError) Error() string {
	return ErrMissingServices.Error() + ": " + strings.Join(e.Missing, ", ")
}

func (e *MissingServicesError) Unwrap() error {
	return ErrMissingServices
}
