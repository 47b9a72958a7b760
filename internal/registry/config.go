package registry

import (
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// ConfigServiceName returns the name of the environment configuration
// service, "config/<env>".
func (r *Registry) ConfigServiceName() string {
	return ConfigServicePrefix + r.env
}

// SetConfig registers values as the environment configuration service.
func (r *Registry) SetConfig(values map[string]any) {
	r.Set(r.ConfigServiceName(), values)
}

// Config looks up key in the environment configuration service.
//
// A keyed structure (map[string]any) is returned as a shallow copy so
// callers cannot mutate the stored configuration through it; nested values
// are still shared. Lists and scalars are returned as stored.
func (r *Registry) Config(key string) (any, error) {
	values, err := Get[map[string]any](r, r.ConfigServiceName())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoConfigService, err)
	}

	value, ok := values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrConfigKeyNotFound, key)
	}

	if m, ok := value.(map[string]any); ok {
		return maps.Clone(m), nil
	}

	return value, nil
}

// ConfigMap is Config for keys expected to hold a keyed structure.
// It returns ErrServiceType when the value is not a map.
func (r *Registry) ConfigMap(key string) (map[string]any, error) {
	value, err := r.Config(key)
	if err != nil {
		return nil, err
	}

	m, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: config %s is %T", ErrServiceType, key, value)
	}

	return m, nil
}

// DecodeConfig decodes the config entry key into out, a pointer to a struct
// with yaml tags. Fields absent from the entry keep their current values.
func (r *Registry) DecodeConfig(key string, out any) error {
	value, err := r.Config(key)
	if err != nil {
		return err
	}
	return decode(value, out)
}

// Decode decodes the options into out the same way DecodeConfig does.
// Empty options leave out untouched.
func (o Options) Decode(out any) error {
	if len(o) == 0 {
		return nil
	}
	return decode(map[string]any(o), out)
}

func decode(in, out any) error {
	b, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigDecode, err)
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigDecode, err)
	}
	return nil
}
