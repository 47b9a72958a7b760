package registry

import (
	"testing"

	"github.com/MKhiriev/go-r2base/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfiguredRegistry(values map[string]any) *Registry {
	r := New("development", logger.Nop())
	r.SetConfig(values)
	return r
}

func TestConfigServiceName(t *testing.T) {
	assert.Equal(t, "config/production", New("production", logger.Nop()).ConfigServiceName())
}

func TestConfig_MapIsCopied(t *testing.T) {
	r := newConfiguredRegistry(map[string]any{
		"c": map[string]any{"d": 1, "e": "x"},
	})

	got, err := r.Config("c")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"d": 1, "e": "x"}, got)

	got.(map[string]any)["d"] = 99
	got.(map[string]any)["new"] = true

	again, err := r.Config("c")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"d": 1, "e": "x"}, again)
}

func TestConfig_NonMapValuesAsIs(t *testing.T) {
	list := []any{"a", "b"}
	r := newConfiguredRegistry(map[string]any{
		"port": 3001,
		"name": "app",
		"list": list,
	})

	port, err := r.Config("port")
	require.NoError(t, err)
	assert.Equal(t, 3001, port)

	name, err := r.Config("name")
	require.NoError(t, err)
	assert.Equal(t, "app", name)

	got, err := r.Config("list")
	require.NoError(t, err)
	got.([]any)[0] = "changed"
	assert.Equal(t, "changed", list[0], "lists are returned by reference")
}

func TestConfig_Errors(t *testing.T) {
	r := New("development", logger.Nop())
	_, err := r.Config("a")
	assert.ErrorIs(t, err, ErrNoConfigService)

	r.SetConfig(map[string]any{"a": 1})
	_, err = r.Config("b")
	assert.ErrorIs(t, err, ErrConfigKeyNotFound)

	r.Set(r.ConfigServiceName(), "not a map")
	_, err = r.Config("a")
	assert.ErrorIs(t, err, ErrNoConfigService)
}

func TestConfigMap(t *testing.T) {
	r := newConfiguredRegistry(map[string]any{
		"jwt":  map[string]any{"secret": "s"},
		"port": 1,
	})

	m, err := r.ConfigMap("jwt")
	require.NoError(t, err)
	assert.Equal(t, "s", m["secret"])

	_, err = r.ConfigMap("port")
	assert.ErrorIs(t, err, ErrServiceType)

	_, err = r.ConfigMap("missing")
	assert.ErrorIs(t, err, ErrConfigKeyNotFound)
}

func TestDecodeConfig(t *testing.T) {
	type jwtSettings struct {
		Secret        string `yaml:"secret"`
		ExpiresInDays int    `yaml:"expires_in_days"`
	}

	r := newConfiguredRegistry(map[string]any{
		"jwt":  map[string]any{"secret": "s", "expires_in_days": 3},
		"list": []any{"a"},
	})

	got := jwtSettings{ExpiresInDays: 7}
	require.NoError(t, r.DecodeConfig("jwt", &got))
	assert.Equal(t, jwtSettings{Secret: "s", ExpiresInDays: 3}, got)

	require.NoError(t, Options{"secret": "override"}.Decode(&got))
	assert.Equal(t, jwtSettings{Secret: "override", ExpiresInDays: 3}, got)

	require.NoError(t, Options(nil).Decode(&got))
	assert.Equal(t, "override", got.Secret)

	assert.ErrorIs(t, r.DecodeConfig("list", &got), ErrConfigDecode)
	assert.ErrorIs(t, r.DecodeConfig("missing", &got), ErrConfigKeyNotFound)
}
