// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/MKhiriev/go-r2base/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterService struct {
	id int
}

func constant(svc any) Factory {
	return func(*Registry, Options) (any, error) { return svc, nil }
}

func newTestRegistry(t *testing.T) (*Registry, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return New("test", logger.NewLoggerTo(&buf, "registry-test")), &buf
}

func TestRegister_StoresFactoryResult(t *testing.T) {
	r, _ := newTestRegistry(t)

	var gotOpts Options
	var gotRegistry *Registry
	err := r.Register("counter", func(reg *Registry, opts Options) (any, error) {
		gotRegistry, gotOpts = reg, opts
		return &counterService{id: 1}, nil
	}, Options{"start": 10})
	require.NoError(t, err)

	assert.Same(t, r, gotRegistry)
	assert.Equal(t, Options{"start": 10}, gotOpts)

	svc, ok := r.Lookup("counter")
	require.True(t, ok)
	assert.Equal(t, &counterService{id: 1}, svc)
}

func TestRegister_OverwriteKeepsSecondAndWarns(t *testing.T) {
	r, buf := newTestRegistry(t)
	first, second := &counterService{id: 1}, &counterService{id: 2}

	require.NoError(t, r.Register("counter", constant(first), nil))
	require.NoError(t, r.Register("counter", constant(second), nil))

	svc, ok := r.Lookup("counter")
	require.True(t, ok)
	assert.Same(t, second, svc)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []string{"counter"}, r.Names())
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "overwriting")
}

func TestRegister_FactoryErrorStoresNothing(t *testing.T) {
	r, _ := newTestRegistry(t)
	boom := errors.New("boom")

	err := r.Register("broken", func(*Registry, Options) (any, error) { return nil, boom }, nil)
	assert.ErrorIs(t, err, boom)

	_, ok := r.Lookup("broken")
	assert.False(t, ok)
	assert.Zero(t, r.Len())
}

func TestRegister_InvalidArguments(t *testing.T) {
	r, _ := newTestRegistry(t)

	assert.ErrorIs(t, r.Register("", constant(1), nil), ErrEmptyServiceName)
	assert.ErrorIs(t, r.Register("x", nil, nil), ErrNilFactory)
}

func TestRegister_FactoryCanReadRegistry(t *testing.T) {
	r, _ := newTestRegistry(t)
	r.Set("base", &counterService{id: 7})

	err := r.Register("derived", func(reg *Registry, _ Options) (any, error) {
		base, err := Get[*counterService](reg, "base")
		if err != nil {
			return nil, err
		}
		return &counterService{id: base.id + 1}, nil
	}, nil)
	require.NoError(t, err)

	derived, err := Get[*counterService](r, "derived")
	require.NoError(t, err)
	assert.Equal(t, 8, derived.id)
}

func TestGet(t *testing.T) {
	r, _ := newTestRegistry(t)
	r.Set("counter", &counterService{id: 3})

	svc, err := Get[*counterService](r, "counter")
	require.NoError(t, err)
	assert.Equal(t, 3, svc.id)

	_, err = Get[*counterService](r, "missing")
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = Get[string](r, "counter")
	assert.ErrorIs(t, err, ErrServiceType)
}

func TestHas(t *testing.T) {
	r, buf := newTestRegistry(t)
	r.Set("A", 1)
	r.Set("C", 3)

	tests := []struct {
		name        string
		names       any
		wantMissing []string
	}{
		{"single present", "A", nil},
		{"all present", "A|C", nil},
		{"slice form", []string{"A", "C"}, nil},
		{"one missing", "A|B", []string{"B"}},
		{"several missing keep order", "D|A|B|D", []string{"D", "B"}},
		{"empty items ignored", "A||C|", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Has(tt.names)
			if tt.wantMissing == nil {
				assert.NoError(t, err)
				return
			}

			var missingErr *MissingServicesError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, tt.wantMissing, missingErr.Missing)
			assert.ErrorIs(t, err, ErrMissingServices)
		})
	}

	assert.Contains(t, buf.String(), "required services are not registered")
}

func TestMissingServicesError_Message(t *testing.T) {
	err := &MissingServicesError{Missing: []string{"B", "D"}}
	assert.Equal(t, "missing services: B, D", err.Error())
}

func TestNames_Sorted(t *testing.T) {
	r, _ := newTestRegistry(t)
	for _, name := range []string{"mailer", "auth", "redis"} {
		r.Set(name, name)
	}

	assert.Equal(t, []string{"auth", "mailer", "redis"}, r.Names())
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	r, _ := newTestRegistry(t)
	r.Set("A", 1)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Has("A")
			_, _ = r.Lookup("A")
			_ = r.Names()
		}()
	}
	wg.Wait()
}
