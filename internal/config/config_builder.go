package config

import (
	"errors"
	"fmt"
	"slices"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config, err := merge(b.configs...)
	if err != nil {
		return nil, err
	}

	return config, config.validate()
}

// merge folds configs into a new StructuredConfig. mergo only fills zero
// fields, so earlier configs take precedence over later ones.
func merge(configs ...*StructuredConfig) (*StructuredConfig, error) {
	config := new(StructuredConfig)
	for _, cfg := range configs {
		if cfg == nil {
			continue
		}
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	if args == nil {
		return b
	}

	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

// withYAML locates the environment file using what is known so far plus
// defaults, and appends its contents. A missing file is not an error.
func (b *configBuilder) withYAML(defaults *StructuredConfig) *configBuilder {
	layered, err := merge(append(slices.Clone(b.configs), defaults)...)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	yamlCfg, err := parseYAML(EnvFilePath(layered.App.BaseDir, layered.App.Env))
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	if yamlCfg != nil {
		b.configs = append(b.configs, yamlCfg)
	}
	return b
}

func (b *configBuilder) withDefaults(defaults *StructuredConfig) *configBuilder {
	b.configs = append(b.configs, defaults)
	return b
}
