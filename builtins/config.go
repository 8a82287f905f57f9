/*
File : curlang/builtins/config.go
*/
package builtins

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/curlang/curlang/eval"
)

// Override renames or disables one registered native. An empty As
// disables Name entirely (every entry under it is removed); a non-empty
// As registers the native again under that name, and Name stays
// registered as well.
type Override struct {
	Name string `yaml:"name"`
	As   string `yaml:"as,omitempty"`
}

// Config is the shape of an optional "--builtins config.yaml" file
// accepted by cmd/curlang, letting an operator rename or disable
// individual natives without touching Go source.
type Config struct {
	Overrides []Override `yaml:"overrides"`
}

// LoadConfig reads and parses a builtins override file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("builtins: reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("builtins: parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// apply rewrites reg's name->closure bindings according to cfg, run
// after every native has been registered under its default name.
func (cfg *Config) apply(reg *eval.Registry) {
	if cfg == nil {
		return
	}
	for _, o := range cfg.Overrides {
		c, ok := reg.Lookup(o.Name)
		if !ok {
			continue
		}
		if o.As == "" {
			reg.Disable(o.Name)
			continue
		}
		reg.Alias(o.As, c)
	}
}
