package pipeline

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LoadOptions reads pipeline options from a TOML file, for example:
//
//	disconnected_policy = "super-root"
//	collapse_flat_zones = true
//	compute_saliency = true
//
// Unknown keys are rejected so typos surface immediately. The returned
// options still need ValidateAndSetDefaults, which Execute performs.
func LoadOptions(path string) (Options, error) {
	var opts Options
	meta, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return Options{}, fmt.Errorf("load options from %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Options{}, fmt.Errorf("load options from %s: unknown key %q", path, undecoded[0].String())
	}
	return opts, nil
}
