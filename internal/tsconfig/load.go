package tsconfig

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Config is the slice of tsconfig.json this engine consults.
type Config struct {
	Module Module
}

// DefaultModule is used when compilerOptions.module is absent, matching
// tsc's own default for a project with no "type": "module" in its
// package.json.
const DefaultModule = CommonJs

// Load parses raw as a tsconfig.json document and extracts
// compilerOptions.module, using a point lookup rather than a full
// unmarshal since every other tsconfig field is out of scope for this
// engine.
func Load(raw []byte) (Config, error) {
	if !gjson.ValidBytes(raw) {
		return Config{}, fmt.Errorf("tsconfig: invalid JSON")
	}

	result := gjson.GetBytes(raw, "compilerOptions.module")
	if !result.Exists() {
		return Config{Module: DefaultModule}, nil
	}

	m, err := ParseModule(result.String())
	if err != nil {
		return Config{}, fmt.Errorf("compilerOptions.module: %w", err)
	}
	return Config{Module: m}, nil
}
