package config

import (
	"crypto/sha256"
	"encoding/hex"

	"gopkg.in/yaml.v3"
)

// Snapshot computes a stable hash of the fields that affect generated output.
// Logging settings are excluded so that changing the log level does not
// trigger a regeneration. Call it on a defaulted config.
func (c *Config) Snapshot() string {
	if c == nil {
		return ""
	}
	cp := *c
	cp.Logging = LoggingConfig{}
	// yaml.v3 sorts map keys, so the encoding is deterministic.
	data, err := yaml.Marshal(&cp)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
