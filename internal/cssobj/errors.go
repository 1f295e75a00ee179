package cssobj

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig matches every ConfigError via errors.Is
var ErrInvalidConfig = errors.New("invalid style config")

// Block names used in ConfigError
const (
	BlockRule      = "rule"
	BlockMedia     = "media"
	BlockKeyframes = "keyframes"
)

// ConfigError reports a structurally invalid config.
// The whole compile call fails; no partial output is produced.
type ConfigError struct {
	Block  string // "rule", "media" or "keyframes"
	Key    string // Offending key, empty when the key is missing
	Pos    Pos    // Source position when decoded from a file
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %s", e.Block, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %q", e.Block, e.Reason, e.Key)
}

// Is lets errors.Is(err, ErrInvalidConfig) match
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func configErr(block, key string, pos Pos, reason string) *ConfigError {
	return &ConfigError{Block: block, Key: key, Pos: pos, Reason: reason}
}

// atPos fills in pos on a ConfigError that has no position yet
func atPos(err error, pos Pos) error {
	var ce *ConfigError
	if errors.As(err, &ce) && !ce.Pos.IsValid() {
		ce.Pos = pos
	}
	return err
}
