package verify

import (
	"fmt"
	"strings"
)

// ConfigError reports an unusable Config. The harness does not start.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("verify: invalid config %s: %s", e.Field, e.Message)
}

func newConfigError(field, format string, a ...any) error {
	return &ConfigError{Field: field, Message: fmt.Sprintf(format, a...)}
}

// MismatchError records one disagreement between this build and the oracle,
// or between the native and generic paths. Width is 64 for single-limb checks.
type MismatchError struct {
	Check    string
	Width    int
	Operands []string
	Got      string
	Want     string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("verify: %s/u%d(%s): got %s, want %s",
		e.Check, e.Width, strings.Join(e.Operands, ", "), e.Got, e.Want)
}
