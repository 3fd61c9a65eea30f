package verify

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/shabbyrobe/go-intx/internal/boundary"
)

// EnvPrefix is prepended to every environment variable FromEnv reads.
const EnvPrefix = "INTX_VERIFY_"

// Config controls how much of the operand space Run covers.
type Config struct {
	// Set names the boundary limb set operands are composed from: "minimal",
	// "normal" or "maximal".
	Set string

	// MaxPairs bounds the operand pairs each two-operand check visits. If the
	// full cross product of composed values is larger, a seeded sample of
	// MaxPairs pairs is checked instead.
	MaxPairs int

	// Seed drives sampling and the random operands of the mulfull64 check.
	Seed int64

	// Factors are the multipliers compared against repeated addition.
	Factors []uint64

	// Widths selects which of 128, 256 and 512 are checked.
	Widths []int

	// Concurrency bounds how many checks run at once.
	Concurrency int
}

func DefaultConfig() Config {
	return Config{
		Set:         "minimal",
		MaxPairs:    1 << 16,
		Seed:        1,
		Factors:     append([]uint64(nil), boundary.Factors...),
		Widths:      []int{128, 256, 512},
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// Validate reports the first problem found as a *ConfigError.
func (c Config) Validate() error {
	if _, ok := boundary.Sets[c.Set]; !ok {
		return newConfigError("Set", "unknown boundary set %q", c.Set)
	}
	if c.MaxPairs <= 0 {
		return newConfigError("MaxPairs", "must be positive, found %d", c.MaxPairs)
	}
	if c.Concurrency <= 0 {
		return newConfigError("Concurrency", "must be positive, found %d", c.Concurrency)
	}
	if len(c.Widths) == 0 {
		return newConfigError("Widths", "no widths selected")
	}
	for _, w := range c.Widths {
		if _, ok := widthLimbs[w]; !ok {
			return newConfigError("Widths", "unsupported width %d", w)
		}
	}
	return nil
}

// FromEnv returns base with any INTX_VERIFY_* overrides applied. Values that
// fail to parse are ignored and the base value is kept.
//
//	INTX_VERIFY_SET=normal
//	INTX_VERIFY_MAX_PAIRS=1000000
//	INTX_VERIFY_SEED=42
//	INTX_VERIFY_WIDTHS=128,256
//	INTX_VERIFY_CONCURRENCY=4
func FromEnv(base Config) Config {
	cfg := base
	cfg.Set = getEnvString("SET", cfg.Set)
	cfg.MaxPairs = getEnvInt("MAX_PAIRS", cfg.MaxPairs)
	cfg.Seed = getEnvInt64("SEED", cfg.Seed)
	cfg.Widths = getEnvIntList("WIDTHS", cfg.Widths)
	cfg.Concurrency = getEnvInt("CONCURRENCY", cfg.Concurrency)
	return cfg
}

func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return strings.ToLower(strings.TrimSpace(val))
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseInt(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvIntList(key string, defaultVal []int) []int {
	val := os.Getenv(EnvPrefix + key)
	if val == "" {
		return defaultVal
	}
	var out []int
	for _, part := range strings.Split(val, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		parsed, err := strconv.Atoi(part)
		if err != nil {
			return defaultVal
		}
		out = append(out, parsed)
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
