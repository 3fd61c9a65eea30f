package intx

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Capability describes how this build performs double-width arithmetic.
//
// Native reflects the compile-time HaveNativeMulFull64 constant. The CPU
// feature fields are detected at runtime and are informational only: they
// never change which MulFull64 body was compiled.
type Capability struct {
	Native bool
	GOARCH string

	// x86 extensions used by compilers for wide multiplication and
	// multi-word carry chains (MULX, ADCX/ADOX).
	BMI2 bool
	ADX  bool

	// arm64 targets always have UMULH; ASIMD is reported for completeness.
	ASIMD bool
}

// Capabilities reports the active full-multiplication path and the relevant
// CPU features of the running machine.
func Capabilities() Capability {
	return Capability{
		Native: HaveNativeMulFull64,
		GOARCH: runtime.GOARCH,
		BMI2:   cpu.X86.HasBMI2,
		ADX:    cpu.X86.HasADX,
		ASIMD:  cpu.ARM64.HasASIMD,
	}
}

// Path returns "native" or "generic".
func (c Capability) Path() string {
	if c.Native {
		return "native"
	}
	return "generic"
}

func (c Capability) String() string {
	var sb strings.Builder
	sb.WriteString("mulfull64=")
	sb.WriteString(c.Path())
	sb.WriteString(" arch=")
	sb.WriteString(c.GOARCH)

	var features []string
	if c.BMI2 {
		features = append(features, "bmi2")
	}
	if c.ADX {
		features = append(features, "adx")
	}
	if c.ASIMD {
		features = append(features, "asimd")
	}
	if len(features) > 0 {
		sb.WriteString(" cpu=")
		sb.WriteString(strings.Join(features, ","))
	}
	return sb.String()
}
