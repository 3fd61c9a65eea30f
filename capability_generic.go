//go:build purego || !(amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x)

package intx

// HaveNativeMulFull64 is false on targets without a double-width multiply, or
// when built with the 'purego' tag. See MulFull64.
const HaveNativeMulFull64 = false
