//go:build !purego && (amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x)

package intx

// HaveNativeMulFull64 is true when the target lowers a 64x64->128 multiply to
// a single instruction. See MulFull64.
const HaveNativeMulFull64 = true
