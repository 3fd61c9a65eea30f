package intx

import "math/bits"

// This file contains the limb-chain kernels shared by every width. Each kernel
// works on little-endian limb slices (index 0 is least significant). Callers
// pass slices of stack arrays; nothing here allocates or retains a slice.
//
// Unless stated otherwise, z, x and y must all have the same length.

// z = x + y, returning the carry out of the top limb.
func addLimbs(z, x, y []uint64) (carry uint64) {
	for i := range z {
		z[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return carry
}

// z = x - y, returning the borrow out of the top limb.
func subLimbs(z, x, y []uint64) (borrow uint64) {
	for i := range z {
		z[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	return borrow
}

// z = x + y for a single limb y.
func addLimb(z, x []uint64, y uint64) (carry uint64) {
	carry = y
	for i := range z {
		z[i], carry = bits.Add64(x[i], carry, 0)
	}
	return carry
}

// z = x - y for a single limb y.
func subLimb(z, x []uint64, y uint64) (borrow uint64) {
	borrow = y
	for i := range z {
		z[i], borrow = bits.Sub64(x[i], borrow, 0)
	}
	return borrow
}

func notLimbs(z, x []uint64) {
	for i := range z {
		z[i] = ^x[i]
	}
}

func andLimbs(z, x, y []uint64) {
	for i := range z {
		z[i] = x[i] & y[i]
	}
}

func andNotLimbs(z, x, y []uint64) {
	for i := range z {
		z[i] = x[i] &^ y[i]
	}
}

func orLimbs(z, x, y []uint64) {
	for i := range z {
		z[i] = x[i] | y[i]
	}
}

func xorLimbs(z, x, y []uint64) {
	for i := range z {
		z[i] = x[i] ^ y[i]
	}
}

func isZeroLimbs(x []uint64) bool {
	var acc uint64
	for _, l := range x {
		acc |= l
	}
	return acc == 0
}

func cmpLimbs(x, y []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] > y[i] {
			return 1
		} else if x[i] < y[i] {
			return -1
		}
	}
	return 0
}

// clzLimbs scans from the most significant limb. A zero value has
// 64*len(x) leading zeros.
func clzLimbs(x []uint64) uint {
	top := len(x) - 1
	for i := top; i >= 0; i-- {
		if x[i] != 0 {
			return uint(top-i)*64 + Clz64(x[i])
		}
	}
	return uint(len(x)) * 64
}

func ctzLimbs(x []uint64) uint {
	for i, l := range x {
		if l != 0 {
			return uint(i)*64 + uint(bits.TrailingZeros64(l))
		}
	}
	return uint(len(x)) * 64
}

// z = x << n. Shifting by the full width or more yields zero. z and x must
// not overlap.
func shlLimbs(z, x []uint64, n uint) {
	ln := uint(len(x))
	if n >= ln*64 {
		for i := range z {
			z[i] = 0
		}
		return
	}

	limbShift, bitShift := n/64, n%64

	for i := range z[:limbShift] {
		z[i] = 0
	}
	if bitShift == 0 {
		copy(z[limbShift:], x[:ln-limbShift])
		return
	}

	z[limbShift] = x[0] << bitShift
	for i := limbShift + 1; i < ln; i++ {
		src := i - limbShift
		z[i] = (x[src] << bitShift) | (x[src-1] >> (64 - bitShift))
	}
}

// z = x >> n, logical. Shifting by the full width or more yields zero. z and x
// must not overlap.
func shrLimbs(z, x []uint64, n uint) {
	ln := uint(len(x))
	if n >= ln*64 {
		for i := range z {
			z[i] = 0
		}
		return
	}

	limbShift, bitShift := n/64, n%64
	keep := ln - limbShift

	for i := keep; i < ln; i++ {
		z[i] = 0
	}
	if bitShift == 0 {
		copy(z[:keep], x[limbShift:])
		return
	}

	for i := uint(0); i < keep-1; i++ {
		src := i + limbShift
		z[i] = (x[src] >> bitShift) | (x[src+1] << (64 - bitShift))
	}
	z[keep-1] = x[ln-1] >> bitShift
}

// mulLimbs computes the schoolbook product of x and y into z, discarding
// every limb position >= len(z). With len(z) == len(x)+len(y) the product is
// exact. z must be zeroed by the caller and must not overlap x or y.
//
// Each step accumulates x[i]*y[j] + z[i+j] + carry, which is at most
// (2^64-1)^2 + 2*(2^64-1) == 2^128-1, so the (lo, hi) pair from MulFull64
// always holds it without loss.
func mulLimbs(z, x, y []uint64) {
	for i, xi := range x {
		if i >= len(z) {
			return
		}
		if xi == 0 {
			continue
		}

		var carry uint64
		j := 0
		for ; j < len(y) && i+j < len(z); j++ {
			lo, hi := MulFull64(xi, y[j])

			var c uint64
			lo, c = bits.Add64(lo, z[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c

			z[i+j] = lo
			carry = hi
		}
		if i+j < len(z) {
			z[i+j] = carry
		}
	}
}

// z = x * y for a single limb y, returning the limb that overflowed out of
// the top of z.
func mulLimb(z, x []uint64, y uint64) (carry uint64) {
	for i := range z {
		lo, hi := MulFull64(x[i], y)

		var c uint64
		lo, c = bits.Add64(lo, carry, 0)
		z[i] = lo
		carry = hi + c
	}
	return carry
}
