package intx

import "math/bits"

// MulFull64 returns the exact 128-bit product of x and y, split into the low
// and high 64 bits: lo + hi<<64 == x*y.
//
// The body is chosen at compile time by HaveNativeMulFull64; both candidates
// are always built so they can be compared against each other.
func MulFull64(x, y uint64) (lo, hi uint64) {
	if HaveNativeMulFull64 {
		return MulFull64Native(x, y)
	}
	return MulFull64Generic(x, y)
}

// MulFull64Native delegates to math/bits, which the compiler intrinsifies on
// targets where HaveNativeMulFull64 is true.
func MulFull64Native(x, y uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(x, y)
	return lo, hi
}

// MulFull64Generic is the portable 64x64->128 multiplication built from four
// 32x32->64 partial products.
func MulFull64Generic(x, y uint64) (lo, hi uint64) {
	var (
		xl = x & 0xffffffff
		xh = x >> 32
		yl = y & 0xffffffff
		yh = y >> 32

		t0 = xl * yl
		t1 = xh * yl
		t2 = xl * yh
		t3 = xh * yh
	)

	// Neither sum can wrap: t1 <= (2^32-1)^2, so t1 + (2^32-1) < 2^64, and
	// likewise for t2.
	u1 := t1 + (t0 >> 32)
	u2 := t2 + (u1 & 0xffffffff)

	lo = (u2 << 32) | (t0 & 0xffffffff)
	hi = t3 + (u2 >> 32) + (u1 >> 32)
	return lo, hi
}

// Clz64 returns the number of leading zero bits in x; Clz64(0) == 64.
func Clz64(x uint64) uint {
	return uint(bits.LeadingZeros64(x))
}

// Clz64Generic is a portable binary-search count of leading zeros. It agrees
// with Clz64 on every input.
func Clz64Generic(x uint64) uint {
	if x == 0 {
		return 64
	}

	var n uint
	if x <= 0x00000000ffffffff {
		n += 32
		x <<= 32
	}
	if x <= 0x0000ffffffffffff {
		n += 16
		x <<= 16
	}
	if x <= 0x00ffffffffffffff {
		n += 8
		x <<= 8
	}
	if x <= 0x0fffffffffffffff {
		n += 4
		x <<= 4
	}
	if x <= 0x3fffffffffffffff {
		n += 2
		x <<= 2
	}
	if x <= 0x7fffffffffffffff {
		n++
	}
	return n
}
