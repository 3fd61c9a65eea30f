package intx

import (
	"fmt"
	"math/big"
	"strconv"
)

// U128 is an unsigned 128-bit integer stored as two 64-bit limbs, least
// significant first.
type U128 [2]uint64

func U128From64(v uint64) U128 { return U128{v} }

// U128FromHalves joins two limbs: the result is lo + hi<<64. The argument
// order matches the result of MulFull64, so U128FromHalves(MulFull64(x, y))
// is the exact product.
func U128FromHalves(lo, hi uint64) U128 { return U128{lo, hi} }

// U128FromBigInt creates a U128 from a big.Int. Values that do not fit are
// reduced modulo 2^128 and accurate is set to false. Negative values return
// zero and false.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	accurate = limbsFromBig(out[:], v)
	return out, accurate
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	for i := range out {
		out[i] = source.Uint64()
	}
	return out
}

// Halves splits u into its low and high limbs.
func (u U128) Halves() (lo, hi uint64) { return u[0], u[1] }

func (u U128) IsZero() bool { return isZeroLimbs(u[:]) }

// AsUint64 truncates u to its low 64 bits. See IsUint64.
func (u U128) AsUint64() uint64 { return u[0] }

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool { return u[1] == 0 }

func (u U128) IntoBigInt(b *big.Int) { limbsIntoBig(b, u[:]) }

func (u U128) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U128) String() string {
	if u.IsUint64() {
		return strconv.FormatUint(u[0], 10)
	}
	return stringLimbs(u[:])
}

func (u U128) Format(s fmt.State, c rune) { formatLimbs(s, c, u[:]) }

// Add returns u+n, wrapping modulo 2^128.
func (u U128) Add(n U128) (v U128) {
	addLimbs(v[:], u[:], n[:])
	return v
}

// AddCarry returns u+n modulo 2^128 and the carry out of the top limb, which
// is 1 if the addition overflowed.
func (u U128) AddCarry(n U128) (v U128, carry uint64) {
	carry = addLimbs(v[:], u[:], n[:])
	return v, carry
}

// Sub returns u-n, wrapping modulo 2^128.
func (u U128) Sub(n U128) (v U128) {
	subLimbs(v[:], u[:], n[:])
	return v
}

// SubBorrow returns u-n modulo 2^128 and the borrow out of the top limb, which
// is 1 if n > u.
func (u U128) SubBorrow(n U128) (v U128, borrow uint64) {
	borrow = subLimbs(v[:], u[:], n[:])
	return v, borrow
}

func (u U128) Inc() (v U128) {
	addLimb(v[:], u[:], 1)
	return v
}

func (u U128) Dec() (v U128) {
	subLimb(v[:], u[:], 1)
	return v
}

// Neg returns the two's complement negation of u, i.e. 0-u modulo 2^128.
func (u U128) Neg() (v U128) {
	subLimbs(v[:], zeroU128[:], u[:])
	return v
}

// Mul returns u*n truncated to 128 bits.
//
// With only two limbs the cross products land entirely in the high limb, so
// their carries out are discarded by the truncation anyway.
func (u U128) Mul(n U128) U128 {
	lo, hi := MulFull64(u[0], n[0])
	hi += u[0]*n[1] + u[1]*n[0]
	return U128{lo, hi}
}

// Mul64 returns u*n truncated to 128 bits.
func (u U128) Mul64(n uint64) (v U128) {
	mulLimb(v[:], u[:], n)
	return v
}

// MulFull returns the full 256-bit product of u and n as two halves:
// u*n == lo + hi<<128.
func (u U128) MulFull(n U128) (lo, hi U128) {
	var z [4]uint64
	mulLimbs(z[:], u[:], n[:])
	copy(lo[:], z[:2])
	copy(hi[:], z[2:])
	return lo, hi
}

func (u U128) Not() (v U128) {
	notLimbs(v[:], u[:])
	return v
}

func (u U128) And(n U128) (v U128) {
	andLimbs(v[:], u[:], n[:])
	return v
}

func (u U128) AndNot(n U128) (v U128) {
	andNotLimbs(v[:], u[:], n[:])
	return v
}

func (u U128) Or(n U128) (v U128) {
	orLimbs(v[:], u[:], n[:])
	return v
}

func (u U128) Xor(n U128) (v U128) {
	xorLimbs(v[:], u[:], n[:])
	return v
}

// Lsh returns u<<n. Shifting by 128 or more returns zero.
func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	}
	shlLimbs(v[:], u[:], n)
	return v
}

// Rsh returns the logical shift u>>n. Shifting by 128 or more returns zero.
func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	}
	shrLimbs(v[:], u[:], n)
	return v
}

// LeadingZeros returns the number of leading zero bits in u; it is 128 for 0.
func (u U128) LeadingZeros() uint { return clzLimbs(u[:]) }

// TrailingZeros returns the number of trailing zero bits in u; it is 128 for 0.
func (u U128) TrailingZeros() uint { return ctzLimbs(u[:]) }

// BitLen returns the number of bits required to represent u.
func (u U128) BitLen() int { return U128Bits - int(u.LeadingZeros()) }

// Bit returns the value of the i'th bit of u. i must be in [0, 128).
func (u U128) Bit(i int) uint {
	if i < 0 || i >= U128Bits {
		panic("intx: bit out of range")
	}
	return uint(u[i/64]>>(uint(i)%64)) & 1
}

// SetBit returns u with the i'th bit set to b (0 or 1). i must be in [0, 128).
func (u U128) SetBit(i int, b uint) U128 {
	if i < 0 || i >= U128Bits {
		panic("intx: bit out of range")
	}
	mask := uint64(1) << (uint(i) % 64)
	switch b {
	case 0:
		u[i/64] &^= mask
	case 1:
		u[i/64] |= mask
	default:
		panic("intx: bit value not 0 or 1")
	}
	return u
}

func (u U128) Cmp(n U128) int { return cmpLimbs(u[:], n[:]) }

func (u U128) Equal(n U128) bool            { return u == n }
func (u U128) GreaterThan(n U128) bool      { return u.Cmp(n) > 0 }
func (u U128) GreaterOrEqualTo(n U128) bool { return u.Cmp(n) >= 0 }
func (u U128) LessThan(n U128) bool         { return u.Cmp(n) < 0 }
func (u U128) LessOrEqualTo(n U128) bool    { return u.Cmp(n) <= 0 }
