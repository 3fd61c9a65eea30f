package intx

import (
	"fmt"
	"math/big"
	"strconv"
)

// U512 is an unsigned 512-bit integer stored as eight 64-bit limbs, least
// significant first.
type U512 [8]uint64

func U512From64(v uint64) U512 { return U512{v} }

func U512From128(v U128) U512 { return U512{v[0], v[1]} }

func U512From256(v U256) U512 { return U512{v[0], v[1], v[2], v[3]} }

// U512FromHalves joins two U256s: the result is lo + hi<<256.
func U512FromHalves(lo, hi U256) U512 {
	return U512{lo[0], lo[1], lo[2], lo[3], hi[0], hi[1], hi[2], hi[3]}
}

// U512FromBigInt creates a U512 from a big.Int. Values that do not fit are
// reduced modulo 2^512 and accurate is set to false. Negative values return
// zero and false.
func U512FromBigInt(v *big.Int) (out U512, accurate bool) {
	accurate = limbsFromBig(out[:], v)
	return out, accurate
}

// RandU512 generates an unsigned 512-bit random integer from an external source.
func RandU512(source RandSource) (out U512) {
	for i := range out {
		out[i] = source.Uint64()
	}
	return out
}

// Halves splits u into its low and high 256 bits.
func (u U512) Halves() (lo, hi U256) {
	return U256{u[0], u[1], u[2], u[3]}, U256{u[4], u[5], u[6], u[7]}
}

func (u U512) IsZero() bool { return isZeroLimbs(u[:]) }

// AsU256 truncates u to its low 256 bits. See IsU256.
func (u U512) AsU256() U256 { return U256{u[0], u[1], u[2], u[3]} }

// IsU256 reports whether u can be represented as a U256.
func (u U512) IsU256() bool { return u[4]|u[5]|u[6]|u[7] == 0 }

// AsU128 truncates u to its low 128 bits. See IsU128.
func (u U512) AsU128() U128 { return U128{u[0], u[1]} }

// IsU128 reports whether u can be represented as a U128.
func (u U512) IsU128() bool { return u[2]|u[3]|u[4]|u[5]|u[6]|u[7] == 0 }

// AsUint64 truncates u to its low 64 bits. See IsUint64.
func (u U512) AsUint64() uint64 { return u[0] }

// IsUint64 reports whether u can be represented as a uint64.
func (u U512) IsUint64() bool { return u[1]|u[2]|u[3]|u[4]|u[5]|u[6]|u[7] == 0 }

func (u U512) IntoBigInt(b *big.Int) { limbsIntoBig(b, u[:]) }

func (u U512) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U512) String() string {
	if u.IsUint64() {
		return strconv.FormatUint(u[0], 10)
	}
	return stringLimbs(u[:])
}

func (u U512) Format(s fmt.State, c rune) { formatLimbs(s, c, u[:]) }

// Add returns u+n, wrapping modulo 2^512.
func (u U512) Add(n U512) (v U512) {
	addLimbs(v[:], u[:], n[:])
	return v
}

// AddCarry returns u+n modulo 2^512 and the carry out of the top limb, which
// is 1 if the addition overflowed.
func (u U512) AddCarry(n U512) (v U512, carry uint64) {
	carry = addLimbs(v[:], u[:], n[:])
	return v, carry
}

// Sub returns u-n, wrapping modulo 2^512.
func (u U512) Sub(n U512) (v U512) {
	subLimbs(v[:], u[:], n[:])
	return v
}

// SubBorrow returns u-n modulo 2^512 and the borrow out of the top limb, which
// is 1 if n > u.
func (u U512) SubBorrow(n U512) (v U512, borrow uint64) {
	borrow = subLimbs(v[:], u[:], n[:])
	return v, borrow
}

func (u U512) Inc() (v U512) {
	addLimb(v[:], u[:], 1)
	return v
}

func (u U512) Dec() (v U512) {
	subLimb(v[:], u[:], 1)
	return v
}

// Neg returns the two's complement negation of u, i.e. 0-u modulo 2^512.
func (u U512) Neg() (v U512) {
	subLimbs(v[:], zeroU512[:], u[:])
	return v
}

// Mul returns u*n truncated to 512 bits.
func (u U512) Mul(n U512) (v U512) {
	mulLimbs(v[:], u[:], n[:])
	return v
}

// Mul64 returns u*n truncated to 512 bits.
func (u U512) Mul64(n uint64) (v U512) {
	mulLimb(v[:], u[:], n)
	return v
}

// MulFull returns the full 1024-bit product of u and n as two halves:
// u*n == lo + hi<<512.
func (u U512) MulFull(n U512) (lo, hi U512) {
	var z [16]uint64
	mulLimbs(z[:], u[:], n[:])
	copy(lo[:], z[:8])
	copy(hi[:], z[8:])
	return lo, hi
}

func (u U512) Not() (v U512) {
	notLimbs(v[:], u[:])
	return v
}

func (u U512) And(n U512) (v U512) {
	andLimbs(v[:], u[:], n[:])
	return v
}

func (u U512) AndNot(n U512) (v U512) {
	andNotLimbs(v[:], u[:], n[:])
	return v
}

func (u U512) Or(n U512) (v U512) {
	orLimbs(v[:], u[:], n[:])
	return v
}

func (u U512) Xor(n U512) (v U512) {
	xorLimbs(v[:], u[:], n[:])
	return v
}

// Lsh returns u<<n. Shifting by 512 or more returns zero.
func (u U512) Lsh(n uint) (v U512) {
	if n == 0 {
		return u
	}
	shlLimbs(v[:], u[:], n)
	return v
}

// Rsh returns the logical shift u>>n. Shifting by 512 or more returns zero.
func (u U512) Rsh(n uint) (v U512) {
	if n == 0 {
		return u
	}
	shrLimbs(v[:], u[:], n)
	return v
}

// LeadingZeros returns the number of leading zero bits in u; it is 512 for 0.
func (u U512) LeadingZeros() uint { return clzLimbs(u[:]) }

// TrailingZeros returns the number of trailing zero bits in u; it is 512 for 0.
func (u U512) TrailingZeros() uint { return ctzLimbs(u[:]) }

// BitLen returns the number of bits required to represent u.
func (u U512) BitLen() int { return U512Bits - int(u.LeadingZeros()) }

// Bit returns the value of the i'th bit of u. i must be in [0, 512).
func (u U512) Bit(i int) uint {
	if i < 0 || i >= U512Bits {
		panic("intx: bit out of range")
	}
	return uint(u[i/64]>>(uint(i)%64)) & 1
}

// SetBit returns u with the i'th bit set to b (0 or 1). i must be in [0, 512).
func (u U512) SetBit(i int, b uint) U512 {
	if i < 0 || i >= U512Bits {
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

func (u U512) Cmp(n U512) int { return cmpLimbs(u[:], n[:]) }

func (u U512) Equal(n U512) bool            { return u == n }
func (u U512) GreaterThan(n U512) bool      { return u.Cmp(n) > 0 }
func (u U512) GreaterOrEqualTo(n U512) bool { return u.Cmp(n) >= 0 }
func (u U512) LessThan(n U512) bool         { return u.Cmp(n) < 0 }
func (u U512) LessOrEqualTo(n U512) bool    { return u.Cmp(n) <= 0 }
