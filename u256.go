package intx

import (
	"fmt"
	"math/big"
	"strconv"
)

// U256 is an unsigned 256-bit integer stored as four 64-bit limbs, least
// significant first. It is compatible in layout with holiman/uint256.Int.
type U256 [4]uint64

func U256From64(v uint64) U256 { return U256{v} }

func U256From128(v U128) U256 { return U256{v[0], v[1]} }

// U256FromHalves joins two U128s: the result is lo + hi<<128.
func U256FromHalves(lo, hi U128) U256 { return U256{lo[0], lo[1], hi[0], hi[1]} }

// U256FromBigInt creates a U256 from a big.Int. Values that do not fit are
// reduced modulo 2^256 and accurate is set to false. Negative values return
// zero and false.
func U256FromBigInt(v *big.Int) (out U256, accurate bool) {
	accurate = limbsFromBig(out[:], v)
	return out, accurate
}

// RandU256 generates an unsigned 256-bit random integer from an external source.
func RandU256(source RandSource) (out U256) {
	for i := range out {
		out[i] = source.Uint64()
	}
	return out
}

// Halves splits u into its low and high 128 bits.
func (u U256) Halves() (lo, hi U128) { return U128{u[0], u[1]}, U128{u[2], u[3]} }

func (u U256) IsZero() bool { return isZeroLimbs(u[:]) }

// AsU128 truncates u to its low 128 bits. See IsU128.
func (u U256) AsU128() U128 { return U128{u[0], u[1]} }

// IsU128 reports whether u can be represented as a U128.
func (u U256) IsU128() bool { return u[2]|u[3] == 0 }

// AsUint64 truncates u to its low 64 bits. See IsUint64.
func (u U256) AsUint64() uint64 { return u[0] }

// IsUint64 reports whether u can be represented as a uint64.
func (u U256) IsUint64() bool { return u[1]|u[2]|u[3] == 0 }

func (u U256) IntoBigInt(b *big.Int) { limbsIntoBig(b, u[:]) }

func (u U256) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U256) String() string {
	if u.IsUint64() {
		return strconv.FormatUint(u[0], 10)
	}
	return stringLimbs(u[:])
}

func (u U256) Format(s fmt.State, c rune) { formatLimbs(s, c, u[:]) }

// Add returns u+n, wrapping modulo 2^256.
func (u U256) Add(n U256) (v U256) {
	addLimbs(v[:], u[:], n[:])
	return v
}

// AddCarry returns u+n modulo 2^256 and the carry out of the top limb, which
// is 1 if the addition overflowed.
func (u U256) AddCarry(n U256) (v U256, carry uint64) {
	carry = addLimbs(v[:], u[:], n[:])
	return v, carry
}

// Sub returns u-n, wrapping modulo 2^256.
func (u U256) Sub(n U256) (v U256) {
	subLimbs(v[:], u[:], n[:])
	return v
}

// SubBorrow returns u-n modulo 2^256 and the borrow out of the top limb, which
// is 1 if n > u.
func (u U256) SubBorrow(n U256) (v U256, borrow uint64) {
	borrow = subLimbs(v[:], u[:], n[:])
	return v, borrow
}

func (u U256) Inc() (v U256) {
	addLimb(v[:], u[:], 1)
	return v
}

func (u U256) Dec() (v U256) {
	subLimb(v[:], u[:], 1)
	return v
}

// Neg returns the two's complement negation of u, i.e. 0-u modulo 2^256.
func (u U256) Neg() (v U256) {
	subLimbs(v[:], zeroU256[:], u[:])
	return v
}

// Mul returns u*n truncated to 256 bits.
func (u U256) Mul(n U256) (v U256) {
	mulLimbs(v[:], u[:], n[:])
	return v
}

// Mul64 returns u*n truncated to 256 bits.
func (u U256) Mul64(n uint64) (v U256) {
	mulLimb(v[:], u[:], n)
	return v
}

// MulFull returns the full 512-bit product of u and n as two halves:
// u*n == lo + hi<<256.
func (u U256) MulFull(n U256) (lo, hi U256) {
	var z [8]uint64
	mulLimbs(z[:], u[:], n[:])
	copy(lo[:], z[:4])
	copy(hi[:], z[4:])
	return lo, hi
}

func (u U256) Not() (v U256) {
	notLimbs(v[:], u[:])
	return v
}

func (u U256) And(n U256) (v U256) {
	andLimbs(v[:], u[:], n[:])
	return v
}

func (u U256) AndNot(n U256) (v U256) {
	andNotLimbs(v[:], u[:], n[:])
	return v
}

func (u U256) Or(n U256) (v U256) {
	orLimbs(v[:], u[:], n[:])
	return v
}

func (u U256) Xor(n U256) (v U256) {
	xorLimbs(v[:], u[:], n[:])
	return v
}

// Lsh returns u<<n. Shifting by 256 or more returns zero.
func (u U256) Lsh(n uint) (v U256) {
	if n == 0 {
		return u
	}
	shlLimbs(v[:], u[:], n)
	return v
}

// Rsh returns the logical shift u>>n. Shifting by 256 or more returns zero.
func (u U256) Rsh(n uint) (v U256) {
	if n == 0 {
		return u
	}
	shrLimbs(v[:], u[:], n)
	return v
}

// LeadingZeros returns the number of leading zero bits in u; it is 256 for 0.
func (u U256) LeadingZeros() uint { return clzLimbs(u[:]) }

// TrailingZeros returns the number of trailing zero bits in u; it is 256 for 0.
func (u U256) TrailingZeros() uint { return ctzLimbs(u[:]) }

// BitLen returns the number of bits required to represent u.
func (u U256) BitLen() int { return U256Bits - int(u.LeadingZeros()) }

// Bit returns the value of the i'th bit of u. i must be in [0, 256).
func (u U256) Bit(i int) uint {
	if i < 0 || i >= U256Bits {
		panic("intx: bit out of range")
	}
	return uint(u[i/64]>>(uint(i)%64)) & 1
}

// SetBit returns u with the i'th bit set to b (0 or 1). i must be in [0, 256).
func (u U256) SetBit(i int, b uint) U256 {
	if i < 0 || i >= U256Bits {
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

func (u U256) Cmp(n U256) int { return cmpLimbs(u[:], n[:]) }

func (u U256) Equal(n U256) bool            { return u == n }
func (u U256) GreaterThan(n U256) bool      { return u.Cmp(n) > 0 }
func (u U256) GreaterOrEqualTo(n U256) bool { return u.Cmp(n) >= 0 }
func (u U256) LessThan(n U256) bool         { return u.Cmp(n) < 0 }
func (u U256) LessOrEqualTo(n U256) bool    { return u.Cmp(n) <= 0 }
