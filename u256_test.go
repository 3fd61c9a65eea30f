package intx

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestU256FromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		b   *big.Int
		u   U256
		acc bool
	}{
		{bigU64(2), U256From64(2), true},
		{bigs("0x1 0000000000000000"), U256{0, 1}, true},
		{bigs("0xffffffffffffffff ffffffffffffffff ffffffffffffffff ffffffffffffffff"), MaxU256, true},
		{bigPow2(256), U256{}, false},
		{new(big.Int).Add(bigPow2(300), big.NewInt(9)), U256From64(9), false},
		{big.NewInt(-5), U256{}, false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			u, acc := U256FromBigInt(tc.b)
			tt.MustEqual(tc.u, u)
			tt.MustEqual(tc.acc, acc)
			if acc {
				tt.MustAssert(tc.b.Cmp(u.AsBigInt()) == 0)
			}
		})
	}
}

func TestU256Conversions(t *testing.T) {
	tt := assert.WrapTB(t)

	lo, hi := U128{1, 2}, U128{3, 4}
	u := U256FromHalves(lo, hi)
	tt.MustEqual(U256{1, 2, 3, 4}, u)

	glo, ghi := u.Halves()
	tt.MustEqual(lo, glo)
	tt.MustEqual(hi, ghi)

	tt.MustEqual(U256{1, 2}, U256From128(lo))
	tt.MustEqual(lo, u.AsU128())
	tt.MustAssert(!u.IsU128())
	tt.MustAssert(U256From128(lo).IsU128())
	tt.MustAssert(U256From64(3).IsUint64())
	tt.MustEqual(uint64(1), u.AsUint64())
}

func TestU256String(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("0", U256{}.String())
	tt.MustEqual("18446744073709551615", U256From64(maxUint64).String())
	tt.MustEqual("18446744073709551616", U256{0, 1}.String())
	tt.MustEqual(
		"115792089237316195423570985008687907853269984665640564039457584007913129639935",
		MaxU256.String())
	tt.MustEqual("0x10000000000000000", fmt.Sprintf("%#x", U256{0, 1}))
}

func TestU256MulFull(t *testing.T) {
	tt := assert.WrapTB(t)

	// (2^256-1)^2 = 2^512 - 2^257 + 1
	lo, hi := MaxU256.MulFull(MaxU256)
	tt.MustEqual(U256From64(1), lo)
	tt.MustEqual(U256{0xfffffffffffffffe, maxUint64, maxUint64, maxUint64}, hi)
	tt.MustEqual(lo, MaxU256.Mul(MaxU256))
}

func TestU256Mul64(t *testing.T) {
	for _, tc := range []struct {
		a U256
		n uint64
		c U256
	}{
		{U256From64(7), 6, U256From64(42)},
		{MaxU256, 2, U256{0xfffffffffffffffe, maxUint64, maxUint64, maxUint64}},
		{U256{maxUint64}, maxUint64, U256{1, 0xfffffffffffffffe}},
		{U256{0, 0, 0, 1}, 1 << 63, U256{0, 0, 0, 1 << 63}},
		{U256{0, 0, 0, 2}, 1 << 63, U256{}},
	} {
		t.Run(fmt.Sprintf("%s*%d", tc.a, tc.n), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Mul64(tc.n))
			tt.MustEqual(tc.c, tc.a.Mul(U256From64(tc.n)))
		})
	}
}

func TestU256Shift(t *testing.T) {
	for _, tc := range []struct {
		a      U256
		n      uint
		lsh    U256
		rsh    U256
	}{
		{U256{1}, 0, U256{1}, U256{1}},
		{U256{1}, 64, U256{0, 1}, U256{}},
		{U256{1}, 255, U256{0, 0, 0, 1 << 63}, U256{}},
		{U256{0, 0, 0, 1 << 63}, 255, U256{}, U256{1}},
		{MaxU256, 1, U256{0xfffffffffffffffe, maxUint64, maxUint64, maxUint64}, U256{maxUint64, maxUint64, maxUint64, maxUint64 >> 1}},
		{MaxU256, 130, U256{0, 0, 0xfffffffffffffffc, maxUint64}, U256{maxUint64, maxUint64 >> 2}},
		{MaxU256, 256, U256{}, U256{}},
		{MaxU256, 1 << 20, U256{}, U256{}},
	} {
		t.Run(fmt.Sprintf("%#x/%d", tc.a, tc.n), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.lsh, tc.a.Lsh(tc.n))
			tt.MustEqual(tc.rsh, tc.a.Rsh(tc.n))
		})
	}
}

func TestU256Bitwise(t *testing.T) {
	tt := assert.WrapTB(t)

	a := U256{0xff00ff00ff00ff00, 0, maxUint64, 1}
	b := U256{0x0ff00ff00ff00ff0, maxUint64, 0, 3}
	tt.MustEqual(U256{0x0f000f000f000f00, 0, 0, 1}, a.And(b))
	tt.MustEqual(U256{0xf000f000f000f000, 0, maxUint64, 0}, a.AndNot(b))
	tt.MustEqual(U256{0xfff0fff0fff0fff0, maxUint64, maxUint64, 3}, a.Or(b))
	tt.MustEqual(U256{0xf0f0f0f0f0f0f0f0, maxUint64, maxUint64, 2}, a.Xor(b))
	tt.MustEqual(U256{0x00ff00ff00ff00ff, maxUint64, 0, maxUint64 - 1}, a.Not())
}

func TestU256IncDecNeg(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(U256{0, 1}, U256{maxUint64}.Inc())
	tt.MustEqual(U256{}, MaxU256.Inc())
	tt.MustEqual(U256{maxUint64}, U256{0, 1}.Dec())
	tt.MustEqual(MaxU256, U256{}.Dec())
	tt.MustEqual(U256{}, U256{}.Neg())
	tt.MustEqual(U256{maxUint64 - 1, maxUint64, maxUint64, maxUint64}, U256From64(2).Neg())

	x := U256{0x1234, 0x5678, 0x9abc, 0xdef0}
	tt.MustEqual(U256{}, x.Add(x.Neg()))
}

func TestU256Counting(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(uint(256), U256{}.LeadingZeros())
	tt.MustEqual(uint(256), U256{}.TrailingZeros())
	tt.MustEqual(0, U256{}.BitLen())
	tt.MustEqual(uint(63), U256{0, 0, 0, 1}.LeadingZeros())
	tt.MustEqual(uint(192), U256{0, 0, 0, 1}.TrailingZeros())
	tt.MustEqual(193, U256{0, 0, 0, 1}.BitLen())
	tt.MustEqual(uint(0), MaxU256.LeadingZeros())
}

func TestU256Cmp(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(1, U256{0, 0, 0, 1}.Cmp(U256{maxUint64, maxUint64, maxUint64}))
	tt.MustEqual(-1, U256{maxUint64, maxUint64, maxUint64}.Cmp(U256{0, 0, 0, 1}))
	tt.MustEqual(0, MaxU256.Cmp(MaxU256))
	tt.MustEqual(U256From64(5), DifferenceU256(U256From64(10), U256From64(5)))
	tt.MustEqual(U256From64(5), DifferenceU256(U256From64(5), U256From64(10)))
	tt.MustEqual(MaxU256, LargerU256(MaxU256, U256{}))
	tt.MustEqual(U256{}, SmallerU256(MaxU256, U256{}))
}
