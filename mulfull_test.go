package intx

import (
	"fmt"
	"math/big"
	"math/bits"
	"testing"

	"github.com/shabbyrobe/go-intx/internal/boundary"
	"github.com/shabbyrobe/golib/assert"
)

func TestMulFull64(t *testing.T) {
	for _, tc := range []struct {
		x, y   uint64
		lo, hi uint64
	}{
		{0, 0, 0, 0},
		{1, 1, 1, 0},
		{maxUint64, 1, maxUint64, 0},
		{maxUint64, maxUint64, 1, 0xfffffffffffffffe},
		{1 << 32, 1 << 32, 0, 1},
		{0x00000000ffffffff, 0x00000000ffffffff, 0xfffffffe00000001, 0},
		{0x8000000000000000, 2, 0, 1},
		{0x1010101010101010, 0x10, 0x0101010101010100, 0x1},
	} {
		t.Run(fmt.Sprintf("%#x*%#x", tc.x, tc.y), func(t *testing.T) {
			tt := assert.WrapTB(t)

			lo, hi := MulFull64(tc.x, tc.y)
			tt.MustEqual(tc.lo, lo, "lo")
			tt.MustEqual(tc.hi, hi, "hi")

			lo, hi = MulFull64Native(tc.x, tc.y)
			tt.MustEqual(tc.lo, lo, "native lo")
			tt.MustEqual(tc.hi, hi, "native hi")

			lo, hi = MulFull64Generic(tc.x, tc.y)
			tt.MustEqual(tc.lo, lo, "generic lo")
			tt.MustEqual(tc.hi, hi, "generic hi")
		})
	}
}

func TestMulFull64Boundaries(t *testing.T) {
	tt := assert.WrapTB(t)

	var want, got big.Int
	for _, x := range boundary.Maximal {
		for _, y := range boundary.Maximal {
			nlo, nhi := MulFull64Native(x, y)
			glo, ghi := MulFull64Generic(x, y)
			tt.MustEqual(nlo, glo, "%#x * %#x lo", x, y)
			tt.MustEqual(nhi, ghi, "%#x * %#x hi", x, y)

			want.Mul(bigU64(x), bigU64(y))
			got.Lsh(bigU64(ghi), 64)
			got.Or(&got, bigU64(glo))
			tt.MustAssert(want.Cmp(&got) == 0, "%#x * %#x: %s != %s", x, y, &got, &want)
		}
	}
}

func TestMulFull64Random(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 100000; i++ {
		x, y := globalRNG.Uint64(), globalRNG.Uint64()
		whi, wlo := bits.Mul64(x, y)
		glo, ghi := MulFull64Generic(x, y)
		tt.MustAssert(glo == wlo && ghi == whi, "%#x * %#x: %#x:%#x != %#x:%#x", x, y, ghi, glo, whi, wlo)
	}
}

func TestMulFull64Dispatch(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(HaveNativeMulFull64, Capabilities().Native)
}

func TestClz64(t *testing.T) {
	for _, tc := range []struct {
		in  uint64
		out uint
	}{
		{0, 64},
		{1, 63},
		{2, 62},
		{0x00000000ffffffff, 32},
		{0x0000000100000000, 31},
		{0x7fffffffffffffff, 1},
		{0x8000000000000000, 0},
		{maxUint64, 0},
	} {
		t.Run(fmt.Sprintf("clz(%#x)=%d", tc.in, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, Clz64(tc.in))
			tt.MustEqual(tc.out, Clz64Generic(tc.in))
		})
	}
}

func TestClz64GenericMatchesBuiltin(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, x := range boundary.Maximal {
		tt.MustEqual(Clz64(x), Clz64Generic(x), "clz(%#x)", x)
	}
	for k := 0; k < 64; k++ {
		for _, x := range []uint64{1 << k, 1<<k - 1, 1<<k + 1, maxUint64 >> k} {
			tt.MustEqual(Clz64(x), Clz64Generic(x), "clz(%#x)", x)
		}
	}
}
