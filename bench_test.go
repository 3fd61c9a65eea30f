package intx

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
)

var (
	BenchBigIntResult  *big.Int
	BenchUintResult    uint
	BenchU128Result    U128
	BenchU256Result    U256
	BenchU512Result    U512
	BenchUint256Result uint256.Int
	BenchUint64Result  uint64

	BenchUint641, BenchUint642 uint64 = 12093749018, 18927348917

	BenchU128In1, BenchU128In2 = U128{5678, 1234}, U128{5678, 9123}
	BenchU256In1, BenchU256In2 = U256{1, 2, 3, 4}, U256{0xdeadbeef, 0, maxUint64, 7}
	BenchU512In1, BenchU512In2 = U512{1, 2, 3, 4, 5, 6, 7, 8}, U512{maxUint64, 0, maxUint64, 0, 9, 10, 11, 12}
)

func BenchmarkMulFull64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result, _ = MulFull64(BenchUint641, BenchUint642)
	}
}

func BenchmarkMulFull64Native(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result, _ = MulFull64Native(BenchUint641, BenchUint642)
	}
}

func BenchmarkMulFull64Generic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result, _ = MulFull64Generic(BenchUint641, BenchUint642)
	}
}

func BenchmarkClz64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUintResult = Clz64(BenchUint641)
	}
}

func BenchmarkClz64Generic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUintResult = Clz64Generic(BenchUint641)
	}
}

func BenchmarkU128Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU128Result = BenchU128In1.Add(BenchU128In2)
	}
}

func BenchmarkU128Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU128Result = BenchU128In1.Mul(BenchU128In2)
	}
}

func BenchmarkU128MulFull(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU128Result, _ = BenchU128In1.MulFull(BenchU128In2)
	}
}

func BenchmarkU256Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU256Result = BenchU256In1.Add(BenchU256In2)
	}
}

func BenchmarkU256Sub(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU256Result = BenchU256In1.Sub(BenchU256In2)
	}
}

func BenchmarkU256Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU256Result = BenchU256In1.Mul(BenchU256In2)
	}
}

func BenchmarkU256Lsh(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU256Result = BenchU256In1.Lsh(77)
	}
}

func BenchmarkU256LeadingZeros(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUintResult = BenchU256In1.LeadingZeros()
	}
}

func BenchmarkU512Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU512Result = BenchU512In1.Mul(BenchU512In2)
	}
}

func BenchmarkU512Lsh(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU512Result = BenchU512In1.Lsh(301)
	}
}

// Baselines.

func BenchmarkUint256Add(b *testing.B) {
	x, y := uint256.Int(BenchU256In1), uint256.Int(BenchU256In2)
	for i := 0; i < b.N; i++ {
		BenchUint256Result.Add(&x, &y)
	}
}

func BenchmarkUint256Mul(b *testing.B) {
	x, y := uint256.Int(BenchU256In1), uint256.Int(BenchU256In2)
	for i := 0; i < b.N; i++ {
		BenchUint256Result.Mul(&x, &y)
	}
}

func BenchmarkBigIntMul256(b *testing.B) {
	x, y := BenchU256In1.AsBigInt(), BenchU256In2.AsBigInt()
	mask := new(big.Int).Sub(bigPow2(256), big.NewInt(1))
	v := new(big.Int)
	for i := 0; i < b.N; i++ {
		v.Mul(x, y)
		BenchBigIntResult = v.And(v, mask)
	}
}
