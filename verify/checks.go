package verify

import (
	"context"
	"fmt"
	"math/big"
	"math/bits"
	"math/rand"
	"slices"

	intx "github.com/shabbyrobe/go-intx"
	"github.com/shabbyrobe/go-intx/internal/boundary"
)

// ctxCheckInterval is how many cases run between cancellation checks.
const ctxCheckInterval = 4096

var widthLimbs = map[int]int{128: 2, 256: 4, 512: 8}

type check struct {
	name  string
	width int
	run   func(ctx context.Context, rec *recorder) error
}

// number is the method set shared by U128, U256 and U512 that the width
// checks exercise.
type number[T any] interface {
	comparable
	Add(T) T
	AddCarry(T) (T, uint64)
	Sub(T) T
	Mul(T) T
	Mul64(uint64) T
	MulFull(T) (lo, hi T)
	Not() T
	And(T) T
	Lsh(uint) T
	Rsh(uint) T
	LeadingZeros() uint
	IsZero() bool
	IntoBigInt(*big.Int)
}

type arith[T number[T]] struct {
	bits      int
	limbs     int
	fromLimbs func([]uint64) T
	fromBig   func(*big.Int) (T, bool)
}

var (
	u128Arith = arith[intx.U128]{
		bits:      intx.U128Bits,
		limbs:     2,
		fromLimbs: func(l []uint64) (v intx.U128) { copy(v[:], l); return v },
		fromBig:   intx.U128FromBigInt,
	}
	u256Arith = arith[intx.U256]{
		bits:      intx.U256Bits,
		limbs:     4,
		fromLimbs: func(l []uint64) (v intx.U256) { copy(v[:], l); return v },
		fromBig:   intx.U256FromBigInt,
	}
	u512Arith = arith[intx.U512]{
		bits:      intx.U512Bits,
		limbs:     8,
		fromLimbs: func(l []uint64) (v intx.U512) { copy(v[:], l); return v },
		fromBig:   intx.U512FromBigInt,
	}
)

func plan(cfg Config) []check {
	set := boundary.Sets[cfg.Set]
	checks := []check{
		{name: "mulfull64", width: 64, run: func(ctx context.Context, rec *recorder) error {
			return checkMulFull64(ctx, rec, cfg)
		}},
		{name: "clz64", width: 64, run: func(ctx context.Context, rec *recorder) error {
			return checkClz64(ctx, rec, cfg)
		}},
	}
	for _, w := range cfg.Widths {
		switch w {
		case 128:
			checks = append(checks, widthChecks(cfg, set, u128Arith)...)
		case 256:
			checks = append(checks, widthChecks(cfg, set, u256Arith)...)
		case 512:
			checks = append(checks, widthChecks(cfg, set, u512Arith)...)
		}
	}
	return checks
}

func widthChecks[T number[T]](cfg Config, set []uint64, a arith[T]) []check {
	bind := func(name string, salt int64, fn func(ctx context.Context, rec *recorder, src operands[T]) error) check {
		return check{name: name, width: a.bits, run: func(ctx context.Context, rec *recorder) error {
			src := operands[T]{arith: a, set: set, cfg: cfg, salt: salt}
			return fn(ctx, rec, src)
		}}
	}
	return []check{
		bind("add", 1, a.checkAdd),
		bind("mul", 2, a.checkMul),
		bind("addsub", 3, a.checkAddSub),
		bind("shift", 4, a.checkShift),
		bind("bits", 5, func(ctx context.Context, rec *recorder, _ operands[T]) error {
			return a.checkBits(ctx, rec)
		}),
		bind("clz", 6, a.checkClz),
		bind("scalar", 7, a.checkScalar),
	}
}

func hex(v any) string { return fmt.Sprintf("%#x", v) }

func (a arith[T]) mask() *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(a.bits))
	return m.Sub(m, big.NewInt(1))
}

// truncate reduces v modulo 2^bits and converts it.
func (a arith[T]) truncate(v *big.Int, mask *big.Int) T {
	var t big.Int
	out, _ := a.fromBig(t.And(v, mask))
	return out
}

// operands produces the values a check runs over: every composition of set
// if the budget allows, otherwise a seeded sample.
type operands[T number[T]] struct {
	arith[T]
	set  []uint64
	cfg  Config
	salt int64
}

func (o operands[T]) rng() *rand.Rand {
	return rand.New(rand.NewSource(o.cfg.Seed + o.salt))
}

func (o operands[T]) pairs(ctx context.Context, fn func(x, y T)) error {
	n := boundary.Count(o.set, o.limbs)
	xl, yl := make([]uint64, o.limbs), make([]uint64, o.limbs)

	if n <= o.cfg.MaxPairs/n {
		k := 0
		for i := 0; i < n; i++ {
			boundary.Nth(o.set, i, xl)
			x := o.fromLimbs(xl)
			for j := 0; j < n; j++ {
				if k++; k%ctxCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				boundary.Nth(o.set, j, yl)
				fn(x, o.fromLimbs(yl))
			}
		}
		return nil
	}

	rng := o.rng()
	for k := 0; k < o.cfg.MaxPairs; k++ {
		if k%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		boundary.Nth(o.set, rng.Intn(n), xl)
		boundary.Nth(o.set, rng.Intn(n), yl)
		fn(o.fromLimbs(xl), o.fromLimbs(yl))
	}
	return nil
}

// values visits at most limit single operands.
func (o operands[T]) values(ctx context.Context, limit int, fn func(x T)) error {
	if limit < 1 {
		limit = 1
	}
	n := boundary.Count(o.set, o.limbs)
	xl := make([]uint64, o.limbs)

	var rng *rand.Rand
	if n > limit {
		rng = o.rng()
	} else {
		limit = n
	}
	for k := 0; k < limit; k++ {
		if k%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		idx := k
		if rng != nil {
			idx = rng.Intn(n)
		}
		boundary.Nth(o.set, idx, xl)
		fn(o.fromLimbs(xl))
	}
	return nil
}

func (a arith[T]) checkAdd(ctx context.Context, rec *recorder, src operands[T]) error {
	mask := a.mask()
	var bx, by, exact big.Int
	return src.pairs(ctx, func(x, y T) {
		x.IntoBigInt(&bx)
		y.IntoBigInt(&by)
		exact.Add(&bx, &by)
		want, wantCarry := a.truncate(&exact, mask), uint64(exact.Bit(a.bits))

		got, carry := x.AddCarry(y)
		if got != want || carry != wantCarry || x.Add(y) != got {
			rec.fail(fmt.Sprintf("%s carry %d", hex(got), carry),
				fmt.Sprintf("%s carry %d", hex(want), wantCarry), hex(x), hex(y))
			return
		}
		rec.pass()
	})
}

func (a arith[T]) checkMul(ctx context.Context, rec *recorder, src operands[T]) error {
	mask := a.mask()
	var bx, by, exact, high big.Int
	return src.pairs(ctx, func(x, y T) {
		x.IntoBigInt(&bx)
		y.IntoBigInt(&by)
		exact.Mul(&bx, &by)
		wantLo := a.truncate(&exact, mask)
		wantHi := a.truncate(high.Rsh(&exact, uint(a.bits)), mask)

		got := x.Mul(y)
		lo, hi := x.MulFull(y)
		if got != wantLo || lo != wantLo || hi != wantHi {
			rec.fail(fmt.Sprintf("%s (full %s:%s)", hex(got), hex(hi), hex(lo)),
				fmt.Sprintf("%s (full %s:%s)", hex(wantLo), hex(wantHi), hex(wantLo)), hex(x), hex(y))
			return
		}
		rec.pass()
	})
}

func (a arith[T]) checkAddSub(ctx context.Context, rec *recorder, src operands[T]) error {
	return src.pairs(ctx, func(x, y T) {
		sum := x.Add(y)
		if l, r := sum.Sub(y), sum.Sub(x); l != x || r != y {
			rec.fail(fmt.Sprintf("%s, %s", hex(l), hex(r)), fmt.Sprintf("%s, %s", hex(x), hex(y)), hex(x), hex(y))
			return
		}
		rec.pass()
	})
}

func (a arith[T]) checkShift(ctx context.Context, rec *recorder, src operands[T]) error {
	var zero T
	one := a.fromLimbs([]uint64{1})
	for s := uint(0); s < uint(a.bits); s++ {
		shifted := one.Lsh(s)
		back := shifted.Rsh(s)
		if back != one || shifted.LeadingZeros() != uint(a.bits)-1-s {
			rec.fail(hex(back), hex(one), "1", fmt.Sprint(s))
			continue
		}
		rec.pass()
	}
	for _, s := range []uint{uint(a.bits), uint(a.bits) + 1, uint(a.bits) + 64} {
		if one.Lsh(s) != zero || one.Not().Rsh(s) != zero {
			rec.fail(hex(one.Lsh(s)), "0", "1", fmt.Sprint(s))
			continue
		}
		rec.pass()
	}

	mask := a.mask()
	var bx, exact big.Int
	shifts := uint(a.bits) + 1
	return src.values(ctx, src.cfg.MaxPairs/int(shifts), func(x T) {
		x.IntoBigInt(&bx)
		for s := uint(0); s < shifts; s++ {
			wantL := a.truncate(exact.Lsh(&bx, s), mask)
			wantR := a.truncate(exact.Rsh(&bx, s), mask)
			gotL, gotR := x.Lsh(s), x.Rsh(s)
			if gotL != wantL || gotR != wantR || gotR.Lsh(s).Rsh(s) != gotR {
				rec.fail(fmt.Sprintf("<< %s, >> %s", hex(gotL), hex(gotR)),
					fmt.Sprintf("<< %s, >> %s", hex(wantL), hex(wantR)), hex(x), fmt.Sprint(s))
				continue
			}
			rec.pass()
		}
	})
}

// checkBits confirms every bit position of the complement of zero can be
// addressed by a shifted one.
func (a arith[T]) checkBits(ctx context.Context, rec *recorder) error {
	var zero T
	ones := zero.Not()
	if want := a.truncate(a.mask(), a.mask()); ones != want {
		rec.fail(hex(ones), hex(want), "0")
	}
	one := a.fromLimbs([]uint64{1})
	for k := uint(0); k < uint(a.bits); k++ {
		bit := one.Lsh(k)
		if got := ones.And(bit); got != bit || bit.IsZero() {
			rec.fail(hex(got), hex(bit), hex(ones), fmt.Sprint(k))
			continue
		}
		rec.pass()
	}
	return ctx.Err()
}

func (a arith[T]) checkClz(ctx context.Context, rec *recorder, src operands[T]) error {
	var zero T
	if got := zero.LeadingZeros(); got != uint(a.bits) {
		rec.fail(fmt.Sprint(got), fmt.Sprint(a.bits), "0")
	} else {
		rec.pass()
	}
	if got := zero.Not().LeadingZeros(); got != 0 {
		rec.fail(fmt.Sprint(got), "0", hex(zero.Not()))
	} else {
		rec.pass()
	}

	var bx big.Int
	return src.values(ctx, src.cfg.MaxPairs, func(x T) {
		x.IntoBigInt(&bx)
		want := uint(a.bits - bx.BitLen())
		if got := x.LeadingZeros(); got != want {
			rec.fail(fmt.Sprint(got), fmt.Sprint(want), hex(x))
			return
		}
		rec.pass()
	})
}

// checkScalar compares multiplication by each factor against adding the
// operand to itself that many times.
func (a arith[T]) checkScalar(ctx context.Context, rec *recorder, src operands[T]) error {
	factors := slices.Clone(src.cfg.Factors)
	slices.Sort(factors)
	if len(factors) == 0 {
		return nil
	}

	return src.values(ctx, src.cfg.MaxPairs/len(factors), func(x T) {
		var acc T
		fi := 0
		for i := uint64(0); ; i++ {
			for fi < len(factors) && factors[fi] == i {
				k := factors[fi]
				fi++
				if got, wide := x.Mul64(k), x.Mul(a.fromLimbs([]uint64{k})); got != acc || wide != acc {
					rec.fail(fmt.Sprintf("%s, %s", hex(got), hex(wide)), hex(acc), hex(x), fmt.Sprint(k))
					continue
				}
				rec.pass()
			}
			if fi == len(factors) {
				return
			}
			acc = acc.Add(x)
		}
	})
}

func checkMulFull64(ctx context.Context, rec *recorder, cfg Config) error {
	var exact, hi, y big.Int
	one := func(a, b uint64) {
		exact.SetUint64(a)
		exact.Mul(&exact, y.SetUint64(b))
		wantLo := exact.Uint64()
		wantHi := hi.Rsh(&exact, 64).Uint64()

		nlo, nhi := intx.MulFull64Native(a, b)
		glo, ghi := intx.MulFull64Generic(a, b)
		dlo, dhi := intx.MulFull64(a, b)
		if nlo != wantLo || nhi != wantHi || glo != wantLo || ghi != wantHi || dlo != wantLo || dhi != wantHi {
			rec.fail(
				fmt.Sprintf("native %#x:%#x generic %#x:%#x", nhi, nlo, ghi, glo),
				fmt.Sprintf("%#x:%#x", wantHi, wantLo),
				hex(a), hex(b))
			return
		}
		rec.pass()
	}

	for _, a := range boundary.Maximal {
		for _, b := range boundary.Maximal {
			one(a, b)
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	for k := 0; k < cfg.MaxPairs; k++ {
		if k%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		one(rng.Uint64(), rng.Uint64())
	}
	return nil
}

func checkClz64(ctx context.Context, rec *recorder, cfg Config) error {
	one := func(v uint64) {
		want := uint(64 - bits.Len64(v))
		if got, gen := intx.Clz64(v), intx.Clz64Generic(v); got != want || gen != want {
			rec.fail(fmt.Sprintf("%d (generic %d)", got, gen), fmt.Sprint(want), hex(v))
			return
		}
		rec.pass()
	}

	for _, v := range boundary.Maximal {
		one(v)
	}
	for k := 0; k < 64; k++ {
		one(1 << k)
		one(1<<k - 1)
		one(^uint64(0) >> k)
	}

	rng := rand.New(rand.NewSource(cfg.Seed + 1))
	for k := 0; k < cfg.MaxPairs; k++ {
		if k%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		one(rng.Uint64() >> (rng.Uint64() % 64))
	}
	return nil
}
