// Package boundary holds curated limb values that sit on the edges where
// carry, borrow and shift bugs hide, and helpers that compose them into
// multi-limb operands.
package boundary

// Maximal covers the 32-bit half boundaries as well as the 64-bit ones. Use it
// for single-limb checks, where the full set is cheap.
var Maximal = []uint64{
	0x0000000000000000,
	0x0000000000000001,
	0x0000000000000002,
	0x000000000000000f,
	0x0000000000000010,
	0x00000000fffffffe,
	0x00000000ffffffff,
	0x0000000100000000,
	0x0000000100000001,
	0x00000001fffffffe,
	0x00000001ffffffff,
	0x0000000200000000,
	0x0000000200000001,
	0x0fffffffffffffff,
	0x1000000000000000,
	0x1000000000000001,
	0x1010101010101010,
	0x1ffffffffffffffe,
	0x1fffffffffffffff,
	0x2000000000000000,
	0x7000000000000000,
	0x7ffffffffffffffd,
	0x7ffffffffffffffe,
	0x7fffffffffffffff,
	0x8000000000000000,
	0x8000000000000001,
	0xfffffffffffffffd,
	0xfffffffffffffffe,
	0xffffffffffffffff,
}

// Normal adds alternating-bit patterns to the usual powers of two and
// extremes.
var Normal = []uint64{
	0x0000000000000000,
	0x0000000000000001,
	0x000000000000000f,
	0x0000000000000010,
	0x00000000000000ff,
	0x5555555555555555,
	0x7fffffffffffffff,
	0x8000000000000000,
	0x8000000000000001,
	0xaaaaaaaaaaaaaaaa,
	0xeeeeeeeeeeeeeeee,
	0xff00000000000000,
	0xfffffffffffffffe,
	0xffffffffffffffff,
}

// Minimal is small enough that its 4-limb compositions can be crossed with
// each other exhaustively in a few seconds.
var Minimal = []uint64{
	0x0000000000000000,
	0x0000000000000001,
	0x5555555555555555,
	0x7fffffffffffffff,
	0x8000000000000000,
	0xaaaaaaaaaaaaaaaa,
	0xfffffffffffffffe,
	0xffffffffffffffff,
}

// Factors are the small multipliers used to compare multiplication against
// repeated addition.
var Factors = []uint64{0, 1, 2, 3, 17, 19, 32, 512, 577, 2048, 2069, 3011, 7919, 8192}

// Sets maps the names accepted by configuration to the limb sets.
var Sets = map[string][]uint64{
	"maximal": Maximal,
	"normal":  Normal,
	"minimal": Minimal,
}

// Count returns the number of distinct n-limb values Compose produces from set.
func Count(set []uint64, limbs int) int {
	c := 1
	for i := 0; i < limbs; i++ {
		c *= len(set)
	}
	return c
}

// Compose calls fn with every n-limb combination drawn from set, least
// significant limb first. The slice passed to fn is reused between calls.
// Iteration stops early if fn returns false.
func Compose(set []uint64, limbs int, fn func(v []uint64) bool) {
	if len(set) == 0 || limbs <= 0 {
		return
	}

	idx := make([]int, limbs)
	v := make([]uint64, limbs)
	for {
		for i, j := range idx {
			v[i] = set[j]
		}
		if !fn(v) {
			return
		}

		// Odometer increment, most significant limb ticking fastest so that
		// neighbouring values differ in their high limbs first.
		i := limbs - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(set) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return
		}
	}
}

// Nth returns the n'th combination Compose would produce, writing it into v.
// len(v) is the limb count.
func Nth(set []uint64, n int, v []uint64) {
	for i := len(v) - 1; i >= 0; i-- {
		v[i] = set[n%len(set)]
		n /= len(set)
	}
}
