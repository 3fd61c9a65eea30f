package boundary

import (
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestComposeVisitsEveryCombination(t *testing.T) {
	tt := assert.WrapTB(t)

	set := []uint64{1, 2, 3}
	seen := map[[2]uint64]bool{}
	Compose(set, 2, func(v []uint64) bool {
		seen[[2]uint64{v[0], v[1]}] = true
		return true
	})
	tt.MustEqual(Count(set, 2), len(seen))
}

func TestComposeMatchesNth(t *testing.T) {
	tt := assert.WrapTB(t)

	n := 0
	v := make([]uint64, 3)
	Compose(Minimal, 3, func(c []uint64) bool {
		Nth(Minimal, n, v)
		tt.MustEqual(c, v, "combination %d", n)
		n++
		return true
	})
	tt.MustEqual(Count(Minimal, 3), n)
}

func TestComposeStops(t *testing.T) {
	tt := assert.WrapTB(t)

	calls := 0
	Compose(Normal, 4, func(v []uint64) bool {
		calls++
		return calls < 10
	})
	tt.MustEqual(10, calls)
}

func TestSetsAreSortedAndUnique(t *testing.T) {
	for name, set := range Sets {
		t.Run(name, func(t *testing.T) {
			tt := assert.WrapTB(t)
			for i := 1; i < len(set); i++ {
				tt.MustAssert(set[i-1] < set[i], "%s[%d] out of order", name, i)
			}
		})
	}
}
