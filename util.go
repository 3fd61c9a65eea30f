package intx

// RandSource supplies random limbs; *math/rand.Rand satisfies it.
type RandSource interface {
	Uint64() uint64
}

// DifferenceU128 subtracts the smaller of a and b from the larger.
func DifferenceU128(a, b U128) U128 {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerU128(a, b U128) U128 {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerU128(a, b U128) U128 {
	if b.LessThan(a) {
		return b
	}
	return a
}

// DifferenceU256 subtracts the smaller of a and b from the larger.
func DifferenceU256(a, b U256) U256 {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerU256(a, b U256) U256 {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerU256(a, b U256) U256 {
	if b.LessThan(a) {
		return b
	}
	return a
}

// DifferenceU512 subtracts the smaller of a and b from the larger.
func DifferenceU512(a, b U512) U512 {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerU512(a, b U512) U512 {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerU512(a, b U512) U512 {
	if b.LessThan(a) {
		return b
	}
	return a
}
