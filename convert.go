package intx

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// limbsIntoBig sets b to the value of x.
func limbsIntoBig(b *big.Int, x []uint64) {
	var buf [maxLimbBytes]byte
	n := len(x) * 8
	for i, l := range x {
		binary.BigEndian.PutUint64(buf[n-8*(i+1):], l)
	}
	b.SetBytes(buf[:n])
}

// limbsFromBig sets z to v modulo 2^(64*len(z)). accurate is false if v was
// negative (z is zeroed) or did not fit.
func limbsFromBig(z []uint64, v *big.Int) (accurate bool) {
	for i := range z {
		z[i] = 0
	}
	if v.Sign() < 0 {
		return false
	}

	var buf [maxLimbBytes]byte
	n := len(z) * 8
	bts := buf[:n]

	accurate = v.BitLen() <= n*8
	if accurate {
		v.FillBytes(bts)
	} else {
		raw := v.Bytes()
		bts = raw[len(raw)-n:]
	}

	for i := range z {
		z[i] = binary.BigEndian.Uint64(bts[n-8*(i+1):])
	}
	return accurate
}

// formatLimbs renders x through big.Int so every verb big.Int supports works.
func formatLimbs(s fmt.State, c rune, x []uint64) {
	var b big.Int
	limbsIntoBig(&b, x)
	b.Format(s, c)
}

func stringLimbs(x []uint64) string {
	var b big.Int
	limbsIntoBig(&b, x)
	return b.String()
}
