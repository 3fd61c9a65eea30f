/*
Package intx provides fixed-width unsigned integers built from 64-bit limbs:
U128, U256 and U512.

The types are little-endian arrays of uint64 (index 0 is the least significant
limb). They are value types; all operations return new values and none
allocate. Arithmetic wraps modulo 2^width, shifting by the full width or more
yields zero, and nothing panics except out-of-range Bit/SetBit indexes.

Simple example:

	x := U256From64(math.MaxUint64)
	lo, hi := x.MulFull(x)
	fmt.Println(lo, hi)
	// Output: 340282366920938463426481119284349108225 0

All multiplication is composed from MulFull64, the exact 64x64->128 product.
Two bodies exist for it: MulFull64Native, which the compiler lowers to one
instruction, and MulFull64Generic, built from four 32-bit partial products.
HaveNativeMulFull64 selects between them at compile time. Build with the
'purego' tag to force the generic body on any target:

	go test -tags purego ./...

Checked arithmetic is available through AddCarry and SubBorrow, which return
the carry or borrow that Add and Sub silently drop.

The verify sub-package cross-checks a build against math/big at runtime.
*/
package intx
