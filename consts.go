package intx

const (
	U128Bits = 128
	U256Bits = 256
	U512Bits = 512

	maxUint64 = 1<<64 - 1

	// maxLimbBytes is the byte size of the widest supported type.
	maxLimbBytes = U512Bits / 8
)

var (
	MaxU128 = U128{maxUint64, maxUint64}
	MaxU256 = U256{maxUint64, maxUint64, maxUint64, maxUint64}
	MaxU512 = U512{
		maxUint64, maxUint64, maxUint64, maxUint64,
		maxUint64, maxUint64, maxUint64, maxUint64,
	}

	zeroU128 U128
	zeroU256 U256
	zeroU512 U512
)
