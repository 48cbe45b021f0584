package v3math

import (
	"math/big"

	gethmath "github.com/ethereum/go-ethereum/common/math"
)

const (
	// TickBase is the price ratio between two adjacent ticks.
	TickBase = 1.0001

	// MinTick and MaxTick bound the tick range of a V3 pool.
	MinTick = -887272
	MaxTick = 887272

	resolution = 96
)

var (
	q96 = new(big.Int).Lsh(big.NewInt(1), resolution)
	wad = gethmath.BigPow(10, 18)
)

// Q96 returns the fixed-point scale of sqrt prices (2^96) as a fresh value.
func Q96() *big.Int {
	return new(big.Int).Set(q96)
}

// WAD returns the 18-decimal token unit as a fresh value.
func WAD() *big.Int {
	return new(big.Int).Set(wad)
}
