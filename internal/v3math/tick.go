package v3math

import (
	"fmt"
	"math"
)

var logTickBase = math.Log(TickBase)

// TickFromPrice returns floor(ln(price) / ln(1.0001)).
//
// The log is computed in float64. Near tick boundaries the result can be one
// tick away from the fixed-point getTickAtSqrtRatio of the pool contract.
func TickFromPrice(price float64) (int, error) {
	if err := checkPrice(price); err != nil {
		return 0, err
	}
	return int(math.Floor(math.Log(price) / logTickBase)), nil
}

// PriceAtTick returns 1.0001^tick.
func PriceAtTick(tick int) (float64, error) {
	if tick < MinTick || tick > MaxTick {
		return 0, fmt.Errorf("%w: tick %d outside [%d, %d]", ErrInvalidInput, tick, MinTick, MaxTick)
	}
	return math.Pow(TickBase, float64(tick)), nil
}
