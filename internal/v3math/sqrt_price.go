package v3math

import (
	"fmt"
	"math"
	"math/big"
)

// SqrtPriceFromPrice returns floor(sqrt(price) * 2^96).
//
// The square root is taken in float64 and then scaled exactly, so the result
// is the integer part of the float sqrt shifted by 96 bits.
func SqrtPriceFromPrice(price float64) (*big.Int, error) {
	if err := checkPrice(price); err != nil {
		return nil, err
	}

	scaled := new(big.Float).SetFloat64(math.Sqrt(price))
	scaled.SetMantExp(scaled, resolution)
	sqrtPrice, _ := scaled.Int(nil)
	return sqrtPrice, nil
}

// PriceFromSqrtPrice converts a Q96 sqrt price back to a price.
func PriceFromSqrtPrice(sqrtPriceX96 *big.Int) (float64, error) {
	if err := checkSqrtPrice(sqrtPriceX96); err != nil {
		return 0, err
	}

	ratio := new(big.Float).SetInt(sqrtPriceX96)
	ratio.SetMantExp(ratio, -resolution)
	sqrtPrice, _ := ratio.Float64()
	return sqrtPrice * sqrtPrice, nil
}

func checkPrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return fmt.Errorf("%w: price %v must be positive and finite", ErrInvalidInput, price)
	}
	return nil
}

func checkSqrtPrice(sqrtPriceX96 *big.Int) error {
	if sqrtPriceX96 == nil || sqrtPriceX96.Sign() <= 0 {
		return fmt.Errorf("%w: sqrt price %v must be positive", ErrInvalidInput, sqrtPriceX96)
	}
	return nil
}
