package v3math

import (
	"fmt"
	"math/big"
)

// LiquidityFromAmountY returns the liquidity supported by amountY over the
// range, (amountY * sqrtPa * sqrtPb / 2^96) / (sqrtPb - sqrtPa).
// The result is exact and not floored.
func LiquidityFromAmountY(amountY, sqrtPa, sqrtPb *big.Int) (*big.Rat, error) {
	if err := checkAmount("amountY", amountY); err != nil {
		return nil, err
	}
	lower, upper, err := sortedRange(sqrtPa, sqrtPb)
	if err != nil {
		return nil, err
	}

	num := new(big.Int).Mul(amountY, lower)
	num.Mul(num, upper)
	den := new(big.Int).Sub(upper, lower)
	den.Mul(den, q96)
	return new(big.Rat).SetFrac(num, den), nil
}

// LiquidityFromAmountX returns amountX * 2^96 / (sqrtPb - sqrtPa), exact.
func LiquidityFromAmountX(amountX, sqrtPa, sqrtPb *big.Int) (*big.Rat, error) {
	if err := checkAmount("amountX", amountX); err != nil {
		return nil, err
	}
	lower, upper, err := sortedRange(sqrtPa, sqrtPb)
	if err != nil {
		return nil, err
	}

	num := new(big.Int).Mul(amountX, q96)
	return new(big.Rat).SetFrac(num, new(big.Int).Sub(upper, lower)), nil
}

// BindingLiquidity returns floor(min(l0, l1)).
func BindingLiquidity(l0, l1 *big.Rat) (*big.Int, error) {
	if l0 == nil || l1 == nil {
		return nil, fmt.Errorf("%w: liquidity is nil", ErrInvalidInput)
	}
	if l0.Sign() < 0 || l1.Sign() < 0 {
		return nil, fmt.Errorf("%w: liquidity must not be negative", ErrInvalidInput)
	}

	binding := l1
	if l0.Cmp(l1) < 0 {
		binding = l0
	}
	// Non-negative, so truncating division is floor.
	return new(big.Int).Quo(binding.Num(), binding.Denom()), nil
}

// Amount0FromLiquidity returns floor(L * 2^96 * (sqrtPb - sqrtPa) / sqrtPa / sqrtPb).
func Amount0FromLiquidity(liquidity, sqrtPa, sqrtPb *big.Int) (*big.Int, error) {
	if err := checkAmount("liquidity", liquidity); err != nil {
		return nil, err
	}
	lower, upper, err := sortedRange(sqrtPa, sqrtPb)
	if err != nil {
		return nil, err
	}

	num := new(big.Int).Lsh(liquidity, resolution)
	num.Mul(num, new(big.Int).Sub(upper, lower))
	den := new(big.Int).Mul(lower, upper)
	return num.Quo(num, den), nil
}

// Amount1FromLiquidity returns floor(L * (sqrtPb - sqrtPa) / 2^96).
func Amount1FromLiquidity(liquidity, sqrtPa, sqrtPb *big.Int) (*big.Int, error) {
	if err := checkAmount("liquidity", liquidity); err != nil {
		return nil, err
	}
	lower, upper, err := sortedRange(sqrtPa, sqrtPb)
	if err != nil {
		return nil, err
	}

	amount := new(big.Int).Sub(upper, lower)
	amount.Mul(amount, liquidity)
	return amount.Rsh(amount, resolution), nil
}

func sortedRange(sqrtPa, sqrtPb *big.Int) (*big.Int, *big.Int, error) {
	if err := checkSqrtPrice(sqrtPa); err != nil {
		return nil, nil, err
	}
	if err := checkSqrtPrice(sqrtPb); err != nil {
		return nil, nil, err
	}

	switch sqrtPa.Cmp(sqrtPb) {
	case 0:
		return nil, nil, fmt.Errorf("%w: empty range at sqrt price %s", ErrInvalidInput, sqrtPa)
	case 1:
		return sqrtPb, sqrtPa, nil
	default:
		return sqrtPa, sqrtPb, nil
	}
}

func checkAmount(name string, amount *big.Int) error {
	if amount == nil {
		return fmt.Errorf("%w: %s is nil", ErrInvalidInput, name)
	}
	if amount.Sign() < 0 {
		return fmt.Errorf("%w: %s %s must not be negative", ErrInvalidInput, name, amount)
	}
	return nil
}
