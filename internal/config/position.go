package config

import (
	"fmt"
	"math/big"
	"strings"

	gethmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/shopspring/decimal"

	"liquidityCalc/internal/position"
)

const (
	// UnitRaw amounts are integers in the token's smallest unit, decimal or 0x hex.
	UnitRaw = "raw"
	// UnitToken amounts are decimal token quantities scaled by the configured decimals.
	UnitToken = "token"
	// UnitWad amounts are decimal token quantities scaled by 10^18 regardless
	// of the configured decimals.
	UnitWad = "wad"

	wadDecimals = 18
)

// ParseAmount converts a configured amount into a fixed-point integer.
func ParseAmount(value, unit string, decimals int32) (*big.Int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("amount is required")
	}
	if decimals < 0 || decimals > MaxDecimals {
		return nil, fmt.Errorf("decimals must be within [0, %d]: %d", MaxDecimals, decimals)
	}

	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "", UnitRaw:
		amount, ok := gethmath.ParseBig256(value)
		if !ok {
			return nil, fmt.Errorf("invalid raw amount: %s", value)
		}
		return amount, nil
	case UnitToken:
		return parseTokenAmount(value, decimals)
	case UnitWad:
		return parseTokenAmount(value, wadDecimals)
	default:
		return nil, fmt.Errorf("unknown amount unit: %s", unit)
	}
}

func parseTokenAmount(value string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid token amount %s: %w", value, err)
	}
	scaled := d.Shift(decimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, fmt.Errorf("token amount %s has more than %d decimals", value, decimals)
	}
	if !scaled.IsZero() && scaled.Exponent() > MaxDecimals {
		return nil, fmt.Errorf("token amount %s exceeds 256 bits", value)
	}
	amount := scaled.BigInt()
	if amount.BitLen() > 256 {
		return nil, fmt.Errorf("token amount %s exceeds 256 bits", value)
	}
	return amount, nil
}

// Input converts the configured position into a calculator input.
func (p PositionConfig) Input(decimals int32) (position.Input, error) {
	amountY, err := ParseAmount(p.AmountY, p.Unit, decimals)
	if err != nil {
		return position.Input{}, fmt.Errorf("position %s amount-y: %w", p.Name, err)
	}
	amountX, err := ParseAmount(p.AmountX, p.Unit, decimals)
	if err != nil {
		return position.Input{}, fmt.Errorf("position %s amount-x: %w", p.Name, err)
	}

	return position.Input{
		Name:      p.Name,
		LowPrice:  p.LowPrice,
		CurrPrice: p.CurrPrice,
		UppPrice:  p.UppPrice,
		AmountY:   amountY,
		AmountX:   amountX,
	}, nil
}
