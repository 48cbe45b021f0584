package position

import (
	"math/big"

	"github.com/shopspring/decimal"

	"liquidityCalc/internal/model"
)

// Record converts the report to its serialized form. decimals is the token
// precision used for the human-unit amount fields.
func (r Report) Record(decimals int32) model.PositionRecord {
	return model.PositionRecord{
		Name:       r.Input.Name,
		LowPrice:   r.Input.LowPrice,
		CurrPrice:  r.Input.CurrPrice,
		UppPrice:   r.Input.UppPrice,
		AmountY:    bigString(r.Input.AmountY),
		AmountX:    bigString(r.Input.AmountX),
		SqrtLow:    bigString(r.SqrtLow),
		SqrtCur:    bigString(r.SqrtCur),
		SqrtUpp:    bigString(r.SqrtUpp),
		LowTick:    r.LowTick,
		CurTick:    r.CurTick,
		UppTick:    r.UppTick,
		Liquidity:  bigString(r.Liquidity),
		BindingY:   r.BindingY(),
		Amount0:    bigString(r.Amount0),
		Amount1:    bigString(r.Amount1),
		Amount0Fmt: formatUnits(r.Amount0, decimals),
		Amount1Fmt: formatUnits(r.Amount1, decimals),
	}
}

func bigString(value *big.Int) string {
	if value == nil {
		return "0"
	}
	return value.String()
}

func formatUnits(value *big.Int, decimals int32) string {
	if value == nil {
		return "0"
	}
	return decimal.NewFromBigInt(value, -decimals).String()
}
