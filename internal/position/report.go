package position

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"liquidityCalc/internal/v3math"
)

// Input describes a position: a price range, the current price and the two
// candidate deposit amounts.
type Input struct {
	Name      string
	LowPrice  float64
	CurrPrice float64
	UppPrice  float64
	AmountY   *big.Int
	AmountX   *big.Int
}

// Report holds every intermediate and final value of a position calculation.
type Report struct {
	Input Input

	SqrtLow *big.Int
	SqrtCur *big.Int
	SqrtUpp *big.Int

	LowTick int
	CurTick int
	UppTick int

	// Liquidity0 is supported by AmountY over [cur, upp], Liquidity1 by
	// AmountX over [low, cur]. Both are exact.
	Liquidity0 *big.Rat
	Liquidity1 *big.Rat
	Liquidity  *big.Int

	Amount0 *big.Int
	Amount1 *big.Int
}

// Validate checks prices and amounts before any math runs.
func (in Input) Validate() error {
	prices := []struct {
		name  string
		value float64
	}{
		{"low price", in.LowPrice},
		{"current price", in.CurrPrice},
		{"upper price", in.UppPrice},
	}
	for _, p := range prices {
		if !(p.value > 0) {
			return fmt.Errorf("%w: %s %v must be positive", v3math.ErrInvalidInput, p.name, p.value)
		}
	}
	if in.AmountY == nil || in.AmountY.Sign() < 0 {
		return fmt.Errorf("%w: amountY %v must not be negative", v3math.ErrInvalidInput, in.AmountY)
	}
	if in.AmountX == nil || in.AmountX.Sign() < 0 {
		return fmt.Errorf("%w: amountX %v must not be negative", v3math.ErrInvalidInput, in.AmountX)
	}
	return nil
}

// ReportPosition computes sqrt prices and ticks for the three prices, the
// liquidity each amount supports, the binding liquidity and the token
// amounts required at that liquidity.
func ReportPosition(in Input) (Report, error) {
	if err := in.Validate(); err != nil {
		return Report{}, err
	}

	report := Report{Input: in}
	var err error

	if report.SqrtLow, err = v3math.SqrtPriceFromPrice(in.LowPrice); err != nil {
		return Report{}, fmt.Errorf("sqrt low: %w", err)
	}
	if report.SqrtCur, err = v3math.SqrtPriceFromPrice(in.CurrPrice); err != nil {
		return Report{}, fmt.Errorf("sqrt cur: %w", err)
	}
	if report.SqrtUpp, err = v3math.SqrtPriceFromPrice(in.UppPrice); err != nil {
		return Report{}, fmt.Errorf("sqrt upp: %w", err)
	}

	if report.LowTick, err = v3math.TickFromPrice(in.LowPrice); err != nil {
		return Report{}, fmt.Errorf("low tick: %w", err)
	}
	if report.CurTick, err = v3math.TickFromPrice(in.CurrPrice); err != nil {
		return Report{}, fmt.Errorf("cur tick: %w", err)
	}
	if report.UppTick, err = v3math.TickFromPrice(in.UppPrice); err != nil {
		return Report{}, fmt.Errorf("upp tick: %w", err)
	}

	if report.Liquidity0, err = v3math.LiquidityFromAmountY(in.AmountY, report.SqrtCur, report.SqrtUpp); err != nil {
		return Report{}, fmt.Errorf("liquidity0: %w", err)
	}
	if report.Liquidity1, err = v3math.LiquidityFromAmountX(in.AmountX, report.SqrtCur, report.SqrtLow); err != nil {
		return Report{}, fmt.Errorf("liquidity1: %w", err)
	}
	if report.Liquidity, err = v3math.BindingLiquidity(report.Liquidity0, report.Liquidity1); err != nil {
		return Report{}, fmt.Errorf("binding liquidity: %w", err)
	}

	if report.Amount0, err = v3math.Amount0FromLiquidity(report.Liquidity, report.SqrtUpp, report.SqrtCur); err != nil {
		return Report{}, fmt.Errorf("amount0: %w", err)
	}
	if report.Amount1, err = v3math.Amount1FromLiquidity(report.Liquidity, report.SqrtLow, report.SqrtCur); err != nil {
		return Report{}, fmt.Errorf("amount1: %w", err)
	}

	return report, nil
}

// BindingY reports whether AmountY limits the position.
func (r Report) BindingY() bool {
	return r.Liquidity0 != nil && r.Liquidity1 != nil && r.Liquidity0.Cmp(r.Liquidity1) < 0
}

// Calculator runs position reports and traces them to a logger.
type Calculator struct {
	logger *zap.Logger
}

func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// Run reports each input in order. A failed input does not stop the others;
// its error is returned alongside the successful reports.
func (c *Calculator) Run(inputs []Input) ([]Report, []error) {
	reports := make([]Report, 0, len(inputs))
	var errs []error
	for i, in := range inputs {
		report, err := ReportPosition(in)
		if err != nil {
			c.logger.Warn("position failed",
				zap.Int("index", i),
				zap.String("name", in.Name),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("position %d (%s): %w", i, in.Name, err))
			continue
		}

		c.logger.Debug("position computed",
			zap.String("name", in.Name),
			zap.Int("cur_tick", report.CurTick),
			zap.String("liquidity", report.Liquidity.String()),
			zap.Bool("binding_y", report.BindingY()),
		)
		reports = append(reports, report)
	}
	return reports, errs
}
