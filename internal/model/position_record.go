package model

// PositionRecord is the serialized form of a position report. Fixed-point
// values are decimal strings.
type PositionRecord struct {
	Name       string  `json:"name,omitempty"`
	LowPrice   float64 `json:"low_price"`
	CurrPrice  float64 `json:"curr_price"`
	UppPrice   float64 `json:"upp_price"`
	AmountY    string  `json:"amount_y"`
	AmountX    string  `json:"amount_x"`
	SqrtLow    string  `json:"sqrt_low"`
	SqrtCur    string  `json:"sqrt_cur"`
	SqrtUpp    string  `json:"sqrt_upp"`
	LowTick    int     `json:"low_tick"`
	CurTick    int     `json:"cur_tick"`
	UppTick    int     `json:"upp_tick"`
	Liquidity  string  `json:"liquidity"`
	BindingY   bool    `json:"binding_y"`
	Amount0    string  `json:"amount0"`
	Amount1    string  `json:"amount1"`
	Amount0Fmt string  `json:"amount0_units"`
	Amount1Fmt string  `json:"amount1_units"`
}
