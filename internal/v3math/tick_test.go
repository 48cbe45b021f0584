package v3math

import (
	"errors"
	"math"
	"testing"
)

func TestTickFromPrice(t *testing.T) {
	cases := []struct {
		price float64
		want  int
	}{
		{price: 1, want: 0},
		{price: 0.99, want: -101},
		{price: 1.01, want: 99},
		{price: 2500, want: 78244},
		{price: 2600, want: 78636},
		{price: 2700, want: 79014},
	}

	for _, tc := range cases {
		got, err := TickFromPrice(tc.price)
		if err != nil {
			t.Fatalf("price %v: unexpected error: %v", tc.price, err)
		}
		if got != tc.want {
			t.Fatalf("price %v: tick mismatch: %d != %d", tc.price, got, tc.want)
		}
	}
}

func TestTickFromPriceMonotonic(t *testing.T) {
	prev := math.MinInt
	for price := 1e-6; price < 1e9; price *= 1.37 {
		tick, err := TickFromPrice(price)
		if err != nil {
			t.Fatalf("price %v: unexpected error: %v", price, err)
		}
		if tick < prev {
			t.Fatalf("tick decreased at price %v: %d < %d", price, tick, prev)
		}
		prev = tick
	}
}

func TestTickFromPriceMonotonicAcrossBoundaries(t *testing.T) {
	for _, center := range []int{-101, -1, 0, 99, 78636, 200000} {
		start, err := PriceAtTick(center - 2)
		if err != nil {
			t.Fatalf("tick %d: unexpected error: %v", center-2, err)
		}
		end, err := PriceAtTick(center + 2)
		if err != nil {
			t.Fatalf("tick %d: unexpected error: %v", center+2, err)
		}

		prev := math.MinInt
		for price := start; price <= end; price *= 1.00001 {
			tick, err := TickFromPrice(price)
			if err != nil {
				t.Fatalf("price %v: unexpected error: %v", price, err)
			}
			if tick < prev {
				t.Fatalf("tick decreased at price %v: %d < %d", price, tick, prev)
			}
			if tick < center-3 || tick > center+2 {
				t.Fatalf("price %v: tick %d far from %d", price, tick, center)
			}
			prev = tick
		}
		if prev < center+1 {
			t.Fatalf("sweep around tick %d stopped at tick %d", center, prev)
		}
	}
}

func TestTickPriceBracket(t *testing.T) {
	for _, price := range []float64{0.001, 0.99, 1.5, 2600, 123456.789} {
		tick, err := TickFromPrice(price)
		if err != nil {
			t.Fatalf("price %v: unexpected error: %v", price, err)
		}
		lower, err := PriceAtTick(tick)
		if err != nil {
			t.Fatalf("tick %d: unexpected error: %v", tick, err)
		}
		upper, err := PriceAtTick(tick + 1)
		if err != nil {
			t.Fatalf("tick %d: unexpected error: %v", tick+1, err)
		}
		if price < lower*(1-1e-9) || price > upper*(1+1e-9) {
			t.Fatalf("price %v not within tick %d bounds [%v, %v]", price, tick, lower, upper)
		}
	}
}

func TestTickInvalid(t *testing.T) {
	for _, price := range []float64{0, -2600, math.NaN()} {
		if _, err := TickFromPrice(price); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("price %v: expected ErrInvalidInput, got %v", price, err)
		}
	}
	if _, err := PriceAtTick(MaxTick + 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput above max tick, got %v", err)
	}
	if _, err := PriceAtTick(MinTick - 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput below min tick, got %v", err)
	}
}
