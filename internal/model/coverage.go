package model

// CoverageBreakdown is the normalized land-use percentage distribution for
// the analyzed area. Values are percentages summing to 100 within a 0.1
// rounding epsilon, each non-negative.
type CoverageBreakdown struct {
	Forest      float64 `json:"forest"`
	Water       float64 `json:"water"`
	Agriculture float64 `json:"agriculture"`
	Settlement  float64 `json:"settlement"`
	Other       float64 `json:"other"`
}

// Sum returns the total of all five categories.
func (c CoverageBreakdown) Sum() float64 {
	return c.Forest + c.Water + c.Agriculture + c.Settlement + c.Other
}
