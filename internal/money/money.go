// Package money provides the fixed-precision decimal type used for every
// balance and transaction amount in the ledger engine.
package money

import "github.com/shopspring/decimal"

// Monetary is the engine's money type: a base-10, arbitrary-precision
// decimal. Using decimal (not binary floating point) keeps four fractional
// digits of honest precision across every add and subtract.
type Monetary = decimal.Decimal

// Zero is the additive identity.
var Zero = decimal.Zero

// SafeMax is the headroom constant: the absolute maximum of the original
// fixed-point money type divided by 10^4, so that additions near the ceiling
// cannot silently drop fractional precision. The literal is that quotient
// written out exactly: Decimal::MAX (79228162514264337593543950335) / 10^4.
var SafeMax = decimal.RequireFromString("7922816251426433759354395.0335")

// Precision is the number of fractional digits the engine preserves and
// formats with.
const Precision = 4

// New builds a Monetary from a float for use in tests and examples; engine
// code should prefer decimal.NewFromString to avoid binary float rounding.
func New(f float64) Monetary {
	return decimal.NewFromFloat(f)
}

// IsNegative reports whether m is strictly less than zero.
func IsNegative(m Monetary) bool {
	return m.LessThan(Zero)
}

// FormatFixed renders m with exactly Precision fractional digits.
func FormatFixed(m Monetary) string {
	return m.StringFixed(Precision)
}
