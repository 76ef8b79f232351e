package pmcalc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NumberFormat selects how results are rendered for output.
type NumberFormat int8

// Predefined number formats
const (
	GeneralFormat NumberFormat = iota // %g with a number of significant digits
	DecimalFormat                     // fixed-point with a number of decimal places
)

// DefaultPrecision is the number of significant digits for GeneralFormat, matching
// what C-like iostreams print for a double.
const DefaultPrecision = 6

func (nf NumberFormat) String() string {
	switch nf {
	case GeneralFormat:
		return "general"
	case DecimalFormat:
		return "decimal"
	}
	return fmt.Sprintf("<illegal format: %d>", nf)
}

// FormatFromString gets a number format from a string. Unknown names fall back
// to GeneralFormat.
func FormatFromString(str string) NumberFormat {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "decimal", "fixed":
		return DecimalFormat
	case "general", "":
		return GeneralFormat
	}
	tracer().Errorf("unknown number format %q, using general format", str)
	return GeneralFormat
}

// Render formats x according to nf. For GeneralFormat, precision counts
// significant digits, for DecimalFormat it counts places after the decimal point.
// A negative precision selects the default.
//
// Non-finite values are rendered as "inf", "-inf" and "nan" in either format.
func (nf NumberFormat) Render(x float64, precision int) string {
	if precision < 0 {
		precision = DefaultPrecision
	}
	switch {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case math.IsNaN(x):
		return "nan"
	}
	if nf == DecimalFormat {
		return decimal.NewFromFloat(x).StringFixed(int32(precision))
	}
	if precision == 0 {
		precision = 1
	}
	return strconv.FormatFloat(x, 'g', precision, 64)
}
