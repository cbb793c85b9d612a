// Package control converts semantic preset values into LV2 control values.
//
// These are the only numeric rules in the converter. Every plugin schema is
// built from them plus its own enum tables.
package control

import (
	"math"
	"strconv"
)

// Precision is the number of decimal places every control value is rounded to.
const Precision = 6

// SilenceFloorDB is the level at or below which a decibel parameter is
// emitted as a linear 0.0, the de facto minimum of the destination plugins.
const SilenceFloorDB = -100.0

// EnumTable maps a preset's named option to the plugin's numeric port value.
type EnumTable map[string]float64

// Bool converts a flag to 1.0/0.0. With invert set the pair is swapped,
// which is how "bypass = true" becomes "enabled = 0.0".
func Bool(value, invert bool) float64 {
	if value != invert {
		return 1.0
	}
	return 0.0
}

// Enum looks up value in table. The lookup is exact and case-sensitive;
// fallback is returned for anything the table does not name.
func Enum(value string, table EnumTable, fallback float64) float64 {
	if v, ok := table[value]; ok {
		return v
	}
	return fallback
}

// DbToLinear converts a decibel value to linear amplitude.
func DbToLinear(db float64) float64 {
	return math.Pow(10, db/20.0)
}

// LinearToDb converts linear amplitude to decibels.
// Inverse of DbToLinear; returns -Inf for non-positive input.
func LinearToDb(linear float64) float64 {
	if linear <= 0 {
		return math.Inf(-1)
	}
	return 20.0 * math.Log10(linear)
}

// Float rounds value to Precision decimal places.
//
// Rounding is done on the decimal expansion of the exact binary value
// (round half to even), not by scaling in binary floating point, so the
// same input always prints the same digits.
func Float(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', Precision, 64), 64)
	if err != nil || rounded == 0 {
		// Also folds -0 into 0
		return 0
	}
	return rounded
}

// Decibel converts a decibel parameter into a rounded linear control value.
// Anything at or below SilenceFloorDB is treated as silence.
func Decibel(db float64) float64 {
	if db <= SilenceFloorDB {
		return 0.0
	}
	return Float(DbToLinear(db))
}
