package jsonschema

import (
	"math/big"

	"github.com/goccy/go-json"
)

// jsonEqual reports whether two decoded JSON values are equal under JSON
// Schema semantics: numbers compare by mathematical value regardless of Go
// representation (5 equals 5.0, 5 equals json.Number("5.00")), and objects
// compare structurally regardless of key order. It is the shared comparison
// used by "enum" and "const"; "uniqueItems" compares through
// normalizeForComparison instead.
func jsonEqual(a, b any) bool {
	if aNum, aOK := asRat(a); aOK {
		if bNum, bOK := asRat(b); bOK {
			return aNum.Cmp(bNum) == 0
		}
		return false
	}
	if _, bOK := asRat(b); bOK {
		return false
	}

	aNorm, aErr := normalizeValue(a)
	bNorm, bErr := normalizeValue(b)
	if aErr != nil || bErr != nil {
		return false
	}
	return aNorm == bNorm
}

// asRat converts a decoded JSON numeric value (float64, the various Go int
// and uint kinds, or json.Number) into an exact big.Rat, so numeric equality
// never suffers float64 rounding.
func asRat(v any) (*big.Rat, bool) {
	switch v.(type) {
	case float32, float64, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		r, err := convertToBigRat(v)
		if err != nil {
			return nil, false
		}
		return r, true
	default:
		return nil, false
	}
}
