package workload

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Radix selects the textual base a numeric field is rendered in.
type Radix int

const (
	Decimal Radix = iota
	Hex
)

func (r Radix) String() string {
	if r == Hex {
		return "hex"
	}
	return "decimal"
}

// Render formats v in the given radix. Hex values carry a lowercase 0x prefix.
func Render(v uint64, r Radix) string {
	if r == Hex {
		return "0x" + strconv.FormatUint(v, 16)
	}
	return strconv.FormatUint(v, 10)
}

// ParseNumber decodes a field produced by Render. A 0x or 0X prefix means
// hexadecimal, anything else is read as decimal. The value must fit in 32 bits,
// which is what the simulator reading these files accepts.
func ParseNumber(s string) (uint32, error) {
	base := 10
	digits := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		digits = s[2:]
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("number %q exceeds 32 bits", s)
	}
	return uint32(v), nil
}
