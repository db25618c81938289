package payroll

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders a float amount as "R$ 1.234,56". Rounding to cents
// happens here, at the display edge; the engine itself stays in float64.
func FormatBRL(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)

	negative := d.IsNegative()
	if negative {
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	intPart := fixed[:len(fixed)-3]
	centsPart := fixed[len(fixed)-2:]

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString("R$ ")
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	b.WriteString(",")
	b.WriteString(centsPart)
	return b.String()
}
