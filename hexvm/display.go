package hexvm

import (
	"strings"

	"github.com/astavie/hexcast/hexes"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var displayPrinter = message.NewPrinter(language.AmericanEnglish)

func formatDouble(f float64) string {
	return displayPrinter.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Render flattens an iota's display fragments into a string.
func Render(iota Iota) string {
	var sb strings.Builder
	renderAtoms(&sb, iota.Display())
	return sb.String()
}

func renderAtoms(sb *strings.Builder, atoms []any) {
	for _, atom := range atoms {
		switch a := atom.(type) {
		case string:
			sb.WriteString(a)
		case hexes.Pattern:
			sb.WriteString(a.String())
		case Iota:
			renderAtoms(sb, a.Display())
		default:
			panic("unknown display atom")
		}
	}
}
