package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"plantdash/internal/explorer"
)

// Metrics writes the KPI block: plant count, total capacity, distinct
// owners.
func Metrics(w io.Writer, m explorer.Metrics) {
	label := color.New(color.FgCyan)
	value := color.New(color.FgHiWhite, color.Bold)

	fmt.Fprintf(w, "%s %s\n", label.Sprint("Total plants:"), value.Sprint(formatThousands(float64(m.Plants))))

	capacity := "n/a"
	if m.HasCapacity {
		capacity = formatThousands(m.TotalCapacity) + " ttpa"
	}

	fmt.Fprintf(w, "%s %s\n", label.Sprint("Total capacity:"), value.Sprint(capacity))
	fmt.Fprintf(w, "%s %s\n", label.Sprint("Distinct companies:"), value.Sprint(formatThousands(float64(m.OwnerCount))))
}

// formatThousands renders a number rounded to an integer with comma
// grouping, the way the capacity KPI is usually quoted.
func formatThousands(f float64) string {
	neg := f < 0
	if neg {
		f = -f
	}

	s := strconv.FormatFloat(f, 'f', 0, 64)

	var b strings.Builder

	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}

	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}

		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}

	return b.String()
}
