// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/divan/num2words"
	"github.com/theirongolddev/goalpace/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	usdPrinter = message.NewPrinter(language.English)
	inrPrinter = message.NewPrinter(language.MustParse("en-IN"))
	titleCaser = cases.Title(language.English)
)

// FormatINR formats rupees with no decimals and Indian digit grouping.
// e.g., 120000 -> "₹1,20,000"
func FormatINR(v float64) string {
	return inrPrinter.Sprintf("₹%.0f", roundZero(v, 0))
}

// FormatUSD formats dollars with cents.
// e.g., 1234.5 -> "$1,234.50"
func FormatUSD(v float64) string {
	return usdPrinter.Sprintf("$%.2f", roundZero(v, 2))
}

// FormatPair renders an amount as "$X → ₹Y".
func FormatPair(a model.Amount) string {
	return FormatUSD(a.USD) + " → " + FormatINR(a.INR)
}

// FormatPercent formats a 0-100 percentage with two decimals.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// FormatRate formats an exchange rate.
func FormatRate(rate float64) string {
	return fmt.Sprintf("₹%.4f / $1", rate)
}

// FormatYears formats a duration in years with one decimal.
func FormatYears(y float64) string {
	return fmt.Sprintf("%.1f years", y)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// AmountWords spells a rupee amount in the Indian numbering system,
// rounded to the nearest rupee.
// e.g., 120000 -> "One Lakh Twenty Thousand"
func AmountWords(amount float64) string {
	n := int(math.Round(amount))
	if n == 0 {
		return "Zero"
	}
	prefix := ""
	if n < 0 {
		prefix = "minus "
		n = -n
	}
	return titleCaser.String(prefix + indianWords(n))
}

func indianWords(n int) string {
	var parts []string
	if crore := n / 10_000_000; crore > 0 {
		parts = append(parts, indianWords(crore)+" crore")
	}
	if lakh := n / 100_000 % 100; lakh > 0 {
		parts = append(parts, num2words.Convert(lakh)+" lakh")
	}
	if thousand := n / 1000 % 100; thousand > 0 {
		parts = append(parts, num2words.Convert(thousand)+" thousand")
	}
	if rest := n % 1000; rest > 0 {
		parts = append(parts, num2words.Convert(rest))
	}
	return strings.Join(parts, " ")
}

// roundZero rounds v to places decimals and turns -0 into 0 so tiny
// negative remainders don't print as "-0".
func roundZero(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}
	return r
}
