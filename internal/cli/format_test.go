package cli

import (
	"strings"
	"testing"

	"github.com/theirongolddev/goalpace/internal/model"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{2.5, "$2.50"},
		{1234.5, "$1,234.50"},
		{-0.001, "$0.00"},
	}
	for _, tt := range tests {
		if got := FormatUSD(tt.in); got != tt.want {
			t.Errorf("FormatUSD(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatINR(t *testing.T) {
	if got := FormatINR(164.38); got != "₹164" {
		t.Errorf("FormatINR(164.38) = %q, want ₹164", got)
	}
	if got := FormatINR(-0.4); got != "₹0" {
		t.Errorf("FormatINR(-0.4) = %q, want ₹0", got)
	}

	got := FormatINR(120000)
	if !strings.HasPrefix(got, "₹") || strings.ReplaceAll(strings.TrimPrefix(got, "₹"), ",", "") != "120000" {
		t.Errorf("FormatINR(120000) = %q", got)
	}
}

func TestFormatPair(t *testing.T) {
	got := FormatPair(model.Amount{USD: 2, INR: 166})
	if got != "$2.00 → ₹166" {
		t.Errorf("FormatPair = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestAmountWords(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "Zero"},
		{0.4, "Zero"},
		{7, "Seven"},
		{120000, "One Lakh Twenty Thousand"},
		{20500100, "Two Crore Five Lakh One Hundred"},
		{1000000000, "One Hundred Crore"},
	}
	for _, tt := range tests {
		if got := AmountWords(tt.in); got != tt.want {
			t.Errorf("AmountWords(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderTable_AlignsMultibyteCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Date", "INR"},
		Rows: [][]string{
			{"2025-01-01", "₹830"},
			{"2025-01-02", "₹16,600"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out)
	}
}

func TestRenderProgressBar_Clamps(t *testing.T) {
	over := RenderProgressBar(1.7, 10, "170.00%")
	if strings.Count(over, "█") != 10 || strings.Contains(over, "░") {
		t.Errorf("overpaid bar not full: %q", over)
	}
	under := RenderProgressBar(-0.2, 10, "0.00%")
	if strings.Contains(under, "█") {
		t.Errorf("negative bar has fill: %q", under)
	}
}
