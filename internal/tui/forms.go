package tui

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/goalpace/internal/model"
	"github.com/theirongolddev/goalpace/internal/session"

	"github.com/charmbracelet/huh"
)

type formKind int

const (
	formNone formKind = iota
	formSetup
	formGoal
	formPayment
	formTarget
)

// goalValues backs the new goal form. Numbers stay strings until submit.
type goalValues struct {
	Title    string
	Amount   string
	Currency string
	Years    string
}

type paymentValues struct {
	USD  string
	Date string
}

type targetValues struct {
	Cadence string
	Value   string
}

func newGoalForm(v *goalValues) *huh.Form {
	v.Currency = string(model.INR)
	v.Years = "1"
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal title").
				Placeholder("Car").
				CharLimit(120).
				Value(&v.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Target amount").
				Value(&v.Amount).
				Validate(validateNonNegative),
			huh.NewSelect[string]().
				Title("Currency").
				Options(
					huh.NewOption("INR", string(model.INR)),
					huh.NewOption("USD (converted at today's rate)", string(model.USD)),
				).
				Value(&v.Currency),
			huh.NewInput().
				Title("Years to pay off").
				Value(&v.Years).
				Validate(func(s string) error {
					f, err := parseAmount(s)
					if err != nil || f < 0.1 {
						return errors.New("at least 0.1 years")
					}
					return nil
				}),
		),
	).WithShowHelp(false)
}

func (v goalValues) input() session.GoalInput {
	amount, _ := parseAmount(v.Amount)
	years, _ := parseAmount(v.Years)
	return session.GoalInput{
		Title:    strings.TrimSpace(v.Title),
		Amount:   amount,
		Currency: v.Currency,
		Years:    years,
	}
}

func newPaymentForm(v *paymentValues, today time.Time) *huh.Form {
	v.Date = today.Format(model.DateLayout)
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("USD sent").
				Value(&v.USD).
				Validate(validateNonNegative),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&v.Date).
				Validate(func(s string) error {
					_, err := time.ParseInLocation(model.DateLayout, strings.TrimSpace(s), time.Local)
					if err != nil {
						return errors.New("use YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithShowHelp(false)
}

func (v paymentValues) input() session.PaymentInput {
	usd, _ := parseAmount(v.USD)
	date, _ := time.ParseInLocation(model.DateLayout, strings.TrimSpace(v.Date), time.Local)
	return session.PaymentInput{USDSent: usd, Date: date}
}

func newTargetForm(v *targetValues, unit string) *huh.Form {
	v.Cadence = string(model.Daily)
	opts := make([]huh.Option[string], 0, len(model.Cadences))
	for _, c := range model.Cadences {
		opts = append(opts, huh.NewOption(titleCase(string(c)), string(c)))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which one do you want to enter?").
				Options(opts...).
				Value(&v.Cadence),
			huh.NewInput().
				Title("Amount in " + unit).
				Value(&v.Value).
				Validate(validateNonNegative),
		),
	).WithShowHelp(false)
}

func (v targetValues) input() session.CustomTargetInput {
	val, _ := parseAmount(v.Value)
	return session.CustomTargetInput{Cadence: model.Cadence(v.Cadence), Value: val}
}

// parseAmount accepts plain or comma-grouped numbers.
func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
}

func validateNonNegative(s string) error {
	f, err := parseAmount(s)
	if err != nil || f < 0 {
		return errors.New("enter a number of 0 or more")
	}
	return nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
