// Package session wires user actions to the ledger, calculator and custom
// target projector for one run of the app.
//
// The exchange rate is resolved once by the caller and held for the life of
// the session; every conversion in a session uses the same rate.
//
// A Session is safe for concurrent use. The selection and convention are
// guarded by a mutex; callers that run actions concurrently should use the
// goal-explicit methods (DashboardFor, LogPaymentTo, CustomTargetFor) so an
// action never depends on whichever goal another goroutine selected last.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/theirongolddev/goalpace/internal/calc"
	"github.com/theirongolddev/goalpace/internal/cli"
	"github.com/theirongolddev/goalpace/internal/model"
	"github.com/theirongolddev/goalpace/internal/projector"
	"github.com/theirongolddev/goalpace/internal/rates"
)

var (
	// ErrNoGoalSelected means no goal exists or none has been chosen. It is
	// informational; goal creation still works.
	ErrNoGoalSelected = errors.New("no goal selected")
	// ErrInvalidInput wraps validation failures on user input.
	ErrInvalidInput = errors.New("invalid input")
)

// Ledger is the storage the session needs.
type Ledger interface {
	CreateGoal(ctx context.Context, g model.NewGoal, rate float64) (int64, error)
	ListGoals(ctx context.Context) ([]model.GoalRef, error)
	GetGoal(ctx context.Context, id int64) (model.Goal, error)
	LogPayment(ctx context.Context, goalID int64, date time.Time, usdSent, rate float64) (int64, error)
	ListPayments(ctx context.Context, goalID int64) ([]model.Payment, error)
}

// GoalInput is a goal as entered by the user.
type GoalInput struct {
	Title    string  `validate:"required,max=120"`
	Amount   float64 `validate:"gte=0"`
	Currency string  `validate:"oneof=INR USD"`
	Years    float64 `validate:"gte=0.1"`
}

// PaymentInput is a payment as entered by the user. A zero Date means today.
type PaymentInput struct {
	USDSent float64 `validate:"gte=0"`
	Date    time.Time
}

// CustomTargetInput fixes one cadence's value for a custom projection.
type CustomTargetInput struct {
	Cadence model.Cadence `validate:"oneof=daily weekly monthly yearly"`
	Value   float64       `validate:"gte=0"`
}

// Dashboard is everything shown for the selected goal.
type Dashboard struct {
	Summary   model.Summary
	Payments  []model.Payment
	Progress  []model.Metric
	Targets   []model.Metric
	Remaining []model.Metric
	Caption   string
	Words     string
}

// Session holds the ledger, the session rate and the selected goal.
type Session struct {
	ledger   Ledger
	quote    rates.Quote
	validate *validator.Validate
	now      func() time.Time

	mu         sync.Mutex
	convention projector.Convention
	selected   int64 // 0 when nothing is selected
}

// New returns a session using quote for every conversion.
func New(ledger Ledger, quote rates.Quote, conv projector.Convention) *Session {
	if conv == "" {
		conv = projector.ConventionUSD
	}
	return &Session{
		ledger:     ledger,
		quote:      quote,
		convention: conv,
		validate:   validator.New(),
		now:        time.Now,
	}
}

// Rate returns the session's exchange rate.
func (s *Session) Rate() float64 { return s.quote.Rate }

// Quote returns the session's rate and where it came from.
func (s *Session) Quote() rates.Quote { return s.quote }

// Convention returns the custom target convention in use.
func (s *Session) Convention() projector.Convention {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.convention
}

// SetConvention switches the custom target convention.
func (s *Session) SetConvention(c projector.Convention) {
	s.mu.Lock()
	s.convention = c
	s.mu.Unlock()
}

func (s *Session) setSelected(id int64) {
	s.mu.Lock()
	s.selected = id
	s.mu.Unlock()
}

// CreateGoal validates and stores a goal, then selects it.
func (s *Session) CreateGoal(ctx context.Context, in GoalInput) (int64, error) {
	if err := s.check(in); err != nil {
		return 0, err
	}

	id, err := s.ledger.CreateGoal(ctx, model.NewGoal{
		Title:    in.Title,
		Amount:   in.Amount,
		Currency: model.Currency(in.Currency),
		Years:    in.Years,
	}, s.quote.Rate)
	if err != nil {
		return 0, err
	}

	slog.Info("goal created", "id", id, "title", in.Title, "currency", in.Currency, "rate", s.quote.Rate)
	s.setSelected(id)
	return id, nil
}

// Goals lists goals in insertion order.
func (s *Session) Goals(ctx context.Context) ([]model.GoalRef, error) {
	return s.ledger.ListGoals(ctx)
}

// Select chooses the active goal. An id of 0 selects the first goal, if any;
// with no goals the session is left with nothing selected and
// ErrNoGoalSelected is returned.
func (s *Session) Select(ctx context.Context, id int64) (model.Goal, error) {
	if id == 0 {
		goals, err := s.ledger.ListGoals(ctx)
		if err != nil {
			return model.Goal{}, err
		}
		if len(goals) == 0 {
			s.setSelected(0)
			return model.Goal{}, ErrNoGoalSelected
		}
		id = goals[0].ID
	}

	g, err := s.ledger.GetGoal(ctx, id)
	if err != nil {
		return model.Goal{}, err
	}
	s.setSelected(g.ID)
	return g, nil
}

// Selected returns the selected goal id and whether one is selected.
func (s *Session) Selected() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected, s.selected != 0
}

// LogPayment validates and appends a payment to the selected goal.
func (s *Session) LogPayment(ctx context.Context, in PaymentInput) (int64, error) {
	id, _ := s.Selected()
	return s.LogPaymentTo(ctx, id, in)
}

// LogPaymentTo validates and appends a payment to goalID.
func (s *Session) LogPaymentTo(ctx context.Context, goalID int64, in PaymentInput) (int64, error) {
	if goalID == 0 {
		return 0, ErrNoGoalSelected
	}
	if err := s.check(in); err != nil {
		return 0, err
	}

	date := in.Date
	if date.IsZero() {
		date = s.now()
	}

	id, err := s.ledger.LogPayment(ctx, goalID, date, in.USDSent, s.quote.Rate)
	if err != nil {
		return 0, err
	}

	slog.Info("payment logged", "id", id, "goal", goalID, "usd", in.USDSent, "rate", s.quote.Rate)
	return id, nil
}

// Payments lists the selected goal's payments in insertion order.
func (s *Session) Payments(ctx context.Context) ([]model.Payment, error) {
	id, ok := s.Selected()
	if !ok {
		return nil, ErrNoGoalSelected
	}
	return s.ledger.ListPayments(ctx, id)
}

// Dashboard computes the summary and display metrics for the selected goal.
func (s *Session) Dashboard(ctx context.Context) (Dashboard, error) {
	id, _ := s.Selected()
	return s.DashboardFor(ctx, id)
}

// DashboardFor computes the summary and display metrics for goalID.
func (s *Session) DashboardFor(ctx context.Context, goalID int64) (Dashboard, error) {
	if goalID == 0 {
		return Dashboard{}, ErrNoGoalSelected
	}

	g, err := s.ledger.GetGoal(ctx, goalID)
	if err != nil {
		return Dashboard{}, err
	}
	payments, err := s.ledger.ListPayments(ctx, g.ID)
	if err != nil {
		return Dashboard{}, err
	}

	sum := calc.Summarize(g, payments, s.quote.Rate)
	return Dashboard{
		Summary:   sum,
		Payments:  payments,
		Progress:  cli.ProgressMetrics(sum),
		Targets:   cli.TargetMetrics(sum),
		Remaining: cli.RemainingMetrics(sum),
		Caption:   cli.CaptionFor(sum.Progress),
		Words:     cli.AmountWords(g.Amount) + " Rupees",
	}, nil
}

// CustomTarget projects a manually fixed cadence for the selected goal using
// the session's convention.
func (s *Session) CustomTarget(ctx context.Context, in CustomTargetInput) (model.Projection, []model.Metric, error) {
	id, _ := s.Selected()
	return s.CustomTargetFor(ctx, id, in)
}

// CustomTargetFor projects a manually fixed cadence for goalID using the
// session's convention.
func (s *Session) CustomTargetFor(ctx context.Context, goalID int64, in CustomTargetInput) (model.Projection, []model.Metric, error) {
	if goalID == 0 {
		return model.Projection{}, nil, ErrNoGoalSelected
	}
	if err := s.check(in); err != nil {
		return model.Projection{}, nil, err
	}

	g, err := s.ledger.GetGoal(ctx, goalID)
	if err != nil {
		return model.Projection{}, nil, err
	}

	p := projector.Project(s.Convention(), in.Cadence, in.Value, s.quote.Rate, g.Amount)
	return p, cli.ProjectionMetrics(p, calc.BucketsFor(g.Years)), nil
}

func (s *Session) check(v any) error {
	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
