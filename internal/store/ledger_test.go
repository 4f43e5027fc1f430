package store

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/theirongolddev/goalpace/internal/model"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(context.Background(), DriverSQLite, filepath.Join(t.TempDir(), "data", "goals.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestCreateGoal_INR(t *testing.T) {
	ctx := context.Background()
	l := openTestLedger(t)

	id, err := l.CreateGoal(ctx, model.NewGoal{Title: "Car", Amount: 120000, Currency: model.INR, Years: 2}, 83)
	require.NoError(t, err)

	g, err := l.GetGoal(ctx, id)
	require.NoError(t, err)
	require.Equal(t, model.Goal{ID: id, Title: "Car", Amount: 120000, Currency: "INR", Years: 2}, g)
}

func TestCreateGoal_USDConverted(t *testing.T) {
	ctx := context.Background()
	l := openTestLedger(t)

	for _, tc := range []struct{ amount, rate float64 }{{1000, 83.0}, {2500.5, 84.37}, {0, 83}} {
		id, err := l.CreateGoal(ctx, model.NewGoal{Title: "Loan", Amount: tc.amount, Currency: model.USD, Years: 1}, tc.rate)
		require.NoError(t, err)

		g, err := l.GetGoal(ctx, id)
		require.NoError(t, err)
		require.Equal(t, tc.amount*tc.rate, g.Amount)
		require.Equal(t, "INR", g.Currency)
	}
}

func TestCreateGoal_UnknownCurrency(t *testing.T) {
	l := openTestLedger(t)
	_, err := l.CreateGoal(context.Background(), model.NewGoal{Title: "Trip", Amount: 10, Currency: "EUR", Years: 1}, 83)
	require.Error(t, err)
}

func TestListGoals_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	l := openTestLedger(t)

	goals, err := l.ListGoals(ctx)
	require.NoError(t, err)
	require.Empty(t, goals)

	titles := []string{"Zeta", "Alpha", "Mid"}
	var ids []int64
	for _, title := range titles {
		id, err := l.CreateGoal(ctx, model.NewGoal{Title: title, Amount: 1, Currency: model.INR, Years: 1}, 83)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	goals, err = l.ListGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 3)
	for i, g := range goals {
		require.Equal(t, ids[i], g.ID)
		require.Equal(t, titles[i], g.Title)
	}
}

func TestGetGoal_NotFound(t *testing.T) {
	l := openTestLedger(t)
	_, err := l.GetGoal(context.Background(), 42)
	require.ErrorIs(t, err, ErrGoalNotFound)
}

func TestLogPayment_AppendOnly(t *testing.T) {
	ctx := context.Background()
	l := openTestLedger(t)

	goalID, err := l.CreateGoal(ctx, model.NewGoal{Title: "Loan", Amount: 8300, Currency: model.INR, Years: 1}, 83)
	require.NoError(t, err)

	var logged []model.Payment
	rates := []float64{83, 84.5, 82}
	for i, usd := range []float64{10, 20, 30} {
		date := mustDate(t, fmt.Sprintf("2025-01-%02d", i+1))
		id, err := l.LogPayment(ctx, goalID, date, usd, rates[i])
		require.NoError(t, err)
		logged = append(logged, model.Payment{ID: id, GoalID: goalID, Date: date, USDSent: usd, INREquiv: usd * rates[i]})

		got, err := l.ListPayments(ctx, goalID)
		require.NoError(t, err)
		require.Equal(t, logged, got, "after %d payments", i+1)
	}
}

func TestLogPayment_InvalidReference(t *testing.T) {
	ctx := context.Background()
	l := openTestLedger(t)

	_, err := l.LogPayment(ctx, 99, time.Now(), 10, 83)
	require.ErrorIs(t, err, ErrInvalidReference)

	payments, err := l.ListPayments(ctx, 99)
	require.NoError(t, err)
	require.Empty(t, payments)
}

func TestListPayments_ScopedToGoal(t *testing.T) {
	ctx := context.Background()
	l := openTestLedger(t)

	a, err := l.CreateGoal(ctx, model.NewGoal{Title: "A", Amount: 100, Currency: model.INR, Years: 1}, 83)
	require.NoError(t, err)
	b, err := l.CreateGoal(ctx, model.NewGoal{Title: "B", Amount: 100, Currency: model.INR, Years: 1}, 83)
	require.NoError(t, err)

	_, err = l.LogPayment(ctx, a, mustDate(t, "2025-03-01"), 1, 83)
	require.NoError(t, err)
	_, err = l.LogPayment(ctx, b, mustDate(t, "2025-03-02"), 2, 83)
	require.NoError(t, err)

	pa, err := l.ListPayments(ctx, a)
	require.NoError(t, err)
	require.Len(t, pa, 1)
	require.Equal(t, 1.0, pa[0].USDSent)
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "goals.db")

	l, err := Open(ctx, DriverSQLite, path)
	require.NoError(t, err)
	_, err = l.CreateGoal(ctx, model.NewGoal{Title: "Kept", Amount: 5, Currency: model.INR, Years: 1}, 83)
	require.NoError(t, err)
	require.NoError(t, l.Close())

	l, err = Open(ctx, DriverSQLite, path)
	require.NoError(t, err)
	defer l.Close()

	goals, err := l.ListGoals(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.GoalRef{{ID: 1, Title: "Kept"}}, goals)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "x")
	require.Error(t, err)

	_, err = Open(context.Background(), DriverPostgres, "")
	require.Error(t, err)
}

func TestListPayments_MalformedDateIsLogged(t *testing.T) {
	ctx := context.Background()
	l := openTestLedger(t)

	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	id, err := l.CreateGoal(ctx, model.NewGoal{Title: "A", Amount: 100, Currency: model.INR, Years: 1}, 83)
	require.NoError(t, err)
	_, err = l.db.ExecContext(ctx,
		`INSERT INTO payments (goal_id, date, usd_sent, inr_equiv) VALUES (?, ?, ?, ?)`,
		id, "03/01/2025", 1.0, 83.0)
	require.NoError(t, err)

	payments, err := l.ListPayments(ctx, id)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.True(t, payments[0].Date.IsZero())
	require.Contains(t, logs.String(), "payment has malformed date")
	require.Contains(t, logs.String(), "03/01/2025")
}
