// Package store provides the append-only goal and payment ledger.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/goalpace/internal/model"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // register sqlite driver
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

var (
	// ErrGoalNotFound is returned by GetGoal for an unknown id.
	ErrGoalNotFound = errors.New("goal not found")
	// ErrInvalidReference is returned when a payment names a goal that does
	// not exist.
	ErrInvalidReference = errors.New("payment references a nonexistent goal")
)

// Ledger stores goals and payments. Records are only ever inserted.
type Ledger struct {
	db     *sqlx.DB
	driver string
}

// Open connects to the database and applies migrations. For sqlite, dsn is a
// file path whose directory is created if needed.
func Open(ctx context.Context, driver, dsn string) (*Ledger, error) {
	switch driver {
	case "", DriverSQLite:
		driver = DriverSQLite
		if err := os.MkdirAll(filepath.Dir(dsn), 0o750); err != nil {
			return nil, fmt.Errorf("creating data dir: %w", err)
		}
		dsn = sqliteDSN(dsn)
	case DriverPostgres:
		if dsn == "" {
			return nil, errors.New("postgres DSN is required")
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}
	if driver == DriverSQLite {
		// One writer; also keeps :memory: databases on a single connection.
		db.SetMaxOpenConns(1)
	}

	if err := Migrate(ctx, db.DB, driver); err != nil {
		_ = db.Close()
		return nil, err
	}

	slog.Debug("ledger opened", "driver", driver)
	return &Ledger{db: db, driver: driver}, nil
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)"
}

// Close closes the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// CreateGoal stores a new goal. A USD amount is converted to INR at rate
// before storage; the stored currency is always INR.
func (l *Ledger) CreateGoal(ctx context.Context, g model.NewGoal, rate float64) (int64, error) {
	amount := g.Amount
	switch g.Currency {
	case model.INR:
	case model.USD:
		amount = g.Amount * rate
	default:
		return 0, fmt.Errorf("unsupported currency %q", g.Currency)
	}

	var id int64
	err := l.db.QueryRowxContext(ctx,
		l.db.Rebind(`INSERT INTO goals (title, amount, currency, years) VALUES (?, ?, ?, ?) RETURNING id`),
		g.Title, amount, string(model.INR), g.Years,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting goal: %w", err)
	}
	return id, nil
}

// ListGoals returns every goal's id and title in insertion order.
func (l *Ledger) ListGoals(ctx context.Context) ([]model.GoalRef, error) {
	var goals []model.GoalRef
	if err := l.db.SelectContext(ctx, &goals, `SELECT id, title FROM goals ORDER BY id`); err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	return goals, nil
}

// GetGoal returns a goal or ErrGoalNotFound.
func (l *Ledger) GetGoal(ctx context.Context, id int64) (model.Goal, error) {
	var g model.Goal
	err := l.db.GetContext(ctx, &g,
		l.db.Rebind(`SELECT id, title, amount, currency, years FROM goals WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Goal{}, fmt.Errorf("goal %d: %w", id, ErrGoalNotFound)
	}
	if err != nil {
		return model.Goal{}, fmt.Errorf("loading goal %d: %w", id, err)
	}
	return g, nil
}

// LogPayment appends a payment. inr_equiv is computed here from rate and
// never recomputed.
func (l *Ledger) LogPayment(ctx context.Context, goalID int64, date time.Time, usdSent, rate float64) (int64, error) {
	tx, err := l.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.GetContext(ctx, &exists, tx.Rebind(`SELECT COUNT(*) FROM goals WHERE id = ?`), goalID)
	if err != nil {
		return 0, fmt.Errorf("checking goal %d: %w", goalID, err)
	}
	if exists == 0 {
		return 0, fmt.Errorf("goal %d: %w", goalID, ErrInvalidReference)
	}

	var id int64
	err = tx.QueryRowxContext(ctx,
		tx.Rebind(`INSERT INTO payments (goal_id, date, usd_sent, inr_equiv) VALUES (?, ?, ?, ?) RETURNING id`),
		goalID, date.Format(model.DateLayout), usdSent, usdSent*rate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting payment: %w", err)
	}

	return id, tx.Commit()
}

type paymentRow struct {
	ID       int64   `db:"id"`
	GoalID   int64   `db:"goal_id"`
	Date     string  `db:"date"`
	USDSent  float64 `db:"usd_sent"`
	INREquiv float64 `db:"inr_equiv"`
}

// ListPayments returns a goal's payments in insertion order.
func (l *Ledger) ListPayments(ctx context.Context, goalID int64) ([]model.Payment, error) {
	var rows []paymentRow
	err := l.db.SelectContext(ctx, &rows,
		l.db.Rebind(`SELECT id, goal_id, date, usd_sent, inr_equiv FROM payments WHERE goal_id = ? ORDER BY id`),
		goalID)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}

	payments := make([]model.Payment, 0, len(rows))
	for _, r := range rows {
		p := model.Payment{
			ID:       r.ID,
			GoalID:   r.GoalID,
			USDSent:  r.USDSent,
			INREquiv: r.INREquiv,
		}
		// Unparseable dates are kept as zero rather than failing the listing.
		d, err := time.Parse(model.DateLayout, r.Date)
		if err != nil {
			slog.Warn("payment has malformed date", "payment", r.ID, "goal", r.GoalID, "date", r.Date, "error", err)
		}
		p.Date = d
		payments = append(payments, p)
	}
	return payments, nil
}
