// Package tui provides the interactive Bubble Tea dashboard for goalpace.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/goalpace/internal/cli"
	"github.com/theirongolddev/goalpace/internal/model"
	"github.com/theirongolddev/goalpace/internal/projector"
	"github.com/theirongolddev/goalpace/internal/session"
	"github.com/theirongolddev/goalpace/internal/tui/components"
	"github.com/theirongolddev/goalpace/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// loadedMsg carries the goal list and the selected goal's dashboard.
type loadedMsg struct {
	goals []model.GoalRef
	dash  *session.Dashboard // nil when no goal is selected
	err   error
}

// doneMsg reports a finished user action. selectID, when set, is the goal to
// show after reloading.
type doneMsg struct {
	status   string
	selectID int64
	err      error
}

// projectionMsg carries a custom target projection for goalID.
type projectionMsg struct {
	goalID  int64
	input   session.CustomTargetInput
	metrics []model.Metric
	err     error
}

// App is the root Bubble Tea model.
type App struct {
	ctx  context.Context
	sess *session.Session

	// Data
	goals   []model.GoalRef
	dash    *session.Dashboard
	loaded  bool
	cursor  int   // sidebar position
	startID int64 // goal requested on the command line

	// Custom target for the selected goal
	target        *session.CustomTargetInput
	targetMetrics []model.Metric

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	status    string
	statusErr bool

	// Active huh form, if any
	form      *huh.Form
	formKind  formKind
	needSetup bool
	setupVals SetupValues
	goalVals  goalValues
	payVals   paymentValues
	tgtVals   targetValues

	spinner spinner.Model
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180
	sidebarWidth     = 24

	minContentHeight = 5 // minimum content area height
)

// NewApp creates a new TUI app model. goalID selects the initial goal; 0
// means the first goal.
func NewApp(ctx context.Context, sess *session.Session, goalID int64, needSetup bool) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		ctx:       ctx,
		sess:      sess,
		startID:   goalID,
		needSetup: needSetup,
		spinner:   sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadCmd(a.ctx, a.sess, a.startID),
		a.spinner.Tick,
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth()).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.form != nil {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if !a.loaded {
			return a, nil
		}
		if a.form != nil {
			return a.updateForm(msg)
		}
		return a.updateKeys(msg)

	case loadedMsg:
		a.loaded = true
		a.goals = msg.goals
		a.dash = msg.dash
		if msg.err != nil {
			a.setStatus(msg.err.Error(), true)
		}
		a.syncCursor()

		// First run: offer setup once the ledger is reachable.
		if a.needSetup {
			a.needSetup = false
			a.setupVals = SetupValuesFrom(loadConfigOrDefault())
			return a.openForm(formSetup, NewSetupForm(&a.setupVals))
		}
		return a, nil

	case doneMsg:
		if msg.err != nil {
			a.setStatus(msg.err.Error(), true)
			return a, nil
		}
		a.setStatus(msg.status, false)
		if msg.selectID != 0 {
			a.target = nil
			a.targetMetrics = nil
		}
		id := msg.selectID
		if id == 0 && a.dash != nil {
			id = a.dash.Summary.Goal.ID
		}
		cmds := []tea.Cmd{loadCmd(a.ctx, a.sess, id)}
		if a.target != nil && msg.selectID == 0 && id != 0 {
			cmds = append(cmds, projectCmd(a.ctx, a.sess, id, *a.target))
		}
		return a, tea.Batch(cmds...)

	case projectionMsg:
		// A projection for a goal that is no longer on screen is stale.
		if a.dash == nil || a.dash.Summary.Goal.ID != msg.goalID {
			return a, nil
		}
		if msg.err != nil {
			a.setStatus(msg.err.Error(), true)
			return a, nil
		}
		in := msg.input
		a.target = &in
		a.targetMetrics = msg.metrics
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the active form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	a.status = ""

	switch key {
	case "q":
		return a, tea.Quit

	case "j", "down":
		if a.cursor < len(a.goals)-1 {
			a.cursor++
			return a.selectCursor()
		}
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
			return a.selectCursor()
		}

	case "n":
		a.goalVals = goalValues{}
		return a.openForm(formGoal, newGoalForm(&a.goalVals))
	case "p":
		if a.dash == nil {
			a.setStatus("No goal selected. Press n to create one.", true)
			return a, nil
		}
		a.payVals = paymentValues{}
		return a.openForm(formPayment, newPaymentForm(&a.payVals, time.Now()))
	case "t":
		if a.dash == nil {
			a.setStatus("No goal selected. Press n to create one.", true)
			return a, nil
		}
		a.tgtVals = targetValues{}
		a.activeTab = 2
		return a.openForm(formTarget, newTargetForm(&a.tgtVals, a.targetUnit()))
	case "c":
		// Toggle the custom target convention and re-project.
		if a.sess.Convention() == projector.ConventionINR {
			a.sess.SetConvention(projector.ConventionUSD)
		} else {
			a.sess.SetConvention(projector.ConventionINR)
		}
		a.setStatus("Custom targets entered in "+a.targetUnit(), false)
		if a.target != nil && a.dash != nil {
			return a, projectCmd(a.ctx, a.sess, a.dash.Summary.Goal.ID, *a.target)
		}

	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	default:
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.cursor > 0 {
			a.cursor--
			return a.selectCursor()
		}
	case tea.MouseButtonWheelDown:
		if a.cursor < len(a.goals)-1 {
			a.cursor++
			return a.selectCursor()
		}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		if msg.X < sidebarWidth {
			if i := msg.Y - sidebarHeaderLines; i >= 0 && i < len(a.goals) && i != a.cursor {
				a.cursor = i
				return a.selectCursor()
			}
			return a, nil
		}
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X - sidebarWidth); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

// selectCursor loads the goal under the sidebar cursor. A custom target
// belongs to one goal, so it is cleared.
func (a App) selectCursor() (tea.Model, tea.Cmd) {
	a.target = nil
	a.targetMetrics = nil
	return a, loadCmd(a.ctx, a.sess, a.goals[a.cursor].ID)
}

// syncCursor points the sidebar cursor at the selected goal.
func (a *App) syncCursor() {
	if a.dash == nil {
		a.cursor = 0
		return
	}
	for i, g := range a.goals {
		if g.ID == a.dash.Summary.Goal.ID {
			a.cursor = i
			return
		}
	}
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
}

func (a App) targetUnit() string {
	if a.sess.Convention() == projector.ConventionINR {
		return "INR"
	}
	return "USD"
}

// ─── Forms ──────────────────────────────────────────────────────

func (a App) openForm(kind formKind, f *huh.Form) (tea.Model, tea.Cmd) {
	a.formKind = kind
	a.form = f
	if a.width > 0 {
		a.form = a.form.WithWidth(a.formWidth()).WithHeight(a.height)
	}
	return a, a.form.Init()
}

func (a App) formWidth() int {
	w := a.width - 8
	if w > 70 {
		w = 70
	}
	if w < 30 {
		w = 30
	}
	return w
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		kind := a.formKind
		a.form = nil
		a.formKind = formNone
		return a, a.submit(kind)
	case huh.StateAborted:
		a.form = nil
		a.formKind = formNone
		return a, nil
	}
	return a, cmd
}

// submit runs the action for a completed form.
func (a App) submit(kind formKind) tea.Cmd {
	ctx, sess := a.ctx, a.sess
	switch kind {
	case formSetup:
		vals := a.setupVals
		if conv, err := projector.ParseConvention(vals.Convention); err == nil {
			sess.SetConvention(conv)
		}
		return func() tea.Msg {
			if err := saveSetupConfig(vals); err != nil {
				return doneMsg{err: fmt.Errorf("could not save config: %w", err)}
			}
			return doneMsg{status: "Settings saved"}
		}

	case formGoal:
		in := a.goalVals.input()
		return func() tea.Msg {
			id, err := sess.CreateGoal(ctx, in)
			if err != nil {
				return doneMsg{err: err}
			}
			return doneMsg{status: fmt.Sprintf("Goal %q created", in.Title), selectID: id}
		}

	case formPayment:
		if a.dash == nil {
			return nil
		}
		in := a.payVals.input()
		goalID := a.dash.Summary.Goal.ID
		return func() tea.Msg {
			if _, err := sess.LogPaymentTo(ctx, goalID, in); err != nil {
				return doneMsg{err: err}
			}
			return doneMsg{status: "Payment logged: " + cli.FormatUSD(in.USDSent)}
		}

	case formTarget:
		if a.dash == nil {
			return nil
		}
		return projectCmd(ctx, sess, a.dash.Summary.Goal.ID, a.tgtVals.input())
	}
	return nil
}

// ─── Commands ───────────────────────────────────────────────────

// loadCmd selects id (0 for the first goal) and computes its dashboard. The
// dashboard is computed for the goal this command selected, not whatever the
// session holds when it finishes.
func loadCmd(ctx context.Context, sess *session.Session, id int64) tea.Cmd {
	return func() tea.Msg {
		goals, err := sess.Goals(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}

		g, err := sess.Select(ctx, id)
		if err != nil {
			if errors.Is(err, session.ErrNoGoalSelected) {
				return loadedMsg{goals: goals}
			}
			// Fall back to the first goal when the requested one is gone.
			first, err2 := sess.Select(ctx, 0)
			if err2 != nil {
				return loadedMsg{goals: goals, err: err}
			}
			g = first
		}

		d, err := sess.DashboardFor(ctx, g.ID)
		if err != nil {
			return loadedMsg{goals: goals, err: err}
		}
		return loadedMsg{goals: goals, dash: &d}
	}
}

func projectCmd(ctx context.Context, sess *session.Session, goalID int64, in session.CustomTargetInput) tea.Cmd {
	return func() tea.Msg {
		_, metrics, err := sess.CustomTargetFor(ctx, goalID, in)
		return projectionMsg{goalID: goalID, input: in, metrics: metrics, err: err}
	}
}

// ─── Views ──────────────────────────────────────────────────────

func (a App) contentWidth() int {
	cw := a.width - sidebarWidth
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.form != nil {
		return a.viewForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  goalpace needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	body := logoStyle.Render("◈ goalpace") + "\n\n" +
		a.spinner.View() + subtitleStyle.Render(" Loading goals...")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewForm() string {
	t := theme.Active

	titles := map[formKind]string{
		formSetup:   "◈ Setup",
		formGoal:    "◈ New Goal",
		formPayment: "◈ Log a Payment",
		formTarget:  "◈ Custom Target",
	}

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	body := titleStyle.Render(titles[a.formKind]) + "\n\n" +
		a.form.View() + "\n" +
		hintStyle.Render("enter next · esc cancel")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2).
		Render(body)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"j k", "Select goal"},
		{"1 2 3", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"n", "New goal"},
		{"p", "Log a payment"},
		{"t", "Custom target"},
		{"c", "Switch target currency (USD / INR)"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w, h := a.width, a.height
	cw := a.contentWidth()

	q := a.sess.Quote()
	statusBar := components.RenderStatusBar(w,
		fmt.Sprintf("%s (%s)", cli.FormatRate(q.Rate), q.Source), a.status, a.statusErr)
	header := components.RenderTabBar(a.activeTab, cw)

	bodyH := h - lipgloss.Height(statusBar)
	contentH := max(bodyH-lipgloss.Height(header), minContentHeight)

	var content string
	switch {
	case a.dash == nil:
		content = a.renderNoGoal(cw, contentH)
	case a.activeTab == 0:
		content = a.renderOverviewTab(cw)
	case a.activeTab == 1:
		content = a.renderPaymentsTab(cw, contentH)
	case a.activeTab == 2:
		content = a.renderTargetsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)

	main := lipgloss.JoinVertical(lipgloss.Left, header, content)
	body := lipgloss.JoinHorizontal(lipgloss.Top, a.renderSidebar(bodyH), main)
	output := lipgloss.JoinVertical(lipgloss.Left, body, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// sidebarHeaderLines is the number of lines above the first goal row.
const sidebarHeaderLines = 2

func (a App) renderSidebar(h int) string {
	t := theme.Active

	base := lipgloss.NewStyle().Background(t.Surface).Width(sidebarWidth)
	titleStyle := base.Foreground(t.Accent).Bold(true)
	itemStyle := base.Foreground(t.TextMuted)
	selStyle := base.Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	dimStyle := base.Foreground(t.TextDim)

	lines := []string{titleStyle.Render(" Goals"), base.Render("")}
	if len(a.goals) == 0 {
		lines = append(lines, dimStyle.Render(" none yet"), dimStyle.Render(" [n] new goal"))
	}
	for i, g := range a.goals {
		label := " " + truncStr(g.Title, sidebarWidth-3)
		if a.dash != nil && i == a.cursor {
			lines = append(lines, selStyle.Render("▸"+label))
		} else {
			lines = append(lines, itemStyle.Render(" "+label))
		}
	}

	out := strings.Join(lines, "\n")
	out = padHeight(truncateHeight(out, h), h)
	return fillLinesWithBackground(out, sidebarWidth, t.Surface)
}

func (a App) renderNoGoal(cw, h int) string {
	t := theme.Active

	warn := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).Bold(true)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	key := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	body := warn.Render("No goal selected.") + "\n\n" +
		muted.Render("Create or select one from the sidebar.") + "\n" +
		muted.Render("Press ") + key.Render("n") + muted.Render(" to create a goal.")

	card := components.ContentCard("", body, min(cw, 60))
	return lipgloss.Place(cw, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// tabAtX returns the tab index at x within the content area, or -1.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // separator
	}
	return -1
}

// ─── Helpers ────────────────────────────────────────────────────

// metricLines renders label/value rows for use inside a card.
func metricLines(metrics []model.Metric) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	gap := lipgloss.NewStyle().Background(t.Surface).Render("  ")

	labelW := 0
	for _, m := range metrics {
		labelW = max(labelW, lipgloss.Width(m.Label))
	}

	lines := make([]string, 0, len(metrics))
	for _, m := range metrics {
		lines = append(lines, labelStyle.Render(fmt.Sprintf("%-*s", labelW, m.Label))+gap+valueStyle.Render(m.Value))
	}
	return strings.Join(lines, "\n")
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
