package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rich365/rich365/internal/cli/formatter"
	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/theme"
)

type browseKeyMap struct {
	PrevMonth key.Binding
	NextMonth key.Binding
	Up        key.Binding
	Down      key.Binding
	Today     key.Binding
	CheckIn   key.Binding
	Note      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		PrevMonth: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "上个月")),
		NextMonth: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "下个月")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "前一天")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "后一天")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "今天")),
		CheckIn:   key.NewBinding(key.WithKeys("c", "enter"), key.WithHelp("c", "打卡")),
		Note:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "带备注打卡")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "帮助")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "退出")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevMonth, k.NextMonth, k.CheckIn, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Today},
		{k.PrevMonth, k.NextMonth},
		{k.CheckIn, k.Note},
		{k.Help, k.Quit},
	}
}

type monthLoadedMsg struct {
	year, month int
	theme       *domain.MonthTheme
	actions     []domain.DailyAction
	checked     map[string]bool
	err         error
}

type checkInDoneMsg struct {
	date   string
	status string
	err    error
}

// browseModel is a month-at-a-time calendar with check-in.
type browseModel struct {
	app    *App
	ctx    context.Context
	userID string

	year, month int
	cursor      int
	theme       *domain.MonthTheme
	actions     []domain.DailyAction
	checked     map[string]bool

	loading bool
	err     error
	status  string

	noting bool
	note   textinput.Model
	keys   browseKeyMap
	help   help.Model
}

func newBrowseModel(ctx context.Context, app *App, userID string, year, month int) *browseModel {
	ti := textinput.New()
	ti.Placeholder = "今天做了什么"
	ti.CharLimit = 200
	return &browseModel{
		app:     app,
		ctx:     ctx,
		userID:  userID,
		year:    year,
		month:   month,
		loading: true,
		note:    ti,
		keys:    newBrowseKeyMap(),
		help:    help.New(),
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.load(m.year, m.month)
}

func (m *browseModel) load(year, month int) tea.Cmd {
	app, ctx, userID := m.app, m.ctx, m.userID
	return func() tea.Msg {
		msg := monthLoadedMsg{year: year, month: month}
		if msg.theme, msg.err = app.Calendar.MonthTheme(ctx, userID, year, month); msg.err != nil {
			return msg
		}
		if msg.actions, msg.err = app.Calendar.MonthActions(ctx, userID, year, month); msg.err != nil {
			return msg
		}
		msg.checked, msg.err = checkedDates(ctx, app, userID,
			domain.FormatDate(year, month, 1), domain.FormatDate(year, month, domain.DaysInMonth(year, month)))
		return msg
	}
}

func (m *browseModel) checkIn(date, note string) tea.Cmd {
	app, ctx, userID := m.app, m.ctx, m.userID
	return func() tea.Msg {
		res, err := app.CheckIns.CheckIn(ctx, userID, date, note)
		if err != nil {
			return checkInDoneMsg{date: date, err: err}
		}
		status := fmt.Sprintf("✔ %s 打卡成功 · 连续 %d 天 · 金币 %d", date, res.Stats.CurrentStreak, res.Stats.TotalCoins)
		for _, b := range res.NewBadges {
			status += fmt.Sprintf(" · 获得 %s %s", b.Emoji, b.Name)
		}
		return checkInDoneMsg{date: date, status: status}
	}
}

func shiftMonth(year, month, delta int) (int, int) {
	t := time.Date(year, time.Month(month)+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), int(t.Month())
}

func (m *browseModel) selected() (domain.DailyAction, bool) {
	if m.cursor < 0 || m.cursor >= len(m.actions) {
		return domain.DailyAction{}, false
	}
	return m.actions[m.cursor], true
}

// focusDate moves the cursor to date when the month has it.
func (m *browseModel) focusDate(date string) {
	for i, a := range m.actions {
		if a.Date == date {
			m.cursor = i
			return
		}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case monthLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.year, m.month = msg.year, msg.month
		m.theme, m.actions, m.checked = msg.theme, msg.actions, msg.checked
		m.cursor = 0
		m.focusDate(m.app.now().Format(domain.DateLayout))
		return m, nil

	case checkInDoneMsg:
		if msg.err != nil {
			m.status = formatter.StyleRed.Render("✗ " + msg.err.Error())
			return m, nil
		}
		m.checked[msg.date] = true
		m.status = formatter.StyleGreen.Render(msg.status)
		return m, nil

	case tea.KeyMsg:
		if m.noting {
			return m.updateNote(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *browseModel) updateNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.noting = false
		m.note.Blur()
		m.note.SetValue("")
		return m, nil
	case tea.KeyEnter:
		m.noting = false
		m.note.Blur()
		note := strings.TrimSpace(m.note.Value())
		m.note.SetValue("")
		if a, ok := m.selected(); ok {
			return m, m.checkIn(a.Date, note)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.note, cmd = m.note.Update(msg)
	return m, cmd
}

func (m *browseModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case m.loading:
		return m, nil
	case key.Matches(msg, m.keys.PrevMonth), key.Matches(msg, m.keys.NextMonth):
		delta := 1
		if key.Matches(msg, m.keys.PrevMonth) {
			delta = -1
		}
		y, mo := shiftMonth(m.year, m.month, delta)
		m.loading = true
		m.status = ""
		return m, m.load(y, mo)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.actions)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Today):
		now := m.app.now()
		if now.Year() != m.year || int(now.Month()) != m.month {
			m.loading = true
			return m, m.load(now.Year(), int(now.Month()))
		}
		m.focusDate(now.Format(domain.DateLayout))
	case key.Matches(msg, m.keys.CheckIn):
		if a, ok := m.selected(); ok {
			return m, m.checkIn(a.Date, "")
		}
	case key.Matches(msg, m.keys.Note):
		if _, ok := m.selected(); ok {
			m.noting = true
			return m, m.note.Focus()
		}
	}
	return m, nil
}

func (m *browseModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("错误: "+m.err.Error()) + "\n\n" + m.help.View(m.keys)
	}
	if m.loading || m.theme == nil {
		return formatter.Dim("加载中…")
	}

	var b strings.Builder
	now := m.app.now()
	b.WriteString(formatter.Header(fmt.Sprintf("%s %s · %s", m.theme.Emoji,
		formatter.MonthLabel(m.year, theme.MonthName(m.month)), m.theme.Theme)))
	b.WriteString("\n\n")

	for i, a := range m.actions {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("▸ ")
		}
		mark := "  "
		if m.checked[a.Date] {
			mark = formatter.StyleGreen.Render("✔ ")
		}
		line := fmt.Sprintf("%s%s%s %s %s %s", cursor, mark, a.Date[8:], a.Emoji, a.Title, formatter.CategoryTag(a.Category))
		if i == m.cursor {
			line = formatter.Bold(line)
		}
		b.WriteString(line + "\n")
	}

	if a, ok := m.selected(); ok {
		b.WriteString("\n")
		b.WriteString(formatter.FormatDay(&a, m.checked[a.Date], now))
		b.WriteString("\n")
	}
	if m.noting {
		b.WriteString("\n备注: " + m.note.View() + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [year] [month]",
		Short: "Browse the calendar interactively",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("browse needs an interactive terminal; use `rich365 month` instead")
			}
			ctx := cmd.Context()
			year, month, err := resolveYearMonth(args, app.now())
			if err != nil {
				return err
			}
			u, err := resolveUser(ctx, app)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(newBrowseModel(ctx, app, u.ID, year, month), tea.WithAltScreen()).Run()
			return err
		},
	}
}
