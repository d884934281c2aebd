package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wiring "github.com/rich365/rich365/internal/app"
	"github.com/rich365/rich365/internal/intelligence"
	"github.com/rich365/rich365/internal/progress"
	"github.com/rich365/rich365/internal/service"
	"github.com/rich365/rich365/internal/testutil"
)

var shanghai = time.FixedZone("CST", 8*3600)

// fixedNow is 2025-03-10 09:00 in Shanghai.
func fixedNow() time.Time {
	return time.Date(2025, 3, 10, 9, 0, 0, 0, shanghai)
}

// testApp wires a full App backed by an in-memory DB. The LLM is left out,
// so generation always takes the template path.
func testApp(t *testing.T) *App {
	t.Helper()
	svc, err := wiring.Build(wiring.Deps{
		DB:        testutil.NewTestDB(t),
		Location:  shanghai,
		Clock:     fixedNow,
		CacheSize: 16,
	})
	require.NoError(t, err)
	return &App{
		Profiles:      svc.Profiles,
		Calendar:      svc.Calendar,
		Generation:    svc.Generation,
		CheckIns:      svc.CheckIns,
		Leaderboard:   svc.Leaderboard,
		Export:        svc.Export,
		Clock:         fixedNow,
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a fresh command tree and captures stdout and stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	app.userFlag = ""
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func onboard(t *testing.T, app *App, extra ...string) {
	t.Helper()
	args := append([]string{"onboard", "--mbti", "INTJ", "--role", "investor", "--name", "小明", "--generate=false"}, extra...)
	_, err := executeCmd(t, app, args...)
	require.NoError(t, err)
}

func TestOnboard_NonInteractiveRequiresFlags(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "onboard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--mbti")
}

func TestOnboard_InvalidPersonality(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "onboard", "--mbti", "ABCD", "--role", "investor")
	require.Error(t, err)
}

func TestOnboard_GeneratesYear(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app, "onboard", "--mbti", "ENFP", "--role", "creator", "--goal", "副业月入一万")
	require.NoError(t, err)
	assert.Contains(t, out, "竞选者")
	assert.Contains(t, out, "副业月入一万")
	assert.Contains(t, out, "保存 365 条行动")

	out, err = executeCmd(t, app, "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "跳过")
}

func TestCommands_RequireUser(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "today")
	require.ErrorIs(t, err, service.ErrNoCurrentUser)
	assert.Contains(t, err.Error(), "rich365 onboard")
}

func TestProfileCommands(t *testing.T) {
	app := testApp(t)
	onboard(t, app)

	out, err := executeCmd(t, app, "profile")
	require.NoError(t, err)
	assert.Contains(t, out, "小明")
	assert.Contains(t, out, "建筑师")

	out, err = executeCmd(t, app, "profile", "set", "--name", "老王", "--goal", "存够十万")
	require.NoError(t, err)
	assert.Contains(t, out, "老王")
	assert.Contains(t, out, "存够十万")
	assert.Contains(t, out, "建筑师")

	out, err = executeCmd(t, app, "profile", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "老王")
	assert.Contains(t, out, "INTJ")
}

func TestUserFlagPrefix(t *testing.T) {
	app := testApp(t)
	onboard(t, app)
	u, err := app.Profiles.Current(t.Context())
	require.NoError(t, err)

	out, err := executeCmd(t, app, "--user", u.ID[:6], "profile")
	require.NoError(t, err)
	assert.Contains(t, out, "小明")

	_, err = executeCmd(t, app, "--user", "zzzzzz", "profile")
	require.Error(t, err)
}

func TestCalendarCommands(t *testing.T) {
	app := testApp(t)
	onboard(t, app)

	out, err := executeCmd(t, app, "month", "2025", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "2025年 三月")
	assert.Contains(t, out, "策略与复利月")
	assert.Contains(t, out, "03-01")
	assert.Contains(t, out, "03-31")

	out, err = executeCmd(t, app, "today")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-03-10")
	assert.Contains(t, out, "今天")

	out, err = executeCmd(t, app, "day", "2025-03-11")
	require.NoError(t, err)
	assert.Contains(t, out, "明天")

	_, err = executeCmd(t, app, "day", "bogus")
	require.Error(t, err)

	_, err = executeCmd(t, app, "month", "2025", "13")
	require.Error(t, err)

	out, err = executeCmd(t, app, "themes", "2025")
	require.NoError(t, err)
	assert.Contains(t, out, "资产配置月")
	assert.Contains(t, out, "十二月")
}

func TestMonthIsStableAcrossCalls(t *testing.T) {
	app := testApp(t)
	onboard(t, app)

	first, err := executeCmd(t, app, "month", "2025", "4")
	require.NoError(t, err)
	second, err := executeCmd(t, app, "month", "2025", "4")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCheckInCommands(t *testing.T) {
	app := testApp(t)
	onboard(t, app)

	out, err := executeCmd(t, app, "checkin", "--note", "读完一章")
	require.NoError(t, err)
	assert.Contains(t, out, "打卡成功")
	assert.Contains(t, out, "1 天")

	_, err = executeCmd(t, app, "checkin")
	require.ErrorIs(t, err, progress.ErrAlreadyCheckedIn)

	_, err = executeCmd(t, app, "checkin", "tomorrow")
	require.ErrorIs(t, err, progress.ErrFutureDate)

	out, err = executeCmd(t, app, "checkin", "昨天")
	require.NoError(t, err)
	assert.Contains(t, out, "2 天")

	out, err = executeCmd(t, app, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "累计打卡")
	assert.Contains(t, out, "种子")

	out, err = executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-03-10")
	assert.Contains(t, out, "2025-03-09")
	assert.Contains(t, out, "读完一章")

	out, err = executeCmd(t, app, "month")
	require.NoError(t, err)
	assert.Contains(t, out, "✔")
}

func TestLeaderboardCommands(t *testing.T) {
	app := testApp(t)
	onboard(t, app)
	_, err := executeCmd(t, app, "checkin")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "leaderboard")
	require.NoError(t, err)
	assert.Contains(t, out, "连续打卡榜")
	assert.Contains(t, out, "小明 (我)")

	out, err = executeCmd(t, app, "leaderboard", "--kind", "total")
	require.NoError(t, err)
	assert.Contains(t, out, "累计打卡榜")

	_, err = executeCmd(t, app, "leaderboard", "--kind", "coins")
	require.ErrorIs(t, err, service.ErrInvalidLeaderboardKind)

	out, err = executeCmd(t, app, "rank")
	require.NoError(t, err)
	assert.Contains(t, out, "第 1 名")
	assert.Contains(t, out, "共 1 人")
}

func TestGenerateCommands(t *testing.T) {
	app := testApp(t)
	onboard(t, app, "--goal", "年底前副业月入一万")

	out, err := executeCmd(t, app, "generate", "2025", "--month", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "2025 年二月")
	assert.Contains(t, out, "保存 28 条行动")
	assert.Contains(t, out, "模板生成")

	out, err = executeCmd(t, app, "plan", "2025")
	require.NoError(t, err)
	assert.Contains(t, out, "2025 年度规划")
	assert.Contains(t, out, "第12月")

	out, err = executeCmd(t, app, "goal")
	require.NoError(t, err)
	assert.Contains(t, out, "年底前副业月入一万")
	assert.Contains(t, out, "1. ")
	assert.Contains(t, out, "3. ")

	out, err = executeCmd(t, app, "goal", "check", "多赚点钱")
	require.NoError(t, err)
	assert.Contains(t, out, "目标清晰可执行")
}

func TestGoal_RequiresGoal(t *testing.T) {
	app := testApp(t)
	onboard(t, app)
	_, err := executeCmd(t, app, "goal")
	require.ErrorIs(t, err, intelligence.ErrGoalRequired)
}

func TestExportCommand(t *testing.T) {
	app := testApp(t)
	onboard(t, app)

	path := filepath.Join(t.TempDir(), "march.ics")
	out, err := executeCmd(t, app, "export", "2025", "3", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "BEGIN:VCALENDAR"))
	assert.Equal(t, 31, strings.Count(string(data), "BEGIN:VEVENT"))

	out, err = executeCmd(t, app, "export", "2025", "2", "-o", "-")
	require.NoError(t, err)
	assert.Equal(t, 28, strings.Count(out, "BEGIN:VEVENT"))
}

func TestBrowse_RequiresTerminal(t *testing.T) {
	app := testApp(t)
	onboard(t, app)
	_, err := executeCmd(t, app, "browse")
	require.Error(t, err)
}

func TestResolveYearMonth(t *testing.T) {
	y, m, err := resolveYearMonth(nil, fixedNow())
	require.NoError(t, err)
	assert.Equal(t, 2025, y)
	assert.Equal(t, 3, m)

	y, m, err = resolveYearMonth([]string{"2026", "12"}, fixedNow())
	require.NoError(t, err)
	assert.Equal(t, 2026, y)
	assert.Equal(t, 12, m)

	_, _, err = resolveYearMonth([]string{"x"}, fixedNow())
	require.Error(t, err)
	_, _, err = resolveYearMonth([]string{"2025", "0"}, fixedNow())
	require.Error(t, err)
}

func TestResolveDate(t *testing.T) {
	for input, want := range map[string]string{
		"":           "2025-03-10",
		"今天":         "2025-03-10",
		"yesterday":  "2025-03-09",
		"明天":         "2025-03-11",
		"2024-02-29": "2024-02-29",
	} {
		got, err := resolveDate(input, fixedNow())
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
	_, err := resolveDate("2025-02-30", fixedNow())
	require.Error(t, err)
}
