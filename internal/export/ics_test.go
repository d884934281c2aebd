package export

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/rich365/rich365/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2025, 1, 15, 8, 30, 0, 0, time.FixedZone("CST", 8*3600))

func sampleActions() []domain.DailyAction {
	return []domain.DailyAction{
		{Date: "2025-01-01", Title: "写下年度目标", Description: "列出3个目标", Emoji: "🎯", Theme: "搞钱觉醒月", Category: domain.CategoryMindset},
		{Date: "2025-01-31", Title: "复盘; 总结, 提升", Description: "第一行\n第二行", Emoji: "📝", Theme: "搞钱觉醒月", Category: domain.CategoryExecution},
	}
}

// render returns the raw output and its content lines with folds undone.
func render(t *testing.T, actions []domain.DailyAction) (string, []string) {
	t.Helper()
	out, err := ICS(2025, 1, actions, stamp)
	require.NoError(t, err)
	raw := string(out)
	unfolded := strings.ReplaceAll(raw, "\r\n ", "")
	return raw, strings.Split(strings.TrimSuffix(unfolded, "\r\n"), "\r\n")
}

func TestICS_Structure(t *testing.T) {
	raw, lines := render(t, sampleActions())

	assert.True(t, strings.HasPrefix(raw, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(raw, "END:VCALENDAR\r\n"))
	assert.NotContains(t, strings.ReplaceAll(raw, "\r\n", ""), "\n", "all line breaks are CRLF")

	assert.Contains(t, lines, "VERSION:2.0")
	assert.Contains(t, lines, "PRODID:-//Rich365//搞钱行动日历//CN")
	assert.Contains(t, lines, "CALSCALE:GREGORIAN")
	assert.Contains(t, lines, "METHOD:PUBLISH")
	assert.Contains(t, lines, "X-WR-CALNAME:搞钱行动日历 - 2025年一月")
	assert.Equal(t, 2, strings.Count(raw, "BEGIN:VEVENT"))
	assert.Equal(t, 2, strings.Count(raw, "END:VEVENT"))
}

func TestICS_EventFields(t *testing.T) {
	_, lines := render(t, sampleActions())

	assert.Contains(t, lines, "UID:action-2025-01-01@rich365.ai")
	assert.Contains(t, lines, "DTSTAMP:20250115T003000Z")
	assert.Contains(t, lines, "DTSTART;VALUE=DATE:20250101")
	assert.Contains(t, lines, "DTEND;VALUE=DATE:20250102")
	assert.Contains(t, lines, "DTEND;VALUE=DATE:20250201", "end rolls into next month")
	assert.Contains(t, lines, "SUMMARY:🎯 写下年度目标")
	assert.Contains(t, lines, "CATEGORIES:mindset")
	assert.Contains(t, lines, "CATEGORIES:搞钱觉醒月")
	assert.Contains(t, lines, "STATUS:CONFIRMED")
	assert.Contains(t, lines, "TRANSP:TRANSPARENT")
	assert.Contains(t, lines, `DESCRIPTION:📅 搞钱觉醒月\n🏷️ 思维\n\n列出3个目标\n\n💡 来自搞钱行动日历 - www.rich365.ai`)
}

func TestICS_EscapesText(t *testing.T) {
	_, lines := render(t, sampleActions())
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, `SUMMARY:📝 复盘\; 总结\, 提升`)
	assert.Contains(t, joined, `第一行\n第二行`)
}

func TestICS_FoldsLongLines(t *testing.T) {
	long := sampleActions()[:1]
	long[0].Description = strings.Repeat("每天学一点理财知识，", 12)
	raw, lines := render(t, long)

	folded := false
	for _, line := range strings.Split(strings.TrimSuffix(raw, "\r\n"), "\r\n") {
		assert.LessOrEqual(t, len(line), 75, "line exceeds 75 octets: %q", line)
		assert.True(t, utf8.ValidString(line), "fold split a UTF-8 sequence: %q", line)
		if strings.HasPrefix(line, " ") {
			folded = true
		}
	}
	assert.True(t, folded)

	var description string
	for _, l := range lines {
		if strings.HasPrefix(l, "DESCRIPTION:") {
			description = l
		}
	}
	assert.Contains(t, description, long[0].Description, "unfolding restores the full text")
}

func TestICS_Invalid(t *testing.T) {
	_, err := ICS(2025, 13, nil, stamp)
	assert.ErrorIs(t, err, domain.ErrInvalidMonth)

	_, err = ICS(2025, 1, []domain.DailyAction{{Date: "bad"}}, stamp)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "搞钱行动日历-2025年三月.ics", FileName(2025, 3))
	assert.Equal(t, "搞钱行动日历-2024年十二月.ics", FileName(2024, 12))
}

func TestEscapedFileName(t *testing.T) {
	got := EscapedFileName(2025, 3)
	assert.NotContains(t, got, "搞")
	assert.True(t, strings.HasSuffix(got, ".ics"))
}
