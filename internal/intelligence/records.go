package intelligence

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/rich365/rich365/internal/domain"
)

// ErrNoValidRecords means the model answered but nothing survived validation.
var ErrNoValidRecords = errors.New("no valid records in llm output")

// actionRecord is one day as emitted by the model.
type actionRecord struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Theme       string `json:"theme"`
	Category    string `json:"category"`
}

// themeRecord is one month of a yearly plan as emitted by the model.
type themeRecord struct {
	RelativeMonth int    `json:"relativeMonth"`
	Theme         string `json:"theme"`
	Description   string `json:"description"`
	Emoji         string `json:"emoji"`
}

func requireAny[T any](items []T) error {
	if len(items) == 0 {
		return errors.New("empty array")
	}
	return nil
}

// toActions keeps records that have every required field and a date inside
// [from, to]. The first record wins when a date repeats. Output is sorted by
// date. themeFor fills records that omit a theme.
func toActions(records []actionRecord, from, to string, themeFor func(month int) string) ([]domain.DailyAction, int) {
	seen := make(map[string]bool, len(records))
	out := make([]domain.DailyAction, 0, len(records))
	dropped := 0

	for _, r := range records {
		a := domain.DailyAction{
			Date:        strings.TrimSpace(r.Date),
			Title:       strings.TrimSpace(r.Title),
			Description: strings.TrimSpace(r.Description),
			Emoji:       strings.TrimSpace(r.Emoji),
			Theme:       strings.TrimSpace(r.Theme),
			Category:    domain.Category(strings.TrimSpace(r.Category)),
		}
		if !a.Category.Valid() {
			a.Category = ""
		}
		day, err := domain.ParseDate(a.Date)
		if err != nil || a.Date < from || a.Date > to || seen[a.Date] {
			dropped++
			continue
		}
		if a.Theme == "" && themeFor != nil {
			a.Theme = themeFor(int(day.Month()))
		}
		if a.Title == "" || a.Description == "" || a.Emoji == "" || a.Theme == "" {
			dropped++
			continue
		}
		seen[a.Date] = true
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, dropped
}

// toThemes keeps one valid record per relative month 1..12.
func toThemes(records []themeRecord) map[int]themeRecord {
	out := make(map[int]themeRecord, 12)
	for _, r := range records {
		r.Theme = strings.TrimSpace(r.Theme)
		if r.RelativeMonth < 1 || r.RelativeMonth > 12 || r.Theme == "" {
			continue
		}
		if _, dup := out[r.RelativeMonth]; dup {
			continue
		}
		out[r.RelativeMonth] = r
	}
	return out
}

var numberedLine = regexp.MustCompile(`^\s*\d+\s*[.、)）:：]\s*(.+?)\s*$`)

// parseNumberedLines extracts up to n items from "1. ..." style output.
func parseNumberedLines(text string, n int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		m := numberedLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		item := strings.Trim(m[1], "*_ ")
		if item == "" {
			continue
		}
		out = append(out, item)
		if len(out) == n {
			break
		}
	}
	return out
}

// parseVerdict reads a VALID / INVALID answer. Anything else counts as
// valid.
func parseVerdict(text string) (valid bool, suggestion string) {
	t := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(t, "VALID"):
		return true, ""
	case strings.HasPrefix(t, "INVALID"):
		s := strings.TrimSpace(strings.TrimPrefix(t, "INVALID"))
		s = strings.TrimLeft(s, "，,、:： ")
		return false, strings.TrimSpace(s)
	default:
		return true, ""
	}
}

func describeDrop(kept, dropped int) string {
	return fmt.Sprintf("kept %d, dropped %d", kept, dropped)
}
