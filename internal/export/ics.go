// Package export renders month calendars in iCalendar (RFC 5545) form.
package export

import (
	"fmt"
	"net/url"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/theme"
)

const (
	calendarName = "搞钱行动日历"
	calendarDesc = "每天一个搞钱微行动，财富增长一大步"
	eventFooter  = "💡 来自搞钱行动日历 - www.rich365.ai"
	uidDomain    = "rich365.ai"
)

// ContentType is the media type served for ICS downloads.
const ContentType = "text/calendar; charset=utf-8"

// ICS renders one all-day event per action. now stamps every event. Text
// escaping and line folding are left to the serializer.
func ICS(year, month int, actions []domain.DailyAction, now time.Time) ([]byte, error) {
	if !domain.ValidMonth(month) {
		return nil, &domain.ValidationError{Field: "month", Value: fmt.Sprint(month), Err: domain.ErrInvalidMonth}
	}

	cal := ics.NewCalendar()
	cal.SetProductId("-//Rich365//" + calendarName + "//CN")
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName(fmt.Sprintf("%s - %d年%s", calendarName, year, theme.MonthName(month)))
	cal.SetXWRTimezone("Asia/Shanghai")
	cal.SetXWRCalDesc(calendarDesc)

	for _, a := range actions {
		day, err := a.Day()
		if err != nil {
			return nil, err
		}
		event := cal.AddEvent(fmt.Sprintf("action-%s@%s", a.Date, uidDomain))
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(day)
		event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		event.SetSummary(a.Emoji + " " + a.Title)
		event.SetDescription(fmt.Sprintf("📅 %s\n🏷️ %s\n\n%s\n\n%s",
			a.Theme, a.Category.DisplayName(), a.Description, eventFooter))
		if a.Category != "" {
			event.AddProperty(ics.ComponentPropertyCategories, string(a.Category))
		}
		if a.Theme != "" {
			event.AddProperty(ics.ComponentPropertyCategories, a.Theme)
		}
		event.SetProperty(ics.ComponentPropertyStatus, "CONFIRMED")
		event.SetProperty(ics.ComponentPropertyTransp, "TRANSPARENT")
		event.SetProperty(ics.ComponentPropertySequence, "0")
	}

	return []byte(cal.Serialize()), nil
}

// FileName is the suggested download name for a month export.
func FileName(year, month int) string {
	return fmt.Sprintf("%s-%d年%s.ics", calendarName, year, theme.MonthName(month))
}

// EscapedFileName is FileName percent-encoded for a Content-Disposition
// filename* parameter.
func EscapedFileName(year, month int) string {
	return url.PathEscape(FileName(year, month))
}
