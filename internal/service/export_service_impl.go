package service

import (
	"context"
	"time"

	"github.com/rich365/rich365/internal/export"
)

type exportService struct {
	calendar CalendarService
	now      func() time.Time
	observer UseCaseObserver
}

func NewExportService(calendar CalendarService, observers ...UseCaseObserver) ExportService {
	return &exportService{calendar: calendar, now: time.Now, observer: combineObservers(observers)}
}

func (s *exportService) MonthICS(ctx context.Context, userID string, year, month int) (data []byte, err error) {
	startedAt := time.Now()
	fields := map[string]any{"year": year, "month": month}
	defer func() { report(ctx, s.observer, "export-ics", userID, startedAt, fields, err) }()

	actions, err := s.calendar.MonthActions(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}
	fields["events"] = len(actions)
	return export.ICS(year, month, actions, s.now())
}
