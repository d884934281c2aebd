package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/export"
)

func (s *Server) health(c *gin.Context) {
	ok(c, gin.H{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
}

func yearMonth(c *gin.Context) (year, month int, valid bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 || year > 9999 {
		fail(c, http.StatusBadRequest, "invalid year")
		return 0, 0, false
	}
	if c.Param("month") == "" {
		return year, 0, true
	}
	month, err = strconv.Atoi(c.Param("month"))
	if err != nil || !domain.ValidMonth(month) {
		fail(c, http.StatusBadRequest, domain.ErrInvalidMonth.Error())
		return 0, 0, false
	}
	return year, month, true
}

func (s *Server) getProfile(c *gin.Context) {
	u, err := s.svc.Profiles.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, toUserView(u))
}

type profileRequest struct {
	MBTI     string `json:"mbti" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Goal     string `json:"goal"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

func (s *Server) putProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid profile: "+err.Error())
		return
	}
	p := domain.Profile{
		PersonalityType: domain.PersonalityType(strings.ToUpper(strings.TrimSpace(req.MBTI))),
		Role:            domain.Role(strings.TrimSpace(req.Role)),
		Goal:            req.Goal,
	}
	u, err := s.svc.Profiles.SaveProfile(c.Request.Context(), c.Param("id"), p, req.Username, req.Avatar)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, toUserView(u))
}

func (s *Server) monthActions(c *gin.Context) {
	year, month, valid := yearMonth(c)
	if !valid {
		return
	}
	ctx := c.Request.Context()
	actions, err := s.svc.Calendar.MonthActions(ctx, c.Param("id"), year, month)
	if err != nil {
		failErr(c, err)
		return
	}
	mt, err := s.svc.Calendar.MonthTheme(ctx, c.Param("id"), year, month)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"year": year, "month": month, "theme": mt, "actions": actions})
}

func (s *Server) dailyAction(c *gin.Context) {
	a, err := s.svc.Calendar.DailyAction(c.Request.Context(), c.Param("id"), c.Param("date"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, a)
}

func (s *Server) yearThemes(c *gin.Context) {
	year, _, valid := yearMonth(c)
	if !valid {
		return
	}
	themes, err := s.svc.Calendar.YearThemes(c.Request.Context(), c.Param("id"), year)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, themes)
}

func (s *Server) generateYear(c *gin.Context) {
	year, _, valid := yearMonth(c)
	if !valid {
		return
	}
	res, err := s.svc.Generation.GenerateYear(c.Request.Context(), c.Param("id"), year)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"year": res.Year, "saved": res.Saved, "skipped": res.Skipped, "source": res.Source})
}

func (s *Server) generateMonth(c *gin.Context) {
	year, month, valid := yearMonth(c)
	if !valid {
		return
	}
	res, err := s.svc.Generation.GenerateMonth(c.Request.Context(), c.Param("id"), year, month)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"year": res.Year, "month": res.Month, "saved": res.Saved, "source": res.Source})
}

func (s *Server) generatePlan(c *gin.Context) {
	year, _, valid := yearMonth(c)
	if !valid {
		return
	}
	themes, err := s.svc.Generation.GenerateYearlyPlan(c.Request.Context(), c.Param("id"), year)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, toPlannedThemeViews(themes))
}

func (s *Server) goalActions(c *gin.Context) {
	res, err := s.svc.Generation.GoalActions(c.Request.Context(), c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"actions": res.Actions, "source": res.Source})
}

type goalRequest struct {
	Goal string `json:"goal" binding:"required"`
}

func (s *Server) validateGoal(c *gin.Context) {
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "goal is required")
		return
	}
	v, err := s.svc.Generation.ValidateGoal(c.Request.Context(), req.Goal)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"valid": v.Valid, "suggestion": v.Suggestion})
}

type checkInRequest struct {
	Date string `json:"date"`
	Note string `json:"note"`
}

func (s *Server) checkIn(c *gin.Context) {
	var req checkInRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "invalid check-in: "+err.Error())
			return
		}
	}
	res, err := s.svc.CheckIns.CheckIn(c.Request.Context(), c.Param("id"), req.Date, req.Note)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, toCheckInView(res))
}

func (s *Server) checkInHistory(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		fail(c, http.StatusBadRequest, "from and to are required")
		return
	}
	history, err := s.svc.CheckIns.History(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		failErr(c, err)
		return
	}
	out := make([]gin.H, 0, len(history))
	for _, ci := range history {
		out = append(out, gin.H{"date": ci.Date, "note": ci.Note})
	}
	ok(c, out)
}

func (s *Server) stats(c *gin.Context) {
	report, err := s.svc.CheckIns.Progress(c.Request.Context(), c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, toProgressView(report))
}

func kindParam(c *gin.Context) domain.LeaderboardKind {
	if k := c.Query("kind"); k != "" {
		return domain.LeaderboardKind(k)
	}
	return domain.LeaderboardStreak
}

func (s *Server) leaderboardTop(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fail(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	entries, err := s.svc.Leaderboard.Top(c.Request.Context(), kindParam(c), limit)
	if err != nil {
		failErr(c, err)
		return
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	ok(c, entries)
}

func (s *Server) rank(c *gin.Context) {
	r, err := s.svc.Leaderboard.Rank(c.Request.Context(), c.Param("id"), kindParam(c))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, r)
}

func (s *Server) exportMonth(c *gin.Context) {
	year, month, valid := yearMonth(c)
	if !valid {
		return
	}
	data, err := s.svc.Export.MonthICS(c.Request.Context(), c.Param("id"), year, month)
	if err != nil {
		failErr(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename*=UTF-8''`+export.EscapedFileName(year, month))
	c.Data(http.StatusOK, export.ContentType, data)
}
