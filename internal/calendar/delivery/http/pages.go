package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/middleware"
	"kwikr-directory/internal/model"
	pkgErrors "kwikr-directory/pkg/errors"
)

const (
	dashboardPath  = "/calendar"
	signInMessage  = "Please sign in to view your calendar."
	expiredMessage = "Your session has expired. Please sign in again."
)

type signInView struct {
	Message string
	URL     string
}

type pageView struct {
	SignIn   *signInView
	Notice   string
	Month    monthResp
	Today    dayResp
	Upcoming upcomingResp
}

// Page renders the calendar dashboard: the month grid, today's schedule and
// upcoming appointments.
func (h *handler) Page(c *gin.Context) {
	ctx := c.Request.Context()

	sc := middleware.GetScope(c)
	if !sc.Authenticated() {
		h.render(c, http.StatusUnauthorized, "page", pageView{SignIn: h.signIn(signInMessage)})
		return
	}

	req, _, err := h.processMonthReq(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	var view pageView

	month, err := h.uc.Month(ctx, sc, req.toInput())
	if !h.pageStep(ctx, c, "uc.Month", err, &view) {
		return
	}
	view.Month = h.newMonthResp(month)

	today, err := h.uc.Today(ctx, sc)
	if !h.pageStep(ctx, c, "uc.Today", err, &view) {
		return
	}
	view.Today = h.newDayResp(today)

	upcoming, err := h.uc.Upcoming(ctx, sc)
	if !h.pageStep(ctx, c, "uc.Upcoming", err, &view) {
		return
	}
	view.Upcoming = h.newUpcomingResp(upcoming)

	h.render(c, http.StatusOK, "page", view)
}

// pageStep reports whether rendering can go on after a use case call. Fetch
// failures degrade to the empty state with a notice.
func (h *handler) pageStep(ctx context.Context, c *gin.Context, op string, err error, view *pageView) bool {
	if err == nil {
		return true
	}
	h.l.Errorf(ctx, "%s: %v", op, err)
	if fetchFailed(err) {
		view.Notice = fetchFailedNotice
		return true
	}
	if errors.Is(err, calendar.ErrAuthExpired) {
		h.render(c, http.StatusUnauthorized, "page", pageView{SignIn: h.signIn(expiredMessage)})
		return false
	}
	h.renderError(c, err)
	return false
}

// MonthPartial renders the calendarDays container alone.
func (h *handler) MonthPartial(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processMonthReq(c)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if !h.requireScope(c, sc) {
		return
	}

	out, err := h.uc.Month(ctx, sc, req.toInput())
	resp := h.newMonthResp(out)
	if !h.partialStep(ctx, c, "uc.Month", err, &resp.Notice) {
		return
	}
	h.render(c, http.StatusOK, "month", resp)
}

// DayPartial renders one date's schedule in the todaySchedule layout.
func (h *handler) DayPartial(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDayReq(c)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if !h.requireScope(c, sc) {
		return
	}

	out, err := h.uc.Day(ctx, sc, req.toInput())
	resp := h.newDayResp(out)
	if !h.partialStep(ctx, c, "uc.Day", err, &resp.Notice) {
		return
	}
	h.render(c, http.StatusOK, "today", resp)
}

// TodayPartial renders the todaySchedule container.
func (h *handler) TodayPartial(c *gin.Context) {
	ctx := c.Request.Context()

	sc := middleware.GetScope(c)
	if !h.requireScope(c, sc) {
		return
	}

	out, err := h.uc.Today(ctx, sc)
	resp := h.newDayResp(out)
	if !h.partialStep(ctx, c, "uc.Today", err, &resp.Notice) {
		return
	}
	h.render(c, http.StatusOK, "today", resp)
}

// UpcomingPartial renders the upcomingAppointments container.
func (h *handler) UpcomingPartial(c *gin.Context) {
	ctx := c.Request.Context()

	sc := middleware.GetScope(c)
	if !h.requireScope(c, sc) {
		return
	}

	out, err := h.uc.Upcoming(ctx, sc)
	resp := h.newUpcomingResp(out)
	if !h.partialStep(ctx, c, "uc.Upcoming", err, &resp.Notice) {
		return
	}
	h.render(c, http.StatusOK, "upcoming", resp)
}

func (h *handler) partialStep(ctx context.Context, c *gin.Context, op string, err error, notice *string) bool {
	if err == nil {
		return true
	}
	h.l.Errorf(ctx, "%s: %v", op, err)
	if fetchFailed(err) {
		*notice = fetchFailedNotice
		return true
	}
	if errors.Is(err, calendar.ErrAuthExpired) {
		h.render(c, http.StatusUnauthorized, "signin", h.signIn(expiredMessage))
		return false
	}
	h.renderError(c, err)
	return false
}

// AppointmentForm books an appointment from the dashboard form, then sends
// the browser back to the dashboard so every section reloads.
func (h *handler) AppointmentForm(c *gin.Context) {
	ctx := c.Request.Context()

	sc := middleware.GetScope(c)
	if !h.requireScope(c, sc) {
		return
	}

	input, _, err := h.processAppointmentReq(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if _, err := h.uc.CreateAppointment(ctx, sc, input); err != nil {
		h.l.Errorf(ctx, "uc.CreateAppointment: %v", err)
		if errors.Is(err, calendar.ErrAuthExpired) {
			h.render(c, http.StatusUnauthorized, "signin", h.signIn(expiredMessage))
			return
		}
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, dashboardPath)
}

func (h *handler) requireScope(c *gin.Context, sc model.Scope) bool {
	if sc.Authenticated() {
		return true
	}
	h.render(c, http.StatusUnauthorized, "signin", h.signIn(signInMessage))
	return false
}

func (h *handler) renderError(c *gin.Context, err error) {
	he := pkgErrors.ErrInternalServerError
	if mapped, ok := pkgErrors.AsHTTPError(h.mapError(err)); ok {
		he = mapped
	}
	h.render(c, he.StatusCode, "notice", he.Message)
}

func (h *handler) signIn(message string) *signInView {
	return &signInView{Message: message, URL: h.view.SignInURL}
}
