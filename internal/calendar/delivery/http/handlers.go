package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/middleware"
	"kwikr-directory/pkg/response"
)

// Month godoc
// @Summary     Month view
// @Description Builds the 42-cell grid of a month and binds the worker's events to it.
// @Description With no parameters the session's displayed month is shown (today's month on first use).
// @Tags        Calendar
// @Produce     json
// @Param       year  query int    false "Year (1-9999), required with month"
// @Param       month query int    false "Month (1-12), required with year"
// @Param       nav   query string false "Navigation" Enums(prev, next, today, goto)
// @Success     200 {object} monthResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Session expired"
// @Failure     409 {object} response.Resp "Superseded by a newer request"
// @Failure     502 {object} response.Resp "Event service unavailable"
// @Router      /api/v1/calendar/month [GET]
func (h *handler) Month(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processMonthReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	out, err := h.uc.Month(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Month: %v", err)
		resp := h.newMonthResp(out)
		resp.Notice = fetchFailedNotice
		h.respondError(c, err, map[string]interface{}{"month": resp})
		return
	}

	response.OK(c, h.newMonthResp(out))
}

// Day godoc
// @Summary     Day schedule
// @Description Lists the events starting on one date, ordered by start time.
// @Tags        Calendar
// @Produce     json
// @Param       date query string false "YYYY-MM-DD or a phrase like tomorrow, next monday, in 3 days"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Session expired"
// @Failure     502 {object} response.Resp "Event service unavailable"
// @Router      /api/v1/calendar/day [GET]
func (h *handler) Day(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDayReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	out, err := h.uc.Day(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Day: %v", err)
		h.respondDayError(c, err, out)
		return
	}

	response.OK(c, h.newDayResp(out))
}

// Today godoc
// @Summary     Today's schedule
// @Description Lists today's events ordered by start time.
// @Tags        Calendar
// @Produce     json
// @Success     200 {object} dayResp
// @Failure     401 {object} response.Resp "Session expired"
// @Failure     502 {object} response.Resp "Event service unavailable"
// @Router      /api/v1/calendar/today [GET]
func (h *handler) Today(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Today(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Today: %v", err)
		h.respondDayError(c, err, out)
		return
	}

	response.OK(c, h.newDayResp(out))
}

// Upcoming godoc
// @Summary     Upcoming appointments
// @Description Lists the next events that have not started yet, within the upcoming horizon.
// @Tags        Calendar
// @Produce     json
// @Success     200 {object} upcomingResp
// @Failure     401 {object} response.Resp "Session expired"
// @Failure     502 {object} response.Resp "Event service unavailable"
// @Router      /api/v1/calendar/upcoming [GET]
func (h *handler) Upcoming(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Upcoming(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Upcoming: %v", err)
		resp := h.newUpcomingResp(out)
		resp.Notice = fetchFailedNotice
		h.respondError(c, err, map[string]interface{}{"upcoming": resp})
		return
	}

	response.OK(c, h.newUpcomingResp(out))
}

// Export godoc
// @Summary     Export a month
// @Description Downloads the month's events as an iCalendar file.
// @Tags        Calendar
// @Produce     text/calendar
// @Param       year  query int false "Year, required with month"
// @Param       month query int false "Month (1-12), required with year"
// @Success     200 {file}   file
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Session expired"
// @Failure     404 {object} response.Resp "No events"
// @Failure     502 {object} response.Resp "Event service unavailable"
// @Router      /api/v1/calendar/export.ics [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	out, err := h.uc.Export(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		h.respondError(c, err, nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", out.Data)
}

func (h *handler) respondDayError(c *gin.Context, err error, out calendar.DayOutput) {
	resp := h.newDayResp(out)
	resp.Notice = fetchFailedNotice
	h.respondError(c, err, map[string]interface{}{"day": resp})
}

// respondError writes the JSON error. The empty view in data is only sent
// for fetch failures, so clients can still draw their empty state.
func (h *handler) respondError(c *gin.Context, err error, data map[string]interface{}) {
	if errors.Is(err, calendar.ErrAuthExpired) {
		response.SessionExpired(c, "Session expired")
		return
	}
	if !fetchFailed(err) {
		data = nil
	}
	response.Error(c, h.mapError(err), data)
}
