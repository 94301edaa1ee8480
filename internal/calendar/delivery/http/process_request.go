package http

import (
	"github.com/gin-gonic/gin"

	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/middleware"
	"kwikr-directory/internal/model"
)

// processMonthReq binds and validates the month query.
func (h *handler) processMonthReq(c *gin.Context) (monthReq, model.Scope, error) {
	var req monthReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "calendar.http.processMonthReq: %v", err)
		return req, model.Scope{}, calendar.ErrInvalidMonth
	}
	if err := req.validate(); err != nil {
		return req, model.Scope{}, err
	}
	return req, middleware.GetScope(c), nil
}

// processDayReq binds the day query. The date phrase is parsed by the use case.
func (h *handler) processDayReq(c *gin.Context) (dayReq, model.Scope, error) {
	var req dayReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "calendar.http.processDayReq: %v", err)
		return req, model.Scope{}, calendar.ErrInvalidDate
	}
	return req, middleware.GetScope(c), nil
}

// processExportReq binds and validates the export query.
func (h *handler) processExportReq(c *gin.Context) (exportReq, model.Scope, error) {
	var req exportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "calendar.http.processExportReq: %v", err)
		return req, model.Scope{}, calendar.ErrInvalidMonth
	}
	if err := req.validate(); err != nil {
		return req, model.Scope{}, err
	}
	return req, middleware.GetScope(c), nil
}

// processAppointmentReq binds a new appointment from JSON or a form post.
func (h *handler) processAppointmentReq(c *gin.Context) (calendar.AppointmentInput, model.Scope, error) {
	var req appointmentReq
	if err := c.ShouldBind(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "calendar.http.processAppointmentReq: %v", err)
		return calendar.AppointmentInput{}, model.Scope{}, calendar.ErrInvalidAppointment
	}
	input, err := req.toInput(h.view.Location)
	if err != nil {
		return input, model.Scope{}, err
	}
	return input, middleware.GetScope(c), nil
}

// processAppointmentPatchReq binds an appointment update from the path and JSON body.
func (h *handler) processAppointmentPatchReq(c *gin.Context) (calendar.AppointmentUpdate, model.Scope, error) {
	var req appointmentPatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "calendar.http.processAppointmentPatchReq: %v", err)
		return calendar.AppointmentUpdate{}, model.Scope{}, calendar.ErrInvalidAppointment
	}
	input, err := req.toInput(c.Param("id"), h.view.Location)
	if err != nil {
		return input, model.Scope{}, err
	}
	return input, middleware.GetScope(c), nil
}

// processTimeBlockReq binds a new time block from JSON.
func (h *handler) processTimeBlockReq(c *gin.Context) (calendar.TimeBlockInput, model.Scope, error) {
	var req timeBlockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "calendar.http.processTimeBlockReq: %v", err)
		return calendar.TimeBlockInput{}, model.Scope{}, calendar.ErrInvalidTimeBlock
	}
	input, err := req.toInput(h.view.Location)
	if err != nil {
		return input, model.Scope{}, err
	}
	return input, middleware.GetScope(c), nil
}
