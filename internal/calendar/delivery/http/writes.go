package http

import (
	"github.com/gin-gonic/gin"

	"kwikr-directory/internal/middleware"
	"kwikr-directory/pkg/response"
)

// CreateAppointment godoc
// @Summary     Create an appointment
// @Description Books an appointment with a client. Zoneless times are read in the calendar's time zone.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body appointmentReq true "Appointment"
// @Success     200 {object} saveResp
// @Failure     400 {object} response.Resp "Invalid or conflicting appointment"
// @Failure     401 {object} response.Resp "Session expired"
// @Failure     502 {object} response.Resp "Event service unavailable"
// @Router      /api/v1/calendar/appointments [POST]
func (h *handler) CreateAppointment(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processAppointmentReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	out, err := h.uc.CreateAppointment(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateAppointment: %v", err)
		h.respondError(c, err, nil)
		return
	}

	response.OK(c, saveResp{ID: out.ID, Message: appointmentCreatedMessage})
}

// UpdateAppointment godoc
// @Summary     Update an appointment
// @Description Changes the given fields of an appointment; omitted fields are kept.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       id   path string              true "Appointment ID"
// @Param       body body appointmentPatchReq true "Changed fields"
// @Success     200 {object} saveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Session expired"
// @Failure     404 {object} response.Resp "Appointment not found"
// @Failure     502 {object} response.Resp "Event service unavailable"
// @Router      /api/v1/calendar/appointments/{id} [PUT]
func (h *handler) UpdateAppointment(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processAppointmentPatchReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	out, err := h.uc.UpdateAppointment(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateAppointment: %v", err)
		h.respondError(c, err, nil)
		return
	}

	response.OK(c, saveResp{ID: out.ID, Message: appointmentUpdatedMessage})
}

// CancelAppointment godoc
// @Summary     Cancel an appointment
// @Description Marks an appointment as cancelled. The record is kept.
// @Tags        Calendar
// @Produce     json
// @Param       id path string true "Appointment ID"
// @Success     200 {object} saveResp
// @Failure     401 {object} response.Resp "Session expired"
// @Failure     404 {object} response.Resp "Appointment not found"
// @Failure     502 {object} response.Resp "Event service unavailable"
// @Router      /api/v1/calendar/appointments/{id} [DELETE]
func (h *handler) CancelAppointment(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.CancelAppointment(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.CancelAppointment: %v", err)
		h.respondError(c, err, nil)
		return
	}

	response.OK(c, saveResp{ID: out.ID, Message: appointmentCancelledMessage})
}

// CreateTimeBlock godoc
// @Summary     Create a time block
// @Description Reserves time on a job assigned to the worker. Blocks are billable unless is_billable is false.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body timeBlockReq true "Time block"
// @Success     200 {object} saveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Session expired"
// @Failure     404 {object} response.Resp "Job not found or not assigned"
// @Failure     502 {object} response.Resp "Event service unavailable"
// @Router      /api/v1/calendar/time-blocks [POST]
func (h *handler) CreateTimeBlock(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processTimeBlockReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	out, err := h.uc.CreateTimeBlock(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateTimeBlock: %v", err)
		h.respondError(c, err, nil)
		return
	}

	response.OK(c, saveResp{ID: out.ID, Message: timeBlockCreatedMessage})
}
