package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"meckano-helper/internal/model"
	"meckano-helper/internal/report"
	"meckano-helper/pkg/response"
)

// Fill godoc
// @Summary     Fill the attendance report
// @Description Opens the reporting dialog, waits for it to render, fills empty time fields of working rows, submits, and confirms closure.
// @Tags        Report
// @Accept      json
// @Produce     json
// @Param       body body fillReq true "Work window and humanize flag"
// @Success     200 {object} response.Resp "Fill result (success may be false)"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "A fill run is already in flight"
// @Router      /api/v1/report/fill [POST]
func (h *handler) Fill(c *gin.Context) {
	ctx := c.Request.Context()

	var req fillReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.NewScope()
	out, err := h.uc.Fill(ctx, sc, input)
	if err != nil {
		if errors.Is(err, report.ErrFillInFlight) {
			response.ErrorWithStatus(c, http.StatusConflict, err)
			return
		}
		h.l.Errorf(ctx, "uc.Fill: %v", err)
		// Pipeline failures still carry partial counts back to the caller.
		response.OK(c, newFillResp(out, err))
		return
	}

	response.OK(c, newFillResp(out, nil))
}

// Run godoc
// @Summary     Get a recent fill run
// @Description Returns the retained report of a recent fill run by its id.
// @Tags        Report
// @Accept      json
// @Produce     json
// @Param       id path string true "Run ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/report/runs/{id} [GET]
func (h *handler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	rep, err := h.uc.Run(ctx, model.NewScope(), id)
	if err != nil {
		if errors.Is(err, report.ErrRunNotFound) {
			response.ErrorWithStatus(c, http.StatusNotFound, err)
			return
		}
		h.l.Errorf(ctx, "uc.Run: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newRunResp(rep))
}
