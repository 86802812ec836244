package http

import (
	"meckano-helper/internal/model"
	"meckano-helper/internal/report"
	"meckano-helper/pkg/response"
	"meckano-helper/pkg/timemath"
)

// fillReq is the fill request body, the contract with the settings UI.
type fillReq struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Humanize  bool   `json:"humanize"`
}

func (r fillReq) toInput() (report.FillInput, error) {
	window, err := timemath.ParseWindow(r.StartTime, r.EndTime)
	if err != nil {
		return report.FillInput{}, err
	}
	return report.FillInput{Window: window, Humanize: r.Humanize}, nil
}

type fillDetails struct {
	Filled  int `json:"filled"`
	Skipped int `json:"skipped"`
	Errors  int `json:"errors"`
}

// fillResp mirrors the caller-facing contract:
// success, optional message/error, and per-row counts.
type fillResp struct {
	Success bool         `json:"success"`
	RunID   string       `json:"runId,omitempty"`
	Message string       `json:"message,omitempty"`
	Error   string       `json:"error,omitempty"`
	Details *fillDetails `json:"details,omitempty"`
}

func newFillResp(out report.FillOutput, err error) fillResp {
	resp := fillResp{
		Success: err == nil,
		RunID:   out.RunID,
		Message: out.Message,
		Details: &fillDetails{
			Filled:  out.Filled,
			Skipped: out.Skipped,
			Errors:  out.Errors,
		},
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

type runResp struct {
	ID           string            `json:"id"`
	Success      bool              `json:"success"`
	Message      string            `json:"message"`
	Filled       int               `json:"filled"`
	Skipped      int               `json:"skipped"`
	Errors       int               `json:"errors"`
	Submitted    bool              `json:"submitted"`
	DialogClosed bool              `json:"dialogClosed"`
	StartedAt    response.DateTime `json:"startedAt"`
	FinishedAt   response.DateTime `json:"finishedAt"`
}

func newRunResp(rep model.RunReport) runResp {
	return runResp{
		ID:           rep.ID,
		Success:      rep.Success,
		Message:      rep.Message,
		Filled:       rep.Filled,
		Skipped:      rep.Skipped,
		Errors:       rep.Errors,
		Submitted:    rep.Submitted,
		DialogClosed: rep.DialogClosed,
		StartedAt:    response.DateTime(rep.StartedAt),
		FinishedAt:   response.DateTime(rep.FinishedAt),
	}
}
