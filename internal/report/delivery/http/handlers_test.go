package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"meckano-helper/internal/model"
	"meckano-helper/internal/report"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	fillOut report.FillOutput
	fillErr error
	lastIn  report.FillInput

	runRep model.RunReport
	runErr error
}

func (m *mockUseCase) Fill(ctx context.Context, sc model.Scope, input report.FillInput) (report.FillOutput, error) {
	m.lastIn = input
	return m.fillOut, m.fillErr
}

func (m *mockUseCase) Run(ctx context.Context, sc model.Scope, id string) (model.RunReport, error) {
	return m.runRep, m.runErr
}

func newTestRouter(uc report.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(&mockLogger{}, uc)
	r := gin.New()
	r.POST("/api/v1/report/fill", h.Fill)
	r.GET("/api/v1/report/runs/:id", h.Run)
	return r
}

func doFill(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/report/fill", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestFillHandler(t *testing.T) {
	uc := &mockUseCase{
		fillOut: report.FillOutput{
			RunID:        "run-1",
			Filled:       3,
			Skipped:      5,
			Submitted:    true,
			DialogClosed: true,
			Message:      "filled 3, skipped 5, errors 0",
		},
	}
	r := newTestRouter(uc)

	w := doFill(t, r, `{"startTime":"09:00","endTime":"18:00","humanize":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		ErrorCode int `json:"error_code"`
		Data      struct {
			Success bool   `json:"success"`
			RunID   string `json:"runId"`
			Details struct {
				Filled  int `json:"filled"`
				Skipped int `json:"skipped"`
				Errors  int `json:"errors"`
			} `json:"details"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !resp.Data.Success || resp.Data.RunID != "run-1" {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
	if resp.Data.Details.Filled != 3 || resp.Data.Details.Skipped != 5 {
		t.Fatalf("unexpected details: %+v", resp.Data.Details)
	}
	if !uc.lastIn.Humanize {
		t.Fatal("humanize flag not forwarded")
	}
	if uc.lastIn.Window.CheckIn.String() != "09:00" || uc.lastIn.Window.CheckOut.String() != "18:00" {
		t.Fatalf("window not forwarded: %+v", uc.lastIn.Window)
	}
}

func TestFillHandlerBadRequest(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	for _, body := range []string{
		`not json`,
		`{"endTime":"18:00"}`,
		`{"startTime":"25:00","endTime":"18:00"}`,
	} {
		if w := doFill(t, r, body); w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
		}
	}
}

func TestFillHandlerInFlight(t *testing.T) {
	r := newTestRouter(&mockUseCase{fillErr: report.ErrFillInFlight})

	w := doFill(t, r, `{"startTime":"09:00","endTime":"18:00"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

// Pipeline failures respond 200 with success=false and partial counts.
func TestFillHandlerPipelineFailure(t *testing.T) {
	uc := &mockUseCase{
		fillOut: report.FillOutput{RunID: "run-2", Skipped: 2},
		fillErr: report.ErrDialogNotReady,
	}
	r := newTestRouter(uc)

	w := doFill(t, r, `{"startTime":"09:00","endTime":"18:00"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Data struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Data.Success {
		t.Fatal("success=true for a failed pipeline")
	}
	if resp.Data.Error == "" {
		t.Fatal("error string missing")
	}
}

func TestRunHandler(t *testing.T) {
	uc := &mockUseCase{
		runRep: model.RunReport{
			ID:        "run-3",
			Success:   true,
			Filled:    1,
			StartedAt: time.Now(),
		},
	}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/report/runs/run-3", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Data struct {
			ID      string `json:"id"`
			Success bool   `json:"success"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Data.ID != "run-3" || !resp.Data.Success {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
}

func TestRunHandlerNotFound(t *testing.T) {
	r := newTestRouter(&mockUseCase{runErr: report.ErrRunNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/report/runs/nope", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
