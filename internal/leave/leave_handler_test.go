package leave_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"astramaie-backoffice/internal/leave"
	leaveerrors "astramaie-backoffice/internal/leave/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeLeaveService struct {
	SubmitFn  func(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error)
	ReviewFn  func(ctx context.Context, id string, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error)
	GetAllFn  func(ctx context.Context, query leave.ListLeavesQuery) ([]leave.LeaveResponse, error)
	GetByIDFn func(ctx context.Context, id string) (leave.LeaveResponse, error)
}

func (f *fakeLeaveService) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
	return f.SubmitFn(ctx, req)
}
func (f *fakeLeaveService) Review(ctx context.Context, id string, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error) {
	return f.ReviewFn(ctx, id, req)
}
func (f *fakeLeaveService) GetAll(ctx context.Context, query leave.ListLeavesQuery) ([]leave.LeaveResponse, error) {
	return f.GetAllFn(ctx, query)
}
func (f *fakeLeaveService) GetByID(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return f.GetByIDFn(ctx, id)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestLeaveHandler_Submit(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeLeaveService{
			SubmitFn: func(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{
					ID:          uuid.NewString(),
					Status:      leave.StatusPending,
					WorkingDays: 3,
				}, nil
			},
		}
		handler := leave.NewHandler(svc)

		r := setupRouter()
		r.POST("/leaves", handler.Submit)

		body := `{
			"employee_id": "` + uuid.NewString() + `",
			"start_date": "2025-01-20",
			"end_date": "2025-01-22",
			"reason": "family event",
			"type": "personal"
		}`
		req := httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "PENDING")
	})

	t.Run("rejects non uuid employee id", func(t *testing.T) {
		handler := leave.NewHandler(&fakeLeaveService{})

		r := setupRouter()
		r.POST("/leaves", handler.Submit)

		body := `{
			"employee_id": "not-a-uuid",
			"start_date": "2025-01-20",
			"end_date": "2025-01-22",
			"reason": "family event",
			"type": "personal"
		}`
		req := httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaveHandler_Review(t *testing.T) {
	t.Run("conflict when already reviewed", func(t *testing.T) {
		svc := &fakeLeaveService{
			ReviewFn: func(ctx context.Context, id string, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrAlreadyReviewed
			},
		}
		handler := leave.NewHandler(svc)

		r := setupRouter()
		r.POST("/leaves/:id/review", handler.Review)

		body := `{"decision": "APPROVED"}`
		req := httptest.NewRequest(http.MethodPost, "/leaves/"+uuid.NewString()+"/review", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})
}
