package get_planning

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/api/handlers"
	getPlanning "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/usecase/get_planning"
)

type fakeUseCase struct {
	gotReq *getPlanning.Request
	resp   *getPlanning.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getPlanning.Request) (*getPlanning.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/salons/{salonId}/planning", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandler_Handle(t *testing.T) {
	t.Run("returns planning view", func(t *testing.T) {
		uc := &fakeUseCase{resp: &getPlanning.Response{
			SalonID:    1,
			Mode:       "day",
			Date:       "2025-01-06",
			RangeStart: "2025-01-06",
			RangeEnd:   "2025-01-06",
		}}
		router := newRouter(NewHandler(uc, noopLogger{}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/salons/1/planning?mode=day&date=2025-01-06", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp getPlanning.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.SalonID)
		assert.Equal(t, "day", resp.Mode)

		require.NotNil(t, uc.gotReq)
		assert.Equal(t, int64(1), uc.gotReq.SalonID)
		assert.Equal(t, "day", uc.gotReq.Mode)
		assert.Equal(t, "2025-01-06", uc.gotReq.Date.Format("2006-01-02"))
	})

	t.Run("mode defaults to day", func(t *testing.T) {
		uc := &fakeUseCase{resp: &getPlanning.Response{Mode: "day"}}
		router := newRouter(NewHandler(uc, noopLogger{}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/salons/1/planning", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "day", uc.gotReq.Mode)
	})

	t.Run("invalid salon id", func(t *testing.T) {
		router := newRouter(NewHandler(&fakeUseCase{}, noopLogger{}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/salons/abc/planning", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid date", func(t *testing.T) {
		router := newRouter(NewHandler(&fakeUseCase{}, noopLogger{}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/salons/1/planning?date=06.01.2025", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid mode maps to 400", func(t *testing.T) {
		uc := &fakeUseCase{err: getPlanning.ErrInvalidMode}
		router := newRouter(NewHandler(uc, noopLogger{}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/salons/1/planning?mode=year", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var errResp handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, msgInvalidMode, errResp.Message)
	})

	t.Run("salon not found maps to 404", func(t *testing.T) {
		uc := &fakeUseCase{err: getPlanning.ErrSalonNotFound}
		router := newRouter(NewHandler(uc, noopLogger{}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/salons/77/planning", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		uc := &fakeUseCase{err: getPlanning.ErrInternal}
		router := newRouter(NewHandler(uc, noopLogger{}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/salons/1/planning", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
