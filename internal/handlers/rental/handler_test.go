package rental_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "sitepro/infras/otel/mocks"
	"sitepro/internal/domains/rental/model"
	"sitepro/internal/domains/rental/model/dto"
	"sitepro/internal/domains/rental/service/mocks"
	"sitepro/internal/handlers/rental"
	"sitepro/shared/constant"
	gDto "sitepro/shared/dto"
	"sitepro/shared/failure"
)

var (
	pm     = gDto.Actor{ID: "pm-1", Name: "Dana", Role: constant.RoleProjectManager}
	vendor = gDto.Actor{ID: "vendor-1", Name: "PT Alat Berat", Role: constant.RoleVendor}
)

func setup(t *testing.T, actor gDto.Actor) (*mocks.MockRental, http.Handler) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockRental(ctrl)

	handler := rental.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, actor.ID)
			ctx = context.WithValue(ctx, constant.ContextKeyUserName, actor.Name)
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, actor.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	handler.Router(router)

	return svc, router
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandler_RequestRental(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, router := setup(t, pm)
		svc.EXPECT().Request(gomock.Any(), pm, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.Actor, req dto.CreateRentalRequest) (dto.RentalResponse, error) {
				assert.Equal(t, "machine-1", req.MachineID)
				assert.Equal(t, 5, req.RequestedDays)

				return dto.RentalResponse{ID: "rental-1", Status: model.StatusRequested}, nil
			})

		body := `{"machineId":"machine-1","projectId":"project-1","projectName":"Tol Trans","requestedDays":5}`

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rentals", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "REQUESTED", decode(t, rec)["data"].(map[string]any)["status"])
	})

	t.Run("missing machine", func(t *testing.T) {
		_, router := setup(t, pm)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rentals", strings.NewReader(`{"projectId":"project-1","projectName":"Tol Trans"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "BadRequest", decode(t, rec)["error"])
	})
}

func TestHandler_GetRentalByID(t *testing.T) {
	svc, router := setup(t, vendor)
	svc.EXPECT().Get(gomock.Any(), "rental-1").
		Return(dto.RentalResponse{ID: "rental-1", Status: model.StatusApproved}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rentals/rental-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rental-1", decode(t, rec)["data"].(map[string]any)["id"])
}

func TestHandler_TransitionRental(t *testing.T) {
	tests := []struct {
		name     string
		actor    gDto.Actor
		body     string
		err      error
		wantCode int
		wantKind string
	}{
		{
			name:     "vendor approves",
			actor:    vendor,
			body:     `{"action":"APPROVE","agreedRate":1000}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "another vendor",
			actor:    gDto.Actor{ID: "vendor-2", Role: constant.RoleVendor},
			body:     `{"action":"APPROVE"}`,
			err:      failure.Forbidden("only the machine's vendor may approve"),
			wantCode: http.StatusForbidden,
			wantKind: "Forbidden",
		},
		{
			name:     "start before assign",
			actor:    pm,
			body:     `{"action":"START"}`,
			err:      failure.InvalidState("rental is not ASSIGNED"),
			wantCode: http.StatusBadRequest,
			wantKind: "InvalidState",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t, tt.actor)
			svc.EXPECT().Transition(gomock.Any(), "rental-1", tt.actor, gomock.Any()).
				Return(dto.RentalResponse{ID: "rental-1", Status: model.StatusApproved}, tt.err)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rentals/rental-1/transition", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, decode(t, rec)["error"])
			}
		})
	}

	t.Run("negative agreed rate", func(t *testing.T) {
		_, router := setup(t, vendor)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rentals/rental-1/transition", strings.NewReader(`{"action":"APPROVE","agreedRate":-5}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_LogUsage(t *testing.T) {
	t.Run("logged", func(t *testing.T) {
		svc, router := setup(t, vendor)
		svc.EXPECT().LogUsage(gomock.Any(), "rental-1", vendor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ gDto.Actor, req dto.LogUsageRequest) error {
				assert.Equal(t, 7.5, req.HoursUsed)

				return nil
			})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/rentals/rental-1/usage", strings.NewReader(`{"hoursUsed":7.5,"notes":"night shift"}`)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, true, decode(t, rec)["success"])
	})

	t.Run("zero hours", func(t *testing.T) {
		_, router := setup(t, vendor)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/rentals/rental-1/usage", strings.NewReader(`{"hoursUsed":0}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
