package bid_test

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
	"sitepro/internal/domains/bid/model"
	"sitepro/internal/domains/bid/model/dto"
	"sitepro/internal/domains/bid/service/mocks"
	"sitepro/internal/handlers/bid"
	"sitepro/shared/constant"
	gDto "sitepro/shared/dto"
	"sitepro/shared/failure"
)

func withActor(actor gDto.Actor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, actor.ID)
			ctx = context.WithValue(ctx, constant.ContextKeyUserName, actor.Name)
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, actor.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func setup(t *testing.T, actor gDto.Actor) (*mocks.MockBid, http.Handler) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBid(ctrl)

	handler := bid.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(withActor(actor))
	handler.Router(router)

	return svc, router
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandler_SubmitBid(t *testing.T) {
	vendor := gDto.Actor{ID: "vendor-1", Name: "PT Alat Berat", Role: constant.RoleVendor}

	validBody := `{
		"bidderName": "PT Alat Berat",
		"proposedAmount": 500000,
		"currency": "IDR",
		"startDate": "2026-05-01T00:00:00Z",
		"bidderEmail": "sales@alat.co.id",
		"bidderPhone": "+62811111111"
	}`

	tests := []struct {
		name     string
		body     string
		mock     func(svc *mocks.MockBid)
		wantCode int
		wantKind string
	}{
		{
			name: "created",
			body: validBody,
			mock: func(svc *mocks.MockBid) {
				svc.EXPECT().
					Submit(gomock.Any(), "project-1", vendor, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ gDto.Actor, req dto.CreateBidRequest) (dto.BidResponse, error) {
						assert.Equal(t, 500000.0, req.ProposedAmount)

						return dto.BidResponse{ID: "bid-1", Status: model.StatusSubmitted}, nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "invalid email",
			body:     strings.Replace(validBody, "sales@alat.co.id", "not-an-email", 1),
			mock:     func(*mocks.MockBid) {},
			wantCode: http.StatusBadRequest,
			wantKind: string(failure.KindBadRequest),
		},
		{
			name:     "malformed json",
			body:     `{"bidderName":`,
			mock:     func(*mocks.MockBid) {},
			wantCode: http.StatusBadRequest,
			wantKind: string(failure.KindBadRequest),
		},
		{
			name: "role not allowed to bid",
			body: validBody,
			mock: func(svc *mocks.MockBid) {
				svc.EXPECT().Submit(gomock.Any(), "project-1", vendor, gomock.Any()).
					Return(dto.BidResponse{}, failure.Forbidden("role cannot submit bids"))
			},
			wantCode: http.StatusForbidden,
			wantKind: string(failure.KindForbidden),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t, vendor)
			tt.mock(svc)

			req := httptest.NewRequest(http.MethodPost, "/projects/project-1/bids", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			body := decode(t, rec)
			if tt.wantKind != "" {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, tt.wantKind, body["error"])
			} else {
				assert.Equal(t, "bid-1", body["data"].(map[string]any)["id"])
			}
		})
	}
}

func TestHandler_GetBidByID(t *testing.T) {
	viewer := gDto.Actor{ID: "pm-1", Name: "Dana", Role: constant.RoleProjectManager}

	t.Run("passes the caller as viewer", func(t *testing.T) {
		svc, router := setup(t, viewer)
		svc.EXPECT().Get(gomock.Any(), "bid-1", "pm-1").
			Return(dto.BidResponse{ID: "bid-1", BidderEmail: "", Status: model.StatusSubmitted}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bids/bid-1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "SUBMITTED", decode(t, rec)["data"].(map[string]any)["status"])
	})

	t.Run("not found", func(t *testing.T) {
		svc, router := setup(t, viewer)
		svc.EXPECT().Get(gomock.Any(), "missing", "pm-1").
			Return(dto.BidResponse{}, failure.NotFound("bid not found"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bids/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NotFound", decode(t, rec)["error"])
	})
}

func TestHandler_TransitionBid(t *testing.T) {
	pm := gDto.Actor{ID: "pm-1", Name: "Dana", Role: constant.RoleProjectManager}

	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
		wantKind string
	}{
		{
			name:     "approved",
			body:     `{"action":"APPROVE","reviewNotes":"good rate"}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "not submitted any more",
			body:     `{"action":"APPROVE"}`,
			err:      failure.InvalidState("bid is no longer in SUBMITTED status"),
			wantCode: http.StatusBadRequest,
			wantKind: "InvalidState",
		},
		{
			name:     "unknown action",
			body:     `{"action":"approve"}`,
			err:      failure.InvalidAction("unknown action: approve"),
			wantCode: http.StatusBadRequest,
			wantKind: "InvalidAction",
		},
		{
			name:     "store failure hides the cause",
			body:     `{"action":"REJECT"}`,
			err:      assert.AnError,
			wantCode: http.StatusInternalServerError,
			wantKind: "ServerError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t, pm)
			svc.EXPECT().Transition(gomock.Any(), "bid-1", pm, gomock.Any()).
				Return(dto.BidResponse{ID: "bid-1", Status: model.StatusApproved, ContactVisible: true}, tt.err)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bids/bid-1/transition", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)

			body := decode(t, rec)
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, body["error"])
				assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
			} else {
				assert.Equal(t, true, body["data"].(map[string]any)["contactVisible"])
			}
		})
	}

	t.Run("missing action is rejected before the service", func(t *testing.T) {
		_, router := setup(t, pm)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bids/bid-1/transition", strings.NewReader(`{"action":"  "}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
