package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sitepro/config"
	"sitepro/infras/jwt"
	jwtMocks "sitepro/infras/jwt/mocks"
	otelMocks "sitepro/infras/otel/mocks"
	"sitepro/permissions"
	"sitepro/shared/constant"
	"sitepro/transport/http/middleware"
)

const testPermissions = `{"endpoints":[
	{"path":"/v1/rentals/","method":"POST","permissions":["project_manager"]},
	{"path":"/v1/rentals/{id}","method":"GET","permissions":[]},
	{"path":"/v1/health","method":"GET","skip":true}
]}`

func authRouter(t *testing.T, jwtService jwt.JWT) http.Handler {
	t.Helper()

	perms, err := permissions.Parse([]byte(testPermissions))
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	authRole := middleware.NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), perms, cfg)

	echo := func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value(constant.ContextKeyUserID).(string)
		w.Header().Set("X-User", userID)
		w.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Route("/v1", func(v1 chi.Router) {
		v1.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)
		v1.Get("/health", echo)
		v1.Route("/rentals", func(r chi.Router) {
			r.Post("/", echo)
			r.Get("/{id}", echo)
		})
	})

	return router
}

func TestAuthRole(t *testing.T) {
	pm := &jwt.Claims{UserID: "pm-1", Role: constant.RoleProjectManager}
	vendor := &jwt.Claims{UserID: "vendor-1", Role: constant.RoleVendor}

	tests := []struct {
		name     string
		method   string
		target   string
		header   map[string]string
		mock     func(j *jwtMocks.MockJWT)
		wantCode int
		wantUser string
	}{
		{
			name:     "skipped route needs no token",
			method:   http.MethodGet,
			target:   "/v1/health",
			mock:     func(*jwtMocks.MockJWT) {},
			wantCode: http.StatusOK,
		},
		{
			name:     "missing token",
			method:   http.MethodGet,
			target:   "/v1/rentals/r1",
			mock:     func(*jwtMocks.MockJWT) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "malformed header",
			method:   http.MethodGet,
			target:   "/v1/rentals/r1",
			header:   map[string]string{"Authorization": "Token abc"},
			mock:     func(*jwtMocks.MockJWT) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			method: http.MethodGet,
			target: "/v1/rentals/r1",
			header: map[string]string{"Authorization": "Bearer stale"},
			mock: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken(gomock.Any(), "stale", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "open route admits any role",
			method: http.MethodGet,
			target: "/v1/rentals/r1",
			header: map[string]string{"Authorization": "Bearer good"},
			mock: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(vendor, nil)
			},
			wantCode: http.StatusOK,
			wantUser: "vendor-1",
		},
		{
			name:   "token from query parameter",
			method: http.MethodGet,
			target: "/v1/rentals/r1?token=qs",
			mock: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken(gomock.Any(), "qs", jwt.AccessToken).Return(pm, nil)
			},
			wantCode: http.StatusOK,
			wantUser: "pm-1",
		},
		{
			name:   "listed role",
			method: http.MethodPost,
			target: "/v1/rentals/",
			header: map[string]string{"Authorization": "Bearer good"},
			mock: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(pm, nil)
			},
			wantCode: http.StatusOK,
			wantUser: "pm-1",
		},
		{
			name:   "unlisted role",
			method: http.MethodPost,
			target: "/v1/rentals/",
			header: map[string]string{"Authorization": "Bearer good"},
			mock: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(vendor, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "internal key bypasses token and role",
			method:   http.MethodPost,
			target:   "/v1/rentals/",
			header:   map[string]string{"X-API-Key": "internal-key"},
			mock:     func(*jwtMocks.MockJWT) {},
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong internal key",
			method:   http.MethodGet,
			target:   "/v1/rentals/r1",
			header:   map[string]string{"X-API-Key": "guess"},
			mock:     func(*jwtMocks.MockJWT) {},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtService := jwtMocks.NewMockJWT(ctrl)
			tt.mock(jwtService)

			req := httptest.NewRequest(tt.method, tt.target, nil)
			for key, value := range tt.header {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			authRouter(t, jwtService).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantUser, rec.Header().Get("X-User"))
		})
	}
}
