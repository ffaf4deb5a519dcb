package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"bazarbd/internal/adapter/api/handler"
	"bazarbd/internal/adapter/api/middleware"
	"bazarbd/internal/adapter/api/router"
	"bazarbd/internal/domain/entity"
	"bazarbd/internal/infrastructure/database"
	"bazarbd/internal/infrastructure/firebase"
	"bazarbd/internal/infrastructure/storage"
	"bazarbd/internal/usecase"
	"bazarbd/pkg/logger"
	"bazarbd/pkg/response"
)

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Error   *response.ErrorInfo `json:"error"`
}

type fakeVerifier map[string]string

func (f fakeVerifier) VerifyToken(_ context.Context, token string) (*firebase.Identity, error) {
	email, ok := f[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return &firebase.Identity{UID: token, Email: email}, nil
}

type testServer struct {
	e     *echo.Echo
	users *usecase.UserUseCase
}

func newTestServer(t *testing.T, verifier middleware.TokenVerifier, limiter *middleware.RateLimiter) testServer {
	t.Helper()
	log := logger.Discard()
	repos := database.MemoryRepositories()
	images := storage.NewBlobImageStore(memblob.OpenBucket(nil), "http://localhost/images")
	t.Cleanup(func() { _ = images.Close() })

	products := usecase.NewProductUseCase(repos.Products, time.UTC, log)
	users := usecase.NewUserUseCase(repos.Users)
	ads := usecase.NewAdvertisementUseCase(repos.Advertisements, repos.Users, images, "ads", log)

	handlers := router.Handlers{
		Health:        handler.NewHealthHandler("memory"),
		Product:       handler.NewProductHandler(products),
		Watchlist:     handler.NewWatchlistHandler(usecase.NewWatchlistUseCase(repos.Watchlist, repos.Products, log)),
		User:          handler.NewUserHandler(users),
		Order:         handler.NewOrderHandler(usecase.NewOrderUseCase(repos.Orders)),
		Payment:       handler.NewPaymentHandler(usecase.NewPaymentUseCase(nil, "bdt")),
		Advertisement: handler.NewAdvertisementHandler(ads, 1<<20),
		Review:        handler.NewReviewHandler(usecase.NewReviewUseCase(repos.Reviews, repos.Products)),
		Newsletter:    handler.NewNewsletterHandler(usecase.NewNewsletterUseCase(repos.Newsletter, log)),
	}

	auth := middleware.NewAuthMiddleware(verifier, verifier != nil)
	mw := router.Middlewares{
		Auth:  auth,
		Admin: middleware.NewAdminMiddleware(users, auth),
	}
	if limiter != nil {
		mw.RateLimit = limiter.Middleware()
	}

	return testServer{e: NewEcho(log, handlers, mw), users: users}
}

func (s testServer) do(t *testing.T, method, target, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t, nil, nil)

	rec, env := s.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"status":"ok"`)
	assert.Contains(t, string(env.Data), `"database":"memory"`)

	rec, _ = s.do(t, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "BazarBD server is running...", rec.Body.String())
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	s := newTestServer(t, nil, nil)

	rec, env := s.do(t, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}

func TestPriceHistoryNotFoundCarriesEmptyList(t *testing.T) {
	s := newTestServer(t, nil, nil)

	rec, env := s.do(t, http.MethodGet, "/products/"+entity.NewID()+"/price-history", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	rec, env = s.do(t, http.MethodGet, "/products/not-an-id/price-history", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestCreateAndSearchProducts(t *testing.T) {
	s := newTestServer(t, nil, nil)

	for _, body := range []string{
		`{"itemName":"Onion","marketName":"Karwan","vendorEmail":"v@example.com","status":"approved","category":"Veg","prices":[{"price":40,"date":"2024-03-01"}]}`,
		`{"itemName":"Garlic","marketName":"Karwan","vendorEmail":"v@example.com","status":"approved","category":"veg","prices":[{"price":120,"date":"2024-03-01"}]}`,
		`{"itemName":"Hilsa","marketName":"Chandpur","vendorEmail":"v@example.com","status":"approved","category":"Fish","prices":[{"price":900,"date":"2024-03-05"}]}`,
	} {
		rec, _ := s.do(t, http.MethodPost, "/products", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, env := s.do(t, http.MethodGet, "/products/search?category=VEG&sort=desc&page=0&size=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page response.PaginatedResponse
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.EqualValues(t, 2, page.Total)
	assert.Equal(t, 1, page.PageSize)
	assert.Equal(t, 2, page.TotalPages)

	rec, env = s.do(t, http.MethodGet, "/products/search?date=2024-03-05", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.EqualValues(t, 1, page.Total)

	rec, env = s.do(t, http.MethodGet, "/products/search?from=2024-03-05&to=2024-03-01", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestCreateProductValidation(t *testing.T) {
	s := newTestServer(t, nil, nil)

	rec, env := s.do(t, http.MethodPost, "/products", `{"marketName":"Karwan","vendorEmail":"v@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "itemName is required", env.Error.Message)

	rec, _ = s.do(t, http.MethodPost, "/products", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWatchlistDuplicateIsConflict(t *testing.T) {
	s := newTestServer(t, nil, nil)

	rec, env := s.do(t, http.MethodPost, "/products", `{"itemName":"Onion","marketName":"Karwan","vendorEmail":"v@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var product entity.Product
	require.NoError(t, json.Unmarshal(env.Data, &product))

	body := `{"productId":"` + product.ID + `","userEmail":"buyer@example.com"}`
	rec, _ = s.do(t, http.MethodPost, "/watchlist", body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, env = s.do(t, http.MethodPost, "/watchlist", `{"productId":"`+product.ID+`","userEmail":"BUYER@example.com"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", env.Error.Code)

	rec, env = s.do(t, http.MethodPost, "/watchlist", `{"productId":"abc","userEmail":"buyer@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "productId must be a valid identifier", env.Error.Message)
}

func TestRateLimitedWrites(t *testing.T) {
	s := newTestServer(t, nil, middleware.NewRateLimiter(2, time.Minute, logger.Discard()))

	for _, email := range []string{"a@example.com", "b@example.com"} {
		rec, _ := s.do(t, http.MethodPost, "/newsletter", `{"email":"`+email+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, env := s.do(t, http.MethodPost, "/newsletter", `{"email":"c@example.com"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", env.Error.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Reads are not limited.
	rec, _ = s.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoutes(t *testing.T) {
	verifier := fakeVerifier{"admin-token": "admin@example.com", "user-token": "user@example.com"}
	s := newTestServer(t, verifier, nil)
	ctx := context.Background()

	admin, err := s.users.Register(ctx, usecase.RegisterUserInput{Email: "admin@example.com"})
	require.NoError(t, err)
	_, err = s.users.UpdateRole(ctx, admin.ID, entity.RoleAdmin)
	require.NoError(t, err)
	_, err = s.users.Register(ctx, usecase.RegisterUserInput{Email: "user@example.com"})
	require.NoError(t, err)

	rec, _ := s.do(t, http.MethodGet, "/all-orders", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/all-orders", "", echo.HeaderAuthorization, "Bearer bogus")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/all-orders", "", echo.HeaderAuthorization, "Bearer user-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/all-orders", "", echo.HeaderAuthorization, "Bearer admin-token")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Public routes stay open.
	rec, _ = s.do(t, http.MethodGet, "/products", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoutesOpenWhenAuthDisabled(t *testing.T) {
	s := newTestServer(t, nil, nil)

	rec, _ := s.do(t, http.MethodGet, "/watchlist/all", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
