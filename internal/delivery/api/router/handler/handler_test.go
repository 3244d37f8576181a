package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mytube/config"
	"mytube/internal/delivery/api/middleware"
	"mytube/internal/delivery/api/validator"
	"mytube/internal/domain/entity"
	"mytube/internal/domain/service"
	mockService "mytube/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// envelope mirrors the JSON written by the response package.
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Code       string          `json:"code"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Errors     []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: time.Hour,
		},
		Media: &config.MediaConfig{TempDir: t.TempDir()},
	}
}

type testServer struct {
	echo   *echo.Echo
	auth   *middleware.AuthMiddleware
	tokens *mockService.MockTokenService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	tokens := mockService.NewMockTokenService(t)

	return &testServer{
		echo:   e,
		auth:   middleware.NewAuthMiddleware(tokens),
		tokens: tokens,
	}
}

// as registers a valid access token for userID and returns it.
func (s *testServer) as(userID uuid.UUID) string {
	token := "token-" + userID.String()
	s.tokens.EXPECT().ValidateAccessToken(token).
		Return(&service.Claims{Identity: entity.Identity{UserID: userID}}, nil).
		Maybe()

	return token
}

func (s *testServer) do(req *http.Request, token string) (*httptest.ResponseRecorder, envelope) {
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var body envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &body)

	return rec, body
}

func jsonRequest(method, target string, body any) *http.Request {
	var reader io.Reader = http.NoBody
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

// multipartRequest builds a form with the given fields and one file per entry in files.
func multipartRequest(t *testing.T, method, target string, fields map[string]string, files map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for field, filename := range files {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("content of " + filename))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}
