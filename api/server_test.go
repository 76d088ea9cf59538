package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpupo63/sleeklegal-backend/content"
	"github.com/rpupo63/sleeklegal-backend/models"
	"github.com/rpupo63/sleeklegal-backend/services"
)

var testConfig = map[string]string{
	"ADMIN_USERNAME":   "admin",
	"ADMIN_PASSWORD":   "password",
	"JWT_SECRET":       "test-secret",
	"ACCEPTED_ORIGINS": "https://sleeklegal.example.com",
}

type capturedEmail struct {
	sent []services.Email
}

func (c *capturedEmail) SendEmail(ctx context.Context, email services.Email) error {
	c.sent = append(c.sent, email)
	return nil
}

type nopPutter struct{ key string }

func (p *nopPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	p.key = *params.Key
	return &s3.PutObjectOutput{}, nil
}

type testServer struct {
	*httptest.Server
	deps  Dependencies
	email *capturedEmail
}

func newTestServer(t *testing.T, cfg map[string]string) *testServer {
	t.Helper()
	email := &capturedEmail{}
	deps := Dependencies{
		Attorneys:    content.NewAttorneys(nil),
		BlogPosts:    content.NewBlogPosts(nil),
		Testimonials: content.NewTestimonials(),
		Contact:      services.NewContactService(email, nil, []string{"inbox@example.com"}, ""),
		Images:       services.NewImageStoreWithClient(&nopPutter{}, "media", "images", "https://cdn.example.com"),
		Feed:         services.NewFeed(10),
	}
	ctx := context.Background()
	require.NoError(t, deps.Attorneys.Refresh(ctx))
	require.NoError(t, deps.BlogPosts.Refresh(ctx))
	require.NoError(t, deps.Testimonials.Refresh(ctx))

	srv := httptest.NewServer(newRouter(deps, withConfig(cfg), withStartupTime(time.Now())))
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, deps: deps, email: email}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	resp := s.do(t, http.MethodPost, "/admin/login", "", LoginRequest{Username: "admin", Password: "password"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestPublicReads(t *testing.T) {
	s := newTestServer(t, testConfig)

	resp := s.do(t, http.MethodGet, "/attorneys", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[CollectionResponse[models.Attorney]](t, resp)
	assert.Equal(t, 4, list.Total)
	assert.Equal(t, "local", list.Source)

	resp = s.do(t, http.MethodGet, "/attorney/1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Sarah Johnson", decode[models.Attorney](t, resp).Name)

	resp = s.do(t, http.MethodGet, "/attorney/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/blog-posts?category=family%20law", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	posts := decode[CollectionResponse[models.BlogPost]](t, resp)
	require.Equal(t, 1, posts.Total)
	assert.Equal(t, "Family Law", posts.Items[0].Category)

	resp = s.do(t, http.MethodGet, "/testimonials", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotZero(t, decode[CollectionResponse[models.Testimonial]](t, resp).Total)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s := newTestServer(t, testConfig)

	resp := s.do(t, http.MethodPost, "/admin/attorney", "", map[string]string{"name": "X"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/admin/attorney", "garbage", map[string]string{"name": "X"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/admin/login", "", LoginRequest{Username: "admin", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminAttorneyLifecycle(t *testing.T) {
	s := newTestServer(t, testConfig)
	token := s.login(t)

	resp := s.do(t, http.MethodGet, "/admin/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin", decode[Admin](t, resp).Username)

	resp = s.do(t, http.MethodPost, "/admin/attorney", token, models.Attorney{
		Name:      "Nina Patel",
		Position:  "Associate",
		Specialty: "Immigration Law",
		Email:     "nina@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[models.Attorney](t, resp)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, s.deps.Attorneys.List(), 5)

	resp = s.do(t, http.MethodPut, "/admin/attorney/"+created.ID, token, map[string]string{"position": "Partner"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Partner", decode[models.Attorney](t, resp).Position)

	resp = s.do(t, http.MethodDelete, "/admin/attorney/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodDelete, "/admin/attorney/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/admin/notifications", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminCreateValidation(t *testing.T) {
	s := newTestServer(t, testConfig)
	token := s.login(t)

	resp := s.do(t, http.MethodPost, "/admin/attorney", token, models.Attorney{Name: "No Email"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[ErrorResponse](t, resp)
	assert.Equal(t, "error", body.Status)
	assert.NotEmpty(t, body.Field)
	assert.Len(t, s.deps.Attorneys.List(), 4)

	req, err := http.NewRequest(http.MethodPost, s.URL+"/admin/attorney", strings.NewReader("{not json"))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	raw, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer raw.Body.Close()
	assert.Equal(t, http.StatusBadRequest, raw.StatusCode)
}

func TestAdminSeedWithoutBackend(t *testing.T) {
	s := newTestServer(t, testConfig)
	token := s.login(t)

	resp := s.do(t, http.MethodPost, "/admin/attorneys/seed", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/admin/blog-posts/refresh", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st := decode[content.State[models.BlogPost]](t, resp)
	assert.Equal(t, content.PhaseDegraded, st.Phase)
	assert.True(t, st.Local)
}

func TestLoginWithPasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := map[string]string{
		"ADMIN_USERNAME":      "partner",
		"ADMIN_PASSWORD":      "ignored",
		"ADMIN_PASSWORD_HASH": string(hash),
		"JWT_SECRET":          "k",
	}
	s := newTestServer(t, cfg)

	resp := s.do(t, http.MethodPost, "/admin/login", "", LoginRequest{Username: "partner", Password: "ignored"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/admin/login", "", LoginRequest{Username: "partner", Password: "s3cret"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginNotConfigured(t *testing.T) {
	s := newTestServer(t, map[string]string{})
	resp := s.do(t, http.MethodPost, "/admin/login", "", LoginRequest{Username: "admin", Password: "password"})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestExpiredToken(t *testing.T) {
	auth := authConfigFromEnv(testConfig)
	issuedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	auth.now = func() time.Time { return issuedAt }

	token, _, err := auth.issue(Admin{Username: "admin"})
	require.NoError(t, err)

	admin, err := auth.parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)

	auth.now = func() time.Time { return issuedAt.Add(13 * time.Hour) }
	_, err = auth.parse(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")

	other := auth
	other.secret = []byte("different")
	other.now = func() time.Time { return issuedAt }
	_, err = other.parse(token)
	assert.Contains(t, err.Error(), "invalid access token")
}

func TestContact(t *testing.T) {
	s := newTestServer(t, testConfig)

	resp := s.do(t, http.MethodPost, "/contact", "", services.Inquiry{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Help with a lease",
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.Len(t, s.email.sent, 1)
	assert.Equal(t, []string{"inbox@example.com"}, s.email.sent[0].Recipients)

	resp = s.do(t, http.MethodPost, "/contact", "", services.Inquiry{Name: "Jane"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestImageUpload(t *testing.T) {
	s := newTestServer(t, testConfig)
	token := s.login(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("folder", "attorneys"))
	part, err := mw.CreateFormFile("file", "portrait.png")
	require.NoError(t, err)
	_, err = part.Write(append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, s.URL+"/admin/images", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decode[ImageResponse](t, resp)
	assert.True(t, strings.HasPrefix(out.URL, "https://cdn.example.com/images/attorneys/"))
	assert.True(t, strings.HasSuffix(out.URL, ".png"))
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, testConfig)

	resp := s.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	health := decode[HealthResponse](t, resp)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "unconfigured", health.Backend)
	require.Contains(t, health.Collections, "attorneys")
	assert.Equal(t, 4, health.Collections["attorneys"].Count)
	assert.Equal(t, content.PhaseDegraded, health.Collections["attorneys"].Phase)
}

func TestCORS(t *testing.T) {
	s := newTestServer(t, testConfig)

	preflight := func(origin string) *http.Response {
		req, err := http.NewRequest(http.MethodOptions, s.URL+"/attorneys", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	blocked := preflight("https://evil.example.com")
	assert.Equal(t, http.StatusForbidden, blocked.StatusCode)

	allowed := preflight("https://sleeklegal.example.com")
	assert.Less(t, allowed.StatusCode, 300)
	assert.Equal(t, "https://sleeklegal.example.com", allowed.Header.Get("Access-Control-Allow-Origin"))
}
