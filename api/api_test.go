package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/assets"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/drafts"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/errs"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/fixtures"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/showcase"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/storage"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/submissions"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type memorySubmissions struct {
	rows []models.Submission
}

func (m *memorySubmissions) InsertSubmission(_ context.Context, s *models.Submission) error {
	m.rows = append(m.rows, *s)
	return nil
}

type fakeAdmin struct{}

func (fakeAdmin) ListTable(_ context.Context, table string) (any, error) {
	if table != "projects" {
		return nil, errs.NewNotFoundError("table " + table)
	}
	return []string{"p1"}, nil
}

type testEnv struct {
	handler     http.Handler
	drafts      *drafts.Manager
	persistence *drafts.MemoryPersistence
	files       *storage.MemoryStorage
	stored      *memorySubmissions
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	store, err := fixtures.Default()
	require.NoError(t, err)

	resolver := assets.New("https://cdn.example.se/public", "/placeholder.svg")
	persistence := drafts.NewMemoryPersistence()
	manager := drafts.NewManager(persistence, drafts.Options{Debounce: 10 * time.Millisecond})
	files := storage.NewMemoryStorage(assets.BucketSubmissions, resolver)
	stored := &memorySubmissions{}

	deps := Dependencies{
		Showcase:        showcase.NewService(store, resolver, showcase.WithExtraCards(store.ExtraCards())),
		Drafts:          manager,
		Submissions:     submissions.NewService(stored, files, submissions.WithDrafts(manager)),
		Admin:           fakeAdmin{},
		AdminJWTSecret:  testSecret,
		AcceptedOrigins: []string{"https://festival.example.se"},
	}
	router := newRouter(deps,
		withConfig(map[string]string{"LOG_HTTP_REQUESTS": "false"}),
		withStartupTime(time.Now()))
	return testEnv{handler: router, drafts: manager, persistence: persistence, files: files, stored: stored}
}

func (e testEnv) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func token(t *testing.T, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, adminClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[HealthResponse](t, rec).Status)
}

func TestProjects(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/projects", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, decode[CardCollection](t, rec).Total)

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/projects?tag=dans", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[CardCollection](t, rec)
	require.Equal(t, 1, got.Total)
	assert.Equal(t, "Robotdans", got.Projects[0].Title)

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/projects?search=zzz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"projects":[],"total":0}`, rec.Body.String())

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/projects/7b0f6a1e-3c1d-4a8e-9a51-0d2f1e7c9a02", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/images/ljusrum.png", decode[showcase.Card](t, rec).Image)

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/projects/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestParticipants(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/participants?sort=projects", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[ParticipantCollection](t, rec)
	require.Equal(t, 3, list.Total)
	assert.Equal(t, "Anna Li", list.Participants[0].Name)
	assert.Contains(t, list.Roles, "Koreograf")

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/participants/bjorn-ostberg", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Björn Östberg", decode[showcase.AggregatedParticipant](t, rec).Name)

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/participants/nobody", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", decode[ErrorResponse](t, rec).Status)
}

func TestSponsorsAndTags(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/sponsors", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	sponsors := decode[SponsorCollection](t, rec).Sponsors
	require.Len(t, sponsors, 2)
	assert.Equal(t, models.SponsorTypeMain, sponsors[0].Type)

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/tags", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode[TagCollection](t, rec).Tags, "ljus")
}

func TestAdminRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/admin/projects", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/admin/projects", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, env.do(t, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "editor"))
	assert.Equal(t, http.StatusForbidden, env.do(t, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, adminRole))
	rec = env.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"table":"projects","rows":["p1"]}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/admin/submission_drafts", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, adminRole))
	assert.Equal(t, http.StatusNotFound, env.do(t, req).Code)
}

func TestDrafts(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/drafts", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	for _, session := range []string{"sess-a", "sess-b", "sess-c"} {
		req := httptest.NewRequest(http.MethodGet, "/drafts", nil)
		req.Header.Set(sessionHeader, session)
		rec = env.do(t, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decode[DraftResponse](t, rec).Found)
	}
	assert.Zero(t, env.drafts.Len())

	body := `{"formData":{"title":"Ljusrum"},"currentStep":2}`
	req := httptest.NewRequest(http.MethodPut, "/drafts", bytes.NewBufferString(body))
	req.Header.Set(sessionHeader, "sess-1")
	rec = env.do(t, req)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.True(t, decode[DraftResponse](t, rec).Scheduled)

	env.drafts.FlushAll(context.Background())

	req = httptest.NewRequest(http.MethodGet, "/drafts", nil)
	req.Header.Set(sessionHeader, "sess-1")
	rec = env.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[DraftResponse](t, rec)
	require.True(t, got.Found)
	assert.Equal(t, "offered", got.State)
	assert.Equal(t, 2, got.Draft.CurrentStep)

	req = httptest.NewRequest(http.MethodPost, "/drafts/restore", nil)
	req.Header.Set(sessionHeader, "sess-1")
	rec = env.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "restored", decode[DraftResponse](t, rec).State)

	req = httptest.NewRequest(http.MethodPost, "/drafts/restore", nil)
	req.Header.Set(sessionHeader, "sess-1")
	assert.Equal(t, http.StatusConflict, env.do(t, req).Code)

	req = httptest.NewRequest(http.MethodDelete, "/drafts", nil)
	req.Header.Set(sessionHeader, "sess-1")
	assert.Equal(t, http.StatusNoContent, env.do(t, req).Code)
	_, err := env.persistence.Load(context.Background(), "sess-1")
	assert.ErrorIs(t, err, drafts.ErrNotFound)
	assert.Zero(t, env.drafts.Len())
}

func multipartSubmission(t *testing.T, payload string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("payload", payload))
	for name, content := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="files"; filename="`+name+`"`)
		h.Set("Content-Type", "text/plain")
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestCreateSubmission(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.persistence.Save(context.Background(), "sess-9", drafts.Draft{FormData: map[string]any{"title": "x"}}))

	payload := `{"type":"project","title":"Ljudvandring","submittedBy":"Åsa Ek","contactEmail":"asa@example.se"}`
	body, contentType := multipartSubmission(t, payload, map[string]string{"karta.txt": "norr"})
	req := httptest.NewRequest(http.MethodPost, "/submissions", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(sessionHeader, "sess-9")
	rec := env.do(t, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	res := decode[submissions.Result](t, rec)
	assert.Equal(t, "sv", res.Submission.LanguagePreference)
	require.Len(t, res.Submission.Files, 1)
	assert.Len(t, env.files.Keys(), 1)
	assert.Len(t, env.stored.rows, 1)

	_, err := env.persistence.Load(context.Background(), "sess-9")
	assert.ErrorIs(t, err, drafts.ErrNotFound)
}

func TestCreateSubmission_Rejects(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/submissions", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	assert.Equal(t, http.StatusUnsupportedMediaType, env.do(t, req).Code)

	body, contentType := multipartSubmission(t, `{"type":"project","title":"","submittedBy":"A","contactEmail":"a@example.se"}`, nil)
	req = httptest.NewRequest(http.MethodPost, "/submissions", body)
	req.Header.Set("Content-Type", contentType)
	rec := env.do(t, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "title", decode[ErrorResponse](t, rec).Field)

	body, contentType = multipartSubmission(t, `not json`, nil)
	req = httptest.NewRequest(http.MethodPost, "/submissions", body)
	req.Header.Set("Content-Type", contentType)
	assert.Equal(t, http.StatusBadRequest, env.do(t, req).Code)
	assert.Empty(t, env.stored.rows)
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/projects", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	assert.Equal(t, http.StatusForbidden, env.do(t, req).Code)

	req = httptest.NewRequest(http.MethodOptions, "/projects", nil)
	req.Header.Set("Origin", "https://festival.example.se")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := env.do(t, req)
	assert.Equal(t, "https://festival.example.se", rec.Header().Get("Access-Control-Allow-Origin"))
}
