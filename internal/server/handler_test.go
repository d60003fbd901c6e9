package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewcal/crewcal/internal/config"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	return New(config.Application{Listen: ":0", Frontend: config.Frontend{Enabled: true}}).Router()
}

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/" + name)
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", name, err)
	}
	return string(data)
}

func postForm(t *testing.T, router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPreview(t *testing.T) {
	router := testRouter(t)
	rec := postForm(t, router, "/api/preview", url.Values{
		"schedule_text": {loadFixture(t, "canonical.txt")},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp previewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.EventCount)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "AST 1", resp.Events[0].Activity)
	assert.Contains(t, resp.Events[0].Crew, "CA: PAUL TIMMS")
}

func TestPreviewAppliesExcludeNames(t *testing.T) {
	router := testRouter(t)
	rec := postForm(t, router, "/api/preview", url.Values{
		"schedule_text": {loadFixture(t, "canonical.txt")},
		"exclude_names": {"Jonathan, Airhart"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp previewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	for _, crew := range resp.Events[0].Crew {
		assert.NotContains(t, strings.ToUpper(crew), "JONATHAN")
		assert.NotContains(t, strings.ToUpper(crew), "AIRHART")
	}
}

func TestPreviewEmptyText(t *testing.T) {
	router := testRouter(t)
	rec := postForm(t, router, "/api/preview", url.Values{"schedule_text": {"   "}})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "provide schedule text")
}

func TestPreviewNoEvents(t *testing.T) {
	router := testRouter(t)
	rec := postForm(t, router, "/api/preview", url.Values{"schedule_text": {"nothing resembling a schedule"}})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "No valid events found")
}

func TestConvertDownload(t *testing.T) {
	router := testRouter(t)
	rec := postForm(t, router, "/api/convert", url.Values{
		"schedule_text": {loadFixture(t, "canonical.txt")},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/calendar", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "training_schedule_2025-08.ics")
	assert.Contains(t, rec.Body.String(), "BEGIN:VCALENDAR")
	assert.Contains(t, rec.Body.String(), "SUMMARY:AST 1")
}

func TestConvertFileUpload(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("schedule_file", "schedule.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte(loadFixture(t, "canonical.txt")))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/convert", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/calendar", rec.Header().Get("Content-Type"))
}

func TestFrontendServed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Training Schedule to Calendar</title>")
}
