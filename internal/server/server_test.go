package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedServer_ServingContent(t *testing.T) {
	srv := NewFeedServer("0")
	ics := []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")
	srv.Update(ics)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.handleFeedRequest(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeTextCalendar, resp.Header.Get(config.HeaderContentType))
	assert.Equal(t, config.MimeNoSniff, resp.Header.Get(config.HeaderXContentType))
	assert.NotEmpty(t, resp.Header.Get(config.HeaderETag))
	assert.NotEmpty(t, resp.Header.Get(config.HeaderLastModified))
	assert.Equal(t, string(ics), rec.Body.String())
}

func TestFeedServer_HeadOmitsBody(t *testing.T) {
	srv := NewFeedServer("0")
	srv.Update([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"))

	req := httptest.NewRequest(http.MethodHead, "/", nil)
	rec := httptest.NewRecorder()
	srv.handleFeedRequest(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(config.HeaderETag))
}

func TestFeedServer_ETagCaching(t *testing.T) {
	srv := NewFeedServer("0")
	srv.Update([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"))

	first := httptest.NewRecorder()
	srv.handleFeedRequest(first, httptest.NewRequest(http.MethodGet, "/", nil))
	etag := first.Header().Get(config.HeaderETag)
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(config.HeaderIfNoneMatch, etag)
	rec := httptest.NewRecorder()
	srv.handleFeedRequest(rec, req)

	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestFeedServer_IfModifiedSince(t *testing.T) {
	srv := NewFeedServer("0")
	srv.Update([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"))

	first := httptest.NewRecorder()
	srv.handleFeedRequest(first, httptest.NewRequest(http.MethodGet, "/", nil))
	lastMod := first.Header().Get(config.HeaderLastModified)
	require.NotEmpty(t, lastMod)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(config.HeaderIfModifiedSince, lastMod)
	rec := httptest.NewRecorder()
	srv.handleFeedRequest(rec, req)

	assert.Equal(t, http.StatusNotModified, rec.Code)
}

func TestFeedServer_UpdateChangesETag(t *testing.T) {
	srv := NewFeedServer("0")
	srv.Update([]byte("first"))

	first := httptest.NewRecorder()
	srv.handleFeedRequest(first, httptest.NewRequest(http.MethodGet, "/", nil))
	oldETag := first.Header().Get(config.HeaderETag)

	srv.Update([]byte("second"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(config.HeaderIfNoneMatch, oldETag)
	rec := httptest.NewRecorder()
	srv.handleFeedRequest(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "second", rec.Body.String())
}

func TestFeedServer_MethodNotAllowed(t *testing.T) {
	srv := NewFeedServer("0")
	srv.Update([]byte("data"))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	srv.handleFeedRequest(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, config.AllowedMethods, rec.Header().Get(config.HeaderAllow))
}

func TestFeedServer_UnavailableBeforeFirstUpdate(t *testing.T) {
	srv := NewFeedServer("0")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.handleFeedRequest(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, config.RetryAfterSeconds, rec.Header().Get(config.HeaderRetryAfter))
}

func TestFeedServer_StartRequiresPort(t *testing.T) {
	srv := NewFeedServer("")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err := srv.Start(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrPortRequired)
}
