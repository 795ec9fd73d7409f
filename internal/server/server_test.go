package server

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bracketpress/bracketpress/internal/assets"
	"github.com/bracketpress/bracketpress/internal/livestream"
	"github.com/bracketpress/bracketpress/internal/logger"
	"github.com/bracketpress/bracketpress/internal/palette"
	"github.com/bracketpress/bracketpress/internal/project"
	"github.com/bracketpress/bracketpress/internal/store"
)

type testEnv struct {
	server   *Server
	registry *project.Registry
	docsDir  string
	stream   *livestream.Manager
	log      *logger.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log, err := logger.New(logger.Options{Writer: io.Discard})
	require.NoError(t, err)

	dir := t.TempDir()
	reg, err := project.NewRegistry(filepath.Join(dir, "tournaments.json"), log)
	require.NoError(t, err)

	stream := livestream.NewManager(filepath.Join(dir, "stream.yaml"), log)
	docsDir := filepath.Join(dir, "documents")

	srv := New(Options{
		Registry:     reg,
		Stream:       stream,
		DocumentsDir: docsDir,
		StreamParent: "cups.example.com",
		Log:          log,
	})
	return &testEnv{server: srv, registry: reg, docsDir: docsDir, stream: stream, log: log}
}

func (e *testEnv) addTournament(t *testing.T, id, name string, status project.Status) project.Tournament {
	t.Helper()
	record := project.Tournament{
		ID:           id,
		Name:         name,
		StartDate:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Colors:       palette.DefaultBase(),
		Status:       project.StatusDraft,
		RegisteredAt: time.Now().UTC(),
	}
	require.NoError(t, e.registry.Add(record))
	if status == project.StatusPublished {
		require.NoError(t, e.registry.SetStatus(id, project.StatusPublished))
	}
	got, err := e.registry.Get(id)
	require.NoError(t, err)
	return got
}

func (e *testEnv) writePage(t *testing.T, slug string) {
	t.Helper()
	s := store.New(e.log)
	doc := project.NewDocument(slug, s, assets.NewRegistry(e.log))
	require.NoError(t, project.SaveDocument(filepath.Join(e.docsDir, slug+".json"), doc))
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)

	req, _ := http.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := env.server.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTournamentsListsPublishedOnly(t *testing.T) {
	env := newTestEnv(t)
	env.addTournament(t, "t1", "Winter Cup", project.StatusPublished)
	env.addTournament(t, "t2", "Secret Draft", project.StatusDraft)

	req, _ := http.NewRequest(http.MethodGet, "/api/tournaments", nil)
	resp, err := env.server.App().Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []project.Tournament
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ID)
}

func TestPageServesPublished(t *testing.T) {
	env := newTestEnv(t)
	record := env.addTournament(t, "t1", "Winter Cup", project.StatusPublished)
	env.writePage(t, record.Slug)

	req, _ := http.NewRequest(http.MethodGet, "/t/winter-cup", nil)
	resp, err := env.server.App().Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got pageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "winter-cup", got.Tournament.Slug)
	assert.Equal(t, project.DocumentVersion, got.Page.Version)
}

func TestPage404ForDraftAndUnknown(t *testing.T) {
	env := newTestEnv(t)
	record := env.addTournament(t, "t1", "Winter Cup", project.StatusDraft)
	env.writePage(t, record.Slug)

	for _, slug := range []string{"winter-cup", "never-heard-of-it"} {
		req, _ := http.NewRequest(http.MethodGet, "/t/"+slug, nil)
		resp, err := env.server.App().Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, slug)
	}
}

func TestPage404WhenDocumentMissing(t *testing.T) {
	env := newTestEnv(t)
	env.addTournament(t, "t1", "Winter Cup", project.StatusPublished)

	req, _ := http.NewRequest(http.MethodGet, "/t/winter-cup", nil)
	resp, err := env.server.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStreamEndpoint(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.stream.Set(livestream.Config{
		Channel: "https://twitch.tv/bracketcaster",
		Enabled: true,
		Muted:   true,
	}))

	req, _ := http.NewRequest(http.MethodGet, "/api/stream", nil)
	resp, err := env.server.App().Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got streamResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.True(t, got.Enabled)
	assert.Contains(t, got.EmbedURL, "channel=bracketcaster")
	assert.True(t, got.Muted)

	// Reserved channel segment suppresses the embed.
	require.NoError(t, env.stream.Set(livestream.Config{Channel: "https://twitch.tv/directory", Enabled: true}))
	resp, err = env.server.App().Test(req)
	require.NoError(t, err)
	got = streamResponse{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.False(t, got.Enabled)
	assert.Empty(t, got.EmbedURL)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err := env.server.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
