package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bracketpress/bracketpress/internal/config"
	"github.com/bracketpress/bracketpress/internal/logger"
	"github.com/bracketpress/bracketpress/internal/project"
)

func newTestApp(t *testing.T) *AppContext {
	t.Helper()

	log, err := logger.New(logger.Options{Writer: io.Discard})
	require.NoError(t, err)

	dir := t.TempDir()
	return &AppContext{
		Config: &config.Config{
			DataDir:      dir,
			PresetsDir:   dir + "/presets",
			ViewerAddr:   "localhost:0",
			StreamParent: "localhost",
			LogLevel:     "info",
		},
		Log: log,
	}
}

func runCommand(t *testing.T, app *AppContext, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(app)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "BracketPress")
}

func TestNewCreatesDraftWithPage(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "new", "Winter Cup: Finals!")
	require.NoError(t, err)
	assert.Contains(t, out, "winter-cup-finals")

	reg, err := app.OpenRegistry()
	require.NoError(t, err)

	records := reg.List()
	require.Len(t, records, 1)
	assert.Equal(t, project.StatusDraft, records[0].Status)

	doc, ok := project.LoadDocument(app.DocumentPath(records[0].Slug), app.Log)
	require.True(t, ok)
	assert.Equal(t, "Winter Cup: Finals!", doc.Name)
	assert.True(t, doc.State.Visible["navigation"])
	assert.True(t, doc.State.Visible["hero"])
	assert.True(t, doc.State.Visible["footer"])
	assert.False(t, doc.State.Visible["faq"])
}

func TestNewRejectsDuplicateSlug(t *testing.T) {
	app := newTestApp(t)

	_, err := runCommand(t, app, "new", "Winter Cup")
	require.NoError(t, err)

	_, err = runCommand(t, app, "new", "winter CUP")
	assert.Error(t, err)
}

func TestNewRejectsUnknownPreset(t *testing.T) {
	app := newTestApp(t)

	_, err := runCommand(t, app, "new", "Winter Cup", "--preset", "nonexistent")
	assert.Error(t, err)
}

func TestPublishLifecycle(t *testing.T) {
	app := newTestApp(t)

	_, err := runCommand(t, app, "new", "Winter Cup")
	require.NoError(t, err)

	reg, err := app.OpenRegistry()
	require.NoError(t, err)
	id := reg.List()[0].ID

	out, err := runCommand(t, app, "publish", id)
	require.NoError(t, err)
	assert.Contains(t, out, "/t/winter-cup")

	reg, err = app.OpenRegistry()
	require.NoError(t, err)
	_, ok := reg.ResolveBySlug("winter-cup")
	assert.True(t, ok)

	_, err = runCommand(t, app, "unpublish", id)
	require.NoError(t, err)

	reg, err = app.OpenRegistry()
	require.NoError(t, err)
	_, ok = reg.ResolveBySlug("winter-cup")
	assert.False(t, ok)
}

func TestListOutputs(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tournaments yet")

	_, err = runCommand(t, app, "new", "Winter Cup")
	require.NoError(t, err)

	out, err = runCommand(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "winter-cup")
	assert.Contains(t, out, "draft")

	out, err = runCommand(t, app, "list", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, "\"count\": 1")
}

func TestShowOutlinesPage(t *testing.T) {
	app := newTestApp(t)

	_, err := runCommand(t, app, "new", "Winter Cup")
	require.NoError(t, err)

	reg, err := app.OpenRegistry()
	require.NoError(t, err)
	id := reg.List()[0].ID

	out, err := runCommand(t, app, "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "winter-cup")
	assert.Contains(t, out, "Hero")
}

func TestRemoveRequiresTerminalOrForce(t *testing.T) {
	app := newTestApp(t)

	_, err := runCommand(t, app, "new", "Winter Cup")
	require.NoError(t, err)

	reg, err := app.OpenRegistry()
	require.NoError(t, err)
	id := reg.List()[0].ID

	_, err = runCommand(t, app, "remove", id)
	assert.Error(t, err, "no terminal and no --force")

	_, err = runCommand(t, app, "remove", id, "--force")
	require.NoError(t, err)

	reg, err = app.OpenRegistry()
	require.NoError(t, err)
	assert.Empty(t, reg.List())
}

func TestPresetsListsBuiltins(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "midnight")
	assert.Contains(t, out, "builtin")
}
