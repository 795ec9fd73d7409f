package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	log.Debug("not visible")
	log.Info("visible")

	assert.NotContains(t, buf.String(), "not visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestWithComponentTagsEntries(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	log.WithComponent("store").Info("section reordered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "store", entry["component"])
	assert.Equal(t, "section reordered", entry["message"])
}

func TestWithFieldsAppearInOutput(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"section": "hero"}).Warn("upload dropped")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hero", entry["section"])
}

func TestNilLoggerIsSafe(t *testing.T) {
	var log *Logger
	log.Info("ignored")
	log.Error(nil, "ignored")
	assert.Nil(t, log.WithComponent("store"))
}
