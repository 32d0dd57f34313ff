package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithEndpoint(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.Endpoint("search").Section("search")
	log.Info("request started")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "request started", entry["message"])
	require.Equal(t, "search", entry["endpoint"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.Endpoint("tryon")
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "tryon", entry["endpoint"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	nilLogger.Info("ignored")
	nilLogger.Error(errors.New("ignored"), "ignored")
	require.Nil(t, nilLogger.Component("tui"))

	Nop().Component("tui").Warn("ignored")
}

func TestOpenFileCreatesDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "luxe.log")
	f, err := OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	log, err := New(Options{Writer: f})
	require.NoError(t, err)
	log.Info("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "hello")
}

func TestTypedFieldHelpers(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Component("api").
		Endpoint("search").
		Response(502, 1500*time.Millisecond).
		Request("search", "tok-1", "").
		Section("profile").
		Upload("", "look.png", "image/png", 2048).
		Debug("done")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "api", entry[FieldComponent])
	require.Equal(t, "search", entry[FieldEndpoint])
	require.EqualValues(t, 502, entry[FieldStatus])
	require.EqualValues(t, 1500, entry[FieldDuration])
	require.Equal(t, "search", entry[FieldKind])
	require.Equal(t, "tok-1", entry[FieldToken])
	require.Equal(t, "profile", entry[FieldActive])
	require.Equal(t, "look.png", entry[FieldFile])
	require.Equal(t, "image/png", entry[FieldMIME])
	require.EqualValues(t, 2048, entry[FieldSize])
	require.NotContains(t, entry, FieldOrigin)
	require.NotContains(t, entry, FieldSlot)
}

func TestTypedHelpersOnNilLogger(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.Nil(t, nilLogger.Component("tui").Request("tryon", "t", "tryon"))
	nilLogger.Upload("person", "me.png", "image/png", 1).Debug("ignored")
}
