package services

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/sleeklegal-backend/content"
)

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(zerolog.New(&buf))

	n.Notify(content.Notification{
		Collection: "attorneys",
		Operation:  "add",
		Level:      content.LevelError,
		Message:    "Failed to add attorney: boom",
	})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "attorneys", line["collection"])
	assert.Equal(t, "Failed to add attorney: boom", line["message"])
}

func TestFanOutAndFeed(t *testing.T) {
	a := NewFeed(2)
	b := NewFeed(10)
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return fixed }

	fan := FanOut{a, nil, b}
	for _, msg := range []string{"one", "two", "three"} {
		fan.Notify(content.Notification{Message: msg})
	}

	recent := a.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "three", recent[0].Message)
	assert.Equal(t, "two", recent[1].Message)
	assert.Equal(t, fixed, recent[0].At)
	assert.Len(t, b.Recent(), 3)
}
