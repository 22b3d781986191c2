package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("nonsense"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel(""))
}

func TestNewJSON(t *testing.T) {
	logger := New("info", "json")
	var buf bytes.Buffer
	logger.Out = &buf

	logger.WithField("request_id", "abc").Info("meal fetched")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "meal fetched", line["message"])
	assert.Equal(t, "info", line["severity"])
	assert.Equal(t, "abc", line["request_id"])
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, base, FromContext(context.Background()))

	logger := New("debug", "text").WithField("request_id", "r-1")
	ctx := WithLogger(context.Background(), logger)

	assert.Equal(t, logger, FromContext(ctx))
}
