package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()

	require.NoError(t, configure(logger, &buf, "debug", "json"))
	logger.WithField("report_id", "r1").Debug("assembled")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "r1", entry["report_id"])
	assert.Equal(t, "assembled", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
}

func TestConfigureRejectsBadInput(t *testing.T) {
	logger := log.New()

	assert.Error(t, configure(logger, &bytes.Buffer{}, "loud", "text"))
	assert.Error(t, configure(logger, &bytes.Buffer{}, "info", "xml"))
}
