package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	t.Run("rejects empty prefix", func(t *testing.T) {
		_, err := New("", "\033[36m", &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("rejects nil output", func(t *testing.T) {
		_, err := New("APP", "\033[36m", nil)
		assert.Error(t, err)
	})

	t.Run("labels every level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New("SOLVER", "\033[36m", &buf)
		assert.NoError(t, err)

		logger.Info("queued")
		logger.Warning("slow")
		logger.Error("failed")

		out := buf.String()
		assert.Contains(t, out, "[SOLVER]")
		assert.Contains(t, out, "[INFO] queued")
		assert.Contains(t, out, "[WARNING] slow")
		assert.Contains(t, out, "[ERROR] failed")
	})
}
