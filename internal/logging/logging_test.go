package logging

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := Setup(Options{Level: "loud"})
		assert.Error(t, err)
	})

	t.Run("stderr only", func(t *testing.T) {
		closer, err := Setup(Options{Level: "debug"})
		require.NoError(t, err)
		assert.Equal(t, log.DebugLevel, log.GetLevel())
		assert.NoError(t, closer.Close())
	})

	t.Run("rotating file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snowseeker.log")
		closer, err := Setup(Options{Level: "info", File: path})
		require.NoError(t, err)

		log.Info("written to file")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "written to file")
	})
}
