package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestMain(m *testing.M) {
	logDir, err := os.MkdirTemp("", "scalefit-cmd-logs")
	if err != nil {
		panic(err)
	}

	viper.Set(logFilenameKey, filepath.Join(logDir, "test.log"))

	code := m.Run()

	_ = os.RemoveAll(logDir)

	os.Exit(code)
}
