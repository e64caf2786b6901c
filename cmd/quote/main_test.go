package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		env   string
		json  bool
		debug bool
	}{
		{env: envLocal, json: false, debug: true},
		{env: envDev, json: true, debug: true},
		{env: envProd, json: false, debug: false},
		{env: "staging", json: false, debug: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			dir := t.TempDir()
			wd, err := os.Getwd()
			require.NoError(t, err)
			require.NoError(t, os.Chdir(dir))
			t.Cleanup(func() { _ = os.Chdir(wd) })

			log := setupLogger(tt.env)

			h, ok := log.Handler().(*dualHandler)
			require.True(t, ok)

			_, isJSON := h.coreHandler.(*slog.JSONHandler)
			assert.Equal(t, tt.json, isJSON)
			assert.Equal(t, tt.debug, log.Enabled(context.Background(), slog.LevelDebug))

			log.Error("boom")
			data, err := os.ReadFile(filepath.Join(dir, "errors.log"))
			require.NoError(t, err)
			assert.Contains(t, string(data), "boom")
		})
	}
}
