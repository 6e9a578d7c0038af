package main

import (
	"bytes"
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"io"
	"net/http"
	"path/filepath"
	"testing"
	"time"
)

func TestRunApp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config := DefaultConfig()
		config.DatabasePath = filepath.Join(t.TempDir(), "db.db")
		config.ListenAddr = "127.0.0.1:18080"

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		appErr := make(chan error, 1)
		go func() {
			appErr <- RunApp(ctx, config, io.Discard)
		}()

		client := http.Client{
			Timeout: time.Second * 2,
		}

		var err error
		var res *http.Response
		for i := 0; i < 20; i++ {
			time.Sleep(50 * time.Millisecond)
			res, err = client.Get("http://" + config.ListenAddr + "/healthcheck")
			if err == nil {
				break
			}
		}

		if assert.NoError(t, err) {
			body, readErr := io.ReadAll(res.Body)
			_ = res.Body.Close()

			assert.NoError(t, readErr)
			assert.Equal(t, http.StatusOK, res.StatusCode)
			assert.Equal(t, "health", string(body))
		}

		cancel()

		select {
		case err = <-appErr:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("RunApp() did not stop after cancel")
		}
	})

	t.Run("fail", func(t *testing.T) {
		config := DefaultConfig()

		err := RunApp(context.Background(), config, io.Discard)

		assert.ErrorIs(t, err, ConfigError)
		assert.Contains(t, err.Error(), "database path is required")
	})
}

func TestHandleExitError(t *testing.T) {
	t.Run("Handle exit error", func(t *testing.T) {
		var actualExitCode int
		var out bytes.Buffer

		testCases := map[error]int{
			errors.New("dummy error"): ExitCodeMainError,
			nil:                       0,
		}

		for err, expectedCode := range testCases {
			out.Reset()
			actualExitCode = HandleExitError(&out, err)

			assert.Equal(t, expectedCode, actualExitCode)
			if err == nil {
				assert.Empty(t, out.String(), "Error is not empty")
			} else {
				assert.Contains(t, out.String(), err.Error(), "error output hasn't error description")
			}
		}
	})
}
