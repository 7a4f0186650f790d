package logger_test

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crawldesk/crawldesk/internal/logger"
)

func TestInit_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  logger.Log
		want error
	}{
		{
			name: "unknown level",
			cfg:  logger.Log{LogLevel: "loud", ServiceName: "web", AppName: "crawldesk"},
			want: logger.ErrInvalidLogLevel,
		},
		{
			name: "no service name",
			cfg:  logger.Log{LogLevel: "info", AppName: "crawldesk"},
			want: logger.ErrServiceNameIsEmpty,
		},
		{
			name: "no app name",
			cfg:  logger.Log{LogLevel: "info", ServiceName: "web"},
			want: logger.ErrAppNameIsEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, logger.Init(tt.cfg), tt.want)
		})
	}
}

func TestInit_Console(t *testing.T) {
	tests := []struct {
		name     string
		cfg      logger.Log
		wantOut  bool
		wantJSON bool
	}{
		{
			name: "nothing enabled",
			cfg:  logger.Log{ServiceName: "web", AppName: "crawldesk"},
		},
		{
			name:     "console json",
			cfg:      logger.Log{LogLevel: "info", ServiceName: "web", AppName: "crawldesk", Console: logger.Console{Enabled: true}},
			wantOut:  true,
			wantJSON: true,
		},
		{
			name:     "console json with caller and stack",
			cfg:      logger.Log{LogLevel: "trace", ServiceName: "web", AppName: "crawldesk", ReportCaller: true, Console: logger.Console{Enabled: true}},
			wantOut:  true,
			wantJSON: true,
		},
		{
			name:    "console writer",
			cfg:     logger.Log{LogLevel: "debug", ServiceName: "web", AppName: "crawldesk", Console: logger.Console{Enabled: true, UseConsoleWriter: true}},
			wantOut: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := capture(t, func() {
				require.NoError(t, logger.Init(tt.cfg))

				log.Info().Str("path", "/projects/42").Msg("trail derived")
				log.Error().Err(errors.New("boom")).Msg("render failed")
			})

			if !tt.wantOut {
				assert.Empty(t, out)
				return
			}

			require.NotEmpty(t, out)

			if !tt.wantJSON {
				assert.Contains(t, out, "trail derived")
				return
			}

			scanner := bufio.NewScanner(strings.NewReader(out))
			for scanner.Scan() {
				var line map[string]any
				require.NoError(t, json.Unmarshal(scanner.Bytes(), &line), scanner.Text())
				assert.Equal(t, "crawldesk", line["app"])
			}
		})
	}
}

// capture returns what fn writes to stdout and stderr.
func capture(t *testing.T, fn func()) string {
	t.Helper()

	stdout, stderr := os.Stdout, os.Stderr

	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout, os.Stderr = w, w

	outC := make(chan string)

	go func() {
		b, _ := io.ReadAll(r)
		outC <- string(b)
	}()

	fn()

	_ = w.Close()
	os.Stdout, os.Stderr = stdout, stderr

	return <-outC
}
