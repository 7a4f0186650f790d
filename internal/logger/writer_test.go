package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestLevelWriter_WriteLevel(t *testing.T) {
	var errBuf, infoBuf, traceBuf, warnBuf bytes.Buffer

	lw := &LevelWriter{
		ErrorWriter: &errBuf,
		InfoWriter:  &infoBuf,
		TraceWriter: &traceBuf,
		WarnWriter:  &warnBuf,
	}

	tests := []struct {
		level zerolog.Level
		want  *bytes.Buffer
	}{
		{zerolog.TraceLevel, &traceBuf},
		{zerolog.DebugLevel, &infoBuf},
		{zerolog.InfoLevel, &infoBuf},
		{zerolog.WarnLevel, &warnBuf},
		{zerolog.ErrorLevel, &errBuf},
		{zerolog.FatalLevel, &errBuf},
		{zerolog.PanicLevel, &errBuf},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			for _, b := range []*bytes.Buffer{&errBuf, &infoBuf, &traceBuf, &warnBuf} {
				b.Reset()
			}

			n, err := lw.WriteLevel(tt.level, []byte("x"))
			require.NoError(t, err)
			assert.Equal(t, 1, n)
			assert.Equal(t, "x", tt.want.String())
			assert.Equal(t, 1, errBuf.Len()+infoBuf.Len()+traceBuf.Len()+warnBuf.Len())
		})
	}

	n, err := lw.WriteLevel(zerolog.Disabled, []byte("x"))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNewRollingFile(t *testing.T) {
	dir := t.TempDir()

	w := NewRollingFile(dir, RollingFile{Name: "info.log", MaxSize: 10, MaxBackups: 2, MaxAge: 3})

	lj, ok := w.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "info.log"), lj.Filename)
	assert.Equal(t, 10, lj.MaxSize)
	assert.Equal(t, 2, lj.MaxBackups)
	assert.Equal(t, 3, lj.MaxAge)
}

func TestInit_Errors(t *testing.T) {
	assert.Error(t, Init(Log{LogLevel: "loud", AppName: "a", ServiceName: "s"}))
	assert.ErrorIs(t, Init(Log{LogLevel: "info", AppName: "a"}), ErrServiceNameIsEmpty)
	assert.ErrorIs(t, Init(Log{LogLevel: "info", ServiceName: "s"}), ErrAppNameIsEmpty)
}

func TestInit_FileLogging(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	err := Init(Log{
		LogLevel:    "info",
		AppName:     "test",
		ServiceName: "test",
		File: LogFile{
			Enabled: true,
			Path:    dir,
			Info:    RollingFile{Name: "info.log", MaxSize: 1},
			Error:   RollingFile{Name: "error.log", MaxSize: 1},
			Trace:   RollingFile{Name: "trace.log", MaxSize: 1},
			Warn:    RollingFile{Name: "warn.log", MaxSize: 1},
		},
	})
	require.NoError(t, err)
	assert.DirExists(t, dir)
}
