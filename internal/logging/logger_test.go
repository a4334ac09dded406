package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinedWriter_Write(t *testing.T) {
	sb1 := &strings.Builder{}
	sb1.WriteString("already-here")
	sb2 := &strings.Builder{}

	cw := NewCombinedWriter(sb1, sb2)
	require.Len(t, cw.Writers, 2)

	n, err := cw.Write([]byte("a message"))
	require.NoError(t, err)
	assert.Equal(t, 2*len("a message"), n)
	assert.Equal(t, "already-herea message", sb1.String())
	assert.Equal(t, "a message", sb2.String())
}

type faultyWriter struct{}

func (faultyWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestCombinedWriter_WriteWithError(t *testing.T) {
	sb := &strings.Builder{}
	cw := NewCombinedWriter(faultyWriter{}, sb, faultyWriter{})

	n, err := cw.Write([]byte("a message"))
	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, len("a message"), n)
	assert.Equal(t, "a message", sb.String())
}

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("DEBUG"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("info"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warning"))
	assert.Equal(t, logrus.WarnLevel, GetLevel(""))
	assert.Equal(t, logrus.WarnLevel, GetLevel("loud"))
}

func TestSetup_File(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)
	defer logrus.SetLevel(logrus.InfoLevel)
	defer logrus.SetFormatter(&logrus.TextFormatter{})

	name := filepath.Join(t.TempDir(), "overload")
	Setup(Params{Level: "info", FileName: name, FormatJSON: true})
	logrus.WithField("exercise", "Squat").Info("session started")

	data, err := os.ReadFile(name + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"exercise":"Squat"`)
	assert.Contains(t, string(data), `"msg":"session started"`)
}
