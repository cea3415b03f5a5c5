package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONPrint(t *testing.T) {
	outWriter := &bytes.Buffer{}
	json, err := NewJSON(&Config{OutWriter: outWriter, ErrWriter: &bytes.Buffer{}})
	require.NoError(t, err)

	json.Print(struct {
		Path string `json:"path"`
	}{"/tmp/bundle"})
	assert.JSONEq(t, `{"path": "/tmp/bundle"}`, outWriter.String())
}

func TestJSONPrintString(t *testing.T) {
	outWriter := &bytes.Buffer{}
	json, err := NewJSON(&Config{OutWriter: outWriter, ErrWriter: &bytes.Buffer{}})
	require.NoError(t, err)

	json.Print("done")
	assert.JSONEq(t, `{"message": "done"}`, outWriter.String())
}

func TestJSONError(t *testing.T) {
	errWriter := &bytes.Buffer{}
	json, err := NewJSON(&Config{OutWriter: &bytes.Buffer{}, ErrWriter: errWriter})
	require.NoError(t, err)

	json.Error("it broke")
	assert.JSONEq(t, `{"error": "it broke"}`, errWriter.String())
}
