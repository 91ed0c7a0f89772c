package src

import (
	"bytes"
	"testing"

	"polyhello/src/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = ai.HelloResult{OK: true, Provider: ai.Groq, Model: ai.GroqModel, Message: "Hello!"}

func TestRenderResult_JSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderResult(&buf, sample, "json"))

	want := `{
  "ok": true,
  "provider": "groq",
  "model": "llama-3.1-8b-instant",
  "message": "Hello!"
}
`
	assert.Equal(t, want, buf.String())
}

func TestRenderResult_YAML(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderResult(&buf, sample, "yaml"))

	want := `ok: true
provider: groq
model: llama-3.1-8b-instant
message: Hello!
`
	assert.Equal(t, want, buf.String())
}
