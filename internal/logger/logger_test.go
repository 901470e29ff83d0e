package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitOffDiscards(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "off", Output: &buf})
	L.Error("dropped")
	assert.Zero(t, buf.Len())
}

func TestInitLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "warn", Output: &buf})
	defer Init(Options{})

	L.Info("hidden")
	L.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown k=1")
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "DEBUG", JSON: true, Output: &buf})
	defer Init(Options{})

	L.Debug("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
