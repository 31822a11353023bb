package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/gdnkit/gdnkit/internal/adapters/inbound/mcp"
)

func TestNewServer(t *testing.T) {
	s := mcpadapter.NewServer(".")
	require.NotNil(t, s)
}

func TestServerHasTools(t *testing.T) {
	s := mcpadapter.NewServer(".")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	for _, name := range []string{"gdnkit_scan", "gdnkit_generate"} {
		_, ok := tools[name]
		assert.True(t, ok, "missing tool %s", name)
	}
}
