package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/phrazzld/trivia-board/internal/api"
	"github.com/phrazzld/trivia-board/internal/generation"
	"github.com/phrazzld/trivia-board/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestAssembler(t *testing.T) *generation.GameAssembler {
	t.Helper()

	assembler, err := generation.NewGameAssembler(
		&mocks.MockClueSource{},
		generation.NewRandom(1),
		generation.DefaultOptions(),
		testLogger(),
	)
	require.NoError(t, err)
	return assembler
}

func TestGenerateAndWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, generateAndWrite(context.Background(), &buf, newTestAssembler(t), formatJSON))

	var resp api.GameResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Len(t, resp.Single.Categories, 6)
	assert.Len(t, resp.Double.Categories, 6)
	assert.NotEmpty(t, resp.ID)
}

func TestGenerateAndWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, generateAndWrite(context.Background(), &buf, newTestAssembler(t), formatYAML))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "single")
	assert.Contains(t, decoded, "double")
	assert.Contains(t, decoded, "bonus")
}

func TestGenerateAndWriteError(t *testing.T) {
	generator := &mocks.MockGameGenerator{Err: generation.ErrUpstreamFetch}

	var buf bytes.Buffer
	err := generateAndWrite(context.Background(), &buf, generator, formatJSON)
	assert.True(t, errors.Is(err, generation.ErrUpstreamFetch))
	assert.Zero(t, buf.Len())
}

func TestGameCmdRejectsUnknownFormat(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"game", "--format", "xml"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
