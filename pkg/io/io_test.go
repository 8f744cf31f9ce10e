package io_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mazeio "github.com/matzehuels/mazewalk/pkg/io"
	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/session"
)

func carved(t *testing.T) *session.Session {
	t.Helper()
	seed := int64(100)
	s, err := session.New(session.Options{Width: 3, Height: 3, HorizontalBias: 1, VerticalBias: 1.5, Seed: &seed})
	require.NoError(t, err)
	s.Skip()
	return s
}

func TestFromSession(t *testing.T) {
	s := carved(t)
	doc := mazeio.FromSession(s, false)

	assert.Equal(t, 3, doc.Width)
	assert.Equal(t, 3, doc.Height)
	require.NotNil(t, doc.Seed)
	assert.EqualValues(t, 100, *doc.Seed)
	assert.Equal(t, 1.0, doc.HorizontalBias)
	assert.Equal(t, 1.5, doc.VerticalBias)
	assert.Equal(t, maze.Links(s.Grid()), doc.Passages)
	assert.Len(t, doc.Passages, 8)
	assert.Nil(t, doc.Cells)
}

func TestWriteJSONWithMarks(t *testing.T) {
	s := carved(t)
	s.StartDepthFirst()
	s.Skip()

	var buf bytes.Buffer
	require.NoError(t, mazeio.WriteJSON(mazeio.FromSession(s, true), &buf))
	assert.Contains(t, buf.String(), `"highlighted": true`)

	var doc mazeio.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Cells, 9)
	assert.Equal(t, maze.Snapshot(s.Grid()), doc.Cells)
}

func TestNewDocumentUncarved(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, mazeio.WriteJSON(mazeio.NewDocument(maze.MustNew(2, 2), false), &buf))
	assert.Contains(t, buf.String(), `"passages": []`)
	assert.NotContains(t, buf.String(), `"seed"`)
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.json")
	require.NoError(t, mazeio.ExportJSON(mazeio.FromSession(carved(t), false), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc mazeio.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc.Passages, 8)

	err = mazeio.ExportJSON(mazeio.Document{}, filepath.Join(t.TempDir(), "missing", "maze.json"))
	assert.Error(t, err)
}
