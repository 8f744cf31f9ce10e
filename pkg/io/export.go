package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/session"
)

// Document is the JSON form of a maze.
type Document struct {
	Width          int              `json:"width"`
	Height         int              `json:"height"`
	Seed           *int64           `json:"seed,omitempty"`
	HorizontalBias float64          `json:"horizontal_bias,omitempty"`
	VerticalBias   float64          `json:"vertical_bias,omitempty"`
	Passages       []maze.Link      `json:"passages"`
	Cells          []maze.CellState `json:"cells,omitempty"`
}

// NewDocument captures the size and open passages of r. With marks set it
// also records every cell's state.
func NewDocument(r maze.Reader, marks bool) Document {
	doc := Document{
		Width:    r.Width(),
		Height:   r.Height(),
		Passages: maze.Links(r),
	}
	if doc.Passages == nil {
		doc.Passages = []maze.Link{}
	}
	if marks {
		doc.Cells = maze.Snapshot(r)
	}
	return doc
}

// FromSession captures a session's maze together with its seed and biases.
func FromSession(s *session.Session, marks bool) Document {
	doc := NewDocument(s.Grid(), marks)
	opts := s.Options()
	seed := s.Seed()
	doc.Seed = &seed
	doc.HorizontalBias = opts.HorizontalBias
	doc.VerticalBias = opts.VerticalBias
	return doc
}

// WriteJSON encodes doc as indented JSON and writes it to w.
func WriteJSON(doc Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes doc to a JSON file at path.
func ExportJSON(doc Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}
