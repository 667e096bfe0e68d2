// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
)

// Source is a parsed font. The underlying font.Font is read-only and safe
// for concurrent use; per-shape font.Face instances are created on demand
// because font.Face is not.
type Source struct {
	font *font.Font
}

// NewSource parses TTF/OTF font data.
func NewSource(data []byte) (*Source, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return &Source{font: face.Font}, nil
}

// Font returns the parsed font.
func (s *Source) Font() *font.Font { return s.font }

// face creates a lightweight font.Face for one shaping call.
func (s *Source) face() *font.Face { return font.NewFace(s.font) }
