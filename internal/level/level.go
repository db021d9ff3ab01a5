// Package level reads tile maps from the text level format and generates
// procedural ones.
//
// A level is a block of rows, one character per cell:
//
//	.  empty (a space works too)
//	#  solid
//	"  grass
//	@  captain spawn
//	c  crabby spawn
//
// Lines starting with ';' and blank lines are skipped. Short rows are
// padded with empty cells up to the longest row.
package level

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"pirate-platformer/internal/tilemap"
)

// ErrNoRows is returned for input without any level rows.
var ErrNoRows = errors.New("level has no rows")

//go:embed levels/harbor.txt
var harbor []byte

var glyphs = map[rune]tilemap.TileID{
	'.': tilemap.TileEmpty,
	' ': tilemap.TileEmpty,
	'#': tilemap.TileSolid,
	'"': tilemap.TileGrass,
	'@': tilemap.TileCaptainSpawn,
	'c': tilemap.TileCrabbySpawn,
}

// Glyph returns the level-format character for t.
func Glyph(t tilemap.TileID) rune {
	switch t {
	case tilemap.TileSolid:
		return '#'
	case tilemap.TileGrass:
		return '"'
	case tilemap.TileCaptainSpawn:
		return '@'
	case tilemap.TileCrabbySpawn:
		return 'c'
	}
	return '.'
}

// Parse reads a level from r.
func Parse(r io.Reader) (*tilemap.Map, error) {
	var rows [][]tilemap.TileID
	width := 0
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, ";") {
			continue
		}
		row := make([]tilemap.TileID, 0, len(text))
		col := 0
		for _, ch := range text {
			col++
			id, ok := glyphs[ch]
			if !ok {
				return nil, fmt.Errorf("line %d col %d: unknown tile %q", line, col, ch)
			}
			row = append(row, id)
		}
		if len(row) > width {
			width = len(row)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	m := tilemap.New(width, len(rows))
	for y, row := range rows {
		copy(m.Rows[y], row)
	}
	return m, nil
}

// Load reads a level file.
func Load(path string) (*tilemap.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level: %w", err)
	}
	defer f.Close()
	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return m, nil
}

// Default returns a fresh copy of the built-in level.
func Default() *tilemap.Map {
	m, err := Parse(bytes.NewReader(harbor))
	if err != nil {
		panic("level: embedded level is invalid: " + err.Error())
	}
	return m
}

// Format writes m in the level format.
func Format(w io.Writer, m *tilemap.Map) error {
	bw := bufio.NewWriter(w)
	for _, row := range m.Rows {
		for _, t := range row {
			bw.WriteRune(Glyph(t))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
