// Package assets loads the images handed to the simulation. Images are
// opaque handles to the simulation; the terminal client draws them as
// text sprites.
package assets

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/rockfall/internal/loop/sim"
	"github.com/tomz197/rockfall/internal/object"
)

//go:embed glyphs/*.txt
var glyphFS embed.FS

// ErrMissingAsset is returned when a configured asset does not exist.
var ErrMissingAsset = errors.New("missing asset")

// Sprite is a block of text drawn centered on an entity.
type Sprite struct {
	Lines []string
	Width int // Display columns of the widest line
}

// Library resolves image handles to sprites.
type Library map[object.Image]Sprite

// Set is the result of a load: handles for the simulation and the sprites
// behind them for the renderer.
type Set struct {
	Images  sim.Images
	Sprites Library
}

// Loader supplies images before the simulation starts.
type Loader interface {
	Load(ctx context.Context) (*Set, error)
}

// FSLoader loads one sprite file per entity kind from a file system.
type FSLoader struct {
	fsys    fs.FS
	sources map[object.Kind]string
}

var _ Loader = (*FSLoader)(nil)

// NewFSLoader creates a loader reading sources from fsys.
func NewFSLoader(fsys fs.FS, sources map[object.Kind]string) *FSLoader {
	return &FSLoader{fsys: fsys, sources: sources}
}

// Glyphs returns the loader for the built-in terminal sprites.
func Glyphs() *FSLoader {
	return NewFSLoader(glyphFS, map[object.Kind]string{
		object.KindCannon:     "glyphs/cannon.txt",
		object.KindBullet:     "glyphs/bullet.txt",
		object.KindBackground: "glyphs/title.txt",
	})
}

// Load reads every source concurrently and fails if any is missing.
func (l *FSLoader) Load(ctx context.Context) (*Set, error) {
	set := &Set{
		Images:  make(sim.Images, len(l.sources)),
		Sprites: make(Library, len(l.sources)),
	}
	var mu sync.Mutex

	eg, ctx := errgroup.WithContext(ctx)
	for kind, path := range l.sources {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := fs.ReadFile(l.fsys, path)
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("%w: %s (%s)", ErrMissingAsset, kind, path)
			}
			if err != nil {
				return fmt.Errorf("load %s: %w", kind, err)
			}

			img := object.Image(path)
			sprite := ParseSprite(data)

			mu.Lock()
			set.Images[kind] = img
			set.Sprites[img] = sprite
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}

// ParseSprite splits sprite text into lines, dropping carriage returns and
// trailing blank lines.
func ParseSprite(data []byte) Sprite {
	text := strings.ReplaceAll(string(data), "\r", "")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return Sprite{}
	}

	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return Sprite{Lines: lines, Width: width}
}
