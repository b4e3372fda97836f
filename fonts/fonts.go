// Package fonts loads TrueType fonts and shapes text for the draw package.
// A Registry maps short font names to parsed fonts and implements
// draw.Shaper; coverage masks are cached per font, rune, and size.
package fonts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/jonasoberschweiber/open-epaper-gen/draw"
)

var (
	// ErrFontNotFound is returned when a font name is not registered.
	ErrFontNotFound = errors.New("font not found")
	// ErrInvalidFont is returned when font data cannot be parsed.
	ErrInvalidFont = errors.New("invalid font data")
)

// Names of the fonts the built-in modules draw with.
const (
	Roboto   = "roboto"
	Playfair = "playfair"
)

// defaultFontFiles maps the built-in font names to their files in the
// resource directory.
var defaultFontFiles = map[string]string{
	Roboto:   "Roboto-Regular.ttf",
	Playfair: "PlayfairDisplay-Regular.ttf",
}

// maskCacheSize bounds the glyph mask cache. A surface frame uses at most a
// few dozen distinct glyphs per font and size.
const maskCacheSize = 1024

type faceKey struct {
	font string
	size float64
}

type maskKey struct {
	font string
	r    rune
	size float64
}

// Registry holds parsed fonts by name and caches the faces and glyph masks
// derived from them. It implements draw.Shaper and is safe for concurrent
// use.
type Registry struct {
	mu    sync.Mutex
	fonts map[string]*sfnt.Font
	faces map[faceKey]font.Face
	masks *lru.Cache[maskKey, draw.Mask]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	masks, _ := lru.New[maskKey, draw.Mask](maskCacheSize)
	return &Registry{
		fonts: make(map[string]*sfnt.Font),
		faces: make(map[faceKey]font.Face),
		masks: masks,
	}
}

// OpenDefault loads the fonts the built-in modules need from dir.
func OpenDefault(dir string) (*Registry, error) {
	reg := NewRegistry()
	for name, file := range defaultFontFiles {
		if err := reg.Register(name, filepath.Join(dir, file)); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Register reads a TrueType font file and registers it under name.
func (reg *Registry) Register(name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading font %q: %w", name, err)
	}
	return reg.RegisterData(name, data)
}

// RegisterData parses TrueType font data and registers it under name. A
// later registration under the same name replaces the earlier one and drops
// the faces and masks built from it.
func (reg *Registry) RegisterData(name string, data []byte) error {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.fonts[name] = parsed
	for key := range reg.faces {
		if key.font == name {
			delete(reg.faces, key)
		}
	}
	reg.masks.Purge()
	return nil
}

// Names returns the registered font names in sorted order.
func (reg *Registry) Names() []string {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	names := make([]string, 0, len(reg.fonts))
	for name := range reg.fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// face returns the cached face for a font name and pixel size. Callers hold
// reg.mu.
func (reg *Registry) face(name string, size float64) (font.Face, error) {
	key := faceKey{font: name, size: size}
	if f, ok := reg.faces[key]; ok {
		return f, nil
	}

	src, ok := reg.fonts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	// 72 DPI makes the point size equal the pixel size.
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face for %q at %g: %w", name, size, err)
	}
	reg.faces[key] = f
	return f, nil
}
