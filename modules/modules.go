// Package modules contains the screen generators selectable from the CLI.
// A module owns the full content of a tag frame: it fetches whatever data it
// needs, lays out a view tree, and draws it onto the canvas.
package modules

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jonasoberschweiber/open-epaper-gen/draw"
	"github.com/jonasoberschweiber/open-epaper-gen/feeds"
)

// ErrUnknownModule is returned when a module name is not registered.
var ErrUnknownModule = errors.New("unknown module")

// ViewOptions tell the caller how to treat a generated frame.
type ViewOptions struct {
	// TTL is the number of minutes until the frame should be considered
	// stale and regenerated. Zero means no preference.
	TTL int
}

// Env carries the shared resources a module may need.
type Env struct {
	// Resources is the asset directory.
	Resources string

	// Feeds fetches RSS feeds.
	Feeds *feeds.Client
}

// Generator renders one module's screen onto a canvas.
type Generator interface {
	Generate(ctx context.Context, canvas *draw.Canvas) (ViewOptions, error)
}

// builders maps module names to their constructors.
var builders = map[string]func(Env) Generator{
	"news-headlines": func(env Env) Generator { return NewNewsHeadlines(env) },
}

// New returns the named module, wired to env.
func New(name string, env Env) (Generator, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModule, name)
	}
	return build(env), nil
}

// Names returns the registered module names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
