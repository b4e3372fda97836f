package modules

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/jonasoberschweiber/open-epaper-gen/draw"
	"github.com/jonasoberschweiber/open-epaper-gen/fonts"
	"github.com/jonasoberschweiber/open-epaper-gen/logging"
)

// outlet is one news source the module can show.
type outlet struct {
	name string
	feed string
	logo string
}

var newsOutlets = []outlet{
	{name: "tagesschau", feed: "https://www.tagesschau.de/index~rss2.xml", logo: "tagesschau.png"},
	{name: "spiegel", feed: "https://www.spiegel.de/schlagzeilen/tops/index.rss", logo: "spiegel.png"},
	{name: "sueddeutsche", feed: "https://rss.sueddeutsche.de/rss/Topthemen", logo: "sz.png"},
	{name: "zeit", feed: "http://newsfeed.zeit.de/index", logo: "zeit.png"},
}

// Layout constants for the headline screen.
const (
	headlineStartSize = 40
	headlineMinSize   = 8
	screenPadding     = 10
	bottomBarReserve  = 30
	clockSize         = 13
)

// NewsHeadlines shows the current headline of a randomly picked German news
// outlet, together with the outlet's logo and the generation time.
type NewsHeadlines struct {
	env     Env
	outlets []outlet
	pick    func(n int) int
	now     func() time.Time
}

// NewNewsHeadlines returns the news-headlines module.
func NewNewsHeadlines(env Env) *NewsHeadlines {
	return &NewsHeadlines{
		env:     env,
		outlets: newsOutlets,
		pick:    rand.Intn,
		now:     time.Now,
	}
}

// Generate implements Generator.
func (m *NewsHeadlines) Generate(ctx context.Context, canvas *draw.Canvas) (ViewOptions, error) {
	chosen := m.outlets[m.pick(len(m.outlets))]
	logging.Infof("news-headlines: fetching %s", chosen.feed)

	title, err := m.env.Feeds.LatestTitle(ctx, chosen.feed)
	if err != nil {
		return ViewOptions{}, fmt.Errorf("module news-headlines: %w", err)
	}
	logging.Debugf("news-headlines: headline %q", title)

	logo, err := m.loadLogo(chosen)
	if err != nil {
		return ViewOptions{}, fmt.Errorf("module news-headlines: %w", err)
	}

	surface := canvas.Bounds()
	headline := fitHeadline(canvas, title, surface)

	clock := draw.NewText(m.now().Format("01-02 15:04"), clockSize, fonts.Roboto)

	bottom := draw.NewHStack()
	bottom.Align = draw.AlignEnd
	bottom.Push(logo, draw.HorizontalSpacer(), clock)
	bottom.SetPadding(draw.Padding{Left: screenPadding, Right: screenPadding, Bottom: screenPadding})

	screen := draw.NewVStack()
	screen.Push(headline, draw.VerticalSpacer(), bottom)
	screen.Draw(canvas, 0, 0, surface)

	return ViewOptions{}, nil
}

func (m *NewsHeadlines) loadLogo(chosen outlet) (*draw.Image, error) {
	path := filepath.Join(m.env.Resources, "news-headlines", chosen.logo)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening logo for %s: %w", chosen.name, err)
	}
	defer file.Close()

	logo, err := draw.DecodeImage(file)
	if err != nil {
		return nil, fmt.Errorf("decoding logo for %s: %w", chosen.name, err)
	}
	return logo, nil
}

// fitHeadline shrinks the headline font size until the wrapped text fits
// above the bottom bar, then gives up at the minimum size.
func fitHeadline(canvas *draw.Canvas, title string, surface draw.Bounds) *draw.Text {
	maxWidth := surface.Width - 2*screenPadding
	maxHeight := surface.Height - bottomBarReserve - 2*screenPadding
	for size := float64(headlineStartSize); ; size-- {
		text := draw.NewText(title, size, fonts.Playfair)
		text.Wrap = true
		text.SetPadding(draw.Padding{
			Left:   screenPadding,
			Right:  screenPadding,
			Top:    screenPadding,
			Bottom: screenPadding,
		})

		bounds := text.Bounds(canvas, surface)
		if bounds.Width < maxWidth && bounds.Height < maxHeight {
			return text
		}
		if size <= headlineMinSize {
			logging.Debugf("news-headlines: headline still overflows at size %v", size)
			return text
		}
	}
}
