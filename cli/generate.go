package cli

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image/jpeg"
	"io"
	"os"
	"time"

	"github.com/jonasoberschweiber/open-epaper-gen/config"
	"github.com/jonasoberschweiber/open-epaper-gen/draw"
	"github.com/jonasoberschweiber/open-epaper-gen/epaperlink"
	"github.com/jonasoberschweiber/open-epaper-gen/feeds"
	"github.com/jonasoberschweiber/open-epaper-gen/fonts"
	"github.com/jonasoberschweiber/open-epaper-gen/logging"
	"github.com/jonasoberschweiber/open-epaper-gen/modules"
)

// jpegQuality is the encoder quality for frames. The access point re-encodes
// for the tag anyway, so high quality costs little.
const jpegQuality = 90

// GenerateOptions contains options for the generate command.
type GenerateOptions struct {
	Module     string
	Tag        string
	JPEG       string
	Width      int
	Height     int
	ConfigPath string
	Resources  string
}

// GenerateCommand implements the 'generate' command.
func GenerateCommand(args []string) {
	genFlags := flag.NewFlagSet("generate", flag.ExitOnError)

	var opts GenerateOptions

	genFlags.StringVar(&opts.Module, "module", "news-headlines", "Module to render")
	genFlags.StringVar(&opts.Tag, "tag", "", "MAC address of the tag to upload the frame to")
	genFlags.StringVar(&opts.JPEG, "jpeg", "", "Write the frame to this file instead of uploading")
	genFlags.IntVar(&opts.Width, "width", 0, "Frame width in pixels (default: the tag's width)")
	genFlags.IntVar(&opts.Height, "height", 0, "Frame height in pixels (default: the tag's height)")
	genFlags.StringVar(&opts.ConfigPath, "config", "config.yaml", "Path to the config file")
	genFlags.StringVar(&opts.Resources, "resources", "", "Resource directory (default: from the config file)")

	genFlags.Usage = func() {
		fmt.Printf("Usage: %s generate [options]\n\n", os.Args[0])
		fmt.Println("Render a module screen and upload it to a tag or write it to a file.")
		fmt.Println("")
		fmt.Println("Exactly one of -tag and -jpeg must be given. With -tag the frame is")
		fmt.Println("uploaded through the OpenEPaperLink access point from the config file")
		fmt.Println("and the frame dimensions default to the tag's dimensions. With -jpeg")
		fmt.Println("the frame is written to disk and -width and -height are required.")
		fmt.Println("")
		fmt.Println("Options:")
		genFlags.PrintDefaults()
		fmt.Println("")
		fmt.Println("Examples:")
		fmt.Printf("  %s generate -tag 00000222E1F5BDAA\n", os.Args[0])
		fmt.Printf("  %s generate -module news-headlines -jpeg preview.jpg -width 296 -height 128\n", os.Args[0])
	}

	if err := genFlags.Parse(args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		osExit(1)
	}

	if (opts.Tag == "") == (opts.JPEG == "") {
		genFlags.Usage()
		osExit(1)
	}

	if err := generateScreen(&opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		osExit(1)
	}

	if opts.JPEG != "" {
		fmt.Printf("Successfully wrote frame to %s\n", opts.JPEG)
	} else {
		fmt.Printf("Successfully uploaded frame for tag %s\n", opts.Tag)
	}
}

// generateScreen renders the requested module and delivers the frame.
func generateScreen(opts *GenerateOptions) error {
	// Load the configuration
	cfg, err := config.LoadAppConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := setupLogging(cfg.Logging); err != nil {
		return err
	}

	// Resolve the frame dimensions, preferring explicit flags over the tag
	width, height := opts.Width, opts.Height
	var tag *config.TagConfig
	if opts.Tag != "" {
		tag, err = cfg.FindTag(opts.Tag)
		if err != nil {
			return err
		}
		if width == 0 {
			width = tag.Width
		}
		if height == 0 {
			height = tag.Height
		}
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("frame dimensions unknown: pass -width and -height")
	}

	resources := cfg.Resources
	if opts.Resources != "" {
		resources = opts.Resources
	}

	// Load the bundled fonts
	registry, err := fonts.OpenDefault(resources)
	if err != nil {
		return fmt.Errorf("failed to load fonts: %w", err)
	}

	// Build the module environment
	feedConfig := feeds.DefaultClientConfig()
	if cfg.Feeds.Timeout > 0 {
		feedConfig.Timeout = time.Duration(cfg.Feeds.Timeout) * time.Second
	}
	if cfg.Feeds.UserAgent != "" {
		feedConfig.UserAgent = cfg.Feeds.UserAgent
	}
	env := modules.Env{
		Resources: resources,
		Feeds:     feeds.NewClient(feedConfig),
	}

	module, err := modules.New(opts.Module, env)
	if err != nil {
		return err
	}

	// Render the module into a fresh canvas
	logging.Debugf("rendering module %s at %dx%d", opts.Module, width, height)
	canvas := draw.NewCanvas(width, height, registry)

	ctx := context.Background()
	viewOpts, err := module.Generate(ctx, canvas)
	if err != nil {
		return fmt.Errorf("failed to generate screen: %w", err)
	}

	// Deliver the frame
	if opts.JPEG != "" {
		return writeFrame(opts.JPEG, canvas)
	}
	return uploadFrame(ctx, cfg, tag, canvas, viewOpts)
}

// setupLogging applies the logging section of the config file.
func setupLogging(cfg *config.LoggingConfig) error {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	var out io.Writer
	switch cfg.Output {
	case "stderr":
		out = os.Stderr
	case "stdout":
		out = os.Stdout
	default:
		// The file stays open for the lifetime of the process.
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		out = file
	}

	logging.Configure(level, out)
	return nil
}

// writeFrame encodes the canvas and writes it to the given path.
func writeFrame(path string, canvas *draw.Canvas) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := jpeg.Encode(file, canvas.Image(), &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}

	return nil
}

// uploadFrame encodes the canvas and sends it to the tag through the access
// point.
func uploadFrame(ctx context.Context, cfg *config.AppConfig, tag *config.TagConfig, canvas *draw.Canvas, viewOpts modules.ViewOptions) error {
	client, err := epaperlink.NewClient(&epaperlink.ClientConfig{Host: cfg.EPaperLinkHost})
	if err != nil {
		return err
	}

	var frame bytes.Buffer
	if err := jpeg.Encode(&frame, canvas.Image(), &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}

	logging.Infof("uploading %d byte frame to %s for tag %s", frame.Len(), cfg.EPaperLinkHost, tag.MAC)
	if err := client.UploadImage(ctx, tag.MAC, &frame, epaperlink.UploadOptions{TTL: viewOpts.TTL}); err != nil {
		return fmt.Errorf("failed to upload frame: %w", err)
	}

	return nil
}
