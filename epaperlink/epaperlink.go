// Package epaperlink uploads rendered frames to an OpenEPaperLink access
// point.
package epaperlink

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

// Common errors
var (
	// ErrNoHost is returned when the client is built without a host.
	ErrNoHost = errors.New("no access point host configured")
	// ErrUploadRejected is returned when the access point answers an upload
	// with a non-success status.
	ErrUploadRejected = errors.New("access point rejected upload")
)

// ClientConfig provides configuration options for the upload client.
type ClientConfig struct {
	// Host is the host (and optional port) of the access point.
	Host string

	// Timeout is the overall request timeout. Uploads run over slow
	// single-board hardware, so this is generous.
	// Default: 30 seconds.
	Timeout time.Duration
}

// Client talks to one OpenEPaperLink access point.
type Client struct {
	host string
	http *http.Client
}

// NewClient creates an upload client for an access point.
func NewClient(config *ClientConfig) (*Client, error) {
	if config == nil || config.Host == "" {
		return nil, ErrNoHost
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		host: config.Host,
		http: &http.Client{Timeout: timeout},
	}, nil
}

// UploadOptions control how the access point displays an uploaded frame.
type UploadOptions struct {
	// TTL is the number of minutes until the access point considers the
	// frame stale. Zero keeps the access point default.
	TTL int
}

// UploadImage sends a JPEG frame for the tag with the given MAC. Dithering
// on the access point is disabled; frames are rendered black-and-white
// already.
func (c *Client) UploadImage(ctx context.Context, mac string, jpeg io.Reader, opts UploadOptions) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("mac", mac); err != nil {
		return fmt.Errorf("building upload form: %w", err)
	}
	if err := writer.WriteField("dither", "0"); err != nil {
		return fmt.Errorf("building upload form: %w", err)
	}
	if opts.TTL > 0 {
		if err := writer.WriteField("ttl", strconv.Itoa(opts.TTL)); err != nil {
			return fmt.Errorf("building upload form: %w", err)
		}
	}

	part, err := writer.CreateFormFile("file", "frame.jpg")
	if err != nil {
		return fmt.Errorf("building upload form: %w", err)
	}
	if _, err := io.Copy(part, jpeg); err != nil {
		return fmt.Errorf("reading frame data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("building upload form: %w", err)
	}

	url := fmt.Sprintf("http://%s/imgupload", c.host)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("uploading to %s: %w", c.host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		if len(bytes.TrimSpace(msg)) > 0 {
			return fmt.Errorf("%w: %s: %s", ErrUploadRejected, resp.Status, bytes.TrimSpace(msg))
		}
		return fmt.Errorf("%w: %s", ErrUploadRejected, resp.Status)
	}

	io.Copy(io.Discard, resp.Body)
	return nil
}
