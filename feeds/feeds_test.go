package feeds

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func feedServer(t *testing.T, items string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Testfeed</title>
<link>http://example.com</link>
<description>test</description>
%s
</channel></rss>`, items)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestLatestTitle(t *testing.T) {
	server := feedServer(t, `
<item><title>  First headline  </title><link>http://example.com/1</link></item>
<item><title>Older headline</title><link>http://example.com/2</link></item>`)

	client := NewClient(nil)
	title, err := client.LatestTitle(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("LatestTitle() error = %v", err)
	}
	if title != "First headline" {
		t.Errorf("LatestTitle() = %q, want %q", title, "First headline")
	}
}

func TestLatestTitleNormalizesUnicode(t *testing.T) {
	// The title carries a decomposed e + combining acute accent.
	server := feedServer(t, "<item><title>Café</title></item>")

	client := NewClient(nil)
	title, err := client.LatestTitle(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("LatestTitle() error = %v", err)
	}
	if title != "Café" {
		t.Errorf("LatestTitle() = %q, want the composed form %q", title, "Café")
	}
}

func TestLatestTitleEmptyFeed(t *testing.T) {
	server := feedServer(t, "")

	client := NewClient(nil)
	_, err := client.LatestTitle(context.Background(), server.URL)
	if !errors.Is(err, ErrEmptyFeed) {
		t.Errorf("LatestTitle() error = %v, want ErrEmptyFeed", err)
	}
}

func TestLatestTitleUntitledEntry(t *testing.T) {
	server := feedServer(t, "<item><link>http://example.com/1</link></item>")

	client := NewClient(nil)
	_, err := client.LatestTitle(context.Background(), server.URL)
	if !errors.Is(err, ErrEmptyFeed) {
		t.Errorf("LatestTitle() error = %v, want ErrEmptyFeed", err)
	}
}

func TestLatestTitleServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	client := NewClient(nil)
	if _, err := client.LatestTitle(context.Background(), server.URL); err == nil {
		t.Error("LatestTitle() should error on HTTP 404")
	}
}

func TestLatestTitleCanceledContext(t *testing.T) {
	server := feedServer(t, "<item><title>x</title></item>")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(nil)
	if _, err := client.LatestTitle(ctx, server.URL); err == nil {
		t.Error("LatestTitle() should error when the context is canceled")
	}
}

func TestClientSendsUserAgent(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		fmt.Fprint(w, `<rss version="2.0"><channel><title>t</title><item><title>x</title></item></channel></rss>`)
	}))
	t.Cleanup(server.Close)

	config := DefaultClientConfig()
	config.UserAgent = "epaper-test/1.0"
	client := NewClient(config)
	if _, err := client.LatestTitle(context.Background(), server.URL); err != nil {
		t.Fatalf("LatestTitle() error = %v", err)
	}
	if got != "epaper-test/1.0" {
		t.Errorf("User-Agent = %q, want %q", got, "epaper-test/1.0")
	}
}
