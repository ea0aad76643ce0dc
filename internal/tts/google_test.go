package tts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNewGoogleTTS_Language(t *testing.T) {
	if _, err := NewGoogleTTS(Config{Language: "en"}); err != nil {
		t.Errorf("NewGoogleTTS(en) error = %v", err)
	}
	if _, err := NewGoogleTTS(Config{Language: "xx"}); err == nil {
		t.Error("NewGoogleTTS(xx) error = nil, want unsupported language")
	}
}

func TestGoogleTTS_Synthesize(t *testing.T) {
	var requests []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("tl"); got != "de" {
			t.Errorf("tl = %q, want de", got)
		}
		if got := r.URL.Query().Get("client"); got != "tw-ob" {
			t.Errorf("client = %q, want tw-ob", got)
		}
		requests = append(requests, r.URL.Query().Get("q"))
		w.Write([]byte("MP3!"))
	}))
	defer srv.Close()

	g, err := NewGoogleTTS(Config{Language: "de", Endpoint: srv.URL})
	if err != nil {
		t.Fatalf("NewGoogleTTS() error = %v", err)
	}

	audio, err := g.Synthesize(context.Background(), "Guten Tag")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if string(audio) != "MP3!" {
		t.Errorf("audio = %q, want MP3!", audio)
	}
	if len(requests) != 1 || requests[0] != "Guten Tag" {
		t.Errorf("requests = %q, want one with the full text", requests)
	}
}

func TestGoogleTTS_SynthesizeLongTextSplits(t *testing.T) {
	var requests []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.Query().Get("q"))
		w.Write([]byte("x"))
	}))
	defer srv.Close()

	g, err := NewGoogleTTS(Config{Language: "en", Endpoint: srv.URL})
	if err != nil {
		t.Fatal(err)
	}

	long := strings.TrimSpace(strings.Repeat("word ", 50)) // 249 chars
	audio, err := g.Synthesize(context.Background(), long)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	if len(requests) < 3 {
		t.Errorf("long text produced %d requests, want at least 3", len(requests))
	}
	for i, q := range requests {
		if len(q) > maxTokenLen {
			t.Errorf("request %d has %d chars, exceeds token limit", i, len(q))
		}
	}
	if len(audio) != len(requests) {
		t.Errorf("audio length %d, want one byte per request (%d)", len(audio), len(requests))
	}
}

func TestGoogleTTS_ErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			g, err := NewGoogleTTS(Config{Language: "en", Endpoint: srv.URL})
			if err != nil {
				t.Fatal(err)
			}
			if _, err := g.Synthesize(context.Background(), "hello"); err == nil {
				t.Error("Synthesize() error = nil, want failure")
			}
		})
	}
}

func TestGoogleTTS_SynthesizeEmptyText(t *testing.T) {
	g, err := NewGoogleTTS(Config{Language: "en"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Synthesize(context.Background(), "   "); err == nil {
		t.Error("Synthesize(blank) error = nil, want failure")
	}
}

func TestGoogleTTS_SynthesizeToFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("audio-bytes"))
	}))
	defer srv.Close()

	g, err := NewGoogleTTS(Config{Language: "en", Endpoint: srv.URL})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "chunk.mp3")
	if err := g.SynthesizeToFile(context.Background(), "hello", path); err != nil {
		t.Fatalf("SynthesizeToFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "audio-bytes" {
		t.Errorf("file contents = %q, want audio-bytes", data)
	}
}

func TestSplitTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected []string
	}{
		{"short passes through", "hello world", 100, []string{"hello world"}},
		{"splits at word boundary", "alpha bravo charlie", 11, []string{"alpha bravo", "charlie"}},
		{"hard cut without spaces", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"empty input", "", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitTokens(tt.input, tt.maxLen)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("splitTokens(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	for _, code := range []string{"en", "zh-CN", "pl"} {
		if !IsSupported(code) {
			t.Errorf("IsSupported(%q) = false, want true", code)
		}
	}
	for _, code := range []string{"", "xx", "EN"} {
		if IsSupported(code) {
			t.Errorf("IsSupported(%q) = true, want false", code)
		}
	}
}
