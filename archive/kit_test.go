package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/brandforge/brandforge/domain"
)

type fakeFetcher struct {
	images map[string][]byte
	err    error
}

func (f *fakeFetcher) FetchImage(ctx context.Context, url string) ([]byte, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	body, ok := f.images[url]
	if !ok {
		return nil, "", errors.New("not found")
	}
	return body, "image/png", nil
}

func testIdentity() *domain.BrandIdentity {
	return &domain.BrandIdentity{
		BrandName:   "Zenith Coffee",
		Description: "A futuristic coffee shop serving robot-brewed espresso",
		Vibe:        "Minimalist",
		Tagline:     "Precision in every cup",
		Colors:      []string{"#111111", "#222222", "#333333", "#444444", "#555555"},
		Typography: []domain.Typography{
			{FontFamily: "Space Grotesk", Usage: "Headings"},
			{FontFamily: "Inter", Usage: "Body"},
		},
		SocialPosts: []domain.SocialPost{
			{Caption: "The future is brewed."},
			{Caption: "Robot hands, human taste."},
			{Caption: "Espresso, engineered."},
		},
	}
}

func readEntries(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	entries := make(map[string][]byte)
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open entry %s: %v", f.Name, err)
		}
		body, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read entry %s: %v", f.Name, err)
		}
		entries[f.Name] = body
	}
	return entries
}

func TestBuildWithAllImages(t *testing.T) {
	identity := testIdentity()
	identity.LogoURL = "https://img.example/logo"
	for i := range identity.SocialPosts {
		identity.SocialPosts[i].ImageURL = "https://img.example/social"
	}

	fetcher := &fakeFetcher{images: map[string][]byte{
		"https://img.example/logo":   []byte("logo-bytes"),
		"https://img.example/social": []byte("social-bytes"),
	}}
	b := NewKitBuilder(fetcher)

	data, filename, err := b.Build(context.Background(), identity)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if filename != "Zenith_Coffee_brand_kit.zip" {
		t.Fatalf("unexpected filename: %q", filename)
	}

	entries := readEntries(t, data)
	if len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(entries))
	}
	if string(entries["logo.png"]) != "logo-bytes" {
		t.Fatalf("unexpected logo entry: %q", entries["logo.png"])
	}
	for _, name := range []string{"social_post_1.png", "social_post_2.png", "social_post_3.png"} {
		if string(entries[name]) != "social-bytes" {
			t.Fatalf("unexpected %s entry: %q", name, entries[name])
		}
	}

	summary := string(entries["brand_summary.txt"])
	for _, want := range []string{
		"Brand: Zenith Coffee",
		"Tagline: Precision in every cup",
		"#333333",
		"Headings: Space Grotesk",
		"Robot hands, human taste.",
	} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestBuildWithNoImages(t *testing.T) {
	b := NewKitBuilder(&fakeFetcher{})

	data, _, err := b.Build(context.Background(), testIdentity())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	entries := readEntries(t, data)
	if len(entries) != 1 {
		t.Fatalf("expected summary only, got %d entries", len(entries))
	}
	if _, ok := entries["brand_summary.txt"]; !ok {
		t.Fatalf("summary missing: %v", entries)
	}
}

func TestBuildSkipsFailedFetches(t *testing.T) {
	identity := testIdentity()
	identity.LogoURL = "https://img.example/logo"
	identity.SocialPosts[0].ImageURL = "https://img.example/gone"

	fetcher := &fakeFetcher{images: map[string][]byte{
		"https://img.example/logo": []byte("logo-bytes"),
	}}
	b := NewKitBuilder(fetcher)

	data, _, err := b.Build(context.Background(), identity)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	entries := readEntries(t, data)
	if _, ok := entries["logo.png"]; !ok {
		t.Fatalf("logo entry missing")
	}
	if _, ok := entries["social_post_1.png"]; ok {
		t.Fatalf("failed fetch produced an entry")
	}
}

func TestSummaryDeterministic(t *testing.T) {
	a := Summary(testIdentity())
	b := Summary(testIdentity())
	if a != b {
		t.Fatalf("summary not deterministic:\n%s\n---\n%s", a, b)
	}
}

func TestKitFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Zenith", "Zenith_brand_kit.zip"},
		{"Zenith Coffee  Co", "Zenith_Coffee_Co_brand_kit.zip"},
		{"  padded  ", "padded_brand_kit.zip"},
		{"", "brand_brand_kit.zip"},
	}
	for _, tc := range cases {
		if got := KitFilename(tc.in); got != tc.want {
			t.Fatalf("KitFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildNilIdentity(t *testing.T) {
	b := NewKitBuilder(&fakeFetcher{})
	if _, _, err := b.Build(context.Background(), nil); err == nil {
		t.Fatalf("expected error")
	}
}
