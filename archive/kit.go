// Package archive assembles the downloadable brand kit: a text summary
// plus whichever generated images could be fetched, zipped together.
package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/brandforge/brandforge/domain"
)

// Fetcher retrieves a remote image, returning its bytes and content type.
type Fetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, string, error)
}

// KitSuffix is appended to the sanitized brand name to form the
// archive filename.
const KitSuffix = "_brand_kit.zip"

var whitespaceRe = regexp.MustCompile(`\s+`)

// KitBuilder builds brand kit archives.
type KitBuilder struct {
	fetcher Fetcher
}

// NewKitBuilder creates a kit builder using the given image fetcher.
func NewKitBuilder(fetcher Fetcher) *KitBuilder {
	return &KitBuilder{fetcher: fetcher}
}

// Build produces the zip archive and its filename for the identity.
// Images whose URL is absent are skipped; per-image fetch failures are
// logged and skipped, never aborting the archive. The text summary is
// byte-deterministic for equal identities.
func (b *KitBuilder) Build(ctx context.Context, identity *domain.BrandIdentity) ([]byte, string, error) {
	if identity == nil {
		return nil, "", fmt.Errorf("no identity to archive")
	}

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	f, err := w.Create("brand_summary.txt")
	if err != nil {
		return nil, "", fmt.Errorf("failed to create summary entry: %w", err)
	}
	if _, err := f.Write([]byte(Summary(identity))); err != nil {
		return nil, "", fmt.Errorf("failed to write summary: %w", err)
	}

	b.addImage(ctx, w, identity.LogoURL, "logo.png")
	for i, post := range identity.SocialPosts {
		b.addImage(ctx, w, post.ImageURL, fmt.Sprintf("social_post_%d.png", i+1))
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize archive: %w", err)
	}

	return buf.Bytes(), KitFilename(identity.BrandName), nil
}

// addImage fetches one image and writes it into the archive. Absent
// URLs and fetch failures leave no entry behind.
func (b *KitBuilder) addImage(ctx context.Context, w *zip.Writer, url, name string) {
	if url == "" {
		return
	}
	body, _, err := b.fetcher.FetchImage(ctx, url)
	if err != nil {
		log.Printf("WARN: skipping %s, fetch failed: %v", name, err)
		return
	}
	f, err := w.Create(name)
	if err != nil {
		log.Printf("WARN: skipping %s, archive entry failed: %v", name, err)
		return
	}
	if _, err := f.Write(body); err != nil {
		log.Printf("WARN: failed to write %s: %v", name, err)
	}
}

// Summary renders the deterministic text summary of the identity.
func Summary(identity *domain.BrandIdentity) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Brand: %s\n", identity.BrandName)
	fmt.Fprintf(&sb, "Tagline: %s\n", identity.Tagline)
	fmt.Fprintf(&sb, "Vibe: %s\n", identity.Vibe)
	fmt.Fprintf(&sb, "Description: %s\n", identity.Description)

	sb.WriteString("\nColors:\n")
	for _, c := range identity.Colors {
		fmt.Fprintf(&sb, "%s\n", c)
	}

	sb.WriteString("\nTypography:\n")
	for _, t := range identity.Typography {
		fmt.Fprintf(&sb, "%s: %s\n", t.Usage, t.FontFamily)
	}

	sb.WriteString("\nSocial Captions:\n")
	for _, p := range identity.SocialPosts {
		fmt.Fprintf(&sb, "%s\n", p.Caption)
	}

	return sb.String()
}

// KitFilename returns the archive filename for a brand name, with
// whitespace runs collapsed to underscores.
func KitFilename(brandName string) string {
	name := whitespaceRe.ReplaceAllString(strings.TrimSpace(brandName), "_")
	if name == "" {
		name = "brand"
	}
	return name + KitSuffix
}
