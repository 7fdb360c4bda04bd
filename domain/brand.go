// Package domain defines the core domain models for the brand generation service.
package domain

import (
	"errors"
	"strings"
)

// SocialPostCount is the fixed number of social post slots per identity.
const SocialPostCount = 3

// ColorCount is the expected number of palette entries in a strategy.
const ColorCount = 5

// Typography is a single font pick with its intended usage.
type Typography struct {
	FontFamily string `json:"fontFamily"`
	Usage      string `json:"usage"`
}

// SocialPost is one social media mockup. ImageURL is empty until the
// corresponding image call resolves, and stays empty if that call fails.
type SocialPost struct {
	Caption  string `json:"caption"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// BrandIdentity is the complete brand kit record: user inputs, the
// generated strategy text, and the asynchronously populated image URLs.
type BrandIdentity struct {
	BrandName   string       `json:"brandName"`
	Description string       `json:"description"`
	Vibe        string       `json:"vibe"`
	Tagline     string       `json:"tagline"`
	Colors      []string     `json:"colors"`
	Typography  []Typography `json:"typography"`
	LogoURL     string       `json:"logoUrl,omitempty"`
	SocialPosts []SocialPost `json:"socialPosts"`
}

// Clone returns a deep copy of the identity. Slices are copied so the
// clone can be mutated without affecting the original.
func (b *BrandIdentity) Clone() *BrandIdentity {
	if b == nil {
		return nil
	}
	out := *b
	out.Colors = append([]string(nil), b.Colors...)
	out.Typography = append([]Typography(nil), b.Typography...)
	out.SocialPosts = append([]SocialPost(nil), b.SocialPosts...)
	return &out
}

// GenerationRequest is the user input for one generation run.
type GenerationRequest struct {
	BrandName   string `json:"brandName"`
	Description string `json:"description"`
	Vibe        string `json:"vibe"`
}

// Validation errors for GenerationRequest.
var (
	ErrBrandNameRequired   = errors.New("brandName is required")
	ErrDescriptionTooShort = errors.New("description must be at least 10 characters")
	ErrVibeRequired        = errors.New("vibe is required")
)

// MinDescriptionLen is the minimum accepted description length.
const MinDescriptionLen = 10

// Validate checks the request field constraints.
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.BrandName) == "" {
		return ErrBrandNameRequired
	}
	if len(strings.TrimSpace(r.Description)) < MinDescriptionLen {
		return ErrDescriptionTooShort
	}
	if strings.TrimSpace(r.Vibe) == "" {
		return ErrVibeRequired
	}
	return nil
}

// BrandStrategy is the text-only output of the strategy step: everything
// the text provider returns before any image has been generated.
type BrandStrategy struct {
	Tagline           string       `json:"tagline"`
	Colors            []string     `json:"colors"`
	Typography        []Typography `json:"typography"`
	SocialPosts       []SocialPost `json:"socialPosts"`
	LogoPrompt        string       `json:"logoPrompt"`
	SocialImagePrompt string       `json:"socialImagePrompt"`
}

// NewIdentity builds the text-populated identity from a request and its
// strategy. Social posts are fixed at SocialPostCount slots; extra
// captions are dropped, missing ones produce empty-caption slots so the
// slot count invariant holds regardless of provider behavior.
func NewIdentity(req GenerationRequest, strategy *BrandStrategy) *BrandIdentity {
	posts := make([]SocialPost, SocialPostCount)
	for i := 0; i < SocialPostCount && i < len(strategy.SocialPosts); i++ {
		posts[i].Caption = strategy.SocialPosts[i].Caption
	}
	return &BrandIdentity{
		BrandName:   req.BrandName,
		Description: req.Description,
		Vibe:        req.Vibe,
		Tagline:     strategy.Tagline,
		Colors:      append([]string(nil), strategy.Colors...),
		Typography:  append([]Typography(nil), strategy.Typography...),
		SocialPosts: posts,
	}
}
