package policy

import (
	"context"
	"strings"
	"testing"
)

func TestDefaultPolicyAllows(t *testing.T) {
	ctx := context.Background()
	engine, err := NewEngine(ctx, DefaultPolicy)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	decision, _, err := engine.Evaluate(ctx, map[string]interface{}{
		"brand_name":  "Zenith",
		"description": "A futuristic coffee shop serving robot-brewed espresso",
		"vibe":        "Minimalist",
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if decision != "allow" {
		t.Fatalf("expected allow, got %q", decision)
	}
}

func TestDefaultPolicyBlocksOversizedInputs(t *testing.T) {
	ctx := context.Background()
	engine, err := NewEngine(ctx, DefaultPolicy)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	cases := []struct {
		name  string
		input map[string]interface{}
	}{
		{"long description", map[string]interface{}{
			"brand_name":  "Zenith",
			"description": strings.Repeat("x", 2001),
			"vibe":        "Minimalist",
		}},
		{"long brand name", map[string]interface{}{
			"brand_name":  strings.Repeat("Z", 121),
			"description": "A futuristic coffee shop",
			"vibe":        "Minimalist",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision, _, err := engine.Evaluate(ctx, tc.input)
			if err != nil {
				t.Fatalf("Evaluate failed: %v", err)
			}
			if decision != "block" {
				t.Fatalf("expected block, got %q", decision)
			}
		})
	}
}

func TestNewEngineInvalidPolicy(t *testing.T) {
	if _, err := NewEngine(context.Background(), "this is not rego"); err == nil {
		t.Fatalf("expected error")
	}
}
