package prompt

import (
	"context"
	"strings"
	"testing"
)

func TestStaticEnhancerEnhance(t *testing.T) {
	e := NewStaticEnhancer()
	got, err := e.Enhance(context.Background(), "  neon samurai portrait ")
	if err != nil {
		t.Fatalf("Enhance() error: %v", err)
	}
	if !strings.HasPrefix(got, "Neon Samurai Portrait") {
		t.Fatalf("Enhance() = %q, want title-cased subject first", got)
	}
	if !strings.Contains(got, "professional photography") {
		t.Fatalf("Enhance() = %q, missing dressing clause", got)
	}
}

func TestStaticEnhancerRejectsEmptyInput(t *testing.T) {
	e := NewStaticEnhancer()
	if _, err := e.Enhance(context.Background(), "   "); err == nil {
		t.Fatalf("Enhance() should reject empty prompt")
	}
	if _, err := e.Analyze(context.Background(), ""); err == nil {
		t.Fatalf("Analyze() should reject empty image")
	}
}

func TestStaticEnhancerAnalyzeIsDeterministic(t *testing.T) {
	e := NewStaticEnhancer()
	a, err := e.Analyze(context.Background(), "data:image/png;base64,AAAA")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	b, _ := e.Analyze(context.Background(), "data:image/png;base64,BBBB")
	if a != b || a == "" {
		t.Fatalf("Analyze() should be a fixed description, got %q and %q", a, b)
	}
}
