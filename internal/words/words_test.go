package words

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewNormalizes(t *testing.T) {
	d, err := New(
		[]string{" crane ", "Slate"},
		[]string{"adieu", "ROATE"},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.Target(0) != "CRANE" || d.Target(1) != "SLATE" {
		t.Fatalf("targets = %q, %q", d.Target(0), d.Target(1))
	}
	for _, w := range []string{"crane", "CRANE", "slate", "adieu", "Roate"} {
		if !d.IsAllowed(w) {
			t.Errorf("IsAllowed(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"four", "TOOLONG", "", "zzzzz"} {
		if d.IsAllowed(w) {
			t.Errorf("IsAllowed(%q) = true, want false", w)
		}
	}
	if a, g := d.Stats(); a != 2 || g != 4 {
		t.Errorf("Stats() = (%d, %d), want (2, 4)", a, g)
	}
}

func TestNewKeepsRepeatedTargets(t *testing.T) {
	raw := []string{"block", "crane", "slate", "about", "crane", "ghost", "light"}
	d, err := New(raw, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d.PoolSize() != len(raw) {
		t.Fatalf("PoolSize = %d, want %d", d.PoolSize(), len(raw))
	}
	for i, w := range raw {
		if d.Target(i) != strings.ToUpper(w) {
			t.Errorf("Target(%d) = %q, want %q", i, d.Target(i), strings.ToUpper(w))
		}
	}
}

func TestNewRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name             string
		targets, allowed []string
	}{
		{"long target", []string{"crane", "toolong"}, nil},
		{"digit target", []string{"ab1cd"}, nil},
		{"blank target", []string{"crane", ""}, nil},
		{"short guess", []string{"crane"}, []string{"four"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.targets, tt.allowed); !errors.Is(err, ErrBadWord) {
				t.Fatalf("err = %v, want ErrBadWord", err)
			}
		})
	}
}

func TestNewEmptyPool(t *testing.T) {
	_, err := New(nil, []string{"crane"})
	if !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("err = %v, want ErrEmptyPool", err)
	}
}

func TestLoadEmbedded(t *testing.T) {
	d, err := Load("", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	targets, allowed := d.Stats()
	if targets < 10 {
		t.Fatalf("embedded pool too small: %d", targets)
	}
	if allowed < targets {
		t.Fatalf("allowed (%d) smaller than targets (%d)", allowed, targets)
	}
	for i := 0; i < d.PoolSize(); i++ {
		w := d.Target(i)
		if len(w) != Length || !IsAlpha(w) {
			t.Errorf("target %d %q is not a 5-letter uppercase word", i, w)
		}
		if !d.IsAllowed(w) {
			t.Errorf("target %q missing from allowed set", w)
		}
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	answers := filepath.Join(dir, "answers.txt")
	allowed := filepath.Join(dir, "allowed.txt")
	if err := os.WriteFile(answers, []byte("# pool\ncrane\n\nslate\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(allowed, []byte("adieu\nroate\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(answers, allowed)
	if err != nil {
		t.Fatalf("Load both: %v", err)
	}
	if d.PoolSize() != 2 || !d.IsAllowed("ADIEU") {
		t.Fatalf("unexpected dictionary from both files: pool=%d", d.PoolSize())
	}

	d, err = Load("", allowed)
	if err != nil {
		t.Fatalf("Load allowed only: %v", err)
	}
	if d.PoolSize() != 2 || d.Target(0) != "ADIEU" {
		t.Fatalf("allowed-only file should serve as pool, got pool=%d first=%q", d.PoolSize(), d.Target(0))
	}

	d, err = Load(answers, "")
	if err != nil {
		t.Fatalf("Load answers only: %v", err)
	}
	if d.PoolSize() != 2 || d.Target(1) != "SLATE" {
		t.Fatalf("answers-only file should serve as pool, got pool=%d", d.PoolSize())
	}
	if !d.IsAllowed("ABOUT") {
		t.Fatal("answers-only load should fall back to the embedded guess list")
	}

	if _, err := Load(filepath.Join(dir, "missing.txt"), allowed); err == nil {
		t.Fatal("expected error for missing answers file")
	}
}
