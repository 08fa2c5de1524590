package main

import (
	"go/build"
	"path/filepath"
	"strings"
	"testing"
)

const modulePath = "github.com/decker502/rewardfx"

// TestTerminalDemoWithoutEbiten 终端演示的依赖闭包里不能出现 ebiten（否则需要 cgo 和 X11）
func TestTerminalDemoWithoutEbiten(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("failed to resolve module root: %v", err)
	}

	seen := make(map[string]bool)
	var visit func(importPath, dir, from string)
	visit = func(importPath, dir, from string) {
		if seen[importPath] {
			return
		}
		seen[importPath] = true

		pkg, err := build.Default.ImportDir(dir, 0)
		if err != nil {
			t.Fatalf("failed to read %s: %v", importPath, err)
		}
		for _, imp := range pkg.Imports {
			if strings.HasPrefix(imp, "github.com/hajimehoshi/ebiten") {
				t.Errorf("%s imports %s (via %s)", importPath, imp, from)
				continue
			}
			if rest, ok := strings.CutPrefix(imp, modulePath+"/"); ok {
				visit(imp, filepath.Join(root, filepath.FromSlash(rest)), importPath)
			}
		}
	}
	visit(modulePath+"/cmd/rewardterm", ".", "")

	if !seen[modulePath+"/pkg/render/term"] {
		t.Error("expected the terminal demo to use pkg/render/term")
	}
}
