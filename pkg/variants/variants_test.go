package variants

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tkoehlen/axisgen/pkg/icon"
	"github.com/tkoehlen/axisgen/pkg/palette"
	"github.com/tkoehlen/axisgen/pkg/render/grid"
)

func TestAllEnumeration(t *testing.T) {
	all := All(palette.Default())

	if len(all) != 15 {
		t.Fatalf("All() = %d variants, want 15 (13 grid tiles + standard + hires)", len(all))
	}

	seen := map[string]bool{}
	for _, v := range all {
		if seen[v.Name] {
			t.Errorf("duplicate variant name %q", v.Name)
		}
		seen[v.Name] = true
	}

	// Every grid tile must be produced by the generator.
	for _, name := range grid.DefaultTiles() {
		if !seen[name] {
			t.Errorf("grid tile %q is not generated by any variant", name)
		}
	}
	if !seen["axis_standard"] || !seen["axis_hires"] {
		t.Error("standard and hires variants missing")
	}
}

func TestAllParameters(t *testing.T) {
	byName := map[string]icon.Options{}
	for _, v := range All(palette.Default()) {
		byName[v.Name] = v.Opts
	}

	if o := byName["axis_hires"]; o.Width != 800 || o.Height != 800 {
		t.Errorf("axis_hires size = %dx%d, want 800x800", o.Width, o.Height)
	}
	if o := byName["axis_focus_y"]; o.Emphasis != icon.EmphasizeY {
		t.Errorf("axis_focus_y emphasis = %q, want y", o.Emphasis)
	}
	if o := byName["axis_dim_110"]; o.Guide == nil || o.Guide.Target != (mgl64.Vec3{1, 1, 0}) {
		t.Errorf("axis_dim_110 guide = %+v, want target (1,1,0)", o.Guide)
	}
	if o := byName["axis_plane_100_001"]; o.Parallelogram == nil ||
		o.Parallelogram.V1 != (mgl64.Vec3{1, 0, 0}) || o.Parallelogram.V2 != (mgl64.Vec3{0, 0, 1}) {
		t.Errorf("axis_plane_100_001 parallelogram = %+v", o.Parallelogram)
	}
	if o := byName["axis_diag_111"]; len(o.ExtraGuides) != 3 {
		t.Errorf("axis_diag_111 extra guides = %d, want 3", len(o.ExtraGuides))
	}
}

func TestGeneratorRun(t *testing.T) {
	dir := t.TempDir()
	g := Generator{OutDir: dir}

	names, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(names) != 15 {
		t.Fatalf("Run() rendered %d variants, want 15", len(names))
	}

	for _, name := range names {
		for _, ext := range []string{".svg", ".png"} {
			path := filepath.Join(dir, name+ext)
			info, err := os.Stat(path)
			if err != nil {
				t.Errorf("missing output %s: %v", path, err)
				continue
			}
			if info.Size() == 0 {
				t.Errorf("output %s is empty", path)
			}
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 30 {
		t.Errorf("output dir holds %d files, want exactly 30 (15 svg+png pairs)", len(entries))
	}
}

func TestGeneratorRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := Generator{OutDir: t.TempDir()}
	if _, err := g.Run(ctx); err == nil {
		t.Error("Run() with a canceled context should fail")
	}
}

func TestGeneratorAbortsOnFirstFailure(t *testing.T) {
	// A nonexistent output directory makes the very first write fail; no
	// later variant may be attempted.
	dir := filepath.Join(t.TempDir(), "missing")
	g := Generator{OutDir: dir}

	names, err := g.Run(context.Background())
	if err == nil {
		t.Fatal("Run() into a missing directory should fail")
	}
	if len(names) != 0 {
		t.Errorf("Run() reported %d successes before the abort, want 0", len(names))
	}
}

func TestSaveBothOverwrites(t *testing.T) {
	dir := t.TempDir()
	g := Generator{OutDir: dir}
	v := All(palette.Default())[0]

	for range 2 {
		if err := g.SaveBoth(v); err != nil {
			t.Fatalf("SaveBoth() error: %v", err)
		}
	}
}
