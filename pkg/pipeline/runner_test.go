package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/adaptivegrid/pkg/errors"
	"github.com/matzehuels/adaptivegrid/pkg/observability"
	"github.com/matzehuels/adaptivegrid/pkg/scene"
)

type recordingHooks struct {
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) add(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnLayoutStart(_ context.Context, strategy string, _ int) {
	h.add("layout.start:" + strategy)
}

func (h *recordingHooks) OnLayoutComplete(_ context.Context, strategy string, _ time.Duration, err error) {
	if err != nil {
		h.add("layout.error:" + strategy)
		return
	}
	h.add("layout.done:" + strategy)
}

func (h *recordingHooks) OnRenderStart(context.Context, []string) { h.add("render.start") }

func (h *recordingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.add("render.done")
}

func installHooks(t *testing.T) *recordingHooks {
	t.Helper()
	h := &recordingHooks{}
	observability.SetPipelineHooks(h)
	t.Cleanup(observability.Reset)
	return h
}

func TestRunnerExecute(t *testing.T) {
	hooks := installHooks(t)
	s := &scene.Scene{
		Canvas: scene.Canvas{Width: 120},
		Items:  boxes(repeat(5, [2]float64{50, 20})...),
	}

	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), Input{Scene: s}, Options{
		Strategy: "balanced",
		Columns:  2,
		Formats:  []string{FormatJSON, FormatSVG},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.Scene != s {
		t.Error("Result.Scene should be the input scene")
	}
	if len(result.Artifacts) != 2 {
		t.Errorf("got %d artifacts, want 2", len(result.Artifacts))
	}
	if result.Stats.ItemCount != 5 || result.Stats.TrackCount != 2 {
		t.Errorf("Stats = %+v", result.Stats)
	}
	if result.Stats.Spread != 20 {
		t.Errorf("Spread = %v, want 20", result.Stats.Spread)
	}

	want := []string{"layout.start:balanced", "layout.done:balanced", "render.start", "render.done"}
	if !slices.Equal(hooks.events, want) {
		t.Errorf("hook events = %v, want %v", hooks.events, want)
	}
}

func TestRunnerExecute_StoredLayout(t *testing.T) {
	hooks := installHooks(t)
	stored := gallery(t)

	result, err := NewRunner(nil).Execute(context.Background(), Input{Layout: &stored}, Options{Formats: []string{FormatDOT}})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Scene != nil {
		t.Error("stored layout run should have no scene")
	}
	if result.Stats.LayoutTime != 0 {
		t.Error("stored layout run should not time a layout stage")
	}

	want := []string{"render.start", "render.done"}
	if !slices.Equal(hooks.events, want) {
		t.Errorf("hook events = %v, want %v", hooks.events, want)
	}
}

func TestRunnerExecute_Errors(t *testing.T) {
	hooks := installHooks(t)
	runner := NewRunner(nil)
	ctx := context.Background()

	if _, err := runner.Execute(ctx, Input{}, Options{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty input error = %v", err)
	}
	if _, err := runner.Execute(ctx, Input{Scene: &scene.Scene{}}, Options{Formats: []string{"gif"}}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad format error = %v", err)
	}

	bad := &scene.Scene{}
	bad.Layout.Strategy = "spiral"
	if _, err := runner.Layout(ctx, bad, Options{}); !errors.Is(err, errors.ErrCodeInvalidStrategy) {
		t.Errorf("bad strategy error = %v", err)
	}
	if !slices.Contains(hooks.events, "layout.error:spiral") {
		t.Errorf("failed layout not reported to hooks: %v", hooks.events)
	}
}

func TestParse(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	sceneTOML := write("gallery.toml", "[[items]]\nwidth = 10\nheight = 10\n")
	sceneJSON := write("gallery.json", `{"items": [{"width": 10, "height": 10}]}`)
	stored := filepath.Join(dir, "gallery.layout.json")
	if err := scene.WriteResultFile(gallery(t), stored); err != nil {
		t.Fatal(err)
	}
	renamed := write("copy.json", mustRead(t, stored))

	tests := map[string]struct {
		path       string
		wantScene  bool
		wantLayout bool
		code       errors.Code
	}{
		"toml scene":      {path: sceneTOML, wantScene: true},
		"json scene":      {path: sceneJSON, wantScene: true},
		"layout suffix":   {path: stored, wantLayout: true},
		"layout by content": {path: renamed, wantLayout: true},
		"missing":         {path: filepath.Join(dir, "nope.toml"), code: errors.ErrCodeFileNotFound},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			in, err := Parse(tt.path)
			if tt.code != "" {
				if !errors.Is(err, tt.code) {
					t.Errorf("Parse() error = %v, want code %s", err, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if (in.Scene != nil) != tt.wantScene || (in.Layout != nil) != tt.wantLayout {
				t.Errorf("Parse() = scene %v, layout %v", in.Scene != nil, in.Layout != nil)
			}
		})
	}
}

func mustRead(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestLayoutPath(t *testing.T) {
	tests := map[string]string{
		"gallery.toml":        "gallery.layout.json",
		"dir/gallery.json":    "dir/gallery.layout.json",
		"gallery.layout.json": "gallery.layout.json",
		"noext":               "noext.layout.json",
	}
	for in, want := range tests {
		if got := LayoutPath(in); got != want {
			t.Errorf("LayoutPath(%q) = %q, want %q", in, got, want)
		}
	}
}
