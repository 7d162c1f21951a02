package grid

import (
	"testing"

	"github.com/matzehuels/adaptivegrid/pkg/errors"
	"github.com/matzehuels/adaptivegrid/pkg/geom"
)

func TestNew(t *testing.T) {
	type tc struct {
		cfg      Config
		name     string
		spacing  float64
		anchor   geom.Anchor
		wantCode errors.Code
	}

	tests := map[string]tc{
		"default is flow": {
			cfg:     Config{},
			name:    StrategyFlow,
			spacing: DefaultFlowSpacing,
			anchor:  geom.TopLeading,
		},
		"flow with overrides": {
			cfg:     Config{Strategy: "Flow", Spacing: Float(2), Anchor: "center"},
			name:    StrategyFlow,
			spacing: 2,
			anchor:  geom.Center,
		},
		"columns": {
			cfg:    Config{Strategy: StrategyColumns, Columns: 3},
			name:   StrategyColumns,
			anchor: geom.TopLeading,
		},
		"balanced": {
			cfg:     Config{Strategy: StrategyBalanced, Columns: 2, Spacing: Float(4)},
			name:    StrategyBalanced,
			spacing: 4,
			anchor:  geom.TopLeading,
		},
		"centered": {
			cfg:    Config{Strategy: StrategyCentered, Columns: 4},
			name:   StrategyCentered,
			anchor: geom.Center,
		},
		"columns keep their name with a center anchor": {
			cfg:    Config{Strategy: StrategyColumns, Columns: 2, Anchor: "center"},
			name:   StrategyColumns,
			anchor: geom.Center,
		},
		"centered keeps its name with a top-leading anchor": {
			cfg:    Config{Strategy: StrategyCentered, Columns: 2, Anchor: "top-leading"},
			name:   StrategyCentered,
			anchor: geom.TopLeading,
		},
		"many columns": {
			cfg:    Config{Strategy: StrategyBalanced, Columns: 2000},
			name:   StrategyBalanced,
			anchor: geom.TopLeading,
		},
		"explicit zero spacing": {
			cfg:    Config{Spacing: Float(0)},
			name:   StrategyFlow,
			anchor: geom.TopLeading,
		},
		"unknown strategy": {
			cfg:      Config{Strategy: "masonry"},
			wantCode: errors.ErrCodeInvalidStrategy,
		},
		"missing columns": {
			cfg:      Config{Strategy: StrategyColumns},
			wantCode: errors.ErrCodeInvalidConfiguration,
		},
		"bad anchor": {
			cfg:      Config{Anchor: "middle"},
			wantCode: errors.ErrCodeInvalidAnchor,
		},
		"negative spacing": {
			cfg:      Config{Strategy: StrategyBalanced, Columns: 2, Spacing: Float(-1)},
			wantCode: errors.ErrCodeInvalidConfiguration,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("New() error = %v, want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			type described interface {
				String() string
				Spacing() float64
				Anchor() geom.Anchor
			}
			d, ok := l.(described)
			if !ok {
				t.Fatalf("layout %T does not describe itself", l)
			}
			if d.String() != tt.name {
				t.Errorf("String() = %q, want %q", d.String(), tt.name)
			}
			if d.Spacing() != tt.spacing {
				t.Errorf("Spacing() = %v, want %v", d.Spacing(), tt.spacing)
			}
			if d.Anchor() != tt.anchor {
				t.Errorf("Anchor() = %v, want %v", d.Anchor(), tt.anchor)
			}
		})
	}
}

func TestConfig_IsColumnar(t *testing.T) {
	for s, want := range map[string]bool{
		"":               false,
		StrategyFlow:     false,
		StrategyColumns:  true,
		StrategyBalanced: true,
		StrategyCentered: true,
	} {
		if got := (Config{Strategy: s}).IsColumnar(); got != want {
			t.Errorf("IsColumnar(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestNew_MinItemWidth(t *testing.T) {
	l, err := New(Config{MinItemWidth: 40, Spacing: Float(0)})
	if err != nil {
		t.Fatal(err)
	}
	got := l.Measure(FixedItems(geom.Sz(10, 10), geom.Sz(10, 10)), geom.Unspecified())
	if want := geom.Sz(80, 10); got != want {
		t.Errorf("Measure() = %+v, want %+v", got, want)
	}
}

func TestColumns_NameIgnoresAnchor(t *testing.T) {
	c, err := NewCenteredColumns(2, WithAnchor(geom.TopLeading))
	if err != nil {
		t.Fatal(err)
	}
	if c.String() != StrategyCentered {
		t.Errorf("String() = %q, want %q", c.String(), StrategyCentered)
	}

	f, err := NewFixedColumns(2, WithAnchor(geom.Center))
	if err != nil {
		t.Fatal(err)
	}
	if f.String() != StrategyColumns {
		t.Errorf("String() = %q, want %q", f.String(), StrategyColumns)
	}
}
