package grid

import (
	"strings"

	"github.com/matzehuels/adaptivegrid/pkg/errors"
	"github.com/matzehuels/adaptivegrid/pkg/geom"
)

// Strategy names accepted by New.
const (
	StrategyFlow     = "flow"
	StrategyColumns  = "columns"
	StrategyBalanced = "balanced"
	StrategyCentered = "centered"
)

// Strategies lists every strategy name in display order.
var Strategies = []string{StrategyFlow, StrategyColumns, StrategyBalanced, StrategyCentered}

// Config is the serializable description of a layout. Scene files embed it
// under [layout] and the HTTP API accepts it as JSON.
type Config struct {
	Strategy     string   `toml:"strategy" json:"strategy,omitempty"`
	Columns      int      `toml:"columns" json:"columns,omitempty"`
	Spacing      *float64 `toml:"spacing" json:"spacing,omitempty"`
	Anchor       string   `toml:"anchor" json:"anchor,omitempty"`
	MinItemWidth float64  `toml:"min_item_width" json:"min_item_width,omitempty"`
}

// IsColumnar reports whether the strategy needs a column count.
func (c Config) IsColumnar() bool {
	switch c.normalized() {
	case StrategyColumns, StrategyBalanced, StrategyCentered:
		return true
	}
	return false
}

func (c Config) normalized() string {
	s := strings.ToLower(strings.TrimSpace(c.Strategy))
	if s == "" {
		return StrategyFlow
	}
	return s
}

// New builds the layout described by cfg. An empty strategy means flow.
// Spacing and anchor fall back to the strategy's own defaults when unset.
func New(cfg Config) (Layout, error) {
	var opts []Option
	if cfg.Spacing != nil {
		opts = append(opts, WithSpacing(*cfg.Spacing))
	}
	a, ok, err := geom.ParseAnchor(cfg.Anchor)
	if err != nil {
		return nil, err
	}
	if ok {
		opts = append(opts, WithAnchor(a))
	}

	switch s := cfg.normalized(); s {
	case StrategyFlow:
		if cfg.MinItemWidth != 0 {
			opts = append(opts, WithMinItemWidth(cfg.MinItemWidth))
		}
		return NewFlowWrap(opts...)
	case StrategyColumns:
		return NewFixedColumns(cfg.Columns, opts...)
	case StrategyBalanced:
		return NewBalancedColumns(cfg.Columns, opts...)
	case StrategyCentered:
		return NewCenteredColumns(cfg.Columns, opts...)
	default:
		return nil, errors.New(errors.ErrCodeInvalidStrategy, "unknown strategy %q (want one of %s)", s, strings.Join(Strategies, ", "))
	}
}

// Float is a convenience for filling Config.Spacing.
func Float(v float64) *float64 { return &v }
