package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/adaptivegrid/pkg/errors"
	"github.com/matzehuels/adaptivegrid/pkg/grid"
	"github.com/matzehuels/adaptivegrid/pkg/pipeline"
	"github.com/matzehuels/adaptivegrid/pkg/render"
	"github.com/matzehuels/adaptivegrid/pkg/scene"
)

const (
	// previewWidthStep is how much ←/→ change the container width.
	previewWidthStep = 40.0

	// previewMinWidth stops ← from collapsing the container.
	previewMinWidth = previewWidthStep
)

var (
	previewHeaderStyle = lipgloss.NewStyle().Foreground(colorGray)
	previewErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "preview [scene.toml|scene.json]",
		Short: "Preview a layout interactively in the terminal",
		Long: `Preview a layout interactively in the terminal.

The scene is drawn as boxes scaled to the terminal width and laid out again on
every change:

  ←/→   narrow or widen the container
  ↑/↓   add or remove a column
  tab   switch to the next strategy
  t     toggle the placement table
  q     quit`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSceneFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.ReadFile(args[0])
			if err != nil {
				return err
			}
			opts := flags.options(cmd.Flags())
			if err := opts.ValidateForLayout(); err != nil {
				return err
			}

			m := NewPreviewModel(cmd.Context(), s, opts)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("preview: %w", err)
			}
			if fm, ok := final.(PreviewModel); ok {
				c.Logger.Debug("preview closed", "strategy", fm.strategy(), "width", fm.Opts.Width)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// =============================================================================
// Key Bindings
// =============================================================================

type previewKeyMap struct {
	Narrower key.Binding
	Wider    key.Binding
	More     key.Binding
	Fewer    key.Binding
	Strategy key.Binding
	Table    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newPreviewKeyMap() previewKeyMap {
	return previewKeyMap{
		Narrower: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "narrower")),
		Wider:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "wider")),
		More:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "more columns")),
		Fewer:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "fewer columns")),
		Strategy: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next strategy")),
		Table:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "table")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k previewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Narrower, k.Wider, k.Strategy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k previewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Narrower, k.Wider},
		{k.More, k.Fewer},
		{k.Strategy, k.Table},
		{k.Help, k.Quit},
	}
}

// =============================================================================
// PreviewModel - Live re-layout
// =============================================================================

// PreviewModel is the bubbletea model for the preview command. Every key
// that changes an option lays the scene out again synchronously.
type PreviewModel struct {
	Scene     *scene.Scene
	Opts      pipeline.Options
	Result    scene.Result
	Err       error
	ShowTable bool

	ctx    context.Context
	runner *pipeline.Runner
	keys   previewKeyMap
	help   help.Model
	cols   int // terminal columns, 0 until the first WindowSizeMsg
}

// NewPreviewModel creates a preview of s with the given overrides. The
// container starts at the resolved width; an unbounded request starts at the
// default width so that ←/→ have something to change.
func NewPreviewModel(ctx context.Context, s *scene.Scene, opts pipeline.Options) PreviewModel {
	opts.Width = opts.ContainerWidth(s).Or(pipeline.DefaultWidth)
	opts.Unbounded = false
	// The alternate screen owns the terminal, so the runner stays quiet.
	opts.Logger = log.New(io.Discard)

	m := PreviewModel{
		Scene:  s,
		Opts:   opts,
		ctx:    ctx,
		runner: pipeline.NewRunner(opts.Logger),
		keys:   newPreviewKeyMap(),
		help:   help.New(),
	}
	m.relayout()
	return m
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Narrower):
			m.Opts.Width = max(m.Opts.Width-previewWidthStep, previewMinWidth)
			m.relayout()
		case key.Matches(msg, m.keys.Wider):
			m.Opts.Width += previewWidthStep
			m.relayout()
		case key.Matches(msg, m.keys.More):
			m.Opts.Columns = min(m.columns()+1, errors.MaxColumns)
			m.relayout()
		case key.Matches(msg, m.keys.Fewer):
			m.Opts.Columns = max(m.columns()-1, 1)
			m.relayout()
		case key.Matches(msg, m.keys.Strategy):
			m.Opts.Strategy = nextStrategy(m.strategy())
			m.relayout()
		case key.Matches(msg, m.keys.Table):
			m.ShowTable = !m.ShowTable
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName + " preview"))
	b.WriteString(previewHeaderStyle.Render(" · " + m.describe()))
	b.WriteString("\n")

	if m.Err != nil {
		b.WriteString(previewErrorStyle.Render(iconError + " " + errors.UserMessage(m.Err)))
		b.WriteString("\n\n")
	} else {
		b.WriteString(layoutStatsLine(pipeline.LayoutStats(m.Result), m.columnar()))
		b.WriteString("\n\n")
		if m.ShowTable {
			b.WriteString(render.RenderTable(m.Result))
		} else {
			b.WriteString(render.RenderTerminal(m.Result, m.canvasColumns()))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// relayout recomputes the layout for the current options. A failed layout
// keeps the previous result so the screen does not go blank.
func (m *PreviewModel) relayout() {
	res, err := m.runner.Layout(m.ctx, m.Scene, m.Opts)
	m.Err = err
	if err == nil {
		m.Result = res
	}
}

func (m PreviewModel) strategy() string {
	return m.Opts.LayoutConfig(m.Scene).Strategy
}

func (m PreviewModel) columnar() bool {
	return m.Opts.LayoutConfig(m.Scene).IsColumnar()
}

// columns is the column count in effect, falling back to the default for
// flow so that ↑ switches from nothing to something sensible.
func (m PreviewModel) columns() int {
	if n := m.Opts.LayoutConfig(m.Scene).Columns; n > 0 {
		return n
	}
	return pipeline.DefaultColumns
}

func (m PreviewModel) describe() string {
	parts := []string{
		StyleHighlight.Render(m.strategy()),
		"width " + formatNumber(m.Opts.Width),
	}
	if m.columnar() {
		parts = append(parts, plural(m.columns(), "column"))
	}
	return strings.Join(parts, " · ")
}

func (m PreviewModel) canvasColumns() int {
	if m.cols <= 0 {
		return render.DefaultTermColumns
	}
	return max(m.cols-1, 10)
}

// nextStrategy cycles through grid.Strategies.
func nextStrategy(current string) string {
	i := slices.Index(grid.Strategies, strings.ToLower(current))
	return grid.Strategies[(i+1)%len(grid.Strategies)]
}
