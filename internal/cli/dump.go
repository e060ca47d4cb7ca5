package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/OpticalFlyer/nodeutil/geom"
	"github.com/OpticalFlyer/nodeutil/layout"
	"github.com/OpticalFlyer/nodeutil/layoutfile"
	"github.com/OpticalFlyer/nodeutil/scene"
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	styleKind   = lipgloss.NewStyle().Foreground(colorCyan)
	styleName   = lipgloss.NewStyle().Bold(true)
	styleValue  = lipgloss.NewStyle().Foreground(colorGray)
	styleHidden = lipgloss.NewStyle().Foreground(colorDim)
	styleBranch = lipgloss.NewStyle().Foreground(colorDim).MarginRight(1)
)

func newDumpCmd() *cobra.Command {
	var width, height float64

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Lay out a TOML layout file and print the resulting tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			root, err := loadLayout(args[0])
			if err != nil {
				return err
			}
			if width > 0 || height > 0 {
				root.DoLayout(geom.Size{Width: width, Height: height})
			}
			logger.Debug("built layout", "file", args[0], "nodes", countNodes(root.Node))

			fmt.Fprintln(cmd.OutOrStdout(), renderTree(root.Node))
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 0, "minimum width of the root container")
	cmd.Flags().Float64Var(&height, "height", 0, "minimum height of the root container")
	return cmd
}

func loadLayout(path string) (*layout.Container, error) {
	doc, err := layoutfile.Load(path)
	if err != nil {
		return nil, err
	}
	return doc.Build()
}

func countNodes(n *scene.Node) int {
	total := 1
	for _, c := range n.Children() {
		total += countNodes(c)
	}
	return total
}

// renderTree draws n and its descendants, one line per node.
func renderTree(n *scene.Node) string {
	return buildTree(n).
		EnumeratorStyle(styleBranch).
		String()
}

func buildTree(n *scene.Node) *tree.Tree {
	t := tree.Root(describe(n))
	for _, c := range n.Children() {
		if len(c.Children()) == 0 {
			t.Child(describe(c))
		} else {
			t.Child(buildTree(c))
		}
	}
	return t
}

func describe(n *scene.Node) string {
	var b strings.Builder
	b.WriteString(styleKind.Render(n.Kind().String()))
	if n.Name != "" {
		b.WriteString(" " + styleName.Render(n.Name))
	}

	pos, anchor, size := n.Position(), n.AnchorPoint(), n.ContentSize()
	fields := fmt.Sprintf("pos=(%g, %g) anchor=(%g, %g) size=%gx%g",
		pos.X, pos.Y, anchor.X, anchor.Y, size.Width, size.Height)
	if n.ScaleX() != 1 || n.ScaleY() != 1 {
		fields += fmt.Sprintf(" scale=(%g, %g)", n.ScaleX(), n.ScaleY())
	}
	if parent := n.Parent(); parent != nil {
		if c, ok := parent.Host().(*layout.Container); ok && c.Background() == n {
			fields += " background"
		}
	}
	b.WriteString(" " + styleValue.Render(fields))

	if !n.IsVisible() {
		return styleHidden.Render(b.String() + " hidden")
	}
	return b.String()
}
