// Package layoutfile builds layout trees from TOML documents.
//
// A document has a single [root] table describing a container. Containers
// list their children as arrays of tables:
//
//	[root]
//	behavior = "vertical"
//	padding = [0, 4]
//
//	[[root.children]]
//	kind = "node"
//	size = [100, 20]
//	color = "ff8800"
//
//	[[root.children]]
//	kind = "spacer"
//	weight = 2
package layoutfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/OpticalFlyer/nodeutil/geom"
	"github.com/OpticalFlyer/nodeutil/layout"
	"github.com/OpticalFlyer/nodeutil/outline"
	"github.com/OpticalFlyer/nodeutil/paint"
	"github.com/OpticalFlyer/nodeutil/scene"
)

// ErrInvalid is wrapped by every error caused by a bad value in a document.
var ErrInvalid = errors.New("invalid layout document")

const (
	KindNode      = "node"
	KindSpacer    = "spacer"
	KindContainer = "container"
)

// Document is a parsed layout file.
type Document struct {
	Root Element `toml:"root"`

	// dir resolves relative outline paths.
	dir string
}

// Element describes one node of the tree. Which fields apply depends on
// Kind.
type Element struct {
	Kind    string    `toml:"kind"`
	Name    string    `toml:"name"`
	Size    []float64 `toml:"size"`
	Scale   []float64 `toml:"scale"`
	Visible *bool     `toml:"visible"`
	Color   string    `toml:"color"`
	Opacity *int      `toml:"opacity"`

	Weight float64 `toml:"weight"`

	Behavior     string      `toml:"behavior"`
	Align        string      `toml:"align"`
	Padding      []float64   `toml:"padding"`
	Margin       []float64   `toml:"margin"`
	MinSize      []float64   `toml:"min_size"`
	WidthPolicy  string      `toml:"width_policy"`
	HeightPolicy string      `toml:"height_policy"`
	Frozen       bool        `toml:"frozen"`
	Background   *Background `toml:"background"`
	Children     []Element   `toml:"children"`
}

// Background fills a container with a colour, optionally clipped to the
// first polygon of a shapefile.
type Background struct {
	Color   string `toml:"color"`
	Outline string `toml:"outline"`
}

// Parse decodes a document. Relative outline paths are resolved against
// the working directory.
func Parse(data []byte) (*Document, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("decoding layout: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.dir = filepath.Dir(path)
	return doc, nil
}

// Build creates the tree described by the document and lays it out once.
func (d *Document) Build() (*layout.Container, error) {
	kind := d.Root.Kind
	if kind != "" && kind != KindContainer {
		return nil, invalid("root.kind", "root must be a container, got %q", kind)
	}
	b := &builder{dir: d.dir}
	root, err := b.container(d.Root, "root")
	if err != nil {
		return nil, err
	}
	root.Layout()
	for _, c := range b.frozen {
		c.SetFrozen(true)
	}
	return root, nil
}

type builder struct {
	dir string
	// frozen containers are frozen after the first layout pass
	frozen []*layout.Container
}

func invalid(path, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, path, fmt.Sprintf(format, args...))
}

// invalidErr keeps err in the chain next to ErrInvalid.
func invalidErr(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
}

func (b *builder) element(e Element, path string) (layout.Element, error) {
	switch e.Kind {
	case KindNode, "":
		return b.leaf(e, path)
	case KindSpacer:
		return b.spacer(e, path)
	case KindContainer:
		return b.container(e, path)
	default:
		return nil, invalid(path+".kind", "unknown kind %q", e.Kind)
	}
}

func (b *builder) leaf(e Element, path string) (layout.Element, error) {
	size, err := pair(e.Size, path+".size")
	if err != nil {
		return nil, err
	}
	fill, err := colour(e.Color, e.Opacity, path)
	if err != nil {
		return nil, err
	}
	n := scene.NewColorNode(fill, size)
	if err := common(n.Node, e, path); err != nil {
		return nil, err
	}
	return n, nil
}

func (b *builder) spacer(e Element, path string) (layout.Element, error) {
	if e.Weight < 0 {
		return nil, invalid(path+".weight", "weight must be positive, got %g", e.Weight)
	}
	s := layout.NewSpacer()
	if e.Weight > 0 {
		s.SetWeight(e.Weight)
	}
	if err := common(s.Node, e, path); err != nil {
		return nil, err
	}
	return s, nil
}

func (b *builder) container(e Element, path string) (*layout.Container, error) {
	c := layout.New()

	behavior, err := layout.ParseBehavior(e.Behavior)
	if err != nil {
		return nil, invalidErr(path+".behavior", err)
	}
	c.SetBehavior(behavior)

	if e.Align != "" {
		align, err := scene.ParseAlignment(e.Align)
		if err != nil {
			return nil, invalidErr(path+".align", err)
		}
		c.SetAlignment(align)
	}

	for _, f := range []struct {
		key string
		val []float64
		set func(geom.Size) *layout.Container
	}{
		{"padding", e.Padding, c.SetPadding},
		{"margin", e.Margin, c.SetMargin},
		{"min_size", e.MinSize, c.SetMinSize},
	} {
		s, err := pair(f.val, path+"."+f.key)
		if err != nil {
			return nil, err
		}
		f.set(s)
	}

	wp, err := policy(e.WidthPolicy, path+".width_policy")
	if err != nil {
		return nil, err
	}
	hp, err := policy(e.HeightPolicy, path+".height_policy")
	if err != nil {
		return nil, err
	}
	c.SetWidthSizingPolicy(wp).SetHeightSizingPolicy(hp)

	if err := common(c.Node, e, path); err != nil {
		return nil, err
	}
	size, err := pair(e.Size, path+".size")
	if err != nil {
		return nil, err
	}
	c.SetContentSize(size)

	if e.Background != nil {
		bg, err := b.background(*e.Background, path+".background")
		if err != nil {
			return nil, err
		}
		c.SetBackground(bg)
	}

	for i, ce := range e.Children {
		child, err := b.element(ce, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		c.AddChild(child)
	}

	if e.Color != "" || e.Opacity != nil {
		fill, err := colour(e.Color, e.Opacity, path)
		if err != nil {
			return nil, err
		}
		if e.Color != "" {
			c.SetColor(fill.RGB())
		}
		if e.Opacity != nil {
			c.SetOpacity(fill.A)
		}
	}

	if e.Frozen {
		b.frozen = append(b.frozen, c)
	}
	return c, nil
}

func (b *builder) background(bg Background, path string) (layout.Element, error) {
	fill, err := colour(bg.Color, nil, path)
	if err != nil {
		return nil, err
	}
	if bg.Outline == "" {
		return scene.NewColorNode(fill, geom.Size{}), nil
	}

	file := bg.Outline
	if !filepath.IsAbs(file) && b.dir != "" {
		file = filepath.Join(b.dir, file)
	}
	polys, err := outline.Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s.outline: %w", path, err)
	}
	if len(polys) == 0 {
		return nil, invalid(path+".outline", "%s holds no polygons", bg.Outline)
	}
	n, err := outline.NewNode(polys[0], fill, geom.Size{})
	if err != nil {
		return nil, fmt.Errorf("%s.outline: %w", path, err)
	}
	return n, nil
}

// common applies the fields shared by every kind.
func common(n *scene.Node, e Element, path string) error {
	n.Name = e.Name
	if e.Visible != nil {
		n.SetVisible(*e.Visible)
	}
	switch len(e.Scale) {
	case 0:
	case 1:
		n.SetScale(e.Scale[0])
	case 2:
		n.SetScaleX(e.Scale[0])
		n.SetScaleY(e.Scale[1])
	default:
		return invalid(path+".scale", "want 1 or 2 values, got %d", len(e.Scale))
	}
	return nil
}

// pair reads a [width, height] array. A missing array is the zero size.
func pair(v []float64, path string) (geom.Size, error) {
	switch len(v) {
	case 0:
		return geom.Size{}, nil
	case 2:
		if v[0] < 0 || v[1] < 0 {
			return geom.Size{}, invalid(path, "negative size %v", v)
		}
		return geom.Size{Width: v[0], Height: v[1]}, nil
	default:
		return geom.Size{}, invalid(path, "want [width, height], got %d values", len(v))
	}
}

func policy(s, path string) (layout.SizingPolicy, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return layout.SizingNone, nil
	case "equalize":
		return layout.SizingEqualize, nil
	default:
		return layout.SizingNone, invalid(path, "unknown sizing policy %q", s)
	}
}

// colour combines a hex colour (white when empty) with an optional opacity
// override.
func colour(hex string, opacity *int, path string) (paint.RGBA, error) {
	fill := paint.White.RGBA()
	if hex != "" {
		var err error
		fill, err = paint.ParseHex(hex)
		if err != nil {
			return fill, invalidErr(path+".color", err)
		}
	}
	if opacity != nil {
		if *opacity < 0 || *opacity > 0xff {
			return fill, invalid(path+".opacity", "out of range: %d", *opacity)
		}
		fill.A = uint8(*opacity)
	}
	return fill, nil
}
