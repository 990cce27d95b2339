package willowui

import (
	"fmt"
	"io"
	"io/fs"
	"sort"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// StyleProps are the per-state properties a theme can set on a node. Nil
// and empty fields are left alone.
type StyleProps struct {
	Color      string   `yaml:"color,omitempty"`
	Alpha      *float64 `yaml:"alpha,omitempty"`
	Visible    *bool    `yaml:"visible,omitempty"`
	ImageScale *float64 `yaml:"imageScale,omitempty"`
}

// themeFile is the YAML document layout.
type themeFile struct {
	Nodes map[string]map[string]StyleProps `yaml:"nodes"`
}

// themeRule is a validated StyleProps for one state.
type themeRule struct {
	state      NodeState
	color      *Color
	alpha      *float64
	visible    *bool
	imageScale *float64
}

// Theme maps node names to per-state styles. Build one with LoadTheme.
type Theme struct {
	rules map[string][]themeRule
}

// LoadTheme decodes and validates a YAML theme:
//
//	nodes:
//	  ok-button:
//	    regular:  { color: "#3060c0" }
//	    hover:    { color: cornflowerblue }
//	    disabled: { alpha: 0.4 }
//
// Unknown state names fail with ErrInvalidState, bad colors with
// ErrInvalidColor.
func LoadTheme(r io.Reader) (*Theme, error) {
	var doc themeFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("willowui: decode theme: %w", err)
	}

	t := &Theme{rules: make(map[string][]themeRule, len(doc.Nodes))}
	for name, styles := range doc.Nodes {
		rules := make([]themeRule, 0, len(styles))
		for stateName, props := range styles {
			state, err := ParseNodeState(stateName)
			if err != nil {
				return nil, fmt.Errorf("theme node %q: %w", name, err)
			}
			rule := themeRule{
				state:      state,
				alpha:      props.Alpha,
				visible:    props.Visible,
				imageScale: props.ImageScale,
			}
			if props.Color != "" {
				c, err := ParseColor(props.Color)
				if err != nil {
					return nil, fmt.Errorf("theme node %q state %s: %w", name, state, err)
				}
				rule.color = &c
			}
			rules = append(rules, rule)
		}
		sort.Slice(rules, func(i, j int) bool { return rules[i].state < rules[j].state })
		t.rules[name] = rules
	}
	return t, nil
}

// LoadThemeFile reads a YAML theme from fsys.
func LoadThemeFile(fsys fs.FS, name string) (*Theme, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("willowui: open theme: %w", err)
	}
	defer f.Close()
	return LoadTheme(f)
}

// Has reports whether the theme styles nodes with the given name.
func (t *Theme) Has(name string) bool {
	_, ok := t.rules[name]
	return ok
}

// Apply records the theme's styles on root and every descendant whose name
// has an entry. Regular-state styles take effect immediately; the rest when
// their state becomes active. It returns the number of nodes styled.
func (t *Theme) Apply(root *Node) (int, error) {
	var (
		styled int
		err    error
	)
	root.Walk(func(n *Node) {
		if err != nil {
			return
		}
		rules, ok := t.rules[n.Name]
		if !ok {
			return
		}
		for _, r := range rules {
			if err = r.apply(n); err != nil {
				err = fmt.Errorf("theme node %q: %w", n.Name, err)
				return
			}
		}
		styled++
	})
	if err != nil {
		return styled, err
	}
	if globalDebug {
		logger.WithFields(logrus.Fields{
			"root":   root.Name,
			"styled": styled,
		}).Debug("theme applied")
	}
	return styled, nil
}

func (r themeRule) apply(n *Node) error {
	if r.color != nil {
		if err := n.SetColor(*r.color, r.state); err != nil {
			return err
		}
	}
	if r.alpha != nil {
		if err := n.SetAlpha(*r.alpha, r.state); err != nil {
			return err
		}
	}
	if r.visible != nil {
		if err := n.SetVisible(*r.visible, r.state); err != nil {
			return err
		}
	}
	if r.imageScale != nil {
		if err := n.SetImageScale(*r.imageScale, r.state); err != nil {
			return err
		}
	}
	return nil
}
