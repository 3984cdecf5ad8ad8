// Package catalog holds the static category taxonomy. It is built once
// per process and never mutated.
package catalog

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Node struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Children []Node `json:"children,omitempty"`
}

// PathOption is one selectable category path with a human label
// ("Body Kit Ürünleri > Spoiler").
type PathOption struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

type Group struct {
	Group   string       `json:"group"`
	Options []PathOption `json:"options"`
}

type entry struct {
	node   *Node
	label  string
	folded string
}

type Taxonomy struct {
	roots []Node
	index map[string]entry
	order []string
}

var (
	defaultOnce sync.Once
	defaultTax  *Taxonomy
)

// Default returns the process-wide taxonomy built from the embedded tree.
func Default() *Taxonomy {
	defaultOnce.Do(func() {
		t, err := New(defaultTree)
		if err != nil {
			panic(fmt.Sprintf("catalog: invalid default tree: %v", err))
		}
		defaultTax = t
	})
	return defaultTax
}

// New indexes roots. Sibling slugs must be unique and non-empty.
func New(roots []Node) (*Taxonomy, error) {
	t := &Taxonomy{
		roots: roots,
		index: make(map[string]entry),
	}
	if err := t.walk(t.roots, "", ""); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Taxonomy) walk(nodes []Node, pathPrefix, labelPrefix string) error {
	seen := make(map[string]struct{}, len(nodes))
	for i := range nodes {
		node := &nodes[i]
		slug := strings.TrimSpace(node.Slug)
		if slug == "" || strings.Contains(slug, "/") {
			return fmt.Errorf("invalid slug %q under %q", node.Slug, pathPrefix)
		}
		if _, dup := seen[slug]; dup {
			return fmt.Errorf("duplicate slug %q under %q", slug, pathPrefix)
		}
		seen[slug] = struct{}{}

		path := joinPath(pathPrefix, slug)
		label := node.Title
		if labelPrefix != "" {
			label = labelPrefix + " > " + node.Title
		}
		t.index[path] = entry{node: node, label: label, folded: Fold(node.Title)}
		t.order = append(t.order, path)

		if err := t.walk(node.Children, path, label); err != nil {
			return err
		}
	}
	return nil
}

func (t *Taxonomy) Roots() []Node { return t.roots }

// Lookup finds the node at a slash-joined slug path.
func (t *Taxonomy) Lookup(path string) (Node, bool) {
	e, ok := t.index[CleanPath(path)]
	if !ok {
		return Node{}, false
	}
	return *e.node, true
}

// Paths returns every path in depth-first tree order.
func (t *Taxonomy) Paths() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// GroupedPaths returns one group per root, each listing the root itself
// and all its descendants.
func (t *Taxonomy) GroupedPaths() []Group {
	groups := make([]Group, 0, len(t.roots))
	for _, root := range t.roots {
		g := Group{Group: root.Title}
		for _, p := range t.order {
			if p == root.Slug || strings.HasPrefix(p, root.Slug+"/") {
				g.Options = append(g.Options, PathOption{Path: p, Label: t.index[p].label})
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// ReadablePath turns "a/b" into "Title A > Title B". Unknown paths come
// back unchanged.
func (t *Taxonomy) ReadablePath(path string) string {
	e, ok := t.index[CleanPath(path)]
	if !ok {
		return path
	}
	return e.label
}

// Search matches q against node titles with Turkish case and diacritic
// folding, so "on tampon" finds "Ön Tampon".
func (t *Taxonomy) Search(q string) []PathOption {
	needle := Fold(q)
	if needle == "" {
		return nil
	}
	var out []PathOption
	for _, p := range t.order {
		e := t.index[p]
		if strings.Contains(e.folded, needle) {
			out = append(out, PathOption{Path: p, Label: e.label})
		}
	}
	return out
}

// CleanPath trims whitespace and stray slashes and drops empty segments.
func CleanPath(path string) string {
	parts := strings.Split(strings.TrimSpace(path), "/")
	kept := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "/")
}

// LastSegment returns the leaf slug of a path.
func LastSegment(path string) string {
	path = CleanPath(path)
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

// IsUnder reports whether path equals parent or is nested below it. A
// bare leaf slug also matches a parent path ending in that slug, since
// older first-party products stored only the leaf.
func IsUnder(path, parent string) bool {
	path, parent = CleanPath(path), CleanPath(parent)
	if path == "" || parent == "" {
		return false
	}
	if path == parent || strings.HasPrefix(path, parent+"/") {
		return true
	}
	return !strings.Contains(path, "/") && path == LastSegment(parent)
}

// Fold lowercases with Turkish rules and strips diacritics, so that
// "ÇAMURLUK", "çamurluk" and "camurluk" compare equal.
func Fold(s string) string {
	// Casers are stateful, so each call gets its own.
	s = cases.Lower(language.Turkish).String(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Map(func(r rune) rune {
		if r == 'ı' {
			return 'i'
		}
		return r
	}, out)
}

func joinPath(prefix, slug string) string {
	if prefix == "" {
		return slug
	}
	return prefix + "/" + slug
}
