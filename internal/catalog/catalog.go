package catalog

import "strings"

// Kind enumerates how a theme resolves its prompt variants from a selection.
type Kind string

const (
	// KindKeyedList resolves variants from a map keyed by a single-select
	// option (e.g. season name).
	KindKeyedList Kind = "keyed_list"
	// KindFilteredList resolves variants by filtering the theme's flat list
	// down to the multi-selected identifiers, preserving catalog order.
	KindFilteredList Kind = "filtered_list"
	// KindFlatList resolves the theme's full list with no extra selection.
	KindFlatList Kind = "flat_list"
	// KindGroupedFilteredList flattens named subgroups first and then filters
	// by the multi-selected identifiers (e.g. social platforms by category).
	KindGroupedFilteredList Kind = "grouped_filtered_list"
)

// Variant is one concrete prompt unit within a theme. ID doubles as the
// human-readable title; Base is the description text fed to the compiler.
type Variant struct {
	ID   string `json:"id"`
	Base string `json:"base"`
}

// Group is a named subgroup of variants used by grouped-filtered themes.
type Group struct {
	Name  string    `json:"name"`
	Items []Variant `json:"items"`
}

// Theme declares a transformation style: its option schema and the source of
// its prompt variants. Themes are immutable catalog data.
type Theme struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Kind Kind   `json:"kind"`

	Prompts  []Variant            `json:"prompts,omitempty"`
	Keyed    map[string][]Variant `json:"keyed,omitempty"`
	KeyOrder []string             `json:"key_order,omitempty"`
	Groups   []Group              `json:"groups,omitempty"`

	Expressions []string `json:"expressions,omitempty"`
	Poses       []string `json:"poses,omitempty"`
	HairColors  []string `json:"hair_colors,omitempty"`
	Styles      []string `json:"styles,omitempty"`
	AlbumStyles []string `json:"album_styles,omitempty"`

	selectKey  func(Selection) string
	selectIDs  func(Selection) []string
	customText func(Selection) string
}

// ThemeByKey returns the theme registered under key.
func ThemeByKey(key string) (*Theme, bool) {
	t, ok := themes[key]
	return t, ok
}

// Themes returns all registered themes in their display order.
func Themes() []*Theme {
	out := make([]*Theme, 0, len(themeOrder))
	for _, key := range themeOrder {
		if t, ok := themes[key]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Resolve expands the theme's prompt variants for the given selection. The
// returned order follows catalog order, never selection order. An empty result
// means the user has nothing selected; callers treat that as a validation
// state rather than an error.
func (t *Theme) Resolve(sel Selection) []Variant {
	var out []Variant
	switch t.Kind {
	case KindKeyedList:
		key := ""
		if t.selectKey != nil {
			key = t.selectKey(sel)
		}
		out = append(out, t.Keyed[key]...)
	case KindFilteredList:
		out = filterVariants(t.Prompts, t.selectedIDs(sel))
	case KindGroupedFilteredList:
		flat := make([]Variant, 0)
		for _, g := range t.Groups {
			flat = append(flat, g.Items...)
		}
		out = filterVariants(flat, t.selectedIDs(sel))
	default:
		out = append(out, t.Prompts...)
	}
	if t.customText != nil {
		if text := strings.TrimSpace(t.customText(sel)); text != "" {
			out = append(out, Variant{ID: text, Base: text})
		}
	}
	return out
}

// Expand resolves the prompt variants for themeKey. Unknown theme keys yield
// an empty expansion.
func Expand(themeKey string, sel Selection) []Variant {
	t, ok := ThemeByKey(themeKey)
	if !ok {
		return nil
	}
	return t.Resolve(sel)
}

func (t *Theme) selectedIDs(sel Selection) map[string]struct{} {
	set := make(map[string]struct{})
	if t.selectIDs == nil {
		return set
	}
	for _, id := range t.selectIDs(sel) {
		set[id] = struct{}{}
	}
	return set
}

func filterVariants(items []Variant, ids map[string]struct{}) []Variant {
	out := make([]Variant, 0, len(ids))
	for _, v := range items {
		if _, ok := ids[v.ID]; ok {
			out = append(out, v)
		}
	}
	return out
}
