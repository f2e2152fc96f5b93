package cascade

import (
	"sort"

	"github.com/npillmayer/docview/css"
	"github.com/npillmayer/docview/dom/style"
)

// Cache holds computed values, keyed by property name.
type Cache map[string]css.Value

// Box is what the cascade needs to know about a frame of the layout tree.
// A box holds a reference to its style node, a cache for computed values
// valid for this box only, and a link to its parent box.
//
// ParentBox must return an untyped nil for the root box.
type Box interface {
	Style() *StyleNode
	Cache() Cache
	ParentBox() Box
}

// SpecifiedProperty returns the specified value of a (longhand) property.
// The first explicit value found walking up the cascade parents wins. If no
// layer sets the property, the result is "inherit" for inherited properties
// and the property's initial value otherwise.
func (n *StyleNode) SpecifiedProperty(name string) css.Value {
	if v, ok := n.explicit(name); ok {
		return v
	}
	if style.IsInherited(name) {
		return css.Inherit
	}
	return style.InitialValue(name)
}

func (n *StyleNode) explicit(name string) (css.Value, bool) {
	for it := n; it != nil; it = it.cascadeParent {
		if v, ok := it.specified[name]; ok {
			return v, true
		}
	}
	return css.Value{}, false
}

// ComputedProperty returns the computed value of a (longhand) property for
// a box. box may be nil, which is treated like a root box without a
// cache.
//
// Values are looked up in the style node's cache first, then in the box's
// cache. Otherwise they are computed and stored in one of the caches: values
// independent of the box are stored at the style node, shared by all boxes
// using it.
func (n *StyleNode) ComputedProperty(name string, box Box) css.Value {
	if v, ok := n.nodeCache[name]; ok {
		return v
	}
	var cache Cache
	if box != nil {
		cache = box.Cache()
		if v, ok := cache[name]; ok {
			return v
		}
	}
	specified := n.SpecifiedProperty(name)
	var v css.Value
	cacheable := true
	if specified.IsInherit() {
		cacheable = false
		if parent := parentBox(box); parent != nil {
			v = styleOf(parent).ComputedProperty(name, parent)
		} else {
			v, _ = n.compute(name, style.InitialValue(name), box)
		}
	} else {
		v, cacheable = n.compute(name, specified, box)
	}
	if cacheable {
		n.nodeCache[name] = v
	} else if cache != nil {
		cache[name] = v
	}
	return v
}

// compute applies the compute function for a property, if any.
func (n *StyleNode) compute(name string, specified css.Value, box Box) (css.Value, bool) {
	if f, ok := computers[name]; ok {
		return f(n, specified, box)
	}
	return specified, true
}

// SpecifiedDifferences returns the names of all properties whose nearest
// explicit value differs between n and other, including properties set on
// one side only. The result is sorted.
func (n *StyleNode) SpecifiedDifferences(other *StyleNode) []string {
	names := make(map[string]struct{})
	for _, chain := range []*StyleNode{n, other} {
		for it := chain; it != nil; it = it.cascadeParent {
			for name := range it.specified {
				names[name] = struct{}{}
			}
		}
	}
	var diffs []string
	for name := range names {
		v1, ok1 := n.explicit(name)
		var v2 css.Value
		var ok2 bool
		if other != nil {
			v2, ok2 = other.explicit(name)
		}
		if ok1 != ok2 || v1 != v2 {
			diffs = append(diffs, name)
		}
	}
	sort.Strings(diffs)
	return diffs
}

// PurgeNodeCache drops all computed values from a style node's cache.
// This is necessary only if a render device changes its behaviour, e.g. a
// different medium font size.
func (n *StyleNode) PurgeNodeCache() {
	n.nodeCache = make(Cache)
}

// --- Convenience -----------------------------------------------------------

// Length returns a computed length in points. ok is false for values which are
// not absolute lengths, e.g. "auto" or percentages.
func Length(name string, box Box) (pt float64, ok bool) {
	v := styleOf(box).ComputedProperty(name, box)
	return v.ToPt(0)
}

// FontSize returns the computed font size of a box in points.
func FontSize(box Box) float64 {
	pt, _ := styleOf(box).ComputedProperty("font-size", box).ToPt(0)
	return pt
}

// Display returns the display mode of a box.
func Display(box Box) DisplayMode {
	v := styleOf(box).ComputedProperty("display", box)
	d, err := ParseDisplay(v.Str())
	if err != nil {
		tracer().Errorf("box display: %v", err)
	}
	return d
}

// parentBox returns the parent of a box, or nil. It guards against parent
// boxes wrapped as typed nils.
func parentBox(box Box) Box {
	if box == nil {
		return nil
	}
	p := box.ParentBox()
	if p == nil || p.Style() == nil {
		return nil
	}
	return p
}

func styleOf(box Box) *StyleNode {
	return box.Style()
}

func sortedKeys(m map[string]*StyleNode) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
