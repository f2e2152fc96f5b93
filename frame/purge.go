package frame

import (
	"github.com/npillmayer/docview/dom/style"
)

// dependents lists the properties whose computed values depend on the
// computed value of another property of the same box.
var dependents = map[string][]string{}

func init() {
	lengths := []string{"width", "height", "line-height"}
	for i, side := range sides {
		lengths = append(lengths, marginNames[i], paddingNames[i], borderNames[i], side)
		dependents["border-"+side+"-style"] = []string{borderNames[i]}
	}
	dependents["font-size"] = lengths
	dependents["color"] = []string{
		"background-color",
		"border-top-color", "border-right-color", "border-bottom-color", "border-left-color",
	}
	offsets := sides[:]
	dependents["direction"] = offsets
	dependents["position"] = offsets
	for _, side := range sides {
		dependents[side] = offsets
	}
}

// expandDependents returns names plus all properties depending on them,
// without duplicates.
func expandDependents(names []string) []string {
	seen := make(map[string]bool, len(names))
	var expanded []string
	var add func(string)
	add = func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		expanded = append(expanded, name)
		for _, dep := range dependents[name] {
			add(dep)
		}
	}
	for _, name := range names {
		add(name)
	}
	return expanded
}

// PurgeStyleCache drops computed values of properties from the cache of a
// box, including values depending on them. Inherited properties (and their
// dependents) are dropped from the caches of all descendants as well, as are
// properties a descendant explicitly inherits.
func (b *Box) PurgeStyleCache(names []string) {
	all := expandDependents(names)
	for _, name := range all {
		delete(b.cache, name)
	}
	var inherited []string
	for _, name := range names {
		if style.IsInherited(name) {
			inherited = append(inherited, name)
		}
	}
	inherited = expandDependents(inherited)
	tracer().Debugf("purge %v from descendants of %v", inherited, b)
	for _, ch := range b.boxes() {
		ch.purgeDescendants(inherited, all)
	}
}

func (b *Box) purgeDescendants(inherited, changed []string) {
	for _, name := range inherited {
		delete(b.cache, name)
	}
	var explicit []string
	for _, name := range changed {
		if b.style.SpecifiedProperty(name).IsInherit() {
			explicit = append(explicit, name)
		}
	}
	for _, name := range expandDependents(explicit) {
		delete(b.cache, name)
	}
	for _, ch := range b.boxes() {
		ch.purgeDescendants(inherited, changed)
	}
}
