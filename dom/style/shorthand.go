package style

import (
	"github.com/npillmayer/docview/css"
)

var fourDirs = [4]string{"top", "right", "bottom", "left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}

func initShorthands() {
	compound4("margin", "", marginValue)
	compound4("padding", "", paddingValue)
	compound4("border", "width", borderWidths)
	compound4("border", "style", borderStyles)
	compound4("border", "color", color)
	var all []string
	for _, dir := range fourDirs {
		side := p("border", "", dir)
		targets := borderTargets(dir)
		all = append(all, targets...)
		registry[side] = &PropertyDef{Name: side, Targets: targets, expand: borderSide}
	}
	registry["border"] = &PropertyDef{Name: "border", Targets: all, expand: borderSide}
}

// compound4 registers a shorthand following the CSS 1-to-4 value rule.
func compound4(pre, suf string, valid validator) {
	name := pre + "-" + suf
	if suf == "" {
		name = pre
	}
	targets := make([]string, 4)
	for i, dir := range fourDirs {
		targets[i] = p(pre, suf, dir)
	}
	registry[name] = &PropertyDef{
		Name:    name,
		Targets: targets,
		expand: func(def *PropertyDef, values []css.Value) ([]Assignment, error) {
			vals := make([]css.Value, len(values))
			for i, v := range values {
				w, ok := valid(v)
				if !ok {
					return nil, invalid(def, values)
				}
				vals[i] = w
			}
			a, ok := feazeCompound4(def.Targets, vals)
			if !ok {
				return nil, invalid(def, values)
			}
			return a, nil
		},
	}
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
//
//    1 value:  all four sides
//    2 values: top+bottom, right+left
//    3 values: top, right+left, bottom
//    4 values: top, right, bottom, left
//
func feazeCompound4(targets []string, values []css.Value) ([]Assignment, bool) {
	l := len(values)
	if l == 0 || l > 4 {
		return nil, false
	}
	var order [4]int
	switch l {
	case 1:
		order = [4]int{0, 0, 0, 0}
	case 2:
		order = [4]int{0, 1, 0, 1}
	case 3:
		order = [4]int{0, 1, 2, 1}
	case 4:
		order = [4]int{0, 1, 2, 3}
	}
	r := make([]Assignment, 4)
	for i := range r {
		r[i] = Assignment{targets[i], values[order[i]]}
	}
	return r, true
}

func borderTargets(dir string) []string {
	return []string{p("border", "width", dir), p("border", "style", dir), p("border", "color", dir)}
}

// borderSide expands "border" and "border-<side>": up to three values for
// width, style and color in any order, each at most once. Components not
// given are reset to their initial values.
func borderSide(def *PropertyDef, values []css.Value) ([]Assignment, error) {
	if len(values) > 3 {
		return nil, invalid(def, values)
	}
	var width, style, col css.Value
	for _, v := range values {
		if w, ok := borderStyles(v); ok && style.IsZero() {
			style = w
		} else if w, ok := borderWidths(v); ok && width.IsZero() {
			width = w
		} else if w, ok := color(v); ok && col.IsZero() {
			col = w
		} else {
			return nil, invalid(def, values)
		}
	}
	a := make([]Assignment, 0, len(def.Targets))
	for i := 0; i < len(def.Targets); i += 3 {
		a = append(a,
			Assignment{def.Targets[i], orInitial(width, def.Targets[i])},
			Assignment{def.Targets[i+1], orInitial(style, def.Targets[i+1])},
			Assignment{def.Targets[i+2], orInitial(col, def.Targets[i+2])},
		)
	}
	return a, nil
}

func orInitial(v css.Value, property string) css.Value {
	if v.IsZero() {
		return InitialValue(property)
	}
	return v
}
