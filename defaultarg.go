package frond

import "strings"

// DefaultParameterValue synthesizes insertion text for an optional
// parameter at a call site.
//
// List-typed parameters produce an empty list literal, with the element
// type as an explicit type argument when it is concrete; the cursor lands
// just before the closing bracket. Function-typed parameters produce a
// closure skeleton, the parameter list followed by an empty block body,
// with the cursor inside the body. Any other type yields nil; map-typed
// parameters are an unsupported case.
func DefaultParameterValue(p *Param) *DefaultArgument {
	if p == nil || p.Type == nil {
		return nil
	}
	switch p.Type.Kind {
	case TypeList:
		typeArg := ""
		if !p.Type.Elem.IsDynamic() {
			typeArg = "<" + p.Type.Elem.String() + ">"
		}
		text := typeArg + "[]"
		return &DefaultArgument{Text: text, Cursor: len(text) - 1}
	case TypeFunction:
		var sb strings.Builder
		sb.WriteByte('(')
		for i, fp := range p.Type.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			if !fp.Type.IsDynamic() {
				sb.WriteString(fp.Type.String())
				sb.WriteByte(' ')
			}
			sb.WriteString(fp.Name)
		}
		sb.WriteString(") {  }")
		text := sb.String()
		return &DefaultArgument{Text: text, Cursor: len(text) - 2}
	}
	return nil
}

// DefaultArgumentList builds a ready-to-insert argument list for a
// callable's required parameters: positional parameters as bare names in
// declaration order, then named-but-required parameters as "name: null".
// The returned ranges are flat (offset, length) pairs marking each
// argument's editable span within the text, so an editor can tab between
// them. When no parameters qualify, both results are absent: "" and nil.
func DefaultArgumentList(params []Param) (string, []int) {
	var sb strings.Builder
	var ranges []int

	for _, p := range params {
		if p.Named || !p.Required {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		offset := sb.Len()
		sb.WriteString(p.Name)
		ranges = append(ranges, offset, len(p.Name))
	}

	for _, p := range params {
		if !p.Named || !p.Required {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name)
		sb.WriteString(": ")
		offset := sb.Len()
		// Named-required defaults are always the literal "null", not the
		// output of DefaultParameterValue.
		const defaultValue = "null"
		sb.WriteString(defaultValue)
		ranges = append(ranges, offset, len(defaultValue))
	}

	if sb.Len() == 0 {
		return "", nil
	}
	return sb.String(), ranges
}
