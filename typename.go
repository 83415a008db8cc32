package frond

// TypeName resolves the display string for an identifier's type. The
// declared argument is the type annotation as written in source, used as a
// fallback when static resolution yielded dynamic; pass "" when there is no
// written annotation.
//
// The second return value is false when the identifier's element has no
// meaningful type to display (setters, unrecognized element kinds).
func TypeName(id *Ident, declared string) (string, bool) {
	if id == nil || id.Element == nil {
		return DynamicMarker, true
	}

	elem := id.Element
	var typ *TypeRef
	switch {
	case elem.Kind == ElemSetter:
		return "", false
	case elem.Kind.functionLike():
		typ = elem.ReturnType
	case elem.Kind == ElemVariable || elem.Kind == ElemField || elem.Kind == ElemParameter:
		typ = elem.Type
	default:
		return "", false
	}

	if typ.IsDynamic() {
		if declared != "" {
			return declared, true
		}
		return DynamicMarker, true
	}
	return typ.String(), true
}
