package frond

// ElementKind is the closed set of bound-symbol kinds the formatter
// dispatches on. Values match the kind strings an external resolver writes
// into the symbol snapshot.
type ElementKind string

const (
	ElemClass       ElementKind = "class"
	ElemConstructor ElementKind = "constructor"
	ElemFunction    ElementKind = "function"
	ElemMethod      ElementKind = "method"
	ElemGetter      ElementKind = "getter"
	ElemSetter      ElementKind = "setter"
	ElemTypeAlias   ElementKind = "type_alias"
	ElemVariable    ElementKind = "variable"
	ElemField       ElementKind = "field"
	ElemParameter   ElementKind = "parameter"
)

// invocable reports whether the kind names something callable at a use site.
func (k ElementKind) invocable() bool {
	switch k {
	case ElemConstructor, ElemFunction, ElemMethod:
		return true
	}
	return false
}

// functionLike reports whether the kind carries a meaningful return type.
// Setters are deliberately excluded: they have nothing useful to display.
func (k ElementKind) functionLike() bool {
	switch k {
	case ElemConstructor, ElemFunction, ElemMethod, ElemGetter, ElemTypeAlias:
		return true
	}
	return false
}

// Element is the bound symbol an identifier resolves to, as determined by
// the external semantic analysis.
type Element struct {
	Kind       ElementKind
	Name       string
	ReturnType *TypeRef // function-like elements
	Type       *TypeRef // variables, fields, parameters
	Abstract   bool
	Deprecated bool
}

// Ident is a resolved identifier: a name plus, when resolution succeeded,
// the element it binds to and its static type. Offset and Length locate the
// identifier within its source file.
type Ident struct {
	Name    string
	Offset  int
	Length  int
	Element *Element // nil when unresolved
	Type    *TypeRef // static type; nil when unresolved
}
