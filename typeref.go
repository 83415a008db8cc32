package frond

import "strings"

// DynamicMarker is the display string for a type the resolver could not
// determine.
const DynamicMarker = "dynamic"

// TypeKind classifies a resolved type.
type TypeKind string

const (
	TypeDynamic  TypeKind = "dynamic"
	TypeNamed    TypeKind = "named"
	TypeList     TypeKind = "list"
	TypeFunction TypeKind = "function"
)

// TypeRef is the structural shape of a resolved type, as handed over by the
// external type resolver. A nil *TypeRef means "dynamic"/unknown.
type TypeRef struct {
	Kind   TypeKind
	Name   string   // named types
	Elem   *TypeRef // list element type (nil means dynamic)
	Params []Param  // function parameter list
}

// Param describes one parameter of a callable: the ParameterDescriptor
// handed over by the resolver.
type Param struct {
	Name     string
	Type     *TypeRef
	Named    bool
	Required bool
}

// IsDynamic reports whether t is absent or explicitly dynamic.
func (t *TypeRef) IsDynamic() bool {
	return t == nil || t.Kind == TypeDynamic
}

// String renders the canonical display form of the type. Dynamic types
// render as the "dynamic" marker.
func (t *TypeRef) String() string {
	if t == nil {
		return DynamicMarker
	}
	switch t.Kind {
	case TypeDynamic:
		return DynamicMarker
	case TypeNamed:
		if t.Name == "" {
			return DynamicMarker
		}
		return t.Name
	case TypeList:
		if t.Elem.IsDynamic() {
			return "List"
		}
		return "List<" + t.Elem.String() + ">"
	case TypeFunction:
		var sb strings.Builder
		sb.WriteString("Function(")
		for i, p := range t.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			if !p.Type.IsDynamic() {
				sb.WriteString(p.Type.String())
				sb.WriteByte(' ')
			}
			sb.WriteString(p.Name)
		}
		sb.WriteByte(')')
		return sb.String()
	}
	return DynamicMarker
}

// Dynamic returns the dynamic TypeRef.
func Dynamic() *TypeRef {
	return &TypeRef{Kind: TypeDynamic}
}

// Named returns a named TypeRef for the given display name.
func Named(name string) *TypeRef {
	return &TypeRef{Kind: TypeNamed, Name: name}
}

// ListOf returns a list TypeRef with the given element type.
func ListOf(elem *TypeRef) *TypeRef {
	return &TypeRef{Kind: TypeList, Elem: elem}
}

// FunctionOf returns a function TypeRef with the given parameters.
func FunctionOf(params ...Param) *TypeRef {
	return &TypeRef{Kind: TypeFunction, Params: params}
}

// ParseTypeExpr recovers a structural TypeRef from a type expression as
// written in a stored snapshot. It recognizes the shapes the synthesizer
// cares about — "List", "List<Elem>", and "Function(type name, ...)" — and
// treats everything else as a named type. Empty and "dynamic" expressions
// parse as dynamic. Nested commas inside function parameter types are not
// handled; the resolver writes flat signatures.
func ParseTypeExpr(expr string) *TypeRef {
	expr = strings.TrimSpace(expr)
	switch {
	case expr == "" || expr == DynamicMarker:
		return Dynamic()
	case expr == "List":
		return ListOf(Dynamic())
	case strings.HasPrefix(expr, "List<") && strings.HasSuffix(expr, ">"):
		return ListOf(ParseTypeExpr(expr[len("List<") : len(expr)-1]))
	case strings.HasPrefix(expr, "Function(") && strings.HasSuffix(expr, ")"):
		return FunctionOf(parseParamList(expr[len("Function(") : len(expr)-1])...)
	}
	return Named(expr)
}

// parseParamList splits "int a, b, String c" into Params. A single word is
// a bare (dynamic) parameter name; two words are type then name.
func parseParamList(list string) []Param {
	list = strings.TrimSpace(list)
	if list == "" {
		return nil
	}
	var params []Param
	for _, entry := range strings.Split(list, ",") {
		fields := strings.Fields(entry)
		switch len(fields) {
		case 0:
			continue
		case 1:
			params = append(params, Param{Name: fields[0], Type: Dynamic()})
		default:
			params = append(params, Param{
				Name: fields[len(fields)-1],
				Type: ParseTypeExpr(strings.Join(fields[:len(fields)-1], " ")),
			})
		}
	}
	return params
}
