// Package ast defines the declaration tree produced by parsing one type
// declaration source unit. All nodes are immutable value objects: the
// parser creates each node exactly once and only ever combines existing
// nodes into larger ones. Constructors perform no validation beyond what
// the grammar already guarantees.
package ast

// Type represents any type expression variant.
type Type interface {
	typeNode()
}

// Module is the parse result for one source unit: three ordered runs of
// top-level declarations, grouped by kind.
type Module struct {
	Functions  []*Function
	Classes    []*Class
	Interfaces []*Interface
}

// NewModule constructs the root node for a parsed source unit.
func NewModule(functions []*Function, classes []*Class, interfaces []*Interface) *Module {
	return &Module{
		Functions:  functions,
		Classes:    classes,
		Interfaces: interfaces,
	}
}

// Provenance is the trust/derivation tag of a function declaration. The
// empty value means approved/unset; the others are the literal sentinel
// text from the source.
type Provenance string

const (
	ProvenanceApproved Provenance = ""
	ProvenanceInferred Provenance = "..."
	ProvenanceNegated  Provenance = "---"
	ProvenanceLocked   Provenance = "+++"
)

// Function is a free function or class method declaration.
type Function struct {
	Name       string
	Params     []*Parameter
	ReturnType Type
	Exceptions []*ExceptionDef
	Template   []*TemplateItem
	Provenance Provenance
	Signature  *string // opaque trailing annotation, nil when absent
}

// NewFunction constructs a function declaration node.
func NewFunction(name string, params []*Parameter, returnType Type, exceptions []*ExceptionDef, template []*TemplateItem, provenance Provenance, signature *string) *Function {
	return &Function{
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		Exceptions: exceptions,
		Template:   template,
		Provenance: provenance,
		Signature:  signature,
	}
}

// Parameter is a single formal parameter: a name plus a type, where the
// type may be a placeholder or a vararg/kwarg marker.
type Parameter struct {
	Name string
	Type Type
}

// NewParameter constructs a parameter node.
func NewParameter(name string, typ Type) *Parameter {
	return &Parameter{Name: name, Type: typ}
}

// Class is a class declaration. Parents are unresolved names; resolution
// is a downstream concern.
type Class struct {
	Name     string
	Parents  []string
	Funcs    []*Function
	Template []*TemplateItem
}

// NewClass constructs a class declaration node.
func NewClass(name string, parents []string, funcs []*Function, template []*TemplateItem) *Class {
	return &Class{
		Name:     name,
		Parents:  parents,
		Funcs:    funcs,
		Template: template,
	}
}

// Interface is an interface declaration. Interfaces declare method
// presence only, so members are minimal stubs.
type Interface struct {
	Name     string
	Parents  []string
	Attrs    []*MinimalFunction
	Template []*TemplateItem
}

// NewInterface constructs an interface declaration node.
func NewInterface(name string, parents []string, attrs []*MinimalFunction, template []*TemplateItem) *Interface {
	return &Interface{
		Name:     name,
		Parents:  parents,
		Attrs:    attrs,
		Template: template,
	}
}

// MinimalFunction is an interface method stub: a name with no signature.
type MinimalFunction struct {
	Name string
}

// NewMinimalFunction constructs an interface method stub.
func NewMinimalFunction(name string) *MinimalFunction {
	return &MinimalFunction{Name: name}
}

// TemplateItem is a bound type parameter. Rank is a placeholder at parse
// time (always 0); real indices are assigned by the expansion pass.
type TemplateItem struct {
	Name  string
	Bound Type
	Rank  int
}

// NewTemplateItem constructs a template binding.
func NewTemplateItem(name string, bound Type, rank int) *TemplateItem {
	return &TemplateItem{Name: name, Bound: bound, Rank: rank}
}

// ConstantDef is a module-level constant declaration. It is recognized
// syntactically and then discarded; it never appears in a Module.
type ConstantDef struct {
	Name string
	Type Type
}

// NewConstantDef constructs a constant declaration node.
func NewConstantDef(name string, typ Type) *ConstantDef {
	return &ConstantDef{Name: name, Type: typ}
}

// ExceptionDef wraps a single declared exception type.
type ExceptionDef struct {
	Type Type
}

// NewExceptionDef constructs an exception declaration node.
func NewExceptionDef(typ Type) *ExceptionDef {
	return &ExceptionDef{Type: typ}
}
