package ast

// BasicType is a named type, possibly dotted.
type BasicType struct {
	Name string
}

// NewBasicType constructs a named type node.
func NewBasicType(name string) *BasicType {
	return &BasicType{Name: name}
}

func (*BasicType) typeNode() {}

// NoneableType marks a basic type as nullable (`Foo?`).
type NoneableType struct {
	Base *BasicType
}

// NewNoneableType wraps a basic type as nullable.
func NewNoneableType(base *BasicType) *NoneableType {
	return &NoneableType{Base: base}
}

func (*NoneableType) typeNode() {}

// ConstType wraps a literal value used as a type. Value is an int64,
// float64, or string, matching the literal's decoded form.
type ConstType struct {
	Value any
}

// NewConstType constructs a constant-valued type node.
func NewConstType(value any) *ConstType {
	return &ConstType{Value: value}
}

func (*ConstType) typeNode() {}

// UnionType is a flat list of two or more member types joined by `|`.
type UnionType struct {
	Types []Type
}

// NewUnionType constructs a union node from its member list.
func NewUnionType(types []Type) *UnionType {
	return &UnionType{Types: types}
}

func (*UnionType) typeNode() {}

// IntersectionType is a flat list of two or more member types joined by `&`.
type IntersectionType struct {
	Types []Type
}

// NewIntersectionType constructs an intersection node from its member list.
func NewIntersectionType(types []Type) *IntersectionType {
	return &IntersectionType{Types: types}
}

func (*IntersectionType) typeNode() {}

// GenericType1 is a one-argument generic application.
type GenericType1 struct {
	Base Type
	Arg  Type
}

// NewGenericType1 constructs a one-argument generic node.
func NewGenericType1(base, arg Type) *GenericType1 {
	return &GenericType1{Base: base, Arg: arg}
}

func (*GenericType1) typeNode() {}

// GenericType2 is a two-argument generic application. Arity is capped at
// two by the grammar.
type GenericType2 struct {
	Base Type
	Arg1 Type
	Arg2 Type
}

// NewGenericType2 constructs a two-argument generic node.
func NewGenericType2(base, arg1, arg2 Type) *GenericType2 {
	return &GenericType2{Base: base, Arg1: arg1, Arg2: arg2}
}

func (*GenericType2) typeNode() {}

// UnknownType is the placeholder for a parameter with no annotation.
type UnknownType struct{}

// NewUnknownType constructs the absent-annotation placeholder.
func NewUnknownType() *UnknownType { return &UnknownType{} }

func (*UnknownType) typeNode() {}

// OptionalUnknownType is the placeholder for `name?` with no type.
type OptionalUnknownType struct{}

// NewOptionalUnknownType constructs the optional-without-type placeholder.
func NewOptionalUnknownType() *OptionalUnknownType { return &OptionalUnknownType{} }

func (*OptionalUnknownType) typeNode() {}

// VarArgType marks a `*args`-style parameter.
type VarArgType struct{}

// NewVarArgType constructs the vararg marker.
func NewVarArgType() *VarArgType { return &VarArgType{} }

func (*VarArgType) typeNode() {}

// VarKeywordArgType marks a `**kwargs`-style parameter.
type VarKeywordArgType struct{}

// NewVarKeywordArgType constructs the kwarg marker.
func NewVarKeywordArgType() *VarKeywordArgType { return &VarKeywordArgType{} }

func (*VarKeywordArgType) typeNode() {}
