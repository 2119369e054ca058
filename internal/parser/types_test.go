package parser_test

import (
	"testing"

	"github.com/tdl-lang/tdl/internal/ast"
)

// returnType parses `def f() -> <expr>` and hands back the return type.
func returnType(t *testing.T, expr string) ast.Type {
	t.Helper()

	mod := parseModule(t, "def f() -> "+expr)
	return mod.Functions[0].ReturnType
}

func TestUnionChainFlattens(t *testing.T) {
	typ := returnType(t, "A|B|C")

	union, ok := typ.(*ast.UnionType)
	if !ok {
		t.Fatalf("expected *ast.UnionType, got %T", typ)
	}
	if len(union.Types) != 3 {
		t.Fatalf("expected 3 members, got %d", len(union.Types))
	}
	for i, want := range []string{"A", "B", "C"} {
		if got := basicName(t, union.Types[i]); got != want {
			t.Errorf("member %d: %q, want %q", i, got, want)
		}
	}
}

func TestParenthesizedUnionStaysNested(t *testing.T) {
	typ := returnType(t, "A|(B|C)")

	union, ok := typ.(*ast.UnionType)
	if !ok {
		t.Fatalf("expected *ast.UnionType, got %T", typ)
	}
	if len(union.Types) != 2 {
		t.Fatalf("expected 2 members, got %d", len(union.Types))
	}
	if got := basicName(t, union.Types[0]); got != "A" {
		t.Errorf("first member %q, want A", got)
	}

	inner, ok := union.Types[1].(*ast.UnionType)
	if !ok {
		t.Fatalf("expected nested union, got %T", union.Types[1])
	}
	if len(inner.Types) != 2 {
		t.Fatalf("expected 2 nested members, got %d", len(inner.Types))
	}
}

func TestTwoParenthesizedListsNestNotMerge(t *testing.T) {
	typ := returnType(t, "(A|B)|(C|D)")

	union, ok := typ.(*ast.UnionType)
	if !ok {
		t.Fatalf("expected *ast.UnionType, got %T", typ)
	}
	if len(union.Types) != 2 {
		t.Fatalf("expected 2 members, got %d", len(union.Types))
	}
	for i, member := range union.Types {
		if _, ok := member.(*ast.UnionType); !ok {
			t.Errorf("member %d: expected nested union, got %T", i, member)
		}
	}
}

func TestNonBasicOperandStillAppends(t *testing.T) {
	typ := returnType(t, "A|B|Foo[int]")

	union, ok := typ.(*ast.UnionType)
	if !ok {
		t.Fatalf("expected *ast.UnionType, got %T", typ)
	}
	if len(union.Types) != 3 {
		t.Fatalf("expected 3 members, got %d", len(union.Types))
	}
	if _, ok := union.Types[2].(*ast.GenericType1); !ok {
		t.Errorf("expected generic third member, got %T", union.Types[2])
	}
}

func TestIntersectionBindsTighterThanUnion(t *testing.T) {
	typ := returnType(t, "A | B & C")

	union, ok := typ.(*ast.UnionType)
	if !ok {
		t.Fatalf("expected union at the top, got %T", typ)
	}
	if len(union.Types) != 2 {
		t.Fatalf("expected 2 members, got %d", len(union.Types))
	}
	if got := basicName(t, union.Types[0]); got != "A" {
		t.Errorf("first member %q, want A", got)
	}

	inter, ok := union.Types[1].(*ast.IntersectionType)
	if !ok {
		t.Fatalf("expected intersection second member, got %T", union.Types[1])
	}
	if len(inter.Types) != 2 {
		t.Fatalf("expected 2 intersection members, got %d", len(inter.Types))
	}
}

func TestIntersectionChainFlattens(t *testing.T) {
	typ := returnType(t, "A&B&C")

	inter, ok := typ.(*ast.IntersectionType)
	if !ok {
		t.Fatalf("expected *ast.IntersectionType, got %T", typ)
	}
	if len(inter.Types) != 3 {
		t.Fatalf("expected 3 members, got %d", len(inter.Types))
	}
}

func TestGenericArityOne(t *testing.T) {
	typ := returnType(t, "Foo[int]")

	generic, ok := typ.(*ast.GenericType1)
	if !ok {
		t.Fatalf("expected *ast.GenericType1, got %T", typ)
	}
	if got := basicName(t, generic.Base); got != "Foo" {
		t.Errorf("base %q, want Foo", got)
	}
	if got := basicName(t, generic.Arg); got != "int" {
		t.Errorf("argument %q, want int", got)
	}
}

func TestGenericArityTwo(t *testing.T) {
	typ := returnType(t, "Dict[str, int]")

	generic, ok := typ.(*ast.GenericType2)
	if !ok {
		t.Fatalf("expected *ast.GenericType2, got %T", typ)
	}
	if got := basicName(t, generic.Arg1); got != "str" {
		t.Errorf("first argument %q, want str", got)
	}
	if got := basicName(t, generic.Arg2); got != "int" {
		t.Errorf("second argument %q, want int", got)
	}
}

func TestGenericArityThreeRejected(t *testing.T) {
	parseError(t, "def f() -> Foo[int, str, bool]")
}

func TestGenericBaseMustBeIdentifier(t *testing.T) {
	parseError(t, "def f() -> (A|B)[int]")
}

func TestNestedGenericArgument(t *testing.T) {
	typ := returnType(t, "list[list[int]]")

	outer, ok := typ.(*ast.GenericType1)
	if !ok {
		t.Fatalf("expected *ast.GenericType1, got %T", typ)
	}
	inner, ok := outer.Arg.(*ast.GenericType1)
	if !ok {
		t.Fatalf("expected nested generic, got %T", outer.Arg)
	}
	if got := basicName(t, inner.Arg); got != "int" {
		t.Errorf("inner argument %q, want int", got)
	}
}

func TestUnionInsideGenericArgument(t *testing.T) {
	typ := returnType(t, "list[int|str]")

	generic, ok := typ.(*ast.GenericType1)
	if !ok {
		t.Fatalf("expected *ast.GenericType1, got %T", typ)
	}
	if _, ok := generic.Arg.(*ast.UnionType); !ok {
		t.Errorf("expected union argument, got %T", generic.Arg)
	}
}

func TestNullableType(t *testing.T) {
	typ := returnType(t, "str?")

	nullable, ok := typ.(*ast.NoneableType)
	if !ok {
		t.Fatalf("expected *ast.NoneableType, got %T", typ)
	}
	if nullable.Base.Name != "str" {
		t.Errorf("base %q, want str", nullable.Base.Name)
	}
}

func TestConstantTypes(t *testing.T) {
	if c, ok := returnType(t, `"ok"`).(*ast.ConstType); !ok || c.Value != "ok" {
		t.Errorf("string constant: got %#v", c)
	}
	if c, ok := returnType(t, "42").(*ast.ConstType); !ok || c.Value != int64(42) {
		t.Errorf("integer constant: got %#v", c)
	}
	if c, ok := returnType(t, "-1").(*ast.ConstType); !ok || c.Value != int64(-1) {
		t.Errorf("negative constant: got %#v", c)
	}
	if c, ok := returnType(t, "2.5").(*ast.ConstType); !ok || c.Value != 2.5 {
		t.Errorf("float constant: got %#v", c)
	}
}

func TestGroupedTypeIntroducesNoNode(t *testing.T) {
	typ := returnType(t, "(int)")

	if got := basicName(t, typ); got != "int" {
		t.Errorf("grouped type %q, want plain int", got)
	}
}
