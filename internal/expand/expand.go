// Package expand implements the template expansion pass that runs once
// over a freshly parsed module. Parse-time template items all carry a
// placeholder rank of 0; this pass assigns the real indices, threading
// enclosing bindings down so that a method's type parameters rank after
// the ones of its class. The pass is pure: it rebuilds nodes and never
// mutates its input.
package expand

import "github.com/tdl-lang/tdl/internal/ast"

// Expand returns a copy of the module with every template binding
// assigned its real rank. bindings is the enclosing binding context;
// callers expanding a whole module pass nil.
func Expand(mod *ast.Module, bindings []*ast.TemplateItem) *ast.Module {
	funcs := make([]*ast.Function, len(mod.Functions))
	for i, fn := range mod.Functions {
		funcs[i] = expandFunction(fn, bindings)
	}

	classes := make([]*ast.Class, len(mod.Classes))
	for i, cls := range mod.Classes {
		classes[i] = expandClass(cls, bindings)
	}

	interfaces := make([]*ast.Interface, len(mod.Interfaces))
	for i, iface := range mod.Interfaces {
		interfaces[i] = expandInterface(iface, bindings)
	}

	return ast.NewModule(funcs, classes, interfaces)
}

// rankTemplate rebuilds a template list with ranks continuing after the
// enclosing bindings.
func rankTemplate(template, bindings []*ast.TemplateItem) []*ast.TemplateItem {
	if template == nil {
		return nil
	}
	ranked := make([]*ast.TemplateItem, len(template))
	for i, item := range template {
		ranked[i] = ast.NewTemplateItem(item.Name, item.Bound, len(bindings)+i)
	}
	return ranked
}

func expandFunction(fn *ast.Function, bindings []*ast.TemplateItem) *ast.Function {
	template := rankTemplate(fn.Template, bindings)
	return ast.NewFunction(fn.Name, fn.Params, fn.ReturnType, fn.Exceptions, template, fn.Provenance, fn.Signature)
}

func expandClass(cls *ast.Class, bindings []*ast.TemplateItem) *ast.Class {
	template := rankTemplate(cls.Template, bindings)

	inner := append(append([]*ast.TemplateItem(nil), bindings...), template...)
	funcs := make([]*ast.Function, len(cls.Funcs))
	for i, fn := range cls.Funcs {
		funcs[i] = expandFunction(fn, inner)
	}

	return ast.NewClass(cls.Name, cls.Parents, funcs, template)
}

func expandInterface(iface *ast.Interface, bindings []*ast.TemplateItem) *ast.Interface {
	template := rankTemplate(iface.Template, bindings)
	return ast.NewInterface(iface.Name, iface.Parents, iface.Attrs, template)
}
