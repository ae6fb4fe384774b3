package types

import (
	"fmt"
	"strings"
)

// ScopeKind distinguishes the declaration sites of a type parameter.
type ScopeKind int8

const (
	scopeInvalid ScopeKind = iota
	ScopeFunction
	ScopeMethod
	ScopeClass
)

// TemplateTypeScope names where a type parameter was declared.
// Scopes compare structurally: two scopes built independently for the same
// declaration site are equal, and the struct is usable as a map key.
type TemplateTypeScope struct {
	kind         ScopeKind
	className    string
	functionName string
}

// ScopeForFunction returns the scope of a free function.
func ScopeForFunction(function string) TemplateTypeScope {
	return TemplateTypeScope{kind: ScopeFunction, functionName: function}
}

// ScopeForMethod returns the scope of a method.
func ScopeForMethod(class, method string) TemplateTypeScope {
	return TemplateTypeScope{kind: ScopeMethod, className: class, functionName: method}
}

// ScopeForClass returns the scope of a class-level type parameter.
func ScopeForClass(class string) TemplateTypeScope {
	return TemplateTypeScope{kind: ScopeClass, className: class}
}

func (s TemplateTypeScope) Kind() ScopeKind { return s.kind }

// ClassName returns the declaring class, empty for functions.
func (s TemplateTypeScope) ClassName() string { return s.className }

// FunctionName returns the declaring function or method, empty for classes.
func (s TemplateTypeScope) FunctionName() string { return s.functionName }

// IsValid reports whether the scope names a declaration site.
func (s TemplateTypeScope) IsValid() bool {
	switch s.kind {
	case ScopeFunction:
		return s.functionName != ""
	case ScopeMethod:
		return s.className != "" && s.functionName != ""
	case ScopeClass:
		return s.className != ""
	}
	return false
}

func (s TemplateTypeScope) Equals(other TemplateTypeScope) bool {
	return s == other
}

// Describe renders "function foo()", "method Foo::bar()" or "class Foo".
func (s TemplateTypeScope) Describe() string {
	switch s.kind {
	case ScopeFunction:
		return fmt.Sprintf("function %s()", s.functionName)
	case ScopeMethod:
		return fmt.Sprintf("method %s::%s()", s.className, s.functionName)
	case ScopeClass:
		return fmt.Sprintf("class %s", s.className)
	}
	return "invalid scope"
}

// Key returns the stable identity used in records and cache keys:
// "function:foo", "method:Foo::bar" or "class:Foo".
func (s TemplateTypeScope) Key() string {
	switch s.kind {
	case ScopeFunction:
		return "function:" + s.functionName
	case ScopeMethod:
		return "method:" + s.className + "::" + s.functionName
	case ScopeClass:
		return "class:" + s.className
	}
	return ""
}

// ParseScopeKey is the inverse of Key.
func ParseScopeKey(key string) (TemplateTypeScope, error) {
	kind, rest, ok := strings.Cut(key, ":")
	if !ok {
		return TemplateTypeScope{}, invalidScope(key)
	}
	var s TemplateTypeScope
	switch kind {
	case "function":
		s = ScopeForFunction(rest)
	case "method":
		class, method, ok := strings.Cut(rest, "::")
		if !ok {
			return TemplateTypeScope{}, invalidScope(key)
		}
		s = ScopeForMethod(class, method)
	case "class":
		s = ScopeForClass(rest)
	default:
		return TemplateTypeScope{}, invalidScope(key)
	}
	if !s.IsValid() {
		return TemplateTypeScope{}, invalidScope(key)
	}
	return s, nil
}

func invalidScope(key string) *ConstructionError {
	return &ConstructionError{
		Code:    ErrCodeInvalidScope,
		Message: fmt.Sprintf("malformed scope key %q", key),
		Field:   AttrScope,
	}
}
