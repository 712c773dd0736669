package util

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/kbukum/utilkit/errors"
)

// ParamRegistry records parameter names for funcs. Compiled Go funcs carry
// no names, so callers register them once and read them back by the func
// value. Funcs that share code (closures from one literal, or the same
// top-level func) share an entry.
type ParamRegistry struct {
	mu    sync.RWMutex
	names map[uintptr][]string
}

// NewParamRegistry returns an empty registry.
func NewParamRegistry() *ParamRegistry {
	return &ParamRegistry{names: make(map[uintptr][]string)}
}

// Register stores names for fn. The count must match fn's arity.
func (r *ParamRegistry) Register(fn any, names ...string) error {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return errors.InvalidArgument("fn", "must be a non-nil func")
	}
	if n := rv.Type().NumIn(); n != len(names) {
		return errors.InvalidArgument("names", fmt.Sprintf("func takes %d parameters, got %d names", n, len(names)))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.names[rv.Pointer()] = append([]string(nil), names...)
	return nil
}

// Names returns the names registered for fn, or an empty slice.
func (r *ParamRegistry) Names(fn any) []string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return []string{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	names, ok := r.names[rv.Pointer()]
	if !ok {
		return []string{}
	}
	return append([]string{}, names...)
}

var defaultParams = NewParamRegistry()

// DefaultParamRegistry returns the package registry used by
// RegisterParamNames and by services built without WithParamRegistry.
func DefaultParamRegistry() *ParamRegistry {
	return defaultParams
}

// RegisterParamNames registers names for fn in the package registry.
func RegisterParamNames(fn any, names ...string) error {
	return defaultParams.Register(fn, names...)
}

// GetParamNames returns the names registered for fn in the package registry.
func GetParamNames(fn any) []string {
	return defaultParams.Names(fn)
}

var stripComments = regexp.MustCompile(`(?m)(//.*$)|(/\*[\s\S]*?\*/)`)

// ParseParamNames extracts parameter names from function source text. Go
// func literals and declarations are parsed. Anything else falls back to
// taking the comment-free text between the first "(" and the next ")" and
// splitting it on whitespace and commas.
func ParseParamNames(source string) []string {
	if names, ok := parseGoParams(source); ok {
		return names
	}

	s := stripComments.ReplaceAllString(source, "")
	open := strings.Index(s, "(")
	if open < 0 {
		return []string{}
	}
	inner := s[open+1:]
	if end := strings.Index(inner, ")"); end >= 0 {
		inner = inner[:end]
	}

	names := strings.FieldsFunc(inner, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	if names == nil {
		return []string{}
	}
	return names
}

func parseGoParams(source string) ([]string, bool) {
	if expr, err := parser.ParseExpr(source); err == nil {
		if lit, ok := expr.(*ast.FuncLit); ok {
			return fieldNames(lit.Type.Params), true
		}
		return nil, false
	}

	file, err := parser.ParseFile(token.NewFileSet(), "", "package p\n"+source, parser.SkipObjectResolution)
	if err != nil {
		return nil, false
	}
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			return fieldNames(fn.Type.Params), true
		}
	}
	return nil, false
}

func fieldNames(fields *ast.FieldList) []string {
	names := []string{}
	if fields == nil {
		return names
	}
	for _, f := range fields.List {
		for _, n := range f.Names {
			names = append(names, n.Name)
		}
	}
	return names
}
