// Package callsite recovers the argument expressions of a checkpoint call
// by parsing the caller's source file.
package callsite

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"sync"

	"github.com/arthur-debert/printbreak/pkg/errors"
	"github.com/arthur-debert/printbreak/pkg/logging"
)

// Call identifies a call site.
type Call struct {
	File string
	Line int
	// Funcs are the function names that count as checkpoint calls.
	Funcs []string
	// Skip is the number of leading arguments that are not values.
	Skip int
	// Count is the number of value arguments passed.
	Count int
}

type parsedFile struct {
	fset *token.FileSet
	file *ast.File
	src  []byte
	err  error
}

// Resolver parses and caches source files.
type Resolver struct {
	mu    sync.Mutex
	files map[string]*parsedFile
}

// NewResolver returns an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{files: map[string]*parsedFile{}}
}

// Default is the process-wide resolver.
var Default = NewResolver()

// Fallback is the name used for the i-th value when resolution fails.
func Fallback(i int) string {
	return fmt.Sprintf("arg%d", i)
}

// Names returns one name per value argument of the call. Unresolvable
// arguments get Fallback names and the error says why.
func (r *Resolver) Names(c Call) ([]string, error) {
	names := make([]string, c.Count)
	for i := range names {
		names[i] = Fallback(i)
	}
	if c.Count == 0 {
		return names, nil
	}

	pf := r.parse(c.File)
	if pf.err != nil {
		return names, pf.err
	}

	call := findCall(pf, c)
	if call == nil {
		return names, errors.Newf(errors.ErrSourceRead, "no checkpoint call at %s:%d", c.File, c.Line)
	}

	args := call.Args[c.Skip:]
	for i := range names {
		arg := args[i]
		start := pf.fset.Position(arg.Pos()).Offset
		end := pf.fset.Position(arg.End()).Offset
		if start < 0 || end > len(pf.src) || start >= end {
			continue
		}
		names[i] = strings.Join(strings.Fields(string(pf.src[start:end])), " ")
	}
	return names, nil
}

func (r *Resolver) parse(path string) *parsedFile {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pf, ok := r.files[path]; ok {
		return pf
	}

	pf := &parsedFile{fset: token.NewFileSet()}
	src, err := os.ReadFile(path)
	if err != nil {
		pf.err = errors.Wrap(err, errors.ErrSourceRead, "failed to read caller source").WithDetail("path", path)
	} else {
		pf.src = src
		pf.file, err = parser.ParseFile(pf.fset, path, src, parser.SkipObjectResolution)
		if err != nil {
			pf.err = errors.Wrap(err, errors.ErrSourceRead, "failed to parse caller source").WithDetail("path", path)
		}
	}
	if pf.err != nil {
		log := logging.GetLogger("callsite")
		log.Debug().Err(pf.err).Msg("argument names unavailable")
	}

	r.files[path] = pf
	return pf
}

// findCall returns the first matching call spanning the line whose value
// argument count agrees with the call site.
func findCall(pf *parsedFile, c Call) *ast.CallExpr {
	var found *ast.CallExpr
	ast.Inspect(pf.file, func(n ast.Node) bool {
		if found != nil {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		first := pf.fset.Position(call.Pos()).Line
		last := pf.fset.Position(call.End()).Line
		if c.Line < first || c.Line > last {
			return false
		}
		if !matchesFunc(call.Fun, c.Funcs) || call.Ellipsis.IsValid() {
			return true
		}
		if len(call.Args)-c.Skip != c.Count {
			return true
		}
		found = call
		return false
	})
	return found
}

func matchesFunc(fun ast.Expr, names []string) bool {
	var name string
	switch f := fun.(type) {
	case *ast.Ident:
		name = f.Name
	case *ast.SelectorExpr:
		name = f.Sel.Name
	case *ast.IndexExpr:
		return matchesFunc(f.X, names)
	default:
		return false
	}
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
