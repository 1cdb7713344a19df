package dbg

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// callSite identifies where a debug call was made: the full source path
// (for argument-name recovery), the base file name and line for the
// header, and the bare enclosing function name.
type callSite struct {
	path string
	file string
	line int
	fn   string
}

// capture resolves the call site skip frames up the stack.
func capture(skip int) callSite {
	pc, path, line, ok := runtime.Caller(skip)
	if !ok {
		return callSite{file: "???", fn: "???"}
	}
	return callSite{
		path: path,
		file: filepath.Base(path),
		line: line,
		fn:   funcName(pc),
	}
}

// funcName trims a runtime function name like
// "github.com/vito/dbg/pkg/dbg_test.(*Suite).TestX" down to "TestX".
func funcName(pc uintptr) string {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "???"
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// sourceCache recovers the literal argument-list text of Dbg calls by
// parsing caller source files, one parse per file per session. Like the
// rest of the printer state it is unsynchronized.
type sourceCache struct {
	files map[string]*sourceFile
}

type sourceFile struct {
	fset *token.FileSet
	tree *ast.File
	src  []byte
	err  error
}

func newSourceCache() *sourceCache {
	return &sourceCache{files: map[string]*sourceFile{}}
}

// argText returns the source text between the parentheses of the Dbg
// call at the given line, with whitespace runs collapsed the way macro
// stringification would. ok is false when the source cannot be read or
// no call is found, in which case the caller falls back to positional
// names.
func (c *sourceCache) argText(path string, line int) (string, bool) {
	if path == "" {
		return "", false
	}
	sf := c.load(path)
	if sf.err != nil {
		return "", false
	}

	var text string
	found := false
	ast.Inspect(sf.tree, func(n ast.Node) bool {
		if found {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok || !isDbgCall(call) {
			return true
		}
		start := sf.fset.Position(call.Pos()).Line
		end := sf.fset.Position(call.Rparen).Line
		if line < start || line > end {
			return true
		}
		lp := sf.fset.Position(call.Lparen).Offset
		rp := sf.fset.Position(call.Rparen).Offset
		text = string(sf.src[lp+1 : rp])
		found = true
		return false
	})
	if !found {
		return "", false
	}
	return strings.Join(strings.Fields(text), " "), true
}

func (c *sourceCache) load(path string) *sourceFile {
	if sf, ok := c.files[path]; ok {
		return sf
	}
	sf := &sourceFile{fset: token.NewFileSet()}
	sf.src, sf.err = os.ReadFile(path)
	if sf.err == nil {
		sf.tree, sf.err = parser.ParseFile(sf.fset, path, sf.src, 0)
	}
	c.files[path] = sf
	return sf
}

// isDbgCall matches dbg.Dbg(...), p.Dbg(...), and bare Dbg(...) call
// expressions.
func isDbgCall(call *ast.CallExpr) bool {
	switch fun := call.Fun.(type) {
	case *ast.Ident:
		return fun.Name == "Dbg"
	case *ast.SelectorExpr:
		return fun.Sel.Name == "Dbg"
	}
	return false
}
