// Package dbg prints variables with their source expressions, type
// labels, and pretty-printed values, in the form:
//
//	[<file>:<line> (<function>) <date> <time>]
//	<variable>: <type> = <pretty-printed variable>
//
// repeated for each argument, with nested containers indented one level
// per depth. Output goes to dbg.log by default, truncated on the first
// call; AppendToFile and WriteToStdout select the other sinks.
//
// Argument names are recovered by parsing the caller's source file. An
// argument whose top-level text contains a comma must be wrapped in one
// extra pair of parentheses, so that dbg.Dbg(a, b+c, (m.Method(a, b)))
// names the third argument "m.Method(a, b)" rather than splitting it.
//
// Aggregate types describe themselves by implementing Debuggable via
// Derive, the analogue of deriving a debug representation:
//
//	func (u User) PrettyPrint(p *dbg.Printer) {
//		p.Derive("name, age", u.name, u.age)
//	}
//
// Printers are not safe for concurrent use. The package-level functions
// drive a single shared default printer; goroutines that must not
// interleave output need external synchronization or their own sinks.
package dbg

var defaultPrinter *Printer

// Default returns the shared default printer, constructing it on first
// use with the zero-option sink (truncate dbg.log).
func Default() *Printer {
	if defaultPrinter == nil {
		defaultPrinter = New()
	}
	return defaultPrinter
}

// SetDefault replaces the shared default printer.
func SetDefault(p *Printer) {
	defaultPrinter = p
}

// Dbg prints the given values through the default printer. See
// Printer.Dbg.
func Dbg(vals ...any) {
	Default().dbgAt(3, vals...)
}

// Named prints the given values with explicit names through the default
// printer. See Printer.Named.
func Named(args string, vals ...any) {
	Default().namedAt(3, args, vals...)
}

// Enable turns the default printer on.
func Enable() {
	Default().Enable()
}

// Disable turns the default printer off.
func Disable() {
	Default().Disable()
}
