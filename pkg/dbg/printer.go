package dbg

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// DefaultLogFile is the sink used when no option says otherwise. It is
// truncated when the printer opens it.
const DefaultLogFile = "dbg.log"

const indentUnit = "  "

// Printer owns one debug session: the output sink, the enable toggle,
// the shared indentation, and the blank-line separator state. All of it
// is unsynchronized; a Printer expects a single logical thread of
// control, and concurrent callers must synchronize externally.
type Printer struct {
	out     io.Writer
	file    *os.File
	openErr error

	enabled bool
	called  bool
	indent  string

	now    func() time.Time
	source *sourceCache
}

// Option configures a Printer at construction time.
type Option func(*Printer)

// WriteToFile truncates and writes the named log file.
func WriteToFile(path string) Option {
	return func(p *Printer) {
		p.openSink(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC)
	}
}

// AppendToFile appends to the named log file.
func AppendToFile(path string) Option {
	return func(p *Printer) {
		p.openSink(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND)
	}
}

// WriteToStdout writes to the process's standard output.
func WriteToStdout() Option {
	return func(p *Printer) {
		p.out = os.Stdout
		p.file = nil
	}
}

// WriteTo writes to an arbitrary sink.
func WriteTo(w io.Writer) Option {
	return func(p *Printer) {
		p.out = w
		p.file = nil
	}
}

// WithClock overrides the wall clock used for header timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Printer) {
		p.now = now
	}
}

// New returns an enabled Printer. Without options it truncates and
// writes DefaultLogFile, matching the default session a plain import
// gives you.
func New(opts ...Option) *Printer {
	p := &Printer{
		enabled: true,
		now:     time.Now,
		source:  newSourceCache(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.out == nil {
		p.openSink(DefaultLogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC)
	}
	return p
}

// openSink opens a file sink. Failure is not fatal: the printer keeps
// running with writes discarded, and Err reports what went wrong.
func (p *Printer) openSink(path string, flag int) {
	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		p.openErr = errors.Wrapf(err, "opening debug log %s", path)
		p.out = io.Discard
		p.file = nil
		slog.Debug("dbg: sink unavailable, discarding output", "path", path, "error", err)
		return
	}
	p.out = f
	p.file = f
}

// Err returns the sink-open failure, if any.
func (p *Printer) Err() error {
	return p.openErr
}

// Close flushes and closes a file sink. It is a no-op for stdout and
// writer sinks.
func (p *Printer) Close() error {
	if p.file == nil {
		return nil
	}
	return p.file.Close()
}

// Enable turns debug output on.
func (p *Printer) Enable() {
	p.enabled = true
}

// Disable turns debug output off: every call is a no-op until Enable,
// and skipped calls do not count toward the blank-line separator.
func (p *Printer) Disable() {
	p.enabled = false
}

// Enabled reports the toggle state.
func (p *Printer) Enabled() bool {
	return p.enabled
}

// Dbg prints each value with its source expression, type label, and
// pretty-printed rendering, preceded by a [file:line (function) date
// time] header. Argument names come from parsing the caller's source;
// when that is unavailable the names degrade to arg0..argN-1.
func (p *Printer) Dbg(vals ...any) {
	p.dbgAt(3, vals...)
}

// Named is the explicit-name variant of Dbg: the caller supplies the
// stringified argument list, same splitting convention as Derive.
func (p *Printer) Named(args string, vals ...any) {
	p.namedAt(3, args, vals...)
}

func (p *Printer) dbgAt(skip int, vals ...any) {
	if !p.enabled {
		return
	}
	site := capture(skip)
	text, ok := p.source.argText(site.path, site.line)
	if !ok {
		slog.Debug("dbg: argument names unavailable", "file", site.path, "line", site.line)
		text = fallbackNames(len(vals))
	}
	p.logCall(site, NewArgNames(text), vals)
}

func (p *Printer) namedAt(skip int, args string, vals ...any) {
	if !p.enabled {
		return
	}
	p.logCall(capture(skip), NewArgNames(args), vals)
}

// logCall writes the call-separating blank line, the session header, and
// one name: type = value line per argument, then flushes so an abnormal
// exit never loses output to buffering.
func (p *Printer) logCall(site callSite, names *ArgNames, vals []any) {
	if p.called {
		p.write("\n")
	}
	p.called = true

	t := p.now()
	p.write("[" + site.file + ":" + strconv.Itoa(site.line) + " (" + site.fn + ") " + t.Format("02.01.06 15:04:05") + "]\n")

	for _, v := range vals {
		p.write(p.indent + names.Pop() + ": " + TypeLabel(v) + " = ")
		p.prettyPrint(v)
		p.write("\n")
	}
	p.flush()
}

// Derive writes the aggregate block for a list of named fields or
// expressions: open brace, one name: type = value line per pair at one
// deeper indent, closing brace back at the original indent with no
// trailing newline. Debuggable implementations call it with the
// stringified field list, e.g. p.Derive("a, b + c, (Method(a, b))",
// x.a, x.b+x.c, x.Method(x.a, x.b)).
func (p *Printer) Derive(args string, vals ...any) {
	names := NewArgNames(args)
	p.write("{\n")
	p.indented(func() {
		for _, v := range vals {
			p.write(p.indent + names.Pop() + ": " + TypeLabel(v) + " = ")
			p.prettyPrint(v)
			p.write("\n")
		}
	})
	p.write(p.indent + "}")
}

// write appends to the sink. Write errors are deliberately dropped:
// there is no recovery story for a failed debug write.
func (p *Printer) write(s string) {
	if p.out == nil {
		return
	}
	_, _ = io.WriteString(p.out, s)
}

// indented runs fn one indent level deeper. Increase and decrease stay
// balanced on every path through the formatter.
func (p *Printer) indented(fn func()) {
	p.indent += indentUnit
	fn()
	p.indent = p.indent[:len(p.indent)-len(indentUnit)]
}

func (p *Printer) flush() {
	switch w := p.out.(type) {
	case *os.File:
		_ = w.Sync()
	case interface{ Flush() error }:
		_ = w.Flush()
	}
}

func fallbackNames(n int) string {
	text := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			text += ", "
		}
		text += "arg" + strconv.Itoa(i)
	}
	return text
}
