package dbg

import "context"

type printerKey struct{}

// ToContext stores the Printer in the context so deep call stacks can
// reach their session printer without going through the default.
func ToContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, printerKey{}, p)
}

// FromContext retrieves the Printer from the context, falling back to
// the default printer.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(printerKey{}).(*Printer); ok {
		return p
	}
	return Default()
}
