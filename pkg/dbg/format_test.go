package dbg

import (
	"bytes"
	"container/list"
	"context"
	"os"
	"testing"

	"github.com/dagger/testctx"
	"github.com/dagger/testctx/oteltest"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Exit(oteltest.Main(m))
}

type FormatSuite struct{}

func TestFormat(tT *testing.T) {
	testctx.New(tT,
		oteltest.WithTracing[*testing.T](),
		oteltest.WithLogging[*testing.T](),
	).RunTests(FormatSuite{})
}

// render pretty-prints a single value into a buffer, the way the call
// formatter would after "name: type = ".
func render(v any) string {
	var buf bytes.Buffer
	p := New(WriteTo(&buf))
	p.prettyPrint(v)
	return buf.String()
}

type user struct {
	Name string
	Age  int
}

type track struct {
	title string
	plays int
}

func (t track) PrettyPrint(p *Printer) {
	p.Derive("title, plays", t.title, t.plays)
}

func (FormatSuite) TestScalars(ctx context.Context, t *testctx.T) {
	require.Equal(t, "42", render(42))
	require.Equal(t, "3.5", render(3.5))
	require.Equal(t, "true", render(true))
	require.Equal(t, "-7", render(int8(-7)))
}

func (FormatSuite) TestStrings(ctx context.Context, t *testctx.T) {
	require.Equal(t, `"fun"`, render("fun"))
	require.Equal(t, `""`, render(""))
	// Embedded quotes pass through unescaped; documented limitation.
	require.Equal(t, `"say "hi""`, render(`say "hi"`))
}

func (FormatSuite) TestEmptyContainers(ctx context.Context, t *testctx.T) {
	require.Equal(t, "{}", render([]int{}))
	require.Equal(t, "{}", render([]user{}))
	require.Equal(t, "{}", render(map[string]int{}))
	require.Equal(t, "{}", render(map[int]struct{}{}))
	require.Equal(t, "{}", render(Set[string]{}))
	require.Equal(t, "{}", render(&Stack[int]{}))
	require.Equal(t, "{}", render(&Queue[int]{}))
	require.Equal(t, "{}", render(list.New()))
}

func (FormatSuite) TestNilContainers(ctx context.Context, t *testctx.T) {
	require.Equal(t, "nil", render((*list.List)(nil)))
	require.Equal(t, "nil", render((*Stack[int])(nil)))
	require.Equal(t, "nil", render((*Queue[string])(nil)))
	require.Equal(t, "nil", render((*user)(nil)))
}

func (FormatSuite) TestScalarSequences(ctx context.Context, t *testctx.T) {
	require.Equal(t, "{1, 2, 3}", render([]int{1, 2, 3}))
	require.Equal(t, "{1.5, 2.5}", render([2]float64{1.5, 2.5}))

	l := list.New()
	l.PushBack(1)
	l.PushBack(2)
	require.Equal(t, "{1, 2}", render(l))
}

func (FormatSuite) TestStringSequenceIsBlock(ctx context.Context, t *testctx.T) {
	require.Equal(t, `{
  <string>
  [0] = "a"
  [1] = "b"
}`, render([]string{"a", "b"}))
}

func (FormatSuite) TestAggregateSequence(ctx context.Context, t *testctx.T) {
	require.Equal(t, `{
  <dbg.user>
  [0] = {
    Name: string = "ada"
    Age: int = 36
  }
}`, render([]user{{Name: "ada", Age: 36}}))
}

func (FormatSuite) TestConsumingContainers(ctx context.Context, t *testctx.T) {
	var s Stack[int]
	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, "{3, 2, 1}", render(&s))
	require.Equal(t, 3, s.Len(), "printing must not drain the stack")

	var q Queue[string]
	q.Push("a")
	q.Push("b")
	require.Equal(t, `{
  <string>
  [0] = "a"
  [1] = "b"
}`, render(&q))
	require.Equal(t, 2, q.Len(), "printing must not drain the queue")
}

func (FormatSuite) TestSets(ctx context.Context, t *testctx.T) {
	s := Set[int]{}
	s.Add(3)
	s.Add(1)
	s.Add(2)
	require.Equal(t, "{1, 2, 3}", render(s))

	hashed := map[int]struct{}{9: {}, 4: {}, 7: {}}
	require.Equal(t, "{4, 7, 9}", render(hashed))
}

func (FormatSuite) TestMaps(ctx context.Context, t *testctx.T) {
	require.Equal(t, `{
  <string -> int>
  ["a"] = 1
  ["b"] = 2
}`, render(map[string]int{"b": 2, "a": 1}))

	require.Equal(t, `{
  <int -> dbg.user>
  [7] = {
    Name: string = "kim"
    Age: int = 9
  }
}`, render(map[int]user{7: {Name: "kim", Age: 9}}))
}

func (FormatSuite) TestOwningReferences(ctx context.Context, t *testctx.T) {
	n := 5
	require.Equal(t, "{5}", render(&n))

	var nothing *int
	require.Equal(t, "nil", render(nothing))

	u := user{Name: "bob", Age: 7}
	require.Equal(t, `{
  < -> dbg.user>
  {
    Name: string = "bob"
    Age: int = 7
  }
}`, render(&u))

	shared := NewShared(user{Name: "eve", Age: 3})
	require.Equal(t, `{
  <dbg.user>
  {
    Name: string = "eve"
    Age: int = 3
  }
}`, render(shared))

	require.Equal(t, "{8}", render(NewShared(8)))
	require.Equal(t, "nil", render(Shared[int]{}))
}

func (FormatSuite) TestDebuggableDelegation(ctx context.Context, t *testctx.T) {
	require.Equal(t, `{
  title: string = "banquet"
  plays: int = 12
}`, render(track{title: "banquet", plays: 12}))
}

func (FormatSuite) TestIndentBalance(ctx context.Context, t *testctx.T) {
	var buf bytes.Buffer
	p := New(WriteTo(&buf))
	p.prettyPrint(map[string][]user{
		"crew": {{Name: "ada", Age: 36}, {Name: "bob", Age: 7}},
	})
	require.Empty(t, p.indent, "indent must return to its pre-call value")
}
