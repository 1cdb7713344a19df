package dbg

import (
	"container/list"
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "int", TypeLabel(42))
	assert.Equal(t, "float64", TypeLabel(3.5))
	assert.Equal(t, "string", TypeLabel("s"))
	assert.Equal(t, "nil", TypeLabel(nil))

	assert.Equal(t, "[]int", TypeLabel([]int{}))
	assert.Equal(t, "map[string]int", TypeLabel(map[string]int{}))
	assert.Equal(t, "[]any", TypeLabel([]any{}))
}

func TestTypeLabelStripsTypeParams(t *testing.T) {
	assert.Equal(t, "dbg.Stack", TypeLabel(Stack[int]{}))
	assert.Equal(t, "dbg.Queue", TypeLabel(Queue[string]{}))
	assert.Equal(t, "dbg.Set", TypeLabel(Set[int]{}))
	assert.Equal(t, "dbg.Shared", TypeLabel(NewShared(1)))
	assert.Equal(t, "*dbg.Stack", TypeLabel(&Stack[int]{}))
}

func TestTypeLabelSpellings(t *testing.T) {
	assert.Equal(t, "error", TypeLabel(errors.New("boom")))
	assert.Equal(t, "error", TypeLabel(pkgerrors.New("boom")))
	assert.Equal(t, "list.List", TypeLabel(list.New()))
}

func TestTypeLabelUserTypes(t *testing.T) {
	assert.Equal(t, "dbg.user", TypeLabel(user{}))
	assert.Equal(t, "dbg.track", TypeLabel(track{}))
}
