package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsType_FindsWrappedError(t *testing.T) {
	err := Wrap(&codedError{code: "CODE_NOT_FOUND"}, "lookup")

	got, ok := AsType[*codedError](err)
	assert.True(t, ok)
	assert.Equal(t, "CODE_NOT_FOUND", got.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestWrap_KeepsCauseAndNil(t *testing.T) {
	root := New("root")

	assert.True(t, Is(Wrapf(root, "family %s", "abc"), root))
	assert.Equal(t, root, Cause(Wrap(root, "outer")))
	assert.NoError(t, Wrap(nil, "nothing"))
}
