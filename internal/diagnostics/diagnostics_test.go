package diagnostics

import (
	"testing"

	"github.com/hexen-lang/hexen/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSinkIsEmptyAndStamped(t *testing.T) {
	sink := NewSink()
	assert.True(t, sink.Empty())
	assert.NotEmpty(t, sink.RunID)
}

func TestAddAppendsInOrder(t *testing.T) {
	sink := NewSink()
	sink.Add(NewError(Undefined, token.Position{Line: 1, Column: 1}, "first"))
	sink.Add(NewError(TypeMismatch, token.Position{Line: 2, Column: 1}, "second"))

	all := sink.All()
	require.Len(t, all, 2)
	assert.Equal(t, Undefined, all[0].Code)
	assert.Equal(t, TypeMismatch, all[1].Code)
	assert.False(t, sink.Empty())
}

func TestWithHintReturnsCopyLeavingOriginalUnchanged(t *testing.T) {
	original := NewError(PrecisionLossRequiresAck, token.Position{Line: 5, Column: 2}, "narrows")
	hinted := original.WithHint(": i32")

	assert.Equal(t, "", original.Hint)
	assert.Equal(t, ": i32", hinted.Hint)
	assert.Equal(t, original.Code, hinted.Code)
}

func TestErrorStringIncludesHintWhenPresent(t *testing.T) {
	withHint := NewError(AnnotationMismatch, token.Position{Line: 1, Column: 1}, "mismatch").WithHint("i64")
	withoutHint := NewError(AnnotationMismatch, token.Position{Line: 1, Column: 1}, "mismatch")

	assert.Contains(t, withHint.Error(), "hint: i64")
	assert.NotContains(t, withoutHint.Error(), "hint:")
}

func TestTwoSinksHaveDistinctRunIDs(t *testing.T) {
	a := NewSink()
	b := NewSink()
	assert.NotEqual(t, a.RunID, b.RunID)
}
