package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindInvalidInput, KindOf(InvalidInput("bad field")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindForbidden, KindOf(Forbidden("no")))
	assert.Equal(t, KindConflict, KindOf(Conflict("taken")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))

	// Wrapped domain errors keep their kind.
	wrapped := fmt.Errorf("context: %w", Conflict("taken"))
	assert.Equal(t, KindConflict, KindOf(wrapped))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "table not found", Message(NotFound("table not found")))
	// Internal causes never leak to the caller.
	assert.Equal(t, "internal server error", Message(errors.New("dial tcp: refused")))

	err := Internal("failed to load table", errors.New("disk io"))
	assert.Equal(t, "failed to load table", Message(err))
	assert.Contains(t, err.Error(), "disk io")
}
