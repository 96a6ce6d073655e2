package remap_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c360studio/entityloader/remap"
)

func TestKindExitCodes(t *testing.T) {
	tests := []struct {
		kind remap.Kind
		code int
		name string
	}{
		{remap.InputError, 2, "input_error"},
		{remap.SyntaxError, 3, "syntax_error"},
		{remap.CreationFailed, 4, "creation_failed"},
		{remap.UpdateFailed, 5, "update_failed"},
		{remap.KindUnknown, 1, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.kind.ExitCode())
			assert.Equal(t, tt.name, tt.kind.String())
		})
	}
}

func TestKindOf(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("run: %w", &remap.Error{Kind: remap.UpdateFailed, Stage: remap.StagePersisted, Err: cause})

	assert.Equal(t, remap.UpdateFailed, remap.KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "run: boom", err.Error())
	assert.Equal(t, 5, remap.ExitCode(err))

	assert.Equal(t, remap.KindUnknown, remap.KindOf(context.Canceled))
	assert.Equal(t, 1, remap.ExitCode(context.Canceled))
	assert.Equal(t, 0, remap.ExitCode(nil))
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "concepts_discovered", remap.StageConceptsDiscovered.String())
	assert.Equal(t, "aborted", remap.StageAborted.String())
	assert.Equal(t, "unknown", remap.Stage(42).String())
}
