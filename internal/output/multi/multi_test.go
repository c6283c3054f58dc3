package multi

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftwoodlabs/issuesift/internal/model"
)

type recordingOutput struct {
	writes   int
	closeErr error
	closed   bool
}

func (o *recordingOutput) Write(context.Context, model.ClassifiedIssue) error {
	o.writes++
	return nil
}

func (o *recordingOutput) Close() error {
	o.closed = true
	return o.closeErr
}

func TestWriteFansOut(t *testing.T) {
	a, b := &recordingOutput{}, &recordingOutput{}
	m := New(a, b)

	require.NoError(t, m.Write(context.Background(), model.ClassifiedIssue{}))
	assert.Equal(t, 1, a.writes)
	assert.Equal(t, 1, b.writes)
}

func TestCloseCollectsErrors(t *testing.T) {
	a := &recordingOutput{closeErr: errors.New("a failed")}
	b := &recordingOutput{}
	m := New(a, b)

	err := m.Close()
	assert.ErrorContains(t, err, "a failed")
	// A failing output does not keep later ones from closing.
	assert.True(t, b.closed)
}
