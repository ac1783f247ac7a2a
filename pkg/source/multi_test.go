package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudbind/cloudbind/pkg/errors"
)

type stubSource struct {
	name     string
	bindings []RawBinding
	err      error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(_ context.Context) ([]RawBinding, error) {
	return s.bindings, s.err
}

func TestMultiFetchPreservesOrder(t *testing.T) {
	first := &stubSource{name: "a", bindings: []RawBinding{{ID: "a-1", URI: "redis://h:1"}, {ID: "a-2", URI: "redis://h:2"}}}
	second := &stubSource{name: "b", bindings: []RawBinding{{ID: "b-1", URI: "redis://h:3"}}}

	m := NewMulti(first, second)
	bindings, err := m.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, bindings, 3)
	assert.Equal(t, "a-1", bindings[0].ID)
	assert.Equal(t, "a-2", bindings[1].ID)
	assert.Equal(t, "b-1", bindings[2].ID)
}

func TestMultiFetchFailsWhenAnySourceFails(t *testing.T) {
	ok := &stubSource{name: "ok", bindings: []RawBinding{{ID: "a", URI: "redis://h:1"}}}
	bad := &stubSource{name: "bad", err: errors.New(errors.CodeSourceUnavailable, "down")}

	m := NewMulti(ok, bad)
	_, err := m.Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsSourceUnavailable(err))
}

func TestMultiFetchEmpty(t *testing.T) {
	m := NewMulti()
	bindings, err := m.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bindings)
}
