// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/litreview/pkg/types"
)

// mockProber scripts ListModels and GetModel responses and counts probes.
type mockProber struct {
	listed    []string
	listErr   error
	usable    map[string]bool
	probes    []string
	listCalls int
}

func (m *mockProber) ListModels(_ context.Context) ([]string, error) {
	m.listCalls++
	return m.listed, m.listErr
}

func (m *mockProber) GetModel(_ context.Context, model string) error {
	m.probes = append(m.probes, model)
	if m.usable[model] {
		return nil
	}
	return fmt.Errorf("model %s returned HTTP 404", model)
}

func TestResolveBlindProbingOnEmptyListing(t *testing.T) {
	// Five candidates, listing empty, first two probes fail, third succeeds.
	candidates := []string{"m1", "m2", "m3", "m4", "m5"}
	p := &mockProber{usable: map[string]bool{"m3": true}}

	got, err := Resolve(context.Background(), p, candidates, "", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "m3", got)
	assert.Equal(t, []string{"m1", "m2", "m3"}, p.probes)
}

func TestResolveBlindProbingOnListingError(t *testing.T) {
	p := &mockProber{
		listErr: errors.New("listing denied"),
		usable:  map[string]bool{"m2": true},
	}

	got, err := Resolve(context.Background(), p, []string{"m1", "m2"}, "", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "m2", got)
}

func TestResolveListingFiltersCandidates(t *testing.T) {
	// m1 is not listed, so it must be skipped without a probe.
	p := &mockProber{
		listed: []string{"m2", "m3"},
		usable: map[string]bool{"m2": true},
	}

	got, err := Resolve(context.Background(), p, []string{"m1", "m2", "m3"}, "", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "m2", got)
	assert.Equal(t, []string{"m2"}, p.probes)
}

func TestResolveListedButProbeFails(t *testing.T) {
	p := &mockProber{
		listed: []string{"m1", "m2"},
		usable: map[string]bool{"m2": true},
	}

	got, err := Resolve(context.Background(), p, []string{"m1", "m2"}, "", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "m2", got)
	assert.Equal(t, []string{"m1", "m2"}, p.probes)
}

func TestResolveNoCompatibleModel(t *testing.T) {
	p := &mockProber{usable: map[string]bool{}}

	_, err := Resolve(context.Background(), p, []string{"m1", "m2"}, "", io.Discard)
	assert.ErrorIs(t, err, types.ErrNoCompatibleModel)
}

func TestResolveIsIdempotent(t *testing.T) {
	p := &mockProber{usable: map[string]bool{"m2": true}}

	first, err := Resolve(context.Background(), p, []string{"m1", "m2"}, "", io.Discard)
	require.NoError(t, err)

	second, err := Resolve(context.Background(), p, []string{"m1", "m2"}, "", io.Discard)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolveOverrideSkipsProbing(t *testing.T) {
	// An explicit choice is trusted as-is, even when unlisted and unusable.
	p := &mockProber{listed: []string{"m1"}, usable: map[string]bool{}}

	got, err := Resolve(context.Background(), p, []string{"m1"}, "gemini-exp-1206", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "gemini-exp-1206", got)
	assert.Empty(t, p.probes)
	assert.Zero(t, p.listCalls)
}

func TestResolveDefaultsToCandidateModels(t *testing.T) {
	p := &mockProber{usable: map[string]bool{CandidateModels[0]: true}}

	got, err := Resolve(context.Background(), p, nil, "", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, CandidateModels[0], got)
}
