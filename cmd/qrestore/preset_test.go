package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexS90/quatimage/lrqmc"
)

func writePreset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestApplyPreset_OverlaysOnlyPresentKeys(t *testing.T) {
	path := writePreset(t, "init_rank: 16\nreg_coef: 0.01\nmax_iter: 50\n")

	o := lrqmc.DefaultOptions()
	require.NoError(t, applyPreset(path, &o))

	assert.Equal(t, 16, o.InitRank)
	assert.Equal(t, 0.01, o.RegCoef)
	assert.Equal(t, 50, o.MaxIter)
	// Absent keys keep their defaults.
	assert.Equal(t, lrqmc.DefaultRelTol, o.RelTol)
	assert.Equal(t, lrqmc.DefaultRankThreshold, o.RankThreshold)
	assert.Equal(t, int64(lrqmc.DefaultSeed), o.Seed)
}

func TestApplyPreset_FullSet(t *testing.T) {
	path := writePreset(t, `init_rank: 8
reg_coef: 0.5
max_iter: 7
rel_tol: 0.0001
rank_threshold: 25
rank_multiplier: 0.5
progress_every: 3
seed: 42
`)

	o := lrqmc.DefaultOptions()
	require.NoError(t, applyPreset(path, &o))

	assert.Equal(t, 8, o.InitRank)
	assert.Equal(t, 0.5, o.RegCoef)
	assert.Equal(t, 7, o.MaxIter)
	assert.Equal(t, 0.0001, o.RelTol)
	assert.Equal(t, 25.0, o.RankThreshold)
	assert.Equal(t, 0.5, o.RankMultiplier)
	assert.Equal(t, 3, o.ProgressEvery)
	assert.Equal(t, int64(42), o.Seed)
}

func TestApplyPreset_MissingFile(t *testing.T) {
	o := lrqmc.DefaultOptions()
	assert.Error(t, applyPreset(filepath.Join(t.TempDir(), "nope.yaml"), &o))
}

func TestApplyPreset_MalformedYAML(t *testing.T) {
	path := writePreset(t, "init_rank: [not a scalar\n")

	o := lrqmc.DefaultOptions()
	assert.Error(t, applyPreset(path, &o))
}
