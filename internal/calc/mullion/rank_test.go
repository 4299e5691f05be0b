package mullion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sr(profile string, depth, uls, sls float64) SectionResult {
	return SectionResult{
		Profile:   profile,
		DepthMM:   depth,
		ULSUtil:   uls,
		SLSUtil:   sls,
		MaxUtil:   math.Max(uls, sls),
		ULSPass:   uls <= 1.0,
		SLSPass:   sls <= 1.0,
		Evaluable: true,
	}
}

func TestRank_PassingBeforeFailing(t *testing.T) {
	raw := []SectionResult{
		sr("fail-close", 100, 1.05, 0.9),
		sr("pass-low", 100, 0.5, 0.3),
		sr("fail-far", 100, 2.5, 2.0),
		sr("pass-high", 100, 0.8, 0.95),
	}
	got := rank(raw)
	require.Len(t, got, 4)

	// Passing by SLS utilisation descending.
	assert.Equal(t, "pass-high", got[0].Profile)
	assert.Equal(t, "pass-low", got[1].Profile)
	// Failing by max utilisation ascending.
	assert.Equal(t, "fail-close", got[2].Profile)
	assert.Equal(t, "fail-far", got[3].Profile)

	for i, s := range got {
		if i < 2 {
			assert.LessOrEqual(t, s.MaxUtil, 1.0)
		} else {
			assert.Greater(t, s.MaxUtil, 1.0)
		}
	}
}

func TestRank_SkipsNonEvaluable(t *testing.T) {
	broken := SectionResult{Profile: "broken"}
	got := rank([]SectionResult{sr("ok", 100, 0.5, 0.5), broken})
	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].Profile)
}

func TestRank_StableOnTies(t *testing.T) {
	raw := []SectionResult{
		sr("first", 100, 0.6, 0.8),
		sr("second", 110, 0.7, 0.8),
		sr("third", 120, 0.5, 0.8),
	}
	got := rank(raw)
	// Equal SLS utilisation: catalog order is kept.
	assert.Equal(t, "first", got[0].Profile)
	assert.Equal(t, "second", got[1].Profile)
	assert.Equal(t, "third", got[2].Profile)
}

func TestRecommend_MinimumDepth(t *testing.T) {
	raw := []SectionResult{
		sr("deep", 140, 0.4, 0.4),
		sr("shallow", 100, 0.9, 0.9),
		sr("mid", 120, 0.5, 0.5),
	}
	rec := recommend(raw)
	require.True(t, rec.Found)
	assert.Equal(t, "shallow", rec.Profile)
	assert.Equal(t, 100.0, rec.DepthMM)
}

func TestRecommend_FailingNeverRecommended(t *testing.T) {
	raw := []SectionResult{
		sr("shallow-fails-uls", 90, 1.2, 0.5),
		sr("shallow-fails-sls", 95, 0.5, 1.2),
		sr("deeper-passes", 120, 0.6, 0.6),
	}
	rec := recommend(raw)
	require.True(t, rec.Found)
	assert.Equal(t, "deeper-passes", rec.Profile)
}

func TestRecommend_DepthTieBreaksOnUtilisationDistance(t *testing.T) {
	// Equal depth: prefer the larger sqrt(ULS² + SLS²), the most
	// material-efficient of the equally shallow options.
	raw := []SectionResult{
		sr("slack", 100, 0.3, 0.3),
		sr("tight", 100, 0.9, 0.9),
	}
	rec := recommend(raw)
	require.True(t, rec.Found)
	assert.Equal(t, "tight", rec.Profile)
}

func TestRecommend_ExactTieTakesFirstRow(t *testing.T) {
	raw := []SectionResult{
		sr("first", 100, 0.7, 0.7),
		sr("twin", 100, 0.7, 0.7),
	}
	rec := recommend(raw)
	require.True(t, rec.Found)
	assert.Equal(t, "first", rec.Profile)
}

func TestRecommend_NonePassing(t *testing.T) {
	raw := []SectionResult{
		sr("fail-a", 100, 1.2, 0.5),
		sr("fail-b", 120, 0.5, 1.4),
	}
	rec := recommend(raw)
	assert.False(t, rec.Found)
	assert.Equal(t, "No suitable profile - choose a custom one!", rec.Note)
	assert.Empty(t, rec.Profile)
}
