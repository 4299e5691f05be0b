package loadcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseInput() Input {
	return Input{
		WindPressureKPa: 1.0,
		BayWidthMM:      3000,
		MullionLengthMM: 4000,
		BarrierLoadKNM:  0,
		ULSCase:         1,
		SLSCase:         1,
		Material:        "Aluminium",
	}
}

func TestMoments_WindOnly(t *testing.T) {
	in := baseInput()
	mWL, mBL := Moments(in)
	// w = 1.0 kPa * 0.001 * 3000 mm = 3 N/mm; M = wL²/8
	assert.InDelta(t, 6_000_000.0, mWL, 1e-6)
	assert.Equal(t, 0.0, mBL)
}

func TestMoments_Barrier(t *testing.T) {
	in := baseInput()
	in.BarrierLoadKNM = 1.5
	_, mBL := Moments(in)
	// F = 1.5 * 3000 = 4500 N; M = F * 1100 / 2
	assert.InDelta(t, 2_475_000.0, mBL, 1e-6)
}

func TestULSMoment_Coefficients(t *testing.T) {
	mWL, mBL := 10.0, 4.0
	cases := []struct {
		ulsCase int
		want    float64
	}{
		{1, 1.5*10 + 0.75*4},
		{2, 0.75*10 + 1.5*4},
		{3, 1.5 * 10},
		{4, 1.5 * 4},
	}
	for _, tc := range cases {
		got, err := ULSMoment(mWL, mBL, tc.ulsCase)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-12, "ULS %d", tc.ulsCase)
	}
}

func TestULSMoment_UnknownCase(t *testing.T) {
	for _, c := range []int{0, 5, -1, 99} {
		_, err := ULSMoment(1, 1, c)
		assert.ErrorIs(t, err, ErrInvalidLoadCase, "case %d", c)
	}
}

func TestDeflectionLimit_Bands(t *testing.T) {
	cases := []struct {
		span float64
		want float64
	}{
		{2000, 10.0},
		{3000, 15.0},
		{4000, 5.0 + 4000.0/300.0}, // 18.33
		{7000, 5.0 + 7000.0/300.0},
		{7500, 30.0},
		{9000, 36.0},
	}
	for _, tc := range cases {
		got, err := DeflectionLimitMM(tc.span)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-9, "span %.0f", tc.span)
	}
}

func TestDeflectionLimit_ContinuousAtBandEdges(t *testing.T) {
	// The limit must not jump downward crossing 3000 or 7500 mm.
	for _, edge := range []float64{3000, 7500} {
		below, err := DeflectionLimitMM(edge - 1e-6)
		require.NoError(t, err)
		above, err := DeflectionLimitMM(edge + 1e-6)
		require.NoError(t, err)
		assert.InDelta(t, below, above, 1e-6, "edge %.0f", edge)
	}
}

func TestDeflectionLimit_InvalidSpan(t *testing.T) {
	for _, span := range []float64{0, -100} {
		_, err := DeflectionLimitMM(span)
		assert.ErrorIs(t, err, ErrInvalidSpan)
	}
}

func TestCalculate_WorkedExample(t *testing.T) {
	// Aluminium, 1.0 kPa, bay 3000, span 4000, no barrier, ULS 1:
	// M_WL = 6e6 Nmm, M_ULS = 9e6 Nmm, Z_req = 9e6/160 = 56.25 cm³.
	res, err := Calculate(baseInput())
	require.NoError(t, err)

	assert.InDelta(t, 9_000_000.0, res.MULSNmm, 1e-6)
	assert.InDelta(t, 56.25, res.ZReqCm3, 1e-9)
	assert.InDelta(t, 18.3333, res.DeflLimitMM, 1e-3)

	// Required I for SLS 1: 5wL⁴/(384 E δ) in cm⁴.
	wantI := 5.0 * 3.0 * 4000.0 * 4000.0 * 4000.0 * 4000.0 / (384.0 * 70000.0 * res.DeflLimitMM) / 10000.0
	assert.InDelta(t, wantI, res.IReqCm4, 1e-6)
	assert.False(t, res.Degenerate)

	require.Len(t, res.ULSCaseTable, 4)
	require.Len(t, res.SLSCaseTable, 2)
	assert.InDelta(t, 56.25, res.ULSCaseTable[0].ZReqCm3, 1e-9)
	// No barrier load: ULS 4 = 1.5 BL = 0.
	assert.InDelta(t, 0.0, res.ULSCaseTable[3].ZReqCm3, 1e-12)
}

func TestDeflectionMM_WindAndBarrier(t *testing.T) {
	in := baseInput()
	iyy := 1e7
	// Wind: 5wL⁴ / 384EI with w = 3 N/mm.
	want := 5.0 * 3.0 * 4000.0 * 4000.0 * 4000.0 * 4000.0 / (384.0 * 70000.0 * iyy)
	assert.InDelta(t, want, DeflectionMM(in, 70000, iyy), 1e-9)

	in.BarrierLoadKNM = 1.5
	in.SLSCase = 2
	// Barrier: (F·Hb / 12EI) · (0.75L² - Hb²) with F = 4500 N.
	want = (4500.0 * 1100.0 / (12.0 * 70000.0 * iyy)) * (0.75*4000.0*4000.0 - 1100.0*1100.0)
	assert.InDelta(t, want, DeflectionMM(in, 70000, iyy), 1e-9)
}

func TestDeflectionMM_ConsistentWithRequiredI(t *testing.T) {
	// A section with exactly the required I deflects exactly to the limit.
	res, err := Calculate(baseInput())
	require.NoError(t, err)
	defl := DeflectionMM(baseInput(), 70000, res.IReqCm4*10000)
	assert.InDelta(t, res.DeflLimitMM, defl, 1e-6)
}

func TestCalculate_BarrierSLSDegenerate(t *testing.T) {
	// Span shorter than the barrier height makes the SLS 2 bracket
	// (0.75L² - Hb²) non-positive. The value is reported, not clamped.
	in := baseInput()
	in.MullionLengthMM = 1000
	in.BarrierLoadKNM = 1.5
	in.SLSCase = 2
	res, err := Calculate(in)
	require.NoError(t, err)
	assert.True(t, res.Degenerate)
	assert.LessOrEqual(t, res.IReqCm4, 0.0)
}

func TestCalculate_InvalidInputs(t *testing.T) {
	in := baseInput()
	in.MullionLengthMM = 0
	_, err := Calculate(in)
	assert.ErrorIs(t, err, ErrInvalidSpan)

	in = baseInput()
	in.WindPressureKPa = -1
	_, err = Calculate(in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	in = baseInput()
	in.BarrierLoadKNM = -0.5
	_, err = Calculate(in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	in = baseInput()
	in.ULSCase = 7
	_, err = Calculate(in)
	assert.ErrorIs(t, err, ErrInvalidLoadCase)

	in = baseInput()
	in.SLSCase = 3
	_, err = Calculate(in)
	assert.ErrorIs(t, err, ErrInvalidLoadCase)

	in = baseInput()
	in.Material = "Timber"
	_, err = Calculate(in)
	assert.Error(t, err)
}
