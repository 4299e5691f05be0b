package loadcase

import (
	"errors"
	"fmt"

	"Mullion/internal/material"
)

// BarrierHeightMM is the height above the mullion base at which the barrier
// line load acts, per the facade design brief.
const BarrierHeightMM = 1100.0

var (
	ErrInvalidLoadCase = errors.New("invalid load case")
	ErrInvalidSpan     = errors.New("invalid span")
	ErrInvalidInput    = errors.New("invalid input")
)

type Input struct {
	WindPressureKPa float64 `json:"wind_pressure_kpa"`
	BayWidthMM      float64 `json:"bay_width_mm"`
	MullionLengthMM float64 `json:"mullion_length_mm"`
	BarrierLoadKNM  float64 `json:"barrier_load_kn_m"`
	ULSCase         int     `json:"uls_case"`
	SLSCase         int     `json:"sls_case"`
	Material        string  `json:"material"`
}

// CaseRow is one line of the ULS or SLS load-case table.
type CaseRow struct {
	Case       int     `json:"case"`
	Loading    string  `json:"loading"`
	ZReqCm3    float64 `json:"z_req_cm3,omitempty"`
	IReqCm4    float64 `json:"i_req_cm4,omitempty"`
	Degenerate bool    `json:"degenerate,omitempty"`
}

type Result struct {
	MWLNmm       float64   `json:"m_wl_nmm"`
	MBLNmm       float64   `json:"m_bl_nmm"`
	MULSNmm      float64   `json:"m_uls_nmm"`
	ZReqCm3      float64   `json:"z_req_cm3"`
	IReqCm4      float64   `json:"i_req_cm4"`
	DeflLimitMM  float64   `json:"defl_limit_mm"`
	Degenerate   bool      `json:"degenerate"`
	ULSCaseTable []CaseRow `json:"uls_case_table"`
	SLSCaseTable []CaseRow `json:"sls_case_table"`
}

// Validate checks the request geometry and loads. The barrier load may be
// zero (no barrier), everything else must be positive.
func (in Input) Validate() error {
	if in.MullionLengthMM <= 0 {
		return fmt.Errorf("%w: mullion length %.4g mm", ErrInvalidSpan, in.MullionLengthMM)
	}
	if in.WindPressureKPa <= 0 {
		return fmt.Errorf("%w: wind pressure %.4g kPa", ErrInvalidInput, in.WindPressureKPa)
	}
	if in.BayWidthMM <= 0 {
		return fmt.Errorf("%w: bay width %.4g mm", ErrInvalidInput, in.BayWidthMM)
	}
	if in.BarrierLoadKNM < 0 {
		return fmt.Errorf("%w: barrier load %.4g kN/m", ErrInvalidInput, in.BarrierLoadKNM)
	}
	return nil
}

// WindUDL returns the wind line load on the mullion in N/mm.
func (in Input) WindUDL() float64 {
	// kPa -> N/mm², then times tributary width
	return in.WindPressureKPa * 0.001 * in.BayWidthMM
}

// BarrierPointLoadN returns the equivalent barrier point load in N.
// 1 kN/m over a bay in mm gives N directly.
func (in Input) BarrierPointLoadN() float64 {
	return in.BarrierLoadKNM * in.BayWidthMM
}

// Moments returns the midspan wind and barrier bending moments in Nmm.
func Moments(in Input) (mWL, mBL float64) {
	w := in.WindUDL()
	L := in.MullionLengthMM
	mWL = w * L * L / 8.0
	mBL = in.BarrierPointLoadN() * BarrierHeightMM / 2.0
	return mWL, mBL
}

// ULSMoment combines the wind and barrier moments for a ULS case.
func ULSMoment(mWL, mBL float64, ulsCase int) (float64, error) {
	switch ulsCase {
	case 1:
		return 1.5*mWL + 0.75*mBL, nil
	case 2:
		return 0.75*mWL + 1.5*mBL, nil
	case 3:
		return 1.5 * mWL, nil
	case 4:
		return 1.5 * mBL, nil
	}
	return 0, fmt.Errorf("%w: ULS %d", ErrInvalidLoadCase, ulsCase)
}

func ulsLoading(ulsCase int) string {
	switch ulsCase {
	case 1:
		return "1.5 WL + 0.75 BL"
	case 2:
		return "0.75 WL + 1.5 BL"
	case 3:
		return "1.5 WL"
	default:
		return "1.5 BL"
	}
}

// DeflectionLimitMM is the allowable midspan deflection for a mullion of
// span L (mm), piecewise per the facade serviceability rules.
func DeflectionLimitMM(spanMM float64) (float64, error) {
	if spanMM <= 0 {
		return 0, fmt.Errorf("%w: %.4g mm", ErrInvalidSpan, spanMM)
	}
	switch {
	case spanMM <= 3000:
		return spanMM / 200.0, nil
	case spanMM < 7500:
		return 5.0 + spanMM/300.0, nil
	default:
		return spanMM / 250.0, nil
	}
}

// DeflectionMM returns the midspan deflection (mm) under the active SLS
// case of a section with the given second moment of area (mm⁴). SLS 1 is
// the wind UDL formula, SLS 2 the barrier point load. Callers must not pass
// a non-positive Iyy; such sections cannot deflect finitely.
func DeflectionMM(in Input, eMPa, iyyMM4 float64) float64 {
	L := in.MullionLengthMM
	if in.SLSCase == 2 {
		fBL := in.BarrierPointLoadN()
		return (fBL * BarrierHeightMM / (12.0 * eMPa * iyyMM4)) * (0.75*L*L - BarrierHeightMM*BarrierHeightMM)
	}
	w := in.WindUDL()
	return 5.0 * w * L * L * L * L / (384.0 * eMPa * iyyMM4)
}

// RequiredICm4 computes the second moment of area (cm⁴) needed to keep the
// active SLS case within the deflection limit. Deflection is linear in
// 1/Iyy, so the required I is the unit-inertia deflection over the limit.
// For SLS 2 the bracket (0.75 L² - Hb²) can go non-positive when the span
// is close to the barrier height; the raw value is returned with degenerate
// set so callers can flag it rather than hide it.
func RequiredICm4(in Input, eMPa, deflLimitMM float64) (iReqCm4 float64, degenerate bool, err error) {
	if eMPa <= 0 {
		return 0, false, fmt.Errorf("%w: E %.4g MPa", material.ErrInvalidMaterial, eMPa)
	}
	if deflLimitMM <= 0 {
		return 0, false, fmt.Errorf("%w: deflection limit %.4g mm", ErrInvalidInput, deflLimitMM)
	}
	switch in.SLSCase {
	case 1:
		return DeflectionMM(in, eMPa, 1.0) / deflLimitMM / 10000.0, false, nil
	case 2:
		L := in.MullionLengthMM
		bracket := 0.75*L*L - BarrierHeightMM*BarrierHeightMM
		return DeflectionMM(in, eMPa, 1.0) / deflLimitMM / 10000.0, bracket <= 0, nil
	}
	return 0, false, fmt.Errorf("%w: SLS %d", ErrInvalidLoadCase, in.SLSCase)
}

// Calculate derives the design requirements for a load input: the required
// section modulus for the chosen ULS case, the required second moment of
// area for the chosen SLS case, the deflection limit, and the full ULS/SLS
// case tables.
func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	mat, err := material.Lookup(in.Material)
	if err != nil {
		return Result{}, err
	}

	mWL, mBL := Moments(in)
	mULS, err := ULSMoment(mWL, mBL, in.ULSCase)
	if err != nil {
		return Result{}, err
	}
	deflLimit, err := DeflectionLimitMM(in.MullionLengthMM)
	if err != nil {
		return Result{}, err
	}
	iReqCm4, degenerate, err := RequiredICm4(in, mat.EMPa, deflLimit)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		MWLNmm:      mWL,
		MBLNmm:      mBL,
		MULSNmm:     mULS,
		ZReqCm3:     mULS / mat.FyMPa / 1000.0, // mm³ -> cm³
		IReqCm4:     iReqCm4,
		DeflLimitMM: deflLimit,
		Degenerate:  degenerate,
	}

	for c := 1; c <= 4; c++ {
		m, _ := ULSMoment(mWL, mBL, c)
		res.ULSCaseTable = append(res.ULSCaseTable, CaseRow{
			Case:    c,
			Loading: ulsLoading(c),
			ZReqCm3: m / mat.FyMPa / 1000.0,
		})
	}
	for c := 1; c <= 2; c++ {
		sub := in
		sub.SLSCase = c
		iCm4, deg, _ := RequiredICm4(sub, mat.EMPa, deflLimit)
		loading := "Wind Load"
		if c == 2 {
			loading = "Barrier Load"
		}
		res.SLSCaseTable = append(res.SLSCaseTable, CaseRow{
			Case:       c,
			Loading:    loading,
			IReqCm4:    iCm4,
			Degenerate: deg,
		})
	}
	return res, nil
}
