package mullion

import (
	"math"

	"Mullion/internal/calc/loadcase"
	"Mullion/internal/catalog"
	"Mullion/internal/material"
)

type Input struct {
	WindPressureKPa float64                `json:"wind_pressure_kpa"`
	BayWidthMM      float64                `json:"bay_width_mm"`
	MullionLengthMM float64                `json:"mullion_length_mm"`
	BarrierLoadKNM  float64                `json:"barrier_load_kn_m"`
	ULSCase         int                    `json:"uls_case"`
	SLSCase         int                    `json:"sls_case"`
	Material        string                 `json:"material"`
	Suppliers       []string               `json:"suppliers"`
	CustomSection   *catalog.CustomSection `json:"custom_section,omitempty"`
}

func (in Input) loadInput() loadcase.Input {
	return loadcase.Input{
		WindPressureKPa: in.WindPressureKPa,
		BayWidthMM:      in.BayWidthMM,
		MullionLengthMM: in.MullionLengthMM,
		BarrierLoadKNM:  in.BarrierLoadKNM,
		ULSCase:         in.ULSCase,
		SLSCase:         in.SLSCase,
		Material:        in.Material,
	}
}

// SectionResult is the utilisation check for one candidate section.
type SectionResult struct {
	Supplier     string  `json:"supplier"`
	Profile      string  `json:"profile_name"`
	Reinf        bool    `json:"reinf"`
	DepthMM      float64 `json:"depth_mm"`
	ZCm3         float64 `json:"z_cm3"`
	ICm4         float64 `json:"i_cm4"`
	DeflectionMM float64 `json:"deflection_mm"`
	ULSUtil      float64 `json:"uls_util"`
	SLSUtil      float64 `json:"sls_util"`
	MaxUtil      float64 `json:"max_util"`
	ULSPass      bool    `json:"uls_pass"`
	SLSPass      bool    `json:"sls_pass"`
	Custom       bool    `json:"custom"`
	// Evaluable is false for sections with no section modulus; they stay
	// in the raw ULS dataset as failing but are skipped by ranking.
	Evaluable bool `json:"evaluable"`
}

// Recommendation is the single suggested section: the shallowest profile
// passing both checks. Found is false when nothing passes both, which is a
// valid result state (choose a custom section), not an error.
type Recommendation struct {
	Found    bool    `json:"found"`
	Supplier string  `json:"supplier,omitempty"`
	Profile  string  `json:"profile_name,omitempty"`
	DepthMM  float64 `json:"depth_mm,omitempty"`
	ULSUtil  float64 `json:"uls_util,omitempty"`
	SLSUtil  float64 `json:"sls_util,omitempty"`
	Note     string  `json:"note"`
}

type Result struct {
	ZReqCm3     float64 `json:"z_req_cm3"`
	IReqCm4     float64 `json:"i_req_cm4"`
	DeflLimitMM float64 `json:"defl_limit_mm"`

	// Degenerate marks a barrier-governed SLS case whose required-I bracket
	// went non-positive (span too short relative to the barrier height).
	Degenerate bool `json:"degenerate"`

	// Raw holds every candidate in catalog order, including non-evaluable
	// ones; it backs the ULS scatter data.
	Raw []SectionResult `json:"raw"`
	// Ranked holds the evaluable candidates, passing before failing.
	Ranked []SectionResult `json:"ranked_sections"`

	Recommendation Recommendation     `json:"recommendation"`
	ULSCaseTable   []loadcase.CaseRow `json:"uls_case_table"`
	SLSCaseTable   []loadcase.CaseRow `json:"sls_case_table"`
}

// Evaluate runs the full selection pipeline: design requirements, candidate
// filtering, per-section utilisation, ranking and recommendation.
func Evaluate(in Input, cat *catalog.Catalog) (Result, error) {
	req, err := loadcase.Calculate(in.loadInput())
	if err != nil {
		return Result{}, err
	}
	mat, err := material.Lookup(in.Material)
	if err != nil {
		return Result{}, err
	}
	candidates, err := cat.Filter(in.Material, in.Suppliers, in.CustomSection)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		ZReqCm3:      req.ZReqCm3,
		IReqCm4:      req.IReqCm4,
		DeflLimitMM:  req.DeflLimitMM,
		Degenerate:   req.Degenerate,
		ULSCaseTable: req.ULSCaseTable,
		SLSCaseTable: req.SLSCaseTable,
	}

	li := in.loadInput()
	for _, s := range candidates {
		r := SectionResult{
			Supplier: s.Supplier,
			Profile:  s.Profile,
			Reinf:    s.Reinf,
			DepthMM:  s.DepthMM,
			ZCm3:     s.ZCm3(),
			ICm4:     s.ICm4(),
			Custom:   s.Custom,
		}
		if s.WyyMM3 <= 0 || s.IyyMM4 <= 0 {
			// No section modulus or no stiffness: neither a finite ULS
			// ratio nor a finite deflection exists. Keep the row for the
			// raw ULS data, marked failing; utilisations stay zero so the
			// result still marshals to JSON.
			r.Evaluable = false
			res.Raw = append(res.Raw, r)
			continue
		}
		r.Evaluable = true
		r.ULSUtil = req.ZReqCm3 / r.ZCm3
		r.ULSPass = r.ZCm3 >= req.ZReqCm3

		r.DeflectionMM = loadcase.DeflectionMM(li, mat.EMPa, s.IyyMM4)
		if req.DeflLimitMM > 0 {
			r.SLSUtil = r.DeflectionMM / req.DeflLimitMM
		} else {
			// Zero limit is an automatic fail, never a silent NaN.
			r.SLSUtil = math.MaxFloat64
		}
		r.SLSPass = r.DeflectionMM <= req.DeflLimitMM
		r.MaxUtil = math.Max(r.ULSUtil, r.SLSUtil)
		res.Raw = append(res.Raw, r)
	}

	res.Ranked = rank(res.Raw)
	res.Recommendation = recommend(res.Raw)
	return res, nil
}
