package batch

import (
	"fmt"

	mullion "Mullion/internal/calc/mullion"
	"Mullion/internal/catalog"
)

type MullionBatchInput struct {
	Items []mullion.Input `json:"items"`
}

type MullionBatchResult struct {
	Results []mullion.Result `json:"results"`
}

// CalculateMullion evaluates every item against the shared catalog. Any
// failing item aborts the batch; results are deterministic, so a partial
// batch would never be recoverable by retrying.
func CalculateMullion(in MullionBatchInput, cat *catalog.Catalog) (MullionBatchResult, error) {
	if len(in.Items) == 0 {
		return MullionBatchResult{}, fmt.Errorf("no items")
	}
	out := MullionBatchResult{Results: make([]mullion.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := mullion.Evaluate(item, cat)
		if err != nil {
			return MullionBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
