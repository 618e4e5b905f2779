package deal

import (
	"errors"
	"fmt"
)

// ErrInvalidStage is returned when a transaction stage falls outside [1,8].
// A stage out of range means the CMS record is corrupt, so callers must
// surface it rather than defaulting.
var ErrInvalidStage = errors.New("transaction stage out of range")

// StageCount is the number of stages in a transaction's lifecycle.
const StageCount = 8

// StageInfo is the canonical title and description for one stage.
type StageInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// stageRegistry maps each stage number to its single canonical entry.
var stageRegistry = map[int]StageInfo{
	1: {"Offer Submitted", "Your offer has been delivered to the seller's agent and is awaiting a response."},
	2: {"Under Contract", "The seller accepted your offer and the contract has been executed by all parties."},
	3: {"Option Period", "You're in the due diligence window. Inspections are scheduled and any repair negotiations happen now."},
	4: {"Inspections Complete", "Inspections are done and any repair amendments have been agreed to."},
	5: {"Appraisal Ordered", "Your lender has ordered the appraisal to confirm the home's value supports the loan."},
	6: {"Loan Approved", "Underwriting is finished and your financing is clear to close."},
	7: {"Final Walkthrough", "One last walk through the home to confirm its condition before closing day."},
	8: {"Closed", "Congratulations! Funding is complete and the home is yours."},
}

// Describe returns the canonical title and description for a stage.
// It is total over [1,8] and returns ErrInvalidStage for anything else.
func Describe(stage int) (StageInfo, error) {
	info, ok := stageRegistry[stage]
	if !ok {
		return StageInfo{}, fmt.Errorf("%w: %d", ErrInvalidStage, stage)
	}
	return info, nil
}
