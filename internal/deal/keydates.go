package deal

import "strings"

// stageKeywords maps a stage to the label fragments that identify its
// milestone date. Stage 1 has no entry: submitted offers have no
// conventional milestone label, so no match is attempted.
var stageKeywords = map[int][]string{
	2: {"under contract", "contract executed", "effective date"},
	3: {"option period", "due diligence"},
	4: {"inspection"},
	5: {"appraisal"},
	6: {"loan approval", "financing", "clear to close"},
	7: {"walkthrough", "walk-through"},
	8: {"closing", "funding"},
}

// MatchKeyDate finds the milestone date for a stage by scanning labels for
// the stage's keywords, case-insensitive substring containment. The first
// match in input order wins; when several dates match the same stage only
// the first is surfaced. This is a deliberate simple policy, not a ranking.
func MatchKeyDate(stage int, dates []KeyDate) *KeyDate {
	keywords, ok := stageKeywords[stage]
	if !ok {
		return nil
	}
	for i := range dates {
		label := strings.ToLower(dates[i].Label)
		for _, kw := range keywords {
			if strings.Contains(label, kw) {
				return &dates[i]
			}
		}
	}
	return nil
}
