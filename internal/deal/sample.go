package deal

import "time"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sampleDeals is the bundled fallback dataset served when the CMS is
// unconfigured or a fetch fails, so the dashboard always renders something.
var sampleDeals = []Deal{
	{
		ID:               "deal-sample-1",
		ClientName:       "Jordan Avery",
		ClientEmail:      "jordan.avery@example.com",
		TransactionStage: 3,
		KeyDates: []KeyDate{
			{ID: "kd-1", Label: "Under Contract", Date: date(2026, time.July, 14), IsCompleted: true},
			{ID: "kd-2", Label: "Option Period Deadline", Date: date(2026, time.July, 24), Notes: "Inspection scheduled for the 18th"},
			{ID: "kd-3", Label: "Closing Day", Date: date(2026, time.August, 15)},
		},
		PropertyID:    "prop-sample-2",
		ContractPrice: 485000,
		EarnestMoney:  5000,
		CreatedAt:     date(2026, time.July, 12),
	},
	{
		ID:               "deal-sample-2",
		ClientName:       "Sam Whitfield",
		ClientEmail:      "sam.whitfield@example.com",
		TransactionStage: 8,
		KeyDates: []KeyDate{
			{ID: "kd-4", Label: "Closing & Funding", Date: date(2026, time.June, 30), IsCompleted: true},
		},
		PropertyID:    "prop-sample-1",
		ContractPrice: 612000,
		EarnestMoney:  6000,
		CreatedAt:     date(2026, time.May, 2),
	},
}

// SampleDeals returns a copy of the bundled fallback deals.
func SampleDeals() []Deal {
	out := make([]Deal, len(sampleDeals))
	copy(out, sampleDeals)
	return out
}
