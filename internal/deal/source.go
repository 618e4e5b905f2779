package deal

import (
	"context"
	"fmt"
	"time"

	"github.com/ark-dvd/realtor-os-sub000/internal/cms"
)

const dealQuery = `*[_type == "deal"] | order(_createdAt desc){
  _id, clientName, clientEmail, transactionStage,
  keyDates[]{_key, label, date, isCompleted, notes},
  property, contractPrice, earnestMoney, _createdAt
}`

type keyDateDoc struct {
	Key         string `json:"_key"`
	Label       string `json:"label"`
	Date        string `json:"date"`
	IsCompleted bool   `json:"isCompleted"`
	Notes       string `json:"notes"`
}

type dealDoc struct {
	ID               string       `json:"_id"`
	ClientName       string       `json:"clientName"`
	ClientEmail      string       `json:"clientEmail"`
	TransactionStage int          `json:"transactionStage"`
	KeyDates         []keyDateDoc `json:"keyDates"`
	Property         struct {
		Ref string `json:"_ref"`
	} `json:"property"`
	ContractPrice float64 `json:"contractPrice"`
	EarnestMoney  float64 `json:"earnestMoney"`
	CreatedAt     string  `json:"_createdAt"`
}

// parseDocDate accepts the two date shapes Sanity hands back: plain date
// fields and RFC3339 system timestamps. Unparseable input yields the zero
// time, consistent with the best-effort policy for authored content.
func parseDocDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (d dealDoc) toDeal() Deal {
	dates := make([]KeyDate, 0, len(d.KeyDates))
	for _, kd := range d.KeyDates {
		dates = append(dates, KeyDate{
			ID:          kd.Key,
			Label:       kd.Label,
			Date:        parseDocDate(kd.Date),
			IsCompleted: kd.IsCompleted,
			Notes:       kd.Notes,
		})
	}
	return Deal{
		ID:               d.ID,
		ClientName:       d.ClientName,
		ClientEmail:      d.ClientEmail,
		TransactionStage: d.TransactionStage,
		KeyDates:         dates,
		PropertyID:       d.Property.Ref,
		ContractPrice:    d.ContractPrice,
		EarnestMoney:     d.EarnestMoney,
		CreatedAt:        parseDocDate(d.CreatedAt),
	}
}

// toDoc builds the Sanity document for a deal, the inverse of toDeal.
func toDoc(d Deal) map[string]any {
	dates := make([]map[string]any, 0, len(d.KeyDates))
	for _, kd := range d.KeyDates {
		dates = append(dates, map[string]any{
			"_key":        kd.ID,
			"label":       kd.Label,
			"date":        kd.Date.Format("2006-01-02"),
			"isCompleted": kd.IsCompleted,
			"notes":       kd.Notes,
		})
	}
	doc := map[string]any{
		"_id":              d.ID,
		"_type":            "deal",
		"clientName":       d.ClientName,
		"clientEmail":      d.ClientEmail,
		"transactionStage": d.TransactionStage,
		"keyDates":         dates,
		"contractPrice":    d.ContractPrice,
		"earnestMoney":     d.EarnestMoney,
	}
	if d.PropertyID != "" {
		doc["property"] = map[string]any{"_type": "reference", "_ref": d.PropertyID}
	}
	return doc
}

// CMSSource fetches deals from the CMS.
type CMSSource struct {
	client *cms.Client
}

// NewCMSSource wraps a cms client as a deal Source.
func NewCMSSource(client *cms.Client) *CMSSource {
	return &CMSSource{client: client}
}

// Deals returns every deal document, newest first.
func (s *CMSSource) Deals(ctx context.Context) ([]Deal, error) {
	var docs []dealDoc
	if err := s.client.Query(ctx, dealQuery, &docs); err != nil {
		return nil, fmt.Errorf("fetch deals: %w", err)
	}
	deals := make([]Deal, 0, len(docs))
	for _, doc := range docs {
		deals = append(deals, doc.toDeal())
	}
	return deals, nil
}
