package main

import (
	"time"

	"github.com/KirkDiggler/cepheus-dice/internal/orchestrators/roll"
	rolllog "github.com/KirkDiggler/cepheus-dice/internal/repositories/roll_log"
)

// entryView is the structured-output shape of one recorded roll
type entryView struct {
	RollID     string    `json:"roll_id" yaml:"roll_id"`
	Expression string    `json:"expression" yaml:"expression"`
	Mode       string    `json:"mode" yaml:"mode"`
	Seed       *int64    `json:"seed,omitempty" yaml:"seed,omitempty"`
	Outcomes   []int     `json:"outcomes" yaml:"outcomes"`
	Total      int       `json:"total" yaml:"total"`
	Breakdown  string    `json:"breakdown" yaml:"breakdown"`
	Note       string    `json:"note,omitempty" yaml:"note,omitempty"`
	RolledAt   time.Time `json:"rolled_at" yaml:"rolled_at"`
}

func newEntryView(entry *rolllog.Entry) entryView {
	return entryView{
		RollID:     entry.RollID,
		Expression: entry.Expression,
		Mode:       string(entry.Mode),
		Seed:       entry.Seed,
		Outcomes:   entry.Outcomes,
		Total:      entry.Total,
		Breakdown:  entry.Breakdown,
		Note:       entry.Description,
		RolledAt:   entry.RolledAt,
	}
}

// attributeView is one characteristic in a rolled set
type attributeView struct {
	Name     string `json:"name" yaml:"name"`
	Value    int    `json:"value" yaml:"value"`
	Ehex     string `json:"ehex" yaml:"ehex"`
	Outcomes []int  `json:"outcomes" yaml:"outcomes"`
}

// attributesView is the structured-output shape of a full characteristic set
type attributesView struct {
	Attributes []attributeView `json:"attributes" yaml:"attributes"`
	UPP        string          `json:"upp" yaml:"upp"`
}

func newAttributesView(output *roll.RollAttributesOutput) attributesView {
	attrs := make([]attributeView, 0, len(output.Attributes))
	for _, attr := range output.Attributes {
		attrs = append(attrs, attributeView{
			Name:     attr.Name,
			Value:    attr.Value,
			Ehex:     attr.Ehex,
			Outcomes: attr.Result.Outcomes(),
		})
	}

	return attributesView{
		Attributes: attrs,
		UPP:        output.UPP,
	}
}

// historyView is the structured-output shape of a roll log
type historyView struct {
	OwnerID   string      `json:"owner_id" yaml:"owner_id"`
	Context   string      `json:"context" yaml:"context"`
	Entries   []entryView `json:"entries" yaml:"entries"`
	CreatedAt time.Time   `json:"created_at" yaml:"created_at"`
	ExpiresAt time.Time   `json:"expires_at" yaml:"expires_at"`
}

func newHistoryView(log *rolllog.RollLog) historyView {
	entries := make([]entryView, 0, len(log.Entries))
	for i := range log.Entries {
		entries = append(entries, newEntryView(&log.Entries[i]))
	}

	return historyView{
		OwnerID:   log.OwnerID,
		Context:   log.Context,
		Entries:   entries,
		CreatedAt: log.CreatedAt,
		ExpiresAt: log.ExpiresAt,
	}
}
