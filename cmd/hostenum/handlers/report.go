package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/imamik/hostenum/internal/config"
	"github.com/imamik/hostenum/internal/enumerate"
)

// report is the JSON form of an enumeration run, mirroring the text
// report for scripting.
type report struct {
	Pattern    string             `json:"pattern"`
	Tag        string             `json:"tag"`
	Provider   string             `json:"provider"`
	Applied    bool               `json:"applied"`
	Conforming []conformingEntry  `json:"conforming"`
	Changes    []enumerate.Change `json:"changes"`
}

type conformingEntry struct {
	InstanceID string `json:"instance_id"`
	Name       string `json:"name"`
	Value      string `json:"value"`
	ID         int    `json:"id"`
}

func renderJSON(cfg *config.Config, plan *enumerate.Plan, applied bool) (string, error) {
	r := report{
		Pattern:    cfg.Pattern,
		Tag:        cfg.Tag,
		Provider:   cfg.Provider,
		Applied:    applied,
		Conforming: make([]conformingEntry, 0, len(plan.Conforming)),
		Changes:    plan.Changes,
	}
	if r.Changes == nil {
		r.Changes = []enumerate.Change{}
	}

	for _, c := range plan.Conforming {
		r.Conforming = append(r.Conforming, conformingEntry{
			InstanceID: c.Instance.ID,
			Name:       c.Instance.Name,
			Value:      c.Instance.TagValue,
			ID:         c.ID,
		})
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	return string(data), nil
}
