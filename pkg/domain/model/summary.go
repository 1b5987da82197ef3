package model

import (
	"sort"

	"github.com/m-mizutani/alertsnap/pkg/domain/types"
)

// TopRepositories limits the repository grouping of a summary.
const TopRepositories = 20

type Count struct {
	Key   string
	Count int
}

type Summary struct {
	Org          types.OrgName
	GeneratedAt  string
	Total        int
	BySeverity   []Count
	ByRepository []Count
	ByTool       []Count
}

// Summarize counts the alerts of a snapshot by severity, repository and
// tool. Each grouping is sorted by count in descending order; keys with the
// same count keep the order in which they first appear in the snapshot.
func Summarize(snapshot *Snapshot) *Summary {
	byRepo := countBy(snapshot.Alerts, (*Alert).Repo)
	if len(byRepo) > TopRepositories {
		byRepo = byRepo[:TopRepositories]
	}

	return &Summary{
		Org:          snapshot.Org,
		GeneratedAt:  snapshot.GeneratedAt,
		Total:        len(snapshot.Alerts),
		BySeverity:   countBy(snapshot.Alerts, (*Alert).Severity),
		ByRepository: byRepo,
		ByTool:       countBy(snapshot.Alerts, (*Alert).Tool),
	}
}

func countBy(alerts []*Alert, keyOf func(*Alert) string) []Count {
	index := map[string]int{}
	counts := []Count{}

	for _, alert := range alerts {
		key := keyOf(alert)
		if i, ok := index[key]; ok {
			counts[i].Count++
			continue
		}
		index[key] = len(counts)
		counts = append(counts, Count{Key: key, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
