package model

import (
	"time"

	"github.com/m-mizutani/alertsnap/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// TimestampLayout is the UTC second-precision form used for generated_at.
const TimestampLayout = "2006-01-02T15:04:05Z"

// Snapshot is the persisted result of one export run.
type Snapshot struct {
	Org         types.OrgName `json:"org"`
	GeneratedAt string        `json:"generated_at"`
	Count       int           `json:"count"`
	Alerts      []*Alert      `json:"alerts"`
}

func NewSnapshot(org types.OrgName, generatedAt time.Time, alerts []*Alert) *Snapshot {
	if alerts == nil {
		alerts = []*Alert{}
	}

	return &Snapshot{
		Org:         org,
		GeneratedAt: generatedAt.UTC().Format(TimestampLayout),
		Count:       len(alerts),
		Alerts:      alerts,
	}
}

func (x *Snapshot) Validate() error {
	if x.Org == "" {
		return goerr.Wrap(types.ErrInvalidSnapshot, "org is empty")
	}
	if x.Count != len(x.Alerts) {
		return goerr.Wrap(types.ErrInvalidSnapshot, "count does not match number of alerts",
			goerr.V("count", x.Count),
			goerr.V("alerts", len(x.Alerts)),
		)
	}
	for i, alert := range x.Alerts {
		if alert == nil {
			return goerr.Wrap(types.ErrInvalidSnapshot, "alert is null", goerr.V("index", i))
		}
	}

	return nil
}
