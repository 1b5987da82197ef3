package model

import (
	"time"

	"github.com/m-mizutani/alertsnap/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultSnapshotPath = "dashboard/data/alerts.json"
	DefaultReportPath   = "reports/code_scanning_summary.md"
	DefaultDelay        = 200 * time.Millisecond
)

type ExportAlertsInput struct {
	Org          types.OrgName
	SnapshotPath string
	// Delay is the pause between alert requests of two consecutive repositories.
	Delay time.Duration
}

func (x *ExportAlertsInput) Validate() error {
	if err := x.Org.Validate(); err != nil {
		return err
	}
	if x.SnapshotPath == "" {
		return goerr.Wrap(types.ErrInvalidOption, "snapshot path is empty")
	}
	if x.Delay < 0 {
		return goerr.Wrap(types.ErrInvalidOption, "delay must not be negative", goerr.V("delay", x.Delay))
	}
	return nil
}

type SummarizeAlertsInput struct {
	SnapshotPath string
	ReportPath   string
}

func (x *SummarizeAlertsInput) Validate() error {
	if x.SnapshotPath == "" {
		return goerr.Wrap(types.ErrInvalidOption, "snapshot path is empty")
	}
	if x.ReportPath == "" {
		return goerr.Wrap(types.ErrInvalidOption, "report path is empty")
	}
	return nil
}
