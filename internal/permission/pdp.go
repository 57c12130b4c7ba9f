package permission

import (
	"github.com/smotired/bulletinator/internal/domain"
	"github.com/smotired/bulletinator/internal/metrics"
)

// Deps bundles the read-side stores and settings every decision point needs
type Deps struct {
	Boards   BoardStore
	Accounts AccountStore
	Items    ItemStore
	Reports  ReportStore

	// FreeItemLimit is the item ceiling applied to boards whose owner has no
	// premium subscription.
	FreeItemLimit int

	// Metrics may be nil; denials are then not counted.
	Metrics *metrics.Metrics
}

func (d Deps) pip(account *domain.Account) *PolicyInformationPoint {
	return NewPolicyInformationPoint(d.Boards, d.Accounts, d.Items, account)
}

func (d Deps) denied(resource string) {
	if d.Metrics != nil {
		d.Metrics.IncrementPermissionDenied(resource)
	}
}
