package lookup

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is a point-in-time market record: the 10-year Treasury yield,
// the 30-year mortgage average, and the spread between them, all in
// percentage form. Calculation never depends on it; it is display-only
// context beside a payment answer.
type Snapshot struct {
	TenYearYield decimal.Decimal `json:"tenYearYield"`
	Mort30Avg    decimal.Decimal `json:"mort30Avg"`
	Spread       decimal.Decimal `json:"spread"`
	AsOf         time.Time       `json:"asOf"`
}

// SnapshotProvider supplies the latest market snapshot, or an error when no
// snapshot is available.
type SnapshotProvider interface {
	Latest() (*Snapshot, error)
}

// StaticSnapshotProvider returns a fixed snapshot. It stands in for a live
// feed in the CLI and in tests.
type StaticSnapshotProvider struct {
	snapshot Snapshot
}

// NewStaticSnapshotProvider creates a provider pinned to the given snapshot.
func NewStaticSnapshotProvider(snapshot Snapshot) *StaticSnapshotProvider {
	return &StaticSnapshotProvider{snapshot: snapshot}
}

// Latest returns the pinned snapshot.
func (p *StaticSnapshotProvider) Latest() (*Snapshot, error) {
	snap := p.snapshot
	return &snap, nil
}
