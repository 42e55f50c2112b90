// Package ledger classifies raw ledger transfers and aggregates them into period summaries.
package ledger

import (
	"sort"
	"time"

	"github.com/goodnatureofminers/arena-wallet-backend/internal/model"
)

const (
	shortIDLength          = 10
	displayTimestampLayout = "Jan 2, 2006 15:04"
)

// Thresholds split transfers into categories. Values are in sun.
type Thresholds struct {
	// EntryFeeBelow: outgoing transfers strictly below are entry fees, the rest withdrawals.
	EntryFeeBelow int64
	// PrizeAbove: incoming transfers strictly above are prizes, the rest deposits.
	PrizeAbove int64
}

// DefaultThresholds returns the canonical 50 TRX entry fee and 100 TRX prize thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		EntryFeeBelow: 50 * model.SunPerTRX,
		PrizeAbove:    100 * model.SunPerTRX,
	}
}

// Classifier maps raw transfer records to classified entries.
type Classifier struct {
	thresholds Thresholds
	location   *time.Location
}

// NewClassifier builds a Classifier; a nil location means UTC.
func NewClassifier(thresholds Thresholds, location *time.Location) *Classifier {
	if location == nil {
		location = time.UTC
	}
	return &Classifier{thresholds: thresholds, location: location}
}

// Classify tags one record from the viewer's point of view.
// The boolean is false when the record is not a plain value transfer and must be skipped.
func (c *Classifier) Classify(rec model.RawTransferRecord, viewer model.Address) (model.ClassifiedEntry, bool) {
	if rec.Kind != model.TransferKindValue || rec.Amount < 0 {
		return model.ClassifiedEntry{}, false
	}

	direction := model.Incoming
	if rec.Sender == viewer {
		direction = model.Outgoing
	}

	entry := model.ClassifiedEntry{
		Category:         c.category(direction, rec.Amount),
		Direction:        direction,
		SignedAmount:     rec.Amount,
		Status:           model.StatusFailed,
		TxID:             rec.ID,
		ShortID:          ShortID(rec.ID),
		DisplayTimestamp: rec.OccurredAt.In(c.location).Format(displayTimestampLayout),
		OccurredAt:       rec.OccurredAt,
	}
	if direction == model.Outgoing {
		entry.SignedAmount = -rec.Amount
	}
	if rec.Outcome == model.OutcomeSuccess {
		entry.Status = model.StatusCompleted
	}
	return entry, true
}

// ClassifyWindow classifies a batch, drops skipped records and numbers the rest newest first.
func (c *Classifier) ClassifyWindow(records []model.RawTransferRecord, viewer model.Address) []model.ClassifiedEntry {
	entries := make([]model.ClassifiedEntry, 0, len(records))
	for _, rec := range records {
		if entry, ok := c.Classify(rec, viewer); ok {
			entries = append(entries, entry)
		}
	}
	SortNewestFirst(entries)
	for i := range entries {
		entries[i].Sequence = i + 1
	}
	return entries
}

// Thresholds returns the thresholds the classifier was built with.
func (c *Classifier) Thresholds() Thresholds {
	return c.thresholds
}

func (c *Classifier) category(direction model.Direction, amount int64) model.Category {
	if direction == model.Outgoing {
		if amount < c.thresholds.EntryFeeBelow {
			return model.CategoryEntryFee
		}
		return model.CategoryWithdraw
	}
	if amount > c.thresholds.PrizeAbove {
		return model.CategoryPrize
	}
	return model.CategoryDeposit
}

// ShortID truncates a transaction id for display.
func ShortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength] + "..."
}

// SortNewestFirst orders entries by time descending; ties break on transaction id.
func SortNewestFirst(entries []model.ClassifiedEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].OccurredAt.Equal(entries[j].OccurredAt) {
			return entries[i].OccurredAt.After(entries[j].OccurredAt)
		}
		return entries[i].TxID < entries[j].TxID
	})
}

// PendingEntry builds the display entry of an outgoing payment not yet seen on the ledger.
func (c *Classifier) PendingEntry(txID string, amount int64, at time.Time) model.ClassifiedEntry {
	return model.ClassifiedEntry{
		Category:         c.category(model.Outgoing, amount),
		Direction:        model.Outgoing,
		SignedAmount:     -amount,
		Status:           model.StatusPending,
		TxID:             txID,
		ShortID:          ShortID(txID),
		DisplayTimestamp: at.In(c.location).Format(displayTimestampLayout),
		OccurredAt:       at,
	}
}
