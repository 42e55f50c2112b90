package ledger

import (
	"time"

	"github.com/goodnatureofminers/arena-wallet-backend/internal/model"
	"github.com/shopspring/decimal"
)

// Aggregator folds classified entries into fiat totals and month-over-month deltas.
type Aggregator struct {
	location *time.Location
}

// NewAggregator builds an Aggregator; month boundaries are taken in location (UTC when nil).
func NewAggregator(location *time.Location) *Aggregator {
	if location == nil {
		location = time.UTC
	}
	return &Aggregator{location: location}
}

// Aggregate sums the window per category and direction, valued at rate, and compares the
// most recent complete calendar month before now with the month preceding it.
// The result does not depend on the order of entries.
func (a *Aggregator) Aggregate(entries []model.ClassifiedEntry, rate model.ExchangeRate, now time.Time) model.PeriodAggregate {
	current, previous := a.Periods(now)

	agg := model.PeriodAggregate{
		CategorySumFiat:  make(map[model.Category]decimal.Decimal, len(model.Categories)),
		PeriodDelta:      make(map[model.Category]float64, len(model.Categories)),
		DirectionSumFiat: make(map[model.Direction]decimal.Decimal, 2),
		DirectionDelta:   make(map[model.Direction]float64, 2),
		Current:          current,
		Previous:         previous,
	}

	curByCategory := make(map[model.Category]decimal.Decimal, len(model.Categories))
	prevByCategory := make(map[model.Category]decimal.Decimal, len(model.Categories))
	curByDirection := make(map[model.Direction]decimal.Decimal, 2)
	prevByDirection := make(map[model.Direction]decimal.Decimal, 2)

	for _, c := range model.Categories {
		agg.CategorySumFiat[c] = decimal.Zero
	}
	for _, d := range []model.Direction{model.Incoming, model.Outgoing} {
		agg.DirectionSumFiat[d] = decimal.Zero
	}

	for _, e := range entries {
		fiat := rate.FiatValue(e.AbsAmount())
		agg.CategorySumFiat[e.Category] = agg.CategorySumFiat[e.Category].Add(fiat)
		agg.DirectionSumFiat[e.Direction] = agg.DirectionSumFiat[e.Direction].Add(fiat)

		switch {
		case current.Contains(e.OccurredAt):
			curByCategory[e.Category] = curByCategory[e.Category].Add(fiat)
			curByDirection[e.Direction] = curByDirection[e.Direction].Add(fiat)
		case previous.Contains(e.OccurredAt):
			prevByCategory[e.Category] = prevByCategory[e.Category].Add(fiat)
			prevByDirection[e.Direction] = prevByDirection[e.Direction].Add(fiat)
		}
	}

	for c := range agg.CategorySumFiat {
		agg.PeriodDelta[c] = Delta(curByCategory[c], prevByCategory[c])
	}
	for d := range agg.DirectionSumFiat {
		agg.DirectionDelta[d] = Delta(curByDirection[d], prevByDirection[d])
	}

	return agg
}

// Periods returns the most recent complete calendar month before now and the month before it.
func (a *Aggregator) Periods(now time.Time) (current, previous model.Period) {
	local := now.In(a.location)
	thisMonth := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, a.location)
	lastMonth := thisMonth.AddDate(0, -1, 0)
	monthBefore := thisMonth.AddDate(0, -2, 0)

	return model.Period{Start: lastMonth, End: thisMonth}, model.Period{Start: monthBefore, End: lastMonth}
}

// Delta is the signed percentage change from previous to current; 0 when previous is not positive.
func Delta(current, previous decimal.Decimal) float64 {
	if !previous.IsPositive() {
		return 0
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// TrendDelta is the percentage change between the first and last point of an ordered series.
func TrendDelta(points []model.PricePoint) float64 {
	if len(points) < 2 {
		return 0
	}
	return Delta(points[len(points)-1].FiatPerUnit, points[0].FiatPerUnit)
}
