// Package checker orchestrates one full account check: authenticate, fetch
// the feed, parse it, and analyze the discount position.
package checker

import (
	"errors"
	"fmt"
	"log"
	"time"

	"TollSentinel/internal/analyzer"
	"TollSentinel/internal/model"
	"TollSentinel/internal/parser"
	"TollSentinel/internal/portal"
	"TollSentinel/internal/session"
)

// Checker runs the synchronous pipeline. No internal parallelism; the only
// suspension points are the portal round trips and the login-conflict
// backoff inside the auth client.
type Checker struct {
	Auth     *portal.AuthClient
	Fetcher  *portal.FeedFetcher
	Store    *session.Store
	Username string
	Password string

	now func() time.Time
}

// NewChecker wires the pipeline components together.
func NewChecker(auth *portal.AuthClient, fetcher *portal.FeedFetcher, store *session.Store, username, password string) *Checker {
	return &Checker{
		Auth:     auth,
		Fetcher:  fetcher,
		Store:    store,
		Username: username,
		Password: password,
		now:      time.Now,
	}
}

// Run checks the account for the period and returns the report.
// statedDiscount, when non-nil, switches the run into verification mode.
func (c *Checker) Run(period model.MonthPeriod, statedDiscount *float64) (*model.Report, error) {
	if _, err := c.Auth.Login(c.Username, c.Password); err != nil {
		return nil, err
	}

	raw, err := c.Fetcher.FetchMonth(period)
	if errors.Is(err, portal.ErrDataFormat) {
		// Cached session likely expired server-side. Discard it, log in
		// fresh, and try the feed once more. One round only.
		log.Printf("[WARN] feed rejected, re-authenticating: %v", err)
		c.Store.Invalidate()
		if _, err2 := c.Auth.Login(c.Username, c.Password); err2 != nil {
			return nil, err2
		}
		raw, err = c.Fetcher.FetchMonth(period)
	}
	if err != nil {
		return nil, err
	}

	txs, err := parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", portal.ErrDataFormat, err)
	}

	return c.analyze(period, txs, statedDiscount), nil
}

func (c *Checker) analyze(period model.MonthPeriod, txs []model.TollTransaction, statedDiscount *float64) *model.Report {
	now := c.now()
	tally := analyzer.Tally(txs)

	report := &model.Report{
		Period:      period,
		Tally:       tally,
		ActualTier:  analyzer.TierFor(tally.EligibleCount),
		GeneratedAt: now,
	}

	if period.IsCurrent(now) && now.Day() > 0 {
		est := analyzer.Estimate(tally.EligibleCount, now.Day(), period.Days())
		report.Estimate = &est
		report.ProjectedTier = analyzer.TierFor(int(est.ProjectedTotal))
		report.EffectiveTier = report.ProjectedTier
	} else {
		report.EffectiveTier = report.ActualTier
	}

	percent := report.EffectiveTier.Percent()
	report.Discounted = make([]model.DiscountedToll, 0, len(txs))
	for _, tx := range txs {
		d, s := analyzer.DiscountedAmount(tx, percent)
		report.Discounted = append(report.Discounted, model.DiscountedToll{
			Transaction: tx,
			TierPercent: percent,
			Discounted:  d,
			Savings:     s,
		})
	}

	if statedDiscount != nil {
		v := analyzer.VerifyDiscount(*statedDiscount, tally.EligibleAmountSum, report.ActualTier.Percent())
		report.Verification = &v
	}
	return report
}
