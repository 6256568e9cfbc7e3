package services

import (
	"strings"

	"youtube-trending/models"
)

// Predicate selects records for filtered exports
type Predicate interface {
	Matches(r *models.Record) bool
}

// PredicateFunc adapts a plain function to Predicate
type PredicateFunc func(r *models.Record) bool

func (f PredicateFunc) Matches(r *models.Record) bool { return f(r) }

// CategoryFilter matches an exact category_id
type CategoryFilter struct {
	CategoryID string
}

func (f CategoryFilter) Matches(r *models.Record) bool {
	return r.CategoryID == f.CategoryID
}

// ChannelFilter matches channel titles ignoring case
type ChannelFilter struct {
	Channel string
}

func (f ChannelFilter) Matches(r *models.Record) bool {
	return strings.ToLower(r.ChannelTitle) == strings.ToLower(strings.TrimSpace(f.Channel))
}

// TrendingDateFilter matches one trending_date token
type TrendingDateFilter struct {
	Date string
}

func (f TrendingDateFilter) Matches(r *models.Record) bool {
	return r.TrendingDate == strings.TrimSpace(f.Date)
}

type allOf []Predicate

func (a allOf) Matches(r *models.Record) bool {
	for _, p := range a {
		if !p.Matches(r) {
			return false
		}
	}
	return true
}

// And matches records accepted by every predicate
func And(preds ...Predicate) Predicate {
	return allOf(preds)
}

// Filter keeps records accepted by pred, in dataset order
func Filter(records []*models.Record, pred Predicate) []*models.Record {
	out := []*models.Record{}
	for _, r := range records {
		if pred.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
