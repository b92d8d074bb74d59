// Package exam defines the exam record type extracted from syllabus pages
// and the aggregation helpers used to prepare records for display.
package exam

import (
	"fmt"
	"sort"
	"time"
)

// Record is a single examination sitting extracted from a syllabus page.
// Records are immutable once created and ordered by timestamp, then course
// code, then title.
type Record struct {
	When  time.Time `json:"when"`
	Code  string    `json:"code"`
	Title string    `json:"title"`
}

// String formats the record as "YYYY-MM-DD HH:MM - CODE - TITLE".
func (r Record) String() string {
	return fmt.Sprintf("%s - %s - %s", r.When.Format("2006-01-02 15:04"), r.Code, r.Title)
}

// Less reports whether r orders before other.
func (r Record) Less(other Record) bool {
	if !r.When.Equal(other.When) {
		return r.When.Before(other.When)
	}
	if r.Code != other.Code {
		return r.Code < other.Code
	}
	return r.Title < other.Title
}

// Upcoming returns the records dated at or after now.
func Upcoming(records []Record, now time.Time) []Record {
	kept := make([]Record, 0, len(records))
	for _, r := range records {
		if !r.When.Before(now) {
			kept = append(kept, r)
		}
	}
	return kept
}

// WithinDays returns the records no more than days ahead of now.
// days <= 0 disables the cutoff and returns records unchanged.
func WithinDays(records []Record, now time.Time, days int) []Record {
	if days <= 0 {
		return records
	}
	cutoff := now.AddDate(0, 0, days)
	kept := make([]Record, 0, len(records))
	for _, r := range records {
		if r.When.Before(cutoff) {
			kept = append(kept, r)
		}
	}
	return kept
}

// Dedupe removes exact duplicates, keeping the first occurrence order.
func Dedupe(records []Record) []Record {
	seen := make(map[Record]bool, len(records))
	unique := make([]Record, 0, len(records))
	for _, r := range records {
		if seen[r] {
			continue
		}
		seen[r] = true
		unique = append(unique, r)
	}
	return unique
}

// Sort orders records ascending by timestamp, ties broken by code then title.
func Sort(records []Record) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Less(records[j])
	})
}
