// Package expiry classifies tracked documents by days until expiry. It is the
// single implementation behind the employee, temp-employee and branch
// document reports; each caller supplies its own field specs.
package expiry

import (
	"math"
	"time"
)

type Bucket string

const (
	BucketExpired  Bucket = "expired"
	BucketCritical Bucket = "critical"
	BucketWarning  Bucket = "warning"
	BucketValid    Bucket = "valid"
)

const (
	// criticalWindowDays and warningWindowDays bound the classifier buckets.
	criticalWindowDays = 7
	warningWindowDays  = 30

	// reportWarningDays bounds the warning label in the expiring-soon table,
	// which uses a tighter window than the classifier bucket.
	reportWarningDays = 15
)

// OwnerKind identifies which entity type a classified document belongs to.
type OwnerKind string

const (
	OwnerEmployee     OwnerKind = "employee"
	OwnerTempEmployee OwnerKind = "temp_employee"
	OwnerBranch       OwnerKind = "branch"
)

// Owner identifies the entity a document belongs to.
type Owner struct {
	ID       string
	Name     string
	Kind     OwnerKind
	Location string
}

// FieldSpec names one tracked document field on T. Value returns the expiry
// date as a "2006-01-02" string, or "" when the document is not tracked.
type FieldSpec[T any] struct {
	Key   string
	Label string
	Value func(T) string
}

// ClassifiedDoc is the derived (never persisted) classification of a single
// tracked document, recomputed fresh from the given date on every pass.
type ClassifiedDoc struct {
	Owner         Owner
	DocumentType  string
	DocumentLabel string
	ExpiryDate    time.Time
	DaysLeft      int
	Bucket        Bucket
}

// DaysOverdue is the positive overdue magnitude for expired documents.
func (d ClassifiedDoc) DaysOverdue() int {
	if d.DaysLeft >= 0 {
		return 0
	}
	return -d.DaysLeft
}

// Severity is the three-way status label used by the expiring-soon table:
// critical within 7 days, warning within 15, otherwise "expiring".
func (d ClassifiedDoc) Severity() string {
	switch {
	case d.DaysLeft <= criticalWindowDays:
		return "critical"
	case d.DaysLeft <= reportWarningDays:
		return "warning"
	default:
		return "expiring"
	}
}

// Classify computes the bucket of every tracked document on every record.
// Absent or unparseable dates are skipped rather than reported; a bad date in
// one field must never take down the whole report.
func Classify[T any](today time.Time, records []T, owner func(T) Owner, fields []FieldSpec[T]) []ClassifiedDoc {
	docs := make([]ClassifiedDoc, 0, len(records))
	for _, record := range records {
		own := owner(record)
		for _, field := range fields {
			raw := field.Value(record)
			if raw == "" {
				continue
			}
			expiryDate, ok := parseDate(raw)
			if !ok {
				continue
			}
			daysLeft := daysUntil(today, expiryDate)
			docs = append(docs, ClassifiedDoc{
				Owner:         own,
				DocumentType:  field.Key,
				DocumentLabel: field.Label,
				ExpiryDate:    expiryDate,
				DaysLeft:      daysLeft,
				Bucket:        bucketFor(daysLeft),
			})
		}
	}
	return docs
}

// Expired returns the expired subset of docs.
func Expired(docs []ClassifiedDoc) []ClassifiedDoc {
	return filter(docs, func(d ClassifiedDoc) bool { return d.Bucket == BucketExpired })
}

// ExpiringSoon returns the critical and warning subset of docs.
func ExpiringSoon(docs []ClassifiedDoc) []ClassifiedDoc {
	return filter(docs, func(d ClassifiedDoc) bool {
		return d.Bucket == BucketCritical || d.Bucket == BucketWarning
	})
}

// Summary aggregates bucket counts across a classified set. Tracked is the
// number of documents with a usable expiry date; Valid covers everything
// tracked that is neither expired nor expiring soon.
type Summary struct {
	Tracked  int            `json:"tracked"`
	Expired  int            `json:"expired"`
	Critical int            `json:"critical"`
	Warning  int            `json:"warning"`
	Valid    int            `json:"valid"`
	ByType   map[string]int `json:"by_type"`
}

// Summarize counts docs per bucket and per document type.
func Summarize(docs []ClassifiedDoc) Summary {
	summary := Summary{ByType: make(map[string]int)}
	for _, d := range docs {
		summary.Tracked++
		summary.ByType[d.DocumentType]++
		switch d.Bucket {
		case BucketExpired:
			summary.Expired++
		case BucketCritical:
			summary.Critical++
		case BucketWarning:
			summary.Warning++
		default:
			summary.Valid++
		}
	}
	return summary
}

func bucketFor(daysLeft int) Bucket {
	switch {
	case daysLeft < 0:
		return BucketExpired
	case daysLeft <= criticalWindowDays:
		return BucketCritical
	case daysLeft <= warningWindowDays:
		return BucketWarning
	default:
		return BucketValid
	}
}

// daysUntil is ceil((expiry - today) / 24h), so a document expiring later
// today counts as zero days left, not expired.
func daysUntil(today, expiry time.Time) int {
	diff := expiry.Sub(today)
	return int(math.Ceil(diff.Hours() / 24))
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func filter(docs []ClassifiedDoc, keep func(ClassifiedDoc) bool) []ClassifiedDoc {
	out := make([]ClassifiedDoc, 0, len(docs))
	for _, d := range docs {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

// FormatDate renders an optional date for a FieldSpec value accessor.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
