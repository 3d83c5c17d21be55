package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPerson struct {
	Name     string
	QID      string
	Passport string
}

var personFields = []FieldSpec[testPerson]{
	{Key: "qid", Label: "QID", Value: func(p testPerson) string { return p.QID }},
	{Key: "passport", Label: "Passport", Value: func(p testPerson) string { return p.Passport }},
}

func personOwner(p testPerson) Owner {
	return Owner{ID: p.Name, Name: p.Name, Kind: OwnerEmployee}
}

func testToday() time.Time {
	return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
}

func TestClassify_CriticalWithinSevenDays(t *testing.T) {
	people := []testPerson{{Name: "Ahmed", QID: "2024-06-03"}}

	docs := Classify(testToday(), people, personOwner, personFields)

	require.Len(t, docs, 1)
	assert.Equal(t, 2, docs[0].DaysLeft)
	assert.Equal(t, BucketCritical, docs[0].Bucket)
	assert.Equal(t, "qid", docs[0].DocumentType)
	assert.Equal(t, "Ahmed", docs[0].Owner.Name)
}

func TestClassify_ExpiredWithOverdueMagnitude(t *testing.T) {
	people := []testPerson{{Name: "Ahmed", Passport: "2024-05-20"}}

	docs := Classify(testToday(), people, personOwner, personFields)

	require.Len(t, docs, 1)
	assert.Equal(t, BucketExpired, docs[0].Bucket)
	assert.Equal(t, 12, docs[0].DaysOverdue())
	assert.Equal(t, -12, docs[0].DaysLeft)
}

func TestClassify_BucketBoundaries(t *testing.T) {
	cases := []struct {
		expiry string
		want   Bucket
	}{
		{"2024-05-31", BucketExpired},  // -1
		{"2024-06-01", BucketCritical}, // expires today, not expired
		{"2024-06-08", BucketCritical}, // 7
		{"2024-06-09", BucketWarning},  // 8
		{"2024-07-01", BucketWarning},  // 30
		{"2024-07-02", BucketValid},    // 31
	}
	for _, c := range cases {
		docs := Classify(testToday(), []testPerson{{Name: "x", QID: c.expiry}}, personOwner, personFields)
		require.Len(t, docs, 1, "expiry %s", c.expiry)
		assert.Equal(t, c.want, docs[0].Bucket, "expiry %s", c.expiry)
	}
}

func TestClassify_MalformedDatesAreSkipped(t *testing.T) {
	people := []testPerson{
		{Name: "bad", QID: "not-a-date", Passport: "31/12/2024"},
		{Name: "empty"},
		{Name: "ok", QID: "2024-06-02"},
	}

	docs := Classify(testToday(), people, personOwner, personFields)

	require.Len(t, docs, 1)
	assert.Equal(t, "ok", docs[0].Owner.Name)
}

func TestSeverity_ThreeWayThresholds(t *testing.T) {
	cases := []struct {
		daysLeft int
		want     string
	}{
		{0, "critical"},
		{7, "critical"},
		{8, "warning"},
		{15, "warning"},
		{16, "expiring"},
		{30, "expiring"},
	}
	for _, c := range cases {
		doc := ClassifiedDoc{DaysLeft: c.daysLeft}
		assert.Equal(t, c.want, doc.Severity(), "daysLeft %d", c.daysLeft)
	}
}

func TestPartitionAndSummarize(t *testing.T) {
	people := []testPerson{
		{Name: "a", QID: "2024-05-01", Passport: "2024-06-05"}, // expired + critical
		{Name: "b", QID: "2024-06-20"},                         // warning
		{Name: "c", QID: "2025-06-01", Passport: "broken"},     // valid + skipped
	}

	docs := Classify(testToday(), people, personOwner, personFields)
	require.Len(t, docs, 4)

	expired := Expired(docs)
	require.Len(t, expired, 1)
	assert.Equal(t, "a", expired[0].Owner.Name)

	soon := ExpiringSoon(docs)
	require.Len(t, soon, 2)

	summary := Summarize(docs)
	assert.Equal(t, 4, summary.Tracked)
	assert.Equal(t, 1, summary.Expired)
	assert.Equal(t, 1, summary.Critical)
	assert.Equal(t, 1, summary.Warning)
	assert.Equal(t, 1, summary.Valid)
	assert.Equal(t, 3, summary.ByType["qid"])
	assert.Equal(t, 1, summary.ByType["passport"])
}
