package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/OJ217/music-lab-api/models"
)

func TestSeriesLength(t *testing.T) {
	assert.Equal(t, 7, seriesLength(date(2024, time.May, 3, 12)))
	assert.Equal(t, 7, seriesLength(date(2024, time.May, 7, 12)))
	assert.Equal(t, 8, seriesLength(date(2024, time.May, 8, 12)))
	assert.Equal(t, 31, seriesLength(date(2024, time.May, 31, 12)))
}

func TestFillActivitySeries(t *testing.T) {
	now := date(2024, time.May, 16, 12)

	// Sessions on day 2 and day 5 of a 7-day window
	raw := []ActivityBucket{
		{Date: "2024-05-15", Activity: 20},
		{Date: "2024-05-12", Activity: 10},
	}

	series := fillActivitySeries(raw, now, 7)

	assert.Len(t, series, 7)
	assert.Equal(t, "2024-05-16", series[0].Date)
	assert.Equal(t, "2024-05-10", series[6].Date)

	var zeroDays int
	for _, bucket := range series {
		switch bucket.Date {
		case "2024-05-15":
			assert.Equal(t, 20, bucket.Activity)
		case "2024-05-12":
			assert.Equal(t, 10, bucket.Activity)
		default:
			assert.Zero(t, bucket.Activity)
			zeroDays++
		}
	}
	assert.Equal(t, 5, zeroDays)
}

func TestFillActivitySeriesEmptyStaysEmpty(t *testing.T) {
	series := fillActivitySeries(nil, date(2024, time.May, 16, 12), 7)
	assert.Empty(t, series)
}

func TestFillActivitySeriesFullInputUnchanged(t *testing.T) {
	now := date(2024, time.May, 16, 12)
	raw := make([]ActivityBucket, 7)
	for i := range raw {
		raw[i] = ActivityBucket{Date: startOfDay(now).AddDate(0, 0, -i).Format(dateBucketFormat), Activity: i + 1}
	}

	series := fillActivitySeries(raw, now, 7)
	assert.Equal(t, raw, series)
}

func TestFillProgressSeries(t *testing.T) {
	now := date(2024, time.May, 16, 12)
	raw := []ProgressBucket{
		{Date: "2024-05-14", Correct: 8, Activity: 10},
	}

	series := fillProgressSeries(raw, now, 7)

	assert.Len(t, series, 7)
	for _, bucket := range series {
		if bucket.Date == "2024-05-14" {
			assert.Equal(t, 8, bucket.Correct)
			assert.Equal(t, 10, bucket.Activity)
		} else {
			assert.Zero(t, bucket.Correct)
			assert.Zero(t, bucket.Activity)
		}
	}
}

func TestFillTypeSummary(t *testing.T) {
	raw := []TypeBucket{
		{Type: models.ModeIdentification, Correct: 12, Activity: 15},
	}

	summary := fillTypeSummary(raw)

	// One entry per exercise type, in declaration order
	assert.Len(t, summary, len(models.ExerciseTypes))
	assert.Equal(t, models.IntervalIdentification, summary[0].Type)
	assert.Equal(t, models.ChordIdentification, summary[1].Type)
	assert.Equal(t, models.ModeIdentification, summary[2].Type)

	assert.Zero(t, summary[0].Correct)
	assert.Zero(t, summary[0].Score)
	assert.Zero(t, summary[1].Activity)
	assert.Equal(t, 12, summary[2].Correct)
	assert.Equal(t, 15, summary[2].Activity)
	assert.Equal(t, 80.0, summary[2].Score)
}

func TestFillTypeSummaryEmpty(t *testing.T) {
	summary := fillTypeSummary(nil)
	assert.Len(t, summary, len(models.ExerciseTypes))
	for _, bucket := range summary {
		assert.Zero(t, bucket.Correct)
		assert.Zero(t, bucket.Activity)
		assert.Zero(t, bucket.Score)
	}
}
