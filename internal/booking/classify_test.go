package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MjedAl/Fyyur/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		want  Status
	}{
		{name: "one day before", start: refTime.Add(-24 * time.Hour), want: Past},
		{name: "exactly at reference", start: refTime, want: Past},
		{name: "one nanosecond after", start: refTime.Add(time.Nanosecond), want: Upcoming},
		{name: "one day after", start: refTime.Add(24 * time.Hour), want: Upcoming},
		{name: "same instant in another zone", start: refTime.In(time.FixedZone("CST", -6*3600)), want: Past},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(&model.Show{StartTime: tt.start}, refTime))
		})
	}
}

func TestClassifyReclassifiesAsReferenceMoves(t *testing.T) {
	show := &model.Show{StartTime: refTime.Add(time.Hour)}
	assert.Equal(t, Upcoming, Classify(show, refTime))
	assert.Equal(t, Past, Classify(show, refTime.Add(time.Hour)))
	assert.Equal(t, Past, Classify(show, refTime.Add(2*time.Hour)))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "past", Past.String())
	assert.Equal(t, "upcoming", Upcoming.String())
}
