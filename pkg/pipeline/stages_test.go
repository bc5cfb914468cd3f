package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	for _, s := range All {
		assert.True(t, Valid(s), string(s))
	}
	assert.False(t, Valid("archived"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("Won"))
}

func TestNextStage(t *testing.T) {
	tests := []struct {
		from Stage
		want Stage
		ok   bool
	}{
		{StageNew, StageContacted, true},
		{StageContacted, StageInterested, true},
		{StageInterested, StageQualified, true},
		{StageQualified, StageNegotiation, true},
		{StageNegotiation, StageWon, true},
		{StageWon, "", false},
		{StageLost, "", false},
		{"bogus", "", false},
	}
	for _, tt := range tests {
		got, ok := NextStage(tt.from)
		assert.Equal(t, tt.ok, ok, string(tt.from))
		assert.Equal(t, tt.want, got, string(tt.from))
	}
}

func TestAgeInDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		want      int
	}{
		{"same instant", now, 0},
		{"under a day", now.Add(-23*time.Hour - 59*time.Minute), 0},
		{"exactly one day", now.Add(-24 * time.Hour), 1},
		{"ten and a half days", now.Add(-252 * time.Hour), 10},
		{"future creation clamps to zero", now.Add(48 * time.Hour), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeInDays(tt.createdAt, now))
		})
	}
}

func TestUrgent(t *testing.T) {
	tests := []struct {
		stage Stage
		age   int
		want  bool
	}{
		{StageNew, 3, false},
		{StageNew, 4, true},
		{StageContacted, 7, false},
		{StageContacted, 8, true},
		{StageQualified, 14, false},
		{StageQualified, 15, true},
		{StageNegotiation, 14, false},
		{StageNegotiation, 15, true},
		// interested and the terminal stages never flag
		{StageInterested, 400, false},
		{StageWon, 400, false},
		{StageLost, 400, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Urgent(tt.stage, tt.age), "%s at %dd", tt.stage, tt.age)
	}
}

func TestOrderedExcludesLost(t *testing.T) {
	assert.Len(t, Ordered, 6)
	assert.NotContains(t, Ordered, StageLost)
	assert.Equal(t, StageWon, Ordered[len(Ordered)-1])
	assert.Len(t, All, 7)
	assert.Contains(t, All, StageLost)
}
