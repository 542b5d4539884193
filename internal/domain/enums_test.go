package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForUsage_Boundaries(t *testing.T) {
	tests := []struct {
		usage int
		want  ResourceLevel
	}{
		{-5, LevelFull},
		{0, LevelFull},
		{30, LevelFull},
		{69, LevelFull},
		{70, LevelNormal},
		{84, LevelNormal},
		{85, LevelLight},
		{94, LevelLight},
		{95, LevelMinimal},
		{100, LevelMinimal},
		{130, LevelMinimal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForUsage(tt.usage), "usage %d", tt.usage)
	}
}

func TestLevelForUsage_ExactlyOneLevelPerUsage(t *testing.T) {
	prev := LevelForUsage(0)
	for u := 0; u <= 100; u++ {
		got := LevelForUsage(u)
		assert.GreaterOrEqual(t, int(got), int(prev), "level must never drop as usage grows (u=%d)", u)
		prev = got
	}
}

func TestResourceLevel_RecordsProgress(t *testing.T) {
	assert.True(t, LevelFull.RecordsProgress())
	assert.True(t, LevelNormal.RecordsProgress())
	assert.False(t, LevelLight.RecordsProgress())
	assert.False(t, LevelMinimal.RecordsProgress())
}

func TestParseResourceLevel_RoundTrip(t *testing.T) {
	for _, l := range []ResourceLevel{LevelFull, LevelNormal, LevelLight, LevelMinimal} {
		parsed, err := ParseResourceLevel(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, parsed)
	}
}

func TestParseResourceLevel_Unknown(t *testing.T) {
	_, err := ParseResourceLevel("extreme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extreme")
}

func TestMutation_Applied(t *testing.T) {
	assert.True(t, MutationChecked.Applied())
	assert.True(t, MutationAppended.Applied())
	assert.True(t, MutationPending.Applied())
	assert.False(t, MutationUnchanged.Applied())
	assert.False(t, MutationFailed.Applied())
}
