package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJournalType(t *testing.T) {
	jt, err := ParseJournalType("gratitude")
	require.NoError(t, err)
	assert.Equal(t, TypeGratitude, jt)

	_, err = ParseJournalType("bullet")
	require.Error(t, err)
	var integrity *DataIntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Equal(t, "journal_type", integrity.Field)
	assert.Equal(t, "bullet", integrity.Value)
}

func TestParseMoodTag(t *testing.T) {
	mt, err := ParseMoodTag("anxious")
	require.NoError(t, err)
	assert.Equal(t, MoodAnxious, mt)

	_, err = ParseMoodTag("ecstatic")
	var integrity *DataIntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Equal(t, "mood_tag", integrity.Field)
}

func TestParseThemeTag(t *testing.T) {
	tt, err := ParseThemeTag("health")
	require.NoError(t, err)
	assert.Equal(t, ThemeHealth, tt)

	_, err = ParseThemeTag("finance")
	var integrity *DataIntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Equal(t, "theme_tag", integrity.Field)
}

func TestMoodScores(t *testing.T) {
	assert.Equal(t, 5, MoodHappy.Score())
	assert.Equal(t, 3, MoodNeutral.Score())
	assert.Equal(t, 1, MoodAngry.Score())
	assert.Greater(t, MoodGrateful.Score(), MoodSad.Score())
}
