package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	models "io.remyapps.remy/internal/models/journal"
)

// SeedMockData loads a small fixture set for running the API without a
// database: three recent entries and a 3/7 streak.
func SeedMockData(entries *EntryStore, streaks *StreakStore, userID string) {
	ctx := context.Background()
	now := time.Now()

	mood := func(m models.MoodTag) *models.MoodTag { return &m }
	theme := func(t models.ThemeTag) *models.ThemeTag { return &t }

	fixtures := []models.Entry{
		{
			ID:          uuid.New().String(),
			Content:     "Today was a great day! I finished my project and felt really accomplished.",
			JournalType: models.TypeQuick,
			MoodTag:     mood(models.MoodHappy),
			ThemeTag:    theme(models.ThemeWork),
			Timestamp:   now,
		},
		{
			ID:          uuid.New().String(),
			Content:     "Feeling grateful for my family and friends who always support me.",
			JournalType: models.TypeGratitude,
			MoodTag:     mood(models.MoodGrateful),
			ThemeTag:    theme(models.ThemeFamily),
			Timestamp:   now.AddDate(0, 0, -1),
		},
		{
			ID:          uuid.New().String(),
			Content:     "Had a tough day at work, feeling a bit stressed about upcoming deadlines.",
			JournalType: models.TypePersonal,
			MoodTag:     mood(models.MoodStressed),
			ThemeTag:    theme(models.ThemeWork),
			Timestamp:   now.AddDate(0, 0, -2),
		},
	}
	for i := range fixtures {
		fixtures[i].CreatedAt = fixtures[i].Timestamp
		fixtures[i].UpdatedAt = fixtures[i].Timestamp
		_ = entries.Insert(ctx, userID, &fixtures[i])
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	_ = streaks.Create(ctx, userID, models.StreakRecord{
		CurrentStreak: 3,
		LongestStreak: 7,
		LastEntryDate: &today,
	})
}
