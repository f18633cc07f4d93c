package models

// JournalType identifies which journaling surface an entry was written in.
// Immutable after creation.
type JournalType string

const (
	TypeQuick      JournalType = "quick"
	TypePersonal   JournalType = "personal"
	TypePhoto      JournalType = "photo"
	TypeGratitude  JournalType = "gratitude"
	TypeGoals      JournalType = "goals"
	TypeReflection JournalType = "reflection"
	TypeDreams     JournalType = "dreams"
	TypeTravel     JournalType = "travel"
)

var journalTypes = map[JournalType]bool{
	TypeQuick:      true,
	TypePersonal:   true,
	TypePhoto:      true,
	TypeGratitude:  true,
	TypeGoals:      true,
	TypeReflection: true,
	TypeDreams:     true,
	TypeTravel:     true,
}

// ParseJournalType decodes a persisted journal type string.
func ParseJournalType(s string) (JournalType, error) {
	jt := JournalType(s)
	if !journalTypes[jt] {
		return "", &DataIntegrityError{Field: "journal_type", Value: s}
	}
	return jt, nil
}

type MoodTag string

const (
	MoodHappy    MoodTag = "happy"
	MoodGrateful MoodTag = "grateful"
	MoodExcited  MoodTag = "excited"
	MoodNeutral  MoodTag = "neutral"
	MoodSad      MoodTag = "sad"
	MoodAnxious  MoodTag = "anxious"
	MoodStressed MoodTag = "stressed"
	MoodAngry    MoodTag = "angry"
)

var moodScores = map[MoodTag]int{
	MoodHappy:    5,
	MoodExcited:  4,
	MoodGrateful: 4,
	MoodNeutral:  3,
	MoodAnxious:  2,
	MoodStressed: 2,
	MoodSad:      1,
	MoodAngry:    1,
}

// ParseMoodTag decodes a persisted mood tag string.
func ParseMoodTag(s string) (MoodTag, error) {
	mt := MoodTag(s)
	if _, ok := moodScores[mt]; !ok {
		return "", &DataIntegrityError{Field: "mood_tag", Value: s}
	}
	return mt, nil
}

// Score maps a mood to a 1-5 sentiment value for analytics.
func (m MoodTag) Score() int {
	return moodScores[m]
}

type ThemeTag string

const (
	ThemePersonal      ThemeTag = "personal"
	ThemeWork          ThemeTag = "work"
	ThemeRelationships ThemeTag = "relationships"
	ThemeFamily        ThemeTag = "family"
	ThemeHealth        ThemeTag = "health"
	ThemeGoals         ThemeTag = "goals"
	ThemeHobbies       ThemeTag = "hobbies"
	ThemeSchool        ThemeTag = "school"
)

var themeTags = map[ThemeTag]bool{
	ThemePersonal:      true,
	ThemeWork:          true,
	ThemeRelationships: true,
	ThemeFamily:        true,
	ThemeHealth:        true,
	ThemeGoals:         true,
	ThemeHobbies:       true,
	ThemeSchool:        true,
}

// ParseThemeTag decodes a persisted theme tag string.
func ParseThemeTag(s string) (ThemeTag, error) {
	tt := ThemeTag(s)
	if !themeTags[tt] {
		return "", &DataIntegrityError{Field: "theme_tag", Value: s}
	}
	return tt, nil
}
