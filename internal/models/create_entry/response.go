package models

import journalmodels "io.remyapps.remy/internal/models/journal"

type CreateEntryResponse struct {
	Entry  journalmodels.Entry        `json:"entry"`
	Streak journalmodels.StreakRecord `json:"streak"`
}
