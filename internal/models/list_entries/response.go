package models

import journalmodels "io.remyapps.remy/internal/models/journal"

type ListEntriesResponse struct {
	Entries []journalmodels.Entry `json:"entries"`
	Total   int                   `json:"total"`
}
