package models

import "time"

type PushToken struct {
	UserID    string    `json:"userId"`
	FCMToken  string    `json:"fcmToken" binding:"required"`
	Platform  string    `json:"platform" binding:"required"`
	Timezone  string    `json:"timezone"`
	UpdatedAt time.Time `json:"updatedAt"`
}
