// Package jobs holds the scheduled background work.
package jobs

import (
	"context"
	"fmt"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StreakReminder nudges users whose streak is one missed day from breaking.
// It only reads streak rows; streak state is owned by the activity service.
type StreakReminder struct {
	cronManager *cron.Cron
	db          *pgxpool.Pool
	fcmClient   *messaging.Client
	logger      *zap.SugaredLogger
}

func NewStreakReminder(firebaseApp *firebase.App, db *pgxpool.Pool, logger *zap.SugaredLogger) *StreakReminder {
	fcmClient, err := firebaseApp.Messaging(context.Background())
	if err != nil {
		logger.Warnw("FCM client unavailable, streak reminders disabled", "error", err)
	}

	return &StreakReminder{
		cronManager: cron.New(cron.WithLocation(time.UTC)),
		db:          db,
		fcmClient:   fcmClient,
		logger:      logger,
	}
}

// Start schedules the nightly sweep. 18:00 UTC catches most timezones in
// their evening.
func (r *StreakReminder) Start() error {
	if _, err := r.cronManager.AddFunc("0 18 * * *", r.runSweep); err != nil {
		return fmt.Errorf("schedule streak reminder: %w", err)
	}
	r.cronManager.Start()
	return nil
}

func (r *StreakReminder) Stop() {
	r.cronManager.Stop()
}

func (r *StreakReminder) runSweep() {
	if r.fcmClient == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Users who journaled yesterday but not yet today are at risk.
	query := `
		SELECT s.user_uid, s.current_streak, p.fcm_token
		FROM streaks s
		JOIN push_tokens p ON p.user_uid = s.user_uid AND p.active
		WHERE s.last_entry_date = CURRENT_DATE - 1
		  AND s.current_streak > 0
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Errorw("streak reminder query failed", "error", err)
		return
	}
	defer rows.Close()

	sent := 0
	for rows.Next() {
		var userUID, fcmToken string
		var currentStreak int
		if err := rows.Scan(&userUID, &currentStreak, &fcmToken); err != nil {
			r.logger.Errorw("streak reminder scan failed", "error", err)
			continue
		}

		if err := r.sendReminder(ctx, fcmToken, currentStreak); err != nil {
			r.logger.Warnw("failed to send streak reminder",
				"user_uid", userUID,
				"error", err,
			)
			continue
		}
		sent++
	}
	if err := rows.Err(); err != nil {
		r.logger.Errorw("streak reminder iteration failed", "error", err)
	}

	r.logger.Infow("streak reminder sweep complete", "sent", sent)
}

func (r *StreakReminder) sendReminder(ctx context.Context, fcmToken string, currentStreak int) error {
	body := "Write a quick entry today to keep your streak going."
	if currentStreak > 1 {
		body = fmt.Sprintf("Write a quick entry today to keep your %d-day streak alive.", currentStreak)
	}

	_, err := r.fcmClient.Send(ctx, &messaging.Message{
		Token: fcmToken,
		Notification: &messaging.Notification{
			Title: "Don't break your streak",
			Body:  body,
		},
	})
	return err
}
