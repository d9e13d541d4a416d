// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/spf13/cobra"

	"github.com/mtreilly/leitner-box/internal/config"
	"github.com/mtreilly/leitner-box/internal/trainer"
)

func newRemindCmd(cfg *config.Config, sess *trainer.Session) *cobra.Command {
	var (
		everyMin int
		start    int
		end      int
	)

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Run a practice reminder daemon",
		Long: `Periodically check how many cards are due and log a reminder.

Reminders are only emitted inside the configured waking hours; outside
that window the check is skipped. The process runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("start") {
				start = cfg.ReminderStartHour
			}
			if !cmd.Flags().Changed("end") {
				end = cfg.ReminderEndHour
			}
			if start < 0 || start > 23 || end < 0 || end > 23 || start >= end {
				return fmt.Errorf("invalid reminder window %d-%d", start, end)
			}

			scheduler := gocron.NewScheduler(time.Local)
			_, err := scheduler.Every(everyMin).Minutes().Do(func() {
				hour := time.Now().Hour()
				if hour < start || hour >= end {
					return
				}

				cards, day, err := sess.Due(-1)
				if err != nil {
					log.Printf("Reminder check failed: %v", err)
					return
				}
				if len(cards) == 0 {
					return
				}
				log.Printf("Reminder: %d card(s) due on day %d. Run: leitner-box practice due", len(cards), day)
			})
			if err != nil {
				return fmt.Errorf("schedule reminder: %w", err)
			}

			log.Printf("Reminder daemon running (every %d min, %02d:00-%02d:00)", everyMin, start, end)
			log.Println("Press Ctrl+C to stop")
			scheduler.StartBlocking()
			return nil
		},
	}

	cmd.Flags().IntVar(&everyMin, "every", 60, "Minutes between reminder checks")
	cmd.Flags().IntVar(&start, "start", 9, "First hour of the reminder window (0-23)")
	cmd.Flags().IntVar(&end, "end", 22, "Last hour of the reminder window (0-23)")

	return cmd
}
