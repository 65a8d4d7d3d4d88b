package service

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"
)

// StartOverdueScheduler flips past-due PENDING invoices to OVERDUE at start-up
// and then every day at local midnight, until ctx is cancelled.
func StartOverdueScheduler(ctx context.Context, db *gorm.DB) {
	go func() {
		for {
			now := time.Now()
			if n, err := MarkOverdueInvoices(ctx, db, now); err != nil {
				log.Printf("[ERROR] overdue invoices: %v", err)
			} else if n > 0 {
				log.Printf("[INFO] %d invoices marked overdue", n)
			}

			select {
			case <-ctx.Done():
				return
			case <-time.After(untilNextDay(now)):
			}
		}
	}()
}

func untilNextDay(now time.Time) time.Duration {
	y, m, d := now.Date()
	next := time.Date(y, m, d+1, 0, 0, 5, 0, now.Location())
	return next.Sub(now)
}
