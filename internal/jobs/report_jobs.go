package jobs

import (
	"context"
	"time"

	"suncrest-hotel-backend/internal/logger"
)

// yesterdayRange returns the previous UTC calendar day as a half-open
// interval.
func yesterdayRange() (time.Time, time.Time) {
	now := time.Now().UTC()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return to.Add(-24 * time.Hour), to
}

// SendDailySummary emails yesterday's booking report to the hotel inbox.
func (jr *JobRunner) SendDailySummary() {
	jr.runWithRecovery("SendDailySummary", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		from, to := yesterdayRange()
		report, err := jr.services.Admin.GetBookingReport(ctx, from, to)
		if err != nil {
			logger.Error("failed to build daily report", "error", err)
			return
		}

		inbox := jr.config.Email.HotelInbox
		if inbox == "" {
			logger.Warn("no hotel inbox configured, skipping daily summary email")
			return
		}
		if err := jr.services.Email.SendDailySummary(ctx, inbox, report); err != nil {
			logger.Error("failed to send daily summary", "error", err)
		}
	})
}

// RecordAnalyticsSnapshot logs yesterday's aggregates so dashboards scraping
// the log stream get a stable daily datapoint.
func (jr *JobRunner) RecordAnalyticsSnapshot() {
	jr.runWithRecovery("RecordAnalyticsSnapshot", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		from, to := yesterdayRange()
		report, err := jr.services.Admin.GetBookingReport(ctx, from, to)
		if err != nil {
			logger.Error("failed to build analytics snapshot", "error", err)
			return
		}

		logger.Info("daily analytics snapshot",
			"date", from.Format("2006-01-02"),
			"bookings", report.TotalBookings,
			"revenue_cents", report.TotalRevenueCents,
			"pending", report.PendingCount,
			"failed", report.FailedCount,
		)
		for _, s := range report.ByRoomType {
			logger.Info("room type snapshot",
				"date", from.Format("2006-01-02"),
				"room_type", s.RoomTypeKey,
				"bookings", s.Bookings,
				"units", s.Units,
				"revenue_cents", s.RevenueCents,
			)
		}
	})
}
