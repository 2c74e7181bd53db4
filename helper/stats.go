package helper

import (
	"time"

	"gorm.io/gorm"

	"restaurant_manager/apperr"
	"restaurant_manager/model"
)

type BookingsPerDay struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type BookingStats struct {
	TotalBookings int64            `json:"totalBookings"`
	ByStatus      map[string]int64 `json:"byStatus"`
	PerDay        []BookingsPerDay `json:"perDay"`
	TotalCovers   int64            `json:"totalCovers"`
	Revenue       float64          `json:"revenue"`
}

// GetBookingStats aggregates bookings whose date falls in [from, to].
// Covers skip cancelled rows; revenue counts confirmed and completed only.
func GetBookingStats(db *gorm.DB, from, to time.Time) (*BookingStats, error) {
	f := from.Format("2006-01-02")
	t := to.Format("2006-01-02")

	stats := &BookingStats{ByStatus: map[string]int64{}}

	if err := db.Model(&model.Booking{}).
		Where("booking_date BETWEEN ? AND ?", f, t).
		Count(&stats.TotalBookings).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	var statusRows []struct {
		Status string
		Count  int64
	}
	if err := db.Raw(`
		SELECT status, COUNT(*) AS count
		FROM bookings
		WHERE booking_date BETWEEN ? AND ?
		GROUP BY status`, f, t).Scan(&statusRows).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	for _, row := range statusRows {
		stats.ByStatus[row.Status] = row.Count
	}

	if err := db.Raw(`
		SELECT booking_date::text AS date, COUNT(*) AS count
		FROM bookings
		WHERE booking_date BETWEEN ? AND ?
		GROUP BY booking_date
		ORDER BY booking_date`, f, t).Scan(&stats.PerDay).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	if err := db.Raw(`
		SELECT COALESCE(SUM(guest_count), 0)
		FROM bookings
		WHERE booking_date BETWEEN ? AND ? AND status <> 'cancelled'`, f, t).
		Scan(&stats.TotalCovers).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	if err := db.Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM bookings
		WHERE booking_date BETWEEN ? AND ? AND status IN ('confirmed', 'completed')`, f, t).
		Scan(&stats.Revenue).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	return stats, nil
}
