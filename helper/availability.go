package helper

import (
	"time"

	"gorm.io/gorm"

	"restaurant_manager/apperr"
	"restaurant_manager/constants"
	"restaurant_manager/model"
)

// BuildAvailability assembles the free-slot view from already loaded rows.
// A slot is free for a table when no live booking holds that pair.
func BuildAvailability(tables []model.Table, slots []model.TimeSlot, booked []model.Booking) []model.TableAvailability {
	taken := make(map[uint]map[uint]bool, len(tables))
	for _, b := range booked {
		if taken[b.TableID] == nil {
			taken[b.TableID] = map[uint]bool{}
		}
		taken[b.TableID][b.TimeSlotID] = true
	}

	out := make([]model.TableAvailability, 0, len(tables))
	for _, t := range tables {
		free := make([]model.TimeSlot, 0, len(slots))
		for _, s := range slots {
			if !taken[t.ID][s.ID] {
				free = append(free, s)
			}
		}
		out = append(out, model.TableAvailability{Table: t, FreeSlots: free})
	}
	return out
}

// GetAvailability lists active tables with their free active slots on date.
// Passing tableId narrows the view to one table.
func GetAvailability(db *gorm.DB, date time.Time, tableId *uint) ([]model.TableAvailability, error) {
	var tables []model.Table
	query := db.Where("is_active = ?", true).Order("table_number")
	if tableId != nil {
		query = query.Where("id = ?", *tableId)
	}
	if err := query.Find(&tables).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	var slots []model.TimeSlot
	if err := db.Where("is_active = ?", true).Order("start_time").Find(&slots).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	var booked []model.Booking
	if err := db.
		Where("booking_date = ? AND status <> ?", date.Format("2006-01-02"), constants.BOOKING_STATUS_CANCELLED).
		Find(&booked).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	return BuildAvailability(tables, slots, booked), nil
}
