package helper

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"restaurant_manager/apperr"
	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"
)

// Owner-side transition rules. Admin overrides bypass this table.
var bookingTransitions = map[string][]string{
	constants.BOOKING_STATUS_PENDING:   {constants.BOOKING_STATUS_CONFIRMED, constants.BOOKING_STATUS_CANCELLED},
	constants.BOOKING_STATUS_CONFIRMED: {constants.BOOKING_STATUS_COMPLETED, constants.BOOKING_STATUS_CANCELLED},
}

func CanTransition(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func IsFinalized(status string) bool {
	return status == constants.BOOKING_STATUS_CANCELLED || status == constants.BOOKING_STATUS_COMPLETED
}

func IsBookingStatus(status string) bool {
	switch status {
	case constants.BOOKING_STATUS_PENDING, constants.BOOKING_STATUS_CONFIRMED,
		constants.BOOKING_STATUS_CANCELLED, constants.BOOKING_STATUS_COMPLETED:
		return true
	}
	return false
}

// SlotStartsAfter reports whether the slot's start on date falls after ref,
// so same-day bookings stay possible for slots later in the day.
func SlotStartsAfter(date time.Time, startTime string, ref time.Time) (bool, error) {
	t, err := time.Parse("15:04", startTime)
	if err != nil {
		return false, err
	}
	start := time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, ref.Location())
	return start.After(ref), nil
}

// WithinOperatingHours relies on zero-padded 24h HH:MM strings ordering
// lexically the same as chronologically.
func WithinOperatingHours(startTime, endTime, open, close string) bool {
	return startTime >= open && endTime <= close && startTime < endTime
}

// CheckSlotWindow validates a zero-padded HH:MM window against the
// configured operating hours.
func CheckSlotWindow(startTime, endTime, open, close string) error {
	if _, err := time.Parse("15:04", startTime); err != nil || len(startTime) != 5 {
		return apperr.Validation(constants.TIME_SLOT_BAD_FORMAT)
	}
	if _, err := time.Parse("15:04", endTime); err != nil || len(endTime) != 5 {
		return apperr.Validation(constants.TIME_SLOT_BAD_FORMAT)
	}
	if endTime <= startTime {
		return apperr.Validation(constants.TIME_SLOT_BAD_ORDER)
	}
	if !WithinOperatingHours(startTime, endTime, open, close) {
		return apperr.Validation(constants.TIME_SLOT_OUTSIDE_HOURS)
	}
	return nil
}

// BuildBookingItems prices the requested dishes against the dishes map,
// capturing name and unit price so later menu edits do not rewrite history.
func BuildBookingItems(inputs []model.BookingItemInput, dishes map[uint]model.Dish) ([]model.BookingItem, float64, error) {
	items := make([]model.BookingItem, 0, len(inputs))
	var total float64

	for _, in := range inputs {
		dish, ok := dishes[in.DishID]
		if !ok {
			return nil, 0, apperr.NotFound(constants.DISH_NOT_FOUND)
		}
		if !dish.IsAvailable {
			return nil, 0, apperr.Validation(constants.DISH_NOT_AVAILABLE)
		}

		line := dish.Price * float64(in.Quantity)
		items = append(items, model.BookingItem{
			DishID:     dish.ID,
			DishName:   dish.Name,
			Quantity:   in.Quantity,
			UnitPrice:  dish.Price,
			TotalPrice: line,
		})
		total += line
	}

	return items, total, nil
}

func loadDishes(tx *gorm.DB, inputs []model.BookingItemInput) (map[uint]model.Dish, error) {
	out := make(map[uint]model.Dish, len(inputs))
	if len(inputs) == 0 {
		return out, nil
	}

	ids := make([]uint, 0, len(inputs))
	for _, in := range inputs {
		ids = append(ids, in.DishID)
	}

	var dishes []model.Dish
	if err := tx.Where("id IN ?", ids).Find(&dishes).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	for _, d := range dishes {
		out[d.ID] = d
	}
	return out, nil
}

func lockTable(tx *gorm.DB, tableId uint) (*model.Table, error) {
	var table model.Table
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&table, tableId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(constants.TABLE_NOT_FOUND)
		}
		return nil, apperr.Internal(err)
	}
	return &table, nil
}

// CheckBookingTarget runs the validations shared by create and update.
func CheckBookingTarget(cfg *config.Config, table *model.Table, slot *model.TimeSlot, date time.Time, guestCount int, now time.Time) error {
	if !table.IsActive {
		return apperr.Validation(constants.TABLE_NOT_ACTIVE)
	}
	if guestCount > table.Capacity {
		return apperr.Validation(constants.GUESTS_OVER_CAPACITY)
	}
	if !slot.IsActive {
		return apperr.Validation(constants.TIME_SLOT_NOT_ACTIVE)
	}
	if !WithinOperatingHours(slot.StartTime, slot.EndTime, cfg.OpenTime, cfg.CloseTime) {
		return apperr.Validation(constants.TIME_SLOT_NOT_ACTIVE)
	}

	ok, err := SlotStartsAfter(date, slot.StartTime, now)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.Validation(constants.BOOKING_DATE_NOT_FUTURE)
	}
	return nil
}

func ensureSlotFree(tx *gorm.DB, tableId, slotId uint, date utils.CustomDate, excludeBookingId uint) error {
	var count int64
	query := tx.Model(&model.Booking{}).
		Where("table_id = ? AND time_slot_id = ? AND booking_date = ? AND status <> ?",
			tableId, slotId, date.Format("2006-01-02"), constants.BOOKING_STATUS_CANCELLED)
	if excludeBookingId != 0 {
		query = query.Where("id <> ?", excludeBookingId)
	}

	if err := query.Count(&count).Error; err != nil {
		return apperr.Internal(err)
	}
	if count > 0 {
		return apperr.Conflict(constants.TABLE_ALREADY_BOOKED)
	}
	return nil
}

// CreateBooking runs the whole reservation inside one transaction. The
// partial unique index on bookings backstops the conflict check, so a race
// between two transactions surfaces as ErrDuplicatedKey, never a double
// booking.
func CreateBooking(db *gorm.DB, cfg *config.Config, userId uint, input model.CreateBookingInput) (*model.Booking, error) {
	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	table, err := lockTable(tx, input.TableID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	slot, err := GetTimeSlotById(tx, input.TimeSlotID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := CheckBookingTarget(cfg, table, slot, input.BookingDate.Time, input.GuestCount, time.Now()); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := ensureSlotFree(tx, table.ID, slot.ID, input.BookingDate, 0); err != nil {
		tx.Rollback()
		return nil, err
	}

	dishes, err := loadDishes(tx, input.Items)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	items, total, err := BuildBookingItems(input.Items, dishes)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	booking := model.Booking{
		PublicCode:     "BKG-" + uuid.New().String()[:8],
		UserID:         userId,
		TableID:        table.ID,
		TimeSlotID:     slot.ID,
		BookingDate:    input.BookingDate,
		GuestCount:     input.GuestCount,
		Status:         constants.BOOKING_STATUS_PENDING,
		TotalAmount:    total,
		SpecialRequest: input.SpecialRequest,
	}
	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict(constants.TABLE_ALREADY_BOOKED)
		}
		return nil, apperr.Internal(err)
	}

	for i := range items {
		items[i].BookingID = booking.ID
	}
	if len(items) > 0 {
		if err := tx.Create(&items).Error; err != nil {
			tx.Rollback()
			return nil, apperr.Internal(err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperr.Internal(err)
	}

	logrus.Infof("booking %s created for user %d", booking.PublicCode, userId)

	return GetBookingByCode(db, booking.PublicCode)
}

func GetBookingByCode(db *gorm.DB, code string) (*model.Booking, error) {
	var booking model.Booking
	if err := db.
		Preload("Items").
		Preload("Table").
		Preload("TimeSlot").
		Preload("User").
		Where("public_code = ?", code).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(constants.BOOKING_NOT_FOUND)
		}
		return nil, apperr.Internal(err)
	}
	return &booking, nil
}

// UpdateBooking re-validates only what moved: availability when the
// table/slot/date target changed, capacity when guests or table changed,
// pricing when the item list was sent.
func UpdateBooking(db *gorm.DB, cfg *config.Config, userId uint, code string, input model.UpdateBookingInput) (*model.Booking, error) {
	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var booking model.Booking
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("public_code = ?", code).First(&booking).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(constants.BOOKING_NOT_FOUND)
		}
		return nil, apperr.Internal(err)
	}
	if booking.UserID != userId {
		tx.Rollback()
		return nil, apperr.NotFound(constants.BOOKING_NOT_FOUND)
	}
	if IsFinalized(booking.Status) {
		tx.Rollback()
		return nil, apperr.Validation(constants.BOOKING_FINALIZED)
	}

	tableId := booking.TableID
	if input.TableID != nil {
		tableId = *input.TableID
	}
	slotId := booking.TimeSlotID
	if input.TimeSlotID != nil {
		slotId = *input.TimeSlotID
	}
	date := booking.BookingDate
	if input.BookingDate != nil {
		date = *input.BookingDate
	}
	guestCount := booking.GuestCount
	if input.GuestCount != nil {
		guestCount = *input.GuestCount
	}

	targetChanged := tableId != booking.TableID ||
		slotId != booking.TimeSlotID ||
		!date.Time.Equal(booking.BookingDate.Time)

	if targetChanged {
		table, err := lockTable(tx, tableId)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		slot, err := GetTimeSlotById(tx, slotId)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := CheckBookingTarget(cfg, table, slot, date.Time, guestCount, time.Now()); err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := ensureSlotFree(tx, tableId, slotId, date, booking.ID); err != nil {
			tx.Rollback()
			return nil, err
		}
	} else if guestCount != booking.GuestCount {
		table, err := lockTable(tx, tableId)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		if guestCount > table.Capacity {
			tx.Rollback()
			return nil, apperr.Validation(constants.GUESTS_OVER_CAPACITY)
		}
	}

	updates := map[string]any{
		"table_id":     tableId,
		"time_slot_id": slotId,
		"booking_date": date,
		"guest_count":  guestCount,
	}
	if input.SpecialRequest != nil {
		updates["special_request"] = *input.SpecialRequest
	}

	if input.Items != nil {
		dishes, err := loadDishes(tx, *input.Items)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		items, total, err := BuildBookingItems(*input.Items, dishes)
		if err != nil {
			tx.Rollback()
			return nil, err
		}

		if err := tx.Where("booking_id = ?", booking.ID).Delete(&model.BookingItem{}).Error; err != nil {
			tx.Rollback()
			return nil, apperr.Internal(err)
		}
		for i := range items {
			items[i].BookingID = booking.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				tx.Rollback()
				return nil, apperr.Internal(err)
			}
		}
		updates["total_amount"] = total
	}

	if err := tx.Model(&booking).Updates(updates).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict(constants.TABLE_ALREADY_BOOKED)
		}
		return nil, apperr.Internal(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperr.Internal(err)
	}

	return GetBookingByCode(db, code)
}

func CancelBooking(db *gorm.DB, userId uint, code string) (*model.Booking, error) {
	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var booking model.Booking
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("public_code = ?", code).First(&booking).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(constants.BOOKING_NOT_FOUND)
		}
		return nil, apperr.Internal(err)
	}
	if booking.UserID != userId {
		tx.Rollback()
		return nil, apperr.NotFound(constants.BOOKING_NOT_FOUND)
	}
	if !CanTransition(booking.Status, constants.BOOKING_STATUS_CANCELLED) {
		tx.Rollback()
		return nil, apperr.Validation(constants.INVALID_STATUS_CHANGE)
	}

	now := time.Now()
	if err := tx.Model(&booking).Updates(map[string]any{
		"status":       constants.BOOKING_STATUS_CANCELLED,
		"cancelled_at": &now,
	}).Error; err != nil {
		tx.Rollback()
		return nil, apperr.Internal(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperr.Internal(err)
	}

	logrus.Infof("booking %s cancelled by user %d", code, userId)

	return GetBookingByCode(db, code)
}

// ChangeBookingStatus is the admin override. Any transition is allowed,
// except reviving a cancelled booking into a slot someone else took since.
func ChangeBookingStatus(db *gorm.DB, code, status string) (*model.Booking, error) {
	if !IsBookingStatus(status) {
		return nil, apperr.Validation(constants.INVALID_STATUS_CHANGE)
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var booking model.Booking
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("public_code = ?", code).First(&booking).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(constants.BOOKING_NOT_FOUND)
		}
		return nil, apperr.Internal(err)
	}

	updates := map[string]any{"status": status}
	switch {
	case status == constants.BOOKING_STATUS_CANCELLED:
		now := time.Now()
		updates["cancelled_at"] = &now
	case booking.Status == constants.BOOKING_STATUS_CANCELLED:
		if err := ensureSlotFree(tx, booking.TableID, booking.TimeSlotID, booking.BookingDate, booking.ID); err != nil {
			tx.Rollback()
			return nil, err
		}
		updates["cancelled_at"] = nil
	}

	if err := tx.Model(&booking).Updates(updates).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict(constants.TABLE_ALREADY_BOOKED)
		}
		return nil, apperr.Internal(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperr.Internal(err)
	}

	logrus.Infof("booking %s status set to %s by admin", code, status)

	return GetBookingByCode(db, code)
}
