package helper

import (
	"errors"
	"testing"
	"time"

	"restaurant_manager/apperr"
	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{constants.BOOKING_STATUS_PENDING, constants.BOOKING_STATUS_CONFIRMED, true},
		{constants.BOOKING_STATUS_PENDING, constants.BOOKING_STATUS_CANCELLED, true},
		{constants.BOOKING_STATUS_PENDING, constants.BOOKING_STATUS_COMPLETED, false},
		{constants.BOOKING_STATUS_CONFIRMED, constants.BOOKING_STATUS_COMPLETED, true},
		{constants.BOOKING_STATUS_CONFIRMED, constants.BOOKING_STATUS_CANCELLED, true},
		{constants.BOOKING_STATUS_CONFIRMED, constants.BOOKING_STATUS_PENDING, false},
		{constants.BOOKING_STATUS_CANCELLED, constants.BOOKING_STATUS_CONFIRMED, false},
		{constants.BOOKING_STATUS_COMPLETED, constants.BOOKING_STATUS_CANCELLED, false},
		{"unknown", constants.BOOKING_STATUS_CONFIRMED, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestIsFinalized(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{constants.BOOKING_STATUS_PENDING, false},
		{constants.BOOKING_STATUS_CONFIRMED, false},
		{constants.BOOKING_STATUS_CANCELLED, true},
		{constants.BOOKING_STATUS_COMPLETED, true},
	}

	for _, tt := range tests {
		if got := IsFinalized(tt.status); got != tt.want {
			t.Errorf("IsFinalized(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestIsBookingStatus(t *testing.T) {
	for _, status := range []string{
		constants.BOOKING_STATUS_PENDING,
		constants.BOOKING_STATUS_CONFIRMED,
		constants.BOOKING_STATUS_CANCELLED,
		constants.BOOKING_STATUS_COMPLETED,
	} {
		if !IsBookingStatus(status) {
			t.Errorf("IsBookingStatus(%q) = false, want true", status)
		}
	}

	for _, status := range []string{"", "unknown", "PENDING"} {
		if IsBookingStatus(status) {
			t.Errorf("IsBookingStatus(%q) = true, want false", status)
		}
	}
}

func TestSlotStartsAfter(t *testing.T) {
	ref := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		date      time.Time
		startTime string
		want      bool
		wantErr   bool
	}{
		{"later same day", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), "19:00", true, false},
		{"same instant", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), "18:00", false, false},
		{"earlier same day", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), "11:00", false, false},
		{"next day morning", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), "11:00", true, false},
		{"previous day", time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), "19:00", false, false},
		{"unparseable time", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), "25:00", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SlotStartsAfter(tt.date, tt.startTime, ref)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SlotStartsAfter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SlotStartsAfter(%v, %q) = %v, want %v", tt.date.Format("2006-01-02"), tt.startTime, got, tt.want)
			}
		})
	}
}

func TestWithinOperatingHours(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"inside hours", "11:00", "12:30", true},
		{"exact bounds", "10:00", "23:00", true},
		{"starts before open", "09:30", "11:00", false},
		{"ends after close", "22:00", "23:30", false},
		{"start equals end", "12:00", "12:00", false},
		{"inverted window", "14:00", "12:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinOperatingHours(tt.start, tt.end, "10:00", "23:00"); got != tt.want {
				t.Errorf("WithinOperatingHours(%q, %q) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestCheckSlotWindow(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr string
	}{
		{"valid window", "11:00", "12:30", ""},
		{"missing zero padding", "9:00", "10:30", constants.TIME_SLOT_BAD_FORMAT},
		{"not a time", "aa:bb", "12:00", constants.TIME_SLOT_BAD_FORMAT},
		{"end before start", "14:00", "12:00", constants.TIME_SLOT_BAD_ORDER},
		{"end equals start", "14:00", "14:00", constants.TIME_SLOT_BAD_ORDER},
		{"outside operating hours", "08:00", "09:30", constants.TIME_SLOT_OUTSIDE_HOURS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSlotWindow(tt.start, tt.end, "10:00", "23:00")
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("CheckSlotWindow() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("CheckSlotWindow() error = nil, want %q", tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("CheckSlotWindow() error = %q, want %q", err.Error(), tt.wantErr)
			}
			if apperr.From(err).Kind != apperr.KindValidation {
				t.Errorf("CheckSlotWindow() kind = %v, want validation", apperr.From(err).Kind)
			}
		})
	}
}

func TestCheckBookingTarget(t *testing.T) {
	cfg := &config.Config{OpenTime: "10:00", CloseTime: "23:00"}
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	activeTable := &model.Table{DTO: model.DTO{ID: 1}, TableNumber: 1, Capacity: 4, IsActive: true}
	activeSlot := &model.TimeSlot{DTO: model.DTO{ID: 10}, StartTime: "19:00", EndTime: "20:30", IsActive: true}

	tests := []struct {
		name       string
		table      *model.Table
		slot       *model.TimeSlot
		date       time.Time
		guestCount int
		wantErr    string
	}{
		{"valid target", activeTable, activeSlot, date, 4, ""},
		{
			"inactive table",
			&model.Table{DTO: model.DTO{ID: 2}, Capacity: 4, IsActive: false},
			activeSlot, date, 2,
			constants.TABLE_NOT_ACTIVE,
		},
		{"over capacity", activeTable, activeSlot, date, 5, constants.GUESTS_OVER_CAPACITY},
		{
			"inactive slot",
			activeTable,
			&model.TimeSlot{DTO: model.DTO{ID: 11}, StartTime: "19:00", EndTime: "20:30", IsActive: false},
			date, 2,
			constants.TIME_SLOT_NOT_ACTIVE,
		},
		{
			"slot outside operating hours",
			activeTable,
			&model.TimeSlot{DTO: model.DTO{ID: 12}, StartTime: "08:00", EndTime: "09:30", IsActive: true},
			date, 2,
			constants.TIME_SLOT_NOT_ACTIVE,
		},
		{
			"start not in the future",
			activeTable, activeSlot,
			time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), 2,
			constants.BOOKING_DATE_NOT_FUTURE,
		},
		{
			"same day later slot is bookable",
			activeTable, activeSlot,
			time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), 2,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBookingTarget(cfg, tt.table, tt.slot, tt.date, tt.guestCount, now)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("CheckBookingTarget() error = %v, want nil", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("CheckBookingTarget() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestBuildBookingItems(t *testing.T) {
	dishes := map[uint]model.Dish{
		1: {DTO: model.DTO{ID: 1}, Name: "Bruschetta", Price: 8.50, IsAvailable: true},
		2: {DTO: model.DTO{ID: 2}, Name: "Ribeye Steak", Price: 70.00, IsAvailable: true},
		3: {DTO: model.DTO{ID: 3}, Name: "Baklava", Price: 10.50, IsAvailable: false},
	}

	t.Run("prices and totals", func(t *testing.T) {
		inputs := []model.BookingItemInput{
			{DishID: 1, Quantity: 2},
			{DishID: 2, Quantity: 1},
		}

		items, total, err := BuildBookingItems(inputs, dishes)
		if err != nil {
			t.Fatalf("BuildBookingItems() error = %v", err)
		}
		if total != 87.00 {
			t.Errorf("BuildBookingItems() total = %v, want 87.00", total)
		}
		if len(items) != 2 {
			t.Fatalf("BuildBookingItems() returned %d items, want 2", len(items))
		}
		if items[0].DishName != "Bruschetta" || items[0].UnitPrice != 8.50 || items[0].TotalPrice != 17.00 {
			t.Errorf("BuildBookingItems() first line = %+v, want Bruschetta 2x8.50=17.00", items[0])
		}
		if items[1].Quantity != 1 || items[1].TotalPrice != 70.00 {
			t.Errorf("BuildBookingItems() second line = %+v, want 1x70.00", items[1])
		}
	})

	t.Run("empty items", func(t *testing.T) {
		items, total, err := BuildBookingItems(nil, dishes)
		if err != nil {
			t.Fatalf("BuildBookingItems() error = %v", err)
		}
		if len(items) != 0 || total != 0 {
			t.Errorf("BuildBookingItems() = %d items, total %v, want none", len(items), total)
		}
	})

	t.Run("unknown dish", func(t *testing.T) {
		_, _, err := BuildBookingItems([]model.BookingItemInput{{DishID: 99, Quantity: 1}}, dishes)
		if err == nil || err.Error() != constants.DISH_NOT_FOUND {
			t.Fatalf("BuildBookingItems() error = %v, want %q", err, constants.DISH_NOT_FOUND)
		}
		var appErr *apperr.Error
		if !errors.As(err, &appErr) {
			t.Fatalf("BuildBookingItems() error type = %T, want *apperr.Error", err)
		}
		if appErr.Kind != apperr.KindNotFound {
			t.Errorf("BuildBookingItems() kind = %v, want not found", appErr.Kind)
		}
	})

	t.Run("unavailable dish", func(t *testing.T) {
		_, _, err := BuildBookingItems([]model.BookingItemInput{{DishID: 3, Quantity: 1}}, dishes)
		if err == nil || err.Error() != constants.DISH_NOT_AVAILABLE {
			t.Fatalf("BuildBookingItems() error = %v, want %q", err, constants.DISH_NOT_AVAILABLE)
		}
		if apperr.From(err).Kind != apperr.KindValidation {
			t.Errorf("BuildBookingItems() kind = %v, want validation", apperr.From(err).Kind)
		}
	})
}
