package helper

import (
	"testing"

	"restaurant_manager/model"
)

func TestBuildAvailability(t *testing.T) {
	tables := []model.Table{
		{DTO: model.DTO{ID: 1}, TableNumber: 1, Capacity: 2},
		{DTO: model.DTO{ID: 2}, TableNumber: 2, Capacity: 4},
	}
	slots := []model.TimeSlot{
		{DTO: model.DTO{ID: 10}, StartTime: "11:00", EndTime: "12:30"},
		{DTO: model.DTO{ID: 11}, StartTime: "19:00", EndTime: "20:30"},
	}
	booked := []model.Booking{
		{TableID: 1, TimeSlotID: 10},
	}

	out := BuildAvailability(tables, slots, booked)
	if len(out) != 2 {
		t.Fatalf("BuildAvailability() returned %d tables, want 2", len(out))
	}

	if len(out[0].FreeSlots) != 1 || out[0].FreeSlots[0].ID != 11 {
		t.Errorf("table 1 free slots = %+v, want only slot 11", out[0].FreeSlots)
	}
	if len(out[1].FreeSlots) != 2 {
		t.Errorf("table 2 free slots = %d, want 2", len(out[1].FreeSlots))
	}
}

func TestBuildAvailabilityFullyBooked(t *testing.T) {
	tables := []model.Table{{DTO: model.DTO{ID: 1}}}
	slots := []model.TimeSlot{
		{DTO: model.DTO{ID: 10}},
		{DTO: model.DTO{ID: 11}},
	}
	booked := []model.Booking{
		{TableID: 1, TimeSlotID: 10},
		{TableID: 1, TimeSlotID: 11},
	}

	out := BuildAvailability(tables, slots, booked)
	if len(out) != 1 {
		t.Fatalf("BuildAvailability() returned %d tables, want 1", len(out))
	}
	if len(out[0].FreeSlots) != 0 {
		t.Errorf("fully booked table still shows %d free slots", len(out[0].FreeSlots))
	}
}

func TestBuildAvailabilityNoBookings(t *testing.T) {
	tables := []model.Table{{DTO: model.DTO{ID: 1}}, {DTO: model.DTO{ID: 2}}}
	slots := []model.TimeSlot{{DTO: model.DTO{ID: 10}}}

	out := BuildAvailability(tables, slots, nil)
	for _, entry := range out {
		if len(entry.FreeSlots) != len(slots) {
			t.Errorf("table %d free slots = %d, want %d", entry.Table.ID, len(entry.FreeSlots), len(slots))
		}
	}
}
