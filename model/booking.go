package model

import (
	"time"

	"restaurant_manager/utils"
)

type Booking struct {
	DTO
	PublicCode     string           `gorm:"unique;size:20" json:"publicCode"`
	UserID         uint             `gorm:"not null" json:"userId"`
	User           *User            `json:"user,omitempty"`
	TableID        uint             `gorm:"not null" json:"tableId"`
	Table          *Table           `json:"table,omitempty"`
	TimeSlotID     uint             `gorm:"not null" json:"timeSlotId"`
	TimeSlot       *TimeSlot        `json:"timeSlot,omitempty"`
	BookingDate    utils.CustomDate `gorm:"type:date;not null" json:"bookingDate"`
	GuestCount     int              `gorm:"not null" json:"guestCount"`
	Status         string           `gorm:"size:20;not null;default:pending" json:"status"`
	TotalAmount    float64          `gorm:"type:decimal(10,2)" json:"totalAmount"`
	SpecialRequest string           `json:"specialRequest"`
	CancelledAt    *time.Time       `json:"cancelledAt,omitempty"`
	Items          []BookingItem    `gorm:"foreignKey:BookingID" json:"items,omitempty"`
}

type Bookings []Booking

// BookingItem captures the dish name and unit price at booking time so later
// menu edits do not rewrite history.
type BookingItem struct {
	DTO
	BookingID  uint    `gorm:"not null" json:"bookingId"`
	DishID     uint    `gorm:"not null" json:"dishId"`
	DishName   string  `gorm:"not null" json:"dishName"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	UnitPrice  float64 `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	TotalPrice float64 `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
}

type BookingItemInput struct {
	DishID   uint `validate:"required" json:"dishId"`
	Quantity int  `validate:"required,min=1" json:"quantity"`
}

type CreateBookingInput struct {
	TableID        uint               `validate:"required" json:"tableId"`
	TimeSlotID     uint               `validate:"required" json:"timeSlotId"`
	BookingDate    utils.CustomDate   `json:"bookingDate"`
	GuestCount     int                `validate:"required,min=1" json:"guestCount"`
	Items          []BookingItemInput `validate:"dive" json:"items"`
	SpecialRequest string             `json:"specialRequest"`
}

// UpdateBookingInput distinguishes absent fields from zero values; Items as a
// pointer keeps "not sent" apart from "replace with none".
type UpdateBookingInput struct {
	TableID        *uint               `validate:"omitempty,min=1" json:"tableId"`
	TimeSlotID     *uint               `validate:"omitempty,min=1" json:"timeSlotId"`
	BookingDate    *utils.CustomDate   `json:"bookingDate"`
	GuestCount     *int                `validate:"omitempty,min=1" json:"guestCount"`
	Items          *[]BookingItemInput `validate:"omitempty,dive" json:"items"`
	SpecialRequest *string             `json:"specialRequest"`
}

type ChangeBookingStatusInput struct {
	Status string `validate:"required" json:"status"`
}

type FilterBooking struct {
	Pagination
	Status  string `query:"status" json:"status"`
	From    string `query:"from" json:"from"`
	To      string `query:"to" json:"to"`
	UserID  *uint  `query:"userId" json:"userId"`
	TableID *uint  `query:"tableId" json:"tableId"`
}
