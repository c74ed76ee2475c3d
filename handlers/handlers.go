package handlers

import (
	"github.com/adeeb-debug/baitussalambookingapp/services/booking"
	"github.com/adeeb-debug/baitussalambookingapp/services/user"
)

// Package-level service handles, wired by main after config, database and
// cache initialization.
var (
	BookingService booking.BookingService
	UserService    user.UserService
)

// InitHandlers injects the service implementations the handlers call.
func InitHandlers(bookings booking.BookingService, users user.UserService) {
	BookingService = bookings
	UserService = users
}
