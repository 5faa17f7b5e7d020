package model

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	// BookingConfirmed is the initial state assigned at creation.
	BookingConfirmed BookingStatus = "CONFIRMED"
	// BookingCancelled is terminal; a cancelled booking cannot be cancelled again.
	BookingCancelled BookingStatus = "CANCELLED"
	// BookingCompleted is reserved and never assigned by this service.
	BookingCompleted BookingStatus = "COMPLETED"
)

// Valid reports whether s is one of the modelled states.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking records a user's reservation for a hotel stay. The owning user
// and the hotel are denormalized (id plus display value) so listings do
// not need to join. Dates of the stay are kept as the strings the client
// sent; no range checking is applied.
//
// Fields:
//  ID                 – opaque identifier assigned by the store.
//  UserID, UserEmail  – owning user reference.
//  HotelID, HotelName – hotel reference.
//  FullName, Email, Phone – guest contact details.
//  CheckIn, CheckOut  – stay dates as supplied.
//  Nights, Rooms, Adults, Children – stay parameters.
//  PricePerNight, TotalPrice – pricing.
//  MealPreference     – none, veg or nonveg.
//  SpecialRequests    – free text.
//  Status             – CONFIRMED, CANCELLED or COMPLETED.
//  BookingDate        – set when the booking is created.
//  CancellationDate   – set once, when cancelled.
//  CancellationReason – set once, when cancelled.
type Booking struct {
	ID                 string        `json:"id" db:"id" bson:"-"`
	UserID             string        `json:"userId" db:"user_id" bson:"userId"`
	UserEmail          string        `json:"userEmail" db:"user_email" bson:"userEmail"`
	HotelID            string        `json:"hotelId" db:"hotel_id" bson:"hotelId"`
	HotelName          string        `json:"hotelName" db:"hotel_name" bson:"hotelName"`
	FullName           string        `json:"fullName" db:"full_name" bson:"fullName"`
	Email              string        `json:"email" db:"email" bson:"email"`
	Phone              string        `json:"phone" db:"phone" bson:"phone"`
	CheckIn            string        `json:"checkIn" db:"check_in" bson:"checkIn"`
	CheckOut           string        `json:"checkOut" db:"check_out" bson:"checkOut"`
	Nights             int           `json:"nights" db:"nights" bson:"nights"`
	Rooms              int           `json:"rooms" db:"rooms" bson:"rooms"`
	Adults             int           `json:"adults" db:"adults" bson:"adults"`
	Children           int           `json:"children" db:"children" bson:"children"`
	PricePerNight      float64       `json:"pricePerNight" db:"price_per_night" bson:"pricePerNight"`
	TotalPrice         float64       `json:"totalPrice" db:"total_price" bson:"totalPrice"`
	MealPreference     string        `json:"mealPreference" db:"meal_preference" bson:"mealPreference"`
	SpecialRequests    string        `json:"specialRequests" db:"special_requests" bson:"specialRequests"`
	Status             BookingStatus `json:"status" db:"status" bson:"status"`
	BookingDate        time.Time     `json:"bookingDate" db:"booking_date" bson:"bookingDate"`
	CancellationDate   *time.Time    `json:"cancellationDate" db:"cancellation_date" bson:"cancellationDate,omitempty"`
	CancellationReason string        `json:"cancellationReason,omitempty" db:"cancellation_reason" bson:"cancellationReason,omitempty"`
}

// IsCancelled reports whether the booking has reached the terminal state.
func (b Booking) IsCancelled() bool { return b.Status == BookingCancelled }
