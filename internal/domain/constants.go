package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Validation limits
const (
	MaxEmailLength = 254
	MaxNameLength  = 200
	MaxSearchQuery = 100
	MaxCatalogID   = 128
)

// Collection (table) names
const (
	CollectionCart         = "cart"
	CollectionBookings     = "bookings"
	CollectionUserBookings = "user_bookings"
	CollectionUsers        = "users"
	CollectionClasses      = "yoga_classes"
	CollectionCourses      = "yoga_courses"
	CollectionInstructors  = "instructors"
)
