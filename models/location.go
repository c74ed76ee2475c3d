package models

// Location is one of the fixed bookable spaces at the centre.
type Location struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Locations is the fixed enumeration of bookable spaces. Booking records
// reference locations by display name.
var Locations = []Location{
	{ID: "main-hall", Name: "Main Hall"},
	{ID: "lajna-main-hall", Name: "Lajna Main Hall"},
	{ID: "lajna-serving-area", Name: "Lajna Serving Area"},
	{ID: "men-serving-area", Name: "Men Serving Area"},
	{ID: "lajna-lower-hall", Name: "Lajna Lower Hall"},
	{ID: "kitchen", Name: "Kitchen"},
	{ID: "library", Name: "Library"},
	{ID: "backyard-volleyball", Name: "Backyard Volleyball"},
	{ID: "guesthouse-room1", Name: "Guest House - Room 1"},
	{ID: "guesthouse-room2", Name: "Guest House - Room 2"},
}

// JamaatOptions lists the local chapters a requester may belong to.
var JamaatOptions = []string{
	"Langwarrin",
	"Clyde",
	"Berwick",
	"Melbourne East",
	"Melbourne West",
}

// ValidLocation reports whether name matches a bookable space.
func ValidLocation(name string) bool {
	for _, loc := range Locations {
		if loc.Name == name {
			return true
		}
	}
	return false
}
