// Package catalog holds the hand-authored storefront data: retail
// locations and product categories. The data ships with the binary; there
// is no inventory or pricing behind it.
package catalog

// Coordinates is a map pin for a location.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Location is one physical retail location. PlaceID links the location to
// the external review lookup service; locations without one (not yet
// listed, or not yet open) are excluded from the review refresh.
type Location struct {
	ID          int
	Slug        string
	Name        string
	Address     string
	City        string
	State       string
	Zip         string
	Phone       string
	Hours       string
	Description string
	Coordinates *Coordinates
	PlaceID     string
}

var locations = []Location{
	{
		ID:          1,
		Slug:        "oak-ridge",
		Name:        "Rush N Relax - Oak Ridge",
		Address:     "110 Bus Terminal Road",
		City:        "Oak Ridge",
		State:       "TN",
		Zip:         "37830",
		Phone:       "+1 (865) 936-3069",
		Hours:       "Mon-Sun: 10am - 10pm",
		Description: "Visit our premium dispensary and lounge in Oak Ridge. Upscale atmosphere with carefully curated cannabis selection.",
		Coordinates: &Coordinates{Lat: 36.023978, Lng: -84.24072},
		PlaceID:     "ChIJG2IBn08zXIgROk6xAd9qyY0",
	},
	{
		ID:          2,
		Slug:        "maryville",
		Name:        "Rush N Relax - Maryville",
		Address:     "729 Watkins Road",
		City:        "Maryville",
		State:       "TN",
		Zip:         "37801",
		Phone:       "+1 (865) 265-4102",
		Hours:       "Mon-Sun: 10am - 10pm",
		Description: "Experience premium cannabis retail and speakeasy-style lounge in Maryville. Expert knowledge and welcoming atmosphere.",
		Coordinates: &Coordinates{Lat: 35.750658, Lng: -83.992662},
	},
	{
		ID:          3,
		Slug:        "seymour",
		Name:        "Rush N Relax - Seymour",
		Address:     "500 Maryville Hwy, Suite 205",
		City:        "Seymour",
		State:       "TN",
		Zip:         "37865",
		Phone:       "+1 (865) 415-4225",
		Hours:       "Mon-Sun: 10am - 10pm",
		Description: "Discover our Seymour location with premium selection and relaxed lounge environment. Open 7 days a week.",
		Coordinates: &Coordinates{Lat: 35.861584, Lng: -83.770727},
		PlaceID:     "ChIJb1IipsQbXIgREaNxkmmAaHg",
	},
	{
		ID:          4,
		Slug:        "knoxville",
		Name:        "Rush N Relax - Knoxville",
		Address:     "4001 Bruhin Road",
		City:        "Knoxville",
		State:       "TN",
		Zip:         "37918",
		Phone:       "+1 (865) 936-3069",
		Hours:       "Coming soon",
		Description: "Exciting new location coming to Knoxville. Stay tuned for opening details and exclusive launch information.",
		Coordinates: &Coordinates{Lat: 36.001233, Lng: -83.955442},
	},
}

// Locations returns every retail location in display order.
func Locations() []Location {
	return append([]Location(nil), locations...)
}

// LocationBySlug looks a location up by its URL slug.
func LocationBySlug(slug string) (Location, bool) {
	for _, loc := range locations {
		if loc.Slug == slug {
			return loc, true
		}
	}
	return Location{}, false
}

// PlaceIDs returns the allow-list of place identifiers eligible for the
// review refresh, as an unordered set.
func PlaceIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	for _, loc := range locations {
		if loc.PlaceID != "" {
			ids[loc.PlaceID] = struct{}{}
		}
	}
	return ids
}
