// Package catalog хранит статический контент сайта: стартовые объекты, услуги,
// команду, отзывы, вакансии, факты о компании и FAQ. Поиск не паникует и
// не совпадает частично.
package catalog

import "github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"

func coord(v float64) *float64 { return &v }

var properties = []domain.Property{
	{
		ID:          "1",
		Title:       "Modern Lakeside Villa",
		Location:    "Austin, TX",
		Address:     "1204 Lakeshore Dr, Austin, TX 78746",
		Price:       "$685,000",
		PriceValue:  685000,
		Type:        "Villa",
		Beds:        4,
		Baths:       3.5,
		Sqft:        3200,
		YearBuilt:   2018,
		Description: "Open-plan villa on a quiet cove with floor-to-ceiling windows, a private dock and a landscaped terrace facing the lake.",
		Images:      []string{"/images/properties/lakeside-villa-1.jpg", "/images/properties/lakeside-villa-2.jpg", "/images/properties/lakeside-villa-3.jpg"},
		Features:    []string{"Private dock", "Heated pool", "Smart home", "Three-car garage"},
		Latitude:    coord(30.2983),
		Longitude:   coord(-97.7893),
		Published:   true,
		Featured:    true,
	},
	{
		ID:          "2",
		Title:       "Downtown Loft Apartment",
		Location:    "Austin, TX",
		Address:     "500 Congress Ave #1402, Austin, TX 78701",
		Price:       "$389,000",
		PriceValue:  389000,
		Type:        "Apartment",
		Beds:        2,
		Baths:       2,
		Sqft:        1150,
		YearBuilt:   2012,
		Description: "Corner loft with exposed concrete, skyline views and a walkable commute to the Capitol and Rainey Street.",
		Images:      []string{"/images/properties/downtown-loft-1.jpg", "/images/properties/downtown-loft-2.jpg"},
		Features:    []string{"Concierge", "Rooftop pool", "Fitness center"},
		Latitude:    coord(30.2669),
		Longitude:   coord(-97.7428),
		Published:   true,
		Featured:    true,
	},
	{
		ID:          "3",
		Title:       "Family Home near Zilker Park",
		Location:    "Austin, TX",
		Address:     "2208 Barton Hills Dr, Austin, TX 78704",
		Price:       "$540,000",
		PriceValue:  540000,
		Type:        "House",
		Beds:        3,
		Baths:       2,
		Sqft:        1980,
		YearBuilt:   1998,
		Description: "Renovated single-story home with a shaded backyard, new roof and a short walk to Zilker Park and Barton Springs.",
		Images:      []string{"/images/properties/zilker-home-1.jpg", "/images/properties/zilker-home-2.jpg"},
		Features:    []string{"Renovated kitchen", "Backyard", "Solar panels"},
		Latitude:    coord(30.2552),
		Longitude:   coord(-97.7781),
		Published:   true,
		Featured:    true,
	},
	{
		ID:          "4",
		Title:       "Starter Condo in Mueller",
		Location:    "Austin, TX",
		Address:     "1900 Aldrich St #210, Austin, TX 78723",
		Price:       "$185,000",
		PriceValue:  185000,
		Type:        "Condo",
		Beds:        1,
		Baths:       1,
		Sqft:        720,
		YearBuilt:   2015,
		Description: "Bright one-bedroom condo across from Mueller Lake Park with an assigned parking spot and low HOA dues.",
		Images:      []string{"/images/properties/mueller-condo-1.jpg"},
		Features:    []string{"Balcony", "Assigned parking"},
		Latitude:    coord(30.2986),
		Longitude:   coord(-97.7049),
		Published:   true,
	},
	{
		ID:          "5",
		Title:       "Hill Country Estate",
		Location:    "Dripping Springs, TX",
		Address:     "480 Mountain Crest Rd, Dripping Springs, TX 78620",
		Price:       "$1,250,000",
		PriceValue:  1250000,
		Type:        "House",
		Beds:        5,
		Baths:       4.5,
		Sqft:        4800,
		YearBuilt:   2020,
		Description: "Limestone estate on six acres with panoramic Hill Country views, a guest casita and an outdoor kitchen.",
		Images:      []string{"/images/properties/hill-country-1.jpg", "/images/properties/hill-country-2.jpg"},
		Features:    []string{"Guest casita", "Outdoor kitchen", "Wine cellar", "Six acres"},
		Latitude:    coord(30.1902),
		Longitude:   coord(-98.0867),
		Published:   true,
	},
	{
		ID:          "6",
		Title:       "East Side Townhouse",
		Location:    "Austin, TX",
		Address:     "1107 E 7th St, Austin, TX 78702",
		Price:       "$455,000",
		PriceValue:  455000,
		Type:        "Townhouse",
		Beds:        3,
		Baths:       2.5,
		Sqft:        1640,
		YearBuilt:   2019,
		Description: "Three-level townhouse with a rooftop deck, minutes from East Austin coffee shops and galleries.",
		Images:      []string{"/images/properties/east-townhouse-1.jpg"},
		Features:    []string{"Rooftop deck", "Two-car garage"},
		Latitude:    coord(30.2640),
		Longitude:   coord(-97.7316),
		Published:   true,
	},
	{
		ID:          "7",
		Title:       "Round Rock Building Lot",
		Location:    "Round Rock, TX",
		Address:     "Lot 14, Brushy Creek Rd, Round Rock, TX 78664",
		Price:       "$149,000",
		PriceValue:  149000,
		Type:        "Land",
		Sqft:        21780,
		Description: "Half-acre residential lot with utilities at the street and mature oak trees, ready for a custom build.",
		Images:      []string{"/images/properties/round-rock-lot-1.jpg"},
		Features:    []string{"Utilities available", "Mature trees"},
		Published:   true,
	},
	{
		ID:          "8",
		Title:       "Westlake Villa with Pool",
		Location:    "West Lake Hills, TX",
		Address:     "3 Rollingwood Cir, West Lake Hills, TX 78746",
		Price:       "$920,000",
		PriceValue:  920000,
		Type:        "Villa",
		Beds:        4,
		Baths:       4,
		Sqft:        3650,
		YearBuilt:   2008,
		Description: "Mediterranean villa in the Eanes school district with a resort-style pool and a chef's kitchen.",
		Images:      []string{"/images/properties/westlake-villa-1.jpg", "/images/properties/westlake-villa-2.jpg"},
		Features:    []string{"Pool", "Chef's kitchen", "Home office"},
		Latitude:    coord(30.2968),
		Longitude:   coord(-97.8011),
		Published:   true,
	},
}

// Properties возвращает стартовые объекты; срез является копией
func Properties() []domain.Property {
	return cloneAll(properties, cloneProperty)
}

func GetPropertyByID(id string) (domain.Property, bool) {
	for _, p := range properties {
		if p.ID == id {
			return cloneProperty(p), true
		}
	}
	return domain.Property{}, false
}
