package itinerary

import "math/rand"

// minActivitiesPerDay is the threshold below which extraction output is
// discarded in favor of a full template day.
const minActivitiesPerDay = 3

type activityTemplate struct {
	Time     string
	Title    string
	Category string
}

// templateSets are the rotating five-slot day templates used when extraction
// under-produces. The set for a day is picked by day index, so consecutive
// days get different shapes.
var templateSets = [][]activityTemplate{
	{
		{Time: "8:00 AM", Title: "Sunrise Yoga", Category: "wellness"},
		{Time: "10:00 AM", Title: "Heritage Walk", Category: "cultural"},
		{Time: "1:00 PM", Title: "Organic Lunch", Category: "food"},
		{Time: "3:00 PM", Title: "Craft Workshop", Category: "craft"},
		{Time: "6:00 PM", Title: "Sustainable Dinner", Category: "food"},
	},
	{
		{Time: "9:00 AM", Title: "Farmer's Market Visit", Category: "shopping"},
		{Time: "11:00 AM", Title: "Museum Tour", Category: "cultural"},
		{Time: "1:30 PM", Title: "Street Food Exploration", Category: "food"},
		{Time: "4:00 PM", Title: "Nature Walk", Category: "nature"},
		{Time: "7:00 PM", Title: "Cultural Performance", Category: "entertainment"},
	},
	{
		{Time: "8:30 AM", Title: "Cycling Tour", Category: "active"},
		{Time: "11:30 AM", Title: "Historical Site Visit", Category: "cultural"},
		{Time: "2:00 PM", Title: "Vegetarian Lunch", Category: "food"},
		{Time: "4:30 PM", Title: "Sustainable Shopping", Category: "shopping"},
		{Time: "7:30 PM", Title: "Stargazing", Category: "nature"},
	},
}

// backfillDay enforces the minimum-activity invariant. Days that extracted
// enough keep their activities untouched; everything else is replaced
// wholesale with a template day bound to shuffled gazetteer landmarks.
// Template days are always exactly five activities long.
func backfillDay(dayIdx int, existing []Activity, mode TransportMode, profile *Profile, rng *rand.Rand) []Activity {
	if len(existing) >= minActivitiesPerDay {
		return existing
	}

	templates := templateSets[dayIdx%len(templateSets)]
	activities := make([]Activity, 0, len(templates))
	for _, tpl := range templates {
		shuffled := make([]Landmark, len(profile.Landmarks))
		copy(shuffled, profile.Landmarks)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		landmark := shuffled[0]

		activities = append(activities, Activity{
			Time:          tpl.Time,
			Title:         tpl.Title,
			Description:   "Enjoy a " + tpl.Category + " experience at " + landmark.Name,
			Location:      landmark.Name,
			Coordinates:   &LatLon{Lat: landmark.Coordinates.Lat, Lon: landmark.Coordinates.Lon},
			Duration:      "2 hours",
			Cost:          rng.Intn(500) + 300,
			Tags:          []string{tpl.Category, "sustainable"},
			TransportMode: mode,
		})
	}
	return activities
}
