package itinerary

// HyderabadProfile is the curated city profile the service ships with. The
// landmark tables and the template document come from the GreenWay content
// set for Hyderabad.
func HyderabadProfile() *Profile {
	return &Profile{
		ID:   "hyderabad",
		City: "Hyderabad",
		Landmarks: []Landmark{
			{Name: "Charminar", Coordinates: LatLon{Lat: 17.3616, Lon: 78.4747}},
			{Name: "Golconda Fort", Coordinates: LatLon{Lat: 17.3833, Lon: 78.4011}},
			{Name: "Hussain Sagar Lake", Coordinates: LatLon{Lat: 17.4239, Lon: 78.4738}},
			{Name: "Ramoji Film City", Coordinates: LatLon{Lat: 17.2543, Lon: 78.6808}},
			{Name: "Birla Mandir", Coordinates: LatLon{Lat: 17.4062, Lon: 78.4691}},
			{Name: "Lumbini Park", Coordinates: LatLon{Lat: 17.4165, Lon: 78.4720}},
			{Name: "Nehru Zoological Park", Coordinates: LatLon{Lat: 17.3511, Lon: 78.4489}},
			{Name: "Salar Jung Museum", Coordinates: LatLon{Lat: 17.3714, Lon: 78.4804}},
			{Name: "Chowmahalla Palace", Coordinates: LatLon{Lat: 17.3582, Lon: 78.4710}},
			{Name: "Qutb Shahi Tombs", Coordinates: LatLon{Lat: 17.3947, Lon: 78.3984}},
			{Name: "Mecca Masjid", Coordinates: LatLon{Lat: 17.3604, Lon: 78.4736}},
			{Name: "KBR National Park", Coordinates: LatLon{Lat: 17.4256, Lon: 78.4269}},
			{Name: "Durgam Cheruvu", Coordinates: LatLon{Lat: 17.4275, Lon: 78.3890}},
			{Name: "Shilparamam", Coordinates: LatLon{Lat: 17.4529, Lon: 78.3813}},
			{Name: "Tank Bund", Coordinates: LatLon{Lat: 17.4254, Lon: 78.4718}},
		},
		CuratedLandmarks: []Landmark{
			{Name: "Charminar", Coordinates: LatLon{Lat: 17.3616, Lon: 78.4747}},
			{Name: "Mecca Masjid", Coordinates: LatLon{Lat: 17.3604, Lon: 78.4736}},
			{Name: "Chowmahalla Palace", Coordinates: LatLon{Lat: 17.3582, Lon: 78.4710}},
			{Name: "Café Bahar", Coordinates: LatLon{Lat: 17.3825, Lon: 78.4686}},
			{Name: "Salar Jung Museum", Coordinates: LatLon{Lat: 17.3714, Lon: 78.4804}},
			{Name: "Hussain Sagar Lake", Coordinates: LatLon{Lat: 17.4239, Lon: 78.4738}},
			{Name: "Lumbini Park", Coordinates: LatLon{Lat: 17.4165, Lon: 78.4720}},
			{Name: "Jiva Imperia", Coordinates: LatLon{Lat: 17.4367, Lon: 78.3875}},
			{Name: "KBR Park", Coordinates: LatLon{Lat: 17.4256, Lon: 78.4269}},
			{Name: "Chutneys", Coordinates: LatLon{Lat: 17.4267, Lon: 78.4494}},
			{Name: "Shilparamam", Coordinates: LatLon{Lat: 17.4529, Lon: 78.3813}},
			{Name: "Millet Café", Coordinates: LatLon{Lat: 17.4379, Lon: 78.4456}},
			{Name: "Durgam Cheruvu Lake", Coordinates: LatLon{Lat: 17.4275, Lon: 78.3890}},
			{Name: "Gachibowli Biodiversity Park", Coordinates: LatLon{Lat: 17.4107, Lon: 78.3350}},
			{Name: "Sage Farm Café", Coordinates: LatLon{Lat: 17.4342, Lon: 78.3401}},
			{Name: "Fab Café", Coordinates: LatLon{Lat: 17.4256, Lon: 78.4498}},
			{Name: "Nehru Zoological Park", Coordinates: LatLon{Lat: 17.3511, Lon: 78.4489}},
			{Name: "Sattvam", Coordinates: LatLon{Lat: 17.4244, Lon: 78.4500}},
			{Name: "Birla Science Museum", Coordinates: LatLon{Lat: 17.4130, Lon: 78.4613}},
			{Name: "Lamakaan", Coordinates: LatLon{Lat: 17.4213, Lon: 78.4594}},
			{Name: "Ramoji Film City", Coordinates: LatLon{Lat: 17.2543, Lon: 78.6808}},
			{Name: "Subhan Bakery", Coordinates: LatLon{Lat: 17.4035, Lon: 78.4750}},
			{Name: "Sudha Cars Museum", Coordinates: LatLon{Lat: 17.4201, Lon: 78.4753}},
			{Name: "Eat Raja", Coordinates: LatLon{Lat: 17.4140, Lon: 78.4690}},
			{Name: "Laad Bazaar", Coordinates: LatLon{Lat: 17.3615, Lon: 78.4738}},
			{Name: "Necklace Road", Coordinates: LatLon{Lat: 17.4254, Lon: 78.4718}},
			{Name: "Chai Kahani", Coordinates: LatLon{Lat: 17.4142, Lon: 78.4396}},
		},
		CityCenter: Landmark{
			Name:        "Hyderabad City Center",
			Coordinates: LatLon{Lat: 17.3850, Lon: 78.4867},
		},
		DayFallbacks: []string{
			"Charminar", "KBR Park", "Birla Science Museum", "Ramoji Film City", "Laad Bazaar",
		},
		Fingerprints:    []string{"Old City & Heritage Walk", "Charminar"},
		CuratedDocument: hyderabadCuratedDocument,
	}
}

const hyderabadCuratedDocument = `
Day 1: March 30, 2025 – Old City & Heritage Walk
🚶 Mode of Transport: Metro, Walking
💰 Estimated Cost for the Day: ₹1,500

9:00 AM – Charminar & Breakfast at Nimrah Café 🏛️☕
Walk around the historic Charminar and Laad Bazaar
Enjoy Irani chai & Osmania biscuits
Cost: ₹100

11:00 AM – Mecca Masjid & Chowmahalla Palace 🕌🏰
Explore the grand mosque & historic palace
Cost: ₹80 (Palace entry)

1:00 PM – Lunch at a Local Veg Restaurant 🍽️
Try Biryani at Café Bahar (veg options available)
Cost: ₹250

3:00 PM – Salar Jung Museum 🖼️
One of India's largest art collections
Cost: ₹50

5:30 PM – Evening Stroll at Hussain Sagar Lake 🚶
Visit Lumbini Park & Buddha Statue by electric ferry
Cost: ₹100

7:30 PM – Sustainable Dinner at Jiva Imperia 🌱
Organic, plant-based meal
Cost: ₹400

Day 2: March 31, 2025 – Nature & Parks
🚲 Mode of Transport: Metro, Cycling
💰 Estimated Cost for the Day: ₹1,800

6:00 AM – Morning Cycling at KBR Park 🚴🌿
Rent a cycle and ride in nature
Cost: ₹100

8:30 AM – Breakfast at Chutneys 🥞
South Indian breakfast
Cost: ₹200

10:00 AM – Visit Shilparamam (Handicrafts Village) 🛍️
Traditional arts & crafts village
Cost: ₹60

1:00 PM – Lunch at Millet Café 🌾
Millet-based sustainable dishes
Cost: ₹300

3:00 PM – Durgam Cheruvu Lake & Eco-Boat Ride 🚣
Kayaking or electric boat ride
Cost: ₹250

6:00 PM – Gachibowli Biodiversity Park 🌳
Sunset & nature walk
Cost: Free

8:00 PM – Dinner at a Zero-Waste Restaurant 🍛
Minimal-waste meal at Sage Farm Café
Cost: ₹400

Day 3: April 1, 2025 – Science & Sustainability
🚌 Mode of Transport: Metro, Bus
💰 Estimated Cost for the Day: ₹1,700

8:00 AM – Breakfast at Fab Café ☕
Healthy & organic food
Cost: ₹250

9:30 AM – Nehru Zoological Park (Electric Vehicles Inside) 🦁
Eco-friendly zoo experience
Cost: ₹100

1:00 PM – Lunch at an Organic Restaurant 🍲
Farm-to-table dining at Sattvam
Cost: ₹400

3:00 PM – Birla Science Museum & Planetarium 🔭
Interactive science & sustainability exhibits
Cost: ₹150

6:00 PM – Evening Tea at Lamakaan (Eco-Friendly Café) 🍵
Social space for discussions & organic snacks
Cost: ₹100

8:00 PM – Dinner at an Upcycled-Themed Café 🥗
Café with recycled interiors & farm-based meals
Cost: ₹400

Day 4: April 2, 2025 – Ramoji Film City (Sustainable Travel)
🚌 Mode of Transport: Shared Electric Bus
💰 Estimated Cost for the Day: ₹2,000

6:30 AM – Breakfast at Home / Hotel 🍞☕
Cost: ₹100

8:00 AM – Travel to Ramoji Film City by Green Bus 🎬
India's largest film studio with eco-friendly transport
Cost: ₹1,500 (Entry + Bus)

1:00 PM – Lunch at Ramoji's Eco-Friendly Restaurant 🍛
Cost: ₹300

6:00 PM – Return to Hyderabad 🏙️
Shared Electric Bus
Cost: Included in ticket

8:00 PM – Light Dinner at a Vegan Café 🥙
Cost: ₹300

Day 5: April 3, 2025 – Final Day & Shopping
🚋 Mode of Transport: Metro, Walking
💰 Estimated Cost for the Day: ₹1,200

8:00 AM – Breakfast at Subhan Bakery 🍪
Famous for Osmania biscuits & local snacks
Cost: ₹150

10:00 AM – Visit Sudha Cars Museum (Upcycled Art) 🚗
Unique museum with cars made from waste materials
Cost: ₹100

1:00 PM – Lunch at Eat Raja (Zero-Waste Café) 🥤
Plastic-free juice bar
Cost: ₹250

3:00 PM – Visit Laad Bazaar for Handmade Souvenirs 🎁
Walk around & shop for eco-friendly souvenirs
Cost: ₹400

6:00 PM – Sunset at Necklace Road & Cycling 🚲
Rent a cycle & ride by the lake
Cost: ₹100

8:00 PM – Dinner at Chai Kahani (Clay Cups, No Plastic) 🍵
Cost: ₹200
`
