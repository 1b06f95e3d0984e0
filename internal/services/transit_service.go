package services

import (
	"context"
	"fmt"
	"math"

	"greenway/internal/models/response_models"
	"greenway/pkg/utils"
)

// Static metro feed for Hyderabad, distilled from the HMRL open-data GTFS
// export. Enough for nearby-stop lookup and single-line routing.
type transitStop struct {
	ID   string
	Name string
	Lat  float64
	Lon  float64
}

type transitRoute struct {
	ID    string
	Name  string
	Stops []string
}

var metroStops = []transitStop{
	{ID: "MGBS", Name: "MGBS Metro Station", Lat: 17.3784, Lon: 78.4839},
	{ID: "JUBS", Name: "JBS Metro Station", Lat: 17.4489, Lon: 78.4994},
	{ID: "PARA", Name: "Paradise Metro Station", Lat: 17.4374, Lon: 78.4977},
	{ID: "AMEERPET", Name: "Ameerpet Metro Station", Lat: 17.4374, Lon: 78.4484},
	{ID: "MIYAPUR", Name: "Miyapur Metro Station", Lat: 17.4969, Lon: 78.3715},
}

var metroRoutes = []transitRoute{
	{ID: "RED", Name: "Red Line", Stops: []string{"MGBS", "JUBS"}},
	{ID: "BLUE", Name: "Blue Line", Stops: []string{"AMEERPET", "MIYAPUR"}},
	{ID: "GREEN", Name: "Green Line", Stops: []string{"PARA", "AMEERPET"}},
}

const (
	fareBaseRupees  = 10
	farePerKmRupees = 2
	minutesPerKm    = 3
)

// Emission factors in kg CO2 per km.
var carbonPerKm = map[string]float64{
	"car":   0.2,
	"bus":   0.1,
	"train": 0.05,
	"bike":  0,
	"walk":  0,
}

type TransitServiceInterface interface {
	NearbyStops(ctx context.Context, lat, lon, radiusKm float64) ([]response_models.NearbyStop, error)
	BestRoute(ctx context.Context, fromStopID, toStopID string) (*response_models.TransitRouteResponse, error)
	TransportOptions(ctx context.Context, fromLat, fromLon, toLat, toLon float64) ([]response_models.TransportOption, error)
	CarbonFootprint(ctx context.Context, mode string, distanceKm float64) (*response_models.CarbonFootprintResponse, error)
}

type TransitService struct{}

func NewTransitService() TransitServiceInterface {
	return &TransitService{}
}

func (t *TransitService) NearbyStops(ctx context.Context, lat, lon, radiusKm float64) ([]response_models.NearbyStop, error) {
	if radiusKm <= 0 {
		radiusKm = 2
	}

	stops := make([]response_models.NearbyStop, 0)
	for _, stop := range metroStops {
		d := haversineKm(lat, lon, stop.Lat, stop.Lon)
		if d <= radiusKm {
			stops = append(stops, response_models.NearbyStop{
				StopID:     stop.ID,
				Name:       stop.Name,
				Lat:        stop.Lat,
				Lon:        stop.Lon,
				DistanceKm: round2(d),
			})
		}
	}
	return stops, nil
}

func (t *TransitService) BestRoute(ctx context.Context, fromStopID, toStopID string) (*response_models.TransitRouteResponse, error) {
	from, ok := stopByID(fromStopID)
	if !ok {
		return nil, utils.ErrInvalidInput
	}
	to, ok := stopByID(toStopID)
	if !ok {
		return nil, utils.ErrInvalidInput
	}

	for _, route := range metroRoutes {
		if containsStop(route.Stops, from.ID) && containsStop(route.Stops, to.ID) {
			distance := haversineKm(from.Lat, from.Lon, to.Lat, to.Lon)
			return &response_models.TransitRouteResponse{
				RouteID:         route.ID,
				RouteName:       route.Name,
				FromStop:        from.Name,
				ToStop:          to.Name,
				DistanceKm:      round2(distance),
				FareRupees:      int(math.Ceil(fareBaseRupees + distance*farePerKmRupees)),
				DurationMinutes: int(math.Ceil(distance * minutesPerKm)),
			}, nil
		}
	}
	return nil, utils.ErrInvalidInput
}

// TransportOptions lists the sustainable ways to cover a leg. Legs inside the
// Hyderabad metro area get the full curated option set; everywhere else falls
// back to generic bus, bike, and walking entries.
func (t *TransitService) TransportOptions(ctx context.Context, fromLat, fromLon, toLat, toLon float64) ([]response_models.TransportOption, error) {
	direct := [][2]float64{{fromLat, fromLon}, {toLat, toLon}}

	if inHyderabad(fromLat, fromLon) {
		return []response_models.TransportOption{
			{
				Type: "train", Operator: "Hyderabad Metro Rail",
				Departure: "08:30 AM", Arrival: "09:10 AM", Duration: "40 min",
				CarbonFootprint: 0.5, Price: "₹45", Route: "Blue Line",
				MapPath: [][2]float64{{fromLat, fromLon}, {17.4355, 78.4477}, {toLat, toLon}},
			},
			{
				Type: "bus", Operator: "TSRTC City Bus",
				Departure: "08:15 AM", Arrival: "09:05 AM", Duration: "50 min",
				CarbonFootprint: 1.2, Price: "₹35", Route: "City Route 216",
				MapPath: [][2]float64{{fromLat, fromLon}, {17.4155, 78.4577}, {17.4255, 78.4377}, {toLat, toLon}},
			},
			{
				Type: "bike", Operator: "Hyderabad Bike Share",
				Departure: "Flexible", Arrival: "Flexible", Duration: "30 min",
				CarbonFootprint: 0, Price: "₹60 (all day pass)", Route: "Cycling Lane Network",
				MapPath: direct,
			},
			{
				Type: "walk", Duration: "60 min",
				CarbonFootprint: 0, Price: "Free", Route: "Walking Path",
				MapPath: direct,
			},
			{
				Type: "car", Operator: "Sustainable Ride Share",
				Departure: "On Demand", Arrival: "On Demand", Duration: "25 min",
				CarbonFootprint: 0.8, Price: "₹150", Route: "Direct Route",
				MapPath: [][2]float64{{fromLat, fromLon}, {17.4055, 78.4577}, {toLat, toLon}},
			},
		}, nil
	}

	options := []response_models.TransportOption{
		{
			Type: "bus", Operator: "City Transit",
			Departure: "08:15", Arrival: "09:00", Duration: "45 min",
			CarbonFootprint: 1.2, Price: "₹35", Route: "City Bus 5",
			MapPath: [][2]float64{{fromLat, fromLon}, {fromLat + 0.01, fromLon + 0.01}, {toLat, toLon}},
		},
		{
			Type: "bike", Duration: "30 min",
			CarbonFootprint: 0, Price: "Free", Route: "Bike Path",
			MapPath: direct,
		},
		{
			Type: "walk", Duration: "1h 10min",
			CarbonFootprint: 0, Price: "Free", Route: "Walking Path",
			MapPath: direct,
		},
	}

	fromStops, _ := t.NearbyStops(ctx, fromLat, fromLon, 2)
	toStops, _ := t.NearbyStops(ctx, toLat, toLon, 2)
	if len(fromStops) > 0 && len(toStops) > 0 {
		if route, err := t.BestRoute(ctx, fromStops[0].StopID, toStops[0].StopID); err == nil {
			options = append([]response_models.TransportOption{{
				Type: "train", Operator: "Metro",
				Departure: "08:30", Arrival: "09:00",
				Duration:        fmt.Sprintf("%d min", route.DurationMinutes),
				CarbonFootprint: 0.5,
				Price:           fmt.Sprintf("₹%d", route.FareRupees),
				Route:           route.RouteName,
				MapPath: [][2]float64{
					{fromStops[0].Lat, fromStops[0].Lon},
					{toStops[0].Lat, toStops[0].Lon},
				},
			}}, options...)
		}
	}

	return options, nil
}

func (t *TransitService) CarbonFootprint(ctx context.Context, mode string, distanceKm float64) (*response_models.CarbonFootprintResponse, error) {
	factor, ok := carbonPerKm[mode]
	if !ok || distanceKm < 0 {
		return nil, utils.ErrInvalidInput
	}

	return &response_models.CarbonFootprintResponse{
		Mode:       mode,
		DistanceKm: distanceKm,
		CarbonKg:   round2(factor * distanceKm),
		SavedKg:    round2((carbonPerKm["car"] - factor) * distanceKm),
	}, nil
}

func inHyderabad(lat, lon float64) bool {
	return lat > 17.2 && lat < 17.6 && lon > 78.2 && lon < 78.7
}

func stopByID(id string) (transitStop, bool) {
	for _, s := range metroStops {
		if s.ID == id {
			return s, true
		}
	}
	return transitStop{}, false
}

func containsStop(stops []string, id string) bool {
	for _, s := range stops {
		if s == id {
			return true
		}
	}
	return false
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
