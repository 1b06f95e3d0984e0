package db_models

import (
	"strings"

	"github.com/google/uuid"
)

type Trip struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Description string
	Location    string
	StartDate   string
	EndDate     string
	Status      string // upcoming, active, completed
	TravelType  string
	Travelers   int
	Budget      int
	CarbonSaved int
	ImageURL    string
	MapLat      *float64
	MapLon      *float64
	Days        []TripDay `gorm:"constraint:OnDelete:CASCADE"`
}

type TripDay struct {
	BaseModel
	TripID        uuid.UUID `gorm:"type:uuid;index"`
	DayIndex      int
	Title         string
	Date          string
	TransportMode string
	Activities    []TripActivity `gorm:"constraint:OnDelete:CASCADE"`
}

type TripActivity struct {
	BaseModel
	TripDayID     uuid.UUID `gorm:"type:uuid;index"`
	Position      int
	Time          string
	Title         string
	Description   string
	Location      string
	Lat           *float64
	Lon           *float64
	Duration      string
	Cost          int
	Tags          string // comma-joined
	TransportMode string
}

func (a *TripActivity) TagList() []string {
	if a.Tags == "" {
		return nil
	}
	return strings.Split(a.Tags, ",")
}

func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}
