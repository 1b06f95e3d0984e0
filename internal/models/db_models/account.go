package db_models

type Account struct {
	BaseModel
	Name         string
	Username     string `gorm:"unique"`
	Email        string `gorm:"unique"`
	PasswordHash string
	GreenScore   int
	Trips        []Trip
	Redemptions  []Redemption
}
