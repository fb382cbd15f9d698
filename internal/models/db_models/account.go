package db_models

type Account struct {
	BaseModel
	Username     string `gorm:"size:50;uniqueIndex"`
	Email        string `gorm:"size:100;uniqueIndex"`
	PasswordHash string `gorm:"size:255"`

	Decks    []Deck     `gorm:"foreignKey:AccountID"`
	Progress []Progress `gorm:"foreignKey:AccountID"`
}
