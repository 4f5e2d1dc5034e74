package game

type Game struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description,omitempty"`
	MinPlayers  int    `gorm:"not null" json:"minPlayers"`
	MaxPlayers  int    `gorm:"not null" json:"maxPlayers"`
	RulesURL    string `json:"rulesUrl,omitempty"`
	AdminID     string `gorm:"type:uuid;not null" json:"adminId"`
}

type GameRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	MinPlayers  int    `json:"minPlayers"`
	MaxPlayers  int    `json:"maxPlayers"`
	RulesURL    string `json:"rulesUrl"`
}
