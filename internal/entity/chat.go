package entity

import "time"

// ChatEntry is one exchange of a transcript: what the user typed and what
// the bot answered.
type ChatEntry struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}

// ChatMessage is the persisted form of a ChatEntry for authenticated users,
// with the classification outcome kept for analysis.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserText  string    `json:"user_text"`
	BotText   string    `json:"bot_text"`
	Intent    string    `json:"intent"`
	CreatedAt time.Time `json:"created_at"`
}
