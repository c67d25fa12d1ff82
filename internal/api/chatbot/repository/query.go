package chatbotRepository

const (
	queryCreateChatMessage = `
		INSERT INTO chat_messages (id, user_id, user_text, bot_text, intent, created_at)
		VALUES (:id, :user_id, :user_text, :bot_text, :intent, :created_at)
	`

	queryGetChatMessagesByUserID = `
		SELECT id, user_id, user_text, bot_text, intent, created_at
		FROM chat_messages
		WHERE user_id = :user_id
		ORDER BY created_at ASC
		LIMIT :limit
	`

	queryDeleteChatMessagesByUserID = `
		DELETE FROM chat_messages
		WHERE user_id = :user_id
	`
)
