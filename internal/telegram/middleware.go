package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"watermark-tg-bot/internal/users"
)

// identify extracts the acting user and chat from an update.
// Returns ok=false for update kinds the bot does not handle.
func identify(update tgbotapi.Update) (userID int64, chatID int64, username string, ok bool) {
	if update.Message != nil {
		if update.Message.From == nil {
			return 0, 0, "", false
		}
		return update.Message.From.ID,
			update.Message.Chat.ID,
			update.Message.From.UserName,
			true
	}

	if update.CallbackQuery != nil && update.CallbackQuery.From != nil {
		// Inline-mode callbacks carry no message, so there is no chat
		// to answer into.
		if update.CallbackQuery.Message == nil {
			return 0, 0, "", false
		}
		return update.CallbackQuery.From.ID,
			update.CallbackQuery.Message.Chat.ID,
			update.CallbackQuery.From.UserName,
			true
	}

	return 0, 0, "", false
}

// register records the user in the registry so broadcasts can reach them.
// Registry failures are logged but never block handling.
func (h *Handler) register(userID, chatID int64, username string) {
	err := h.users.Touch(users.User{
		UserID:   userID,
		ChatID:   chatID,
		Username: username,
	})
	if err != nil {
		h.logger.Error("failed to register user", "error", err, "user_id", userID)
	}
}
