package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Image Watermark", "wm_open_menu"),
		),
	)
}

func settingsMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Watermark size", "wm_size_menu"),
			tgbotapi.NewInlineKeyboardButtonData("Colour", "wm_color_menu"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Position", "wm_position_menu"),
			tgbotapi.NewInlineKeyboardButtonData("Font", "wm_font_menu"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Transparency", "wm_transparency_menu"),
			tgbotapi.NewInlineKeyboardButtonData("Text style", "wm_style_menu"),
		),
	)
}

func sizeMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Small", "set_size_small"),
			tgbotapi.NewInlineKeyboardButtonData("Medium", "set_size_medium"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Large", "set_size_large"),
			tgbotapi.NewInlineKeyboardButtonData("X-Large", "set_size_xlarge"),
		),
	)
}

func colorMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Red", "set_color_red"),
			tgbotapi.NewInlineKeyboardButtonData("Black", "set_color_black"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Yellow", "set_color_yellow"),
			tgbotapi.NewInlineKeyboardButtonData("White", "set_color_white"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Pink", "set_color_pink"),
			tgbotapi.NewInlineKeyboardButtonData("Gray", "set_color_gray"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Blue", "set_color_blue"),
			tgbotapi.NewInlineKeyboardButtonData("Green", "set_color_green"),
		),
	)
}

func positionMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Right Top", "set_pos_tr"),
			tgbotapi.NewInlineKeyboardButtonData("Left Top", "set_pos_tl"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Bottom Right", "set_pos_br"),
			tgbotapi.NewInlineKeyboardButtonData("Bottom Left", "set_pos_bl"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Center", "set_pos_center"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("LeftTop → RightBottom", "set_pos_diag_tl_br"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("LeftBottom → RightTop", "set_pos_diag_bl_tr"),
		),
	)
}

func styleMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Normal", "set_style_normal"),
			tgbotapi.NewInlineKeyboardButtonData("UPPER", "set_style_upper"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("lower", "set_style_lower"),
			tgbotapi.NewInlineKeyboardButtonData("s p a c e d", "set_style_spaced"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("【Boxed】", "set_style_boxed"),
		),
	)
}

func fontMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Sans", "set_font_sans"),
			tgbotapi.NewInlineKeyboardButtonData("Serif", "set_font_serif"),
			tgbotapi.NewInlineKeyboardButtonData("Mono", "set_font_mono"),
		),
	)
}

func (h *Handler) sendMenu(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	h.send(msg)
}
