package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"watermark-tg-bot/internal/session"
	"watermark-tg-bot/internal/watermark"
)

// Setter tables for the inline menus. Unknown callback data is ignored;
// the values written here round-trip through the closed menu choices.
var (
	sizeChoices = map[string]float64{
		"set_size_small":  0.7,
		"set_size_medium": 1.0,
		"set_size_large":  1.4,
		"set_size_xlarge": 1.8,
	}

	colorChoices = map[string][3]uint8{
		"set_color_red":    {255, 0, 0},
		"set_color_black":  {0, 0, 0},
		"set_color_yellow": {255, 255, 0},
		"set_color_white":  {255, 255, 255},
		"set_color_pink":   {255, 105, 180},
		"set_color_gray":   {128, 128, 128},
		"set_color_blue":   {0, 102, 255},
		"set_color_green":  {0, 200, 0},
	}

	positionChoices = map[string]watermark.Position{
		"set_pos_tr":         watermark.PositionTopRight,
		"set_pos_tl":         watermark.PositionTopLeft,
		"set_pos_br":         watermark.PositionBottomRight,
		"set_pos_bl":         watermark.PositionBottomLeft,
		"set_pos_center":     watermark.PositionCenter,
		"set_pos_diag_tl_br": watermark.PositionDiagTLBR,
		"set_pos_diag_bl_tr": watermark.PositionDiagBLTR,
	}

	styleChoices = map[string]watermark.Style{
		"set_style_normal": watermark.StyleNormal,
		"set_style_upper":  watermark.StyleUpper,
		"set_style_lower":  watermark.StyleLower,
		"set_style_spaced": watermark.StyleSpaced,
		"set_style_boxed":  watermark.StyleBoxed,
	}

	fontChoices = map[string]string{
		"set_font_sans":  watermark.FontSans,
		"set_font_serif": watermark.FontSerif,
		"set_font_mono":  watermark.FontMono,
	}
)

func (h *Handler) handleCallback(query *tgbotapi.CallbackQuery, userID, chatID int64) {
	// Acknowledge the button press so the client stops its spinner.
	if _, err := h.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		h.logger.Error("failed to answer callback", "error", err)
	}

	data := query.Data

	switch data {
	case "wm_open_menu":
		h.sendMenu(chatID, "Image watermark settings:", settingsMenuKeyboard())
		return
	case "wm_size_menu":
		h.sendMenu(chatID, "Choose the watermark size:", sizeMenuKeyboard())
		return
	case "wm_color_menu":
		h.sendMenu(chatID, "Choose the watermark colour:", colorMenuKeyboard())
		return
	case "wm_position_menu":
		h.sendMenu(chatID, "Choose the watermark position:", positionMenuKeyboard())
		return
	case "wm_transparency_menu":
		h.sessions.AwaitInput(userID, session.InputTransparency)
		h.sendText(chatID,
			"Send the transparency as a percentage (0 = barely visible, 100 = fully solid).\n"+
				"For example: 60")
		return
	case "wm_style_menu":
		h.sendMenu(chatID, "Choose the text style:", styleMenuKeyboard())
		return
	case "wm_font_menu":
		h.sendMenu(chatID, "Choose the font:", fontMenuKeyboard())
		return
	}

	if factor, ok := sizeChoices[data]; ok {
		h.applySetting(userID, chatID, "Watermark size updated.", func(ws *watermark.Settings) {
			ws.SizeFactor = factor
		})
		return
	}

	if rgb, ok := colorChoices[data]; ok {
		h.applySetting(userID, chatID, "Watermark colour updated.", func(ws *watermark.Settings) {
			ws.ColorR, ws.ColorG, ws.ColorB = rgb[0], rgb[1], rgb[2]
		})
		return
	}

	if pos, ok := positionChoices[data]; ok {
		h.applySetting(userID, chatID, "Watermark position updated.", func(ws *watermark.Settings) {
			ws.Position = pos
		})
		return
	}

	if style, ok := styleChoices[data]; ok {
		h.applySetting(userID, chatID, "Text style updated.", func(ws *watermark.Settings) {
			ws.Style = style
		})
		return
	}

	if fontKey, ok := fontChoices[data]; ok {
		h.applySetting(userID, chatID, "Font updated.", func(ws *watermark.Settings) {
			ws.Font = fontKey
		})
		return
	}

	h.logger.Warn("unknown callback data", "data", data, "user_id", userID)
}

func (h *Handler) applySetting(userID, chatID int64, confirmation string, mutate func(*watermark.Settings)) {
	if err := h.updateSettings(userID, mutate); err != nil {
		h.logger.Error("failed to update settings", "error", err, "user_id", userID)
		h.sendText(chatID, "Could not save the setting, please try again.")
		return
	}
	h.sendText(chatID, confirmation)
}

// updateSettings mutates a full copy of the user's record and writes it
// back; concurrent updates for the same user are last-write-wins, which
// matches the strictly serialized chat interaction.
func (h *Handler) updateSettings(userID int64, mutate func(*watermark.Settings)) error {
	ws, err := h.settings.Get(userID)
	if err != nil {
		return err
	}
	mutate(&ws)
	return h.settings.Save(userID, ws)
}
