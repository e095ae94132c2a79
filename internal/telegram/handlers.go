package telegram

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	apperrors "watermark-tg-bot/internal/errors"
	"watermark-tg-bot/internal/limiter"
	"watermark-tg-bot/internal/session"
	"watermark-tg-bot/internal/settings"
	"watermark-tg-bot/internal/users"
	"watermark-tg-bot/internal/watermark"
)

// Handler processes Telegram updates. It also implements
// session.Deliverer so finished compositions flow back through it.
type Handler struct {
	api      *tgbotapi.BotAPI
	sessions *session.Manager
	settings settings.Store
	users    users.Store
	gate     *limiter.Gate
	ownerID  int64
	logger   *slog.Logger
}

// NewHandler creates a new update handler. The session manager is
// attached afterwards by NewBot, once the handler exists to deliver for it.
func NewHandler(
	api *tgbotapi.BotAPI,
	settingsStore settings.Store,
	userRegistry users.Store,
	gate *limiter.Gate,
	ownerID int64,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		api:      api,
		settings: settingsStore,
		users:    userRegistry,
		gate:     gate,
		ownerID:  ownerID,
		logger:   logger,
	}
}

// HandleUpdate processes a single update
func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	userID, chatID, username, ok := identify(update)
	if !ok {
		return
	}
	h.register(userID, chatID, username)

	if update.CallbackQuery != nil {
		h.handleCallback(update.CallbackQuery, userID, chatID)
		return
	}

	msg := update.Message
	if msg == nil {
		return
	}

	if msg.IsCommand() {
		// A command while a numeric-input flag is set abandons the input.
		h.sessions.ClearInput(userID)
		h.handleCommand(msg, userID, chatID)
		return
	}

	if len(msg.Photo) > 0 {
		h.handlePhoto(ctx, msg, userID, chatID)
		return
	}

	if msg.Text != "" {
		h.handleText(ctx, msg, userID, chatID)
	}
}

func (h *Handler) handleCommand(msg *tgbotapi.Message, userID, chatID int64) {
	switch msg.Command() {
	case "start":
		text := fmt.Sprintf(
			"Hi! Send me any photo and I will put a text watermark on it.\n\n"+
				"After the photo, send the watermark text within %d seconds,\n"+
				"otherwise the default '%s' is used.\n\n"+
				"Use the button below or /image_watermark to adjust the watermark.",
			int(h.sessions.Timeout().Seconds()), h.sessions.DefaultText())
		reply := tgbotapi.NewMessage(chatID, text)
		reply.ReplyMarkup = mainMenuKeyboard()
		h.send(reply)

	case "help":
		h.sendText(chatID,
			"1. Send a photo.\n"+
				fmt.Sprintf("2. Within %d seconds, send the watermark text.\n", int(h.sessions.Timeout().Seconds()))+
				"3. Receive the watermarked image.\n\n"+
				"Commands:\n"+
				"/image_watermark - size, colour, position, transparency, style and font\n"+
				"/status - bot status")

	case "image_watermark":
		reply := tgbotapi.NewMessage(chatID, "Image watermark settings:")
		reply.ReplyMarkup = settingsMenuKeyboard()
		h.send(reply)

	case "status":
		h.handleStatus(chatID)

	case "broadcast":
		h.handleBroadcast(msg, userID, chatID)

	default:
		h.sendText(chatID, "Unknown command. Use /help for available commands.")
	}
}

func (h *Handler) handleStatus(chatID int64) {
	known, err := h.users.Count()
	if err != nil {
		h.logger.Error("failed to count users", "error", err)
	}
	h.sendText(chatID, fmt.Sprintf(
		"Active compositions: %d/%d\n"+
			"Pending uploads: %d\n"+
			"Known users: %d",
		h.gate.Active(), h.gate.Capacity(),
		h.sessions.ActiveSessions(),
		known))
}

func (h *Handler) handleBroadcast(msg *tgbotapi.Message, userID, chatID int64) {
	if userID != h.ownerID || h.ownerID == 0 {
		h.sendText(chatID, apperrors.GetUserMessage(apperrors.ErrOwnerOnly))
		return
	}

	text := strings.TrimSpace(msg.CommandArguments())
	if text == "" {
		h.sendText(chatID, "Usage: /broadcast <message>")
		return
	}

	targets, err := h.users.List()
	if err != nil {
		h.logger.Error("failed to list broadcast targets", "error", err)
		h.sendText(chatID, "Could not load the user list.")
		return
	}

	sent := 0
	for _, u := range targets {
		if _, err := h.api.Send(tgbotapi.NewMessage(u.ChatID, text)); err != nil {
			h.logger.Error("broadcast send failed", "error", err, "chat_id", u.ChatID)
			continue
		}
		sent++
	}
	h.sendText(chatID, fmt.Sprintf("Broadcast sent to %d of %d users.", sent, len(targets)))
}

func (h *Handler) handlePhoto(ctx context.Context, msg *tgbotapi.Message, userID, chatID int64) {
	// Telegram lists photo sizes smallest first; take the largest.
	photo := msg.Photo[len(msg.Photo)-1]

	imageBytes, err := h.downloadFile(ctx, photo.FileID)
	if err != nil {
		h.logger.Error("photo download failed", "error", err, "user_id", userID)
		h.sendText(chatID, "Could not download that photo, please try again.")
		return
	}

	h.sessions.HandlePhoto(userID, chatID, imageBytes)

	h.sendText(chatID, fmt.Sprintf(
		"Got the photo!\n"+
			"Send the watermark text within %d seconds,\n"+
			"or the default '%s' will be used.",
		int(h.sessions.Timeout().Seconds()), h.sessions.DefaultText()))
}

func (h *Handler) handleText(ctx context.Context, msg *tgbotapi.Message, userID, chatID int64) {
	text := strings.TrimSpace(msg.Text)

	// Numeric-input flag takes priority over everything else.
	if h.sessions.PendingInput(userID) == session.InputTransparency {
		h.handleTransparencyInput(userID, chatID, text)
		return
	}

	if h.sessions.HandleText(ctx, userID, text) {
		return
	}

	// No pending session: ordinary chat, ignored.
}

func (h *Handler) handleTransparencyInput(userID, chatID int64, text string) {
	pct, err := strconv.Atoi(text)
	if err != nil {
		// Flag stays set so the user can retry.
		h.sendText(chatID, apperrors.GetUserMessage(apperrors.ErrInvalidPercent))
		return
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	if err := h.updateSettings(userID, func(ws *watermark.Settings) {
		ws.Alpha = watermark.AlphaFromPercent(pct)
	}); err != nil {
		h.logger.Error("failed to save transparency", "error", err, "user_id", userID)
		h.sendText(chatID, "Could not save the setting, please try again.")
		return
	}

	h.sessions.ClearInput(userID)
	h.sendText(chatID, fmt.Sprintf("Transparency set to %d%%.", pct))
}

func (h *Handler) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	url, err := h.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("resolve file url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build file request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch file: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file body: %w", err)
	}
	return data, nil
}

// DeliverPhoto implements session.Deliverer
func (h *Handler) DeliverPhoto(chatID int64, imageJPEG []byte, caption string) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("watermarked-%s.jpg", uuid.New().String()),
		Bytes: imageJPEG,
	})
	photo.Caption = caption
	if _, err := h.api.Send(photo); err != nil {
		h.logger.Error("failed to send photo", "error", err, "chat_id", chatID)
	}
}

// NotifyError implements session.Deliverer
func (h *Handler) NotifyError(chatID int64, err error) {
	h.logger.Warn("reporting failure to user",
		"error", err,
		"chat_id", chatID,
		"retryable", apperrors.IsRetryable(err),
	)
	h.sendText(chatID, apperrors.GetUserMessage(err))
}

func (h *Handler) sendText(chatID int64, text string) {
	h.send(tgbotapi.NewMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.api.Send(c); err != nil {
		h.logger.Error("failed to send message", "error", err)
	}
}
