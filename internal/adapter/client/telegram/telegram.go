package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MikeRez0/storykiosk/internal/adapter/config"
	"github.com/MikeRez0/storykiosk/internal/core/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const buyPrefix = "buy:"

// BuyCallbackData is the inline button payload that starts a purchase.
func BuyCallbackData(itemID string) string {
	return buyPrefix + itemID
}

// ParseBuyCallback returns the item id of a buy button payload.
func ParseBuyCallback(data string) (string, bool) {
	if !strings.HasPrefix(data, buyPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(data, buyPrefix)
	return id, id != ""
}

// Requester maps a Telegram chat to the opaque requester id.
func Requester(chatID int64) domain.Requester {
	return domain.Requester(strconv.FormatInt(chatID, 10))
}

func chatID(r domain.Requester) (int64, error) {
	id, err := strconv.ParseInt(string(r), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("requester %q is not a telegram chat: %w", r, err)
	}
	return id, nil
}

// Notifier sends messages through the Telegram Bot API.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	logger *zap.Logger
}

func NewNotifier(conf *config.Telegram, httpClient *http.Client, log *zap.Logger) (*Notifier, error) {
	return NewNotifierWithEndpoint(conf, tgbotapi.APIEndpoint, httpClient, log)
}

func NewNotifierWithEndpoint(conf *config.Telegram, endpoint string, httpClient *http.Client, log *zap.Logger,
) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPIWithClient(conf.Token, endpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("error connecting telegram bot: %w", err)
	}
	log.Info("Telegram bot authorized", zap.String("username", bot.Self.UserName))
	return &Notifier{bot: bot, logger: log}, nil
}

// RegisterWebhook points Telegram at url, replacing any previous webhook.
func (n *Notifier) RegisterWebhook(url string) error {
	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return fmt.Errorf("error building webhook: %w", err)
	}
	_, err = n.bot.Request(wh)
	if err != nil {
		return fmt.Errorf("error setting webhook: %w", err)
	}
	return nil
}

// AnswerCallback acknowledges a button press so the client stops its spinner.
func (n *Notifier) AnswerCallback(callbackID, text string) error {
	_, err := n.bot.Request(tgbotapi.NewCallback(callbackID, text))
	return err
}

func (n *Notifier) SendText(ctx context.Context, to domain.Requester, text string) error {
	id, err := chatID(to)
	if err != nil {
		return err
	}
	return n.send(ctx, tgbotapi.NewMessage(id, text))
}

func (n *Notifier) SendFile(ctx context.Context, to domain.Requester, file *domain.File) error {
	id, err := chatID(to)
	if err != nil {
		return err
	}
	return n.send(ctx, tgbotapi.NewDocument(id, tgbotapi.FileBytes{Name: file.Name, Bytes: file.Content}))
}

func (n *Notifier) SendMenu(ctx context.Context, to domain.Requester, text string, options []domain.MenuOption) error {
	id, err := chatID(to)
	if err != nil {
		return err
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(options))
	for _, o := range options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(o.Label, BuyCallbackData(o.ItemID))))
	}
	msg := tgbotapi.NewMessage(id, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	return n.send(ctx, msg)
}

// send gives up early on an expired context; the bot client itself is bounded
// by the http.Client timeout.
func (n *Notifier) send(ctx context.Context, c tgbotapi.Chattable) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := n.bot.Send(c)
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
