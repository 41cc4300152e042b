package http

import (
	"context"
	"errors"
	"strings"

	"github.com/MikeRez0/storykiosk/internal/adapter/client/telegram"
	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"github.com/MikeRez0/storykiosk/internal/core/port"
	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	replyUnknownCode  = "That code does not match any of your orders. Please check it and try again."
	replyPending      = "We have not received your payment yet. Please complete it on PayPal and send the code again."
	replyTooFast      = "Too many attempts. Please wait a minute and try again."
	replyItemGone     = "This story is no longer available."
	replyHelp         = "Send /start to see the stories, or /code <code> if your story did not arrive."
	replyCodeRequired = "Please send the code from your payment message, e.g. /code 5O190127TN364715T"
	replyError        = "Something went wrong. Please try again later."
	answerStarting    = "Creating your payment..."
)

// ChatReplier is the part of the chat client the handler talks back through.
type ChatReplier interface {
	SendText(ctx context.Context, to domain.Requester, text string) error
	AnswerCallback(callbackID, text string) error
}

// ChatHandler receives Telegram updates. Telegram redelivers anything not
// answered with 200, so every update is acknowledged once it was dispatched.
type ChatHandler struct {
	Handler
	service port.Service
	replier ChatReplier
	limiter *codeLimiter
}

func NewChatHandler(service port.Service, replier ChatReplier, codeRate int, logger *zap.Logger) (*ChatHandler, error) {
	return &ChatHandler{
		Handler: *NewHandler(logger),
		service: service,
		replier: replier,
		limiter: newCodeLimiter(codeRate),
	}, nil
}

func (ch *ChatHandler) Update(ctx *gin.Context) {
	var update tgbotapi.Update
	err := ctx.ShouldBindJSON(&update)
	if err != nil {
		ch.handleError(ctx, domain.ErrBadRequest)
		return
	}

	switch {
	case update.CallbackQuery != nil:
		ch.callback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.Chat != nil:
		ch.message(ctx, update.Message)
	default:
		ch.logger.Debug("Update ignored", zap.Int("update", update.UpdateID))
	}

	ch.handleSuccess(ctx, nil)
}

func (ch *ChatHandler) callback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || cb.Message.Chat == nil {
		ch.answer(cb.ID, "")
		return
	}
	requester := telegram.Requester(cb.Message.Chat.ID)

	itemID, ok := telegram.ParseBuyCallback(cb.Data)
	if !ok {
		ch.answer(cb.ID, "")
		return
	}
	ch.answer(cb.ID, answerStarting)

	_, _, err := ch.service.BeginPurchase(ctx, requester, itemID)
	switch {
	case err == nil, errors.Is(err, domain.ErrPaymentInitiationFailed):
	case errors.Is(err, domain.ErrCatalogMiss):
		ch.reply(ctx, requester, replyItemGone)
	default:
		ch.logger.Error("Begin purchase", zap.String("requester", string(requester)), zap.Error(err))
		ch.reply(ctx, requester, replyError)
	}
}

func (ch *ChatHandler) message(ctx context.Context, msg *tgbotapi.Message) {
	requester := telegram.Requester(msg.Chat.ID)

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			err := ch.service.ShowCatalog(ctx, requester)
			if err != nil {
				ch.logger.Error("Show catalog", zap.String("requester", string(requester)), zap.Error(err))
			}
		case "code":
			code := strings.TrimSpace(msg.CommandArguments())
			if code == "" {
				ch.reply(ctx, requester, replyCodeRequired)
				return
			}
			ch.code(ctx, requester, code)
		default:
			ch.reply(ctx, requester, replyHelp)
		}
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" || strings.ContainsAny(text, " \n") {
		ch.reply(ctx, requester, replyHelp)
		return
	}
	ch.code(ctx, requester, text)
}

func (ch *ChatHandler) code(ctx context.Context, requester domain.Requester, code string) {
	if !ch.limiter.Allow(requester) {
		ch.reply(ctx, requester, replyTooFast)
		return
	}

	_, err := ch.service.ConfirmCode(ctx, requester, code)
	switch {
	case err == nil,
		errors.Is(err, domain.ErrCaptureFailed),
		errors.Is(err, domain.ErrFetchFailed),
		errors.Is(err, domain.ErrDeliveryFailed):
	case errors.Is(err, domain.ErrInvalidConfirmation):
		ch.reply(ctx, requester, replyUnknownCode)
	case errors.Is(err, domain.ErrPaymentPending):
		ch.reply(ctx, requester, replyPending)
	default:
		ch.logger.Error("Confirm code", zap.String("requester", string(requester)), zap.Error(err))
		ch.reply(ctx, requester, replyError)
	}
}

func (ch *ChatHandler) reply(ctx context.Context, to domain.Requester, text string) {
	err := ch.replier.SendText(ctx, to, text)
	if err != nil {
		ch.logger.Warn("Reply", zap.String("requester", string(to)), zap.Error(err))
	}
}

func (ch *ChatHandler) answer(callbackID, text string) {
	err := ch.replier.AnswerCallback(callbackID, text)
	if err != nil {
		ch.logger.Warn("Answer callback", zap.String("callback", callbackID), zap.Error(err))
	}
}
