package telegram

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/brandgen/internal/config"
	"github.com/sandevgo/brandgen/internal/service/studio"
	"github.com/sandevgo/brandgen/pkg/conv"
	"github.com/sandevgo/brandgen/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

// Bot lets the owner request on-brand copy and visuals from chat: plain
// text becomes a copy brief, /visual renders a campaign image.
type Bot struct {
	bot     *tele.Bot
	cfg     *config.TelegramConfig
	studio  *studio.Studio
	ownerID int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	studioSvc *studio.Studio,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:     b,
		cfg:     cfg,
		studio:  studioSvc,
		ownerID: cfg.OwnerID,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle("/visual", bot.handleVisual)
	b.Handle(tele.OnText, bot.handleCopy)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleCopy(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	sessionID := fmt.Sprintf("telegram-%d", c.Chat().ID)

	_ = c.Notify(tele.Typing)

	asset, err := b.studio.GenerateCopy(ctx, sessionID, c.Text())
	if err != nil {
		logger.Error().Err(err).Msg("copy generation failed")
		return c.Send(fmt.Sprintf("error: %v", err))
	}

	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(asset.Content)))
	if html == "" {
		return nil
	}
	if err := c.Send(html, tele.ModeHTML); err != nil {
		logger.Error().Err(err).Msg("failed to send telegram message")
	}
	return nil
}

func (b *Bot) handleVisual(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	sessionID := fmt.Sprintf("telegram-%d", c.Chat().ID)

	brief := strings.TrimSpace(c.Message().Payload)
	if brief == "" {
		return c.Send("usage: /visual <campaign brief>")
	}

	_ = c.Notify(tele.UploadingPhoto)

	asset, err := b.studio.GenerateVisual(ctx, sessionID, brief)
	if err != nil {
		logger.Error().Err(err).Msg("visual generation failed")
		return c.Send(fmt.Sprintf("error: %v", err))
	}

	photo := &tele.Photo{File: tele.FromReader(bytes.NewReader(asset.Blob))}
	if err := c.Send(photo); err != nil {
		logger.Error().Err(err).Msg("failed to send telegram photo")
	}
	return nil
}
