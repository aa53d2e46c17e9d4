package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/biofact005-rgb/neetquiz/internal/config"
	"github.com/biofact005-rgb/neetquiz/internal/model"
	usecase_content "github.com/biofact005-rgb/neetquiz/internal/usecase/content"
)

// ContentUploader is the slice of the content usecase the bot needs.
type ContentUploader interface {
	UploadTXT(ctx context.Context, content string) (model.Chapter, error)
}

// Bot is the Telegram front end: /start hands out the web-app button,
// and the admin uploads question files as plain documents.
type Bot struct {
	bot     *tele.Bot
	content ContentUploader
	cfg     config.TelegramBot

	logger *slog.Logger
}

type BotOption func(*Bot)

func WithLogger(logger *slog.Logger) BotOption {
	return func(b *Bot) {
		b.logger = logger
	}
}

func New(cfg config.TelegramBot, content ContentUploader, opts ...BotOption) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	teleBot, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	b := &Bot{
		bot:     teleBot,
		content: content,
		cfg:     cfg,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.bot.Handle("/start", b.handleStart)
	b.bot.Handle(tele.OnDocument, b.handleDocument)

	return b, nil
}

// Start blocks on long polling; run it in its own goroutine.
func (b *Bot) Start() {
	b.logger.Info("telegram bot polling started")
	b.bot.Start()
}

func (b *Bot) Stop() {
	b.bot.Stop()
}

func (b *Bot) handleStart(c tele.Context) error {
	menu := &tele.ReplyMarkup{}
	btnApp := menu.WebApp("🧬 OPEN NEET PRO", &tele.WebApp{URL: b.cfg.WebAppURL})
	btnChannel := menu.URL("📢 Join Channel", b.cfg.ChannelURL)
	menu.Inline(menu.Row(btnApp), menu.Row(btnChannel))

	return c.Send("Welcome Future Doctor! 🩺\nYour progress is safe on the Cloud ☁️.", menu)
}

func (b *Bot) handleDocument(c tele.Context) error {
	if c.Sender() == nil || c.Sender().ID != b.cfg.AdminID {
		return nil
	}

	doc := c.Message().Document
	reader, err := b.bot.File(&doc.File)
	if err != nil {
		b.logger.Error("failed to download document",
			"file", doc.FileName,
			"error", err.Error())
		return c.Send("⚠️ Could not download the file, try again.")
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return c.Send("⚠️ Could not read the file, try again.")
	}

	chapter, err := b.content.UploadTXT(context.Background(), string(content))
	if err != nil {
		if errors.Is(err, usecase_content.ErrInvalidHeader) {
			return c.Send("❌ Header Missing! Format: SOURCE | TYPE | CHAPTER")
		}
		b.logger.Error("failed to store chapter",
			"file", doc.FileName,
			"error", err.Error())
		return c.Send("⚠️ Could not save the chapter, try again.")
	}

	b.logger.Info("chapter uploaded",
		"source", chapter.Source,
		"type", chapter.Type,
		"chapter", chapter.Name,
		"questions", len(chapter.Questions))

	return c.Send(fmt.Sprintf("☁️ Saved to Cloud!\n📂 %s > %s > %s\n📝 Qs: %d",
		chapter.Source, chapter.Type, chapter.Name, len(chapter.Questions)))
}
