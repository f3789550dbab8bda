package telegram

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"factory-backend/internal/dialog"
	"factory-backend/internal/metrics"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const callbackSelectPrefix = "sel:"
const callbackCancel = "cancel"

// Bot is the transport adapter. It long-polls Telegram, translates
// updates into dialog events and renders the replies that come back.
type Bot struct {
	api     *tgbotapi.BotAPI
	machine *dialog.Machine
	timeout int
}

func NewBot(token string, pollTimeout int, machine *dialog.Machine) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	log.Printf("[Bot] authorized as @%s", api.Self.UserName)
	return &Bot{api: api, machine: machine, timeout: pollTimeout}, nil
}

// SetMachine wires the dialog engine after construction. The bot is
// also the notifier's sender, so it has to exist before the machine.
func (b *Bot) SetMachine(machine *dialog.Machine) {
	b.machine = machine
}

// Run consumes updates until ctx is cancelled. Events are handled
// strictly in arrival order.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.timeout
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Bot] recovered from panic: %v", r)
		}
	}()

	ev, chatID, ok := b.buildEvent(update)
	if !ok {
		return
	}

	if update.CallbackQuery != nil {
		// Ack so the client stops the spinner.
		if _, err := b.api.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, "")); err != nil {
			log.Printf("[Bot] callback ack: %v", err)
		}
	}

	start := time.Now()
	replies := b.machine.Handle(ctx, ev)
	metrics.EventsTotal.WithLabelValues(ev.Action.String()).Inc()
	metrics.EventDuration.WithLabelValues(ev.Action.String()).Observe(time.Since(start).Seconds())

	for _, reply := range replies {
		b.deliver(chatID, reply)
	}
}

func (b *Bot) buildEvent(update tgbotapi.Update) (dialog.Event, int64, bool) {
	switch {
	case update.CallbackQuery != nil:
		cq := update.CallbackQuery
		if cq.Message == nil {
			return dialog.Event{}, 0, false
		}
		ev := dialog.Event{
			Sender:      cq.Message.Chat.ID,
			SenderLogin: cq.From.UserName,
		}
		data := cq.Data
		switch {
		case data == callbackCancel:
			ev.Action = dialog.ActionCancel
		case strings.HasPrefix(data, callbackSelectPrefix):
			idx, err := strconv.Atoi(strings.TrimPrefix(data, callbackSelectPrefix))
			if err != nil {
				return dialog.Event{}, 0, false
			}
			ev.Action = dialog.ActionSelectEntry
			ev.Index = idx
		default:
			return dialog.Event{}, 0, false
		}
		return ev, cq.Message.Chat.ID, true

	case update.Message != nil:
		msg := update.Message
		ev := dialog.Event{
			Sender:      msg.Chat.ID,
			SenderLogin: msg.From.UserName,
		}
		text := msg.Text
		switch {
		case msg.IsCommand() && msg.Command() == "start":
			ev.Action = dialog.ActionStart
		default:
			if action, ok := resolveAction(text); ok {
				ev.Action = action
			} else {
				ev.Action = dialog.ActionText
				ev.Text = strings.TrimSpace(text)
			}
		}
		return ev, msg.Chat.ID, true
	}
	return dialog.Event{}, 0, false
}

func (b *Bot) deliver(chatID int64, reply dialog.Reply) {
	if reply.Document != nil {
		doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
			Name:  reply.Document.Name,
			Bytes: reply.Document.Bytes,
		})
		if _, err := b.api.Send(doc); err != nil {
			log.Printf("[Bot] send document to %d: %v", chatID, err)
		}
		return
	}

	msg := tgbotapi.NewMessage(chatID, reply.Text)
	msg.ReplyMarkup = b.markup(reply.Options)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("[Bot] send message to %d: %v", chatID, err)
	}
}

// markup renders the offered options. Entry selections become inline
// buttons carrying the list index; everything else is a reply keyboard.
func (b *Bot) markup(options []dialog.Option) interface{} {
	if len(options) == 0 {
		return tgbotapi.NewRemoveKeyboard(false)
	}

	hasSelect := false
	for _, opt := range options {
		if opt.Action == dialog.ActionSelectEntry {
			hasSelect = true
			break
		}
	}
	if hasSelect {
		return b.inlineMarkup(options)
	}
	return b.replyMarkup(options)
}

func (b *Bot) inlineMarkup(options []dialog.Option) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(options))
	for _, opt := range options {
		var btn tgbotapi.InlineKeyboardButton
		switch opt.Action {
		case dialog.ActionSelectEntry:
			data := callbackSelectPrefix + strconv.Itoa(opt.Index)
			btn = tgbotapi.NewInlineKeyboardButtonData(opt.Label, data)
		case dialog.ActionCancel:
			btn = tgbotapi.NewInlineKeyboardButtonData(labelFor(dialog.ActionCancel), callbackCancel)
		default:
			continue
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(btn))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) replyMarkup(options []dialog.Option) tgbotapi.ReplyKeyboardMarkup {
	const perRow = 2
	var rows [][]tgbotapi.KeyboardButton
	var row []tgbotapi.KeyboardButton
	for _, opt := range options {
		label := opt.Label
		if opt.Action != dialog.ActionText {
			label = labelFor(opt.Action)
		}
		row = append(row, tgbotapi.NewKeyboardButton(label))
		if len(row) == perRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	markup := tgbotapi.NewReplyKeyboard(rows...)
	markup.ResizeKeyboard = true
	return markup
}

// Send implements notify.Sender for admin fan-out.
func (b *Bot) Send(identity int64, text string) error {
	msg := tgbotapi.NewMessage(identity, text)
	_, err := b.api.Send(msg)
	return err
}
