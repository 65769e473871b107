package services

import (
	"context"
	"fmt"
	"strings"

	"ShopOrder/models"

	"github.com/rs/zerolog/log"
)

const orderHeader = "【新訂單】"

type OrderService struct {
	Messenger Messenger
}

func NewOrderService(m Messenger) *OrderService {
	return &OrderService{Messenger: m}
}

// Submit formats the order and pushes it to the shop.
func (s *OrderService) Submit(ctx context.Context, order models.Order) error {
	return s.Forward(ctx, FormatOrder(order))
}

// Forward pushes an already formatted order text.
func (s *OrderService) Forward(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: order text is empty", ErrInvalidInput)
	}
	if err := s.Messenger.PushText(ctx, text); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("forward order")
		return err
	}
	return nil
}

// FormatOrder renders the order as the text the shop reads in LINE.
func FormatOrder(order models.Order) string {
	var b strings.Builder

	b.WriteString(orderHeader + "\n")
	b.WriteString("名稱：" + order.Customer.Name + "\n")
	if order.Customer.Phone != "" {
		b.WriteString("電話：" + order.Customer.Phone + "\n")
	}
	if order.Customer.PickupTime != "" {
		b.WriteString("取餐時間：" + order.Customer.PickupTime + "\n")
	}
	b.WriteString("\n")

	for _, item := range order.Items {
		if item.Size != "" {
			fmt.Fprintf(&b, "%s (%s) x%d\n", item.Name, item.Size, item.Quantity)
		} else {
			fmt.Fprintf(&b, "%s x%d\n", item.Name, item.Quantity)
		}
	}
	b.WriteString("\n")

	seasoning := order.Seasoning
	b.WriteString("🌶️辣度：" + seasoning.Spiciness + "\n")
	if seasoning.Powder != "" && seasoning.Powder != PowderUnselected {
		b.WriteString("🧂粉類：" + seasoning.Powder + "\n")
	}
	if len(seasoning.Toppings) > 0 {
		b.WriteString("➕加料：" + strings.Join(seasoning.Toppings, "·") + "\n")
	}
	if seasoning.Notes != "" {
		b.WriteString("\n📝備註：" + seasoning.Notes + "\n")
	}
	b.WriteString("\n")

	b.WriteString("試算金額：$" + order.Total.String())

	return strings.TrimSpace(b.String())
}
