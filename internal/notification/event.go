// Package notification отвечает за уведомления клиентов и администратора
// о ключевых переходах заказа. Отправка никогда не блокирует успех заказа:
// сбои логируются и не всплывают к пользователю.
package notification

import (
	"fmt"
	"strings"

	"github.com/goldclean/goldclean-system/internal/model"
	"github.com/goldclean/goldclean-system/internal/pricing"
)

// Типы событий уведомлений.
const (
	TypeOrderConfirmed   = "order_confirmed"
	TypePaymentReceived  = "payment_received"
	TypeCleaningReminder = "cleaning_reminder"
)

// Event — сообщение о переходе заказа, достаточное для формирования письма
// без обращения к базе данных.
type Event struct {
	Type            string   `json:"type"`
	OrderID         int64    `json:"order_id"`
	ServiceName     string   `json:"service_name"`
	TotalPrice      float64  `json:"total_price"`
	CustomerName    string   `json:"customer_name"`
	CustomerEmail   string   `json:"customer_email"`
	CustomerPhone   string   `json:"customer_phone"`
	CleaningDate    string   `json:"cleaning_date"`
	CleaningTime    string   `json:"cleaning_time"`
	Address         string   `json:"address"`
	FullAddress     string   `json:"full_address"`
	Comments        string   `json:"comments"`
	DurationMinutes int      `json:"duration_minutes"`
	Additional      []string `json:"additional_services"`
	DaysBefore      int      `json:"days_before,omitempty"`
}

// NewEvent собирает событие уведомления из заказа.
func NewEvent(eventType string, o *model.Order) Event {
	address := fmt.Sprintf("%s %s", o.Address.Street, o.Address.BuildingNumber)
	if o.Address.ApartmentNumber != "" {
		address += ", кв. " + o.Address.ApartmentNumber
	}
	address += fmt.Sprintf(", %s, %s", o.Address.PostalCode, o.CityName)

	full := address
	if o.Address.Entrance != "" {
		full += ", подъезд " + o.Address.Entrance
	}
	if o.Address.Floor != "" {
		full += ", этаж " + o.Address.Floor
	}
	if o.Address.IntercomCode != "" {
		full += ", домофон " + o.Address.IntercomCode
	}

	names := make([]string, 0, len(o.Additional))
	for _, s := range o.Additional {
		name := s.Name
		if s.Quantity > 1 {
			name += fmt.Sprintf(" x %d", s.Quantity)
		}
		names = append(names, name)
	}

	return Event{
		Type:            eventType,
		OrderID:         o.ID,
		ServiceName:     o.ServiceName,
		TotalPrice:      float64(o.TotalPrice) / 100,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		CleaningDate:    o.CleaningAt.Format("02.01.2006"),
		CleaningTime:    o.CleaningAt.Format("15:04"),
		Address:         address,
		FullAddress:     full,
		Comments:        o.Comments,
		DurationMinutes: o.DurationMinutes,
		Additional:      names,
	}
}

// ClientMessage формирует письмо клиенту для события.
func (e Event) ClientMessage() (subject, body string) {
	switch e.Type {
	case TypePaymentReceived:
		subject = fmt.Sprintf("Оплата заказа №%d на сайте Gold Clean получена", e.OrderID)
	case TypeCleaningReminder:
		if e.DaysBefore == 0 {
			subject = "Напоминание: уборка сегодня!"
		} else {
			subject = fmt.Sprintf("Напоминание об уборке через %d дня", e.DaysBefore)
		}
	default:
		subject = fmt.Sprintf("Ваш заказ №%d на сайте Gold Clean принят", e.OrderID)
	}

	b := strings.Builder{}
	fmt.Fprintf(&b, "Здравствуйте, %s!\n\n", e.CustomerName)
	switch e.Type {
	case TypePaymentReceived:
		fmt.Fprintf(&b, "Мы получили оплату по вашему заказу №%d.\n", e.OrderID)
	case TypeCleaningReminder:
		fmt.Fprintf(&b, "Напоминаем о предстоящей уборке по заказу №%d.\n", e.OrderID)
	default:
		fmt.Fprintf(&b, "Спасибо за ваш заказ! Мы получили вашу заявку №%d и скоро свяжемся с вами для подтверждения всех деталей.\n", e.OrderID)
	}
	b.WriteString("\n**Детали вашего заказа:**\n")
	fmt.Fprintf(&b, "  Услуга: %s\n", e.ServiceName)
	fmt.Fprintf(&b, "  Итоговая стоимость: %.2f zł\n", e.TotalPrice)
	fmt.Fprintf(&b, "  Желаемая дата и время: %s в %s\n", e.CleaningDate, e.CleaningTime)
	fmt.Fprintf(&b, "  Адрес: %s\n", e.Address)
	if len(e.Additional) > 0 {
		fmt.Fprintf(&b, "  Дополнительные услуги: %s\n", strings.Join(e.Additional, ", "))
	}
	b.WriteString("\nС уважением,\nКоманда Gold Clean\n")

	return subject, b.String()
}

// AdminMessage формирует письмо администратору для события.
func (e Event) AdminMessage() (subject, body string) {
	switch e.Type {
	case TypePaymentReceived:
		subject = fmt.Sprintf("Заказ №%d оплачен картой", e.OrderID)
	default:
		subject = fmt.Sprintf("Новый заказ №%d на сайте Gold Clean!", e.OrderID)
	}

	b := strings.Builder{}
	fmt.Fprintf(&b, "Поступил заказ №%d.\n\n", e.OrderID)
	b.WriteString("**Данные клиента:**\n")
	fmt.Fprintf(&b, "  Имя: %s\n", e.CustomerName)
	fmt.Fprintf(&b, "  Email: %s\n", e.CustomerEmail)
	fmt.Fprintf(&b, "  Телефон: %s\n", e.CustomerPhone)
	b.WriteString("\n**Детали заказа:**\n")
	fmt.Fprintf(&b, "  Услуга: %s\n", e.ServiceName)
	fmt.Fprintf(&b, "  Итоговая стоимость: %.2f zł\n", e.TotalPrice)
	fmt.Fprintf(&b, "  Желаемая дата и время: %s в %s\n", e.CleaningDate, e.CleaningTime)
	fmt.Fprintf(&b, "  Адрес: %s\n", e.FullAddress)
	comments := e.Comments
	if comments == "" {
		comments = "Нет"
	}
	fmt.Fprintf(&b, "  Комментарии: %s\n", comments)
	if e.DurationMinutes > 0 {
		fmt.Fprintf(&b, "  Примерная длительность: %s\n", pricing.FormatDuration(e.DurationMinutes))
	}
	if len(e.Additional) > 0 {
		fmt.Fprintf(&b, "  Дополнительные услуги: %s\n", strings.Join(e.Additional, ", "))
	}
	b.WriteString("\nПожалуйста, свяжитесь с клиентом для подтверждения заказа.\n")

	return subject, b.String()
}
