// Package pricing реализует расчёт стоимости и длительности уборки.
// Все функции чистые: расчёт детерминирован и не имеет побочных эффектов.
package pricing

import (
	"fmt"
	"strings"

	"github.com/goldclean/goldclean-system/internal/model"
)

// Цены — в грошах, длительность — в минутах.
const (
	AdditionalRoomDurationMinutes     = 30
	AdditionalBathroomDurationMinutes = 60

	privateHouseMultiplierPct = 120
)

// Скидки за периодичность в процентах от суммы после надбавки за частный дом.
const (
	discountMonthlyPct  = 10
	discountBiWeeklyPct = 15
	discountWeeklyPct   = 20
)

// DiscountPercent возвращает размер скидки для периодичности уборки.
func DiscountPercent(f model.Frequency) int64 {
	switch f {
	case model.FrequencyMonthly:
		return discountMonthlyPct
	case model.FrequencyBiWeekly:
		return discountBiWeeklyPct
	case model.FrequencyWeekly:
		return discountWeeklyPct
	default:
		return 0
	}
}

// Selection описывает выбранную дополнительную услугу с количеством.
type Selection struct {
	Service  model.AdditionalService
	Quantity int
}

// Input содержит параметры расчёта стоимости основной уборки.
type Input struct {
	Rooms        int
	Bathrooms    int
	Sqm          int
	Additional   []Selection
	BringVacuum  bool
	PrivateHouse bool
	Frequency    model.Frequency
	VacuumPrice  int64
}

// Details содержит разбивку расчёта для ответа клиенту.
type Details struct {
	BaseServiceName         string   `json:"base_service_name"`
	BasePrice               float64  `json:"base_price"`
	SqmBased                bool     `json:"is_sqm_based"`
	Sqm                     int      `json:"sqm,omitempty"`
	SqmPrice                float64  `json:"sqm_price,omitempty"`
	RoomsCount              int      `json:"rooms_count,omitempty"`
	BathroomsCount          int      `json:"bathrooms_count,omitempty"`
	RoomsBathroomsPrice     float64  `json:"rooms_bathrooms_price,omitempty"`
	AdditionalServicesNames []string `json:"additional_services_names"`
	AdditionalServicesPrice float64  `json:"additional_services_price"`
	VacuumPrice             float64  `json:"vacuum_price"`
	HouseMultiplier         float64  `json:"house_multiplier"`
	FormattedDuration       string   `json:"formatted_duration"`
}

// Quote — результат расчёта стоимости.
type Quote struct {
	Total           int64
	Subtotal        int64
	Discount        int64
	DurationMinutes int
	Snapshots       []model.ServiceSnapshot
	Details         Details
}

// Calculate вычисляет стоимость уборки по фиксированному порядку шагов:
// база, площадь либо комнаты/санузлы, дополнительные услуги, пылесос,
// надбавка за частный дом и в конце скидка за периодичность.
// Порядок важен: множитель применяется до скидки.
func Calculate(svc model.Service, in Input) Quote {
	total := svc.BasePrice
	duration := svc.BaseDurationMinutes

	details := Details{
		BaseServiceName: svc.Name,
		BasePrice:       minorToMajor(svc.BasePrice),
		SqmBased:        svc.SqmBased,
	}

	if svc.SqmBased {
		sqm := max(0, in.Sqm)
		sqmPrice := int64(sqm) * svc.PricePerSqm
		total += sqmPrice
		details.Sqm = sqm
		details.SqmPrice = minorToMajor(sqmPrice)
	} else {
		rooms := in.Rooms
		if rooms <= 0 {
			rooms = 1
		}
		bathrooms := in.Bathrooms
		if bathrooms <= 0 {
			bathrooms = 1
		}
		roomsPrice := int64(max(0, rooms-1)) * svc.PricePerRoom
		bathroomsPrice := int64(max(0, bathrooms-1)) * svc.PricePerBathroom
		total += roomsPrice + bathroomsPrice
		duration += max(0, rooms-1)*AdditionalRoomDurationMinutes +
			max(0, bathrooms-1)*AdditionalBathroomDurationMinutes
		details.RoomsCount = rooms
		details.BathroomsCount = bathrooms
		details.RoomsBathroomsPrice = minorToMajor(roomsPrice + bathroomsPrice)
	}

	var additionalPrice int64
	names := make([]string, 0, len(in.Additional))
	snapshots := make([]model.ServiceSnapshot, 0, len(in.Additional))
	for _, sel := range in.Additional {
		quantity := sel.Quantity
		if !sel.Service.QuantityBased || quantity < 1 {
			quantity = 1
		}
		itemPrice := sel.Service.Price * int64(quantity)
		additionalPrice += itemPrice
		duration += sel.Service.DurationMinutes * quantity

		name := sel.Service.Name
		if quantity > 1 {
			name += fmt.Sprintf(" (x%d)", quantity)
		}
		names = append(names, name)

		snapshots = append(snapshots, model.ServiceSnapshot{
			ID:       sel.Service.ID,
			Name:     sel.Service.Name,
			Price:    sel.Service.Price,
			Quantity: quantity,
		})
	}
	total += additionalPrice
	details.AdditionalServicesNames = names
	details.AdditionalServicesPrice = minorToMajor(additionalPrice)

	if in.BringVacuum {
		total += in.VacuumPrice
		details.VacuumPrice = minorToMajor(in.VacuumPrice)
	}

	details.HouseMultiplier = 1.0
	if in.PrivateHouse {
		total = total * privateHouseMultiplierPct / 100
		details.HouseMultiplier = float64(privateHouseMultiplierPct) / 100
	}

	discount := total * DiscountPercent(in.Frequency) / 100

	details.FormattedDuration = FormatDuration(duration)

	return Quote{
		Total:           total - discount,
		Subtotal:        total,
		Discount:        discount,
		DurationMinutes: duration,
		Snapshots:       snapshots,
		Details:         details,
	}
}

// CalculateWindows считает стоимость мытья окон: число окон умножается на
// цену за окно (переиспользованное поле PricePerSqm). Остальные модификаторы
// к оконной услуге не применяются. Неположительное число окон трактуется как
// одно; вторым значением возвращается учтённое число окон.
func CalculateWindows(svc model.Service, windowCount int) (total int64, count int) {
	if windowCount <= 0 {
		windowCount = 1
	}
	return int64(windowCount) * svc.PricePerSqm, windowCount
}

// FormatDuration возвращает человекочитаемую длительность уборки.
func FormatDuration(totalMinutes int) string {
	if totalMinutes < 1 {
		return "не указано"
	}

	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", hours, hourWord(hours)))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d мин", minutes))
	}
	return strings.Join(parts, " ")
}

func hourWord(hours int) string {
	switch {
	case hours == 1:
		return "час"
	case hours > 1 && hours < 5:
		return "часа"
	default:
		return "часов"
	}
}

func minorToMajor(v int64) float64 {
	return float64(v) / 100
}
