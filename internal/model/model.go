// Package model содержит доменные сущности сервиса Gold Clean.
package model

import "time"

// Service представляет основную услугу уборки из каталога.
// При SqmBased значимы площадь и цена за кв.м, иначе — комнаты и санузлы.
// Все цены хранятся в грошах (1/100 злотого).
type Service struct {
	ID                  int64
	Name                string
	Slug                string
	ShortDescription    string
	BasePrice           int64
	PricePerRoom        int64
	PricePerBathroom    int64
	PricePerSqm         int64
	BaseDurationMinutes int
	SqmBased            bool
	WindowService       bool
	DisplayOrder        int
	Active              bool
}

// AdditionalService представляет дополнительную услугу из каталога.
type AdditionalService struct {
	ID              int64
	Name            string
	Price           int64
	DurationMinutes int
	QuantityBased   bool
	ForKitchen      bool
	DisplayOrder    int
	Active          bool
}

// City представляет город обслуживания с надбавкой за выезд.
type City struct {
	ID             int64
	Name           string
	DeliveryCharge int64
}

// Frequency описывает периодичность уборки.
type Frequency string

const (
	FrequencyOneTime  Frequency = "one_time"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyBiWeekly Frequency = "bi_weekly"
	FrequencyWeekly   Frequency = "weekly"
)

// OrderStatus описывает статус выполнения заказа.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCanceled   OrderStatus = "canceled"
)

// Terminal сообщает, является ли статус конечным.
// Из конечного статуса переходы запрещены.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCanceled
}

// PaymentMethod описывает способ оплаты заказа.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
)

// PaymentStatus описывает статус оплаты заказа.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// ServiceSnapshot хранит копию дополнительной услуги на момент расчёта.
// Снимок отвязан от каталога: последующие изменения цен не влияют на заказ.
type ServiceSnapshot struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// OrderDraft — черновик заказа, живущий в сессии посетителя.
// Перезаписывается при каждом пересчёте и потребляется ровно один раз
// при создании заказа.
type OrderDraft struct {
	ServiceID       int64             `json:"service_id"`
	ServiceName     string            `json:"service_name"`
	SqmBased        bool              `json:"is_sqm_based"`
	WindowService   bool              `json:"is_window_service"`
	Sqm             int               `json:"sqm"`
	RoomsCount      int               `json:"rooms_count"`
	BathroomsCount  int               `json:"bathrooms_count"`
	WindowCount     int               `json:"window_count"`
	Additional      []ServiceSnapshot `json:"additional_services_details"`
	DurationMinutes int               `json:"estimated_duration_minutes"`
	BringVacuum     bool              `json:"bring_vacuum"`
	PrivateHouse    bool              `json:"is_private_house"`
	Frequency       Frequency         `json:"frequency"`
	TotalPrice      int64             `json:"total_price"`
}

// Address описывает адрес проведения уборки.
type Address struct {
	Street          string
	PostalCode      string
	BuildingNumber  string
	ApartmentNumber string
	Entrance        string
	Floor           string
	IntercomCode    string
}

// Order представляет оформленный заказ на уборку.
// Итоговая цена фиксируется при создании и не пересчитывается молча;
// её меняет только явное редактирование владельцем.
type Order struct {
	ID                int64
	UserID            *int64
	ServiceID         int64
	ServiceName       string
	RoomsCount        int
	BathroomsCount    int
	Sqm               int
	WindowCount       int
	Additional        []ServiceSnapshot
	TotalPrice        int64
	DeliveryCharge    int64
	Frequency         Frequency
	BringVacuum       bool
	PrivateHouse      bool
	DurationMinutes   int
	CustomerName      string
	CustomerPhone     string
	CustomerEmail     string
	CityID            int64
	CityName          string
	Address           Address
	CleaningAt        time.Time
	Comments          string
	Status            OrderStatus
	PaymentMethod     PaymentMethod
	PaymentStatus     PaymentStatus
	CheckoutSessionID string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// User представляет зарегистрированного пользователя сайта.
type User struct {
	ID           int64
	Login        string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Profile хранит накопленные штрафы и признак нового клиента.
// Создаётся в одной транзакции с пользователем. Баланс штрафов
// списывается в ноль и добавляется к следующему заказу при его создании.
type Profile struct {
	UserID                   int64
	PenaltyBalance           int64
	NewClient                bool
	FirstOrderDiscountUsedAt *time.Time
	UpdatedAt                time.Time
}

// Review представляет отзыв клиента. Новые отзывы неактивны до модерации.
type Review struct {
	ID           int64
	AuthorName   string
	Text         string
	Rating       int
	Active       bool
	DisplayOrder int
	ShowDate     bool
	CreatedAt    time.Time
}
