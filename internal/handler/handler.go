// Package handler содержит HTTP-обработчики API сервиса Gold Clean.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/goldclean/goldclean-system/internal/middleware"
	"github.com/goldclean/goldclean-system/internal/model"
	"github.com/goldclean/goldclean-system/internal/payment"
	"github.com/goldclean/goldclean-system/internal/pricing"
	"github.com/goldclean/goldclean-system/internal/repository"
	"github.com/goldclean/goldclean-system/internal/service"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	RegisterUser(ctx context.Context, login, email, password string) (int64, error)
	AuthenticateUser(ctx context.Context, login, password string) (int64, error)
	ListServices(ctx context.Context) ([]model.Service, error)
	ListAdditionalServices(ctx context.Context) ([]model.AdditionalService, error)
	ListCities(ctx context.Context) ([]model.City, error)
	CalculatePrice(ctx context.Context, sessionID string, req service.CalculateRequest) (*pricing.Quote, error)
	CalculateWindowPrice(ctx context.Context, sessionID string, serviceID int64, windowCount int) (*pricing.Quote, error)
	CreateOrder(ctx context.Context, sessionID string, userID *int64, form service.OrderForm) (*model.Order, error)
	GetOrder(ctx context.Context, orderID, userID int64) (*model.Order, error)
	GetOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error)
	EditOrder(ctx context.Context, orderID, userID int64, form service.EditForm) (*model.Order, error)
	GetCancelInfo(ctx context.Context, orderID, userID int64) (*service.CancelInfo, error)
	CancelOrder(ctx context.Context, orderID, userID int64) (*service.CancelInfo, error)
	CreateCheckoutSession(ctx context.Context, orderID int64, userID *int64) (*payment.CheckoutSession, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	SubmitReview(ctx context.Context, authorName, text string, rating int) (int64, error)
	ListReviews(ctx context.Context) ([]model.Review, error)
}

// Handler реализует HTTP-обработчики API сервиса Gold Clean.
type Handler struct {
	service           Service
	logger            *zap.Logger
	authMiddleware    *middleware.AuthMiddleware
	sessionMiddleware *middleware.SessionMiddleware
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger,
	auth *middleware.AuthMiddleware, session *middleware.SessionMiddleware) *Handler {
	return &Handler{
		service:           s,
		logger:            logger,
		authMiddleware:    auth,
		sessionMiddleware: session,
	}
}

// writeServiceError транслирует ошибку бизнес-логики в HTTP-статус.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, payment.ErrInvalidSignature):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrServiceNotFound),
		errors.Is(err, repository.ErrCityNotFound),
		errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	case errors.Is(err, service.ErrSessionExpired),
		errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrAlreadyPaid):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrUpstream):
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
	default:
		h.logger.Error(op, zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type credentialsRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// Register обрабатывает регистрацию нового пользователя.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	userID, err := h.service.RegisterUser(r.Context(), req.Login, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
			return
		}
		h.writeServiceError(w, err, "register user error")
		return
	}

	h.authMiddleware.SetAuthCookie(w, userID)
	w.WriteHeader(http.StatusOK)
}

// Login выполняет аутентификацию пользователя и устанавливает cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Login == "" || req.Password == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	userID, err := h.service.AuthenticateUser(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		h.writeServiceError(w, err, "login user error")
		return
	}

	h.authMiddleware.SetAuthCookie(w, userID)
	w.WriteHeader(http.StatusOK)
}

// Logout сбрасывает cookie авторизации.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authMiddleware.ClearAuthCookie(w)
	w.WriteHeader(http.StatusOK)
}

type serviceResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Slug             string  `json:"slug"`
	ShortDescription string  `json:"short_description"`
	BasePrice        float64 `json:"base_price"`
	PricePerRoom     float64 `json:"price_per_room"`
	PricePerBathroom float64 `json:"price_per_bathroom"`
	PricePerSqm      float64 `json:"price_per_sqm"`
	SqmBased         bool    `json:"is_sqm_based"`
	WindowService    bool    `json:"is_window_service"`
}

// GetServices возвращает каталог основных услуг.
func (h *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.ListServices(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "list services error")
		return
	}

	resp := make([]serviceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, serviceResponse{
			ID:               s.ID,
			Name:             s.Name,
			Slug:             s.Slug,
			ShortDescription: s.ShortDescription,
			BasePrice:        float64(s.BasePrice) / 100,
			PricePerRoom:     float64(s.PricePerRoom) / 100,
			PricePerBathroom: float64(s.PricePerBathroom) / 100,
			PricePerSqm:      float64(s.PricePerSqm) / 100,
			SqmBased:         s.SqmBased,
			WindowService:    s.WindowService,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

type additionalServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	QuantityBased   bool    `json:"is_quantity_based"`
	ForKitchen      bool    `json:"is_for_kitchen"`
}

// GetAdditionalServices возвращает каталог дополнительных услуг.
func (h *Handler) GetAdditionalServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.ListAdditionalServices(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "list additional services error")
		return
	}

	resp := make([]additionalServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, additionalServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Price:           float64(s.Price) / 100,
			DurationMinutes: s.DurationMinutes,
			QuantityBased:   s.QuantityBased,
			ForKitchen:      s.ForKitchen,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

type cityResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	DeliveryCharge float64 `json:"delivery_charge"`
}

// GetCities возвращает города обслуживания с надбавками за выезд.
func (h *Handler) GetCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.service.ListCities(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "list cities error")
		return
	}

	resp := make([]cityResponse, 0, len(cities))
	for _, c := range cities {
		resp = append(resp, cityResponse{
			ID:             c.ID,
			Name:           c.Name,
			DeliveryCharge: float64(c.DeliveryCharge) / 100,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

type additionalSelectionRequest struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

type calculateRequest struct {
	ServiceID    int64                        `json:"service_id"`
	Rooms        int                          `json:"rooms_count"`
	Bathrooms    int                          `json:"bathrooms_count"`
	Sqm          int                          `json:"sqm"`
	Additional   []additionalSelectionRequest `json:"additional_services"`
	BringVacuum  bool                         `json:"bring_vacuum_cleaner"`
	PrivateHouse bool                         `json:"is_private_house"`
	Frequency    string                       `json:"frequency"`
}

type calculateResponse struct {
	TotalPrice        float64         `json:"total_price"`
	BaseTotal         float64         `json:"base_total"`
	DiscountAmount    float64         `json:"discount_amount"`
	DurationMinutes   int             `json:"estimated_duration_minutes"`
	FormattedDuration string          `json:"formatted_duration"`
	Details           pricing.Details `json:"details"`
}

// Calculate рассчитывает стоимость уборки и сохраняет черновик в сессии.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	additional := make([]service.AdditionalSelection, 0, len(req.Additional))
	for _, a := range req.Additional {
		additional = append(additional, service.AdditionalSelection{ID: a.ID, Quantity: a.Quantity})
	}

	quote, err := h.service.CalculatePrice(r.Context(), sessionID, service.CalculateRequest{
		ServiceID:    req.ServiceID,
		Rooms:        req.Rooms,
		Bathrooms:    req.Bathrooms,
		Sqm:          req.Sqm,
		Additional:   additional,
		BringVacuum:  req.BringVacuum,
		PrivateHouse: req.PrivateHouse,
		Frequency:    model.Frequency(req.Frequency),
	})
	if err != nil {
		h.writeServiceError(w, err, "calculate price error")
		return
	}

	writeJSON(w, http.StatusOK, calculateResponse{
		TotalPrice:        float64(quote.Total) / 100,
		BaseTotal:         float64(quote.Subtotal) / 100,
		DiscountAmount:    float64(quote.Discount) / 100,
		DurationMinutes:   quote.DurationMinutes,
		FormattedDuration: quote.Details.FormattedDuration,
		Details:           quote.Details,
	})
}

type calculateWindowsRequest struct {
	ServiceID   int64 `json:"service_id"`
	WindowCount int   `json:"window_count"`
}

type calculateWindowsResponse struct {
	TotalPrice        float64 `json:"total_price"`
	PricePerWindow    float64 `json:"price_per_window"`
	WindowCount       int     `json:"window_count"`
	DurationMinutes   int     `json:"estimated_duration_minutes"`
	FormattedDuration string  `json:"formatted_duration"`
}

// CalculateWindows рассчитывает стоимость мытья окон.
func (h *Handler) CalculateWindows(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req calculateWindowsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	quote, err := h.service.CalculateWindowPrice(r.Context(), sessionID, req.ServiceID, req.WindowCount)
	if err != nil {
		h.writeServiceError(w, err, "calculate windows error")
		return
	}

	count := req.WindowCount
	if count <= 0 {
		count = 1
	}

	writeJSON(w, http.StatusOK, calculateWindowsResponse{
		TotalPrice:        float64(quote.Total) / 100,
		PricePerWindow:    float64(quote.Total) / float64(count) / 100,
		WindowCount:       count,
		DurationMinutes:   quote.DurationMinutes,
		FormattedDuration: quote.Details.FormattedDuration,
	})
}

type orderFormRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerEmail   string `json:"customer_email"`
	CityID          int64  `json:"city_id"`
	Street          string `json:"street"`
	PostalCode      string `json:"postal_code"`
	BuildingNumber  string `json:"building_number"`
	ApartmentNumber string `json:"apartment_number"`
	Entrance        string `json:"entrance"`
	Floor           string `json:"floor"`
	IntercomCode    string `json:"intercom_code"`
	CleaningDate    string `json:"cleaning_date"`
	CleaningTime    string `json:"cleaning_time"`
	Comments        string `json:"comments"`
	PaymentMethod   string `json:"payment_method"`
}

// parseCleaningAt собирает дату и время уборки из полей формы.
func parseCleaningAt(date, timeOfDay string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+timeOfDay, time.Local)
}

type orderResponse struct {
	ID              int64    `json:"id"`
	ServiceName     string   `json:"service_name"`
	RoomsCount      int      `json:"rooms_count,omitempty"`
	BathroomsCount  int      `json:"bathrooms_count,omitempty"`
	Sqm             int      `json:"sqm,omitempty"`
	WindowCount     int      `json:"window_count,omitempty"`
	Additional      []string `json:"additional_services"`
	TotalPrice      float64  `json:"total_price"`
	DeliveryCharge  float64  `json:"delivery_charge"`
	Frequency       string   `json:"frequency"`
	DurationMinutes int      `json:"estimated_duration_minutes"`
	CustomerName    string   `json:"customer_name"`
	City            string   `json:"city"`
	Street          string   `json:"street"`
	CleaningDate    string   `json:"cleaning_date"`
	CleaningTime    string   `json:"cleaning_time"`
	Comments        string   `json:"comments,omitempty"`
	Status          string   `json:"status"`
	PaymentMethod   string   `json:"payment_method"`
	PaymentStatus   string   `json:"payment_status"`
	CreatedAt       string   `json:"created_at"`
}

func toOrderResponse(o *model.Order) orderResponse {
	additional := make([]string, 0, len(o.Additional))
	for _, s := range o.Additional {
		additional = append(additional, s.Name)
	}

	return orderResponse{
		ID:              o.ID,
		ServiceName:     o.ServiceName,
		RoomsCount:      o.RoomsCount,
		BathroomsCount:  o.BathroomsCount,
		Sqm:             o.Sqm,
		WindowCount:     o.WindowCount,
		Additional:      additional,
		TotalPrice:      float64(o.TotalPrice) / 100,
		DeliveryCharge:  float64(o.DeliveryCharge) / 100,
		Frequency:       string(o.Frequency),
		DurationMinutes: o.DurationMinutes,
		CustomerName:    o.CustomerName,
		City:            o.CityName,
		Street:          o.Address.Street,
		CleaningDate:    o.CleaningAt.Format("2006-01-02"),
		CleaningTime:    o.CleaningAt.Format("15:04"),
		Comments:        o.Comments,
		Status:          string(o.Status),
		PaymentMethod:   string(o.PaymentMethod),
		PaymentStatus:   string(o.PaymentStatus),
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
	}
}

// CreateOrder оформляет заказ из черновика сессии.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req orderFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	cleaningAt, err := parseCleaningAt(req.CleaningDate, req.CleaningTime)
	if err != nil {
		http.Error(w, "invalid cleaning date or time", http.StatusBadRequest)
		return
	}

	var userID *int64
	if id, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		userID = &id
	}

	o, err := h.service.CreateOrder(r.Context(), sessionID, userID, service.OrderForm{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		CityID:        req.CityID,
		Address: model.Address{
			Street:          req.Street,
			PostalCode:      req.PostalCode,
			BuildingNumber:  req.BuildingNumber,
			ApartmentNumber: req.ApartmentNumber,
			Entrance:        req.Entrance,
			Floor:           req.Floor,
			IntercomCode:    req.IntercomCode,
		},
		CleaningAt:    cleaningAt,
		Comments:      req.Comments,
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		h.writeServiceError(w, err, "create order error")
		return
	}

	writeJSON(w, http.StatusCreated, toOrderResponse(o))
}

func orderIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// GetOrders возвращает список заказов текущего пользователя.
func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	orders, err := h.service.GetOrdersByUser(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err, "get orders error")
		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, toOrderResponse(&orders[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetOrder возвращает заказ текущего пользователя.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	orderID, err := orderIDFromURL(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	o, err := h.service.GetOrder(r.Context(), orderID, userID)
	if err != nil {
		h.writeServiceError(w, err, "get order error")
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

type editOrderRequest struct {
	Rooms        int                          `json:"rooms_count"`
	Bathrooms    int                          `json:"bathrooms_count"`
	Sqm          int                          `json:"sqm"`
	Additional   []additionalSelectionRequest `json:"additional_services"`
	BringVacuum  bool                         `json:"bring_vacuum_cleaner"`
	PrivateHouse bool                         `json:"is_private_house"`
	CleaningDate string                       `json:"cleaning_date"`
	CleaningTime string                       `json:"cleaning_time"`
	Comments     string                       `json:"comments"`
}

// EditOrder пересчитывает и сохраняет заказ текущего пользователя.
func (h *Handler) EditOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	orderID, err := orderIDFromURL(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var req editOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	cleaningAt, err := parseCleaningAt(req.CleaningDate, req.CleaningTime)
	if err != nil {
		http.Error(w, "invalid cleaning date or time", http.StatusBadRequest)
		return
	}

	additional := make([]service.AdditionalSelection, 0, len(req.Additional))
	for _, a := range req.Additional {
		additional = append(additional, service.AdditionalSelection{ID: a.ID, Quantity: a.Quantity})
	}

	o, err := h.service.EditOrder(r.Context(), orderID, userID, service.EditForm{
		Rooms:        req.Rooms,
		Bathrooms:    req.Bathrooms,
		Sqm:          req.Sqm,
		Additional:   additional,
		BringVacuum:  req.BringVacuum,
		PrivateHouse: req.PrivateHouse,
		CleaningAt:   cleaningAt,
		Comments:     req.Comments,
	})
	if err != nil {
		h.writeServiceError(w, err, "edit order error")
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

type cancelInfoResponse struct {
	OrderID        int64   `json:"order_id"`
	CleaningDate   string  `json:"cleaning_date"`
	CleaningTime   string  `json:"cleaning_time"`
	PenaltyApplies bool    `json:"penalty_applies"`
	PenaltyFee     float64 `json:"penalty_fee"`
}

func toCancelInfoResponse(info *service.CancelInfo) cancelInfoResponse {
	return cancelInfoResponse{
		OrderID:        info.OrderID,
		CleaningDate:   info.CleaningAt.Format("2006-01-02"),
		CleaningTime:   info.CleaningAt.Format("15:04"),
		PenaltyApplies: info.PenaltyApplies,
		PenaltyFee:     float64(info.PenaltyFee) / 100,
	}
}

// GetCancelInfo возвращает условия отмены заказа для подтверждающего экрана.
func (h *Handler) GetCancelInfo(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	orderID, err := orderIDFromURL(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	info, err := h.service.GetCancelInfo(r.Context(), orderID, userID)
	if err != nil {
		h.writeServiceError(w, err, "cancel info error")
		return
	}

	writeJSON(w, http.StatusOK, toCancelInfoResponse(info))
}

// CancelOrder отменяет заказ текущего пользователя.
func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	orderID, err := orderIDFromURL(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	info, err := h.service.CancelOrder(r.Context(), orderID, userID)
	if err != nil {
		h.writeServiceError(w, err, "cancel order error")
		return
	}

	writeJSON(w, http.StatusOK, toCancelInfoResponse(info))
}

type checkoutResponse struct {
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"redirect_url"`
}

// CreateCheckout создаёт платёжную сессию для оплаты заказа картой.
func (h *Handler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDFromURL(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var userID *int64
	if id, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		userID = &id
	}

	sess, err := h.service.CreateCheckoutSession(r.Context(), orderID, userID)
	if err != nil {
		h.writeServiceError(w, err, "create checkout error")
		return
	}

	writeJSON(w, http.StatusOK, checkoutResponse{SessionID: sess.ID, RedirectURL: sess.URL})
}

// PaymentSuccess подтверждает возврат с успешной оплаты.
// Фактический статус оплаты меняет только вебхук.
func (h *Handler) PaymentSuccess(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Оплата прошла успешно. Подтверждение придёт на вашу почту.",
	})
}

// PaymentCancel подтверждает возврат с отменённой оплаты.
func (h *Handler) PaymentCancel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Оплата отменена. Вы можете повторить попытку из личного кабинета.",
	})
}

// Webhook обрабатывает подписанные события платёжной системы.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.service.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
		h.writeServiceError(w, err, "webhook error")
		return
	}

	w.WriteHeader(http.StatusOK)
}

type reviewRequest struct {
	AuthorName string `json:"author_name"`
	Text       string `json:"text"`
	Rating     int    `json:"rating"`
}

// CreateReview принимает отзыв клиента. Отзыв публикуется после модерации.
func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	id, err := h.service.SubmitReview(r.Context(), req.AuthorName, req.Text, req.Rating)
	if err != nil {
		h.writeServiceError(w, err, "create review error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

type reviewResponse struct {
	ID         int64  `json:"id"`
	AuthorName string `json:"author_name"`
	Text       string `json:"text"`
	Rating     int    `json:"rating"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// GetReviews возвращает прошедшие модерацию отзывы.
func (h *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListReviews(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "list reviews error")
		return
	}

	resp := make([]reviewResponse, 0, len(reviews))
	for _, rev := range reviews {
		item := reviewResponse{
			ID:         rev.ID,
			AuthorName: rev.AuthorName,
			Text:       rev.Text,
			Rating:     rev.Rating,
		}
		if rev.ShowDate {
			item.CreatedAt = rev.CreatedAt.Format("2006-01-02")
		}
		resp = append(resp, item)
	}

	writeJSON(w, http.StatusOK, resp)
}
