// Package service реализует бизнес-логику сервиса Gold Clean.
package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goldclean/goldclean-system/internal/draft"
	"github.com/goldclean/goldclean-system/internal/model"
	"github.com/goldclean/goldclean-system/internal/notification"
	"github.com/goldclean/goldclean-system/internal/payment"
	"github.com/goldclean/goldclean-system/internal/pricing"
	"github.com/goldclean/goldclean-system/internal/repository"
	"github.com/goldclean/goldclean-system/internal/validation"
)

// Ошибки бизнес-логики, транслируемые обработчиками в HTTP-статусы.
var (
	// ErrValidation возвращается при некорректных входных данных.
	ErrValidation = errors.New("validation failed")
	// ErrSessionExpired возвращается, если черновик расчёта отсутствует или истёк.
	ErrSessionExpired = errors.New("session expired")
	// ErrForbidden возвращается при попытке операции над чужим или завершённым заказом.
	ErrForbidden = errors.New("operation forbidden")
	// ErrAlreadyPaid возвращается при повторной попытке оплаты оплаченного заказа.
	ErrAlreadyPaid = errors.New("order already paid")
	// ErrUpstream возвращается при сбое внешней платёжной системы.
	ErrUpstream = errors.New("upstream failure")
	// ErrInvalidCredentials возвращается при неверной паре логин/пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// cancelWindow — граница окна бесплатной отмены заказа.
const cancelWindow = 24 * time.Hour

// Repository описывает контракт доступа к данным, используемый сервисом.
type Repository interface {
	Close() error
	CreateUser(ctx context.Context, login, email string, passwordHash []byte) (int64, error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetProfile(ctx context.Context, userID int64) (*model.Profile, error)
	GetServiceByID(ctx context.Context, id int64) (*model.Service, error)
	ListServices(ctx context.Context) ([]model.Service, error)
	ListAdditionalServices(ctx context.Context) ([]model.AdditionalService, error)
	GetAdditionalServicesByIDs(ctx context.Context, ids []int64) ([]model.AdditionalService, error)
	ListCities(ctx context.Context) ([]model.City, error)
	GetCityByID(ctx context.Context, id int64) (*model.City, error)
	CreateOrder(ctx context.Context, o *model.Order) (int64, int64, error)
	GetOrderByID(ctx context.Context, id int64) (*model.Order, error)
	GetOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error)
	UpdateOrderForEdit(ctx context.Context, o *model.Order) error
	CancelOrder(ctx context.Context, orderID, userID, penalty int64, note string) error
	SetCheckoutSession(ctx context.Context, orderID int64, sessionID string) error
	SetPaymentStatus(ctx context.Context, orderID int64, status model.PaymentStatus) error
	GetOrdersForReminder(ctx context.Context, day time.Time) ([]model.Order, error)
	CreateReview(ctx context.Context, rev *model.Review) (int64, error)
	ListActiveReviews(ctx context.Context) ([]model.Review, error)
}

// Payments описывает контракт платёжной системы.
type Payments interface {
	CreateCheckoutSession(ctx context.Context, p payment.CheckoutParams) (*payment.CheckoutSession, error)
}

// Options содержит настройки бизнес-логики.
type Options struct {
	BaseURL             string
	Currency            string
	VacuumCleanerPrice  int64
	CancellationFee     int64
	StripeWebhookSecret string
}

// Service содержит бизнес-логику сервиса Gold Clean.
type Service struct {
	repo       Repository
	drafts     draft.Store
	payments   Payments
	dispatcher notification.Dispatcher
	logger     *zap.Logger
	opts       Options

	now func() time.Time
}

// NewService создаёт сервис с указанными зависимостями.
func NewService(repo Repository, drafts draft.Store, payments Payments,
	dispatcher notification.Dispatcher, logger *zap.Logger, opts Options) *Service {
	return &Service{
		repo:       repo,
		drafts:     drafts,
		payments:   payments,
		dispatcher: dispatcher,
		logger:     logger,
		opts:       opts,
		now:        time.Now,
	}
}

// Close закрывает ресурсы сервиса.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}

// RegisterUser регистрирует нового пользователя вместе с профилем.
func (s *Service) RegisterUser(ctx context.Context, login, email, password string) (int64, error) {
	if login == "" || password == "" {
		return 0, fmt.Errorf("%w: login and password are required", ErrValidation)
	}
	if email != "" && !validation.IsValidEmail(email) {
		return 0, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	return s.repo.CreateUser(ctx, login, email, hashPassword(login, password))
}

// AuthenticateUser проверяет логин и пароль пользователя и возвращает его идентификатор.
func (s *Service) AuthenticateUser(ctx context.Context, login, password string) (int64, error) {
	u, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, ErrInvalidCredentials
		}
		return 0, err
	}

	hashed := hashPassword(login, password)
	if subtle.ConstantTimeCompare(hashed, u.PasswordHash) != 1 {
		return 0, ErrInvalidCredentials
	}

	return u.ID, nil
}

func hashPassword(login, password string) []byte {
	sum := sha256.Sum256([]byte(login + ":" + password))
	return sum[:]
}

// ListServices возвращает каталог основных услуг.
func (s *Service) ListServices(ctx context.Context) ([]model.Service, error) {
	return s.repo.ListServices(ctx)
}

// ListAdditionalServices возвращает каталог дополнительных услуг.
func (s *Service) ListAdditionalServices(ctx context.Context) ([]model.AdditionalService, error) {
	return s.repo.ListAdditionalServices(ctx)
}

// ListCities возвращает города обслуживания с надбавками за выезд.
func (s *Service) ListCities(ctx context.Context) ([]model.City, error) {
	return s.repo.ListCities(ctx)
}

// AdditionalSelection описывает выбранную дополнительную услугу в запросе расчёта.
type AdditionalSelection struct {
	ID       int64
	Quantity int
}

// CalculateRequest содержит параметры расчёта стоимости уборки.
type CalculateRequest struct {
	ServiceID    int64
	Rooms        int
	Bathrooms    int
	Sqm          int
	Additional   []AdditionalSelection
	BringVacuum  bool
	PrivateHouse bool
	Frequency    model.Frequency
}

// CalculatePrice рассчитывает стоимость уборки и сохраняет черновик заказа
// в сессии посетителя. Каждый расчёт перезаписывает предыдущий черновик.
func (s *Service) CalculatePrice(ctx context.Context, sessionID string, req CalculateRequest) (*pricing.Quote, error) {
	if req.Rooms < 0 || req.Bathrooms < 0 || req.Sqm < 0 {
		return nil, fmt.Errorf("%w: counts must not be negative", ErrValidation)
	}
	if !validFrequency(req.Frequency) {
		return nil, fmt.Errorf("%w: unknown frequency %q", ErrValidation, req.Frequency)
	}

	svc, err := s.repo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	selections, err := s.resolveSelections(ctx, req.Additional)
	if err != nil {
		return nil, err
	}

	frequency := req.Frequency
	if frequency == "" {
		frequency = model.FrequencyOneTime
	}

	quote := pricing.Calculate(*svc, pricing.Input{
		Rooms:        req.Rooms,
		Bathrooms:    req.Bathrooms,
		Sqm:          req.Sqm,
		Additional:   selections,
		BringVacuum:  req.BringVacuum,
		PrivateHouse: req.PrivateHouse,
		Frequency:    frequency,
		VacuumPrice:  s.opts.VacuumCleanerPrice,
	})

	d := &model.OrderDraft{
		ServiceID:       svc.ID,
		ServiceName:     svc.Name,
		SqmBased:        svc.SqmBased,
		Sqm:             req.Sqm,
		RoomsCount:      req.Rooms,
		BathroomsCount:  req.Bathrooms,
		Additional:      quote.Snapshots,
		DurationMinutes: quote.DurationMinutes,
		BringVacuum:     req.BringVacuum,
		PrivateHouse:    req.PrivateHouse,
		Frequency:       frequency,
		TotalPrice:      quote.Total,
	}
	if err := s.drafts.Save(ctx, sessionID, d); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}

	return &quote, nil
}

// CalculateWindowPrice рассчитывает стоимость мытья окон и сохраняет
// черновик заказа в сессии. Количество окон не влияет на другие расчёты.
func (s *Service) CalculateWindowPrice(ctx context.Context, sessionID string, serviceID int64, windowCount int) (*pricing.Quote, error) {
	if windowCount < 0 {
		return nil, fmt.Errorf("%w: window count must not be negative", ErrValidation)
	}

	svc, err := s.repo.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if !svc.WindowService {
		return nil, fmt.Errorf("%w: service %d is not a window service", ErrValidation, serviceID)
	}

	total, count := pricing.CalculateWindows(*svc, windowCount)

	// Длительность мытья окон заранее не оценивается.
	d := &model.OrderDraft{
		ServiceID:     svc.ID,
		ServiceName:   svc.Name,
		WindowService: true,
		WindowCount:   count,
		Frequency:     model.FrequencyOneTime,
		TotalPrice:    total,
	}
	if err := s.drafts.Save(ctx, sessionID, d); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}

	return &pricing.Quote{
		Total:    total,
		Subtotal: total,
		Details: pricing.Details{
			BaseServiceName:   svc.Name,
			SqmBased:          true,
			FormattedDuration: pricing.FormatDuration(0),
		},
	}, nil
}

func (s *Service) resolveSelections(ctx context.Context, selected []AdditionalSelection) ([]pricing.Selection, error) {
	if len(selected) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(selected))
	for _, sel := range selected {
		ids = append(ids, sel.ID)
	}

	catalog, err := s.repo.GetAdditionalServicesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]model.AdditionalService, len(catalog))
	for _, a := range catalog {
		byID[a.ID] = a
	}

	// Неизвестные идентификаторы молча пропускаются: каталог мог
	// измениться между загрузкой формы и расчётом.
	res := make([]pricing.Selection, 0, len(selected))
	for _, sel := range selected {
		a, ok := byID[sel.ID]
		if !ok {
			continue
		}
		res = append(res, pricing.Selection{Service: a, Quantity: sel.Quantity})
	}

	return res, nil
}

func validFrequency(f model.Frequency) bool {
	switch f {
	case "", model.FrequencyOneTime, model.FrequencyMonthly, model.FrequencyBiWeekly, model.FrequencyWeekly:
		return true
	default:
		return false
	}
}

// OrderForm содержит контактные данные и адрес, вводимые при оформлении заказа.
type OrderForm struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	CityID        int64
	Address       model.Address
	CleaningAt    time.Time
	Comments      string
	PaymentMethod model.PaymentMethod
}

func (f *OrderForm) validate(now time.Time) error {
	switch {
	case f.CustomerName == "":
		return fmt.Errorf("%w: customer name is required", ErrValidation)
	case !validation.IsValidPhone(f.CustomerPhone):
		return fmt.Errorf("%w: invalid phone number", ErrValidation)
	case !validation.IsValidEmail(f.CustomerEmail):
		return fmt.Errorf("%w: invalid email", ErrValidation)
	case !validation.IsValidPostalCode(f.Address.PostalCode):
		return fmt.Errorf("%w: invalid postal code", ErrValidation)
	case f.Address.Street == "" || f.Address.BuildingNumber == "":
		return fmt.Errorf("%w: street and building number are required", ErrValidation)
	case f.CleaningAt.IsZero() || f.CleaningAt.Before(now):
		return fmt.Errorf("%w: cleaning date must be in the future", ErrValidation)
	}

	switch f.PaymentMethod {
	case model.PaymentMethodCash, model.PaymentMethodCard:
		return nil
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrValidation, f.PaymentMethod)
	}
}

// CreateOrder оформляет заказ из черновика сессии. Черновик потребляется
// ровно один раз; накопленный штраф владельца добавляется к сумме заказа
// в одной транзакции со вставкой. Для оплаты наличными письма уходят сразу,
// для оплаты картой — после подтверждения оплаты.
func (s *Service) CreateOrder(ctx context.Context, sessionID string, userID *int64, form OrderForm) (*model.Order, error) {
	if err := form.validate(s.now()); err != nil {
		return nil, err
	}

	d, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, draft.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}

	city, err := s.repo.GetCityByID(ctx, form.CityID)
	if err != nil {
		return nil, err
	}

	o := &model.Order{
		UserID:          userID,
		ServiceID:       d.ServiceID,
		ServiceName:     d.ServiceName,
		RoomsCount:      d.RoomsCount,
		BathroomsCount:  d.BathroomsCount,
		Sqm:             d.Sqm,
		WindowCount:     d.WindowCount,
		Additional:      d.Additional,
		TotalPrice:      d.TotalPrice + city.DeliveryCharge,
		DeliveryCharge:  city.DeliveryCharge,
		Frequency:       d.Frequency,
		BringVacuum:     d.BringVacuum,
		PrivateHouse:    d.PrivateHouse,
		DurationMinutes: d.DurationMinutes,
		CustomerName:    form.CustomerName,
		CustomerPhone:   form.CustomerPhone,
		CustomerEmail:   form.CustomerEmail,
		CityID:          city.ID,
		CityName:        city.Name,
		Address:         form.Address,
		CleaningAt:      form.CleaningAt,
		Comments:        form.Comments,
		Status:          model.OrderStatusNew,
		PaymentMethod:   form.PaymentMethod,
		PaymentStatus:   model.PaymentStatusPending,
	}

	if _, _, err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	if err := s.drafts.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("delete draft", zap.Error(err), zap.String("sessionID", sessionID))
	}

	if o.PaymentMethod == model.PaymentMethodCash {
		s.dispatch(ctx, notification.NewEvent(notification.TypeOrderConfirmed, o))
	}

	return o, nil
}

// GetOrder возвращает заказ владельцу.
func (s *Service) GetOrder(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	o, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID == nil || *o.UserID != userID {
		return nil, ErrForbidden
	}
	return o, nil
}

// GetOrdersByUser возвращает заказы пользователя от новых к старым.
func (s *Service) GetOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return s.repo.GetOrdersByUser(ctx, userID)
}

// EditForm содержит редактируемые поля заказа.
type EditForm struct {
	Rooms        int
	Bathrooms    int
	Sqm          int
	Additional   []AdditionalSelection
	BringVacuum  bool
	PrivateHouse bool
	CleaningAt   time.Time
	Comments     string
}

// EditOrder пересчитывает и сохраняет заказ владельца. Снимок дополнительных
// услуг перестраивается по актуальному каталогу. Скидка за периодичность и
// надбавка за выезд при пересчёте не применяются.
func (s *Service) EditOrder(ctx context.Context, orderID, userID int64, form EditForm) (*model.Order, error) {
	if form.Rooms < 0 || form.Bathrooms < 0 || form.Sqm < 0 {
		return nil, fmt.Errorf("%w: counts must not be negative", ErrValidation)
	}
	if form.CleaningAt.IsZero() || form.CleaningAt.Before(s.now()) {
		return nil, fmt.Errorf("%w: cleaning date must be in the future", ErrValidation)
	}

	o, err := s.GetOrder(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if o.Status.Terminal() {
		return nil, ErrForbidden
	}

	svc, err := s.repo.GetServiceByID(ctx, o.ServiceID)
	if err != nil {
		return nil, err
	}

	selections, err := s.resolveSelections(ctx, form.Additional)
	if err != nil {
		return nil, err
	}

	quote := pricing.Calculate(*svc, pricing.Input{
		Rooms:        form.Rooms,
		Bathrooms:    form.Bathrooms,
		Sqm:          form.Sqm,
		Additional:   selections,
		BringVacuum:  form.BringVacuum,
		PrivateHouse: form.PrivateHouse,
		Frequency:    model.FrequencyOneTime,
		VacuumPrice:  s.opts.VacuumCleanerPrice,
	})

	o.RoomsCount = form.Rooms
	o.BathroomsCount = form.Bathrooms
	o.Sqm = form.Sqm
	o.Additional = quote.Snapshots
	o.BringVacuum = form.BringVacuum
	o.PrivateHouse = form.PrivateHouse
	o.DurationMinutes = quote.DurationMinutes
	o.TotalPrice = quote.Total
	o.CleaningAt = form.CleaningAt
	o.Comments = form.Comments

	if err := s.repo.UpdateOrderForEdit(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

// CancelInfo описывает условия отмены для подтверждающего экрана.
type CancelInfo struct {
	OrderID        int64
	CleaningAt     time.Time
	PenaltyApplies bool
	PenaltyFee     int64
}

// GetCancelInfo возвращает условия отмены заказа без изменения состояния.
func (s *Service) GetCancelInfo(ctx context.Context, orderID, userID int64) (*CancelInfo, error) {
	o, err := s.GetOrder(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if o.Status.Terminal() {
		return nil, ErrForbidden
	}

	return &CancelInfo{
		OrderID:        o.ID,
		CleaningAt:     o.CleaningAt,
		PenaltyApplies: o.CleaningAt.Sub(s.now()) < cancelWindow,
		PenaltyFee:     s.opts.CancellationFee,
	}, nil
}

// CancelOrder отменяет заказ владельца. При отмене менее чем за сутки до
// уборки штраф зачисляется на баланс профиля и будет добавлен к следующему
// заказу. Статус меняется на canceled в любом случае.
func (s *Service) CancelOrder(ctx context.Context, orderID, userID int64) (*CancelInfo, error) {
	info, err := s.GetCancelInfo(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}

	var penalty int64
	note := "\n[System Note] Order canceled by customer."
	if info.PenaltyApplies {
		penalty = s.opts.CancellationFee
		note = fmt.Sprintf(
			"\n[System Note] Canceled less than 24h before cleaning. Penalty of %.2f zł applied.",
			float64(penalty)/100)
	}

	if err := s.repo.CancelOrder(ctx, orderID, userID, penalty, note); err != nil {
		// Заказ успел завершиться между проверкой и отменой.
		if errors.Is(err, repository.ErrOrderNotCancelable) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	return info, nil
}

// CreateCheckoutSession создаёт платёжную сессию Stripe на точную сумму заказа.
// Повторная оплата оплаченного заказа запрещена.
func (s *Service) CreateCheckoutSession(ctx context.Context, orderID int64, userID *int64) (*payment.CheckoutSession, error) {
	o, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != nil && (userID == nil || *o.UserID != *userID) {
		return nil, ErrForbidden
	}
	if o.PaymentStatus == model.PaymentStatusPaid {
		return nil, ErrAlreadyPaid
	}
	if o.PaymentMethod != model.PaymentMethodCard {
		return nil, fmt.Errorf("%w: order is not paid by card", ErrValidation)
	}

	sess, err := s.payments.CreateCheckoutSession(ctx, payment.CheckoutParams{
		OrderID:       o.ID,
		Amount:        o.TotalPrice,
		Currency:      s.opts.Currency,
		ProductName:   fmt.Sprintf("%s — заказ №%d", o.ServiceName, o.ID),
		CustomerEmail: o.CustomerEmail,
		SuccessURL:    s.opts.BaseURL + "/api/payment/success",
		CancelURL:     s.opts.BaseURL + "/api/payment/cancel",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if err := s.repo.SetCheckoutSession(ctx, o.ID, sess.ID); err != nil {
		return nil, err
	}

	return sess, nil
}

// HandleWebhook обрабатывает подписанное событие Stripe. Повторная доставка
// уже учтённого события безвредна: статус оплаты меняется идемпотентно,
// письма при повторе не отправляются.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if err := payment.VerifySignature(payload, signature, s.opts.StripeWebhookSecret,
		payment.DefaultTolerance, s.now()); err != nil {
		return err
	}

	event, err := payment.ParseEvent(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if event.Type != payment.EventCheckoutCompleted {
		return nil
	}

	orderID, err := event.OrderID()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	o, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.PaymentStatus == model.PaymentStatusPaid {
		return nil
	}

	if err := s.repo.SetPaymentStatus(ctx, orderID, model.PaymentStatusPaid); err != nil {
		return err
	}

	o.PaymentStatus = model.PaymentStatusPaid
	s.dispatch(ctx, notification.NewEvent(notification.TypePaymentReceived, o))

	return nil
}

// SubmitReview сохраняет отзыв клиента. Отзыв появится на сайте после модерации.
func (s *Service) SubmitReview(ctx context.Context, authorName, text string, rating int) (int64, error) {
	if authorName == "" || text == "" {
		return 0, fmt.Errorf("%w: author name and text are required", ErrValidation)
	}
	if !validation.IsValidRating(rating) {
		return 0, fmt.Errorf("%w: rating must be from 1 to 5", ErrValidation)
	}
	return s.repo.CreateReview(ctx, &model.Review{AuthorName: authorName, Text: text, Rating: rating})
}

// ListReviews возвращает прошедшие модерацию отзывы.
func (s *Service) ListReviews(ctx context.Context) ([]model.Review, error) {
	return s.repo.ListActiveReviews(ctx)
}

// Дни до уборки, за которые отправляются напоминания.
var reminderOffsets = []int{0, 3}

// StartCleaningReminders запускает фоновую рассылку напоминаний об уборке.
// Напоминания уходят в день уборки и за три дня до неё.
func (s *Service) StartCleaningReminders(ctx context.Context) {
	go func() {
		s.sendReminders(ctx)

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sendReminders(ctx)
			}
		}
	}()
}

func (s *Service) sendReminders(ctx context.Context) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, days := range reminderOffsets {
		orders, err := s.repo.GetOrdersForReminder(ctx, today.AddDate(0, 0, days))
		if err != nil {
			s.logger.Error("select orders for reminder", zap.Error(err), zap.Int("daysBefore", days))
			continue
		}

		for i := range orders {
			o := &orders[i]
			if o.CustomerEmail == "" {
				continue
			}
			e := notification.NewEvent(notification.TypeCleaningReminder, o)
			e.DaysBefore = days
			s.dispatch(ctx, e)
		}
	}
}

// dispatch отправляет событие уведомления, не прерывая основной поток при сбое.
func (s *Service) dispatch(ctx context.Context, e notification.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Dispatch(ctx, e); err != nil {
		s.logger.Error("dispatch notification",
			zap.Error(err), zap.String("type", e.Type), zap.Int64("orderID", e.OrderID))
	}
}
