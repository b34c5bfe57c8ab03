package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/goldclean/goldclean-system/internal/draft"
	"github.com/goldclean/goldclean-system/internal/model"
	"github.com/goldclean/goldclean-system/internal/notification"
	"github.com/goldclean/goldclean-system/internal/payment"
	"github.com/goldclean/goldclean-system/internal/repository"
)

func TestHashPasswordDeterministic(t *testing.T) {
	a := hashPassword("user", "pass")
	b := hashPassword("user", "pass")
	c := hashPassword("user", "other")

	if string(a) != string(b) {
		t.Fatalf("hashPassword must be deterministic, got %x and %x", a, b)
	}
	if string(a) == string(c) {
		t.Fatalf("different passwords must produce different hashes")
	}
}

type canceled struct {
	orderID int64
	userID  int64
	penalty int64
	note    string
}

type stubRepo struct {
	service    *model.Service
	additional []model.AdditionalService
	city       *model.City
	order      *model.Order

	createdOrder   *model.Order
	updatedOrder   *model.Order
	canceled       *canceled
	sessionSet     string
	paymentSet     model.PaymentStatus
	reminderOrders []model.Order

	serviceErr error
	orderErr   error
	cancelErr  error
	paymentErr error
}

func (s *stubRepo) Close() error { return nil }

func (s *stubRepo) CreateUser(ctx context.Context, login, email string, passwordHash []byte) (int64, error) {
	return 1, nil
}

func (s *stubRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRepo) GetProfile(ctx context.Context, userID int64) (*model.Profile, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRepo) GetServiceByID(ctx context.Context, id int64) (*model.Service, error) {
	if s.serviceErr != nil {
		return nil, s.serviceErr
	}
	return s.service, nil
}

func (s *stubRepo) ListServices(ctx context.Context) ([]model.Service, error) {
	return nil, nil
}

func (s *stubRepo) ListAdditionalServices(ctx context.Context) ([]model.AdditionalService, error) {
	return s.additional, nil
}

func (s *stubRepo) GetAdditionalServicesByIDs(ctx context.Context, ids []int64) ([]model.AdditionalService, error) {
	var res []model.AdditionalService
	for _, a := range s.additional {
		for _, id := range ids {
			if a.ID == id {
				res = append(res, a)
			}
		}
	}
	return res, nil
}

func (s *stubRepo) ListCities(ctx context.Context) ([]model.City, error) {
	return nil, nil
}

func (s *stubRepo) GetCityByID(ctx context.Context, id int64) (*model.City, error) {
	return s.city, nil
}

func (s *stubRepo) CreateOrder(ctx context.Context, o *model.Order) (int64, int64, error) {
	o.ID = 100
	s.createdOrder = o
	return o.ID, 0, nil
}

func (s *stubRepo) GetOrderByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.orderErr != nil {
		return nil, s.orderErr
	}
	cp := *s.order
	return &cp, nil
}

func (s *stubRepo) GetOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return nil, nil
}

func (s *stubRepo) UpdateOrderForEdit(ctx context.Context, o *model.Order) error {
	s.updatedOrder = o
	return nil
}

func (s *stubRepo) CancelOrder(ctx context.Context, orderID, userID, penalty int64, note string) error {
	if s.cancelErr != nil {
		return s.cancelErr
	}
	s.canceled = &canceled{orderID: orderID, userID: userID, penalty: penalty, note: note}
	return nil
}

func (s *stubRepo) SetCheckoutSession(ctx context.Context, orderID int64, sessionID string) error {
	s.sessionSet = sessionID
	return nil
}

func (s *stubRepo) SetPaymentStatus(ctx context.Context, orderID int64, status model.PaymentStatus) error {
	if s.paymentErr != nil {
		return s.paymentErr
	}
	s.paymentSet = status
	return nil
}

func (s *stubRepo) GetOrdersForReminder(ctx context.Context, day time.Time) ([]model.Order, error) {
	return s.reminderOrders, nil
}

func (s *stubRepo) CreateReview(ctx context.Context, rev *model.Review) (int64, error) {
	return 1, nil
}

func (s *stubRepo) ListActiveReviews(ctx context.Context) ([]model.Review, error) {
	return nil, nil
}

type stubPayments struct {
	session *payment.CheckoutSession
	err     error
	calls   int
}

func (s *stubPayments) CreateCheckoutSession(ctx context.Context, p payment.CheckoutParams) (*payment.CheckoutSession, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.session, nil
}

type stubDispatcher struct {
	events []notification.Event
}

func (s *stubDispatcher) Dispatch(ctx context.Context, e notification.Event) error {
	s.events = append(s.events, e)
	return nil
}

var testOpts = Options{
	BaseURL:             "http://localhost:8080",
	Currency:            "pln",
	VacuumCleanerPrice:  2800,
	CancellationFee:     5000,
	StripeWebhookSecret: "whsec_test",
}

func newTestService(repo *stubRepo, payments *stubPayments, dispatcher *stubDispatcher) *Service {
	svc := NewService(repo, draft.NewMemoryStore(draft.DefaultTTL), payments, dispatcher, zap.NewNop(), testOpts)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func baseService() *model.Service {
	return &model.Service{
		ID:                  1,
		Name:                "Стандартная уборка",
		BasePrice:           10000,
		PricePerRoom:        3000,
		PricePerBathroom:    2000,
		BaseDurationMinutes: 120,
		Active:              true,
	}
}

func validForm() OrderForm {
	return OrderForm{
		CustomerName:  "Анна",
		CustomerPhone: "+48123456789",
		CustomerEmail: "anna@example.com",
		CityID:        2,
		Address: model.Address{
			Street:         "Marszałkowska",
			PostalCode:     "00-001",
			BuildingNumber: "10",
		},
		CleaningAt:    time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
		PaymentMethod: model.PaymentMethodCash,
	}
}

func TestCalculatePriceSavesDraft(t *testing.T) {
	repo := &stubRepo{service: baseService()}
	svc := newTestService(repo, nil, nil)

	quote, err := svc.CalculatePrice(context.Background(), "sid", CalculateRequest{
		ServiceID: 1,
		Rooms:     3,
		Bathrooms: 2,
		Frequency: model.FrequencyOneTime,
	})
	if err != nil {
		t.Fatalf("CalculatePrice() error = %v", err)
	}
	// 10000 + 2*3000 + 1*2000
	if quote.Total != 18000 {
		t.Errorf("Total = %d, want 18000", quote.Total)
	}

	d, err := svc.drafts.Get(context.Background(), "sid")
	if err != nil {
		t.Fatalf("draft not saved: %v", err)
	}
	if d.TotalPrice != 18000 || d.ServiceID != 1 {
		t.Errorf("draft = %+v", d)
	}
}

func TestCalculatePriceNegativeCounts(t *testing.T) {
	repo := &stubRepo{service: baseService()}
	svc := newTestService(repo, nil, nil)

	_, err := svc.CalculatePrice(context.Background(), "sid", CalculateRequest{ServiceID: 1, Rooms: -1})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestCalculateWindowPriceDraft(t *testing.T) {
	repo := &stubRepo{service: &model.Service{
		ID:            3,
		Name:          "Мытьё окон",
		PricePerSqm:   2000,
		WindowService: true,
		Active:        true,
	}}
	svc := newTestService(repo, nil, nil)

	quote, err := svc.CalculateWindowPrice(context.Background(), "sid", 3, 5)
	if err != nil {
		t.Fatalf("CalculateWindowPrice() error = %v", err)
	}
	if quote.Total != 10000 {
		t.Errorf("Total = %d, want 10000", quote.Total)
	}

	// Число окон не является длительностью: оценка остаётся пустой.
	if quote.DurationMinutes != 0 {
		t.Errorf("DurationMinutes = %d, want 0", quote.DurationMinutes)
	}
	if quote.Details.FormattedDuration != "не указано" {
		t.Errorf("FormattedDuration = %q, want %q", quote.Details.FormattedDuration, "не указано")
	}

	d, err := svc.drafts.Get(context.Background(), "sid")
	if err != nil {
		t.Fatalf("draft not saved: %v", err)
	}
	if !d.WindowService || d.WindowCount != 5 || d.TotalPrice != 10000 {
		t.Errorf("draft = %+v", d)
	}
	if d.DurationMinutes != 0 {
		t.Errorf("draft DurationMinutes = %d, want 0", d.DurationMinutes)
	}
}

func TestCalculateWindowPriceClampsCount(t *testing.T) {
	repo := &stubRepo{service: &model.Service{
		ID:            3,
		Name:          "Мытьё окон",
		PricePerSqm:   2000,
		WindowService: true,
		Active:        true,
	}}
	svc := newTestService(repo, nil, nil)

	quote, err := svc.CalculateWindowPrice(context.Background(), "sid", 3, 0)
	if err != nil {
		t.Fatalf("CalculateWindowPrice() error = %v", err)
	}
	if quote.Total != 2000 {
		t.Errorf("Total = %d, want 2000", quote.Total)
	}

	d, err := svc.drafts.Get(context.Background(), "sid")
	if err != nil {
		t.Fatalf("draft not saved: %v", err)
	}
	if d.WindowCount != 1 {
		t.Errorf("WindowCount = %d, want 1", d.WindowCount)
	}
}

func TestCreateOrderSessionExpired(t *testing.T) {
	repo := &stubRepo{city: &model.City{ID: 2, Name: "Piastów", DeliveryCharge: 3000}}
	svc := newTestService(repo, nil, nil)

	_, err := svc.CreateOrder(context.Background(), "empty-session", nil, validForm())
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("error = %v, want ErrSessionExpired", err)
	}
}

func TestCreateOrderCashAddsDeliveryAndNotifies(t *testing.T) {
	repo := &stubRepo{
		service: baseService(),
		city:    &model.City{ID: 2, Name: "Piastów", DeliveryCharge: 3000},
	}
	dispatcher := &stubDispatcher{}
	svc := newTestService(repo, nil, dispatcher)

	if _, err := svc.CalculatePrice(context.Background(), "sid", CalculateRequest{
		ServiceID: 1, Rooms: 3, Bathrooms: 2, Frequency: model.FrequencyOneTime,
	}); err != nil {
		t.Fatalf("CalculatePrice() error = %v", err)
	}

	o, err := svc.CreateOrder(context.Background(), "sid", nil, validForm())
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}

	if o.TotalPrice != 21000 {
		t.Errorf("TotalPrice = %d, want 21000 (quote + delivery)", o.TotalPrice)
	}
	if o.DeliveryCharge != 3000 {
		t.Errorf("DeliveryCharge = %d, want 3000", o.DeliveryCharge)
	}

	if len(dispatcher.events) != 1 || dispatcher.events[0].Type != notification.TypeOrderConfirmed {
		t.Fatalf("events = %v, want one order_confirmed", dispatcher.events)
	}

	// Черновик потребляется ровно один раз.
	if _, err := svc.CreateOrder(context.Background(), "sid", nil, validForm()); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("second create error = %v, want ErrSessionExpired", err)
	}
}

func TestCreateOrderCardDefersNotification(t *testing.T) {
	repo := &stubRepo{
		service: baseService(),
		city:    &model.City{ID: 2, Name: "Warszawa", DeliveryCharge: 0},
	}
	dispatcher := &stubDispatcher{}
	svc := newTestService(repo, nil, dispatcher)

	if _, err := svc.CalculatePrice(context.Background(), "sid", CalculateRequest{ServiceID: 1, Rooms: 2}); err != nil {
		t.Fatalf("CalculatePrice() error = %v", err)
	}

	form := validForm()
	form.PaymentMethod = model.PaymentMethodCard
	if _, err := svc.CreateOrder(context.Background(), "sid", nil, form); err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}

	if len(dispatcher.events) != 0 {
		t.Fatalf("card order must not dispatch before payment, got %v", dispatcher.events)
	}
}

func userOrder(userID int64, cleaningAt time.Time) *model.Order {
	return &model.Order{
		ID:            7,
		UserID:        &userID,
		ServiceID:     1,
		ServiceName:   "Стандартная уборка",
		TotalPrice:    20000,
		CleaningAt:    cleaningAt,
		Status:        model.OrderStatusNew,
		PaymentMethod: model.PaymentMethodCard,
		PaymentStatus: model.PaymentStatusPending,
	}
}

func TestCancelOrderPenaltyBoundary(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		cleaningAt  time.Time
		wantPenalty int64
	}{
		{"less than 24h", now.Add(23 * time.Hour), 5000},
		{"exactly 24h", now.Add(24 * time.Hour), 0},
		{"more than 24h", now.Add(48 * time.Hour), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{order: userOrder(5, tt.cleaningAt)}
			svc := newTestService(repo, nil, nil)

			info, err := svc.CancelOrder(context.Background(), 7, 5)
			if err != nil {
				t.Fatalf("CancelOrder() error = %v", err)
			}
			if repo.canceled == nil {
				t.Fatalf("repo.CancelOrder was not called")
			}
			if repo.canceled.penalty != tt.wantPenalty {
				t.Errorf("penalty = %d, want %d", repo.canceled.penalty, tt.wantPenalty)
			}
			if info.PenaltyApplies != (tt.wantPenalty > 0) {
				t.Errorf("PenaltyApplies = %v", info.PenaltyApplies)
			}
			if tt.wantPenalty > 0 && repo.canceled.note == "" {
				t.Errorf("penalty note is empty")
			}
		})
	}
}

func TestCancelOrderTerminalForbidden(t *testing.T) {
	for _, status := range []model.OrderStatus{model.OrderStatusCompleted, model.OrderStatusCanceled} {
		o := userOrder(5, time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC))
		o.Status = status
		repo := &stubRepo{order: o}
		svc := newTestService(repo, nil, nil)

		if _, err := svc.CancelOrder(context.Background(), 7, 5); !errors.Is(err, ErrForbidden) {
			t.Errorf("status %s: error = %v, want ErrForbidden", status, err)
		}
		if repo.canceled != nil {
			t.Errorf("status %s: repo.CancelOrder must not be called", status)
		}
	}
}

func TestCancelOrderConcurrentlyFinished(t *testing.T) {
	repo := &stubRepo{
		order:     userOrder(5, time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)),
		cancelErr: repository.ErrOrderNotCancelable,
	}
	svc := newTestService(repo, nil, nil)

	if _, err := svc.CancelOrder(context.Background(), 7, 5); !errors.Is(err, ErrForbidden) {
		t.Fatalf("error = %v, want ErrForbidden", err)
	}
}

func TestCancelOrderForeignOwner(t *testing.T) {
	repo := &stubRepo{order: userOrder(5, time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC))}
	svc := newTestService(repo, nil, nil)

	if _, err := svc.CancelOrder(context.Background(), 7, 99); !errors.Is(err, ErrForbidden) {
		t.Fatalf("error = %v, want ErrForbidden", err)
	}
}

func TestEditOrderDropsDiscountAndDelivery(t *testing.T) {
	o := userOrder(5, time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC))
	o.Frequency = model.FrequencyWeekly
	o.DeliveryCharge = 3000

	repo := &stubRepo{service: baseService(), order: o}
	svc := newTestService(repo, nil, nil)

	updated, err := svc.EditOrder(context.Background(), 7, 5, EditForm{
		Rooms:      3,
		Bathrooms:  2,
		CleaningAt: time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("EditOrder() error = %v", err)
	}

	// Пересчёт без скидки за периодичность и без надбавки за выезд:
	// 10000 + 2*3000 + 1*2000.
	if updated.TotalPrice != 18000 {
		t.Errorf("TotalPrice = %d, want 18000", updated.TotalPrice)
	}
	if repo.updatedOrder == nil {
		t.Fatalf("repo.UpdateOrderForEdit was not called")
	}
}

func TestEditOrderRebuildsSnapshotFromCatalog(t *testing.T) {
	o := userOrder(5, time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC))
	o.Additional = []model.ServiceSnapshot{{ID: 1, Name: "Глажка", Price: 3000, Quantity: 1}}

	repo := &stubRepo{
		service: baseService(),
		order:   o,
		additional: []model.AdditionalService{
			{ID: 1, Name: "Глажка", Price: 4500, Active: true},
		},
	}
	svc := newTestService(repo, nil, nil)

	updated, err := svc.EditOrder(context.Background(), 7, 5, EditForm{
		Rooms:      1,
		Bathrooms:  1,
		Additional: []AdditionalSelection{{ID: 1, Quantity: 1}},
		CleaningAt: time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("EditOrder() error = %v", err)
	}

	if len(updated.Additional) != 1 || updated.Additional[0].Price != 4500 {
		t.Errorf("snapshot = %+v, want price 4500 from live catalog", updated.Additional)
	}
}

func TestCreateCheckoutSessionAlreadyPaid(t *testing.T) {
	o := userOrder(5, time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC))
	o.PaymentStatus = model.PaymentStatusPaid

	payments := &stubPayments{}
	svc := newTestService(&stubRepo{order: o}, payments, nil)

	uid := int64(5)
	if _, err := svc.CreateCheckoutSession(context.Background(), 7, &uid); !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("error = %v, want ErrAlreadyPaid", err)
	}
	if payments.calls != 0 {
		t.Fatalf("payment client must not be called")
	}
}

func TestCreateCheckoutSessionUpstreamFailure(t *testing.T) {
	repo := &stubRepo{order: userOrder(5, time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC))}
	payments := &stubPayments{err: errors.New("stripe is down")}
	svc := newTestService(repo, payments, nil)

	uid := int64(5)
	_, err := svc.CreateCheckoutSession(context.Background(), 7, &uid)
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("error = %v, want ErrUpstream", err)
	}
	if repo.sessionSet != "" {
		t.Fatalf("checkout session must not be stored on failure")
	}
}

func TestCreateCheckoutSessionStoresID(t *testing.T) {
	repo := &stubRepo{order: userOrder(5, time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC))}
	payments := &stubPayments{session: &payment.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/cs_test_1"}}
	svc := newTestService(repo, payments, nil)

	uid := int64(5)
	sess, err := svc.CreateCheckoutSession(context.Background(), 7, &uid)
	if err != nil {
		t.Fatalf("CreateCheckoutSession() error = %v", err)
	}
	if sess.ID != "cs_test_1" || repo.sessionSet != "cs_test_1" {
		t.Fatalf("session id not stored: %q, repo %q", sess.ID, repo.sessionSet)
	}
}

func webhookPayload(t *testing.T, orderID int64) []byte {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"id":   "evt_1",
		"type": payment.EventCheckoutCompleted,
		"data": map[string]any{
			"object": map[string]any{
				"id":             "cs_test_1",
				"payment_status": "paid",
				"metadata":       map[string]string{"order_id": fmt.Sprintf("%d", orderID)},
			},
		},
	})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return payload
}

func TestHandleWebhookFlipsPaymentStatus(t *testing.T) {
	repo := &stubRepo{order: userOrder(5, time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC))}
	dispatcher := &stubDispatcher{}
	svc := newTestService(repo, nil, dispatcher)

	payload := webhookPayload(t, 7)
	sig := payment.SignPayload(payload, testOpts.StripeWebhookSecret, svc.now())

	if err := svc.HandleWebhook(context.Background(), payload, sig); err != nil {
		t.Fatalf("HandleWebhook() error = %v", err)
	}
	if repo.paymentSet != model.PaymentStatusPaid {
		t.Errorf("payment status = %q, want paid", repo.paymentSet)
	}
	if len(dispatcher.events) != 1 || dispatcher.events[0].Type != notification.TypePaymentReceived {
		t.Errorf("events = %v, want one payment_received", dispatcher.events)
	}
}

func TestHandleWebhookIdempotent(t *testing.T) {
	o := userOrder(5, time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC))
	o.PaymentStatus = model.PaymentStatusPaid

	repo := &stubRepo{order: o}
	dispatcher := &stubDispatcher{}
	svc := newTestService(repo, nil, dispatcher)

	payload := webhookPayload(t, 7)
	sig := payment.SignPayload(payload, testOpts.StripeWebhookSecret, svc.now())

	if err := svc.HandleWebhook(context.Background(), payload, sig); err != nil {
		t.Fatalf("HandleWebhook() error = %v", err)
	}
	if len(dispatcher.events) != 0 {
		t.Errorf("repeated delivery must not dispatch, got %v", dispatcher.events)
	}
}

func TestHandleWebhookRejectsBadSignature(t *testing.T) {
	svc := newTestService(&stubRepo{}, nil, nil)

	payload := webhookPayload(t, 7)
	sig := payment.SignPayload(payload, "other-secret", svc.now())

	if err := svc.HandleWebhook(context.Background(), payload, sig); !errors.Is(err, payment.ErrInvalidSignature) {
		t.Fatalf("error = %v, want ErrInvalidSignature", err)
	}
}

func TestSubmitReviewValidation(t *testing.T) {
	svc := newTestService(&stubRepo{}, nil, nil)

	if _, err := svc.SubmitReview(context.Background(), "Анна", "Отлично!", 6); !errors.Is(err, ErrValidation) {
		t.Fatalf("rating 6: error = %v, want ErrValidation", err)
	}
	if _, err := svc.SubmitReview(context.Background(), "", "Отлично!", 5); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty name: error = %v, want ErrValidation", err)
	}
	if _, err := svc.SubmitReview(context.Background(), "Анна", "Отлично!", 5); err != nil {
		t.Fatalf("valid review: error = %v", err)
	}
}

func TestSendRemindersSkipsOrdersWithoutEmail(t *testing.T) {
	withEmail := *userOrder(5, time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC))
	withEmail.CustomerEmail = "anna@example.com"
	withoutEmail := *userOrder(6, time.Date(2025, 6, 1, 16, 0, 0, 0, time.UTC))

	repo := &stubRepo{reminderOrders: []model.Order{withEmail, withoutEmail}}
	dispatcher := &stubDispatcher{}
	svc := newTestService(repo, nil, dispatcher)

	svc.sendReminders(context.Background())

	// Два окна напоминаний, в каждом по одному заказу с email.
	if len(dispatcher.events) != 2 {
		t.Fatalf("dispatched %d events, want 2", len(dispatcher.events))
	}
	for _, e := range dispatcher.events {
		if e.Type != notification.TypeCleaningReminder {
			t.Errorf("event type = %q", e.Type)
		}
	}
}
