// Package repository содержит реализацию доступа к данным в PostgreSQL.
package repository

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"

	"github.com/goldclean/goldclean-system/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrUserExists возвращается при попытке создать пользователя с уже существующим логином.
var (
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound возвращается, если пользователь не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrServiceNotFound возвращается, если услуга не найдена или неактивна.
	ErrServiceNotFound = errors.New("service not found")
	// ErrCityNotFound возвращается, если город не найден.
	ErrCityNotFound = errors.New("city not found")
	// ErrOrderNotFound возвращается, если заказ не найден.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderNotCancelable возвращается, если заказ уже переведён в конечный статус.
	ErrOrderNotCancelable = errors.New("order is not cancelable")
)

// PostgresRepository предоставляет доступ к хранилищу данных в PostgreSQL.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository создаёт новый репозиторий и инициализирует схему БД через миграции.
func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	r := &PostgresRepository{pool: pool}

	if err := r.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return r, nil
}

func (r *PostgresRepository) runMigrations(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(r.pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// withRetry повторяет транзакцию при сбоях сериализации и дедлоках.
func (r *PostgresRepository) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			(pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected) {
			return retry.RetryableError(err)
		}

		return err
	})
}

// Close закрывает пул соединений с БД.
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

// CreateUser создаёт нового пользователя и его профиль в одной транзакции.
func (r *PostgresRepository) CreateUser(ctx context.Context, login, email string, passwordHash []byte) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO users (login, email, password_hash) VALUES ($1, $2, $3) RETURNING id`,
		login, email, passwordHash,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, fmt.Errorf("%w: %s", ErrUserExists, login)
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	_, err = tx.Exec(ctx, `INSERT INTO profiles (user_id) VALUES ($1)`, id)
	if err != nil {
		return 0, fmt.Errorf("create profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}

	return id, nil
}

// GetUserByLogin возвращает пользователя по логину.
func (r *PostgresRepository) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, login, email, password_hash, created_at FROM users WHERE login = $1`,
		login,
	)

	var u model.User
	err := row.Scan(&u.ID, &u.Login, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &u, nil
}

// GetProfile возвращает профиль пользователя.
func (r *PostgresRepository) GetProfile(ctx context.Context, userID int64) (*model.Profile, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT user_id, penalty_balance, new_client, first_order_discount_used_at, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	)

	var p model.Profile
	err := row.Scan(&p.UserID, &p.PenaltyBalance, &p.NewClient, &p.FirstOrderDiscountUsedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &p, nil
}

const serviceColumns = `id, name, COALESCE(slug, ''), short_description, base_price,
	price_per_room, price_per_bathroom, price_per_sqm, base_duration_minutes,
	is_sqm_based, is_window_service, display_order, is_active`

func scanService(row pgx.Row) (*model.Service, error) {
	var s model.Service
	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.ShortDescription, &s.BasePrice,
		&s.PricePerRoom, &s.PricePerBathroom, &s.PricePerSqm, &s.BaseDurationMinutes,
		&s.SqmBased, &s.WindowService, &s.DisplayOrder, &s.Active)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetServiceByID возвращает активную услугу по идентификатору.
func (r *PostgresRepository) GetServiceByID(ctx context.Context, id int64) (*model.Service, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1 AND is_active`, id)

	s, err := scanService(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return s, nil
}

// ListServices возвращает активные услуги в порядке отображения.
func (r *PostgresRepository) ListServices(ctx context.Context) ([]model.Service, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE is_active ORDER BY display_order, id`)
	if err != nil {
		return nil, fmt.Errorf("select services: %w", err)
	}
	defer rows.Close()

	var res []model.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		res = append(res, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return res, nil
}

const additionalColumns = `id, name, price, duration_minutes, is_quantity_based,
	is_for_kitchen, display_order, is_active`

// ListAdditionalServices возвращает активные дополнительные услуги.
func (r *PostgresRepository) ListAdditionalServices(ctx context.Context) ([]model.AdditionalService, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+additionalColumns+` FROM additional_services WHERE is_active ORDER BY display_order, id`)
	if err != nil {
		return nil, fmt.Errorf("select additional services: %w", err)
	}
	defer rows.Close()

	return collectAdditional(rows)
}

// GetAdditionalServicesByIDs возвращает активные дополнительные услуги
// по списку идентификаторов. Неизвестные идентификаторы молча пропускаются.
func (r *PostgresRepository) GetAdditionalServicesByIDs(ctx context.Context, ids []int64) ([]model.AdditionalService, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+additionalColumns+` FROM additional_services WHERE id = ANY($1) AND is_active`, ids)
	if err != nil {
		return nil, fmt.Errorf("select additional services: %w", err)
	}
	defer rows.Close()

	return collectAdditional(rows)
}

func collectAdditional(rows pgx.Rows) ([]model.AdditionalService, error) {
	var res []model.AdditionalService
	for rows.Next() {
		var s model.AdditionalService
		err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.DurationMinutes,
			&s.QuantityBased, &s.ForKitchen, &s.DisplayOrder, &s.Active)
		if err != nil {
			return nil, fmt.Errorf("scan additional service: %w", err)
		}
		res = append(res, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return res, nil
}

// ListCities возвращает города, отсортированные по надбавке и имени.
func (r *PostgresRepository) ListCities(ctx context.Context) ([]model.City, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, delivery_charge FROM cities ORDER BY delivery_charge, name`)
	if err != nil {
		return nil, fmt.Errorf("select cities: %w", err)
	}
	defer rows.Close()

	var res []model.City
	for rows.Next() {
		var c model.City
		if err := rows.Scan(&c.ID, &c.Name, &c.DeliveryCharge); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		res = append(res, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return res, nil
}

// GetCityByID возвращает город по идентификатору.
func (r *PostgresRepository) GetCityByID(ctx context.Context, id int64) (*model.City, error) {
	var c model.City
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, delivery_charge FROM cities WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.DeliveryCharge)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCityNotFound
		}
		return nil, fmt.Errorf("get city: %w", err)
	}
	return &c, nil
}

// CreateOrder сохраняет заказ. Если у владельца есть накопленный штраф,
// он добавляется к итоговой цене, к комментариям дописывается системная
// пометка, а баланс обнуляется — всё в одной транзакции со вставкой заказа,
// профиль блокируется через SELECT ... FOR UPDATE.
// Возвращает идентификатор заказа и применённый штраф.
func (r *PostgresRepository) CreateOrder(ctx context.Context, o *model.Order) (int64, int64, error) {
	var orderID, appliedPenalty int64

	err := r.withRetry(ctx, func(ctx context.Context) error {
		tx, err := r.pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		defer tx.Rollback(ctx)

		totalPrice := o.TotalPrice
		comments := o.Comments
		appliedPenalty = 0

		if o.UserID != nil {
			var balance int64
			err := tx.QueryRow(ctx,
				`SELECT penalty_balance FROM profiles WHERE user_id = $1 FOR UPDATE`,
				*o.UserID,
			).Scan(&balance)
			if err != nil && !errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("lock profile: %w", err)
			}

			if balance > 0 {
				appliedPenalty = balance
				totalPrice += balance
				comments += fmt.Sprintf("\n[System Note] Added outstanding penalty of %.2f zł.", float64(balance)/100)

				_, err = tx.Exec(ctx,
					`UPDATE profiles SET penalty_balance = 0, updated_at = now() WHERE user_id = $1`,
					*o.UserID,
				)
				if err != nil {
					return fmt.Errorf("reset penalty balance: %w", err)
				}
			}
		}

		details, err := json.Marshal(o.Additional)
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}

		err = tx.QueryRow(ctx,
			`INSERT INTO orders (
				user_id, service_id, rooms_count, bathrooms_count, sqm, window_count,
				additional_services_details, total_price, delivery_charge, frequency,
				bring_vacuum_cleaner, is_private_house, estimated_duration_minutes,
				customer_name, customer_phone, customer_email,
				city_id, street, postal_code, building_number, apartment_number,
				entrance, floor, intercom_code, cleaning_at, comments,
				payment_method
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
				$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
			RETURNING id`,
			o.UserID, o.ServiceID, o.RoomsCount, o.BathroomsCount, o.Sqm, o.WindowCount,
			details, totalPrice, o.DeliveryCharge, string(o.Frequency),
			o.BringVacuum, o.PrivateHouse, o.DurationMinutes,
			o.CustomerName, o.CustomerPhone, o.CustomerEmail,
			o.CityID, o.Address.Street, o.Address.PostalCode, o.Address.BuildingNumber,
			o.Address.ApartmentNumber, o.Address.Entrance, o.Address.Floor,
			o.Address.IntercomCode, o.CleaningAt, comments,
			string(o.PaymentMethod),
		).Scan(&orderID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
				return ErrServiceNotFound
			}
			return fmt.Errorf("insert order: %w", err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}

		o.ID = orderID
		o.TotalPrice = totalPrice
		o.Comments = comments
		return nil
	})

	return orderID, appliedPenalty, err
}

const orderColumns = `o.id, o.user_id, o.service_id, s.name, o.rooms_count, o.bathrooms_count,
	o.sqm, o.window_count, o.additional_services_details, o.total_price, o.delivery_charge,
	o.frequency, o.bring_vacuum_cleaner, o.is_private_house, o.estimated_duration_minutes,
	o.customer_name, o.customer_phone, o.customer_email,
	o.city_id, c.name, o.street, o.postal_code, o.building_number, o.apartment_number,
	o.entrance, o.floor, o.intercom_code, o.cleaning_at, o.comments,
	o.status, o.payment_method, o.payment_status, o.checkout_session_id,
	o.created_at, o.updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o       model.Order
		details []byte
		freq    string
		status  string
		method  string
		payment string
	)

	err := row.Scan(&o.ID, &o.UserID, &o.ServiceID, &o.ServiceName, &o.RoomsCount, &o.BathroomsCount,
		&o.Sqm, &o.WindowCount, &details, &o.TotalPrice, &o.DeliveryCharge,
		&freq, &o.BringVacuum, &o.PrivateHouse, &o.DurationMinutes,
		&o.CustomerName, &o.CustomerPhone, &o.CustomerEmail,
		&o.CityID, &o.CityName, &o.Address.Street, &o.Address.PostalCode, &o.Address.BuildingNumber,
		&o.Address.ApartmentNumber, &o.Address.Entrance, &o.Address.Floor,
		&o.Address.IntercomCode, &o.CleaningAt, &o.Comments,
		&status, &method, &payment, &o.CheckoutSessionID,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(details, &o.Additional); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	o.Frequency = model.Frequency(freq)
	o.Status = model.OrderStatus(status)
	o.PaymentMethod = model.PaymentMethod(method)
	o.PaymentStatus = model.PaymentStatus(payment)

	return &o, nil
}

// GetOrderByID возвращает заказ по идентификатору.
func (r *PostgresRepository) GetOrderByID(ctx context.Context, id int64) (*model.Order, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+orderColumns+`
		 FROM orders o
		 JOIN services s ON s.id = o.service_id
		 JOIN cities c ON c.id = o.city_id
		 WHERE o.id = $1`, id)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// GetOrdersByUser возвращает заказы пользователя, новые первыми.
func (r *PostgresRepository) GetOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+orderColumns+`
		 FROM orders o
		 JOIN services s ON s.id = o.service_id
		 JOIN cities c ON c.id = o.city_id
		 WHERE o.user_id = $1
		 ORDER BY o.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var res []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		res = append(res, *o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return res, nil
}

// UpdateOrderForEdit сохраняет отредактированные владельцем поля заказа
// вместе с пересчитанной ценой и новым снимком дополнительных услуг.
func (r *PostgresRepository) UpdateOrderForEdit(ctx context.Context, o *model.Order) error {
	details, err := json.Marshal(o.Additional)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE orders SET
			service_id = $2, rooms_count = $3, bathrooms_count = $4, sqm = $5,
			additional_services_details = $6, bring_vacuum_cleaner = $7,
			is_private_house = $8, estimated_duration_minutes = $9,
			total_price = $10, cleaning_at = $11, comments = $12, updated_at = now()
		 WHERE id = $1`,
		o.ID, o.ServiceID, o.RoomsCount, o.BathroomsCount, o.Sqm,
		details, o.BringVacuum, o.PrivateHouse, o.DurationMinutes,
		o.TotalPrice, o.CleaningAt, o.Comments,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// CancelOrder переводит заказ в статус canceled и, если начислен штраф,
// добавляет его к балансу владельца и дописывает системную пометку —
// в одной транзакции.
func (r *PostgresRepository) CancelOrder(ctx context.Context, orderID int64, userID int64, penalty int64, note string) error {
	return r.withRetry(ctx, func(ctx context.Context) error {
		tx, err := r.pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		defer tx.Rollback(ctx)

		// Охрана по статусу закрывает гонку двух параллельных отмен:
		// штраф зачисляется не более одного раза.
		cmdTag, err := tx.Exec(ctx,
			`UPDATE orders
			 SET status = $2, comments = comments || $3, updated_at = now()
			 WHERE id = $1 AND status NOT IN ($4, $5)`,
			orderID, string(model.OrderStatusCanceled), note,
			string(model.OrderStatusCompleted), string(model.OrderStatusCanceled),
		)
		if err != nil {
			return fmt.Errorf("cancel order: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrOrderNotCancelable
		}

		if penalty > 0 {
			_, err = tx.Exec(ctx,
				`UPDATE profiles SET penalty_balance = penalty_balance + $2, updated_at = now()
				 WHERE user_id = $1`,
				userID, penalty,
			)
			if err != nil {
				return fmt.Errorf("add penalty: %w", err)
			}
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}

		return nil
	})
}

// SetCheckoutSession сохраняет идентификатор платёжной сессии заказа.
func (r *PostgresRepository) SetCheckoutSession(ctx context.Context, orderID int64, sessionID string) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE orders SET checkout_session_id = $2, updated_at = now() WHERE id = $1`,
		orderID, sessionID,
	)
	if err != nil {
		return fmt.Errorf("set checkout session: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// SetPaymentStatus обновляет статус оплаты заказа одним атомарным апдейтом.
func (r *PostgresRepository) SetPaymentStatus(ctx context.Context, orderID int64, status model.PaymentStatus) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE orders SET payment_status = $2, updated_at = now() WHERE id = $1`,
		orderID, string(status),
	)
	if err != nil {
		return fmt.Errorf("set payment status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// GetOrdersForReminder возвращает незавершённые заказы с уборкой в указанный день.
func (r *PostgresRepository) GetOrdersForReminder(ctx context.Context, day time.Time) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+orderColumns+`
		 FROM orders o
		 JOIN services s ON s.id = o.service_id
		 JOIN cities c ON c.id = o.city_id
		 WHERE o.cleaning_at >= $1 AND o.cleaning_at < $2
		   AND o.status IN ($3, $4)`,
		day, day.AddDate(0, 0, 1),
		string(model.OrderStatusNew), string(model.OrderStatusInProgress),
	)
	if err != nil {
		return nil, fmt.Errorf("select orders for reminder: %w", err)
	}
	defer rows.Close()

	var res []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		res = append(res, *o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return res, nil
}

// CreateReview сохраняет отзыв. Отзыв остаётся неактивным до модерации.
func (r *PostgresRepository) CreateReview(ctx context.Context, rev *model.Review) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO reviews (author_name, text, rating) VALUES ($1, $2, $3) RETURNING id`,
		rev.AuthorName, rev.Text, rev.Rating,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create review: %w", err)
	}
	return id, nil
}

// ListActiveReviews возвращает прошедшие модерацию отзывы в порядке отображения.
func (r *PostgresRepository) ListActiveReviews(ctx context.Context) ([]model.Review, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, author_name, text, rating, is_active, display_order, show_date, created_at
		 FROM reviews WHERE is_active ORDER BY display_order, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("select reviews: %w", err)
	}
	defer rows.Close()

	var res []model.Review
	for rows.Next() {
		var rev model.Review
		err := rows.Scan(&rev.ID, &rev.AuthorName, &rev.Text, &rev.Rating,
			&rev.Active, &rev.DisplayOrder, &rev.ShowDate, &rev.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		res = append(res, rev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return res, nil
}
