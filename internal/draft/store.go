// Package draft реализует хранилище черновиков заказов, привязанных к сессии.
// В сессии живёт ровно один черновик; каждый пересчёт цены перезаписывает его.
package draft

import (
	"context"
	"errors"
	"time"

	"github.com/goldclean/goldclean-system/internal/model"
)

// DefaultTTL ограничивает время жизни черновика временем жизни сессии.
const DefaultTTL = 2 * time.Hour

// ErrNotFound возвращается, если в сессии нет черновика или он истёк.
var ErrNotFound = errors.New("draft not found")

// Store описывает контракт хранилища черновиков. Последняя запись побеждает;
// слияния параллельных пересчётов нет.
type Store interface {
	Save(ctx context.Context, sessionID string, d *model.OrderDraft) error
	Get(ctx context.Context, sessionID string) (*model.OrderDraft, error)
	Delete(ctx context.Context, sessionID string) error
}
