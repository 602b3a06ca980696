package audit

import (
	"context"
	"time"

	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/models"
)

type Filter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

// List returns one page of the owner's audit trail, newest first, and the
// total number of matching rows.
func (l *Logger) List(
	ctx context.Context,
	ownerID uint,
	f Filter,
) ([]models.AuditLog, int64, error) {

	db, err := l.conn.Session(ctx)
	if err != nil {
		return nil, 0, err
	}

	// --------------------------------------------------
	// Query base (sempre protegido pelo dono)
	// --------------------------------------------------
	q := db.Model(&models.AuditLog{}).Where("owner_user_id = ?", ownerID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", f.To.Add(24*time.Hour))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, httperr.ErrInternal("audit_count_failed", err)
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, httperr.ErrInternal("audit_list_failed", err)
	}

	return logs, total, nil
}
