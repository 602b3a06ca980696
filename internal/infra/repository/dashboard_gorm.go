package repository

import (
	"context"

	"gorm.io/gorm"

	dbpkg "github.com/pauloryan091/agmais/internal/db"
	"github.com/pauloryan091/agmais/internal/domain/dashboard"
	"github.com/pauloryan091/agmais/internal/dto"
	"github.com/pauloryan091/agmais/internal/models"
)

// DashboardGormRepository runs the read-only aggregate queries.
type DashboardGormRepository struct {
	conn dbpkg.Conn
}

func NewDashboardGormRepository(conn dbpkg.Conn) *DashboardGormRepository {
	return &DashboardGormRepository{conn: conn}
}

func (r *DashboardGormRepository) count(
	ctx context.Context,
	model any,
	table string,
	ownerID uint,
	scopes ...func(*gorm.DB) *gorm.DB,
) (int64, error) {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := db.Model(model).
		Scopes(ownedBy(table, ownerID)).
		Scopes(scopes...).
		Count(&n).Error; err != nil {
		return 0, wrapInternal("dashboard_count_failed", err)
	}
	return n, nil
}

// --------------------------------------------------
// Counters
// --------------------------------------------------

func (r *DashboardGormRepository) CountAppointmentsOn(
	ctx context.Context,
	ownerID uint,
	date string,
) (int64, error) {
	return r.count(ctx, &models.Appointment{}, "appointments", ownerID, func(db *gorm.DB) *gorm.DB {
		return db.Where("appointments.appointment_date = ?", date)
	})
}

// CountAppointmentsInMonth takes month as YYYY-MM.
func (r *DashboardGormRepository) CountAppointmentsInMonth(
	ctx context.Context,
	ownerID uint,
	month string,
) (int64, error) {
	return r.count(ctx, &models.Appointment{}, "appointments", ownerID, func(db *gorm.DB) *gorm.DB {
		return db.Where("appointments.appointment_date LIKE ?", month+"-%")
	})
}

func (r *DashboardGormRepository) CountAppointmentsByStatus(
	ctx context.Context,
	ownerID uint,
) ([]dto.StatusCount, error) {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return nil, err
	}

	var rows []dto.StatusCount
	if err := db.Model(&models.Appointment{}).
		Select("appointments.status AS status, COUNT(*) AS total").
		Scopes(ownedBy("appointments", ownerID)).
		Group("appointments.status").
		Scan(&rows).Error; err != nil {
		return nil, wrapInternal("dashboard_count_failed", err)
	}
	return rows, nil
}

func (r *DashboardGormRepository) CountClients(ctx context.Context, ownerID uint) (int64, error) {
	return r.count(ctx, &models.Client{}, "clients", ownerID)
}

func (r *DashboardGormRepository) CountServices(ctx context.Context, ownerID uint) (int64, error) {
	return r.count(ctx, &models.Service{}, "services", ownerID)
}

// --------------------------------------------------
// Rankings
// --------------------------------------------------

func (r *DashboardGormRepository) rank(
	ctx context.Context,
	table string,
	fk string,
	ownerID uint,
	limit int,
) ([]dto.RankItem, error) {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return nil, err
	}

	var items []dto.RankItem
	if err := db.Table(table).
		Select(table+".id AS id, "+table+".name AS name, COUNT(appointments.id) AS total").
		Joins("LEFT JOIN appointments ON appointments."+fk+" = "+table+".id AND appointments.owner_user_id = ?", ownerID).
		Scopes(ownedBy(table, ownerID)).
		Group(table + ".id, " + table + ".name").
		Order("total DESC").
		Order(table + ".name ASC").
		Limit(limit).
		Scan(&items).Error; err != nil {
		return nil, wrapInternal("dashboard_rank_failed", err)
	}
	return items, nil
}

func (r *DashboardGormRepository) TopServices(ctx context.Context, ownerID uint, limit int) ([]dto.RankItem, error) {
	return r.rank(ctx, "services", "service_id", ownerID, limit)
}

func (r *DashboardGormRepository) TopClients(ctx context.Context, ownerID uint, limit int) ([]dto.RankItem, error) {
	return r.rank(ctx, "clients", "client_id", ownerID, limit)
}

// --------------------------------------------------
// Recent rows
// --------------------------------------------------

// RecentAppointments orders by scheduled date and time.
func (r *DashboardGormRepository) RecentAppointments(
	ctx context.Context,
	ownerID uint,
	limit int,
) ([]dto.AppointmentView, error) {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return nil, err
	}

	var views []dto.AppointmentView
	if err := joinedAppointments(db, ownerID).
		Order("appointments.appointment_date DESC").
		Order("appointments.appointment_time DESC").
		Limit(limit).
		Scan(&views).Error; err != nil {
		return nil, wrapInternal("dashboard_recent_failed", err)
	}
	return views, nil
}

// LatestAppointments orders by creation time.
func (r *DashboardGormRepository) LatestAppointments(
	ctx context.Context,
	ownerID uint,
	limit int,
) ([]dto.AppointmentView, error) {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return nil, err
	}

	var views []dto.AppointmentView
	if err := joinedAppointments(db, ownerID).
		Order("appointments.created_at DESC").
		Order("appointments.id DESC").
		Limit(limit).
		Scan(&views).Error; err != nil {
		return nil, wrapInternal("dashboard_recent_failed", err)
	}
	return views, nil
}

func (r *DashboardGormRepository) LatestClients(
	ctx context.Context,
	ownerID uint,
	limit int,
) ([]models.Client, error) {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return nil, err
	}

	var clients []models.Client
	if err := db.
		Scopes(ownedBy("clients", ownerID)).
		Order("clients.created_at DESC").
		Order("clients.id DESC").
		Limit(limit).
		Find(&clients).Error; err != nil {
		return nil, wrapInternal("dashboard_recent_failed", err)
	}
	return clients, nil
}

// --------------------------------------------------
// Search
// --------------------------------------------------

func (r *DashboardGormRepository) SearchClients(
	ctx context.Context,
	ownerID uint,
	term string,
	limit int,
) ([]dto.ClientHit, error) {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return nil, err
	}

	like := likePattern(term)

	var hits []dto.ClientHit
	if err := db.Model(&models.Client{}).
		Select("clients.id, clients.name, clients.phone, clients.email").
		Scopes(ownedBy("clients", ownerID)).
		Where("LOWER(clients.name) LIKE ? OR LOWER(clients.email) LIKE ? OR clients.phone LIKE ?", like, like, like).
		Order("clients.name ASC").
		Limit(limit).
		Scan(&hits).Error; err != nil {
		return nil, wrapInternal("search_failed", err)
	}
	return hits, nil
}

func (r *DashboardGormRepository) SearchServices(
	ctx context.Context,
	ownerID uint,
	term string,
	limit int,
) ([]dto.ServiceHit, error) {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return nil, err
	}

	var hits []dto.ServiceHit
	if err := db.Model(&models.Service{}).
		Select("services.id, services.name, services.description").
		Scopes(ownedBy("services", ownerID)).
		Where("LOWER(services.name) LIKE ?", likePattern(term)).
		Order("services.name ASC").
		Limit(limit).
		Scan(&hits).Error; err != nil {
		return nil, wrapInternal("search_failed", err)
	}
	return hits, nil
}

func (r *DashboardGormRepository) SearchAppointments(
	ctx context.Context,
	ownerID uint,
	term string,
	limit int,
) ([]dto.AppointmentView, error) {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return nil, err
	}

	like := likePattern(term)

	var views []dto.AppointmentView
	if err := joinedAppointments(db, ownerID).
		Where(
			"LOWER(clients.name) LIKE ? OR LOWER(services.name) LIKE ? OR appointments.appointment_date LIKE ?",
			like, like, like,
		).
		Order("appointments.appointment_date DESC").
		Limit(limit).
		Scan(&views).Error; err != nil {
		return nil, wrapInternal("search_failed", err)
	}
	return views, nil
}

var _ dashboard.Repository = (*DashboardGormRepository)(nil)
