package repository

import (
	"context"

	"gorm.io/gorm"

	dbpkg "github.com/pauloryan091/agmais/internal/db"
	domain "github.com/pauloryan091/agmais/internal/domain/appointment"
	"github.com/pauloryan091/agmais/internal/dto"
	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/models"
)

var errAppointmentNotFound = httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado")

const appointmentViewColumns = `appointments.id, appointments.client_id, appointments.service_id,
	appointments.appointment_date, appointments.appointment_time, appointments.status,
	appointments.created_at,
	clients.name AS client_name, clients.phone AS client_phone, clients.email AS client_email,
	services.name AS service_name`

type AppointmentGormRepository struct {
	conn     dbpkg.Conn
	clients  *OwnedGormRepository[models.Client]
	services *OwnedGormRepository[models.Service]
}

func NewAppointmentGormRepository(conn dbpkg.Conn) *AppointmentGormRepository {
	return &AppointmentGormRepository{
		conn:     conn,
		clients:  NewClientGormRepository(conn),
		services: NewServiceGormRepository(conn),
	}
}

// joinedAppointments selects appointment views with LEFT JOINs so a
// deleted client or service yields null display fields.
func joinedAppointments(db *gorm.DB, ownerID uint) *gorm.DB {
	return db.Table("appointments").
		Select(appointmentViewColumns).
		Joins("LEFT JOIN clients ON clients.id = appointments.client_id").
		Joins("LEFT JOIN services ON services.id = appointments.service_id").
		Scopes(ownedBy("appointments", ownerID))
}

// --------------------------------------------------
// Client / Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	ownerID uint,
	clientID uint,
) (*models.Client, error) {
	return r.clients.Get(ctx, ownerID, clientID)
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	ownerID uint,
	serviceID uint,
) (*models.Service, error) {
	return r.services.Get(ctx, ownerID, serviceID)
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	ownerID uint,
) ([]dto.AppointmentView, error) {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return nil, err
	}

	var views []dto.AppointmentView
	if err := joinedAppointments(db, ownerID).
		Order("appointments.appointment_date DESC").
		Order("appointments.appointment_time DESC").
		Order("appointments.id DESC").
		Scan(&views).Error; err != nil {
		return nil, wrapInternal("appointments_list_failed", err)
	}
	return views, nil
}

func (r *AppointmentGormRepository) Get(
	ctx context.Context,
	ownerID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return nil, err
	}

	var ap models.Appointment
	if err := db.
		Scopes(ownedBy("appointments", ownerID)).
		Where("appointments.id = ?", appointmentID).
		First(&ap).Error; err != nil {
		return nil, notFoundOr(err, errAppointmentNotFound, "appointment_get_failed")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetView(
	ctx context.Context,
	ownerID uint,
	appointmentID uint,
) (*dto.AppointmentView, error) {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return nil, err
	}

	var views []dto.AppointmentView
	if err := joinedAppointments(db, ownerID).
		Where("appointments.id = ?", appointmentID).
		Limit(1).
		Scan(&views).Error; err != nil {
		return nil, wrapInternal("appointment_get_failed", err)
	}
	if len(views) == 0 {
		return nil, errAppointmentNotFound
	}
	return &views[0], nil
}

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return err
	}

	if err := db.Create(ap).Error; err != nil {
		return wrapInternal("appointment_create_failed", err)
	}
	return nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return err
	}

	res := db.Model(&models.Appointment{}).
		Scopes(ownedBy("appointments", ap.OwnerUserID)).
		Where("appointments.id = ?", ap.ID).
		Updates(map[string]any{
			"client_id":        ap.ClientID,
			"service_id":       ap.ServiceID,
			"appointment_date": ap.Date,
			"appointment_time": ap.Time,
			"status":           ap.Status,
		})
	if res.Error != nil {
		return wrapInternal("appointment_update_failed", res.Error)
	}
	if res.RowsAffected == 0 {
		return errAppointmentNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	ownerID uint,
	appointmentID uint,
) error {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return err
	}

	res := db.
		Scopes(ownedBy("appointments", ownerID)).
		Where("appointments.id = ?", appointmentID).
		Delete(&models.Appointment{})
	if res.Error != nil {
		return wrapInternal("appointment_delete_failed", res.Error)
	}
	if res.RowsAffected == 0 {
		return errAppointmentNotFound
	}
	return nil
}

var _ domain.Repository = (*AppointmentGormRepository)(nil)
