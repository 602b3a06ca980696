package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pauloryan091/agmais/internal/dbtest"
	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/models"
)

type fixture struct {
	users        *UserGormRepository
	clients      *OwnedGormRepository[models.Client]
	services     *OwnedGormRepository[models.Service]
	appointments *AppointmentGormRepository
	dashboard    *DashboardGormRepository
}

func newFixture(t *testing.T) fixture {
	conn, _ := dbtest.Conn(t)
	return fixture{
		users:        NewUserGormRepository(conn),
		clients:      NewClientGormRepository(conn),
		services:     NewServiceGormRepository(conn),
		appointments: NewAppointmentGormRepository(conn),
		dashboard:    NewDashboardGormRepository(conn),
	}
}

func (f fixture) user(t *testing.T, email string) *models.User {
	u := &models.User{Name: email, Email: email, Password: "x"}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f fixture) client(t *testing.T, owner uint, name, email string) *models.Client {
	c := &models.Client{OwnerUserID: owner, Name: name, Email: email, Phone: "61999990000"}
	require.NoError(t, f.clients.Create(context.Background(), c))
	return c
}

func (f fixture) service(t *testing.T, owner uint, name string) *models.Service {
	s := &models.Service{OwnerUserID: owner, Name: name}
	require.NoError(t, f.services.Create(context.Background(), s))
	return s
}

func (f fixture) appointment(t *testing.T, owner, client, service uint, date, tm, status string) *models.Appointment {
	ap := &models.Appointment{
		OwnerUserID: owner,
		ClientID:    client,
		ServiceID:   service,
		Date:        date,
		Time:        tm,
		Status:      status,
	}
	require.NoError(t, f.appointments.Create(context.Background(), ap))
	return ap
}

func TestUserEmailUnique(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.user(t, "ana@x.com")

	err := f.users.Create(ctx, &models.User{Name: "Other", Email: "ana@x.com", Password: "y"})
	assert.True(t, httperr.Is(err, httperr.KindConflict))

	u, err := f.users.FindByEmail(ctx, "ANA@x.com")
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", u.Name)

	_, err = f.users.FindByEmail(ctx, "nobody@x.com")
	assert.True(t, httperr.HasCode(err, "email_not_registered"))

	taken, err := f.users.EmailTaken(ctx, "ana@x.com", u.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestOwnershipIsolation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.user(t, "a@x.com")
	b := f.user(t, "b@x.com")

	c := f.client(t, a.ID, "Bob", "bob@x.com")

	_, err := f.clients.Get(ctx, b.ID, c.ID)
	assert.True(t, httperr.Is(err, httperr.KindNotFound))

	err = f.clients.Update(ctx, b.ID, c.ID, &models.Client{Name: "Hijack"})
	assert.True(t, httperr.Is(err, httperr.KindNotFound))

	err = f.clients.Delete(ctx, b.ID, c.ID)
	assert.True(t, httperr.Is(err, httperr.KindNotFound))

	list, err := f.clients.List(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	got, err := f.clients.Get(ctx, a.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.Name)
}

func TestClientListOrderedByName(t *testing.T) {
	f := newFixture(t)
	a := f.user(t, "a@x.com")

	f.client(t, a.ID, "Carla", "")
	f.client(t, a.ID, "Ana", "")
	f.client(t, a.ID, "Bruno", "")

	list, err := f.clients.List(context.Background(), a.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Ana", "Bruno", "Carla"}, []string{list[0].Name, list[1].Name, list[2].Name})
}

func TestServiceUpdateOverwritesEveryField(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.user(t, "a@x.com")

	s := &models.Service{OwnerUserID: a.ID, Name: "Corte", Description: "Tesoura", Image: "corte.webp"}
	require.NoError(t, f.services.Create(ctx, s))

	require.NoError(t, f.services.Update(ctx, a.ID, s.ID, &models.Service{Name: "Corte curto"}))

	got, err := f.services.Get(ctx, a.ID, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Corte curto", got.Name)
	assert.Empty(t, got.Description)
	assert.Empty(t, got.Image)
}

func TestAppointmentListJoinsAndOrders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.user(t, "a@x.com")

	bob := f.client(t, a.ID, "Bob", "bob@x.com")
	cut := f.service(t, a.ID, "Haircut")

	f.appointment(t, a.ID, bob.ID, cut.ID, "2025-01-09", "15:00", "pending")
	latest := f.appointment(t, a.ID, bob.ID, cut.ID, "2025-01-10", "10:00", "pending")
	f.appointment(t, a.ID, bob.ID, cut.ID, "2025-01-10", "09:00", "done")

	list, err := f.appointments.List(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, latest.ID, list[0].ID)
	assert.Equal(t, "09:00", list[1].Time)
	assert.Equal(t, "2025-01-09", list[2].Date)

	require.NotNil(t, list[0].ClientName)
	assert.Equal(t, "Bob", *list[0].ClientName)
	assert.Equal(t, "bob@x.com", *list[0].ClientEmail)
	assert.Equal(t, "Haircut", *list[0].ServiceName)
}

func TestDeletedClientLeavesDanglingAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.user(t, "a@x.com")

	bob := f.client(t, a.ID, "Bob", "bob@x.com")
	cut := f.service(t, a.ID, "Haircut")
	ap := f.appointment(t, a.ID, bob.ID, cut.ID, "2025-01-10", "10:00", "pending")

	require.NoError(t, f.clients.Delete(ctx, a.ID, bob.ID))

	view, err := f.appointments.GetView(ctx, a.ID, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, view.ClientID)
	assert.Nil(t, view.ClientName)
	assert.Nil(t, view.ClientEmail)
	require.NotNil(t, view.ServiceName)
}

func TestAppointmentUpdateIsOwnerScoped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.user(t, "a@x.com")
	b := f.user(t, "b@x.com")

	bob := f.client(t, a.ID, "Bob", "")
	cut := f.service(t, a.ID, "Haircut")
	ap := f.appointment(t, a.ID, bob.ID, cut.ID, "2025-01-10", "10:00", "pending")

	foreign := *ap
	foreign.OwnerUserID = b.ID
	foreign.Status = "canceled"
	assert.True(t, httperr.Is(f.appointments.Update(ctx, &foreign), httperr.KindNotFound))

	got, err := f.appointments.Get(ctx, a.ID, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", got.Status)

	ap.Status = "pending"
	assert.NoError(t, f.appointments.Update(ctx, ap), "same-value update still matches the row")

	assert.True(t, httperr.Is(f.appointments.Delete(ctx, b.ID, ap.ID), httperr.KindNotFound))
	assert.NoError(t, f.appointments.Delete(ctx, a.ID, ap.ID))
}

func TestDashboardQueries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.user(t, "a@x.com")
	b := f.user(t, "b@x.com")

	bob := f.client(t, a.ID, "Bob", "bob@x.com")
	eva := f.client(t, a.ID, "Eva", "eva@x.com")
	cut := f.service(t, a.ID, "Haircut")
	beard := f.service(t, a.ID, "Beard")

	f.appointment(t, a.ID, bob.ID, cut.ID, "2025-01-10", "10:00", "pending")
	f.appointment(t, a.ID, bob.ID, cut.ID, "2025-01-20", "11:00", "confirmed")
	f.appointment(t, a.ID, eva.ID, beard.ID, "2025-02-01", "09:00", "pending")

	other := f.client(t, b.ID, "Zed", "")
	otherSvc := f.service(t, b.ID, "Haircut")
	f.appointment(t, b.ID, other.ID, otherSvc.ID, "2025-01-10", "10:00", "pending")

	n, err := f.dashboard.CountAppointmentsOn(ctx, a.ID, "2025-01-10")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = f.dashboard.CountAppointmentsInMonth(ctx, a.ID, "2025-01")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	byStatus, err := f.dashboard.CountAppointmentsByStatus(ctx, a.ID)
	require.NoError(t, err)
	counts := map[string]int64{}
	for _, s := range byStatus {
		counts[s.Status] = s.Total
	}
	assert.Equal(t, map[string]int64{"pending": 2, "confirmed": 1}, counts)

	top, err := f.dashboard.TopServices(ctx, a.ID, 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Haircut", top[0].Name)
	assert.Equal(t, int64(2), top[0].Total)

	clients, err := f.dashboard.TopClients(ctx, a.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, "Bob", clients[0].Name)

	hits, err := f.dashboard.SearchClients(ctx, a.ID, "EVA", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, eva.ID, hits[0].ID)

	svcHits, err := f.dashboard.SearchServices(ctx, a.ID, "hair", 5)
	require.NoError(t, err)
	assert.Len(t, svcHits, 1)

	apHits, err := f.dashboard.SearchAppointments(ctx, a.ID, "2025-01", 5)
	require.NoError(t, err)
	assert.Len(t, apHits, 2)
	assert.Equal(t, "2025-01-20", apHits[0].Date)
}
