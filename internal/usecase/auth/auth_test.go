package auth

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pauloryan091/agmais/internal/dbtest"
	"github.com/pauloryan091/agmais/internal/domain/user"
	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/infra/repository"
	"github.com/pauloryan091/agmais/internal/models"
	"github.com/pauloryan091/agmais/internal/session"
)

type env struct {
	db       *gorm.DB
	users    *repository.UserGormRepository
	sessions *session.Manager
}

func newEnv(t *testing.T) env {
	conn, db := dbtest.Conn(t)
	return env{
		db:       db,
		users:    repository.NewUserGormRepository(conn),
		sessions: session.NewManager(session.NewMemoryStore(), session.NewCodec("test-secret", time.Hour), time.Hour),
	}
}

func (e env) register(t *testing.T, name, email, pw string) *models.User {
	u, err := NewRegister(e.users, nil, nil).Execute(t.Context(), RegisterInput{Name: name, Email: email, Password: pw})
	require.NoError(t, err)
	return u
}

func TestRegisterThenLogin(t *testing.T) {
	e := newEnv(t)
	u := e.register(t, "Ana", "ana@x.com", "pw1")

	assert.True(t, user.IsHashed(u.Password))

	out, err := NewLogin(e.users, e.sessions, nil).Execute(t.Context(), "ana@x.com", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	s, err := e.sessions.Resolve(t.Context(), out.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, s.UserID)
	assert.Equal(t, "Ana", s.Name)
}

func TestLoginFailures(t *testing.T) {
	e := newEnv(t)
	e.register(t, "Ana", "ana@x.com", "pw1")
	uc := NewLogin(e.users, e.sessions, nil)

	_, err := uc.Execute(t.Context(), "ana@x.com", "wrong")
	require.Error(t, err)
	assert.True(t, httperr.Is(err, httperr.KindAuth))
	assert.Equal(t, "Senha incorreta", err.(*httperr.Error).Message)

	_, err = uc.Execute(t.Context(), "nobody@x.com", "pw1")
	assert.True(t, httperr.Is(err, httperr.KindNotFound))
	assert.True(t, httperr.HasCode(err, "email_not_registered"))
}

func TestLoginRehashesLegacyPassword(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.db.Create(&models.User{Name: "Old", Email: "old@x.com", Password: "123456"}).Error)

	_, err := NewLogin(e.users, e.sessions, nil).Execute(t.Context(), "old@x.com", "123456")
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, e.db.Where("email = ?", "old@x.com").First(&stored).Error)
	assert.True(t, user.IsHashed(stored.Password))
}

func TestRegisterValidation(t *testing.T) {
	e := newEnv(t)
	e.register(t, "Ana", "ana@x.com", "pw1")
	uc := NewRegister(e.users, nil, nil)

	_, err := uc.Execute(t.Context(), RegisterInput{Name: "", Email: "a@x.com", Password: "p"})
	assert.True(t, httperr.Is(err, httperr.KindValidation))

	_, err = uc.Execute(t.Context(), RegisterInput{Name: "A", Email: "not-an-email", Password: "p"})
	assert.True(t, httperr.Is(err, httperr.KindValidation))

	_, err = uc.Execute(t.Context(), RegisterInput{Name: "Ana 2", Email: "ANA@x.com", Password: "p"})
	assert.True(t, httperr.Is(err, httperr.KindConflict))
}

type noDNS struct{}

func (noDNS) LookupMX(context.Context, string) ([]*net.MX, error) {
	return nil, errors.New("no mx")
}

func (noDNS) LookupIPAddr(context.Context, string) ([]net.IPAddr, error) {
	return nil, errors.New("no host")
}

func TestRegisterChecksDomainWhenResolverGiven(t *testing.T) {
	e := newEnv(t)
	_, err := NewRegister(e.users, nil, noDNS{}).Execute(t.Context(), RegisterInput{Name: "A", Email: "a@nowhere.invalid", Password: "p"})
	assert.True(t, httperr.HasCode(err, "invalid_email_domain"))
}

func TestUpdateProfile(t *testing.T) {
	e := newEnv(t)
	ana := e.register(t, "Ana", "ana@x.com", "pw1")
	e.register(t, "Bia", "bia@x.com", "pw2")

	out, err := NewLogin(e.users, e.sessions, nil).Execute(t.Context(), "ana@x.com", "pw1")
	require.NoError(t, err)
	uc := NewUpdateProfile(e.users, e.sessions, nil)

	_, err = uc.Execute(t.Context(), out.Session, UpdateProfileInput{Email: "bia@x.com"})
	assert.True(t, httperr.Is(err, httperr.KindConflict))

	_, err = uc.Execute(t.Context(), out.Session, UpdateProfileInput{CurrentPassword: "nope", NewPassword: "pw9"})
	assert.True(t, httperr.Is(err, httperr.KindAuth))

	u, err := uc.Execute(t.Context(), out.Session, UpdateProfileInput{
		Name:            "Ana Maria",
		Email:           "anamaria@x.com",
		CurrentPassword: "pw1",
		NewPassword:     "pw9",
	})
	require.NoError(t, err)
	assert.Equal(t, ana.ID, u.ID)
	assert.Equal(t, "Ana Maria", u.Name)

	s, err := e.sessions.Resolve(t.Context(), out.Token)
	require.NoError(t, err)
	assert.Equal(t, "anamaria@x.com", s.Email)

	_, err = NewLogin(e.users, e.sessions, nil).Execute(t.Context(), "anamaria@x.com", "pw9")
	assert.NoError(t, err)
}

func TestOverlongPasswordIsValidationError(t *testing.T) {
	e := newEnv(t)
	long := strings.Repeat("x", 80)

	_, err := NewRegister(e.users, nil, nil).Execute(t.Context(), RegisterInput{Name: "Ana", Email: "ana@x.com", Password: long})
	assert.True(t, httperr.Is(err, httperr.KindValidation))
	assert.True(t, httperr.HasCode(err, "password_too_long"))

	var n int64
	require.NoError(t, e.db.Model(&models.User{}).Count(&n).Error)
	assert.Zero(t, n)

	e.register(t, "Ana", "ana@x.com", "pw1")
	out, err := NewLogin(e.users, e.sessions, nil).Execute(t.Context(), "ana@x.com", "pw1")
	require.NoError(t, err)

	_, err = NewUpdateProfile(e.users, e.sessions, nil).Execute(t.Context(), out.Session, UpdateProfileInput{
		CurrentPassword: "pw1",
		NewPassword:     long,
	})
	assert.True(t, httperr.HasCode(err, "password_too_long"))
}

func TestLoginKeepsOverlongLegacyPassword(t *testing.T) {
	e := newEnv(t)
	long := strings.Repeat("y", 80)
	require.NoError(t, e.db.Create(&models.User{Name: "Old", Email: "old@x.com", Password: long}).Error)

	_, err := NewLogin(e.users, e.sessions, nil).Execute(t.Context(), "old@x.com", long)
	require.NoError(t, err)

	var u models.User
	require.NoError(t, e.db.Where("email = ?", "old@x.com").First(&u).Error)
	assert.Equal(t, long, u.Password)
}

func TestLogoutDestroysSession(t *testing.T) {
	e := newEnv(t)
	e.register(t, "Ana", "ana@x.com", "pw1")
	out, err := NewLogin(e.users, e.sessions, nil).Execute(t.Context(), "ana@x.com", "pw1")
	require.NoError(t, err)

	require.NoError(t, NewLogout(e.sessions).Execute(t.Context(), out.Token))
	require.NoError(t, NewLogout(e.sessions).Execute(t.Context(), ""))

	_, err = e.sessions.Resolve(t.Context(), out.Token)
	assert.True(t, httperr.Is(err, httperr.KindUnauthorized))
}
