package auth

import (
	"context"

	"github.com/pauloryan091/agmais/internal/audit"
	"github.com/pauloryan091/agmais/internal/domain/user"
	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/session"
	"github.com/pauloryan091/agmais/internal/validators"
)

type LoginOutput struct {
	Token   string
	Session *session.Session
}

type Login struct {
	users    user.Repository
	sessions *session.Manager
	audit    *audit.Dispatcher
}

func NewLogin(
	users user.Repository,
	sessions *session.Manager,
	audit *audit.Dispatcher,
) *Login {
	return &Login{
		users:    users,
		sessions: sessions,
		audit:    audit,
	}
}

func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (*LoginOutput, error) {

	email = validators.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, httperr.ErrValidation("missing_fields", "Email e senha são obrigatórios")
	}

	// --------------------------------------------------
	// 1️⃣ Usuário
	// --------------------------------------------------
	u, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Senha (texto puro legado é convertido para hash quando cabe no bcrypt)
	// --------------------------------------------------
	ok, legacy := user.CheckPassword(u.Password, password)
	if !ok {
		return nil, httperr.ErrAuth("wrong_password", "Senha incorreta")
	}

	if legacy && len(password) <= user.MaxPasswordBytes {
		hashed, err := user.HashPassword(password)
		if err != nil {
			return nil, httperr.ErrInternal("password_hash_failed", err)
		}
		u.Password = hashed
		if err := uc.users.Update(ctx, u); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 3️⃣ Sessão
	// --------------------------------------------------
	token, s, err := uc.sessions.Create(ctx, u.ID, u.Name, u.Email)
	if err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			OwnerID:  u.ID,
			Action:   "user_logged_in",
			Entity:   "user",
			EntityID: &u.ID,
		})
	}

	return &LoginOutput{Token: token, Session: s}, nil
}
