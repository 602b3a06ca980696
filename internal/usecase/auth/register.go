package auth

import (
	"context"
	"strings"

	"github.com/pauloryan091/agmais/internal/audit"
	"github.com/pauloryan091/agmais/internal/domain/user"
	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/models"
	"github.com/pauloryan091/agmais/internal/validators"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type Register struct {
	users    user.Repository
	audit    *audit.Dispatcher
	resolver validators.Resolver
}

// NewRegister checks email domains only when resolver is not nil.
func NewRegister(
	users user.Repository,
	audit *audit.Dispatcher,
	resolver validators.Resolver,
) *Register {
	return &Register{
		users:    users,
		audit:    audit,
		resolver: resolver,
	}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	// --------------------------------------------------
	// 1️⃣ Campos
	// --------------------------------------------------
	name := strings.TrimSpace(in.Name)
	email := validators.NormalizeEmail(in.Email)

	if name == "" || email == "" || in.Password == "" {
		return nil, httperr.ErrValidation("missing_fields", "Todos os campos são obrigatórios")
	}

	if !validators.IsEmailShapeValid(email) {
		return nil, httperr.ErrValidation("invalid_email", "Email inválido")
	}

	if len(in.Password) > user.MaxPasswordBytes {
		return nil, user.ErrPasswordTooLong
	}

	if uc.resolver != nil && !validators.IsEmailDomainValid(ctx, uc.resolver, email) {
		return nil, httperr.ErrValidation("invalid_email_domain", "Domínio de email inválido")
	}

	// --------------------------------------------------
	// 2️⃣ Email único
	// --------------------------------------------------
	taken, err := uc.users.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrConflict("email_taken", "Email já cadastrado")
	}

	// --------------------------------------------------
	// 3️⃣ Persistência
	// --------------------------------------------------
	hashed, err := user.HashPassword(in.Password)
	if err != nil {
		return nil, httperr.ErrInternal("password_hash_failed", err)
	}

	u := &models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
	}
	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			OwnerID:  u.ID,
			Action:   "user_registered",
			Entity:   "user",
			EntityID: &u.ID,
		})
	}

	return u, nil
}
