package auth

import (
	"context"
	"strings"

	"github.com/pauloryan091/agmais/internal/audit"
	"github.com/pauloryan091/agmais/internal/domain/user"
	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/models"
	"github.com/pauloryan091/agmais/internal/session"
	"github.com/pauloryan091/agmais/internal/validators"
)

// ======================================================
// GET PROFILE
// ======================================================

type GetProfile struct {
	users user.Repository
}

func NewGetProfile(users user.Repository) *GetProfile {
	return &GetProfile{users: users}
}

func (uc *GetProfile) Execute(ctx context.Context, userID uint) (*models.User, error) {
	return uc.users.GetByID(ctx, userID)
}

// ======================================================
// UPDATE PROFILE
// ======================================================

// UpdateProfileInput leaves a field untouched when empty. The password
// only changes when both passwords are given.
type UpdateProfileInput struct {
	Name            string
	Email           string
	CurrentPassword string
	NewPassword     string
}

type UpdateProfile struct {
	users    user.Repository
	sessions *session.Manager
	audit    *audit.Dispatcher
}

func NewUpdateProfile(
	users user.Repository,
	sessions *session.Manager,
	audit *audit.Dispatcher,
) *UpdateProfile {
	return &UpdateProfile{
		users:    users,
		sessions: sessions,
		audit:    audit,
	}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	s *session.Session,
	in UpdateProfileInput,
) (*models.User, error) {

	u, err := uc.users.GetByID(ctx, s.UserID)
	if err != nil {
		return nil, err
	}

	changed := []string{}

	// --------------------------------------------------
	// 1️⃣ Senha
	// --------------------------------------------------
	if in.CurrentPassword != "" && in.NewPassword != "" {
		if ok, _ := user.CheckPassword(u.Password, in.CurrentPassword); !ok {
			return nil, httperr.ErrAuth("wrong_password", "Senha atual incorreta")
		}
		if len(in.NewPassword) > user.MaxPasswordBytes {
			return nil, user.ErrPasswordTooLong
		}
		hashed, err := user.HashPassword(in.NewPassword)
		if err != nil {
			return nil, httperr.ErrInternal("password_hash_failed", err)
		}
		u.Password = hashed
		changed = append(changed, "senha")
	}

	// --------------------------------------------------
	// 2️⃣ Nome e email
	// --------------------------------------------------
	if name := strings.TrimSpace(in.Name); name != "" {
		u.Name = name
		changed = append(changed, "nome")
	}

	if email := validators.NormalizeEmail(in.Email); email != "" && email != u.Email {
		if !validators.IsEmailShapeValid(email) {
			return nil, httperr.ErrValidation("invalid_email", "Email inválido")
		}
		taken, err := uc.users.EmailTaken(ctx, email, u.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, httperr.ErrConflict("email_taken", "Email já está em uso por outro usuário")
		}
		u.Email = email
		changed = append(changed, "email")
	}

	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Sessão reflete os novos dados
	// --------------------------------------------------
	s.Name = u.Name
	s.Email = u.Email
	if err := uc.sessions.Refresh(ctx, s); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			OwnerID:  u.ID,
			Action:   "profile_updated",
			Entity:   "user",
			EntityID: &u.ID,
			Metadata: map[string]any{"fields": changed},
		})
	}

	return u, nil
}
