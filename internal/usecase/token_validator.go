package usecase

import (
	"context"
	"log/slog"

	"venue-booking/internal/domain/user"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/identity"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/jwt"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator_mock.go -package=usecasemock

var ErrInactiveUser = errs.New("user is inactive")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(_ context.Context, tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.UserID, role, nil
}

type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (identity.Identity, error)
}

// externalTokenValidator accepts identity-provider tokens and maps the
// provider subject onto a local user, creating it on first sight.
type externalTokenValidator struct {
	verifier  IdentityVerifier
	readStore queries.UserReadStore
	uow       shared.UnitOfWork
}

func NewExternalTokenValidator(verifier IdentityVerifier, readStore queries.UserReadStore, uow shared.UnitOfWork) TokenValidator {
	return &externalTokenValidator{
		verifier:  verifier,
		readStore: readStore,
		uow:       uow,
	}
}

func (t *externalTokenValidator) ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, user.Role, error) {
	id, err := t.verifier.Verify(ctx, tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	view, err := t.readStore.FindByExternalUID(ctx, id.UID)
	if err == nil {
		if !view.IsActive {
			return uuid.Nil, "", ErrInactiveUser
		}
		role, roleErr := user.NewRole(view.Role)
		if roleErr != nil {
			return uuid.Nil, "", roleErr
		}
		return view.ID, role, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, "", err
	}

	return t.provision(ctx, id)
}

func (t *externalTokenValidator) provision(ctx context.Context, id identity.Identity) (uuid.UUID, user.Role, error) {
	email, err := user.NewEmail(id.Email)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, errs.ErrDomainValidation)
	}
	u, err := user.NewExternalUser(id.UID, email, id.Name)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, errs.ErrDomainValidation)
	}

	var userID uuid.UUID
	err = t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, createErr := tx.Users().Create(ctx, u)
		userID = created
		return createErr
	})
	if err != nil {
		// A parallel first request may have created the row already.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			view, findErr := t.readStore.FindByExternalUID(ctx, id.UID)
			if findErr != nil {
				return uuid.Nil, "", findErr
			}
			role, roleErr := user.NewRole(view.Role)
			if roleErr != nil {
				return uuid.Nil, "", roleErr
			}
			return view.ID, role, nil
		}
		return uuid.Nil, "", err
	}

	slog.Info("provisioned user from identity provider", "user_id", userID)
	return userID, user.RoleCustomer, nil
}
