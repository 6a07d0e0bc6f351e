package bootstrap

import (
	"context"

	"venue-booking/internal/infra/identity"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/jwt"
	"venue-booking/internal/usecase"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var IdentityModule = fx.Module("identity",
	fx.Provide(
		NewTokenValidator,
	),
)

// NewTokenValidator picks the token issuer by AUTH_PROVIDER. Local JWTs are
// the default; firebase users are provisioned on first sight.
func NewTokenValidator(cfg config.Config, jwtService *jwt.Service, readStore queries.UserReadStore, uow shared.UnitOfWork) (usecase.TokenValidator, error) {
	if cfg.Auth.Provider != config.AuthProviderFirebase {
		return usecase.NewTokenValidator(jwtService), nil
	}

	client, err := identity.NewFirebaseAuthClient(context.Background(), cfg.Auth.FirebaseProjectID, cfg.Auth.FirebaseCredentialsFile)
	if err != nil {
		return nil, err
	}
	return usecase.NewExternalTokenValidator(identity.NewFirebaseVerifier(client), readStore, uow), nil
}
