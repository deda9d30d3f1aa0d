package bootstrap

import (
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	return jwt.NewServiceFromConfig(cfg.JWT)
}
