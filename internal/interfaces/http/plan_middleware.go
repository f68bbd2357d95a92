package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/temucosoft/retail-api/internal/application/dto"
)

// featureChecker es el contrato mínimo que necesita el middleware para
// verificar features del plan. Lo implementa *authz.Authorizer; el uso de
// interfaz evita el import circular.
type featureChecker interface {
	HasReports(ctx context.Context, role, tenantID string) (bool, error)
	HasAPIAccess(ctx context.Context, role, tenantID string) (bool, error)
}

// RequireReports verifica que el plan del tenant incluya reportes.
// Debe usarse DESPUÉS de AuthMiddleware.
//
//   - 403 Forbidden → el plan no incluye la feature (o no hay suscripción activa).
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
func RequireReports(checker featureChecker) fiber.Handler {
	return requireFeature("reports", func(c *fiber.Ctx) (bool, error) {
		return checker.HasReports(c.Context(), GetRole(c), GetTenantID(c))
	})
}

// RequireAPIAccess verifica que el plan del tenant habilite la superficie de
// integración programática (solo premium, salvo super_admin).
func RequireAPIAccess(checker featureChecker) fiber.Handler {
	return requireFeature("api_access", func(c *fiber.Ctx) (bool, error) {
		return checker.HasAPIAccess(c.Context(), GetRole(c), GetTenantID(c))
	})
}

func requireFeature(name string, check func(c *fiber.Ctx) (bool, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "rol no encontrado en el token",
			})
		}
		enabled, err := check(c)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PLAN_CHECK_FAILED",
				Message: "no se pudo verificar el plan, intente más tarde",
			})
		}
		if !enabled {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "PLAN_FEATURE_DISABLED",
				Message: "el plan contratado no incluye '" + name + "'",
			})
		}
		return c.Next()
	}
}
