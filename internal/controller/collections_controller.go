package controller

import (
	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/pkg/serverutils"
	"fleetrent-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICollectionsController interface {
	RegisterRoutes(r fiber.Router)
	Monthly(ctx *fiber.Ctx) error
}

type collectionsController struct {
	collectionsService service.ICollectionsService
}

func NewCollectionsController(collectionsService service.ICollectionsService) ICollectionsController {
	return &collectionsController{
		collectionsService: collectionsService,
	}
}

func (c *collectionsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/collections/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("monthly", c.Monthly)
}

// Monthly returns the caller's collections view. Managers may inspect
// another employee's view via ?employee_id.
func (c *collectionsController) Monthly(ctx *fiber.Ctx) error {
	employeeId := currentUserId(ctx)

	if override := ctx.Query("employee_id"); override != "" {
		role, _ := ctx.Locals("role").(string)
		if role != string(entity.UserRoleManager) {
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(fiber.StatusForbidden, "insufficient role"))
		}
		parsed, err := uuid.Parse(override)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid employee_id"))
		}
		employeeId = parsed
	}

	res, err := c.collectionsService.Monthly(ctx.Context(), employeeId)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get monthly collections", res))
}
