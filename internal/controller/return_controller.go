package controller

import (
	"fleetrent-be/internal/dto"
	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/pkg/serverutils"
	"fleetrent-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReturnController interface {
	RegisterRoutes(r fiber.Router)
	Approve(ctx *fiber.Ctx) error
	Reject(ctx *fiber.Ctx) error
}

type returnController struct {
	cancellationService service.ICancellationService
}

func NewReturnController(cancellationService service.ICancellationService) IReturnController {
	return &returnController{
		cancellationService: cancellationService,
	}
}

func (c *returnController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/return/v1")
	h.Use(serverutils.JwtMiddleware)
	// Approval decisions are manager-only
	h.Post(":id/approve", serverutils.RequireRole(string(entity.UserRoleManager)), c.Approve)
	h.Post(":id/reject", serverutils.RequireRole(string(entity.UserRoleManager)), c.Reject)
}

func (c *returnController) Approve(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid return id"))
	}

	res, err := c.cancellationService.ApproveReturn(ctx.Context(), currentUserId(ctx), id)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Return approved", res))
}

func (c *returnController) Reject(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid return id"))
	}

	var req dto.RejectReturnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	res, err := c.cancellationService.RejectReturn(ctx.Context(), currentUserId(ctx), id, req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Return rejected", res))
}
