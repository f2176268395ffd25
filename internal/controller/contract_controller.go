package controller

import (
	"fleetrent-be/internal/dto"
	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/pkg/serverutils"
	"fleetrent-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IContractController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	CancellationState(ctx *fiber.Ctx) error
	SubmitReturn(ctx *fiber.Ctx) error
	RestartCancellation(ctx *fiber.Ctx) error
	FinalizeCancellation(ctx *fiber.Ctx) error
}

type contractController struct {
	contractService     service.IContractService
	cancellationService service.ICancellationService
}

func NewContractController(contractService service.IContractService, cancellationService service.ICancellationService) IContractController {
	return &contractController{
		contractService:     contractService,
		cancellationService: cancellationService,
	}
}

func (c *contractController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/contract/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.Index)
	h.Get(":id", c.Show)
	// Direct status changes are manager-only, like return approvals
	h.Patch(":id/status", serverutils.RequireRole(string(entity.UserRoleManager)), c.UpdateStatus)

	// Cancellation workflow: the three stages are derived from the
	// contract's latest return record, never stored.
	h.Get(":id/cancellation", c.CancellationState)
	h.Post(":id/cancellation/return", c.SubmitReturn)
	h.Post(":id/cancellation/restart", c.RestartCancellation)
	h.Post(":id/cancellation/finalize", c.FinalizeCancellation)
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func (c *contractController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateContractRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	res, err := c.contractService.Create(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Contract created", res))
}

func (c *contractController) Index(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)
	status := ctx.Query("status")

	res, err := c.contractService.GetAll(ctx.Context(), page, limit, status)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get contracts", res))
}

func (c *contractController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid contract id"))
	}

	res, err := c.contractService.GetById(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get contract", res))
}

func (c *contractController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid contract id"))
	}

	var req dto.UpdateContractStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	if err := c.contractService.UpdateStatus(ctx.Context(), id, &req); err != nil {
		return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(fiber.StatusConflict, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Status updated", fiber.Map{"id": id}))
}

func (c *contractController) CancellationState(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid contract id"))
	}

	res, err := c.cancellationService.GetState(ctx.Context(), id)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get cancellation state", res))
}

func (c *contractController) SubmitReturn(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid contract id"))
	}

	var req dto.SubmitReturnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid request body"))
	}
	req.ContractId = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	res, err := c.cancellationService.SubmitReturn(ctx.Context(), currentUserId(ctx), req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Return submitted", res))
}

func (c *contractController) RestartCancellation(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid contract id"))
	}

	res, err := c.cancellationService.Restart(ctx.Context(), id)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Workflow restarted", res))
}

func (c *contractController) FinalizeCancellation(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid contract id"))
	}

	res, err := c.cancellationService.Finalize(ctx.Context(), currentUserId(ctx), id)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Contract cancelled", res))
}
