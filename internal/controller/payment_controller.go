package controller

import (
	"fleetrent-be/internal/dto"
	"fleetrent-be/internal/pkg/serverutils"
	"fleetrent-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	CreatePaymentLink(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
}

type paymentController struct {
	paymentService service.IPaymentService
}

func NewPaymentController(paymentService service.IPaymentService) IPaymentController {
	return &paymentController{
		paymentService: paymentService,
	}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/invoice/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post(":id/payment-link", c.CreatePaymentLink)

	// The gateway callback authenticates with its signature, not a JWT
	p := r.Group("/payment/v1")
	p.Post("midtrans/notification", c.Webhook)
}

func (c *paymentController) CreatePaymentLink(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid invoice id"))
	}

	res, err := c.paymentService.CreatePaymentLink(ctx.Context(), id)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Payment link created", res))
}

func (c *paymentController) Webhook(ctx *fiber.Ctx) error {
	var req dto.MidtransWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.SendStatus(fiber.StatusBadRequest)
	}

	if err := c.paymentService.HandleNotification(ctx.Context(), &req); err != nil {
		// A non-2xx answer makes the gateway retry the notification
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}

	return ctx.SendStatus(fiber.StatusOK)
}
