package service

import (
	"context"
	"encoding/json"
	"log"

	"fleetrent-be/internal/dto"
	"fleetrent-be/internal/pkg/logger"
	"fleetrent-be/internal/pkg/mailer"
	"fleetrent-be/internal/repository/specification"
	"fleetrent-be/internal/repository/unitofwork"
	"fleetrent-be/pkg/workflow/cancellation"

	"github.com/google/uuid"
)

type ICancellationService interface {
	GetState(ctx context.Context, contractId uuid.UUID) (*dto.CancellationStateResponse, error)
	SubmitReturn(ctx context.Context, actorId uuid.UUID, req dto.SubmitReturnRequest) (*dto.SubmitReturnResponse, error)
	ApproveReturn(ctx context.Context, actorId, returnId uuid.UUID) (*dto.ProcessReturnResponse, error)
	RejectReturn(ctx context.Context, actorId, returnId uuid.UUID, req dto.RejectReturnRequest) (*dto.ProcessReturnResponse, error)
	Restart(ctx context.Context, contractId uuid.UUID) (*dto.CancellationStateResponse, error)
	Finalize(ctx context.Context, actorId, contractId uuid.UUID) (*dto.FinalizeCancellationResponse, error)
}

// cancellationService fronts the workflow controller with per-request
// units of work, audit trail entries and customer emails. The
// controller owns the state machine; this layer owns the side effects
// that happen after a transition commits.
type cancellationService struct {
	uowFactory     unitofwork.RepositoryFactory
	controller     *cancellation.Controller
	auditPublisher IPublisherService
	emailService   mailer.IEmailService
	logger         logger.ILogger
}

func NewCancellationService(
	uowFactory unitofwork.RepositoryFactory,
	controller *cancellation.Controller,
	auditPublisher IPublisherService,
	emailService mailer.IEmailService,
	logger logger.ILogger,
) ICancellationService {
	return &cancellationService{
		uowFactory:     uowFactory,
		controller:     controller,
		auditPublisher: auditPublisher,
		emailService:   emailService,
		logger:         logger,
	}
}

func (s *cancellationService) GetState(ctx context.Context, contractId uuid.UUID) (*dto.CancellationStateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.controller.GetState(ctx, uow, contractId)
}

func (s *cancellationService) SubmitReturn(ctx context.Context, actorId uuid.UUID, req dto.SubmitReturnRequest) (*dto.SubmitReturnResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	resp, err := s.controller.Submit(ctx, uow, req)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, actorId, "RETURN_SUBMITTED", "vehicle_return", resp.ReturnId, map[string]interface{}{
		"contract_id":  req.ContractId.String(),
		"damage_count": len(req.Damages) + len(req.DiagramPoints),
	})

	return resp, nil
}

func (s *cancellationService) ApproveReturn(ctx context.Context, actorId, returnId uuid.UUID) (*dto.ProcessReturnResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	resp, err := s.controller.Approve(ctx, uow, returnId)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, actorId, "RETURN_APPROVED", "vehicle_return", returnId, nil)

	return resp, nil
}

func (s *cancellationService) RejectReturn(ctx context.Context, actorId, returnId uuid.UUID, req dto.RejectReturnRequest) (*dto.ProcessReturnResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rec, err := uow.VehicleReturnRepository().FindOne(ctx, specification.ByID{ID: returnId})
	if err != nil {
		return nil, err
	}

	resp, err := s.controller.Reject(ctx, uow, returnId, req)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, actorId, "RETURN_REJECTED", "vehicle_return", returnId, map[string]interface{}{
		"reason": req.Reason,
	})

	if rec != nil {
		s.notifyRejection(ctx, uow, rec.ContractID, req.Reason)
	}

	return resp, nil
}

func (s *cancellationService) Restart(ctx context.Context, contractId uuid.UUID) (*dto.CancellationStateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.controller.Restart(ctx, uow, contractId)
}

func (s *cancellationService) Finalize(ctx context.Context, actorId, contractId uuid.UUID) (*dto.FinalizeCancellationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	resp, err := s.controller.Finalize(ctx, uow, contractId)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, actorId, "CONTRACT_CANCELLED", "contract", contractId, map[string]interface{}{
		"reason": cancellation.CancellationAuditReason,
	})

	contract, err := uow.ContractRepository().FindOneWithDetails(ctx, specification.ByID{ID: contractId})
	if err == nil && contract != nil && contract.Customer.Email != "" {
		if mailErr := s.emailService.SendContractCancelled(contract.Customer.Email, contract.ContractNumber); mailErr != nil {
			s.logger.Warn("CANCELLATION", "Failed to send cancellation email", map[string]interface{}{
				"contractId": contractId.String(),
				"error":      mailErr.Error(),
			})
		}
	}

	return resp, nil
}

// audit queues an audit entry; a failed enqueue is logged, never
// surfaced, since the workflow mutation already committed.
func (s *cancellationService) audit(ctx context.Context, actorId uuid.UUID, action, entityType string, entityId uuid.UUID, details map[string]interface{}) {
	payload := dto.PublishAuditMessage{
		Action:     action,
		EntityType: entityType,
		EntityId:   entityId,
		Details:    details,
	}
	if actorId != uuid.Nil {
		payload.ActorId = &actorId
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[ERROR] Failed to marshal audit payload for %s: %v", action, err)
		return
	}
	if err := s.auditPublisher.Publish(ctx, raw); err != nil {
		s.logger.Warn("CANCELLATION", "Failed to enqueue audit entry", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
	}
}

func (s *cancellationService) notifyRejection(ctx context.Context, uow unitofwork.UnitOfWork, contractId uuid.UUID, reason string) {
	contract, err := uow.ContractRepository().FindOneWithDetails(ctx, specification.ByID{ID: contractId})
	if err != nil || contract == nil || contract.Customer.Email == "" {
		return
	}
	if mailErr := s.emailService.SendReturnRejected(contract.Customer.Email, contract.ContractNumber, reason); mailErr != nil {
		s.logger.Warn("CANCELLATION", "Failed to send rejection email", map[string]interface{}{
			"contractId": contractId.String(),
			"error":      mailErr.Error(),
		})
	}
}
