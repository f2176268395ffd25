package cancellation

import (
	"context"
	"strings"
	"time"

	"fleetrent-be/internal/dto"
	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/pkg/logger"
	"fleetrent-be/internal/repository/specification"
	"fleetrent-be/internal/repository/unitofwork"
	"fleetrent-be/pkg/workflow/damage"
	workflowEvents "fleetrent-be/pkg/workflow/events"

	"github.com/google/uuid"
)

// CancellationAuditReason is the fixed reason recorded on the contract
// when the workflow finalizes.
const CancellationAuditReason = "cancelled after approved vehicle return"

// Controller sequences the contract cancellation workflow:
// vehicle return submission, approval decision, finalization.
// A contract can only be cancelled after its return is approved.
type Controller struct {
	logger    logger.ILogger
	publisher workflowEvents.Publisher
}

// NewController creates a new cancellation workflow controller
func NewController(logger logger.ILogger, publisher workflowEvents.Publisher) *Controller {
	return &Controller{
		logger:    logger,
		publisher: publisher,
	}
}

// GetState derives the current workflow stage for a contract from its
// latest return record.
func (c *Controller) GetState(ctx context.Context, uow unitofwork.UnitOfWork, contractId uuid.UUID) (*dto.CancellationStateResponse, error) {
	contract, err := uow.ContractRepository().FindOne(ctx, specification.ByID{ID: contractId})
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, ErrContractNotFound
	}

	rec, err := uow.VehicleReturnRepository().FindLatestByContract(ctx, contractId)
	if err != nil {
		return nil, err
	}

	all, err := uow.VehicleReturnRepository().FindAll(ctx,
		specification.ByContractID{ContractID: contractId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	var history []*dto.ReturnDetails
	for _, h := range all {
		if rec != nil && h.ID == rec.ID {
			continue
		}
		history = append(history, mapReturnDetails(h))
	}

	return &dto.CancellationStateResponse{
		ContractId: contractId,
		Stage:      string(DeriveStage(rec)),
		Return:     mapReturnDetails(rec),
		History:    history,
	}, nil
}

// Submit creates a pending return record for a contract. Allowed only
// when no record exists yet or the latest one was rejected; the rejected
// record stays in place as history and the new record takes over as the
// stage driver.
func (c *Controller) Submit(ctx context.Context, uow unitofwork.UnitOfWork, req dto.SubmitReturnRequest) (*dto.SubmitReturnResponse, error) {
	contract, err := uow.ContractRepository().FindOne(ctx, specification.ByID{ID: req.ContractId})
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, ErrContractNotFound
	}
	if contract.Status.IsTerminal() {
		return nil, &StateError{Message: "contract is already " + string(contract.Status)}
	}

	latest, err := uow.VehicleReturnRepository().FindLatestByContract(ctx, req.ContractId)
	if err != nil {
		return nil, err
	}
	if latest != nil && latest.Status != entity.ReturnStatusRejected {
		return nil, &StateError{Message: "a return record already exists for this contract"}
	}

	returnDate, err := time.Parse("2006-01-02", req.ReturnDate)
	if err != nil {
		return nil, &ValidationError{Message: "invalid return_date format, expected YYYY-MM-DD"}
	}

	points := make([]entity.DamagePoint, 0, len(req.DiagramPoints))
	for _, p := range req.DiagramPoints {
		points = append(points, entity.DamagePoint{
			X:           p.X,
			Y:           p.Y,
			Type:        p.Type,
			Description: p.Description,
			Severity:    entity.PointSeverity(p.Severity),
		})
	}

	manual := make([]entity.Damage, 0, len(req.Damages))
	for _, d := range req.Damages {
		manual = append(manual, entity.Damage{
			Type:         d.Type,
			Description:  d.Description,
			Severity:     entity.DamageSeverity(d.Severity),
			CostEstimate: d.CostEstimate,
		})
	}

	// Synthesized notes replace free text whenever any damage exists;
	// with no damages the user's own notes are kept as is.
	notes := damage.SynthesizeNotes(points, manual)
	if notes == "" {
		notes = req.Notes
	}

	rec := &entity.VehicleReturn{
		ID:              uuid.New(),
		ContractID:      req.ContractId,
		VehicleID:       contract.VehicleID,
		ReturnDate:      returnDate,
		Condition:       entity.VehicleCondition(req.VehicleCondition),
		FuelLevel:       req.FuelLevel,
		OdometerReading: req.OdometerReading,
		Damages:         damage.Merge(points, manual),
		Notes:           notes,
		Status:          entity.ReturnStatusPending,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.VehicleReturnRepository().Create(ctx, rec); err != nil {
		return nil, err
	}

	c.logger.Info("WORKFLOW", "Vehicle Return Submitted", map[string]interface{}{
		"returnId":    rec.ID.String(),
		"contractId":  req.ContractId.String(),
		"damageCount": len(rec.Damages),
	})

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Events go out only once the record is durable; a failed commit
	// must not leave a ghost event on the bus.
	c.publisher.PublishReturnSubmitted(ctx, rec.ID, req.ContractId, contract.VehicleID, len(rec.Damages))

	return &dto.SubmitReturnResponse{
		ReturnId: rec.ID,
		Status:   string(entity.ReturnStatusPending),
		Stage:    string(StageApproval),
	}, nil
}

// Approve approves a pending return record. Approving an already
// approved record is clamped to a no-op instead of erroring.
func (c *Controller) Approve(ctx context.Context, uow unitofwork.UnitOfWork, returnId uuid.UUID) (*dto.ProcessReturnResponse, error) {
	rec, err := uow.VehicleReturnRepository().FindOne(ctx, specification.ByID{ID: returnId})
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrReturnNotFound
	}

	if rec.Status == entity.ReturnStatusApproved {
		processedAt := time.Now()
		if rec.ProcessedAt != nil {
			processedAt = *rec.ProcessedAt
		}
		return &dto.ProcessReturnResponse{
			ReturnId:    returnId,
			Status:      string(entity.ReturnStatusApproved),
			Stage:       string(StageCancellation),
			ProcessedAt: processedAt,
		}, nil
	}
	if rec.Status != entity.ReturnStatusPending {
		return nil, &StateError{Message: "return record is not pending"}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// The update narrows on the pending status so a concurrent decision
	// on the same record cannot also win.
	affected, err := uow.VehicleReturnRepository().UpdateStatus(ctx, returnId, entity.ReturnStatusPending, entity.ReturnStatusApproved, "")
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, &StateError{Message: "return record was already processed"}
	}

	c.logger.Info("WORKFLOW", "Approved Vehicle Return", map[string]interface{}{
		"returnId":   returnId.String(),
		"contractId": rec.ContractID.String(),
	})

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.publisher.PublishReturnApproved(ctx, returnId, rec.ContractID)

	return &dto.ProcessReturnResponse{
		ReturnId:    returnId,
		Status:      string(entity.ReturnStatusApproved),
		Stage:       string(StageCancellation),
		ProcessedAt: time.Now(),
	}, nil
}

// Reject rejects a pending return record. The reason is mandatory and
// validated before any persistence call; a failed rejection leaves the
// record untouched.
func (c *Controller) Reject(ctx context.Context, uow unitofwork.UnitOfWork, returnId uuid.UUID, req dto.RejectReturnRequest) (*dto.ProcessReturnResponse, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, &ValidationError{Message: "rejection reason must not be empty"}
	}

	rec, err := uow.VehicleReturnRepository().FindOne(ctx, specification.ByID{ID: returnId})
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrReturnNotFound
	}
	if rec.Status != entity.ReturnStatusPending {
		return nil, &StateError{Message: "return record is not pending"}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	affected, err := uow.VehicleReturnRepository().UpdateStatus(ctx, returnId, entity.ReturnStatusPending, entity.ReturnStatusRejected, reason)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, &StateError{Message: "return record was already processed"}
	}

	c.logger.Info("WORKFLOW", "Rejected Vehicle Return", map[string]interface{}{
		"returnId":   returnId.String(),
		"contractId": rec.ContractID.String(),
		"reason":     reason,
	})

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.publisher.PublishReturnRejected(ctx, returnId, rec.ContractID, reason)

	return &dto.ProcessReturnResponse{
		ReturnId:    returnId,
		Status:      string(entity.ReturnStatusRejected),
		Stage:       string(StageApproval),
		ProcessedAt: time.Now(),
	}, nil
}

// Restart acknowledges a rejection and moves the workflow back to the
// return form. Nothing is persisted; the rejected record stays as
// history and the next submission creates a fresh one.
func (c *Controller) Restart(ctx context.Context, uow unitofwork.UnitOfWork, contractId uuid.UUID) (*dto.CancellationStateResponse, error) {
	rec, err := uow.VehicleReturnRepository().FindLatestByContract(ctx, contractId)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.Status != entity.ReturnStatusRejected {
		return nil, &StateError{Message: "workflow can only be restarted after a rejection"}
	}

	return &dto.CancellationStateResponse{
		ContractId: contractId,
		Stage:      string(StageVehicleReturn),
		Return:     mapReturnDetails(rec),
	}, nil
}

// Finalize cancels the contract. Reachable only while the latest return
// record is approved; the vehicle is released back to the fleet in the
// same transaction.
func (c *Controller) Finalize(ctx context.Context, uow unitofwork.UnitOfWork, contractId uuid.UUID) (*dto.FinalizeCancellationResponse, error) {
	contract, err := uow.ContractRepository().FindOne(ctx, specification.ByID{ID: contractId})
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, ErrContractNotFound
	}

	rec, err := uow.VehicleReturnRepository().FindLatestByContract(ctx, contractId)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.Status != entity.ReturnStatusApproved {
		return nil, &StateError{Message: "contract cancellation requires an approved vehicle return"}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ContractRepository().UpdateStatus(ctx, contractId, entity.ContractStatusCancelled, CancellationAuditReason); err != nil {
		return nil, err
	}

	if err := uow.VehicleRepository().UpdateStatus(ctx, contract.VehicleID, entity.VehicleStatusAvailable); err != nil {
		return nil, err
	}

	c.logger.Info("WORKFLOW", "Finalized Contract Cancellation", map[string]interface{}{
		"contractId": contractId.String(),
		"returnId":   rec.ID.String(),
		"reason":     CancellationAuditReason,
	})

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.publisher.PublishContractCancelled(ctx, contractId, contract.CustomerID, contract.VehicleID, CancellationAuditReason)

	return &dto.FinalizeCancellationResponse{
		ContractId: contractId,
		Status:     string(entity.ContractStatusCancelled),
	}, nil
}

func mapReturnDetails(rec *entity.VehicleReturn) *dto.ReturnDetails {
	if rec == nil {
		return nil
	}
	return &dto.ReturnDetails{
		Id:               rec.ID,
		ContractId:       rec.ContractID,
		VehicleId:        rec.VehicleID,
		ReturnDate:       rec.ReturnDate,
		VehicleCondition: string(rec.Condition),
		FuelLevel:        rec.FuelLevel,
		OdometerReading:  rec.OdometerReading,
		Damages:          rec.Damages,
		Notes:            rec.Notes,
		Status:           string(rec.Status),
		RejectionReason:  rec.RejectionReason,
		ProcessedAt:      rec.ProcessedAt,
		CreatedAt:        rec.CreatedAt,
	}
}
