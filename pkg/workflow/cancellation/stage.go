package cancellation

import "fleetrent-be/internal/entity"

// Stage is the derived step of the contract cancellation workflow.
// It is never stored; DeriveStage recomputes it from the latest return
// record so the stage cannot drift from the persisted data.
type Stage string

const (
	// StageVehicleReturn: no return record exists yet, the return form is shown
	StageVehicleReturn Stage = "vehicle-return"
	// StageApproval: a record exists and is pending or rejected
	StageApproval Stage = "approval"
	// StageCancellation: the record is approved, the contract may be cancelled
	StageCancellation Stage = "cancellation"
)

// DeriveStage computes the workflow stage from the latest return record
// for a contract. A nil record means no return was submitted yet. A
// rejected record keeps the workflow in the approval stage so the
// rejection reason stays visible until the user restarts.
func DeriveStage(rec *entity.VehicleReturn) Stage {
	if rec == nil {
		return StageVehicleReturn
	}
	if rec.Status == entity.ReturnStatusApproved {
		return StageCancellation
	}
	return StageApproval
}
