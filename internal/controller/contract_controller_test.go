package controller

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"fleetrent-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// --- stubs ---

type stubContractService struct {
	statusUpdates int
}

func (s *stubContractService) Create(ctx context.Context, employeeId uuid.UUID, req *dto.CreateContractRequest) (*dto.CreateContractResponse, error) {
	return &dto.CreateContractResponse{}, nil
}
func (s *stubContractService) GetAll(ctx context.Context, page, limit int, status string) ([]*dto.ContractListResponse, error) {
	return nil, nil
}
func (s *stubContractService) GetById(ctx context.Context, contractId uuid.UUID) (*dto.ContractDetailResponse, error) {
	return &dto.ContractDetailResponse{}, nil
}
func (s *stubContractService) UpdateStatus(ctx context.Context, contractId uuid.UUID, req *dto.UpdateContractStatusRequest) error {
	s.statusUpdates++
	return nil
}

type stubCancellationService struct{}

func (stubCancellationService) GetState(ctx context.Context, contractId uuid.UUID) (*dto.CancellationStateResponse, error) {
	return &dto.CancellationStateResponse{}, nil
}
func (stubCancellationService) SubmitReturn(ctx context.Context, actorId uuid.UUID, req dto.SubmitReturnRequest) (*dto.SubmitReturnResponse, error) {
	return &dto.SubmitReturnResponse{}, nil
}
func (stubCancellationService) ApproveReturn(ctx context.Context, actorId, returnId uuid.UUID) (*dto.ProcessReturnResponse, error) {
	return &dto.ProcessReturnResponse{}, nil
}
func (stubCancellationService) RejectReturn(ctx context.Context, actorId, returnId uuid.UUID, req dto.RejectReturnRequest) (*dto.ProcessReturnResponse, error) {
	return &dto.ProcessReturnResponse{}, nil
}
func (stubCancellationService) Restart(ctx context.Context, contractId uuid.UUID) (*dto.CancellationStateResponse, error) {
	return &dto.CancellationStateResponse{}, nil
}
func (stubCancellationService) Finalize(ctx context.Context, actorId, contractId uuid.UUID) (*dto.FinalizeCancellationResponse, error) {
	return &dto.FinalizeCancellationResponse{}, nil
}

func signTestToken(t *testing.T, secret, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func newStatusRequest(token string) *http.Request {
	req, _ := http.NewRequest(http.MethodPatch,
		"/api/contract/v1/"+uuid.New().String()+"/status",
		strings.NewReader(`{"status":"suspended","reason":"customer request"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// Direct status transitions bypass the cancellation workflow, so only
// managers may issue them.
func TestUpdateStatusRouteIsManagerOnly(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := &stubContractService{}
	app := fiber.New()
	NewContractController(svc, stubCancellationService{}).RegisterRoutes(app.Group("/api"))

	t.Run("employee is rejected", func(t *testing.T) {
		resp, err := app.Test(newStatusRequest(signTestToken(t, "test-secret", "employee")))
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != fiber.StatusForbidden {
			t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusForbidden)
		}
		if svc.statusUpdates != 0 {
			t.Error("service must not be reached without the manager role")
		}
	})

	t.Run("manager is allowed", func(t *testing.T) {
		resp, err := app.Test(newStatusRequest(signTestToken(t, "test-secret", "manager")))
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
		}
		if svc.statusUpdates != 1 {
			t.Errorf("status updates = %d, want 1", svc.statusUpdates)
		}
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPatch,
			"/api/contract/v1/"+uuid.New().String()+"/status", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
		}
	})
}
