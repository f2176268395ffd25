package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/repository/specification"
	"fleetrent-be/internal/repository/unitofwork"
	"fleetrent-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ContractRepository())
	assert.NotNil(t, uow.VehicleReturnRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Contract Repository", func(t *testing.T) {
		count, err := uow.ContractRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Contract count: %d", count)
	})

	t.Run("Check Transactional Return Lifecycle", func(t *testing.T) {
		ctx := context.Background()

		// Setup a full contract graph outside the transaction
		customer := &entity.Customer{
			ID:         uuid.New(),
			FullName:   "Integration Test Customer",
			Email:      "customer-" + uuid.New().String() + "@example.com",
			NationalID: "IT-" + uuid.New().String()[:8],
		}
		err := uow.CustomerRepository().Create(ctx, customer)
		assert.NoError(t, err)

		vehicle := &entity.Vehicle{
			ID:          uuid.New(),
			PlateNumber: "IT-" + uuid.New().String()[:8],
			Make:        "Toyota",
			Model:       "Corolla",
			Year:        2023,
			Status:      entity.VehicleStatusRented,
		}
		err = uow.VehicleRepository().Create(ctx, vehicle)
		assert.NoError(t, err)

		employee := &entity.User{
			ID:           uuid.New(),
			Email:        "employee-" + uuid.New().String() + "@example.com",
			PasswordHash: "not-a-real-hash",
			FullName:     "Integration Test Employee",
			Role:         entity.UserRoleEmployee,
			Status:       entity.UserStatusActive,
		}
		err = uow.UserRepository().Create(ctx, employee)
		assert.NoError(t, err)

		contract := &entity.Contract{
			ID:             uuid.New(),
			ContractNumber: "CTR-IT-" + uuid.New().String()[:8],
			CustomerID:     customer.ID,
			VehicleID:      vehicle.ID,
			EmployeeID:     employee.ID,
			StartDate:      time.Now().AddDate(0, -1, 0),
			EndDate:        time.Now().AddDate(0, 1, 0),
			DailyRate:      150,
			TotalAmount:    9000,
			Status:         entity.ContractStatusActive,
		}
		err = uow.ContractRepository().Create(ctx, contract)
		assert.NoError(t, err)

		// Transaction Test: create a return record and roll back
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		cost := 120.0
		ret := &entity.VehicleReturn{
			ID:         uuid.New(),
			ContractID: contract.ID,
			VehicleID:  vehicle.ID,
			ReturnDate: time.Now(),
			Condition:  entity.VehicleConditionGood,
			FuelLevel:  75,
			Damages: []entity.Damage{
				{Type: "scratch", Description: "rear bumper scratch", Severity: entity.DamageSeverityMinor, CostEstimate: &cost},
			},
			Status: entity.ReturnStatusPending,
		}
		err = uow.VehicleReturnRepository().Create(ctx, ret)
		assert.NoError(t, err)

		// Latest lookup must see the in-transaction row
		latest, err := uow.VehicleReturnRepository().FindLatestByContract(ctx, contract.ID)
		assert.NoError(t, err)
		if assert.NotNil(t, latest) {
			assert.Equal(t, ret.ID, latest.ID)
			assert.Equal(t, entity.ReturnStatusPending, latest.Status)
			if assert.Len(t, latest.Damages, 1) {
				assert.Equal(t, "scratch", latest.Damages[0].Type)
			}
		}

		// Status narrowing: only the expected from-status wins
		affected, err := uow.VehicleReturnRepository().UpdateStatus(ctx, ret.ID, entity.ReturnStatusPending, entity.ReturnStatusApproved, "")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		affected, err = uow.VehicleReturnRepository().UpdateStatus(ctx, ret.ID, entity.ReturnStatusPending, entity.ReturnStatusApproved, "")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected, "second transition from pending must not match")

		// Rollback discards everything inside the transaction
		err = uow.Rollback()
		assert.NoError(t, err)

		freshUow := uowFactory.NewUnitOfWork(ctx)
		gone, err := freshUow.VehicleReturnRepository().FindOne(ctx, specification.ByID{ID: ret.ID})
		assert.NoError(t, err)
		assert.Nil(t, gone, "rolled back return record must not persist")
	})
}
