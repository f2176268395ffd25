package service

import (
	"context"
	"testing"
	"time"

	"fleetrent-be/internal/config"
	"fleetrent-be/internal/dto"
	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/repository/contract"
	"fleetrent-be/internal/repository/specification"
	"fleetrent-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // keyed by email
}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, s := range specs {
		if byEmail, ok := s.(specification.ByEmail); ok {
			return r.users[byEmail.Email], nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *entity.User) error { return nil }

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeAuthUow struct {
	users *fakeUserRepo
}

func (u *fakeAuthUow) Begin(ctx context.Context) error { return nil }
func (u *fakeAuthUow) Commit() error                   { return nil }
func (u *fakeAuthUow) Rollback() error                 { return nil }

func (u *fakeAuthUow) UserRepository() contract.UserRepository                   { return u.users }
func (u *fakeAuthUow) CustomerRepository() contract.CustomerRepository           { return nil }
func (u *fakeAuthUow) VehicleRepository() contract.VehicleRepository             { return nil }
func (u *fakeAuthUow) ContractRepository() contract.ContractRepository           { return nil }
func (u *fakeAuthUow) VehicleReturnRepository() contract.VehicleReturnRepository { return nil }
func (u *fakeAuthUow) InvoiceRepository() contract.InvoiceRepository             { return nil }
func (u *fakeAuthUow) AuditLogRepository() contract.AuditLogRepository           { return nil }

type fakeAuthUowFactory struct {
	uow *fakeAuthUow
}

func (f *fakeAuthUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// Tokens must be signed with the configured secret and expire after the
// configured TTL, not hard-wired values.
func TestLoginUsesConfiguredSecretAndTTL(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}

	repo := &fakeUserRepo{users: map[string]*entity.User{
		"manager@fleetrent.local": {
			ID:           uuid.New(),
			Email:        "manager@fleetrent.local",
			PasswordHash: string(hash),
			FullName:     "Manager",
			Role:         entity.UserRoleManager,
			Status:       entity.UserStatusActive,
		},
	}}

	cfg := config.AuthConfig{JWTSecret: "configured-secret", TokenTTLHours: 2}
	svc := NewAuthService(&fakeAuthUowFactory{uow: &fakeAuthUow{users: repo}}, cfg)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "manager@fleetrent.local",
		Password: "changeme123",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	token, err := jwt.Parse(resp.AccessToken, func(tk *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify with the configured secret: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["role"] != string(entity.UserRoleManager) {
		t.Errorf("role claim = %v, want manager", claims["role"])
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("reading exp claim: %v", err)
	}
	ttl := time.Until(exp.Time)
	if ttl < time.Hour || ttl > 3*time.Hour {
		t.Errorf("token TTL = %v, want about %dh", ttl, cfg.TokenTTLHours)
	}
}

func TestLoginRejectsSuspendedUser(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.MinCost)
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"former@fleetrent.local": {
			ID:           uuid.New(),
			Email:        "former@fleetrent.local",
			PasswordHash: string(hash),
			Role:         entity.UserRoleEmployee,
			Status:       entity.UserStatusSuspended,
		},
	}}

	svc := NewAuthService(&fakeAuthUowFactory{uow: &fakeAuthUow{users: repo}}, config.AuthConfig{JWTSecret: "s", TokenTTLHours: 1})

	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "former@fleetrent.local",
		Password: "changeme123",
	}); err == nil {
		t.Fatal("suspended user must not be able to log in")
	}
}
