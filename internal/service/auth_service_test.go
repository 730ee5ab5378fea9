package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/caffe-pos/internal/config"
	"github.com/caffe-pos/internal/models"
	"github.com/caffe-pos/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Role{}, &models.User{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "auth-service-test-secret"
	cfg.JWT.ExpireHours = 1
	cfg.JWT.Issuer = "caffe-pos"
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{
		MinLength:     8,
		RequireUpper:  true,
		RequireLower:  true,
		RequireNumber: true,
	}
	return NewAuthService(cfg, repository.NewUserRepository(db)), db
}

func seedAuthUser(t *testing.T, svc *AuthService, db *gorm.DB, active bool) models.User {
	t.Helper()
	role := models.Role{Name: "Cashier"}
	if err := db.Create(&role).Error; err != nil {
		t.Fatalf("create role failed: %v", err)
	}
	hash, err := svc.HashPassword("Secret123")
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	user := models.User{
		Username:     "cashier1",
		PasswordHash: hash,
		FullName:     "Test Cashier",
		RoleID:       role.ID,
		IsActive:     active,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func TestLoginIssuesParsableToken(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	user := seedAuthUser(t, svc, db, true)

	loggedIn, token, expiresAt, err := svc.Login("cashier1", "Secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Fatalf("unexpected user: %+v", loggedIn)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("token already expired: %v", expiresAt)
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Username != "cashier1" || claims.RoleID != user.RoleID {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginRejectsBadCredentialsAndDisabledUser(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	seedAuthUser(t, svc, db, false)

	if _, _, _, err := svc.Login("cashier1", "WrongPass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, _, err := svc.Login("nobody", "Secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
	if _, _, _, err := svc.Login("cashier1", "Secret123"); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("expected ErrUserDisabled, got %v", err)
	}
}

func TestParseJWTRejectsForgedToken(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	user := seedAuthUser(t, svc, db, true)

	other := &AuthService{cfg: &config.Config{}}
	other.cfg.JWT.SecretKey = "different-secret"
	other.cfg.JWT.ExpireHours = 1
	forged, _, err := other.GenerateJWT(&user)
	if err != nil {
		t.Fatalf("generate forged token failed: %v", err)
	}
	if _, err := svc.ParseJWT(forged); err == nil {
		t.Fatalf("expected signature verification failure")
	}
}

func TestValidatePasswordPolicy(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	cases := []struct {
		password string
		wantWeak bool
	}{
		{"Secret123", false},
		{"short1A", true},
		{"alllowercase1", true},
		{"ALLUPPERCASE1", true},
		{"NoNumbersHere", true},
	}
	for _, tc := range cases {
		err := svc.ValidatePassword(tc.password)
		if tc.wantWeak && !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("password %q: expected weak password error, got %v", tc.password, err)
		}
		if !tc.wantWeak && err != nil {
			t.Fatalf("password %q: unexpected error %v", tc.password, err)
		}
	}
}
