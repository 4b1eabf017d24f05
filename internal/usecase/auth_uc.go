package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/intechds/storefront/internal/domain"
)

// AuthUC covers both sides of authentication: the static admin credential
// pair with its opaque bearer token, and customer accounts stored in
// users.json. The admin token is base64("{user}:{epochMillis}") and
// validation only checks the decoded prefix, so issued tokens never expire
// and cannot be revoked. That is the contract this system ships with; do
// not tighten it here without changing the admin UI alongside.
type AuthUC struct {
	Users     domain.UserRepo
	AdminUser string
	AdminPass string
}

func (uc *AuthUC) AdminLogin(username, password string) (string, error) {
	if username != uc.AdminUser || password != uc.AdminPass {
		return "", &domain.AuthError{Msg: "Invalid credentials"}
	}
	raw := fmt.Sprintf("%s:%d", uc.AdminUser, time.Now().UnixMilli())
	return base64.StdEncoding.EncodeToString([]byte(raw)), nil
}

func (uc *AuthUC) ValidateToken(token string) bool {
	if token == "" {
		return false
	}
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return false
	}
	return strings.HasPrefix(string(decoded), uc.AdminUser+":")
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
}

// Register stores the password as received. The duplicate-email check runs
// inside the locked update so two concurrent registrations for the same
// address cannot both pass it.
func (uc *AuthUC) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.Validation("กรุณากรอกข้อมูลที่จำเป็นให้ครบ")
	}
	if len(in.Password) < 6 {
		return nil, domain.Validation("รหัสผ่านต้องมีอย่างน้อย 6 ตัวอักษร")
	}
	now := domain.Timestamp(time.Now())
	u := domain.User{
		ID:        fmt.Sprintf("user_%d", time.Now().UnixMilli()),
		Email:     in.Email,
		Password:  in.Password,
		Name:      in.Name,
		Company:   in.Company,
		Phone:     in.Phone,
		Addresses: []domain.Address{},
		Wishlist:  []int{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.Users.Update(ctx, func(users []domain.User) ([]domain.User, error) {
		for i := range users {
			if strings.EqualFold(users[i].Email, in.Email) {
				return nil, domain.Validation("อีเมลนี้ถูกใช้งานแล้ว")
			}
		}
		return append(users, u), nil
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (uc *AuthUC) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.Validation("กรุณากรอกอีเมลและรหัสผ่าน")
	}
	u, err := uc.Users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, &domain.AuthError{Msg: "ไม่พบบัญชีผู้ใช้นี้"}
		}
		return nil, err
	}
	// cleartext comparison, same as the stored form
	if u.Password != password {
		return nil, &domain.AuthError{Msg: "รหัสผ่านไม่ถูกต้อง"}
	}
	return u, nil
}
