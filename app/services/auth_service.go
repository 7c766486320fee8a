package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/models"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/repositories"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/auth"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/validate"
)

// Authenticator verifies credentials and yields the matching account.
// Handlers depend on this interface, so deployments can swap the
// credential backend without touching the request path.
type Authenticator interface {
	Verify(ctx context.Context, email, password string) (models.Shopkeeper, error)
}

// SignupInput carries the registration form fields.
type SignupInput struct {
	Name     string `json:"name"     validate:"required,max=255"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
	ShopName string `json:"shopname"`
	Location string `json:"location"`
	City     string `json:"city"`
}

// AuthService handles signup and credential verification.
type AuthService struct {
	shopkeepers *repositories.ShopkeeperRepository
}

func NewAuthService(shopkeepers *repositories.ShopkeeperRepository) *AuthService {
	return &AuthService{shopkeepers: shopkeepers}
}

// Signup registers a new shopkeeper and returns the stored account.
// Duplicate emails fail with ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (models.Shopkeeper, error) {
	if errs := validate.Struct(&in); validate.HasErrors(errs) {
		for _, msg := range errs {
			return models.Shopkeeper{}, errors.New(msg)
		}
	}

	if _, err := s.shopkeepers.FindByEmail(in.Email); err == nil {
		return models.Shopkeeper{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Shopkeeper{}, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.Shopkeeper{}, err
	}

	sk := models.Shopkeeper{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Phone:    in.Phone,
		ShopName: in.ShopName,
		Location: in.Location,
		City:     in.City,
	}
	if err := s.shopkeepers.Create(&sk); err != nil {
		return models.Shopkeeper{}, err
	}
	return sk, nil
}

// Verify implements Authenticator. Unknown emails and wrong passwords
// both collapse to ErrInvalidCredentials.
func (s *AuthService) Verify(ctx context.Context, email, password string) (models.Shopkeeper, error) {
	sk, err := s.shopkeepers.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Shopkeeper{}, ErrInvalidCredentials
		}
		return models.Shopkeeper{}, err
	}
	if !auth.CheckPassword(sk.Password, password) {
		return models.Shopkeeper{}, ErrInvalidCredentials
	}
	return sk, nil
}

// Find returns the account for an authenticated session identity.
func (s *AuthService) Find(id uint) (models.Shopkeeper, error) {
	sk, err := s.shopkeepers.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Shopkeeper{}, ErrNotFound
		}
		return models.Shopkeeper{}, err
	}
	return sk, nil
}
