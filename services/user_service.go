package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/victormanuel-98/VMRC-PI-BACK/models"
	"github.com/victormanuel-98/VMRC-PI-BACK/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// strongPassword requires at least 8 characters with an upper-case
// letter, a lower-case letter, a digit and a special character.
func strongPassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
			special = true
		}
	}
	return upper && lower && digit && special
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *UserService) Register(in RegisterInput) (*models.User, error) {
	if in.Username == "" || in.Email == "" || in.Name == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: missing required fields", ErrValidation)
	}
	if len(in.Username) < 3 {
		return nil, fmt.Errorf("%w: username must be at least 3 characters", ErrValidation)
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if !strongPassword(in.Password) {
		return nil, fmt.Errorf("%w: password must be at least 8 characters and include upper case, lower case, a digit and a special character", ErrValidation)
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	switch role {
	case models.RoleUser, models.RoleNutritionist, models.RoleAdmin:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	var existing models.User
	err := s.db.Where("username = ? OR email = ?", in.Username, in.Email).
		First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: username or email already registered", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: in.Username,
		Email:    in.Email,
		Name:     in.Name,
		Surname:  in.Surname,
		Password: hashed,
		Role:     role,
		Active:   true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate accepts either the username or the email as identifier.
func (s *UserService) Authenticate(identifier, password string) (*models.User, error) {
	if identifier == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	var user models.User
	err := s.db.Where("(username = ? OR email = ?) AND active = ?",
		identifier, identifier, true).
		First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("%w: incorrect username or password", ErrForbidden)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, fmt.Errorf("%w: incorrect username or password", ErrForbidden)
	}
	return &user, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UpdateProfileInput struct {
	Name            *string `json:"name"`
	Surname         *string `json:"surname"`
	Email           *string `json:"email"`
	Photo           *string `json:"photo"`
	Bio             *string `json:"bio"`
	CurrentPassword string  `json:"current_password"`
	NewPassword     string  `json:"new_password"`
}

func (s *UserService) UpdateProfile(callerID uint, role string, id uint, in UpdateProfileInput) (*models.User, error) {
	if callerID != id && role != models.RoleAdmin {
		return nil, fmt.Errorf("%w: cannot modify another user's profile", ErrForbidden)
	}

	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Surname != nil {
		user.Surname = *in.Surname
	}
	if in.Photo != nil {
		user.Photo = *in.Photo
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}

	if in.Email != nil && *in.Email != user.Email {
		if !emailPattern.MatchString(*in.Email) {
			return nil, fmt.Errorf("%w: invalid email", ErrValidation)
		}
		var existing models.User
		err := s.db.Where("email = ? AND id <> ?", *in.Email, id).First(&existing).Error
		if err == nil {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *in.Email
	}

	if in.NewPassword != "" {
		if in.CurrentPassword == "" {
			return nil, fmt.Errorf("%w: current password is required", ErrValidation)
		}
		if !utils.CheckPasswordHash(in.CurrentPassword, user.Password) {
			return nil, fmt.Errorf("%w: incorrect current password", ErrForbidden)
		}
		if !strongPassword(in.NewPassword) {
			return nil, fmt.Errorf("%w: password must be at least 8 characters and include upper case, lower case, a digit and a special character", ErrValidation)
		}
		hashed, err := utils.HashPassword(in.NewPassword)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
