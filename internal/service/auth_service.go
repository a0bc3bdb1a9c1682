package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Dew789/Game-Community/internal/models"
	"github.com/Dew789/Game-Community/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// avatares por defecto hasta que el usuario suba los suyos
const (
	defaultAvatarBig   = "/static/photo/ul.png"
	defaultAvatarSmall = "/static/photo/u.png"
)

type AuthService struct {
	users     *repository.UserRepository
	follows   *repository.FollowRepository
	jwtSecret []byte
}

func NewAuthService(users *repository.UserRepository, follows *repository.FollowRepository, secret string) *AuthService {
	return &AuthService{users: users, follows: follows, jwtSecret: []byte(secret)}
}

type RegisterUserData struct {
	Email    string
	Username string
	Password string
	Role     string

	AboutMe  string
	Location string
}

type UpdateUserData struct {
	Email    *string
	Username *string
	Role     *string
	Password *string

	AboutMe  *string
	Location *string
}

func validRole(role string) bool {
	return role == "user" || role == "moderator" || role == "admin"
}

// Register crea un usuario nuevo. Rol por defecto: "user".
func (s *AuthService) Register(ctx context.Context, data RegisterUserData) (*models.UserDoc, error) {
	existing, err := s.users.FindByEmail(ctx, data.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	if data.Username != "" {
		byName, err := s.users.FindByUsername(ctx, data.Username)
		if err != nil {
			return nil, err
		}
		if byName != nil {
			return nil, fmt.Errorf("username already taken")
		}
	}

	nextID, err := s.users.GetNextUserID(ctx)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := data.Role
	if role == "" {
		role = "user"
	}
	if !validRole(role) {
		return nil, fmt.Errorf("invalid role (must be user|moderator|admin)")
	}

	now := time.Now().UTC().Format(time.RFC3339)

	u := &models.UserDoc{
		UserID:       nextID,
		Email:        data.Email,
		Username:     data.Username,
		PasswordHash: string(hash),
		Role:         role,
		AboutMe:      data.AboutMe,
		Location:     data.Location,
		AvatarBig:    defaultAvatarBig,
		AvatarSmall:  defaultAvatarSmall,
		MemberSince:  now,
		LastSeen:     now,
	}

	if err := s.users.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDoc, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	// refrescamos lastSeen sin romper el login si falla
	_ = s.users.UpdateByID(ctx, u.UserID, map[string]any{
		"lastSeen": time.Now().UTC().Format(time.RFC3339),
	})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.UserID,
		"role": u.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	sToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return sToken, u, nil
}

// UpdateUser actualiza campos opcionales de un usuario.
func (s *AuthService) UpdateUser(ctx context.Context, userID int, data UpdateUserData) error {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("user not found")
	}

	update := map[string]any{}

	if data.Email != nil {
		if *data.Email == "" {
			return fmt.Errorf("email cannot be empty")
		}
		existing, err := s.users.FindByEmail(ctx, *data.Email)
		if err != nil {
			return err
		}
		if existing != nil && existing.UserID != userID {
			return fmt.Errorf("email already in use")
		}
		update["email"] = *data.Email
	}

	if data.Username != nil {
		if *data.Username == "" {
			return fmt.Errorf("username cannot be empty")
		}
		existing, err := s.users.FindByUsername(ctx, *data.Username)
		if err != nil {
			return err
		}
		if existing != nil && existing.UserID != userID {
			return fmt.Errorf("username already taken")
		}
		update["username"] = *data.Username
	}

	if data.Role != nil {
		if !validRole(*data.Role) {
			return fmt.Errorf("invalid role (must be user|moderator|admin)")
		}
		update["role"] = *data.Role
	}

	if data.Password != nil {
		if *data.Password == "" {
			return fmt.Errorf("password cannot be empty")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*data.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		update["passwordHash"] = string(hash)
	}

	if data.AboutMe != nil {
		update["aboutMe"] = *data.AboutMe
	}
	if data.Location != nil {
		update["location"] = *data.Location
	}

	if len(update) == 0 {
		return fmt.Errorf("no fields to update")
	}

	return s.users.UpdateByID(ctx, userID, update)
}

func (s *AuthService) ListUsers(ctx context.Context, role, q string, limit, offset int) ([]models.UserDoc, error) {
	return s.users.Search(ctx, role, q, limit, offset)
}

func (s *AuthService) GetUserByID(ctx context.Context, userID int) (*models.UserDoc, error) {
	return s.users.FindByID(ctx, userID)
}

// ================== FOLLOWS ==================

func (s *AuthService) Follow(ctx context.Context, followerID, followedID int) error {
	if followerID == followedID {
		return fmt.Errorf("cannot follow yourself")
	}
	target, err := s.users.FindByID(ctx, followedID)
	if err != nil {
		return err
	}
	if target == nil {
		return fmt.Errorf("user not found")
	}
	return s.follows.Follow(ctx, followerID, followedID)
}

func (s *AuthService) Unfollow(ctx context.Context, followerID, followedID int) error {
	return s.follows.Unfollow(ctx, followerID, followedID)
}

func (s *AuthService) IsFollowing(ctx context.Context, followerID, followedID int) (bool, error) {
	return s.follows.IsFollowing(ctx, followerID, followedID)
}

func (s *AuthService) Followers(ctx context.Context, userID int) ([]int, error) {
	return s.follows.Followers(ctx, userID)
}
