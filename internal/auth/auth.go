package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/krishanu7/battleship-console/db"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidToken       = errors.New("invalid token")
)

const tokenTTL = 24 * time.Hour

// Service keeps player profiles so results can be attributed to a player.
type Service struct {
	db     *sql.DB
	secret []byte
}

func NewService(db *sql.DB, jwtSecret string) *Service {
	return &Service{
		db:     db,
		secret: []byte(jwtSecret),
	}
}

func (s *Service) Register(ctx context.Context, username, password string) (db.User, error) {
	if username == "" || password == "" {
		return db.User{}, fmt.Errorf("username and password cannot be empty")
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return db.User{}, err
	}

	query := "INSERT INTO users (id, username, password, created_at) VALUES ($1, $2, $3, $4) RETURNING id, username, created_at"
	var user db.User
	err = s.db.QueryRowContext(ctx, query, uuid.New(), username, string(hashedPassword), time.Now()).
		Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err != nil {
		// Check for unique constraint violation
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return db.User{}, ErrUsernameTaken
		}
		return db.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	user.Password = string(hashedPassword)
	return user, nil
}

// Login checks the password and returns a signed session token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	var user db.User
	err := s.db.QueryRowContext(ctx, `
	SELECT id, username, password, created_at
	FROM users
	WHERE username = $1
`, username).Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.issueToken(user.ID)
}

// Authenticate logs in, registering the profile the first time it is used.
func (s *Service) Authenticate(ctx context.Context, username, password string) (string, error) {
	token, err := s.Login(ctx, username, password)
	if !errors.Is(err, ErrInvalidCredentials) {
		return token, err
	}
	if _, regErr := s.Register(ctx, username, password); regErr != nil {
		if errors.Is(regErr, ErrUsernameTaken) {
			return "", ErrInvalidCredentials
		}
		return "", regErr
	}
	return s.Login(ctx, username, password)
}

// ParseToken verifies a token and returns the player ID it was issued to.
func (s *Service) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}

func (s *Service) issueToken(userID uuid.UUID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	})
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}
