package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"expman-backend/internal/domain/user"
	"expman-backend/pkg/id"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims carries the token kind ("access" or "refresh") next to the
// registered set, so a refresh token cannot be replayed as an access token
// and vice versa.
type Claims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type Usecase struct {
	users      user.Repository
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	log        *zap.Logger
}

func NewUsecase(users user.Repository, secret []byte, accessTTL, refreshTTL time.Duration, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{users: users, secret: secret, accessTTL: accessTTL, refreshTTL: refreshTTL, log: log}
}

// Login verifies the credentials and issues an access/refresh pair.
// Unknown user and wrong password are indistinguishable to the caller.
func (u *Usecase) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	username = strings.TrimSpace(username)
	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			u.log.Error("user lookup failed", zap.String("username", username), zap.Error(err))
			return nil, err
		}
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(usr.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	access, err := u.sign(username, "access", u.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := u.sign(username, "refresh", u.refreshTTL)
	if err != nil {
		return nil, err
	}
	u.log.Info("user logged in", zap.String("username", username))
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (u *Usecase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(refreshToken, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return u.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	if claims.TokenType != "refresh" {
		return "", ErrInvalidToken
	}
	// the account must still exist
	if _, err := u.users.GetByUsername(ctx, claims.Subject); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	return u.sign(claims.Subject, "access", u.accessTTL)
}

// CreateUser registers an account if the username is free. Used by the
// bootstrap commands, not exposed over HTTP.
func (u *Usecase) CreateUser(ctx context.Context, username, email, password string, staff bool) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("username required")
	}
	if len(password) < 6 {
		return errors.New("password too short (min 6)")
	}
	if _, err := u.users.GetByUsername(ctx, username); err == nil {
		return fmt.Errorf("user %q already exists", username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return u.users.Create(ctx, &user.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsStaff:      staff,
	})
}

func (u *Usecase) sign(username, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        id.NewID32(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
}
