package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

const (
	adminSubject = "admin"
	tokenTTL     = 24 * time.Hour
)

var ErrInvalidKey = errors.New("invalid admin key")

type HashService interface {
	CompareKey(hashedKey, key string) bool
}

type JWTService interface {
	GenerateJWT(subject string, expirationTime time.Time) (string, error)
}

// Service trades the shared admin key for a short-lived JWT. Only the
// bcrypt hash of the key is ever configured on the server.
type Service struct {
	keyHash     string
	hashService HashService
	jwtService  JWTService
}

func New(keyHash string, hashService HashService, jwtService JWTService) *Service {
	return &Service{
		keyHash:     keyHash,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Login(_ context.Context, key string) (string, error) {
	if s.keyHash == "" || !s.hashService.CompareKey(s.keyHash, key) {
		zap.L().Warn("admin login rejected")
		return "", ErrInvalidKey
	}
	token, err := s.jwtService.GenerateJWT(adminSubject, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("failed to sign admin token", zap.Error(err))
		return "", err
	}
	return token, nil
}
