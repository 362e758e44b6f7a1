package token

import (
	"errors"
	"fmt"
	"time"

	autherrors "go-workforce/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

const RefreshTTL = 7 * 24 * time.Hour

type Claims struct {
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role"`
	Type       string `json:"typ"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 tokens.
type Manager struct {
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
}

func NewManager(secret string, accessTTL time.Duration) *Manager {
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	return &Manager{secret: []byte(secret), accessTTL: accessTTL, now: time.Now}
}

func (m *Manager) Issue(employeeID, role, typ string) (string, error) {
	ttl := m.accessTTL
	if typ == TypeRefresh {
		ttl = RefreshTTL
	}
	now := m.now()
	claims := Claims{
		EmployeeID: employeeID,
		Role:       role,
		Type:       typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   employeeID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", typ, err)
	}
	return signed, nil
}

// Parse verifies raw and checks it is of the expected type.
func (m *Manager) Parse(raw, expectedType string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherrors.ErrTokenExpired
		}
		return nil, autherrors.ErrInvalidToken
	}
	if !tok.Valid || claims.EmployeeID == "" || claims.Type != expectedType {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}
