package token

import (
	"testing"
	"time"

	autherrors "go-workforce/internal/auth/errors"

	"github.com/stretchr/testify/assert"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("secret", time.Hour)

	raw, err := m.Issue("emp-1", "manager", TypeAccess)
	assert.NoError(t, err)

	claims, err := m.Parse(raw, TypeAccess)
	assert.NoError(t, err)
	assert.Equal(t, "emp-1", claims.EmployeeID)
	assert.Equal(t, "manager", claims.Role)
}

func TestManager_RejectsWrongType(t *testing.T) {
	m := NewManager("secret", time.Hour)
	raw, _ := m.Issue("emp-1", "hr", TypeRefresh)

	_, err := m.Parse(raw, TypeAccess)

	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestManager_RejectsOtherSecret(t *testing.T) {
	raw, _ := NewManager("secret", time.Hour).Issue("emp-1", "hr", TypeAccess)

	_, err := NewManager("other", time.Hour).Parse(raw, TypeAccess)

	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestManager_Expired(t *testing.T) {
	m := NewManager("secret", time.Minute)
	issuedAt := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issuedAt }
	raw, _ := m.Issue("emp-1", "employee", TypeAccess)

	m.now = time.Now
	_, err := m.Parse(raw, TypeAccess)

	assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
}
