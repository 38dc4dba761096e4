package paseto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-HR-Karyawan/models"
	util "Sistem-HR-Karyawan/pkg/utils"
)

func newTestMaker(t *testing.T) *PasetoMaker {
	t.Helper()

	key, err := util.GenerateBase64Key(32)
	require.NoError(t, err)

	maker, err := NewPasetoMaker(key)
	require.NoError(t, err)
	return maker
}

func TestNewPasetoMakerRejectsBadKey(t *testing.T) {
	_, err := NewPasetoMaker("bukan-base64!!!")
	assert.Error(t, err)

	// Valid base64 tapi bukan 32 byte.
	_, err = NewPasetoMaker("c2hvcnQ=")
	assert.Error(t, err)
}

func TestGenerateAndValidateToken(t *testing.T) {
	maker := newTestMaker(t)

	employee := &models.Employee{
		ID:    primitive.NewObjectID(),
		Email: "budi@example.com",
		Role:  "employee",
	}

	token, err := maker.GenerateToken(employee)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, employee.ID, claims.EmployeeID)
	assert.Equal(t, employee.Email, claims.Email)
	assert.Equal(t, employee.Role, claims.Role)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	maker := newTestMaker(t)
	other := newTestMaker(t)

	employee := &models.Employee{ID: primitive.NewObjectID(), Email: "a@b.c", Role: "admin"}

	token, err := maker.GenerateToken(employee)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	maker := newTestMaker(t)

	_, err := maker.ValidateToken("v2.local.thisisnotatoken")
	assert.Error(t, err)
}
