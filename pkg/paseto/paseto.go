package paseto

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-HR-Karyawan/models"
)

type Claims struct {
	EmployeeID primitive.ObjectID `json:"employee_id"`
	Email      string             `json:"email"`
	Role       string             `json:"role"`
}

type PasetoMaker struct {
	paseto       *paseto.V2
	symmetricKey []byte
}

// NewPasetoMaker membuat token maker PASETO v2 local dari secret
// Base64 URL-encoded (hasil decode wajib tepat 32 byte).
func NewPasetoMaker(secretBase64 string) (*PasetoMaker, error) {
	key, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		return nil, fmt.Errorf("PASETO secret bukan Base64 URL-encoded yang valid: %w", err)
	}

	if len(key) != 32 {
		return nil, fmt.Errorf("PASETO secret harus tepat 32 byte setelah decode, dapat %d byte", len(key))
	}

	return &PasetoMaker{
		paseto:       paseto.NewV2(),
		symmetricKey: key,
	}, nil
}

func (m *PasetoMaker) GenerateToken(employee *models.Employee) (string, error) {
	now := time.Now()
	exp := now.Add(24 * time.Hour)

	token := paseto.JSONToken{
		IssuedAt:   now,
		Expiration: exp,
		NotBefore:  now,
	}

	// Custom claims disimpan sebagai string
	token.Set("employee_id", employee.ID.Hex())
	token.Set("email", employee.Email)
	token.Set("role", employee.Role)

	return m.paseto.Encrypt(m.symmetricKey, token, "")
}

func (m *PasetoMaker) ValidateToken(tokenString string) (*Claims, error) {
	var token paseto.JSONToken
	var footer string

	err := m.paseto.Decrypt(tokenString, m.symmetricKey, &token, &footer)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt paseto token: %w", err)
	}

	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	var claims Claims

	employeeIDStr := token.Get("employee_id")
	objectID, err := primitive.ObjectIDFromHex(employeeIDStr)
	if err != nil {
		return nil, fmt.Errorf("invalid employee_id format: %v", err)
	}
	claims.EmployeeID = objectID
	claims.Email = token.Get("email")
	claims.Role = token.Get("role")

	return &claims, nil
}
