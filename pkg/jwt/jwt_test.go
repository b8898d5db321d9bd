package jwt_test

import (
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/agrotrack/agrotrack-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "agrotrack-test"
)

// Round-trip: generar y parsear con el mismo secret devuelve el userID.
func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testIssuer, 30)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
}

// Un token firmado con otro secret debe rechazarse.
func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", testUserID, testIssuer, 30)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "la firma con otro secret no debe validar")
	assert.NotErrorIs(t, err, jwtlib.ErrTokenExpired,
		"firma inválida no debe confundirse con expiración")
}

// Un token vencido debe reportar jwtlib.ErrTokenExpired para que el llamador
// distinga expiración de token malformado.
func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwtlib.ErrTokenExpired)
}

// Basura que no es un JWT debe fallar.
func TestParse_TokenMalformado(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "no-es-un-token")
	assert.Error(t, err)
}

// Un token alg=none (sin firma) nunca debe aceptarse.
func TestParse_AlgoritmoNone(t *testing.T) {
	unsigned := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, jwtlib.RegisteredClaims{
		Subject: testUserID,
	})
	raw, err := unsigned.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, raw)
	assert.Error(t, err, "alg=none debe rechazarse")
}

// Secret vacío es un error de programación, nunca genera ni valida.
func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testIssuer, 30)
	assert.Error(t, err)

	_, err = pkgjwt.Parse("", "cualquier-cosa")
	assert.Error(t, err)
}
