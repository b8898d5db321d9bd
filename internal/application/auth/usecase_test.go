package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrotrack/agrotrack-api/internal/application/auth"
	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/domain"
	"github.com/agrotrack/agrotrack-api/internal/infrastructure/memory"
	pkgjwt "github.com/agrotrack/agrotrack-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "agrotrack-test"
)

func newAuthUC() *auth.AuthUseCase {
	return auth.NewAuthUseCase(memory.NewUserRepository(), auth.JWTConfig{
		Secret:  testSecret,
		ExpDays: 30,
		Issuer:  testIssuer,
	})
}

func registerMaria(t *testing.T, uc *auth.AuthUseCase) *dto.AuthResponse {
	t.Helper()
	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Maria Silva",
		Email:    "maria@fazenda.com",
		Password: "senha-segura-123",
		Phone:    "+55 11 99999-0000",
	})
	require.NoError(t, err)
	return out
}

// Registro: plan trial, vencimiento a 14 días y token utilizable.
func TestRegister_CreaTrialDe14Dias(t *testing.T) {
	uc := newAuthUC()
	out := registerMaria(t, uc)

	assert.Equal(t, "trial", out.User.Plan)
	assert.NotEmpty(t, out.User.ID)
	assert.NotEmpty(t, out.Token)

	expected := time.Now().Add(14 * 24 * time.Hour)
	assert.WithinDuration(t, expected, out.User.TrialEndDate, time.Minute,
		"el trial debe vencer 14 días después del registro")

	// El token emitido debe resolver al usuario recién creado.
	userID, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
}

// Email duplicado: rechazado aunque el resto de campos difiera.
func TestRegister_EmailDuplicado(t *testing.T) {
	uc := newAuthUC()
	registerMaria(t, uc)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Otra Persona",
		Email:    "maria@fazenda.com",
		Password: "otra-senha",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Login correcto devuelve token fresco.
func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc := newAuthUC()
	reg := registerMaria(t, uc)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "maria@fazenda.com",
		Password: "senha-segura-123",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, out.User.ID)
	assert.NotEmpty(t, out.Token)
}

// Password incorrecto y email inexistente producen el mismo error:
// la respuesta nunca revela si el email está registrado.
func TestLogin_NoRevelaExistenciaDelEmail(t *testing.T) {
	uc := newAuthUC()
	registerMaria(t, uc)

	_, errPass := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "maria@fazenda.com",
		Password: "senha-errada",
	})
	_, errEmail := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@fazenda.com",
		Password: "senha-segura-123",
	})

	assert.ErrorIs(t, errPass, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errEmail, domain.ErrInvalidCredentials)
}

// ResolveSession con token válido devuelve el usuario completo.
func TestResolveSession_TokenValido(t *testing.T) {
	uc := newAuthUC()
	reg := registerMaria(t, uc)

	user, err := uc.ResolveSession(context.Background(), reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, user.ID)
	assert.Equal(t, "maria@fazenda.com", user.Email)
}

// Token firmado con otro secret → ErrInvalidToken.
func TestResolveSession_FirmaAjena(t *testing.T) {
	uc := newAuthUC()
	reg := registerMaria(t, uc)

	foreign, err := pkgjwt.Generate("secret-de-otro-servicio", reg.User.ID, testIssuer, 30)
	require.NoError(t, err)

	_, err = uc.ResolveSession(context.Background(), foreign)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

// Token vencido → ErrTokenExpired, distinguible de firma inválida.
func TestResolveSession_TokenExpirado(t *testing.T) {
	uc := newAuthUC()
	reg := registerMaria(t, uc)

	expired, err := pkgjwt.Generate(testSecret, reg.User.ID, testIssuer, -1)
	require.NoError(t, err)

	_, err = uc.ResolveSession(context.Background(), expired)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

// Token válido cuyo subject ya no existe → ErrUserNotFound.
func TestResolveSession_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC()

	ghost, err := pkgjwt.Generate(testSecret, "usuario-fantasma", testIssuer, 30)
	require.NoError(t, err)

	_, err = uc.ResolveSession(context.Background(), ghost)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
