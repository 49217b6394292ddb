package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/dcpos-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "dcpos-test"
)

func TestJWT_GenerateAndParse_Access(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, pkgjwt.KindAccess, testIssuer, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	subject, err := pkgjwt.Parse(testSecret, tok, pkgjwt.KindAccess)
	require.NoError(t, err)
	assert.Equal(t, testUserID, subject)
}

func TestJWT_GenerateAndParse_Refresh(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, pkgjwt.KindRefresh, testIssuer, 7*24*time.Hour)
	require.NoError(t, err)

	subject, err := pkgjwt.Parse(testSecret, tok, pkgjwt.KindRefresh)
	require.NoError(t, err)
	assert.Equal(t, testUserID, subject)
}

// El kind viaja firmado: un access token no sirve donde se espera refresh, ni al revés.
func TestJWT_KindCruzado_RetornaError(t *testing.T) {
	access, err := pkgjwt.Generate(testSecret, testUserID, pkgjwt.KindAccess, testIssuer, time.Hour)
	require.NoError(t, err)
	refresh, err := pkgjwt.Generate(testSecret, testUserID, pkgjwt.KindRefresh, testIssuer, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, access, pkgjwt.KindRefresh)
	assert.Error(t, err, "access token donde se espera refresh debe fallar")

	_, err = pkgjwt.Parse(testSecret, refresh, pkgjwt.KindAccess)
	assert.Error(t, err, "refresh token donde se espera access debe fallar")
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, pkgjwt.KindAccess, testIssuer, -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok, pkgjwt.KindAccess)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, pkgjwt.KindAccess, testIssuer, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok, pkgjwt.KindAccess)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_KindDesconocido_NoSeGenera(t *testing.T) {
	_, err := pkgjwt.Generate(testSecret, testUserID, "password-reset", testIssuer, time.Hour)
	assert.Error(t, err)
}

func TestJWT_TokenMalformado_RetornaError(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "token.invalido.aqui", pkgjwt.KindAccess)
	assert.Error(t, err)
}

// Dos emisiones consecutivas para el mismo usuario deben producir strings distintos
// (jti aleatorio), para que la rotación de refresh siempre entregue material nuevo.
func TestJWT_EmisionesConsecutivas_SonDistintas(t *testing.T) {
	a, err := pkgjwt.Generate(testSecret, testUserID, pkgjwt.KindAccess, testIssuer, time.Hour)
	require.NoError(t, err)
	b, err := pkgjwt.Generate(testSecret, testUserID, pkgjwt.KindAccess, testIssuer, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "tokens emitidos en el mismo instante deben ser distintos")
}
