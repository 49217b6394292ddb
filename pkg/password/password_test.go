package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dcpos-api/pkg/password"
)

func TestPassword_HashYVerify(t *testing.T) {
	digest, err := password.Hash("secreto123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "secreto123", digest, "el hash nunca debe ser el texto plano")

	assert.True(t, password.Verify("secreto123", digest))
	assert.False(t, password.Verify("secreto124", digest))
}

// Dos hashes de la misma contraseña difieren (salt aleatorio embebido),
// pero ambos verifican contra el original.
func TestPassword_HashesDistintosVerificanIgual(t *testing.T) {
	a, err := password.Hash("secreto123")
	require.NoError(t, err)
	b, err := password.Hash("secreto123")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, password.Verify("secreto123", a))
	assert.True(t, password.Verify("secreto123", b))
}

func TestPassword_DigestMalformado_NoVerifica(t *testing.T) {
	assert.False(t, password.Verify("secreto123", "no-es-un-hash-bcrypt"))
	assert.False(t, password.Verify("secreto123", ""))
}
