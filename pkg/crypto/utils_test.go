package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen(t *testing.T) {
	keys, err := DeriveKeys("correct horse battery staple")
	require.Nil(t, err)

	sealed, err := keys.Seal([]byte(`[{"id":"1"}]`))
	require.Nil(t, err)
	assert.NotContains(t, string(sealed), "id")

	plain, err := keys.Open(sealed)
	assert.Nil(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(plain))
}

func TestOpenWrongSecret(t *testing.T) {
	a, _ := DeriveKeys("correct horse battery staple")
	b, _ := DeriveKeys("incorrect horse battery staple")

	sealed, err := a.Seal([]byte("hello"))
	require.Nil(t, err)

	_, err = b.Open(sealed)
	assert.NotNil(t, err)
}

func TestOpenTampered(t *testing.T) {
	keys, _ := DeriveKeys("correct horse battery staple")
	sealed, _ := keys.Seal([]byte("hello"))

	sealed[0] ^= 'A' ^ 'B'

	_, err := keys.Open(sealed)
	assert.NotNil(t, err)

	_, err = keys.Open([]byte("no-separator"))
	assert.NotNil(t, err)
}

func TestDeriveKeysShortSecret(t *testing.T) {
	_, err := DeriveKeys("short")
	assert.NotNil(t, err)
}

func TestNewRandomKey(t *testing.T) {
	a, err := NewRandomKey()
	assert.Nil(t, err)
	b, _ := NewRandomKey()

	assert.NotEqual(t, a, b)
	assert.GreaterOrEqual(t, len(a), minSecretLen)
}
