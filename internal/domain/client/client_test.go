package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	birth := time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC)

	t.Run("SuccessfulCreation", func(t *testing.T) {
		c, err := New("João Silva", "12345678901", "joao@email.com", "11999999999", birth)

		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "João Silva", c.Name)
		assert.Equal(t, "12345678901", c.CPF)
		assert.Equal(t, "joao@email.com", c.Email)
		assert.Nil(t, c.Address)
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := New("   ", "12345678901", "a@b.com", "11999999999", birth)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("MalformedCPF", func(t *testing.T) {
		for _, cpf := range []string{"", "123", "123456789012", "1234567890a"} {
			_, err := New("João", cpf, "a@b.com", "11999999999", birth)
			assert.ErrorIs(t, err, ErrInvalidCPF, "cpf %q", cpf)
		}
	})
}

func TestClient_Equal(t *testing.T) {
	birth := time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC)
	a, err := New("João", "12345678901", "joao@email.com", "1", birth)
	require.NoError(t, err)
	b, err := New("Completely Different Name", "12345678901", "other@email.com", "2", birth)
	require.NoError(t, err)
	c, err := New("João", "98765432100", "joao@email.com", "1", birth)
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "identity is defined solely by CPF")
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestClient_Age(t *testing.T) {
	c, err := New("João", "12345678901", "joao@email.com", "1",
		time.Now().AddDate(-30, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, 30, c.Age())
}
