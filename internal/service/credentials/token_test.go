package credentials

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestTokenIssuer_SignAndVerify(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)

	identity := Identity{
		UserID:    "u-1",
		AccountID: "a-1",
		Email:     "alice@example.com",
		Name:      "alice",
	}

	signed, err := issuer.Sign(identity)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	got, err := issuer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestTokenIssuer_Verify(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)

	t.Run("Garbage", func(t *testing.T) {
		_, err := issuer.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewTokenIssuer([]byte("another-secret-another-secret-32"), time.Hour)
		signed, err := other.Sign(Identity{UserID: "u-1"})
		require.NoError(t, err)

		_, err = issuer.Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := NewTokenIssuer(testSecret, -time.Minute)
		signed, err := expired.Sign(Identity{UserID: "u-1"})
		require.NoError(t, err)

		_, err = issuer.Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("UnexpectedAlgorithm", func(t *testing.T) {
		// alg=none tokens must never verify, whatever the payload says.
		tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"sub": "u-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuer.Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("MissingSubject", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := tok.SignedString(testSecret)
		require.NoError(t, err)

		_, err = issuer.Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("MissingExpiry", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "u-1",
		})
		signed, err := tok.SignedString(testSecret)
		require.NoError(t, err)

		_, err = issuer.Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
