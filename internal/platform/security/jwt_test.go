package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", 5*time.Minute)

	setup, err := m.IssueSetup("Ann", "ann@x.com")
	require.NoError(t, err)
	claims, err := m.Verify(setup, PurposeSetup)
	require.NoError(t, err)
	assert.Equal(t, "Ann", claims.Name)
	assert.Equal(t, "ann@x.com", claims.Email)
	assert.Equal(t, PurposeSetup, claims.Purpose)

	login, err := m.IssueLogin("ann@x.com")
	require.NoError(t, err)
	claims, err = m.Verify(login, PurposeLogin)
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", claims.Email)
	assert.NotEmpty(t, claims.ID, "login token must carry a unique jti")

	twofa, err := m.IssueTwoFA("ann@x.com")
	require.NoError(t, err)
	claims, err = m.Verify(twofa, PurposeTwoFA)
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", claims.Email)
}

func TestTokenPurposeIsolation(t *testing.T) {
	m := NewTokenManager("test-secret", 5*time.Minute)

	setup, err := m.IssueSetup("Ann", "ann@x.com")
	require.NoError(t, err)

	_, err = m.Verify(setup, PurposeLogin)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	_, err = m.Verify(setup, PurposeTwoFA)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// PurposeAny проверяет только подпись и срок
	_, err = m.Verify(setup, PurposeAny)
	assert.NoError(t, err)
}

func TestTokenExpiry(t *testing.T) {
	m := NewTokenManager("test-secret", time.Millisecond)

	tok, err := m.IssueTwoFA("ann@x.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = m.Verify(tok, PurposeTwoFA)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	_, err = m.Verify(tok, PurposeAny)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenLoginJTIUnique(t *testing.T) {
	m := NewTokenManager("test-secret", 5*time.Minute)

	a, err := m.IssueLogin("ann@x.com")
	require.NoError(t, err)
	b, err := m.IssueLogin("ann@x.com")
	require.NoError(t, err)

	ca, err := m.Verify(a, PurposeLogin)
	require.NoError(t, err)
	cb, err := m.Verify(b, PurposeLogin)
	require.NoError(t, err)
	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestTokenForeignSignature(t *testing.T) {
	issuer := NewTokenManager("secret-a", 5*time.Minute)
	verifier := NewTokenManager("secret-b", 5*time.Minute)

	tok, err := issuer.IssueTwoFA("ann@x.com")
	require.NoError(t, err)

	_, err = verifier.Verify(tok, PurposeTwoFA)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = verifier.Verify("not-a-token", PurposeAny)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
