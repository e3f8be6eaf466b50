package security

import (
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOTPEnroll(t *testing.T) {
	m := NewTOTPManager("Authera")

	enr, err := m.Enroll("ann@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, enr.Secret)
	assert.True(t, strings.HasPrefix(enr.URI, "otpauth://totp/"))
	assert.Contains(t, enr.URI, "issuer=Authera")
	assert.True(t, strings.HasPrefix(enr.QR, "data:image/png;base64,"))

	// свежий секрет сразу же проверяем его же кодом
	code, err := totp.GenerateCode(enr.Secret, time.Now())
	require.NoError(t, err)
	assert.True(t, m.VerifyCode(enr.Secret, code))
}

func TestTOTPSkewWindow(t *testing.T) {
	m := NewTOTPManager("Authera")
	enr, err := m.Enroll("ann@x.com")
	require.NoError(t, err)

	// фиксированный момент — шаги детерминированы
	at := time.Unix(1_700_000_000, 0).UTC()

	for _, d := range []time.Duration{0, -30 * time.Second, 30 * time.Second} {
		code, err := totp.GenerateCode(enr.Secret, at.Add(d))
		require.NoError(t, err)
		assert.True(t, m.verifyAt(enr.Secret, code, at), "offset %v must be accepted", d)
	}

	for _, d := range []time.Duration{-60 * time.Second, 60 * time.Second} {
		code, err := totp.GenerateCode(enr.Secret, at.Add(d))
		require.NoError(t, err)
		assert.False(t, m.verifyAt(enr.Secret, code, at), "offset %v must be rejected", d)
	}
}

func TestTOTPMalformedCode(t *testing.T) {
	m := NewTOTPManager("Authera")
	enr, err := m.Enroll("ann@x.com")
	require.NoError(t, err)

	for _, code := range []string{"", "12345", "1234567", "abcdef", "12 456"} {
		assert.False(t, m.VerifyCode(enr.Secret, code), "code %q", code)
	}
	assert.False(t, m.VerifyCode("", "123456"))
}
