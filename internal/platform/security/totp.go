package security

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// TOTPManager генерирует секреты для приложений-аутентификаторов и проверяет коды.
// Параметры стандартные: шаг 30с, 6 цифр, SHA1, допуск ±1 шаг.
type TOTPManager struct {
	issuer string
}

func NewTOTPManager(issuer string) *TOTPManager {
	if issuer == "" {
		issuer = "Authera"
	}
	return &TOTPManager{issuer: issuer}
}

type Enrollment struct {
	Secret string // base32, до подтверждения живёт только у клиента
	URI    string // otpauth://...
	QR     string // data:image/png;base64,... — готово для <img src>
}

// Enroll выпускает свежий секрет и provisioning-данные для сканирования.
func (m *TOTPManager) Enroll(email string) (*Enrollment, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      m.issuer,
		AccountName: email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
		SecretSize:  20,
	})
	if err != nil {
		return nil, err
	}

	img, err := key.Image(200, 200)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}

	return &Enrollment{
		Secret: key.Secret(),
		URI:    key.URL(),
		QR:     "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

// VerifyCode сравнивает код с секретом в окне ±1 шаг.
// Кривой ввод (не 6 цифр, мусор) — просто false, без ошибки.
func (m *TOTPManager) VerifyCode(secretBase32, code string) bool {
	return m.verifyAt(secretBase32, code, time.Now().UTC())
}

func (m *TOTPManager) verifyAt(secretBase32, code string, at time.Time) bool {
	ok, err := totp.ValidateCustom(code, secretBase32, at, totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return false
	}
	return ok
}
