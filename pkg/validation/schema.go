package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// Satu skema per konsep. Semua input eksternal yang dipakai sebagai filter
// atau payload mutasi harus lewat sini dulu, tidak boleh ada call site yang
// punya definisi valid-nya sendiri.

// InviteCodeLength is the fixed length of a hostel invite code.
const InviteCodeLength = 6

var inviteCodePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

var sanitizer = bluemonday.StrictPolicy()

// InviteCode normalizes a hostel invite code to upper case and validates the
// fixed length/character-set rule. Returns the normalized code.
func InviteCode(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if !inviteCodePattern.MatchString(code) {
		return "", fmt.Errorf("invite code must be %d alphanumeric characters", InviteCodeLength)
	}
	return code, nil
}

// Month validates a "YYYY-MM" rent month with real calendar bounds
// ("2024-13" fails, "2024-02" passes).
func Month(raw string) (string, error) {
	if len(raw) != 7 {
		return "", fmt.Errorf("month must be in YYYY-MM format")
	}
	if _, err := time.Parse("2006-01", raw); err != nil {
		return "", fmt.Errorf("month must be in YYYY-MM format")
	}
	return raw, nil
}

// UUID parses a UUID in canonical form only; bentuk urn: dan {} yang juga
// diterima uuid.Parse ditolak di sini.
func UUID(raw string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) != 36 {
		return uuid.Nil, fmt.Errorf("invalid id")
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id")
	}
	return id, nil
}

// Text sanitizes free text from untrusted callers: markup dibuang
// (bluemonday strict), karakter kontrol dibuang, lalu dipangkas dan dibatasi
// panjangnya.
func Text(raw string, max int) (string, error) {
	clean := sanitizer.Sanitize(raw)
	clean = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, clean)
	clean = strings.TrimSpace(clean)
	if utf8.RuneCountInString(clean) > max {
		return "", fmt.Errorf("text exceeds %d characters", max)
	}
	return clean, nil
}

// RegisterBindings registers the custom tags used by DTO binding
// (`kostcode`, `month`) on gin's validator engine.
func RegisterBindings() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("kostcode", func(fl validator.FieldLevel) bool {
		_, err := InviteCode(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
		_, err := Month(fl.Field().String())
		return err == nil
	})
}
