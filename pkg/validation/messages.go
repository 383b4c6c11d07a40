package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldError := range validationErrors {
			message := getFieldErrorMessage(fieldError)
			messages = append(messages, message)
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := getFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s wajib diisi", field)
	case "email":
		return fmt.Sprintf("%s harus berupa email yang valid", field)
	case "kostcode":
		return fmt.Sprintf("%s harus %d karakter huruf/angka", field, InviteCodeLength)
	case "month":
		return fmt.Sprintf("%s harus berformat YYYY-MM", field)
	case "uuid":
		return fmt.Sprintf("%s bukan ID yang valid", field)
	case "min":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s minimal %s karakter", field, fe.Param())
		}
		return fmt.Sprintf("%s minimal %s", field, fe.Param())
	case "max":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s maksimal %s karakter", field, fe.Param())
		}
		return fmt.Sprintf("%s maksimal %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s harus salah satu dari: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s tidak valid", field)
	}
}

func getFieldName(field string) string {
	fieldNames := map[string]string{
		"Email":         "Email",
		"Password":      "Password",
		"Role":          "Role",
		"FullName":      "Nama lengkap",
		"Name":          "Nama",
		"Address":       "Alamat",
		"City":          "Kota",
		"InviteCode":    "Kode undangan",
		"Month":         "Bulan",
		"Amount":        "Nominal",
		"Subject":       "Subjek",
		"Body":          "Isi",
		"Title":         "Judul",
		"PricePerMonth": "Harga per bulan",
		"TotalRooms":    "Jumlah kamar",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
