package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Константы валидации
const (
	MaxNameLength        = 100
	MaxNationalIDLength  = 20
	MinNationalIDLength  = 6
	MaxPhoneLength       = 20
	MaxAddressLength     = 300
	MaxInstitutionLength = 200
	MaxEmployerLength    = 200
	MaxShortFieldLength  = 100
	MaxTaxIDLength       = 20
	MaxInterviewMessage  = 2000
)

var (
	emailLocalRegex  = regexp.MustCompile(`^[a-z0-9._+-]+$`)
	emailDomainRegex = regexp.MustCompile(`^[a-z0-9.-]+\.[a-z]{2,}$`)
	nationalIDRegex  = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
	phoneRegex       = regexp.MustCompile(`^\+?[0-9 ()-]+$`)
	taxIDRegex       = regexp.MustCompile(`^[0-9-]+$`)
)

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateNonEmpty проверяет, что строка не пустая.
func ValidateNonEmpty(fieldName, value string) error {
	if IsBlank(value) {
		return fmt.Errorf("%s не может быть пустым", fieldName)
	}
	return nil
}

// IsBlank - пустая строка или только пробелы.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// ValidateEmail проверяет формат email. Пустое значение допустимо: обязательность
// проверяется при расчете заполненности профиля.
func ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("некорректный формат email")
	}

	localPart, domainPart := parts[0], parts[1]
	if len(localPart) == 0 || len(localPart) > 64 {
		return fmt.Errorf("локальная часть email должна быть от 1 до 64 символов")
	}
	if len(domainPart) == 0 || len(domainPart) > 255 {
		return fmt.Errorf("доменная часть email должна быть от 1 до 255 символов")
	}
	if !emailLocalRegex.MatchString(localPart) {
		return fmt.Errorf("локальная часть email содержит недопустимые символы")
	}
	if !emailDomainRegex.MatchString(domainPart) {
		return fmt.Errorf("доменная часть email имеет некорректный формат")
	}

	return nil
}

// ValidateNationalID проверяет номер документа, удостоверяющего личность.
func ValidateNationalID(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if err := ValidateLength("номер документа", value, MinNationalIDLength, MaxNationalIDLength); err != nil {
		return err
	}
	if !nationalIDRegex.MatchString(value) {
		return fmt.Errorf("номер документа может содержать только буквы, цифры и дефис")
	}
	return nil
}

// ValidatePhone проверяет номер телефона.
func ValidatePhone(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if err := ValidateLength("телефон", value, 0, MaxPhoneLength); err != nil {
		return err
	}
	if !phoneRegex.MatchString(value) {
		return fmt.Errorf("телефон содержит недопустимые символы")
	}
	return nil
}

// ValidateTaxID проверяет ИНН работодателя.
func ValidateTaxID(value *string) error {
	if value == nil || IsBlank(*value) {
		return nil
	}
	v := strings.TrimSpace(*value)
	if err := ValidateLength("ИНН", v, 0, MaxTaxIDLength); err != nil {
		return err
	}
	if !taxIDRegex.MatchString(v) {
		return fmt.Errorf("ИНН может содержать только цифры и дефис")
	}
	return nil
}

// ValidateNotFuture проверяет, что дата не в будущем относительно now.
func ValidateNotFuture(fieldName string, value time.Time, now time.Time) error {
	if value.After(now) {
		return fmt.Errorf("%s не может быть в будущем", fieldName)
	}
	return nil
}
