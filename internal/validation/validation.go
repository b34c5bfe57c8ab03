// Package validation содержит функции валидации входных данных.
package validation

import (
	"strings"
	"unicode"
)

// IsValidEmail проверяет минимальную корректность адреса электронной почты.
func IsValidEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	if strings.IndexByte(domain, '@') != -1 {
		return false
	}
	dot := strings.LastIndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}

// IsValidPhone проверяет телефонный номер: допускаются цифры, пробелы,
// дефисы, скобки и ведущий плюс, не менее семи цифр.
func IsValidPhone(phone string) bool {
	digits := 0
	for i, ch := range phone {
		switch {
		case unicode.IsDigit(ch):
			digits++
		case ch == '+' && i == 0:
		case ch == ' ' || ch == '-' || ch == '(' || ch == ')':
		default:
			return false
		}
	}
	return digits >= 7
}

// IsValidPostalCode проверяет польский почтовый индекс формата NN-NNN.
func IsValidPostalCode(code string) bool {
	if len(code) != 6 || code[2] != '-' {
		return false
	}
	for i, ch := range code {
		if i == 2 {
			continue
		}
		if !unicode.IsDigit(ch) {
			return false
		}
	}
	return true
}

// IsValidRating проверяет оценку отзыва: от одной до пяти звёзд.
func IsValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}
