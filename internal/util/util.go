// Package util holds formatting and validation helpers for Brazilian
// registry numbers and money.
package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OnlyDigits strips every non-digit rune from s.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// IsValidCPF checks the length and both check digits of a CPF, formatted or not.
func IsValidCPF(cpf string) bool {
	digits := OnlyDigits(cpf)
	if len(digits) != 11 || allSameDigit(digits) {
		return false
	}

	return checkDigit(digits[:9], 10) == digits[9] && checkDigit(digits[:10], 11) == digits[10]
}

// FormatCPF renders a CPF as 000.000.000-00. Invalid lengths are returned unchanged.
func FormatCPF(cpf string) string {
	d := OnlyDigits(cpf)
	if len(d) != 11 {
		return cpf
	}

	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// IsValidCNPJ checks the length and both check digits of a CNPJ.
func IsValidCNPJ(cnpj string) bool {
	digits := OnlyDigits(cnpj)
	if len(digits) != 14 || allSameDigit(digits) {
		return false
	}

	first := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	second := append([]int{6}, first...)

	return weightedCheckDigit(digits[:12], first) == digits[12] &&
		weightedCheckDigit(digits[:13], second) == digits[13]
}

// FormatCNPJ renders a CNPJ as 00.000.000/0000-00. Invalid lengths are returned unchanged.
func FormatCNPJ(cnpj string) string {
	d := OnlyDigits(cnpj)
	if len(d) != 14 {
		return cnpj
	}

	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

func allSameDigit(digits string) bool {
	return strings.Count(digits, digits[:1]) == len(digits)
}

// checkDigit computes a CPF verifier with weights descending from firstWeight.
func checkDigit(digits string, firstWeight int) byte {
	sum := 0
	for i, r := range digits {
		sum += int(r-'0') * (firstWeight - i)
	}

	return mod11Digit(sum)
}

func weightedCheckDigit(digits string, weights []int) byte {
	sum := 0
	for i, r := range digits {
		sum += int(r-'0') * weights[i]
	}

	return mod11Digit(sum)
}

func mod11Digit(sum int) byte {
	rest := sum % 11
	if rest < 2 {
		return '0'
	}

	return byte('0' + 11 - rest)
}

// FormatBRL formats an amount as Brazilian reais, e.g. R$ 1.234,56.
func FormatBRL(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if amount.IsNegative() && !amount.Round(2).IsZero() {
		sign = "-"
	}

	return fmt.Sprintf("%sR$ %s,%s", sign, grouped.String(), fracPart)
}

// FormatDate renders a date as DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
