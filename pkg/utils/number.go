package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundWithTwoDecimalPlace converte um valor monetário para float com duas casas
func RoundWithTwoDecimalPlace(d decimal.Decimal) float64 {
	if d.IsZero() {
		return 0
	}
	return d.Round(2).InexactFloat64()
}

// ParseIntList aceita valores repetidos e/ou separados por vírgula ("1,2" e "3")
func ParseIntList(values []string) ([]int, error) {
	var result []int
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("valor inteiro inválido %q", part)
			}
			result = append(result, n)
		}
	}
	return result, nil
}

// ParseOptionalInt retorna fallback quando o valor está vazio
func ParseOptionalInt(value string, fallback int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("valor inteiro inválido %q", value)
	}
	return n, nil
}
