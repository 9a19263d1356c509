package cli

import (
	"fmt"
	"strconv"
	"strings"
)

var amountCleaner = strings.NewReplacer(",", "", "$", "", " ", "")

// parseAmount reads a non-negative number typed by a user. Thousands
// separators and a leading "$" are accepted.
func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(amountCleaner.Replace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("enter a number")
	}
	if v < 0 {
		return 0, fmt.Errorf("must be zero or more")
	}
	return v, nil
}

// parseCount reads a non-negative whole number.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("enter a whole number")
	}
	if n < 0 {
		return 0, fmt.Errorf("must be zero or more")
	}
	return n, nil
}

func validateAmount(s string) error {
	_, err := parseAmount(s)
	return err
}

func validateCount(s string) error {
	_, err := parseCount(s)
	return err
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
