package services

import (
	"strings"
)

// PromoService resolves creator codes to discount percentages from a static
// config map. There is no expiry or usage-limit model.
type PromoService struct {
	Codes map[string]int
}

// Resolve returns the discount for a code, 0 for unrecognized or empty input.
func (s *PromoService) Resolve(code string) int {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return 0
	}
	percent := s.Codes[code]
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
