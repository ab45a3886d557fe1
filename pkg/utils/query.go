package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseOptionalInt retorna nil quando o parâmetro está ausente
func ParseOptionalInt(values url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("parâmetro %s deve ser inteiro: %q", key, raw)
	}

	return &value, nil
}
