package utils

import (
	"hash/fnv"

	"github.com/google/uuid"
)

// GenerateID создает уникальный ID сессии
func GenerateID() string {
	return uuid.NewString()
}

// SeedFromString превращает строку (например, ID сессии) в зерно генератора.
func SeedFromString(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}

// DeriveSeed - зерно N-й сессии (или этажа) из мастер-зерна.
func DeriveSeed(master int64, depth int) int64 {
	return master ^ (int64(depth) * 0x5DEECE66D)
}
