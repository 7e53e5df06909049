// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService - это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a uniform value in [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// BiasedRange averages two uniform draws, giving a triangular distribution
// peaked at the middle of [min, max].
func (s *PRNGService) BiasedRange(min, max float64) float64 {
	return (s.Range(min, max) + s.Range(min, max)) / 2
}

// Sign returns -1 or 1 with equal probability.
func (s *PRNGService) Sign() float64 {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
