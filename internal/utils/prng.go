package utils

import (
	"image/color"
	"math/rand"
	"time"

	"go-path-defense/internal/defs"
)

// Source — минимальный интерфейс генератора, которого достаточно сервису.
// *rand.Rand ему удовлетворяет; в тестах подставляется источник с заданными значениями.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// PRNGService — это обертка над генератором случайных чисел, которая позволяет
// использовать предсказуемый (seeded) рандом во всей игре: гача и цвета врагов.
type PRNGService struct {
	rng Source
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// NewPRNGServiceFrom wraps an arbitrary source.
func NewPRNGServiceFrom(src Source) *PRNGService {
	return &PRNGService{rng: src}
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

// DrawLoot выполняет взвешенный выбор по таблице гачи.
// Вероятности накапливаются в порядке записей; возвращается первая категория,
// чья накопленная вероятность превысила бросок. Категория BASIC означает
// второй равномерный бросок по базовому пулу. Если из-за погрешности сумма
// так и не превысила бросок, возвращается первый юнит базового пула.
func (s *PRNGService) DrawLoot(table defs.LootTable) defs.UnitID {
	roll := s.Float64()
	cumulative := 0.0
	for _, entry := range table.Entries {
		cumulative += entry.Probability
		if roll < cumulative {
			if entry.Category == defs.BasicCategory {
				return s.pickBasic(table.BasicPool)
			}
			return entry.Category
		}
	}
	return fallbackUnit(table)
}

func (s *PRNGService) pickBasic(pool []defs.UnitID) defs.UnitID {
	if len(pool) == 0 {
		return ""
	}
	return pool[s.Intn(len(pool))]
}

func fallbackUnit(table defs.LootTable) defs.UnitID {
	if len(table.BasicPool) > 0 {
		return table.BasicPool[0]
	}
	// Пустой пул отсекается валидацией, иначе берём первую конкретную категорию.
	for _, entry := range table.Entries {
		if entry.Category != defs.BasicCategory {
			return entry.Category
		}
	}
	return ""
}

// RandomColor returns a uniformly random opaque 24-bit colour.
func (s *PRNGService) RandomColor() color.RGBA {
	v := s.Intn(1 << 24)
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
