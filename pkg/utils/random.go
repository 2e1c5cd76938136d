package utils

import "math/rand"

// RandomRange 返回 [min, max) 内的均匀随机数
func RandomRange(r *rand.Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Chance 以概率 p 返回 true
func Chance(r *rand.Rand, p float64) bool {
	return r.Float64() < p
}
