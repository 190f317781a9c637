package utils

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp 将 v 限制在 [minV, maxV] 范围内
// 超出范围时静默饱和到边界值，不报错
func Clamp[T constraints.Ordered](v, minV, maxV T) T {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// WrapDegrees 将角度归一化到 [0, 360)
func WrapDegrees[T constraints.Float](deg T) T {
	d := T(math.Mod(float64(deg), 360))
	if d < 0 {
		d += 360
	}
	// -1e-17 这类极小负数加 360 后会等于 360
	if d >= 360 {
		d -= 360
	}
	return d
}

// DegToRad 角度转弧度
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// StepToward 以固定步长向目标逼近一步
// 采用两段式判断：先在低于目标时加一步，再在高于目标时减一步，
// 因此最终会停在目标的一个步长之内，不会来回越过目标
func StepToward(current, target, step float64) float64 {
	if current < target {
		current += step
	}
	if current > target {
		current -= step
	}
	return current
}
