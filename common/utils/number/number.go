package number

import (
	"math"
	"strconv"
)

const Epsilon = 0.0000001

func IsZero(f float64) bool {
	return math.Abs(f) < Epsilon
}

func DegreeToRadian(degree float64) float64 {
	return degree * (math.Pi / 180.0)
}

func RadianToDegree(radian float64) float64 {
	return radian * (180.0 / math.Pi)
}

func FloatToStr(f float64, places int) string {
	return strconv.FormatFloat(f, 'f', places, 64)
}

func ToFixed(val float64, places int) (newVal float64) {
	roundOn := 0.5
	var round float64
	pow := math.Pow(10, float64(places))
	digit := pow * val
	_, div := math.Modf(digit)
	if div >= roundOn {
		round = math.Ceil(digit)
	} else {
		round = math.Floor(digit)
	}
	newVal = round / pow
	return
}

// ClampInt brings val into [min, max]; out-of-range configuration is
// normalized rather than rejected.
func ClampInt(val int, min int, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func ClampFloat(val float64, min float64, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
