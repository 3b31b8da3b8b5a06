package weather

import (
	"fmt"
	"strconv"
	"strings"
)

// conditionsByCodePrefix maps OpenWeatherMap condition-code prefixes to
// normalized conditions. Order is semantic: entries are tried first to
// last, and "800" must come before "80" or a clear sky would match as
// clouds. Do not turn this into a map.
var conditionsByCodePrefix = []struct {
	prefix string
	cond   Condition
}{
	{"1", ConditionThunderstorm},
	{"3", ConditionDrizzle},
	{"5", ConditionRain},
	{"6", ConditionSnow},
	{"7", ConditionFog},
	{"800", ConditionClear},
	{"80", ConditionClouds},
}

// conditionFromCode resolves a numeric OpenWeatherMap condition code to a
// Condition by decimal-prefix matching in declared order.
func conditionFromCode(code int) (Condition, error) {
	s := strconv.Itoa(code)
	for _, m := range conditionsByCodePrefix {
		if strings.HasPrefix(s, m.prefix) {
			return m.cond, nil
		}
	}
	return "", fmt.Errorf("%w: unknown condition code %d", ErrAPI, code)
}
