package forecast

import "testing"

func TestGetPalette(t *testing.T) {
	for _, cond := range []WeatherCondition{
		ConditionClearWarm, ConditionClearCool, ConditionPartlyCloudy,
		ConditionMostlyCloudy, ConditionLightRain, ConditionStorm, ConditionHot,
	} {
		for _, tod := range []TimeOfDay{TimeDay, TimeNight} {
			p := GetPalette(cond, tod)
			if p == DefaultPalette {
				t.Errorf("GetPalette(%s, %s) fell back to default", cond, tod)
			}
			if p.Background == "" || p.Text == "" {
				t.Errorf("GetPalette(%s, %s) has empty colors", cond, tod)
			}
		}
	}

	if got := GetPalette("unknown", TimeDay); got != DefaultPalette {
		t.Errorf("unknown condition = %+v, want default", got)
	}
}
