package repository

import (
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/limbo/synapse/pkg/entity"
)

const defaultTargetCycles = 4

var (
	pomodoroKeys   = []string{"duracion_trabajo", "duracion_descanso", "ciclos_objetivo", "ciclos_completados", "modo_no_distraccion"}
	meditationKeys = []string{"tipo_meditacion", "duracion_planificada", "sonido_fondo"}
)

// decodeSessionParams turns the stored key/value bag into typed params.
// Broken values fall back to defaults, they never fail the read.
func decodeSessionParams(technique string, raw []byte) entity.SessionParams {
	bag := make(map[string]any)
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &bag); err != nil {
			bag = map[string]any{}
		}
	}
	var params entity.SessionParams
	switch technique {
	case entity.TechniquePomodoro:
		params = entity.SessionParams{
			Pomodoro: &entity.PomodoroParams{
				WorkMinutes:     paramInt(bag, "duracion_trabajo", 25),
				BreakMinutes:    paramInt(bag, "duracion_descanso", 5),
				TargetCycles:    paramInt(bag, "ciclos_objetivo", defaultTargetCycles),
				CompletedCycles: paramInt(bag, "ciclos_completados", 0),
				NoDistraction:   paramBool(bag, "modo_no_distraccion"),
			},
		}
		dropKeys(bag, pomodoroKeys)
	case entity.TechniqueMeditation:
		params = entity.SessionParams{
			Meditation: &entity.MeditationParams{
				Kind:            paramString(bag, "tipo_meditacion"),
				PlannedMinutes:  paramInt(bag, "duracion_planificada", 0),
				BackgroundSound: paramString(bag, "sonido_fondo"),
			},
		}
		dropKeys(bag, meditationKeys)
	}
	if len(bag) > 0 {
		params.Extra = bag
	}
	return params
}

// encodeSessionParams writes the typed variant over the extra keys of the bag
func encodeSessionParams(params entity.SessionParams) ([]byte, error) {
	bag := make(map[string]any, len(params.Extra))
	for k, v := range params.Extra {
		bag[k] = v
	}
	if p := params.Pomodoro; p != nil {
		bag["duracion_trabajo"] = p.WorkMinutes
		bag["duracion_descanso"] = p.BreakMinutes
		bag["ciclos_objetivo"] = p.TargetCycles
		bag["ciclos_completados"] = p.CompletedCycles
		bag["modo_no_distraccion"] = p.NoDistraction
	}
	if m := params.Meditation; m != nil {
		bag["tipo_meditacion"] = m.Kind
		bag["duracion_planificada"] = m.PlannedMinutes
		if m.BackgroundSound != "" {
			bag["sonido_fondo"] = m.BackgroundSound
		}
	}
	return sonic.Marshal(bag)
}

func dropKeys(bag map[string]any, keys []string) {
	for _, k := range keys {
		delete(bag, k)
	}
}

func paramInt(bag map[string]any, key string, def int) int {
	switch v := bag[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err == nil {
			return n
		}
	}
	return def
}

func paramBool(bag map[string]any, key string) bool {
	switch v := bag[key].(type) {
	case bool:
		return v
	case string:
		// Older rows keep booleans as "True"/"False"
		b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(v)))
		return err == nil && b
	}
	return false
}

func paramString(bag map[string]any, key string) string {
	if v, ok := bag[key].(string); ok {
		return v
	}
	return ""
}
