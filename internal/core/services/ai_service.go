package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
)

// TextGenerator is the outbound port to the text-generation endpoint.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Activity contexts accepted by ActivitySuggestions.
const (
	ContextOutdoor  = "OUTDOOR"
	ContextIndoor   = "INDOOR"
	ContextSelfCare = "SELF_CARE"
)

// Fixed fallback copy. The AI layer never surfaces a raw error to the user:
// the worst case is one of these generic strings.
const (
	FallbackMotivational = "Lo estás haciendo bien, paso a paso."
	FallbackMonthly      = "Tu esfuerzo por estar aquí es valioso."
	MsgNoMonthData       = "Registra tu ánimo este mes para obtener un análisis."
)

var (
	fallbackOutdoor    = []string{"Respirar aire fresco", "Caminar suavemente", "Observar la naturaleza"}
	fallbackIndoor     = []string{"Ordenar un cajón", "Leer 5 páginas", "Hacerte un té"}
	selfCareActivities = []string{"Mascarilla facial", "Baño caliente", "Automasaje", "Meditación 5 min", "Hacer té consciente"}
)

// AIService builds the fixed prompt templates and degrades to local
// fallbacks whenever the gateway misbehaves.
type AIService struct {
	gen TextGenerator
}

func NewAIService(gen TextGenerator) *AIService {
	return &AIService{gen: gen}
}

// MotivationalMessage generates the short encouragement shown next to the
// day's task progress. Fails soft.
func (s *AIService) MotivationalMessage(ctx context.Context, completed, target int, userName string) string {
	if s.gen == nil {
		return FallbackMotivational
	}

	name := userName
	if name == "" {
		name = "amigo/a"
	}

	prompt := fmt.Sprintf(`Actúa como un terapeuta empático y compasivo.
El usuario se llama %s.
Tiene depresión/ansiedad.
Se propuso hacer %d tareas hoy, y ha logrado hacer %d.

Reglas estrictas:
1. Genera UN mensaje corto (máximo 2 frases).
2. Tono: Muy amable, suave, validador. Personaliza con el nombre si es natural.
3. IMPORTANTE: Si completó pocas (ej. 1 de 10), celebra ese 1. Di que es mejor que 0.
4. NUNCA uses palabras negativas, ni juzgues, ni uses color rojo en tu lenguaje.
5. Si completó todo, sé muy celebrativo pero calmado.`, name, target, completed)

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		log.Printf("[AI] Motivational message failed, using fallback: %v", err)
		return FallbackMotivational
	}
	return strings.TrimSpace(text)
}

// ActivitySuggestions returns low-effort activity ideas for the given
// context. SELF_CARE is answered from a fixed local list without touching
// the gateway; OUTDOOR/INDOOR ask for 3 suggestions and tolerate more or
// fewer. Fails soft to a fixed per-context list.
func (s *AIService) ActivitySuggestions(ctx context.Context, activityContext string) []string {
	if activityContext == ContextSelfCare {
		return append([]string(nil), selfCareActivities...)
	}
	if s.gen == nil {
		return fallbackFor(activityContext)
	}

	place := "DENTRO DE CASA"
	if activityContext == ContextOutdoor {
		place = "FUERA DE CASA"
	}

	prompt := fmt.Sprintf(`El usuario se siente con baja energía o ánimo.
Ha indicado que tiene tiempo para actividades: %s.

Dame una lista de 3 sugerencias de actividades MUY sencillas y de bajo esfuerzo (Low spoons).
Formato: Devuelve solo las 3 actividades separadas por un guion medio "-".
Ejemplo: Caminar 5 minutos - Sentarse en el parque - Comprar el pan`, place)

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[AI] Activity suggestions failed, using fallback: %v", err)
		return fallbackFor(activityContext)
	}

	suggestions := SplitSuggestions(text)
	if len(suggestions) == 0 {
		return fallbackFor(activityContext)
	}
	return suggestions
}

// MonthlyNarrative generates the month's narrative report. Unlike the
// other prompts it returns the error alongside the fallback: the report
// cache must not store a failed generation.
func (s *AIService) MonthlyNarrative(ctx context.Context, userName string, moods []domain.DayRecord, tasks []domain.TaskRecord) (string, error) {
	if s.gen == nil {
		return FallbackMonthly, fmt.Errorf("text generator not configured")
	}

	moodCounts := map[domain.MoodType]int{}
	for _, r := range moods {
		if r.HasMood() {
			moodCounts[r.Mood]++
		}
	}
	breakdown, _ := json.Marshal(moodCounts)

	totalTasks := 0
	for _, t := range tasks {
		totalTasks += t.Completed
	}

	prompt := fmt.Sprintf(`Analiza el mes del usuario %s y dale un consejo motivacional profundo y cálido.
Datos:
- Días registrados: %d
- Desglose de ánimos: %s
- Tareas completadas (pequeños logros): %d

Instrucciones:
- No des estadísticas frías. Interpreta los datos emocionalmente.
- Si hay muchos días tristes/ansiosos: Valida su dolor y recuérdale que es temporal.
- Si hay días buenos: Celébralos.
- Menciona el esfuerzo de haber completado %d pequeñas metas (si es > 0).
- Máximo 3 frases. Tono muy humano y cercano.`, userName, len(moods), breakdown, totalTasks, totalTasks)

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return FallbackMonthly, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackMonthly, fmt.Errorf("empty narrative response")
	}
	return text, nil
}

// SplitSuggestions parses the delimiter-separated suggestion response,
// trimming whitespace and dropping empty segments.
func SplitSuggestions(text string) []string {
	parts := strings.Split(text, "-")
	suggestions := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			suggestions = append(suggestions, trimmed)
		}
	}
	return suggestions
}

func fallbackFor(activityContext string) []string {
	if activityContext == ContextOutdoor {
		return append([]string(nil), fallbackOutdoor...)
	}
	return append([]string(nil), fallbackIndoor...)
}
