package llm

import (
	"fmt"
	"strings"
)

// Role selects the expert persona placed in the system prompt.
type Role int

// Roles.
const (
	CoinExpert Role = iota + 1
	PlantExpert
)

var roleNames = map[Role]string{
	CoinExpert:  "coin-expert",
	PlantExpert: "plant-expert",
}

var roleContexts = map[Role]string{
	CoinExpert: `You are a numismatic expert with deep knowledge of coins, their history, 
and collecting. You provide detailed, accurate information about coins, their value, historical significance, 
and collecting practices. Your responses should be informative and precise.`,
	PlantExpert: `You are a botanical expert with comprehensive knowledge of plants, 
gardening, and horticulture. You provide detailed advice about plant care, identification, growing conditions, 
and botanical science. Your responses should be practical and scientifically accurate.`,
}

// String returns the flag name of the role.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// Context returns the persona text for the role. Unknown roles get the
// plant expert persona.
func (r Role) Context() string {
	if ctx, ok := roleContexts[r]; ok {
		return ctx
	}
	return roleContexts[PlantExpert]
}

// ParseRole resolves a role flag name such as "coin-expert".
func ParseRole(name string) (Role, error) {
	key := normalizeName(name)
	for role, n := range roleNames {
		if n == key {
			return role, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q (valid: %s)", name, strings.Join(RoleNames(), ", "))
}

// RoleNames lists the valid role flag names.
func RoleNames() []string {
	return []string{CoinExpert.String(), PlantExpert.String()}
}

// Task selects the instruction placed in the system prompt.
type Task int

// Tasks.
const (
	Translate Task = iota + 1
	Explain
	Analyze
	Summarize
	ExtractKeywords
)

var taskNames = map[Task]string{
	Translate:       "translate",
	Explain:         "explain",
	Analyze:         "analyze",
	Summarize:       "summarize",
	ExtractKeywords: "extract-keywords",
}

// DefaultTargetLanguage is used by Translate when no language is given.
const DefaultTargetLanguage = "English"

const fallbackInstruction = "Please process the following input."

// TaskParams carries the parameters some tasks need.
type TaskParams struct {
	TargetLanguage string
}

// String returns the flag name of the task.
func (t Task) String() string {
	if name, ok := taskNames[t]; ok {
		return name
	}
	return fmt.Sprintf("task(%d)", int(t))
}

// Instruction returns the instruction text for the task.
func (t Task) Instruction(params TaskParams) string {
	switch t {
	case Translate:
		lang := params.TargetLanguage
		if lang == "" {
			lang = DefaultTargetLanguage
		}
		return "Translate the following text to " + lang + ". Only respond with the translation, nothing else. If you think it does not have a proper translation, respond with the original text."
	case Explain:
		return "Explain the following concept in detail, providing clear examples where appropriate."
	case Analyze:
		return "Analyze the following information and provide insights and observations."
	case Summarize:
		return "Provide a concise summary of the following text, highlighting key points."
	case ExtractKeywords:
		return `Extract and clean ASA keywords from the following text. 
Return only the keywords, one per line. 
Remove any duplicates and invalid keywords.
Do not include any explanations or additional text.`
	default:
		return fallbackInstruction
	}
}

// ParseTask resolves a task flag name such as "translate".
func ParseTask(name string) (Task, error) {
	key := normalizeName(name)
	for task, n := range taskNames {
		if n == key {
			return task, nil
		}
	}
	return 0, fmt.Errorf("unknown task %q (valid: %s)", name, strings.Join(TaskNames(), ", "))
}

// TaskNames lists the valid task flag names.
func TaskNames() []string {
	return []string{
		Translate.String(), Explain.String(), Analyze.String(),
		Summarize.String(), ExtractKeywords.String(),
	}
}

// SystemPrompt combines the role persona and the task instruction.
func SystemPrompt(role Role, task Task, params TaskParams) string {
	return "Your role:" + role.Context() + "\n\nYour task:" + task.Instruction(params)
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}
