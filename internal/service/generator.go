package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pantrychef/backend/internal/types"
)

// The generator was fine-tuned on recipes rendered as labeled lines, so both
// the prompt and the parser are tied to this exact template.
var (
	recipeNamePattern   = regexp.MustCompile(`RecipeName:\s*(.+)`)
	servingsPattern     = regexp.MustCompile(`Servings:\s*(\d+)`)
	totalTimePattern    = regexp.MustCompile(`TotalTimeInMinutes:\s*(\d+)`)
	ingredientsPattern  = regexp.MustCompile(`RecipeIngredients:\s*(.+)`)
	instructionsPattern = regexp.MustCompile(`RecipeInstructions:\s*(.+)`)
)

// BuildGenerationPrompt renders the fixed prompt template the generation
// model was trained against. Empty diet and course render as empty labels.
func BuildGenerationPrompt(diet, course string, ingredients []string) string {
	return fmt.Sprintf("Diet: %s\nCourse: %s\nIngredients: %s\n",
		diet, course, strings.Join(ingredients, ", "))
}

// ParseGeneratedRecipe extracts the labeled fields from the generator's text
// output. The model's output is not validated at generation time, so any
// missing label is reported as ErrGenerationParse instead of a partial
// result.
func ParseGeneratedRecipe(text string) (*types.GeneratedRecipe, error) {
	name, err := matchField(recipeNamePattern, text, "RecipeName")
	if err != nil {
		return nil, err
	}
	servingsStr, err := matchField(servingsPattern, text, "Servings")
	if err != nil {
		return nil, err
	}
	totalTimeStr, err := matchField(totalTimePattern, text, "TotalTimeInMinutes")
	if err != nil {
		return nil, err
	}
	ingredientsStr, err := matchField(ingredientsPattern, text, "RecipeIngredients")
	if err != nil {
		return nil, err
	}
	instructions, err := matchField(instructionsPattern, text, "RecipeInstructions")
	if err != nil {
		return nil, err
	}

	// The patterns above only capture digits, so these cannot fail.
	servings, _ := strconv.Atoi(servingsStr)
	totalTime, _ := strconv.Atoi(totalTimeStr)

	return &types.GeneratedRecipe{
		RecipeName:   strings.TrimSpace(name),
		Servings:     servings,
		TotalTime:    totalTime,
		Ingredients:  strings.Split(ingredientsStr, ", "),
		Instructions: strings.TrimSpace(instructions),
		Source:       types.SourceGenerated,
	}, nil
}

func matchField(pattern *regexp.Regexp, text, label string) (string, error) {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return "", fmt.Errorf("%w: missing field %s", ErrGenerationParse, label)
	}
	return match[1], nil
}
