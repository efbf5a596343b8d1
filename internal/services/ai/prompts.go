package ai

import (
	"fmt"
	"strings"
)

// UnspecifiedIngredient is substituted for every blank ingredient slot.
const UnspecifiedIngredient = "unspecified"

const taskSection = `<TASK>
Using the information below, suggest one delicious dinner dish.
</TASK>`

const ingredientsSection = `<INGREDIENTS>
- Ingredient 1: %s
- Ingredient 2: %s
- Ingredient 3: %s
</INGREDIENTS>`

const cuisineSection = `<CUISINE>
%s
</CUISINE>`

const outputFormatSection = `<OUTPUT_FORMAT>
Present the suggestion in the following format:

1. Dish name
2. Ingredients (as a list)
3. Simple preparation steps (numbered)
4. One cooking tip
</OUTPUT_FORMAT>`

const closingInstruction = `Make effective use of the listed ingredients and bring out the character of %s cooking in your suggestion.
Feel free to add ingredients of your own choosing in place of any marked "unspecified".`

// BuildDinnerPrompt renders the fixed dinner-suggestion template. Blank
// ingredient slots become the literal "unspecified"; the cuisine value is
// inserted verbatim twice, once as the requested genre and once in the
// closing instruction. The function is total: any input yields a prompt.
func BuildDinnerPrompt(ingredients [3]string, cuisine string) string {
	slots := make([]any, len(ingredients))
	for i, ing := range ingredients {
		ing = strings.TrimSpace(ing)
		if ing == "" {
			ing = UnspecifiedIngredient
		}
		slots[i] = ing
	}

	var sb strings.Builder
	sb.WriteString(taskSection)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf(ingredientsSection, slots...))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf(cuisineSection, cuisine))
	sb.WriteString("\n\n")
	sb.WriteString(outputFormatSection)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf(closingInstruction, cuisine))

	return sb.String()
}
