// Package prompt builds the instruction sent to the text model and cleans up
// what comes back.
package prompt

import "fmt"

// gameTemplate takes the complexity level and the user's game description.
const gameTemplate = `Ты - эксперт по созданию браузерных игр. Создай полностью рабочую HTML5 игру на основе описания пользователя.

ТРЕБОВАНИЯ:
- Один HTML файл со встроенным CSS и JavaScript
- Уровень сложности: %d/5
- Киберпанк стиль: темный фон (#0a0e27), неоновые цвета (#00ff41 зеленый, #9b87f5 фиолетовый, #0EA5E9 голубой)
- Canvas для графики или DOM элементы
- Управление через клавиатуру/мышь
- Счет и игровая логика
- Адаптивный дизайн

Описание игры: %s

Верни ТОЛЬКО готовый HTML код без объяснений и markdown разметки.`

// BuildGamePrompt embeds complexity and the user prompt into the game template.
// Neither value is escaped or range checked.
func BuildGamePrompt(userPrompt string, complexity int) string {
	return fmt.Sprintf(gameTemplate, complexity, userPrompt)
}
