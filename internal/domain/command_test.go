package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Command
	}{
		{
			name:     "quiz button",
			input:    "Квиз",
			expected: CommandQuiz,
		},
		{
			name:     "next button",
			input:    "Дальше",
			expected: CommandNext,
		},
		{
			name:     "back button",
			input:    "Назад",
			expected: CommandBack,
		},
		{
			name:     "add word button",
			input:    "Добавить слово",
			expected: CommandAddWord,
		},
		{
			name:     "delete word button",
			input:    "Удалить слово",
			expected: CommandDeleteWord,
		},
		{
			name:     "free text",
			input:    "Hello",
			expected: CommandNone,
		},
		{
			name:     "lowercase is not a button",
			input:    "квиз",
			expected: CommandNone,
		},
		{
			name:     "empty string",
			input:    "",
			expected: CommandNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCommand(tt.input))
		})
	}
}
