package catalog

// builtinVersion is the catalog format version of the compiled-in quests.
const builtinVersion = "v1.0.0"

var builtinQuests = []Quest{
	{
		ID:          1,
		Title:       "Приключение математика",
		Description: "Реши математические задачки и помоги зайчику собрать морковки!",
		Icon:        "🐰",
		Difficulty:  DifficultyEasy,
		Points:      100,
		Questions: []Question{
			{ID: 1, Prompt: "Сколько будет 5 + 3?", Type: QuestionChoice, Options: []string{"6", "7", "8", "9"}, CorrectAnswer: "8"},
			{ID: 2, Prompt: "Сколько будет 10 - 4?", Type: QuestionChoice, Options: []string{"4", "5", "6", "7"}, CorrectAnswer: "6"},
			{ID: 3, Prompt: "Напиши ответ: 2 × 3 = ?", Type: QuestionInput, CorrectAnswer: "6"},
		},
	},
	{
		ID:          2,
		Title:       "Мир животных",
		Description: "Узнай больше о животных вместе с енотом-исследователем!",
		Icon:        "🦝",
		Difficulty:  DifficultyEasy,
		Points:      100,
		Questions: []Question{
			{ID: 1, Prompt: "Какое животное самое большое на планете?", Type: QuestionChoice, Options: []string{"Слон", "Синий кит", "Жираф", "Медведь"}, CorrectAnswer: "Синий кит"},
			{ID: 2, Prompt: "Сколько ног у паука?", Type: QuestionChoice, Options: []string{"6", "8", "10", "4"}, CorrectAnswer: "8"},
			{ID: 3, Prompt: `Напиши, кто говорит "Мяу"?`, Type: QuestionInput, CorrectAnswer: "кот"},
		},
	},
	{
		ID:          3,
		Title:       "Космическое путешествие",
		Description: "Отправься в космос с лисичкой-астронавтом!",
		Icon:        "🦊",
		Difficulty:  DifficultyMedium,
		Points:      150,
		Questions: []Question{
			{ID: 1, Prompt: "Какая планета самая близкая к Солнцу?", Type: QuestionChoice, Options: []string{"Земля", "Марс", "Меркурий", "Венера"}, CorrectAnswer: "Меркурий"},
			{ID: 2, Prompt: "Сколько планет в Солнечной системе?", Type: QuestionChoice, Options: []string{"7", "8", "9", "10"}, CorrectAnswer: "8"},
			{ID: 3, Prompt: "Напиши название нашей планеты:", Type: QuestionInput, CorrectAnswer: "земля"},
		},
	},
}

var builtinAchievements = []Achievement{
	{ID: AchievementFirstQuest, Name: "Первый шаг", Icon: "🌟", Description: "Завершил первый квест"},
	{ID: AchievementThreeQuests, Name: "Исследователь", Icon: "🔍", Description: "Завершил 3 квеста"},
	{ID: AchievementPerfectScore, Name: "Отличник", Icon: "💯", Description: "Получил 100% в квесте"},
}
