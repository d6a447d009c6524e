package catalog

// Default returns a fresh copy of the built-in energy & wellness catalog.
func Default() *Catalog {
	return &Catalog{
		Prompts:       seedPrompts(),
		Interventions: seedInterventions(),
	}
}

func seedPrompts() []Prompt {
	return []Prompt{
		{ID: 1, Text: "I need an immediate energy boost", Interventions: []string{"Caffeine", "10 Pushups"}},
		{ID: 2, Text: "I feel anxious and jittery", Interventions: []string{"L-Theanine", "Meditation", "Ashwagandha"}},
		{ID: 3, Text: "I'm feeling mentally foggy", Interventions: []string{"Caffeine", "L-Theanine"}},
		{ID: 4, Text: "I need to feel more grounded", Interventions: []string{"Meditation", "Ashwagandha"}},
		{ID: 5, Text: "I want natural hormone support", Interventions: []string{"Tongkat Ali", "Maca"}},
		{ID: 6, Text: "I feel physically sluggish", Interventions: []string{"10 Pushups", "Maca"}},
		{ID: 7, Text: "I need stress relief", Interventions: []string{"L-Theanine", "Meditation"}},
		{ID: 8, Text: "I want better workout energy", Interventions: []string{"Caffeine", "Tongkat Ali"}},
		{ID: 9, Text: "I need to calm down", Interventions: []string{"Meditation", "L-Theanine"}},
		{ID: 10, Text: "I want better mental focus", Interventions: []string{"Caffeine", "L-Theanine"}},
		{ID: 11, Text: "I need a mood lift", Interventions: []string{"Maca", "10 Pushups"}},
		{ID: 12, Text: "I feel tense and wound up", Interventions: []string{"Meditation", "Ashwagandha"}},
		{ID: 13, Text: "I want sustainable energy", Interventions: []string{"Maca", "Tongkat Ali"}},
		{ID: 14, Text: "I need physical motivation", Interventions: []string{"10 Pushups", "Caffeine"}},
		{ID: 15, Text: "I want better stress resilience", Interventions: []string{"Ashwagandha", "Meditation"}},
		{ID: 16, Text: "I need mental clarity", Interventions: []string{"L-Theanine", "Caffeine"}},
		{ID: 17, Text: "I want natural vitality", Interventions: []string{"Tongkat Ali", "Maca"}},
		{ID: 18, Text: "I need quick stress relief", Interventions: []string{"10 Pushups", "Meditation"}},
		{ID: 19, Text: "I want balanced energy", Interventions: []string{"L-Theanine", "Maca"}},
		{ID: 20, Text: "I need to reset my mind", Interventions: []string{"Meditation", "L-Theanine"}},
	}
}

func seedInterventions() []Intervention {
	return []Intervention{
		{
			Name:     "Caffeine",
			Emoji:    "☕",
			Benefits: []string{"Quick energy boost", "Mental alertness", "Focus enhancement"},
			Timing:   "15-45 mins",
			Dosage:   "80-200mg",
		},
		{
			Name:     "L-Theanine",
			Emoji:    "🍵",
			Benefits: []string{"Calm focus", "Reduced anxiety", "Better with caffeine"},
			Timing:   "30-60 mins",
			Dosage:   "100-200mg",
		},
		{
			Name:     "Ashwagandha",
			Emoji:    "🌿",
			Benefits: []string{"Stress reduction", "Anxiety relief", "Better sleep"},
			Timing:   "2-3 hours",
			Dosage:   "300-600mg",
		},
		{
			Name:     "Maca",
			Emoji:    "🌱",
			Benefits: []string{"Natural energy", "Hormone balance", "Vitality"},
			Timing:   "1-2 hours",
			Dosage:   "1500-3000mg",
		},
		{
			Name:     "Tongkat Ali",
			Emoji:    "🌳",
			Benefits: []string{"Testosterone support", "Physical energy", "Performance"},
			Timing:   "1-3 hours",
			Dosage:   "200-400mg",
		},
		{
			Name:     "Meditation",
			Emoji:    "🧘",
			Benefits: []string{"Stress relief", "Mental clarity", "Emotional balance"},
			Timing:   "Immediate",
			Dosage:   "5-15 mins",
		},
		{
			Name:     "10 Pushups",
			Emoji:    "💪",
			Benefits: []string{"Quick energy", "Blood flow", "Mental reset"},
			Timing:   "Immediate",
			Dosage:   "10 reps",
		},
	}
}
