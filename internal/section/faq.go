package section

import "github.com/bracketpress/bracketpress/internal/palette"

// FAQSettings configures the question-and-answer section.
type FAQSettings struct {
	Heading       string    `json:"heading"`
	QuestionColor string    `json:"question_color"`
	AnswerColor   string    `json:"answer_color"`
	DividerColor  string    `json:"divider_color"`
	ExpandFirst   bool      `json:"expand_first"`
	Padding       Padding   `json:"padding"`
	Items         []FAQItem `json:"items"`
}

// FAQItem is one collapsible question.
type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ItemID implements Item.
func (f FAQItem) ItemID() string { return f.ID }

func defaultFAQSettings(pal palette.Palette) *FAQSettings {
	return &FAQSettings{
		Heading:       "Frequently asked questions",
		QuestionColor: pal.Heading,
		AnswerColor:   pal.MutedText,
		DividerColor:  pal.Divider,
		ExpandFirst:   true,
		Padding:       Padding{Top: 48, Bottom: 48},
		Items: []FAQItem{
			{ID: NewItemID(), Question: "How do I sign up?", Answer: "Use the registration form above."},
			{ID: NewItemID(), Question: "Is there an entry fee?", Answer: "No, participation is free."},
		},
	}
}

func (s *FAQSettings) syncPalette(prev, next palette.Palette) bool {
	changed := false
	changed = syncColor(&s.QuestionColor, palette.RoleHeading, prev, next) || changed
	changed = syncColor(&s.AnswerColor, palette.RoleMutedText, prev, next) || changed
	changed = syncColor(&s.DividerColor, palette.RoleDivider, prev, next) || changed
	return changed
}
