package algorithms

import (
	"strings"

	"celobuddy/internal/models"
)

// ChatOption - вариант ответа в чат-онбординге
type ChatOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ChatQuestion - вопрос чата и поле профиля, в которое идет ответ
type ChatQuestion struct {
	ID          string       `json:"id"`
	Question    string       `json:"question"`
	Type        string       `json:"type"` // text, textarea, select, multiselect
	Field       string       `json:"field"`
	Placeholder string       `json:"placeholder,omitempty"`
	Options     []ChatOption `json:"options,omitempty"`
}

// ChatScript - вопросы в порядке показа. {name} и {project}
// подставляются из предыдущих ответов через RenderQuestion.
func ChatScript() []ChatQuestion {
	industries := make([]ChatOption, 0, 11)
	for _, ind := range models.Industries {
		switch ind {
		case "Decentralized Storage", "Web3 Analytics", "Metaverse & Virtual Worlds", "Web3 Education":
			continue
		}
		industries = append(industries, ChatOption{Value: ind, Label: ind})
	}

	needs := make([]ChatOption, 0, len(models.NeedCategories))
	for _, c := range models.NeedCategories {
		needs = append(needs, ChatOption{Value: string(c), Label: c.Label()})
	}

	return []ChatQuestion{
		{
			ID:       "name",
			Question: "Hey there! I'm here to help you find the perfect opportunities for your Web3 project on Celo. What's your name?",
			Type:     "text",
			Field:    "full_name",
		},
		{
			ID:       "project",
			Question: "Nice to meet you, {name}! What's the name of your Web3 project?",
			Type:     "text",
			Field:    "company_name",
		},
		{
			ID:       "stage",
			Question: "Great! Where are you in your journey with {project}?",
			Type:     "select",
			Field:    "company_stage",
			Options: []ChatOption{
				{Value: string(models.CompanyStageIdea), Label: "Just an idea right now"},
				{Value: string(models.CompanyStageMVP), Label: "Building an MVP/Prototype"},
				{Value: string(models.CompanyStageEarlyStage), Label: "Early stage with some traction"},
				{Value: string(models.CompanyStageGrowth), Label: "Growing and scaling"},
				{Value: string(models.CompanyStageScale), Label: "Scaling rapidly"},
			},
		},
		{
			ID:       "category",
			Question: "What space are you building in?",
			Type:     "select",
			Field:    "industry",
			Options:  industries,
		},
		{
			ID:       "description",
			Question: "Tell me a bit about what {project} does. What problem are you solving?",
			Type:     "textarea",
			Field:    "bio",
		},
		{
			ID:          "github",
			Question:    "Do you have a GitHub repo for {project}? Drop the link here so I can check it out!",
			Type:        "text",
			Field:       "github_url",
			Placeholder: "https://github.com/yourproject/repo",
		},
		{
			ID:       "needs",
			Question: "What would help you most right now? Pick all that apply:",
			Type:     "multiselect",
			Field:    "needs",
			Options:  needs,
		},
	}
}

// RenderQuestion подставляет имя и проект в текст вопроса
func RenderQuestion(q ChatQuestion, name, project string) string {
	return strings.NewReplacer("{name}", name, "{project}", project).Replace(q.Question)
}
