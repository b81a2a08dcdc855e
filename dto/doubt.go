package dto

import (
	"time"

	"studyhub/model"
)

type AnswerResponse struct {
	AnswerID  string    `json:"answer_id"`
	Author    string    `json:"author"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type DoubtResponse struct {
	ID          string           `json:"id"`
	Question    string           `json:"question"`
	Description string           `json:"description,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Author      string           `json:"author"`
	AuthorID    string           `json:"author_id"`
	IsResolved  bool             `json:"is_resolved"`
	Answers     []AnswerResponse `json:"answers"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ToDoubtResponse attaches author usernames resolved from the identity store.
// Unknown ids (deleted accounts) render as an empty author.
func ToDoubtResponse(doubt *model.Doubt, authors map[string]string) DoubtResponse {
	answers := make([]AnswerResponse, len(doubt.Answers))
	for i, a := range doubt.Answers {
		answers[i] = AnswerResponse{
			AnswerID:  a.AnswerID,
			Author:    authors[a.UserID],
			AuthorID:  a.UserID,
			Text:      a.Text,
			CreatedAt: a.CreatedAt,
		}
	}

	return DoubtResponse{
		ID:          doubt.ID,
		Question:    doubt.Question,
		Description: doubt.Description,
		Tags:        doubt.Tags,
		Author:      authors[doubt.UserID],
		AuthorID:    doubt.UserID,
		IsResolved:  doubt.IsResolved,
		Answers:     answers,
		CreatedAt:   doubt.CreatedAt,
		UpdatedAt:   doubt.UpdatedAt,
	}
}

func ToDoubtResponses(doubts []*model.Doubt, authors map[string]string) []DoubtResponse {
	responses := make([]DoubtResponse, len(doubts))
	for i, d := range doubts {
		responses[i] = ToDoubtResponse(d, authors)
	}
	return responses
}
