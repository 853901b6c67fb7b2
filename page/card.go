package page

import (
	"math"

	"github.com/meghashyamc/ecssnav/models"
)

// Color is the theme role used for a discipline badge.
type Color string

const (
	ColorPrimary   Color = "primary"
	ColorAccent    Color = "accent"
	ColorSuccess   Color = "success"
	ColorSecondary Color = "secondary"
	ColorMuted     Color = "muted"
)

var disciplineColors = map[string]Color{
	"E": ColorPrimary,
	"M": ColorAccent,
	"Q": ColorSuccess,
	"S": ColorSecondary,
}

// Card is the display form of one result.
type Card struct {
	ID            string
	Badge         string
	BadgeColor    Color
	DocumentName  string
	Section       string
	RequirementID string
	Relevance     int
	Content       string
	PageNumber    string
	Branch        string
	Revision      string
}

func DisciplineColor(discipline string) Color {
	if color, ok := disciplineColors[discipline]; ok {
		return color
	}
	return ColorMuted
}

func RelevancePercent(score float64) int {
	return int(math.Round(score * 100))
}

func NewCard(result models.Result) Card {
	discipline := result.Metadata.Get(models.MetaDiscipline)
	documentName := result.Metadata.Get(models.MetaDocumentName)
	if documentName == "" {
		documentName = result.Title
	}

	return Card{
		ID:            result.ID,
		Badge:         discipline,
		BadgeColor:    DisciplineColor(discipline),
		DocumentName:  documentName,
		Section:       result.Metadata.Get(models.MetaSection),
		RequirementID: result.Metadata.Get(models.MetaRequirementID),
		Relevance:     RelevancePercent(result.Score),
		Content:       result.Content,
		PageNumber:    result.Metadata.Get(models.MetaPageNumber),
		Branch:        result.Metadata.Get(models.MetaBranch),
		Revision:      result.Metadata.Get(models.MetaRevision),
	}
}

func NewCards(results []models.Result) []Card {
	cards := make([]Card, 0, len(results))
	for _, result := range results {
		cards = append(cards, NewCard(result))
	}
	return cards
}
