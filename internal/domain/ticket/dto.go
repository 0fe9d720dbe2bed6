package ticket

import "github.com/shopspring/decimal"

type MediaInfoInput struct {
	URL         string `json:"url" binding:"max=255"`
	Description string `json:"description" binding:"max=255"`
	Count       *int   `json:"count" binding:"omitempty,min=0"`
}

type ExpeditureInput struct {
	Description string          `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal `json:"amount"`
}

type CreateTicketDTO struct {
	Summary     string            `json:"summary" binding:"required,max=100"`
	Description string            `json:"description"`
	TopicID     uint              `json:"topic_id" binding:"required"`
	EventDate   string            `json:"event_date" binding:"omitempty,datetime=2006-01-02"`
	MediaInfo   []MediaInfoInput  `json:"media_info" binding:"dive"`
	Expeditures []ExpeditureInput `json:"expeditures" binding:"dive"`
}

// UpdateTicketDTO replaces the child collections that are present; a nil
// collection leaves the stored rows untouched.
type UpdateTicketDTO struct {
	Summary     *string            `json:"summary,omitempty" binding:"omitempty,max=100"`
	Description *string            `json:"description,omitempty"`
	TopicID     *uint              `json:"topic_id,omitempty"`
	EventDate   *string            `json:"event_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	MediaInfo   *[]MediaInfoInput  `json:"media_info,omitempty"`
	Expeditures *[]ExpeditureInput `json:"expeditures,omitempty"`
}

type ReviewTicketDTO struct {
	Status           Status  `json:"status" binding:"required"`
	RatingPercentage *int    `json:"rating_percentage" binding:"omitempty,min=0,max=100"`
	FuzzyRating      *bool   `json:"fuzzy_rating"`
	SupervisorNotes  *string `json:"supervisor_notes"`
}

type AddAckDTO struct {
	AckType AckType `json:"ack_type" binding:"required"`
	Comment string  `json:"comment" binding:"max=255"`
}

type DocumentChange struct {
	Filename    string  `json:"filename" binding:"required"`
	Description *string `json:"description" binding:"omitempty,max=255"`
	Delete      bool    `json:"delete"`
}

type UpdateDocumentsDTO struct {
	Documents []DocumentChange `json:"documents" binding:"required,dive"`
}

type UploadDocumentDTO struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description" binding:"max=255"`
}
