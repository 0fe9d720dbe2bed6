package grant

type CreateGrantDTO struct {
	FullName  string `json:"full_name" binding:"required,max=80"`
	ShortName string `json:"short_name" binding:"required,max=16"`
	Slug      string `json:"slug" binding:"omitempty,max=64"`
}

type CreateTopicDTO struct {
	Name            string `json:"name" binding:"required,max=80"`
	GrantID         uint   `json:"grant_id" binding:"required"`
	Description     string `json:"description"`
	FormDescription string `json:"form_description"`
	OpenForTickets  bool   `json:"open_for_tickets"`
	TicketMedia     bool   `json:"ticket_media"`
	TicketExpenses  bool   `json:"ticket_expenses"`
	AdminIDs        []uint `json:"admin_ids"`
}

// UpdateTopicDTO is applied partially. GrantID and AdminIDs are honoured for
// supervisors only.
type UpdateTopicDTO struct {
	Name            *string `json:"name,omitempty" binding:"omitempty,max=80"`
	GrantID         *uint   `json:"grant_id,omitempty"`
	Description     *string `json:"description,omitempty"`
	FormDescription *string `json:"form_description,omitempty"`
	OpenForTickets  *bool   `json:"open_for_tickets,omitempty"`
	TicketMedia     *bool   `json:"ticket_media,omitempty"`
	TicketExpenses  *bool   `json:"ticket_expenses,omitempty"`
	AdminIDs        *[]uint `json:"admin_ids,omitempty"`
}

// TopicFormInfo is the per-topic hint table the ticket form uses to show or
// hide the media and expense sections.
type TopicFormInfo struct {
	FormDescription string `json:"form_description"`
	TicketMedia     bool   `json:"ticket_media"`
	TicketExpenses  bool   `json:"ticket_expenses"`
}
