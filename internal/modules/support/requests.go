package support

// TabRequest is bound from the /tabs/:tab route.
type TabRequest struct {
	Tab string `param:"tab" validate:"required,tab"`
}

// PageRequest is bound from the page query string.
type PageRequest struct {
	Tab string `query:"tab" validate:"omitempty,tab"`
}

// MessageRequest is bound from the compose form. Body may be empty; an empty
// submission is ignored rather than rejected.
type MessageRequest struct {
	Body string `form:"body"`
}
