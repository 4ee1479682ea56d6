package domain

// UtteranceInput is one spoken or typed command from the operator
type UtteranceInput struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}
