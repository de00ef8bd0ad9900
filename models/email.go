package models

// Email is an outbound message handed to the mail collaborator.
type Email struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
