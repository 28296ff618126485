package entities

import "encoding/json"

// ActionResult is the outcome of one warehouse action the assistant ran.
type ActionResult struct {
	Function string          `json:"function"`
	Success  bool            `json:"success"`
	Result   json.RawMessage `json:"result,omitempty"`
}

// ChatReply is the assistant's answer to one operator message.
type ChatReply struct {
	Response        string         `json:"response"`
	FunctionResults []ActionResult `json:"function_results"`
}

// AnySucceeded reports whether at least one action changed warehouse data.
func (r ChatReply) AnySucceeded() bool {
	for _, fr := range r.FunctionResults {
		if fr.Success {
			return true
		}
	}
	return false
}

// ImportMode selects what a spreadsheet upload does on the backend.
type ImportMode string

const (
	ImportToStock    ImportMode = "to_stock"
	ImportAsEstimate ImportMode = "as_estimate"
)

// ImportReport is the backend's summary of a to_stock import.
type ImportReport struct {
	Created []string `json:"created"`
	Updated []string `json:"updated"`
	Skipped []string `json:"skipped"`
	Errors  []string `json:"errors"`
}

// Message is the generic {"message": ...} acknowledgement.
type Message struct {
	Message string `json:"message"`
}
