package purchase

import (
	"encoding/json"
	"fmt"

	"babel/src/utils/eth"
)

// How the buyer receives the translation.
// Purchased means the payment went through (or was presumed delivered)
// and the translation is stored with the content.
// Preview means the translation is shown once but not attached to the content.
const (
	ModePurchased = "purchased"
	ModePreview   = "preview"
)

type Wallet struct {
	Address     string `json:"address"`
	IsConnected bool   `json:"is_connected"`
	Status      string `json:"status"`
}

type Result struct {
	AttemptId      string       `json:"attempt_id"`
	ContentId      string       `json:"content_id"`
	Language       string       `json:"language"`
	TranslatedText string       `json:"translated_text"`
	Mode           string       `json:"mode"`
	Persisted      bool         `json:"persisted"`
	Receipt        *eth.Receipt `json:"receipt,omitempty"`
}

// Returned when the purchased content has no original text to translate
type ContentMissingError struct {
	ContentId string
}

func (e *ContentMissingError) Error() string {
	return fmt.Sprintf("content %s has no original text", e.ContentId)
}

// Published after every finished purchase attempt
type Event struct {
	AttemptId string `json:"attempt_id"`
	ContentId string `json:"content_id"`
	Language  string `json:"language"`
	Mode      string `json:"mode"`
	Persisted bool   `json:"persisted"`
	TxHash    string `json:"tx_hash,omitempty"`
}

func (self *Event) MarshalBinary() ([]byte, error) {
	return json.Marshal(self)
}
