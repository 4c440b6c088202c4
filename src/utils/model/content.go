package model

import (
	"encoding/json"
	"time"

	"github.com/jackc/pgtype"
)

const TableContent = "contents"

// One entry of the content's attribute list. The attribute whose trait type
// equals the content's original language holds the source text, every other
// attribute is a purchased translation keyed by the target language.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

type ContentData struct {
	Attributes []Attribute `json:"attributes"`
}

type Content struct {
	Id          string `gorm:"primaryKey"`
	Title       string
	Description string

	// Original language of the content, immutable after minting
	Language string

	// Wallet address of the owning creator
	CreatorId string

	// Revenue split, integers in [0,100]
	CreatorShare int
	AgentShare   int

	ContentData pgtype.JSONB

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Content) TableName() string {
	return TableContent
}

// GetData decodes the JSONB payload. An unset column is a valid empty payload.
func (self *Content) GetData() (data ContentData, err error) {
	if self.ContentData.Status != pgtype.Present {
		return
	}
	err = json.Unmarshal(self.ContentData.Bytes, &data)
	return
}

func (self *Content) SetData(data ContentData) (err error) {
	buf, err := json.Marshal(&data)
	if err != nil {
		return
	}
	self.ContentData = pgtype.JSONB{Bytes: buf, Status: pgtype.Present}
	return
}

func MarshalContentData(data ContentData) (out pgtype.JSONB, err error) {
	buf, err := json.Marshal(&data)
	if err != nil {
		return
	}
	out = pgtype.JSONB{Bytes: buf, Status: pgtype.Present}
	return
}
