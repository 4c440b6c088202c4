package purchase

import (
	"encoding/json"
	"fmt"

	"babel/src/utils/config"
	"babel/src/utils/model"
)

// ERC-721 style metadata document for a content item
type Metadata struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	ExternalUrl string            `json:"external_url"`
	Attributes  []model.Attribute `json:"attributes"`
	Properties  Properties        `json:"properties"`
}

type Properties struct {
	Language     string `json:"language"`
	CreatorShare int    `json:"creator_share"`
	AgentShare   int    `json:"agent_share"`
}

func BuildMetadata(config *config.Purchaser, content *model.Content) (metadata Metadata, err error) {
	data, err := content.GetData()
	if err != nil {
		return
	}

	metadata = Metadata{
		Name:        content.Title,
		Description: content.Description,
		Image:       config.ExportImageUrl,
		ExternalUrl: fmt.Sprintf("%s/content/%s", config.ExternalUrlBase, content.Id),
		Attributes:  data.Attributes,
		Properties: Properties{
			Language:     content.Language,
			CreatorShare: content.CreatorShare,
			AgentShare:   content.AgentShare,
		},
	}
	return
}

func MetadataFilename(contentId string) string {
	return fmt.Sprintf("metadata-%s.json", contentId)
}

func MarshalMetadata(metadata Metadata) ([]byte, error) {
	return json.MarshalIndent(metadata, "", "  ")
}
