package purchase

import (
	"encoding/json"
	"testing"

	"babel/src/utils/config"
	"babel/src/utils/model"

	"github.com/stretchr/testify/require"
)

func TestBuildMetadata(t *testing.T) {
	conf := config.Default()

	content := &model.Content{
		Id:           "content-1",
		Title:        "Poem",
		Description:  "A short poem",
		Language:     "English",
		CreatorShare: 85,
		AgentShare:   15,
	}
	err := content.SetData(model.ContentData{Attributes: []model.Attribute{
		{TraitType: "English", Value: "Roses are red"},
		{TraitType: "Spanish", Value: "Las rosas son rojas"},
	}})
	require.NoError(t, err)

	metadata, err := BuildMetadata(&conf.Purchaser, content)
	require.NoError(t, err)

	require.Equal(t, "Poem", metadata.Name)
	require.Equal(t, "A short poem", metadata.Description)
	require.Equal(t, "https://babel.market/content/content-1", metadata.ExternalUrl)
	require.Len(t, metadata.Attributes, 2)
	require.Equal(t, "English", metadata.Properties.Language)
	require.Equal(t, 85, metadata.Properties.CreatorShare)
	require.Equal(t, 15, metadata.Properties.AgentShare)

	buf, err := MarshalMetadata(metadata)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf, &decoded))
	require.Contains(t, decoded, "attributes")
	require.Contains(t, decoded, "properties")
}

func TestMetadataFilename(t *testing.T) {
	require.Equal(t, "metadata-content-1.json", MetadataFilename("content-1"))
}
