package purchase

import (
	"testing"

	"babel/src/utils/model"

	"github.com/stretchr/testify/require"
)

func TestProjectSplitsOriginalAndTranslations(t *testing.T) {
	data := model.ContentData{Attributes: []model.Attribute{
		{TraitType: "English", Value: "Hello"},
		{TraitType: "Spanish", Value: "Hola"},
		{TraitType: "French", Value: "Bonjour"},
	}}

	projection := Project("English", &data)

	require.NotNil(t, projection.Original)
	require.Equal(t, "Hello", projection.Original.Value)
	require.Len(t, projection.Translations, 2)
	require.True(t, projection.HasTranslation("spanish"))
	require.False(t, projection.HasTranslation("German"))
}

func TestProjectMatchesLanguageIgnoringCase(t *testing.T) {
	data := model.ContentData{Attributes: []model.Attribute{
		{TraitType: "english", Value: "Hello"},
	}}

	projection := Project("English", &data)

	require.NotNil(t, projection.Original)
	require.Empty(t, projection.Translations)
}

func TestProjectMissingOriginalIsEmptyNotError(t *testing.T) {
	data := model.ContentData{Attributes: []model.Attribute{
		{TraitType: "Spanish", Value: "Hola"},
	}}

	projection := Project("English", &data)

	require.Nil(t, projection.Original)
	require.Len(t, projection.Translations, 1)
}

func TestMergeAttributeReplacesCaseInsensitively(t *testing.T) {
	data := model.ContentData{Attributes: []model.Attribute{
		{TraitType: "English", Value: "Hello"},
		{TraitType: "spanish", Value: "old"},
		{TraitType: "SPANISH", Value: "older"},
	}}

	MergeAttribute(&data, "Spanish", "Hola")

	require.Len(t, data.Attributes, 2)
	last := data.Attributes[len(data.Attributes)-1]
	require.Equal(t, "Spanish", last.TraitType)
	require.Equal(t, "Hola", last.Value)
}

func TestFindAttribute(t *testing.T) {
	data := model.ContentData{Attributes: []model.Attribute{
		{TraitType: "English", Value: "Hello"},
	}}

	require.NotNil(t, FindAttribute(&data, "ENGLISH"))
	require.Nil(t, FindAttribute(&data, "Spanish"))
}
