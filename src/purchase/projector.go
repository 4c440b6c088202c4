package purchase

import (
	"strings"

	"babel/src/utils/model"
)

// Splits content attributes into the original text and its translations
type Projection struct {
	Original     *model.Attribute  `json:"original,omitempty"`
	Translations []model.Attribute `json:"translations"`
}

func (self *Projection) HasTranslation(language string) bool {
	for _, attribute := range self.Translations {
		if strings.EqualFold(attribute.TraitType, language) {
			return true
		}
	}
	return false
}

// Project derives the translation status of a content item from its attributes.
// The attribute matching the content's own language is the original,
// every other attribute is a translation. A missing original is a valid
// empty projection, not an error.
func Project(language string, data *model.ContentData) (projection Projection) {
	projection.Translations = make([]model.Attribute, 0, len(data.Attributes))
	for _, attribute := range data.Attributes {
		if projection.Original == nil && strings.EqualFold(attribute.TraitType, language) {
			a := attribute
			projection.Original = &a
			continue
		}
		projection.Translations = append(projection.Translations, attribute)
	}
	return
}

// FindAttribute returns the attribute whose trait type matches the language,
// ignoring case
func FindAttribute(data *model.ContentData, language string) *model.Attribute {
	for i := range data.Attributes {
		if strings.EqualFold(data.Attributes[i].TraitType, language) {
			return &data.Attributes[i]
		}
	}
	return nil
}

// MergeAttribute removes every attribute matching the language (ignoring case)
// and appends the new one. This filter-then-append step is the only place
// where per-language uniqueness is enforced.
func MergeAttribute(data *model.ContentData, language, value string) {
	filtered := make([]model.Attribute, 0, len(data.Attributes)+1)
	for _, attribute := range data.Attributes {
		if strings.EqualFold(attribute.TraitType, language) {
			continue
		}
		filtered = append(filtered, attribute)
	}
	data.Attributes = append(filtered, model.Attribute{TraitType: language, Value: value})
}
