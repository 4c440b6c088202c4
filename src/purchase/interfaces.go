package purchase

import (
	"context"

	"babel/src/utils/eth"
	"babel/src/utils/model"
)

type ChainClient interface {
	Mint(ctx context.Context, ownerAddress, metadataUri string) (*eth.Receipt, error)
	PayForTranslation(ctx context.Context, contentId, language, creatorAddress string, creatorShare, agentShare int) (*eth.Receipt, error)
}

type Translator interface {
	Translate(ctx context.Context, sourceLanguage, targetLanguage, text string) (string, error)
}

type ContentStore interface {
	Get(ctx context.Context, id string) (*model.Content, error)
	Create(ctx context.Context, content *model.Content) error
	UpdateContentData(ctx context.Context, content *model.Content) error
}
