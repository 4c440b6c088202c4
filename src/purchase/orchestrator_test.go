package purchase

import (
	"context"
	"errors"
	"testing"

	"babel/src/utils/config"
	"babel/src/utils/eth"
	"babel/src/utils/model"
	monitor_purchaser "babel/src/utils/monitoring/purchaser"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fakeChain struct {
	payCalls  int
	mintCalls int

	payReceipt *eth.Receipt
	payErr     error

	mintReceipt *eth.Receipt
	mintErr     error
}

func (self *fakeChain) Mint(ctx context.Context, ownerAddress, metadataUri string) (*eth.Receipt, error) {
	self.mintCalls++
	return self.mintReceipt, self.mintErr
}

func (self *fakeChain) PayForTranslation(ctx context.Context, contentId, language, creatorAddress string, creatorShare, agentShare int) (*eth.Receipt, error) {
	self.payCalls++
	return self.payReceipt, self.payErr
}

type fakeTranslator struct {
	calls  int
	result string
	err    error
}

func (self *fakeTranslator) Translate(ctx context.Context, sourceLanguage, targetLanguage, text string) (string, error) {
	self.calls++
	return self.result, self.err
}

type fakeStore struct {
	contents map[string]*model.Content

	getErr    error
	updateErr error

	updateCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{contents: make(map[string]*model.Content)}
}

func (self *fakeStore) Get(ctx context.Context, id string) (*model.Content, error) {
	if self.getErr != nil {
		return nil, self.getErr
	}
	content, ok := self.contents[id]
	if !ok {
		return nil, nil
	}
	copied := *content
	return &copied, nil
}

func (self *fakeStore) Create(ctx context.Context, content *model.Content) error {
	copied := *content
	self.contents[content.Id] = &copied
	return nil
}

func (self *fakeStore) UpdateContentData(ctx context.Context, content *model.Content) error {
	self.updateCalls++
	if self.updateErr != nil {
		return self.updateErr
	}
	stored := self.contents[content.Id]
	stored.ContentData = content.ContentData
	return nil
}

type OrchestratorTestSuite struct {
	suite.Suite

	chain      *fakeChain
	translator *fakeTranslator
	store      *fakeStore

	orchestrator *Orchestrator
	wallet       Wallet
}

func (s *OrchestratorTestSuite) SetupTest() {
	conf := config.Default()

	s.chain = &fakeChain{
		payReceipt:  &eth.Receipt{TransactionHash: "0xabc", Status: "1"},
		mintReceipt: &eth.Receipt{TransactionHash: "0xdef", Status: "1"},
	}
	s.translator = &fakeTranslator{result: "Hola"}
	s.store = newFakeStore()
	s.wallet = Wallet{Address: "0x1111111111111111111111111111111111111111", IsConnected: true, Status: "connected"}

	s.orchestrator = NewOrchestrator(conf).
		WithChainClient(s.chain).
		WithTranslator(s.translator).
		WithStore(s.store).
		WithMonitor(monitor_purchaser.NewMonitor())

	s.seedContent("content-1", "English", "Hello")
}

func (s *OrchestratorTestSuite) seedContent(id, language, text string) {
	content := &model.Content{
		Id:           id,
		Title:        "Test",
		Language:     language,
		CreatorId:    "0x2222222222222222222222222222222222222222",
		CreatorShare: 85,
		AgentShare:   15,
	}
	err := content.SetData(model.ContentData{Attributes: []model.Attribute{
		{TraitType: language, Value: text},
	}})
	require.NoError(s.T(), err)
	s.store.contents[id] = content
}

func (s *OrchestratorTestSuite) storedAttributes(id string) []model.Attribute {
	data, err := s.store.contents[id].GetData()
	require.NoError(s.T(), err)
	return data.Attributes
}

func (s *OrchestratorTestSuite) TestSuccessfulPurchase() {
	result, err := s.orchestrator.Purchase(context.Background(), s.wallet, "content-1", "Spanish")
	require.NoError(s.T(), err)

	require.Equal(s.T(), ModePurchased, result.Mode)
	require.True(s.T(), result.Persisted)
	require.Equal(s.T(), "Hola", result.TranslatedText)
	require.NotNil(s.T(), result.Receipt)
	require.Equal(s.T(), 1, s.chain.payCalls)
	require.Equal(s.T(), 1, s.store.updateCalls)

	attributes := s.storedAttributes("content-1")
	require.Len(s.T(), attributes, 2)
	require.Equal(s.T(), "Spanish", attributes[1].TraitType)
	require.Equal(s.T(), "Hola", attributes[1].Value)
}

func (s *OrchestratorTestSuite) TestIdempotentShortCircuit() {
	_, err := s.orchestrator.Purchase(context.Background(), s.wallet, "content-1", "Spanish")
	require.NoError(s.T(), err)

	result, err := s.orchestrator.Purchase(context.Background(), s.wallet, "content-1", "spanish")
	require.NoError(s.T(), err)

	require.Equal(s.T(), ModePurchased, result.Mode)
	require.Equal(s.T(), "Hola", result.TranslatedText)
	require.True(s.T(), result.Persisted)

	// Second call must not touch the chain or the store again
	require.Equal(s.T(), 1, s.chain.payCalls)
	require.Equal(s.T(), 1, s.store.updateCalls)
	require.Len(s.T(), s.storedAttributes("content-1"), 2)
}

func (s *OrchestratorTestSuite) TestChainErrorFallsBackToPreview() {
	s.chain.payReceipt = nil
	s.chain.payErr = &eth.ChainError{Err: errors.New("execution reverted")}

	result, err := s.orchestrator.Purchase(context.Background(), s.wallet, "content-1", "Spanish")
	require.NoError(s.T(), err)

	require.Equal(s.T(), ModePreview, result.Mode)
	require.False(s.T(), result.Persisted)
	require.Equal(s.T(), "Hola", result.TranslatedText)
	require.Nil(s.T(), result.Receipt)

	// The failed payment must leave the record untouched
	require.Equal(s.T(), 0, s.store.updateCalls)
	require.Len(s.T(), s.storedAttributes("content-1"), 1)
}

func (s *OrchestratorTestSuite) TestTransientSwallowStillPersists() {
	s.chain.payReceipt = nil
	s.chain.payErr = nil

	result, err := s.orchestrator.Purchase(context.Background(), s.wallet, "content-1", "Spanish")
	require.NoError(s.T(), err)

	require.Equal(s.T(), ModePreview, result.Mode)
	require.True(s.T(), result.Persisted)
	require.Nil(s.T(), result.Receipt)
	require.Len(s.T(), s.storedAttributes("content-1"), 2)
}

func (s *OrchestratorTestSuite) TestWalletNotConnected() {
	result, err := s.orchestrator.Purchase(context.Background(), Wallet{}, "content-1", "Spanish")
	require.Error(s.T(), err)
	require.Nil(s.T(), result)
	require.True(s.T(), eth.IsWalletError(err))
	require.Equal(s.T(), 0, s.chain.payCalls)
}

func (s *OrchestratorTestSuite) TestWalletErrorFromChainAborts() {
	s.chain.payReceipt = nil
	s.chain.payErr = &eth.WalletError{Reason: "signing rejected"}

	result, err := s.orchestrator.Purchase(context.Background(), s.wallet, "content-1", "Spanish")
	require.Error(s.T(), err)
	require.Nil(s.T(), result)
	require.Equal(s.T(), 0, s.translator.calls)
	require.Equal(s.T(), 0, s.store.updateCalls)
}

func (s *OrchestratorTestSuite) TestMissingOriginalTextAborts() {
	content := s.store.contents["content-1"]
	err := content.SetData(model.ContentData{Attributes: []model.Attribute{}})
	require.NoError(s.T(), err)

	result, err := s.orchestrator.Purchase(context.Background(), s.wallet, "content-1", "Spanish")
	require.Error(s.T(), err)
	require.Nil(s.T(), result)

	var missingErr *ContentMissingError
	require.ErrorAs(s.T(), err, &missingErr)
	require.Equal(s.T(), 0, s.store.updateCalls)
}

func (s *OrchestratorTestSuite) TestTranslatorFailureAborts() {
	s.translator.result = ""
	s.translator.err = errors.New("provider unavailable")

	result, err := s.orchestrator.Purchase(context.Background(), s.wallet, "content-1", "Spanish")
	require.Error(s.T(), err)
	require.Nil(s.T(), result)
	require.Equal(s.T(), 0, s.store.updateCalls)
}

func (s *OrchestratorTestSuite) TestStoreWriteFailureDowngradesToPreview() {
	s.store.updateErr = errors.New("connection reset")

	result, err := s.orchestrator.Purchase(context.Background(), s.wallet, "content-1", "Spanish")
	require.NoError(s.T(), err)

	require.Equal(s.T(), ModePreview, result.Mode)
	require.False(s.T(), result.Persisted)
	require.Equal(s.T(), "Hola", result.TranslatedText)
}

func (s *OrchestratorTestSuite) TestContentNotFound() {
	result, err := s.orchestrator.Purchase(context.Background(), s.wallet, "missing", "Spanish")
	require.ErrorIs(s.T(), err, ErrContentNotFound)
	require.Nil(s.T(), result)
	require.Equal(s.T(), 0, s.chain.payCalls)
}

func (s *OrchestratorTestSuite) TestMint() {
	content, receipt, err := s.orchestrator.Mint(s.wallet, &MintRequest{
		Title:    "Poem",
		Language: "English",
		Text:     "Roses are red",
	})
	require.NoError(s.T(), err)
	require.NotNil(s.T(), receipt)

	require.Equal(s.T(), s.wallet.Address, content.CreatorId)
	require.Equal(s.T(), 85, content.CreatorShare)
	require.Equal(s.T(), 15, content.AgentShare)
	require.Equal(s.T(), 1, s.chain.mintCalls)

	stored := s.store.contents[content.Id]
	require.NotNil(s.T(), stored)
	data, err := stored.GetData()
	require.NoError(s.T(), err)
	require.Len(s.T(), data.Attributes, 1)
	require.Equal(s.T(), "English", data.Attributes[0].TraitType)
	require.Equal(s.T(), "Roses are red", data.Attributes[0].Value)
}

func (s *OrchestratorTestSuite) TestMintRejectsOutOfRangeShares() {
	_, _, err := s.orchestrator.Mint(s.wallet, &MintRequest{
		Title:        "Poem",
		Language:     "English",
		Text:         "Roses are red",
		CreatorShare: 120,
		AgentShare:   15,
	})
	require.Error(s.T(), err)
	require.Equal(s.T(), 0, s.chain.mintCalls)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
