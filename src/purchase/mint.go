package purchase

import (
	"fmt"
	"strings"

	"babel/src/utils/eth"
	"babel/src/utils/model"

	"github.com/rs/xid"
)

type MintRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Language    string `json:"language" binding:"required"`
	Text        string `json:"text" binding:"required"`

	// Revenue split, both in [0,100]. Zero values fall back to the defaults.
	CreatorShare int `json:"creator_share"`
	AgentShare   int `json:"agent_share"`
}

// Mint creates the content record and mints the NFT for the creator's wallet.
// The record is written first, a failed mint leaves it behind for a retry.
func (self *Orchestrator) Mint(wallet Wallet, request *MintRequest) (content *model.Content, receipt *eth.Receipt, err error) {
	if !wallet.IsConnected || wallet.Address == "" {
		self.monitor.GetReport().Purchaser.Errors.WalletFailures.Inc()
		return nil, nil, &eth.WalletError{Reason: "wallet not connected"}
	}

	creatorShare := request.CreatorShare
	agentShare := request.AgentShare
	if creatorShare == 0 && agentShare == 0 {
		creatorShare = self.Config.Purchaser.DefaultCreatorShare
		agentShare = self.Config.Purchaser.DefaultAgentShare
	}
	if creatorShare < 0 || creatorShare > 100 || agentShare < 0 || agentShare > 100 {
		return nil, nil, fmt.Errorf("shares out of range: creator %d, agent %d", creatorShare, agentShare)
	}
	if strings.TrimSpace(request.Text) == "" {
		return nil, nil, fmt.Errorf("content text is empty")
	}

	content = &model.Content{
		Id:           xid.New().String(),
		Title:        request.Title,
		Description:  request.Description,
		Language:     request.Language,
		CreatorId:    wallet.Address,
		CreatorShare: creatorShare,
		AgentShare:   agentShare,
	}
	err = content.SetData(model.ContentData{
		Attributes: []model.Attribute{
			{TraitType: request.Language, Value: request.Text},
		},
	})
	if err != nil {
		return nil, nil, err
	}

	err = self.store.Create(self.Ctx, content)
	if err != nil {
		self.monitor.GetReport().Purchaser.Errors.StoreWriteFailures.Inc()
		return nil, nil, err
	}

	metadataUri := fmt.Sprintf("%s/v1/content/%s/metadata", self.Config.Purchaser.ExternalUrlBase, content.Id)
	receipt, err = self.chain.Mint(self.Ctx, wallet.Address, metadataUri)
	if err != nil {
		self.monitor.GetReport().Purchaser.Errors.MintFailures.Inc()
		self.Log.WithError(err).WithField("content_id", content.Id).Error("Minting failed")
		return content, nil, err
	}

	self.monitor.GetReport().Purchaser.State.MintsSucceeded.Inc()
	return content, receipt, nil
}
