package purchase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"babel/src/utils/config"
	"babel/src/utils/eth"
	"babel/src/utils/model"
	"babel/src/utils/task"

	"github.com/gin-gonic/gin"
)

// Rest API server for the marketplace
type Server struct {
	*task.Task

	httpServer *http.Server
	Router     *gin.Engine

	orchestrator *Orchestrator
	store        ContentStore
}

type mintRequestBody struct {
	MintRequest
	WalletAddress string `json:"wallet_address" binding:"required"`
}

type purchaseRequestBody struct {
	WalletAddress string `json:"wallet_address" binding:"required"`
	Language      string `json:"language" binding:"required"`
}

func NewServer(config *config.Config) (self *Server) {
	self = new(Server)

	if !config.IsDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}

	self.Router = gin.New()

	self.httpServer = &http.Server{
		Addr:    config.Purchaser.ListenAddress,
		Handler: self.Router,
	}

	self.Task = task.NewTask(config, "server").
		WithSubtaskFunc(self.run).
		WithOnStop(self.stop)

	v1 := self.Router.Group("v1")
	{
		v1.POST("content", self.onMintContent)
		v1.GET("content/:id", self.onGetContent)
		v1.POST("content/:id/translations", self.onPurchaseTranslation)
		v1.GET("content/:id/translations", self.onGetTranslations)
		v1.GET("content/:id/metadata", self.onGetMetadata)
	}

	return
}

func (self *Server) WithOrchestrator(orchestrator *Orchestrator) *Server {
	self.orchestrator = orchestrator
	return self
}

func (self *Server) WithStore(store ContentStore) *Server {
	self.store = store
	return self
}

func (self *Server) run() (err error) {
	self.Log.WithField("addr", self.httpServer.Addr).Info("Starting REST server")
	err = self.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		self.Log.WithError(err).Error("Failed to start REST server")
		return
	}
	return nil
}

func (self *Server) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), self.Config.StopTimeout)
	defer cancel()

	err := self.httpServer.Shutdown(ctx)
	if err != nil {
		self.Log.WithError(err).Error("Failed to gracefully shutdown REST server")
		return
	}
}

func (self *Server) onMintContent(c *gin.Context) {
	var body mintRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wallet := Wallet{Address: body.WalletAddress, IsConnected: true, Status: "connected"}
	content, receipt, err := self.orchestrator.Mint(wallet, &body.MintRequest)
	if err != nil {
		self.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"content": content,
		"receipt": receipt,
	})
}

func (self *Server) onGetContent(c *gin.Context) {
	content, ok := self.getContent(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, content)
}

// Purchases run on the server's own context, the buyer closing the
// connection must not abort an in-flight payment
func (self *Server) onPurchaseTranslation(c *gin.Context) {
	var body purchaseRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wallet := Wallet{Address: body.WalletAddress, IsConnected: true, Status: "connected"}
	result, err := self.orchestrator.Purchase(self.Ctx, wallet, c.Param("id"), body.Language)
	if err != nil {
		self.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (self *Server) onGetTranslations(c *gin.Context) {
	content, ok := self.getContent(c)
	if !ok {
		return
	}

	data, err := content.GetData()
	if err != nil {
		self.abortWithError(c, err)
		return
	}

	projection := Project(content.Language, &data)
	c.JSON(http.StatusOK, projection)
}

func (self *Server) onGetMetadata(c *gin.Context) {
	content, ok := self.getContent(c)
	if !ok {
		return
	}

	metadata, err := BuildMetadata(&self.Config.Purchaser, content)
	if err != nil {
		self.abortWithError(c, err)
		return
	}

	buf, err := MarshalMetadata(metadata)
	if err != nil {
		self.abortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", MetadataFilename(content.Id)))
	c.Data(http.StatusOK, "application/json", buf)

	self.orchestrator.monitor.GetReport().Purchaser.State.MetadataExports.Inc()
}

func (self *Server) getContent(c *gin.Context) (content *model.Content, ok bool) {
	found, err := self.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		self.abortWithError(c, err)
		return nil, false
	}
	if found == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrContentNotFound.Error()})
		return nil, false
	}
	return found, true
}

func (self *Server) abortWithError(c *gin.Context, err error) {
	var walletErr *eth.WalletError
	var missingErr *ContentMissingError
	switch {
	case errors.As(err, &walletErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &missingErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, ErrContentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		self.Log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
