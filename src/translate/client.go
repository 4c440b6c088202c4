package translate

import (
	"context"
	"fmt"
	"strings"

	"babel/src/utils/config"
	"babel/src/utils/logger"

	"github.com/go-resty/resty/v2"
	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
)

// Client talks to the AI translation endpoint.
// Identical requests are served from an in-memory cache, outgoing calls are
// rate limited to stay within the provider's quota.
type Client struct {
	log    *logrus.Entry
	config *config.Translator

	http    *resty.Client
	cache   *cache.Cache
	limiter ratelimit.Limiter
}

type translationRequest struct {
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	Text           string `json:"text"`
}

type translationResponse struct {
	TranslatedText string `json:"translated_text"`
}

func NewClient(config *config.Translator) (self *Client) {
	self = new(Client)
	self.log = logger.NewSublogger("translator")
	self.config = config

	self.http = resty.New().
		SetBaseURL(config.Url).
		SetTimeout(config.RequestTimeout)
	if config.ApiKey != "" {
		self.http.SetAuthToken(config.ApiKey)
	}

	self.cache = cache.New(config.CacheExpirationTime, config.CacheCleanupInterval)

	if config.MaxRequestsPerSecond > 0 {
		self.limiter = ratelimit.New(config.MaxRequestsPerSecond)
	} else {
		self.limiter = ratelimit.NewUnlimited()
	}

	return
}

func (self *Client) Translate(ctx context.Context, sourceLanguage, targetLanguage, text string) (translated string, err error) {
	key := cacheKey(sourceLanguage, targetLanguage, text)
	if cached, ok := self.cache.Get(key); ok {
		return cached.(string), nil
	}

	self.limiter.Take()

	var response translationResponse
	resp, err := self.http.R().
		SetContext(ctx).
		SetBody(translationRequest{
			SourceLanguage: sourceLanguage,
			TargetLanguage: targetLanguage,
			Text:           text,
		}).
		SetResult(&response).
		Post("/v1/translate")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("translation request failed: %s", resp.Status())
	}

	translated = response.TranslatedText
	if strings.TrimSpace(translated) == "" {
		return "", fmt.Errorf("translator returned empty text")
	}

	self.cache.Set(key, translated, cache.DefaultExpiration)
	return
}

func cacheKey(sourceLanguage, targetLanguage, text string) string {
	return fmt.Sprintf("%s|%s|%s", strings.ToLower(sourceLanguage), strings.ToLower(targetLanguage), text)
}
