package config

import (
	"github.com/spf13/viper"
)

type Purchaser struct {
	// Address the marketplace REST API listens on
	ListenAddress string

	// Revenue split applied to newly minted content when the creator does not pick one
	DefaultCreatorShare int
	DefaultAgentShare   int

	// Base URL put into exported metadata as external_url and used as the token uri
	ExternalUrlBase string

	// Image URL put into exported metadata
	ExportImageUrl string

	// Maximum length of the purchase event channel
	EventChannelSize int

	// Redis channel purchase events are published to
	EventChannelName string
}

func setPurchaserDefaults() {
	viper.SetDefault("Purchaser.ListenAddress", ":8080")
	viper.SetDefault("Purchaser.DefaultCreatorShare", 85)
	viper.SetDefault("Purchaser.DefaultAgentShare", 15)
	viper.SetDefault("Purchaser.ExternalUrlBase", "https://babel.market")
	viper.SetDefault("Purchaser.ExportImageUrl", "https://babel.market/static/content.png")
	viper.SetDefault("Purchaser.EventChannelSize", 100)
	viper.SetDefault("Purchaser.EventChannelName", "babel.purchases")
}
