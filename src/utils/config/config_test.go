package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	conf, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "0x60155DF180066aD68ee39D64B5AeBF1440971Ccf", conf.Contract.Address)
	require.EqualValues(t, 11155111, conf.Contract.ChainId)

	require.Equal(t, 85, conf.Purchaser.DefaultCreatorShare)
	require.Equal(t, 15, conf.Purchaser.DefaultAgentShare)
	require.Equal(t, "babel.purchases", conf.Purchaser.EventChannelName)

	require.Equal(t, "babel", conf.Database.Name)
	require.False(t, conf.Redis.Enabled)
	require.NotZero(t, conf.StopTimeout)
	require.NotZero(t, conf.Translator.RequestTimeout)
}

func TestDefaultNeverNil(t *testing.T) {
	conf := Default()
	require.NotNil(t, conf)
}
