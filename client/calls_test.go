package client_test

import (
	"testing"

	pararoute "github.com/pararoute/pararoute"
	"github.com/pararoute/pararoute/client"
	"github.com/pararoute/pararoute/registry"
	"github.com/stretchr/testify/require"
)

func TestFindCallIndex(t *testing.T) {
	meta := client.Metadata{
		Calls: []*client.CallMeta{
			{Name: "XTokens.transfer", SectionIndex: 70, MethodIndex: 0},
			{Name: "XTokens.transfer_multiassets", SectionIndex: 70, MethodIndex: 5},
		},
	}

	index, err := meta.FindCallIndex("XTokens.transfer_multiassets")
	require.NoError(t, err)
	require.EqualValues(t, 70, index.SectionIndex)
	require.EqualValues(t, 5, index.MethodIndex)

	_, err = meta.FindCallIndex("PolkadotXcm.transfer_assets")
	require.Error(t, err)
}

func TestNewCallUnknownMethod(t *testing.T) {
	meta := client.Metadata{}
	_, err := client.NewCall(&meta, "XTokens.transfer")
	require.Error(t, err)
}

func TestNewClientUsesRegisteredURL(t *testing.T) {
	cfg, err := registry.GetChain(pararoute.Acala)
	require.NoError(t, err)

	cli := client.NewClient(cfg)
	require.Equal(t, cfg, cli.Config())

	clone := cli.Clone()
	require.Equal(t, cfg.Chain, clone.Config().Chain)
}
