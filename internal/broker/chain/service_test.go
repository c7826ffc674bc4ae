package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/uniagent/go-broker/internal/broker/chain"
)

func TestResolveChainAliases(t *testing.T) {
	s := chain.NewService()

	tests := []struct {
		name     string
		expected chain.ID
	}{
		{"ethereum", chain.EthereumMainnet},
		{"eth", chain.EthereumMainnet},
		{"ETH", chain.EthereumMainnet},
		{"Base", chain.BaseMainnet},
		{"arb", chain.ArbitrumMainnetOne},
		{"arbitrum", chain.ArbitrumMainnetOne},
		{"sol", chain.SolanaMainnet},
		{"solana", chain.SolanaMainnet},
		{"matic", chain.PolygonMainnet},
		{"bnb", chain.BSCMainnet},
		{"hyperevm", chain.HyperEVMMainnet},
	}

	for _, tt := range tests {
		id, err := s.ResolveChain(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.expected, id, tt.name)
	}
}

func TestResolveChainUnknown(t *testing.T) {
	s := chain.NewService()

	_, err := s.ResolveChain("marsnet")
	require.EqualError(t, err, "Unknown chain: marsnet")

	_, err = s.ResolveChain("")
	require.EqualError(t, err, "Missing chain parameter")
}

func TestResolveTokenNative(t *testing.T) {
	s := chain.NewService()

	for _, token := range []string{"native", "NATIVE", "Native"} {
		address, err := s.ResolveToken(token)
		require.NoError(t, err)
		assert.Equal(t, chain.NativeTokenAddress, address)
	}
}

func TestResolveTokenPassthrough(t *testing.T) {
	s := chain.NewService()

	const usdcBase = "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"

	address, err := s.ResolveToken(usdcBase)
	require.NoError(t, err)
	assert.Equal(t, usdcBase, address)

	_, err = s.ResolveToken("")
	require.EqualError(t, err, "Missing token parameter")
}

func TestResolveAsset(t *testing.T) {
	s := chain.NewService()

	asset, err := s.ResolveAsset("usdc")
	require.NoError(t, err)
	assert.Equal(t, chain.AssetUSDC, asset)

	asset, err = s.ResolveAsset("BTC")
	require.NoError(t, err)
	assert.Equal(t, chain.AssetBTC, asset)

	_, err = s.ResolveAsset("DOGE")
	require.EqualError(t, err, "Unknown asset: DOGE. Use: BNB, BTC, ETH, SOL, USDC, USDT")

	_, err = s.ResolveAsset("")
	require.EqualError(t, err, "Missing asset parameter")
}

func TestSupportedChains(t *testing.T) {
	s := chain.NewService()

	chains := s.SupportedChains()
	assert.Equal(t, chain.EthereumMainnet, chains["eth"])
	assert.Equal(t, chain.EthereumMainnet, chains["ethereum"])
	assert.Equal(t, chain.BaseMainnet, chains["base"])

	// the returned map is a copy, mutation must not leak into the service
	chains["eth"] = 0
	again := s.SupportedChains()
	assert.Equal(t, chain.EthereumMainnet, again["eth"])
}

func TestPrimaryAssetsSorted(t *testing.T) {
	s := chain.NewService()

	assert.Equal(t, []string{"BNB", "BTC", "ETH", "SOL", "USDC", "USDT"}, s.PrimaryAssets())
}
