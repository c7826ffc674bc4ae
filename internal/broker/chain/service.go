package chain

import (
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// NativeTokenAddress is the all-zero address sentinel the engine uses for a
// chain's native asset.
var NativeTokenAddress = common.Address{}.Hex()

// Canonical mainnet chain ids as expected by the execution engine.
const (
	EthereumMainnet      ID = 1
	OptimismMainnet      ID = 10
	BSCMainnet           ID = 56
	SolanaMainnet        ID = 101
	PolygonMainnet       ID = 137
	SonicMainnet         ID = 146
	MantaMainnet         ID = 169
	XLayerMainnet        ID = 196
	ConfluxESpaceMainnet ID = 1030
	MerlinMainnet        ID = 4200
	MantleMainnet        ID = 5000
	BaseMainnet          ID = 8453
	PlasmaMainnet        ID = 9745
	ModeMainnet          ID = 34443
	ArbitrumMainnetOne   ID = 42161
	AvalancheMainnet     ID = 43114
	LineaMainnet         ID = 59144
	BerachainMainnet     ID = 80094
	BlastMainnet         ID = 81457
	HyperEVMMainnet      ID = 999
	MonadMainnet         ID = 143
)

// chainAliases maps every accepted lowercase chain name to its id. Multiple
// aliases may point at the same chain.
var chainAliases = map[string]ID{
	"ethereum":  EthereumMainnet,
	"eth":       EthereumMainnet,
	"bnb":       BSCMainnet,
	"bsc":       BSCMainnet,
	"base":      BaseMainnet,
	"arbitrum":  ArbitrumMainnetOne,
	"arb":       ArbitrumMainnetOne,
	"avalanche": AvalancheMainnet,
	"avax":      AvalancheMainnet,
	"optimism":  OptimismMainnet,
	"op":        OptimismMainnet,
	"polygon":   PolygonMainnet,
	"matic":     PolygonMainnet,
	"solana":    SolanaMainnet,
	"sol":       SolanaMainnet,
	"linea":     LineaMainnet,
	"sonic":     SonicMainnet,
	"berachain": BerachainMainnet,
	"bera":      BerachainMainnet,
	"mantle":    MantleMainnet,
	"monad":     MonadMainnet,
	"merlin":    MerlinMainnet,
	"hyperevm":  HyperEVMMainnet,
	"blast":     BlastMainnet,
	"manta":     MantaMainnet,
	"mode":      ModeMainnet,
	"plasma":    PlasmaMainnet,
	"xlayer":    XLayerMainnet,
	"conflux":   ConfluxESpaceMainnet,
}

var primaryAssets = map[string]AssetType{
	"USDC": AssetUSDC,
	"USDT": AssetUSDT,
	"ETH":  AssetETH,
	"SOL":  AssetSOL,
	"BNB":  AssetBNB,
	"BTC":  AssetBTC,
}

type service struct{}

// NewService 创建链/资产解析服务
//
//nolint:ireturn
func NewService() Service {
	return &service{}
}

func (s *service) ResolveChain(name string) (ID, error) {
	if name == "" {
		return 0, errors.New("Missing chain parameter")
	}

	id, ok := chainAliases[strings.ToLower(name)]
	if !ok {
		return 0, errors.Errorf("Unknown chain: %s", name)
	}

	return id, nil
}

func (s *service) ResolveToken(address string) (string, error) {
	if address == "" {
		return "", errors.New("Missing token parameter")
	}

	if strings.EqualFold(address, "native") {
		return NativeTokenAddress, nil
	}

	return address, nil
}

func (s *service) ResolveAsset(symbol string) (AssetType, error) {
	if symbol == "" {
		return "", errors.New("Missing asset parameter")
	}

	asset, ok := primaryAssets[strings.ToUpper(symbol)]
	if !ok {
		return "", errors.Errorf("Unknown asset: %s. Use: %s", symbol, strings.Join(s.PrimaryAssets(), ", "))
	}

	return asset, nil
}

func (s *service) SupportedChains() map[string]ID {
	chains := make(map[string]ID, len(chainAliases))
	for alias, id := range chainAliases {
		chains[alias] = id
	}

	return chains
}

func (s *service) PrimaryAssets() []string {
	symbols := make([]string, 0, len(primaryAssets))
	for symbol := range primaryAssets {
		symbols = append(symbols, symbol)
	}

	sort.Strings(symbols)

	return symbols
}
