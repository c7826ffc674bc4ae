package chain

// ID is the canonical numeric chain identifier expected by the execution engine.
type ID int64

// AssetType is one of the engine's primary settlement assets. The set is
// closed, assets outside it cannot be used with convert operations.
type AssetType string

const (
	AssetUSDC AssetType = "USDC"
	AssetUSDT AssetType = "USDT"
	AssetETH  AssetType = "ETH"
	AssetSOL  AssetType = "SOL"
	AssetBNB  AssetType = "BNB"
	AssetBTC  AssetType = "BTC"
)

// Service 定义链/资产解析服务接口
// Resolution is a pure lookup, unknown input fails deterministically and
// nothing is validated beyond membership (malformed token addresses are
// rejected downstream by the execution engine, not here).
type Service interface {
	// ResolveChain maps a human-readable chain name or alias (case-insensitive)
	// to its canonical chain id.
	ResolveChain(name string) (ID, error)

	// ResolveToken maps the sentinel "native" (case-insensitive) to the
	// zero-address of the chain's native asset and passes any other input
	// through unchanged.
	ResolveToken(address string) (string, error)

	// ResolveAsset maps a primary asset symbol (case-insensitive) to its
	// canonical asset type.
	ResolveAsset(symbol string) (AssetType, error)

	// SupportedChains returns the full alias -> chain id map.
	SupportedChains() map[string]ID

	// PrimaryAssets returns the symbols accepted by ResolveAsset, sorted.
	PrimaryAssets() []string
}
