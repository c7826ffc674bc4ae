package broker

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github/uniagent/go-broker/internal/broker/chain"
	"github/uniagent/go-broker/internal/broker/engine"
	"github/uniagent/go-broker/internal/broker/pending"
	"github/uniagent/go-broker/internal/config"
	"github/uniagent/go-broker/internal/metrics"
)

type service struct {
	cfg      config.Server
	resolver chain.Service
	engine   engine.Client
	store    pending.Store
	metrics  *metrics.Service
}

// NewService 创建交易 broker 服务
//
//nolint:ireturn
func NewService(
	cfg config.Server,
	resolver chain.Service,
	engineClient engine.Client,
	store pending.Store,
	metricsService *metrics.Service,
) Service {
	metricsService.RegisterPendingDepth(func() float64 {
		n, err := store.Len(context.Background())
		if err != nil {
			log.Warn().Err(err).Msg("Failed to sample pending store depth")
			return 0
		}

		return float64(n)
	})

	return &service{
		cfg:      cfg,
		resolver: resolver,
		engine:   engineClient,
		store:    store,
		metrics:  metricsService,
	}
}

func (s *service) CreateTransaction(ctx context.Context, req *CreateRequest) (*CreateResult, error) {
	// 1. 解析并规范化请求参数
	intent, err := s.resolveIntent(req)
	if err != nil {
		return nil, NewInputError(err)
	}

	// 2. 通过执行引擎构建未签名交易
	timer := s.metrics.BuildDurationTimer()
	txn, err := s.engine.BuildTransaction(ctx, intent)
	timer.ObserveDuration()

	if err != nil {
		s.metrics.BuildsTotal.WithLabelValues(string(req.Operation), metrics.OutcomeError).Inc()
		// engine errors carry the human-readable cause and surface verbatim
		return nil, err
	}

	s.metrics.BuildsTotal.WithLabelValues(string(req.Operation), metrics.OutcomeOK).Inc()

	// 3. 暂存交易，等待外部签名
	entry := &pending.Entry{
		RootHash:    txn.RootHash,
		Transaction: txn,
	}

	if err := s.store.Put(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to store pending transaction")
	}

	log.Info().
		Str("root_hash", txn.RootHash).
		Str("operation", string(req.Operation)).
		Int64("chain_id", int64(intent.ChainID)).
		Int("steps", txn.Steps).
		Msg("Unsigned transaction created")

	return &CreateResult{
		RootHash: txn.RootHash,
		Steps:    txn.Steps,
		Fees:     txn.Fees,
	}, nil
}

func (s *service) Submit(ctx context.Context, rootHash string, signature string) (*SubmitResult, error) {
	if rootHash == "" {
		return nil, NewInputError(errors.New("Missing rootHash"))
	}
	if signature == "" {
		return nil, NewInputError(errors.New("Missing signature"))
	}

	// 1. 原子地取出 pending 交易，保证同一 rootHash 只会提交一次
	entry, err := s.store.Take(ctx, rootHash)
	if err != nil {
		if errors.Is(err, pending.ErrNotFound) {
			s.metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
		}
		return nil, err
	}

	// 2. 转发给执行引擎。失败是终态：entry 已被移除且不会放回，
	//    因为 rootHash 绑定的执行计划（gas 报价等）可能已过期。
	receipt, err := s.engine.SubmitTransaction(ctx, entry.Transaction, signature)
	if err != nil {
		s.metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeError).Inc()

		log.Warn().
			Str("root_hash", rootHash).
			Err(err).
			Msg("Submission rejected by execution engine")

		return nil, err
	}

	s.metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeOK).Inc()

	log.Info().
		Str("root_hash", rootHash).
		Str("transaction_id", receipt.TransactionID).
		Msg("Transaction submitted")

	return &SubmitResult{
		TransactionID: receipt.TransactionID,
		ExplorerURL:   s.explorerURL(receipt.TransactionID),
		Fees:          receipt.Fees,
	}, nil
}

func (s *service) Balance(ctx context.Context, ownerAddress string) (*engine.BalanceSummary, error) {
	return s.engine.GetBalance(ctx, ownerAddress)
}

func (s *service) History(ctx context.Context, ownerAddress string, page, pageSize int) (*engine.HistoryPage, error) {
	return s.engine.GetHistory(ctx, ownerAddress, page, pageSize)
}

func (s *service) SupportedChains() (map[string]chain.ID, []string) {
	return s.resolver.SupportedChains(), s.resolver.PrimaryAssets()
}

func (s *service) resolveIntent(req *CreateRequest) (*engine.Intent, error) {
	chainID, err := s.resolver.ResolveChain(req.Chain)
	if err != nil {
		return nil, err
	}

	slippage := req.SlippageBps
	if slippage <= 0 {
		slippage = s.cfg.Broker.DefaultSlippageBps
	}

	intent := &engine.Intent{
		Operation:    req.Operation,
		OwnerAddress: req.OwnerAddress,
		ChainID:      chainID,
		Amount:       req.Amount,
		SlippageBps:  slippage,
	}

	switch req.Operation {
	case engine.OperationConvert:
		asset, err := s.resolver.ResolveAsset(req.Asset)
		if err != nil {
			return nil, err
		}
		intent.Asset = asset
	case engine.OperationBuy, engine.OperationSell, engine.OperationTransfer:
		token, err := s.resolver.ResolveToken(req.Token)
		if err != nil {
			return nil, err
		}
		intent.TokenAddress = token
		intent.Receiver = req.Receiver
	default:
		return nil, errors.Errorf("unsupported operation: %s", req.Operation)
	}

	return intent, nil
}

func (s *service) explorerURL(transactionID string) string {
	return fmt.Sprintf("%s/activity/details?id=%s", s.cfg.Engine.ExplorerBaseURL, transactionID)
}
