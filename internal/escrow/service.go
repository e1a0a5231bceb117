package escrow

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/byb-ai/progress-verifier/internal/common"
)

const (
	defaultGasLimit    = 300_000
	receiptWaitTimeout = 120 * time.Second
)

type Config struct {
	RPCURL          string
	ContractAddress string
	ABIPath         string
	PrivateKey      string // optional; without it the service is read-only
	ChainID         int64
	GasLimit        uint64
}

// Service wraps the EscrowManager contract. A validated report triggers
// releaseMilestoneFunds for the next unreleased milestone of a building.
type Service struct {
	client   *ethclient.Client
	contract *bind.BoundContract
	auth     *bind.TransactOpts
	address  ethcommon.Address
	log      *slog.Logger
}

func NewService(ctx context.Context, cfg Config, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.RPCURL == "" || cfg.ContractAddress == "" || cfg.ABIPath == "" {
		return nil, common.NewAppError("CONFIGURATION_ERROR", "escrow: rpc url, contract address, and abi path are required", common.ErrConfiguration)
	}
	if cfg.GasLimit == 0 {
		cfg.GasLimit = defaultGasLimit
	}

	parsedABI, err := LoadABI(cfg.ABIPath)
	if err != nil {
		return nil, common.NewAppError("CONFIGURATION_ERROR", err.Error(), common.ErrConfiguration)
	}

	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("%w: dial ethereum node: %v", common.ErrProviderUnavailable, err)
	}

	address := ethcommon.HexToAddress(cfg.ContractAddress)
	contract := bind.NewBoundContract(address, parsedABI, client, client, client)

	s := &Service{
		client:   client,
		contract: contract,
		address:  address,
		log:      logger,
	}

	if cfg.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			return nil, common.NewAppError("CONFIGURATION_ERROR", "escrow: invalid private key", common.ErrConfiguration)
		}
		auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(cfg.ChainID))
		if err != nil {
			return nil, common.NewAppError("CONFIGURATION_ERROR", "escrow: build transactor", common.ErrConfiguration)
		}
		auth.GasLimit = cfg.GasLimit
		s.auth = auth
		logger.Info("escrow service initialized", "oracle", auth.From.Hex(), "contract", address.Hex())
	} else {
		logger.Warn("escrow service initialized without private key (read-only mode)")
	}
	return s, nil
}

// ReleaseMilestoneFunds submits the release transaction for a building and
// waits for it to be mined. Returns the transaction hash.
func (s *Service) ReleaseMilestoneFunds(ctx context.Context, buildingID int64) (string, error) {
	if s.auth == nil {
		return "", common.NewAppError("CONFIGURATION_ERROR", "escrow: cannot release funds, private key not configured", common.ErrConfiguration)
	}

	opts := *s.auth
	opts.Context = ctx
	tx, err := s.contract.Transact(&opts, "releaseMilestoneFunds", big.NewInt(buildingID))
	if err != nil {
		s.log.Error("escrow.release.submit_failed", "building_id", buildingID, "err", err)
		return "", fmt.Errorf("%w: release milestone funds: %v", common.ErrProviderUnavailable, err)
	}
	s.log.Info("escrow.release.submitted", "building_id", buildingID, "tx_hash", tx.Hash().Hex())

	waitCtx, cancel := context.WithTimeout(ctx, receiptWaitTimeout)
	defer cancel()
	receipt, err := bind.WaitMined(waitCtx, s.client, tx)
	if err != nil {
		s.log.Error("escrow.release.wait_failed", "building_id", buildingID, "tx_hash", tx.Hash().Hex(), "err", err)
		return tx.Hash().Hex(), fmt.Errorf("%w: wait for receipt: %v", common.ErrProviderUnavailable, err)
	}
	if receipt.Status == 0 {
		return tx.Hash().Hex(), fmt.Errorf("transaction reverted: %s", tx.Hash().Hex())
	}

	s.log.Info("escrow.release.ok",
		"building_id", buildingID,
		"tx_hash", tx.Hash().Hex(),
		"block", receipt.BlockNumber,
		"gas_used", receipt.GasUsed,
	)
	return tx.Hash().Hex(), nil
}

// Info mirrors the contract's getEscrowInfo return values.
type Info struct {
	TotalEscrowed         *big.Int
	TotalReleased         *big.Int
	LastReleasedMilestone *big.Int
	TotalMilestones       *big.Int
	Developer             ethcommon.Address
}

// GetEscrowInfo reads the escrow state for a building.
func (s *Service) GetEscrowInfo(ctx context.Context, buildingID int64) (Info, error) {
	var out []any
	err := s.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getEscrowInfo", big.NewInt(buildingID))
	if err != nil {
		return Info{}, fmt.Errorf("%w: get escrow info: %v", common.ErrProviderUnavailable, err)
	}
	if len(out) != 5 {
		return Info{}, fmt.Errorf("unexpected getEscrowInfo arity: %d", len(out))
	}
	return Info{
		TotalEscrowed:         out[0].(*big.Int),
		TotalReleased:         out[1].(*big.Int),
		LastReleasedMilestone: out[2].(*big.Int),
		TotalMilestones:       out[3].(*big.Int),
		Developer:             out[4].(ethcommon.Address),
	}, nil
}

// OracleAddress returns the transacting account, or the zero address in
// read-only mode.
func (s *Service) OracleAddress() ethcommon.Address {
	if s.auth == nil {
		return ethcommon.Address{}
	}
	return s.auth.From
}

// CanRelease reports whether the service holds a signing key.
func (s *Service) CanRelease() bool {
	return s.auth != nil
}
