package client

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"shopify-nft-minter/internal/config"
	"shopify-nft-minter/internal/model"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ABI fragment of the collection contract. mintTo issues a new token to the
// given wallet with the given token URI.
const nftCollectionABI = `[{
	"inputs": [
		{"internalType": "address", "name": "_to", "type": "address"},
		{"internalType": "string", "name": "_uri", "type": "string"}
	],
	"name": "mintTo",
	"outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
	"stateMutability": "nonpayable",
	"type": "function"
}]`

var ErrInvalidWalletAddress = fmt.Errorf("invalid wallet address")

type MintResult struct {
	TxHash      string
	BlockNumber uint64
}

type MintClient interface {
	MintTo(ctx context.Context, walletAddress string, metadata *model.NFTMetadata) (*MintResult, error)
}

type mintClientImpl struct {
	ethClient  *ethclient.Client
	contract   *bind.BoundContract
	privateKey *ecdsa.PrivateKey
	chainID    *big.Int
}

func NewMintClient(ctx context.Context, chainCfg *config.Chain) (MintClient, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(chainCfg.AdminPrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse admin private key: %w", err)
	}

	if !common.IsHexAddress(chainCfg.CollectionAddress) {
		return nil, fmt.Errorf("invalid collection address %q", chainCfg.CollectionAddress)
	}

	ec, err := ethclient.DialContext(ctx, chainCfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial chain rpc: %w", err)
	}

	chainID, err := ec.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch chain id: %w", err)
	}

	parsedABI, err := abi.JSON(strings.NewReader(nftCollectionABI))
	if err != nil {
		return nil, fmt.Errorf("parse collection abi: %w", err)
	}

	contract := bind.NewBoundContract(
		common.HexToAddress(chainCfg.CollectionAddress),
		parsedABI,
		ec, ec, ec,
	)

	return &mintClientImpl{
		ethClient:  ec,
		contract:   contract,
		privateKey: privateKey,
		chainID:    chainID,
	}, nil
}

func (c *mintClientImpl) MintTo(ctx context.Context, walletAddress string, metadata *model.NFTMetadata) (*MintResult, error) {
	if !common.IsHexAddress(walletAddress) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWalletAddress, walletAddress)
	}

	uri, err := encodeTokenURI(metadata)
	if err != nil {
		return nil, fmt.Errorf("encode token uri: %w", err)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(c.privateKey, c.chainID)
	if err != nil {
		return nil, fmt.Errorf("build transactor: %w", err)
	}
	opts.Context = ctx

	tx, err := c.contract.Transact(opts, "mintTo", common.HexToAddress(walletAddress), uri)
	if err != nil {
		return nil, fmt.Errorf("send mint transaction: %w", err)
	}

	// Block until the transaction is mined so the caller sees a confirmed
	// mint before moving on to the next item.
	receipt, err := bind.WaitMined(ctx, c.ethClient, tx)
	if err != nil {
		return nil, fmt.Errorf("wait for mint transaction %s: %w", tx.Hash().Hex(), err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("mint transaction %s reverted", tx.Hash().Hex())
	}

	return &MintResult{
		TxHash:      receipt.TxHash.Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
	}, nil
}

// encodeTokenURI embeds the metadata JSON as a data URI, so the token needs no
// off-chain metadata host. HTML escaping is off: the description carries the
// product's raw HTML.
func encodeTokenURI(metadata *model.NFTMetadata) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(metadata); err != nil {
		return "", err
	}
	raw := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	return "data:application/json;base64," + base64.StdEncoding.EncodeToString(raw), nil
}
