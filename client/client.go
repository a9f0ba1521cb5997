// Package client wraps the substrate RPC connection used for balance and fee
// queries. Transfer construction itself performs no I/O; only the pre-flight
// checks and fee estimation go through a ChainApi.
package client

import (
	"context"
	"encoding/json"
	"math/big"
	"time"

	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	pararoute "github.com/pararoute/pararoute"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ChainApi is the read-only chain access transfer construction depends on.
type ChainApi interface {
	Config() *pararoute.ChainConfig
	// Init opens the RPC connection and loads the trimmed call metadata.
	Init(ctx context.Context) error
	Disconnect()
	// Clone returns an unconnected copy pointing at the same endpoint.
	Clone() ChainApi
	// CalculateTransactionFee estimates the inclusion fee of a constructed
	// call as it would be paid by sender.
	CalculateTransactionFee(ctx context.Context, call pararoute.SerializedCall, sender pararoute.Address) (pararoute.AmountBlockchain, error)
	// QueryBalance returns the free native balance of an account.
	QueryBalance(ctx context.Context, address pararoute.Address) (pararoute.AmountBlockchain, error)
}

type InclusionFee struct {
	AdjustedWeightFee string `json:"adjustedWeightFee"`
	BaseFee           string `json:"baseFee"`
	LenFee            string `json:"lenFee"`
}

type FeeEstimateResponse struct {
	InclusionFee InclusionFee `json:"inclusionFee"`
}

// AccountInfo contains a subset of what a parachain may return in order to
// maximize decoding interoperability. To see other fields, see
// types.AccountInfo
type AccountInfo struct {
	Nonce       types.U32
	Consumers   types.U32
	Providers   types.U32
	Sufficients types.U32
	Data        struct {
		Free types.U128
		// skip fields after this point as we don't need them
	}
}

// Client is the gsrpc-backed ChainApi.
type Client struct {
	cfg     *pararoute.ChainConfig
	url     string
	api     *gsrpc.SubstrateAPI
	meta    Metadata
	limiter *rate.Limiter
}

var _ ChainApi = &Client{}

// NewClient returns an unconnected client for a chain. The endpoint defaults
// to the chain's registered url.
func NewClient(cfg *pararoute.ChainConfig, urlMaybe ...string) *Client {
	url := cfg.URL
	if len(urlMaybe) > 0 && urlMaybe[0] != "" {
		url = urlMaybe[0]
	}
	return &Client{
		cfg:     cfg,
		url:     url,
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 10),
	}
}

func (client *Client) Config() *pararoute.ChainConfig {
	return client.cfg
}

func (client *Client) Init(ctx context.Context) error {
	if client.api != nil {
		return nil
	}
	api, err := gsrpc.NewSubstrateAPI(client.url)
	if err != nil {
		return errors.Wrapf(err, "could not connect to %s", client.url)
	}
	meta, err := api.RPC.State.GetMetadataLatest()
	if err != nil {
		return errors.Wrapf(err, "could not fetch metadata from %s", client.url)
	}
	client.api = api
	client.meta = ParseMeta(meta, callNamesFor(client.cfg))
	logrus.WithFields(logrus.Fields{
		"chain": client.cfg.Chain,
		"url":   client.url,
		"calls": len(client.meta.Calls),
	}).Debug("connected chain api")
	return nil
}

func (client *Client) Disconnect() {
	if client.api == nil {
		return
	}
	if closer, ok := client.api.Client.(interface{ Close() }); ok {
		closer.Close()
	}
	client.api = nil
}

func (client *Client) Clone() ChainApi {
	return NewClient(client.cfg, client.url)
}

// Api exposes the underlying connection for callers needing raw access.
func (client *Client) Api() *gsrpc.SubstrateAPI {
	return client.api
}

// SetApi injects an existing connection, taking the place of Init.
func (client *Client) SetApi(api *gsrpc.SubstrateAPI, meta *types.Metadata) {
	client.api = api
	client.meta = ParseMeta(meta, callNamesFor(client.cfg))
}

func (client *Client) QueryBalance(ctx context.Context, address pararoute.Address) (pararoute.AmountBlockchain, error) {
	zero := pararoute.NewAmountBlockchainFromUint64(0)
	if err := client.limiter.Wait(ctx); err != nil {
		return zero, err
	}
	meta, err := client.api.RPC.State.GetMetadataLatest()
	if err != nil {
		return zero, pararoute.Errorf(pararoute.ErrDownstream, "could not fetch metadata: %v", err)
	}
	accountID, err := pararoute.DecodeAccountID(address)
	if err != nil {
		return zero, pararoute.Errorf(pararoute.ErrInvalidAddress, "address %s: %v", address, err)
	}
	key, err := types.CreateStorageKey(meta, "System", "Account", accountID)
	if err != nil {
		return zero, pararoute.Errorf(pararoute.ErrDownstream, "could not build storage key: %v", err)
	}
	var acctInfo AccountInfo
	ok, err := client.api.RPC.State.GetStorageLatest(key, &acctInfo)
	if err != nil {
		return zero, pararoute.Errorf(pararoute.ErrDownstream, "could not query balance: %v", err)
	}
	if !ok {
		// no balance entry means the account does not exist yet
		return zero, nil
	}
	return pararoute.AmountBlockchain(*acctInfo.Data.Free.Int), nil
}

// CalculateTransactionFee builds a representative extrinsic for the call and
// asks the node to price it. The call arguments are carried as a
// length-representative payload; substrate prices extrinsics by weight class
// and length, so this tracks the real fee closely without a full wire
// encoding of every argument type.
func (client *Client) CalculateTransactionFee(ctx context.Context, call pararoute.SerializedCall, sender pararoute.Address) (pararoute.AmountBlockchain, error) {
	zero := pararoute.NewAmountBlockchainFromUint64(0)
	if err := client.limiter.Wait(ctx); err != nil {
		return zero, err
	}
	payload, err := json.Marshal(call.Parameters)
	if err != nil {
		return zero, errors.Wrap(err, "could not serialize call parameters")
	}
	encoded, err := NewCall(&client.meta, call.CallIndexName(), payload)
	if err != nil {
		return zero, pararoute.Errorf(pararoute.ErrUnsupportedScenario, "chain %s: %v", client.cfg.Chain, err)
	}
	ext := types.NewExtrinsic(encoded)
	enc, err := codec.Encode(ext)
	if err != nil {
		return zero, errors.Wrap(err, "could not encode extrinsic")
	}

	var resp FeeEstimateResponse
	err = client.api.Client.Call(&resp, "payment_queryFeeDetails", codec.HexEncodeToString(enc))
	if err != nil {
		return zero, pararoute.Errorf(pararoute.ErrDownstream, "fee query on %s failed: %v", client.cfg.Chain, err)
	}
	total := new(big.Int)
	for _, part := range []string{resp.InclusionFee.BaseFee, resp.InclusionFee.LenFee, resp.InclusionFee.AdjustedWeightFee} {
		if part == "" {
			continue
		}
		var fee big.Int
		if _, ok := fee.SetString(part, 0); !ok {
			return zero, errors.Errorf("invalid fee component: %s", part)
		}
		total.Add(total, &fee)
	}
	return pararoute.AmountBlockchain(*total), nil
}
