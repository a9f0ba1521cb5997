package client

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	pararoute "github.com/pararoute/pararoute"
)

// Call names needed per capability. Only these are kept from the chain's
// metadata, which trims the massive runtime description down to what transfer
// construction can dispatch.
var capabilityCalls = map[pararoute.Capability][]string{
	pararoute.CapTokenPallet: {
		"XTokens.transfer",
		"XTokens.transfer_multiasset",
		"XTokens.transfer_multiassets",
	},
	pararoute.CapGenericXCM: {
		"PolkadotXcm.limited_teleport_assets",
		"PolkadotXcm.limited_reserve_transfer_assets",
		"PolkadotXcm.reserve_transfer_assets",
		"PolkadotXcm.reserve_withdraw_assets",
		"PolkadotXcm.transfer_assets",
	},
	pararoute.CapRelayTransfer: {
		"XTransfer.transfer",
	},
}

var relayCalls = []string{
	"XcmPallet.reserve_transfer_assets",
	"XcmPallet.limited_reserve_transfer_assets",
	"XcmPallet.limited_teleport_assets",
}

type CallMeta struct {
	Name         string `json:"name"`
	SectionIndex uint8  `json:"section"`
	MethodIndex  uint8  `json:"method"`
}
type Metadata struct {
	Calls []*CallMeta `json:"calls"`
}

func (m *Metadata) FindCallIndex(name string) (types.CallIndex, error) {
	for _, call := range m.Calls {
		if call.Name == name {
			return types.CallIndex{
				SectionIndex: call.SectionIndex,
				MethodIndex:  call.MethodIndex,
			}, nil
		}
	}
	return types.CallIndex{}, fmt.Errorf("unsupported substrate method: %s", name)
}

// callNamesFor lists the call names a chain's client needs, derived from its
// configured capabilities. Relay chains dispatch through XcmPallet.
func callNamesFor(cfg *pararoute.ChainConfig) []string {
	if cfg.Chain.IsRelay() {
		return relayCalls
	}
	var names []string
	for _, capability := range cfg.Capabilities {
		names = append(names, capabilityCalls[capability]...)
	}
	return names
}

// ParseMeta keeps only the call indexes this chain can dispatch. Calls absent
// from the runtime are skipped rather than failing the whole connection, as
// runtimes add and remove XCM sections between upgrades.
func ParseMeta(meta *types.Metadata, names []string) Metadata {
	newMeta := Metadata{}
	for _, name := range names {
		call, err := meta.FindCallIndex(name)
		if err != nil {
			continue
		}
		newMeta.Calls = append(newMeta.Calls, &CallMeta{
			Name:         name,
			SectionIndex: call.SectionIndex,
			MethodIndex:  call.MethodIndex,
		})
	}
	return newMeta
}

// NewCall encodes a call against the trimmed metadata.
// Replaces "github.com/centrifuge/go-substrate-rpc-client/v4/types".NewCall
func NewCall(m *Metadata, call string, args ...interface{}) (types.Call, error) {
	c, err := m.FindCallIndex(call)
	if err != nil {
		return types.Call{}, err
	}

	var a []byte
	for _, arg := range args {
		e, err := codec.Encode(arg)
		if err != nil {
			return types.Call{}, err
		}
		a = append(a, e...)
	}

	return types.Call{CallIndex: c, Args: a}, nil
}
