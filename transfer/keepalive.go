package transfer

import (
	"context"
	"fmt"

	pararoute "github.com/pararoute/pararoute"
	"github.com/pararoute/pararoute/client"
	"github.com/pararoute/pararoute/registry"
	"github.com/sirupsen/logrus"
)

// KeepAliveResult reports what the keep-alive projection did. A skipped check
// is not a failure; Reason says why it did not run.
type KeepAliveResult struct {
	Skipped bool
	Reason  string
}

func skippedKeepAlive(reason string) KeepAliveResult {
	return KeepAliveResult{Skipped: true, Reason: reason}
}

// CheckKeepAlive projects the recipient's balance after the transfer and
// fails when the account would end up below the destination's existential
// deposit. The check only runs for allowlisted destinations and for
// registry-resolved currencies; anything else is reported as skipped.
func CheckKeepAlive(
	ctx context.Context,
	destAPI client.ChainApi,
	destCfg *pararoute.ChainConfig,
	recipient pararoute.Recipient,
	amount pararoute.AmountBlockchain,
	overridden bool,
) (KeepAliveResult, error) {
	if destAPI == nil {
		return skippedKeepAlive("no destination api provided"), nil
	}
	if destCfg == nil {
		return skippedKeepAlive("destination is a raw multi-location"), nil
	}
	if !destCfg.KeepAliveCheck {
		return skippedKeepAlive(fmt.Sprintf("destination %s is not on the deposit-check allowlist", destCfg.Chain)), nil
	}
	if overridden {
		return skippedKeepAlive("currency resolution was bypassed"), nil
	}
	if recipient.IsLocation() {
		return skippedKeepAlive("recipient is a raw multi-location"), nil
	}

	ed, err := registry.GetExistentialDeposit(destCfg.Chain)
	if err != nil {
		return skippedKeepAlive("destination has no existential deposit record"), nil
	}
	if err := destAPI.Init(ctx); err != nil {
		return KeepAliveResult{}, err
	}
	balance, err := destAPI.QueryBalance(ctx, recipient.Address)
	if err != nil {
		return KeepAliveResult{}, err
	}
	projected := balance.Add(&amount)
	logrus.WithFields(logrus.Fields{
		"chain":     destCfg.Chain,
		"balance":   balance.String(),
		"amount":    amount.String(),
		"projected": projected.String(),
		"ed":        ed.String(),
	}).Debug("keep-alive projection")
	if projected.Cmp(&ed) < 0 {
		return KeepAliveResult{}, pararoute.Errorf(pararoute.ErrKeepAlive,
			"projected balance %s on %s is below the existential deposit %s, the account would be reaped",
			projected.String(), destCfg.Chain, ed.String())
	}
	return KeepAliveResult{}, nil
}
