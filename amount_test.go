package pararoute_test

import (
	. "github.com/pararoute/pararoute"
	"github.com/shopspring/decimal"
)

func (s *PararouteTestSuite) TestNewAmountBlockchainFromUint64() {
	require := s.Require()
	amount := NewAmountBlockchainFromUint64(123)
	require.NotNil(amount)
	require.Equal(amount.Uint64(), uint64(123))
	require.Equal(amount.String(), "123")
}

func (s *PararouteTestSuite) TestAmountHumanReadable() {
	require := s.Require()
	amountDec, _ := decimal.NewFromString("10.3")
	amount := AmountHumanReadable(amountDec)
	require.NotNil(amount)
	require.Equal(amount.String(), "10.3")
}

func (s *PararouteTestSuite) TestNewAmountHumanReadableFromStr() {
	require := s.Require()
	amount, err := NewAmountHumanReadableFromStr("10.3")
	require.NoError(err)
	require.Equal(amount.String(), "10.3")

	amount, err = NewAmountHumanReadableFromStr("0")
	require.NoError(err)
	require.Equal(amount.String(), "0")

	_, err = NewAmountHumanReadableFromStr("")
	require.Error(err)

	_, err = NewAmountHumanReadableFromStr("invalid")
	require.Error(err)
}

func (s *PararouteTestSuite) TestNewBlockchainAmountStr() {
	require := s.Require()
	amount := NewAmountBlockchainFromStr("10")
	require.EqualValues(amount.Uint64(), 10)

	amount = NewAmountBlockchainFromStr("10.1")
	require.EqualValues(amount.Uint64(), 0)

	amount = NewAmountBlockchainFromStr("0x10")
	require.EqualValues(amount.Uint64(), 16)
}

func (s *PararouteTestSuite) TestAmountArithmetic() {
	require := s.Require()
	a := NewAmountBlockchainFromUint64(300)
	b := NewAmountBlockchainFromUint64(200)

	sum := a.Add(&b)
	require.Equal(sum.String(), "500")

	diff := a.Sub(&b)
	require.Equal(diff.String(), "100")

	require.Equal(a.Cmp(&b), 1)
	require.Equal(b.Cmp(&a), -1)

	z := NewAmountBlockchainFromUint64(0)
	require.True(z.IsZero())
	require.False(a.IsZero())
}

func (s *PararouteTestSuite) TestConversions() {
	require := s.Require()
	planck := NewAmountBlockchainFromStr("10000000000")
	require.Equal(planck.ToHuman(10).String(), "1")

	human, err := NewAmountHumanReadableFromStr("2.5")
	require.NoError(err)
	require.Equal(human.ToBlockchain(10).String(), "25000000000")
}

func (s *PararouteTestSuite) TestAmountBlockchainJSON() {
	require := s.Require()
	amount := NewAmountBlockchainFromStr("340282366920938463463374607431768211455")
	data, err := amount.MarshalJSON()
	require.NoError(err)
	require.Equal(string(data), `"340282366920938463463374607431768211455"`)

	var parsed AmountBlockchain
	require.NoError(parsed.UnmarshalJSON(data))
	require.Equal(parsed.String(), amount.String())
}
