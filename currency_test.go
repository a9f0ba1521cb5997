package pararoute_test

import (
	. "github.com/pararoute/pararoute"
)

func (s *PararouteTestSuite) TestCurrencyValidateEmpty() {
	require := s.Require()
	err := CurrencyInput{}.Validate(-1)
	require.Error(err)
	require.True(IsInvalidCurrency(err))
}

func (s *PararouteTestSuite) TestCurrencyFormsAreExclusive() {
	require := s.Require()
	currency := CurrencyInput{Symbol: "DOT", ID: "5"}
	err := currency.Validate(-1)
	require.Error(err)
	require.True(IsInvalidCurrency(err))
}

func (s *PararouteTestSuite) TestCurrencySymbol() {
	require := s.Require()
	currency := NewCurrencySymbol("DOT")
	require.NoError(currency.Validate(-1))
	require.False(currency.IsOverride())
	require.False(currency.IsID())
	require.Equal("DOT", currency.String())
}

func (s *PararouteTestSuite) TestCurrencyNumericIDWithinSafeRange() {
	require := s.Require()
	currency := NewCurrencyID(1984)
	require.NoError(currency.Validate(-1))
	require.True(currency.IsID())
}

func (s *PararouteTestSuite) TestCurrencyNumericIDTooLarge() {
	require := s.Require()
	// 2^53 is one past the largest losslessly representable id
	currency := NewCurrencyID(9007199254740992)
	err := currency.Validate(-1)
	require.Error(err)
	require.True(IsInvalidCurrency(err))

	// string ids carry no range restriction
	byString := NewCurrencyIDString("340282366920938463463374607431768211455")
	require.NoError(byString.Validate(-1))
}

func (s *PararouteTestSuite) TestCurrencyLocationOverride() {
	require := s.Require()
	currency := NewCurrencyLocation(RelayLocation())
	require.NoError(currency.Validate(-1))
	require.True(currency.IsOverride())

	overridden := currency.Overridden()
	require.NotNil(overridden)
	require.NotNil(overridden.Location)
	require.Nil(overridden.MultiAssets)
}

func (s *PararouteTestSuite) TestCurrencyMultiAssetsFeeIndex() {
	require := s.Require()
	amount := NewAmountBlockchainFromUint64(1000)
	two := []MultiAssetWithFee{
		{MultiAsset: NewMultiAsset(V3, amount, RelayLocation())},
		{MultiAsset: NewMultiAsset(V3, amount, MultiLocation{})},
	}

	currency := NewCurrencyMultiAssets(two)
	require.Error(currency.Validate(-1))
	require.Error(currency.Validate(2))
	require.NoError(currency.Validate(0))
	require.NoError(currency.Validate(1))
}

func (s *PararouteTestSuite) TestCurrencySingleMultiAssetRejectsFeeIndex() {
	require := s.Require()
	one := []MultiAssetWithFee{
		{MultiAsset: NewMultiAsset(V3, NewAmountBlockchainFromUint64(1), RelayLocation())},
	}

	currency := NewCurrencyMultiAssets(one)
	require.NoError(currency.Validate(-1))
	err := currency.Validate(0)
	require.Error(err)
	require.True(IsInvalidCurrency(err))
}
