package pararoute_test

import (
	. "github.com/pararoute/pararoute"
)

// Alice's well-known development account.
const aliceSS58 = Address("5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY")
const aliceHex = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"

func (s *PararouteTestSuite) TestIsEVMAddress() {
	require := s.Require()
	require.True(IsEVMAddress("0x98891e5FD24Ef33A488A47101F65D212Ff6E650E"))
	require.False(IsEVMAddress(aliceSS58))
	require.False(IsEVMAddress("0x1234"))
}

func (s *PararouteTestSuite) TestDecodeAccountID() {
	require := s.Require()
	accountID, err := DecodeAccountID(aliceSS58)
	require.NoError(err)
	require.Len(accountID, 32)

	hexID, err := AccountIDHex(aliceSS58)
	require.NoError(err)
	require.Equal(aliceHex, hexID)
}

func (s *PararouteTestSuite) TestDecodeAccountIDRejectsGarbage() {
	require := s.Require()
	_, err := DecodeAccountID("not-an-address")
	require.Error(err)
}

func (s *PararouteTestSuite) TestEncodeSS58RoundTrip() {
	require := s.Require()
	accountID, err := DecodeAccountID(aliceSS58)
	require.NoError(err)

	// generic substrate prefix reproduces the original address
	encoded, err := EncodeSS58(accountID, 42)
	require.NoError(err)
	require.Equal(aliceSS58, encoded)

	_, err = EncodeSS58([]byte{1, 2, 3}, 42)
	require.Error(err)
}

func (s *PararouteTestSuite) TestValidateAddress() {
	require := s.Require()
	require.NoError(ValidateAddress(aliceSS58, false))
	require.NoError(ValidateAddress("0x98891e5FD24Ef33A488A47101F65D212Ff6E650E", true))

	err := ValidateAddress(aliceSS58, true)
	require.Error(err)
	require.True(IsInvalidAddress(err))

	err = ValidateAddress("junk", false)
	require.Error(err)
	require.True(IsInvalidAddress(err))
}

func (s *PararouteTestSuite) TestDestinationForms() {
	require := s.Require()
	byChain := NewDestinationChain(Acala)
	require.False(byChain.IsLocation())
	require.Equal("Acala", byChain.String())

	byLocation := NewDestinationLocation(RelayLocation())
	require.True(byLocation.IsLocation())
}
