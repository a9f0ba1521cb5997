package pararoute_test

import (
	"encoding/json"

	. "github.com/pararoute/pararoute"
)

func (s *PararouteTestSuite) marshal(v interface{}) string {
	data, err := json.Marshal(v)
	s.Require().NoError(err)
	return string(data)
}

func (s *PararouteTestSuite) TestInteriorHere() {
	require := s.Require()
	loc := MultiLocation{Parents: ParentsOne, Interior: Here()}
	require.Equal(`{"parents":1,"interior":{"Here":null}}`, s.marshal(loc))

	var parsed MultiLocation
	require.NoError(json.Unmarshal([]byte(s.marshal(loc)), &parsed))
	require.True(parsed.Interior.IsHere())
	require.Equal(ParentsOne, parsed.Parents)
}

func (s *PararouteTestSuite) TestInteriorX1SingleJunction() {
	require := s.Require()
	interior := X(ParachainJunction(2000))
	require.Equal(`{"X1":{"Parachain":2000}}`, s.marshal(interior))

	var parsed Interior
	require.NoError(json.Unmarshal([]byte(s.marshal(interior)), &parsed))
	require.Len(parsed.Junctions, 1)
	require.NotNil(parsed.Junctions[0].Parachain)
	require.EqualValues(2000, *parsed.Junctions[0].Parachain)
}

func (s *PararouteTestSuite) TestInteriorX2Array() {
	require := s.Require()
	interior := X(PalletInstanceJunction(50), GeneralIndexJunction("1984"))
	require.Equal(`{"X2":[{"PalletInstance":50},{"GeneralIndex":"1984"}]}`, s.marshal(interior))

	var parsed Interior
	require.NoError(json.Unmarshal([]byte(s.marshal(interior)), &parsed))
	require.Len(parsed.Junctions, 2)
	require.NotNil(parsed.Junctions[1].GeneralIndex)
	require.Equal("1984", *parsed.Junctions[1].GeneralIndex)
}

func (s *PararouteTestSuite) TestAccountJunctions() {
	require := s.Require()
	id32 := AccountID32Junction("0xdeadbeef")
	require.Equal(`{"AccountId32":{"id":"0xdeadbeef"}}`, s.marshal(id32))

	key20 := AccountKey20Junction("0x98891e5FD24Ef33A488A47101F65D212Ff6E650E")
	require.Equal(`{"AccountKey20":{"key":"0x98891e5FD24Ef33A488A47101F65D212Ff6E650E"}}`, s.marshal(key20))
}

func (s *PararouteTestSuite) TestGlobalConsensusNetwork() {
	require := s.Require()
	j := GlobalConsensusJunction("Kusama")
	require.Equal(`{"GlobalConsensus":"Kusama"}`, s.marshal(j))

	var parsed Junction
	require.NoError(json.Unmarshal([]byte(s.marshal(j)), &parsed))
	require.NotNil(parsed.GlobalConsensus)
	require.Equal("Kusama", parsed.GlobalConsensus.Network)
}

func (s *PararouteTestSuite) TestGlobalConsensusEthereum() {
	require := s.Require()
	j := GlobalConsensusEthereumJunction(1)
	require.Equal(`{"GlobalConsensus":{"Ethereum":{"chain_id":1}}}`, s.marshal(j))

	var parsed Junction
	require.NoError(json.Unmarshal([]byte(s.marshal(j)), &parsed))
	require.NotNil(parsed.GlobalConsensus)
	require.NotNil(parsed.GlobalConsensus.EthereumChainID)
	require.EqualValues(1, *parsed.GlobalConsensus.EthereumChainID)
}

func (s *PararouteTestSuite) TestVersionedWrapping() {
	require := s.Require()
	wrapped := NewVersioned(V3, RelayLocation())
	require.Equal(`{"V3":{"parents":1,"interior":{"Here":null}}}`, s.marshal(wrapped))
}

func (s *PararouteTestSuite) TestMultiAssetConcreteByVersion() {
	require := s.Require()
	amount := NewAmountBlockchainFromUint64(1000)

	v3 := NewMultiAsset(V3, amount, RelayLocation())
	require.Equal(
		`{"fun":{"Fungible":"1000"},"id":{"Concrete":{"parents":1,"interior":{"Here":null}}}}`,
		s.marshal(v3))

	v4 := NewMultiAsset(V4, amount, RelayLocation())
	require.Equal(
		`{"fun":{"Fungible":"1000"},"id":{"parents":1,"interior":{"Here":null}}}`,
		s.marshal(v4))
}

func (s *PararouteTestSuite) TestRelayLocation() {
	require := s.Require()
	loc := RelayLocation()
	require.Equal(ParentsOne, loc.Parents)
	require.True(loc.Interior.IsHere())
}
