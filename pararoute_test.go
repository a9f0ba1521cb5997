package pararoute_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PararouteTestSuite struct {
	suite.Suite
	Ctx context.Context
}

func (s *PararouteTestSuite) SetupTest() {
	s.Ctx = context.Background()
}

func TestPararoute(t *testing.T) {
	suite.Run(t, new(PararouteTestSuite))
}
