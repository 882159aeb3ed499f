package asset

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/rentableft/domain"
)

func TestMakeId(t *testing.T) {
	req := require.New(t)
	contract := domain.Address("0x76BE3b62873462d2142405439777e971754E8E77")

	req.Equal("0x76BE3b62873462d2142405439777e971754E8E77-7", MakeId(contract, big.NewInt(7)))
	req.Equal(MakeId(contract, big.NewInt(7)), MakeId(contract, new(big.Int).SetInt64(7)))
	req.NotEqual(MakeId(contract, big.NewInt(7)), MakeId(contract, big.NewInt(70)))
}
