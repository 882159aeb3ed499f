package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ERC721TokenABI covers the read-only subset of ERC721 + ERC721Enumerable + ERC721Metadata
var ERC721TokenABI abi.ABI

var erc721ABI = `[
{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"type":"string","name":""}]},
{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"type":"string","name":""}]},
{"type":"function","name":"tokenURI","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"string","name":""}]},
{"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address","name":""}]},
{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"type":"address","name":"owner"}],"outputs":[{"type":"uint256","name":""}]},
{"type":"function","name":"tokenOfOwnerByIndex","stateMutability":"view","inputs":[{"type":"address","name":"owner"},{"type":"uint256","name":"index"}],"outputs":[{"type":"uint256","name":""}]},
{"type":"function","name":"supportsInterface","stateMutability":"view","inputs":[{"type":"bytes4","name":"interfaceId"}],"outputs":[{"type":"bool","name":""}]}
]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(erc721ABI))
	if err != nil {
		panic("Failed to parse erc721 abi")
	}
	ERC721TokenABI = _abi
}
