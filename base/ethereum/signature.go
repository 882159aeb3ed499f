package ethereum

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ValidateMsgSignature checks a personal_sign signature of message against signer
func ValidateMsgSignature(message []byte, signature, signer string) (bool, error) {
	recovered, err := RecoverMsgSigner(message, signature)
	if err != nil {
		return false, err
	}
	return recovered == common.HexToAddress(signer), nil
}

// RecoverMsgSigner returns the address that produced a personal_sign signature
func RecoverMsgSigner(message []byte, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return common.Address{}, err
	}
	return ecRecover(accounts.TextHash(message), sig)
}

func ecRecover(hash []byte, signature []byte) (common.Address, error) {
	if len(signature) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes long", crypto.SignatureLength)
	}
	sig := make([]byte, len(signature))
	copy(sig, signature)

	// wallets return v as 0/1 or 27/28
	v := sig[crypto.RecoveryIDOffset]
	if v >= 27 {
		v -= 27
	}
	if v != 0 && v != 1 {
		return common.Address{}, fmt.Errorf("invalid signature recovery id %d", sig[crypto.RecoveryIDOffset])
	}
	sig[crypto.RecoveryIDOffset] = v

	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*pub), nil
}
