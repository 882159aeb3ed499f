package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrUnsupportedSchema   = errors.New("Unsupported schema")
	ErrInvalidJsonFormat   = errors.New("invalid JSON format")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrUnsupportedChain    = errors.New("unsupported chain")
	ErrUnsupportedMedia    = errors.New("unsupported media type")

	// chain / metadata / scan
	ErrReadFailure       = errors.New("chain read failed")
	ErrResolutionFailure = errors.New("metadata resolution failed")
	ErrScanFailure       = errors.New("Failed to fetch NFTs")

	// request error
	ErrInvalidAddress     = errors.New("Invalid address")
	ErrInvalidSignature   = errors.New("Invalid signature")
	ErrUnauthorized       = errors.New("Unauthorized")
	ErrWalletNotConnected = errors.New("Please connect your wallet")
)
