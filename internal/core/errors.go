package core

import "errors"

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrEmptyBrief    = errors.New("campaign brief is empty")
)
