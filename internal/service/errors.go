package service

import "errors"

var (
	ErrStoreBatch = errors.New("failed to store tweets batch")
	ErrSeedCache  = errors.New("failed to seed tweet id cache")
)
