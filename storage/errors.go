package storage

import "errors"

var (
	ErrNotAnIndex  = errors.New("not a fieldstore index")
	ErrIndexExists = errors.New("index already exists")
)
