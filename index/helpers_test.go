package index_test

import (
	"errors"

	"github.com/ministore/fieldstore/index"
)

func asError(err error, target **index.Error) bool {
	return errors.As(err, target)
}
