package encode

import "errors"

var ErrBadType = errors.New("bad node type")
