package settlement

import "errors"

var ErrNoOrders = errors.New("no orders")
