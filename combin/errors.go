// SPDX-License-Identifier: MIT

package combin

import "errors"

// ErrInvalidSubset is returned by Rank when the input is not a strictly
// ascending element list, the only shape a subset encoding can have.
var ErrInvalidSubset = errors.New("combin: subset elements must be strictly ascending")
