// SPDX-License-Identifier: MIT

package generator

import "errors"

// ErrTooFewVertices indicates that Generate was asked for fewer than one vertex.
var ErrTooFewVertices = errors.New("generator: parameter too small")

// ErrUnknownMode indicates that ParseMode received an unsupported mode name.
var ErrUnknownMode = errors.New("generator: unknown mode")
