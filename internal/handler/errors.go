// SPDX-License-Identifier: Apache-2.0

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address is
// configured. The server cannot start without a handler.
var errNoHandlersAreCreated = errors.New("no handlers are created")
