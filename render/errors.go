// SPDX-License-Identifier: EPL-2.0

package render

import "errors"

var ErrRender = errors.New("render failed")
