// SPDX-License-Identifier: EPL-2.0

package tempo

import "errors"

// ErrIndeterminate is returned when fewer than two beats can be found.
// It means "no BPM available", not a failure of the clip.
var ErrIndeterminate = errors.New("tempo could not be determined")
