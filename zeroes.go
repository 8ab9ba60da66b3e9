// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"reflect"
	"sync"
)

// zeroCache contains zero-values for objects that got hit during codec
// operations. This is a global sync map, meaning it will be slow to access,
// but encoding/decoding zero values should not happen in production code,
// it's more of a sanity thing to handle weird corner-cases without blowing
// up (e.g. a nil pointer field in a hand-built test fixture).
var zeroCache = new(sync.Map)

// zeroValue retrieves a previously created (or creates one on the fly) zero
// value for an object, to support operating on half-initialized structs.
func zeroValue[T newableObject[U], U any]() T {
	kind := reflect.TypeFor[U]()

	if val, ok := zeroCache.Load(kind); ok {
		return val.(T)
	}
	val := T(new(U))
	zeroCache.Store(kind, val)
	return val
}
