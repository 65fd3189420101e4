package quest

import (
	"github.com/hsiuhsiu/quest-go/internal/bridge"
	"github.com/hsiuhsiu/quest-go/pkg/quest/internal/backend"
)

// nativeBridge guards every QuEST call made by this package.
var nativeBridge = bridge.New(backend.Slot())

func call(op string, fn func() error) error {
	return remapError(op, nativeBridge.Do(fn))
}

func callValue[T any](op string, fn func() (T, error)) (T, error) {
	v, err := bridge.Value(nativeBridge, fn)
	return v, remapError(op, err)
}
