package wire

import (
	"sync/atomic"
)

// IDGeneratorは、リクエストIDのジェネレータです。
//
// 発番したIDは単調増加し、同一ジェネレータ内で再利用されることはありません。
type IDGenerator struct {
	currentValue int64
}

// NewIDGeneratorは、ジェネレータを返却します。
//
// initialには、 `Next` で最初に返却する値を指定します。
func NewIDGenerator(initial int64) *IDGenerator {
	return &IDGenerator{
		currentValue: initial,
	}
}

// Nextは、次の値を返却します。
func (g *IDGenerator) Next() int64 {
	return atomic.AddInt64(&g.currentValue, 1) - 1
}

func newRequestIDGeneratorForClient() IDGenerator {
	return IDGenerator{currentValue: 1}
}
