package transport

import (
	"sync"
	"sync/atomic"

	"github.com/wfproxy/wfproxy-go/errors"
)

type pipe struct {
	rx        chan []byte
	rxCounter *uint64

	tx        chan<- []byte
	txCounter *uint64

	once           sync.Once
	closedCh       chan struct{}
	remoteClosedCh <-chan struct{}
}

func (p *pipe) Read() ([]byte, error) {
	select {
	case <-p.remoteClosedCh:
		return nil, EOF
	case <-p.closedCh:
		return nil, ErrAlreadyClosed
	case msg := <-p.rx:
		atomic.AddUint64(p.rxCounter, uint64(len(msg)))
		return msg, nil
	}
}

func (p *pipe) Write(message []byte) error {
	select {
	case <-p.remoteClosedCh:
		return ErrAlreadyClosed
	case <-p.closedCh:
		return ErrAlreadyClosed
	case p.tx <- message:
		atomic.AddUint64(p.txCounter, uint64(len(message)))
		return nil
	}
}

func (p *pipe) RxBytesCounterValue() uint64 {
	return atomic.LoadUint64(p.rxCounter)
}

func (p *pipe) TxBytesCounterValue() uint64 {
	return atomic.LoadUint64(p.txCounter)
}

func (p *pipe) Close() error {
	p.once.Do(func() {
		close(p.closedCh)
	})
	return nil
}

// Pipeは、インメモリで接続されたトランスポートの組を返却します。
//
// 一方へ書き込んだフレームを他方から読み出せます。テストでの使用を想定しています。
func Pipe() (ReadWriter, ReadWriter) {
	ch1 := make(chan []byte)
	ch2 := make(chan []byte)

	chClosed1 := make(chan struct{})
	chClosed2 := make(chan struct{})

	return &pipe{
			rx: ch2,
			tx: ch1,

			txCounter: func(u uint64) *uint64 { return &u }(0),
			rxCounter: func(u uint64) *uint64 { return &u }(0),

			once:           sync.Once{},
			closedCh:       chClosed1,
			remoteClosedCh: chClosed2,
		}, &pipe{
			rx: ch1,
			tx: ch2,

			txCounter: func(u uint64) *uint64 { return &u }(0),
			rxCounter: func(u uint64) *uint64 { return &u }(0),

			once:           sync.Once{},
			closedCh:       chClosed2,
			remoteClosedCh: chClosed1,
		}
}

// Copyは、srcから読み出したフレームをdstへ書き込み続けます。
//
// どちらかのトランスポートが閉じられた場合はnilを返却します。
func Copy(dst ReadWriter, src ReadWriter) error {
	for {
		msg, err := src.Read()
		if err != nil {
			if errors.Is(err, EOF) || errors.Is(err, ErrAlreadyClosed) {
				return nil
			}
			return err
		}
		if err := dst.Write(msg); err != nil {
			if errors.Is(err, ErrAlreadyClosed) {
				return nil
			}
			return err
		}
	}
}
