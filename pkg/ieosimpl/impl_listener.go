/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ieosimpl

import (
	"github.com/voedger/clustersingleton/pkg/ieos"
)

// enqueue never blocks, changes are delivered by the listener goroutine in order
func (l *listener[E]) enqueue(change ieos.OwnershipChange[E]) {
	l.mu.Lock()
	l.queue = append(l.queue, change)
	l.mu.Unlock()
	select {
	case l.pending <- struct{}{}:
	default:
	}
}

func (l *listener[E]) run() {
	defer l.eos.wg.Done()
	for {
		select {
		case <-l.done:
			return
		case <-l.pending:
		}
		for {
			change, ok := l.next()
			if !ok {
				break
			}
			select {
			case <-l.done:
				return
			default:
			}
			l.target.OwnershipChanged(change)
		}
	}
}

func (l *listener[E]) next() (change ieos.OwnershipChange[E], ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return change, false
	}
	change = l.queue[0]
	l.queue[0] = ieos.OwnershipChange[E]{}
	l.queue = l.queue[1:]
	return change, true
}

// Close stops the delivery, the change being delivered at the moment is not interrupted
func (l *listener[E]) Close() {
	l.once.Do(func() {
		l.eos.removeListener(l)
		close(l.done)
	})
}
