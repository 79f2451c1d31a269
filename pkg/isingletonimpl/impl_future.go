/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isingletonimpl

func newCloseFuture() *closeFuture {
	return &closeFuture{done: make(chan struct{})}
}

// resolve must be called once
func (f *closeFuture) resolve(err error) {
	f.err = err
	close(f.done)
}

func (f *closeFuture) Done() <-chan struct{} {
	return f.done
}

func (f *closeFuture) wait() error {
	<-f.done
	return f.err
}
