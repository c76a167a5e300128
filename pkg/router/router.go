package router

import (
	"log/slog"
	"sync"
)

// Fan copies every value from its input channel to all subscribers.
// Subscribers are identified by name so double subscriptions fail loudly.
type Fan[T any] struct {
	name    string
	mu      sync.Mutex
	input   <-chan T
	outputs map[string]chan<- T
}

func NewFan[T any](name string, input <-chan T) *Fan[T] {
	return &Fan[T]{
		name:    name,
		input:   input,
		outputs: make(map[string](chan<- T)),
	}
}

func (f *Fan[T]) Subscribe(client string) <-chan T {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.outputs[client]; ok {
		panic("client already subscribed: " + client)
	}
	slog.Debug("subscribing to fan", "fan", f.name, "client", client)
	c := make(chan T, 1)
	f.outputs[client] = c
	return c
}

func (f *Fan[T]) Unsubscribe(client string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.outputs[client]; !ok {
		panic("client not subscribed: " + client)
	}
	slog.Debug("unsubscribing from fan", "fan", f.name, "client", client)
	close(f.outputs[client])
	delete(f.outputs, client)
}

func (f *Fan[T]) Run() error {
	for v := range f.input {
		f.mu.Lock()
		for _, ch := range f.outputs {
			ch <- v
		}
		f.mu.Unlock()
	}
	return nil
}
