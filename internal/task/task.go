// Package task — результат асинхронной операции с тремя состояниями:
// Pending, Ok(T), Err(error). Задача завершается ровно один раз.
package task

import (
	"context"
	"errors"
	"sync"
)

// ErrPending — результат ещё не готов.
var ErrPending = errors.New("task is pending")

// State — состояние задачи.
type State int

const (
	Pending State = iota
	Ok
	Err
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Ok:
		return "ok"
	case Err:
		return "err"
	default:
		return "unknown"
	}
}

// Task — результат операции. Нулевое значение не используется: задачи
// создаются через Go, Resolved, Rejected.
type Task[T any] struct {
	done chan struct{}
	once sync.Once

	val T
	err error
}

func newTask[T any]() *Task[T] {
	return &Task[T]{done: make(chan struct{})}
}

// Go запускает fn в отдельной горутине. Паника внутри fn превращается в Err.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Task[T] {
	t := newTask[T]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				t.settle(zero, &PanicError{Value: r})
			}
		}()
		v, err := fn(ctx)
		t.settle(v, err)
	}()

	return t
}

// Resolved возвращает уже завершённую успешную задачу.
func Resolved[T any](v T) *Task[T] {
	t := newTask[T]()
	t.settle(v, nil)
	return t
}

// Rejected возвращает уже завершённую задачу с ошибкой.
func Rejected[T any](err error) *Task[T] {
	t := newTask[T]()
	var zero T
	t.settle(zero, err)
	return t
}

func (t *Task[T]) settle(v T, err error) {
	t.once.Do(func() {
		t.val, t.err = v, err
		close(t.done)
	})
}

// Done закрывается по завершении задачи.
func (t *Task[T]) Done() <-chan struct{} { return t.done }

// State — текущее состояние без блокировки.
func (t *Task[T]) State() State {
	select {
	case <-t.done:
		if t.err != nil {
			return Err
		}
		return Ok
	default:
		return Pending
	}
}

// Result возвращает результат без блокировки; ErrPending, если задача не завершена.
func (t *Task[T]) Result() (T, error) {
	select {
	case <-t.done:
		return t.val, t.err
	default:
		var zero T
		return zero, ErrPending
	}
}

// Wait ждёт завершения задачи или отмены ctx. Отмена ctx не отменяет саму задачу.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.val, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Map преобразует успешный результат; ошибка проходит без изменений.
func Map[T, U any](t *Task[T], fn func(T) U) *Task[U] {
	out := newTask[U]()
	go func() {
		<-t.done
		if t.err != nil {
			var zero U
			out.settle(zero, t.err)
			return
		}
		out.settle(fn(t.val), nil)
	}()

	return out
}

// PanicError — паника внутри задачи.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string { return "task panicked" }
