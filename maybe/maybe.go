/*
Package maybe implements an optional value, i.e. a value which may be absent.

Absence is expressed by an explicit tag, never by a nil or zero sentinel.
Therefore the zero value of any type T is a legitimate payload:

    m := maybe.Just(0)      // present, holding 0
    n := maybe.Nothing[int]()  // absent

Clients may pattern-match on a Maybe:

    var v int
    switch m := x.Match(); m {
    case m.Just(&v):
        fmt.Printf("got %d", v)
    case m.Nothing():
        fmt.Println("nothing")
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is either Just(x) or Nothing. The zero value is Nothing.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, just: true}
}

// Nothing returns an absent value of type T.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Of converts the result of a comma-ok expression into a Maybe:
//
//     v, ok := m[key]
//     x := maybe.Of(v, ok)
//
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

// Get returns the wrapped value and true, or the zero value of T and false.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

func (m Maybe[T]) IsJust() bool {
	return m.just
}

func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// WithDefault returns the wrapped value, or def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// Map applies f to a present value. Nothing stays Nothing.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.just {
		return Just(f(m.value))
	}
	return m
}

// Match returns a matcher to be used in a switch statement.
func (m Maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: &m}
}

// AndThen chains a computation which may fail.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map is the free-function variant of Maybe.Map, changing the type of the payload.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher is returned by Maybe.Match. Exactly one of its methods returns the matcher
// itself, the other one returns nil.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// matcher holds a pointer, making it comparable even for non-comparable T.
type matcher[T any] struct {
	m *Maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.just {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}
