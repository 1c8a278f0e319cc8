// Package password hashes and verifies user passwords with bcrypt.
//
// bcrypt is CPU bound, so every call is executed on a bounded pool of
// workers instead of the calling goroutine. The caller only waits for the
// result and can give up early through its context.
package password

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// MaxLength is the longest password bcrypt accepts, in bytes.
const MaxLength = 72

var (
	ErrEmptyPassword   = errors.New("password must not be empty")
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
	ErrInvalidCost     = errors.New("bcrypt cost out of range")
	ErrMalformedHash   = errors.New("malformed password hash")
)

// Hasher hashes and verifies passwords on a bounded worker pool.
type Hasher struct {
	cost    int
	workers int64
	sem     *semaphore.Weighted
}

// Opt configures a Hasher.
type Opt func(*Hasher)

// WithCost sets the bcrypt work factor.
func WithCost(cost int) Opt {
	return func(h *Hasher) {
		h.cost = cost
	}
}

// WithWorkers sets how many hashes may run at the same time.
func WithWorkers(n int) Opt {
	return func(h *Hasher) {
		if n > 0 {
			h.workers = int64(n)
		}
	}
}

// New creates a Hasher. Defaults: bcrypt.DefaultCost, one worker per CPU.
func New(opts ...Opt) (*Hasher, error) {
	h := &Hasher{
		cost:    bcrypt.DefaultCost,
		workers: int64(runtime.NumCPU()),
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.cost < bcrypt.MinCost || h.cost > bcrypt.MaxCost {
		return nil, ErrInvalidCost
	}
	h.sem = semaphore.NewWeighted(h.workers)

	return h, nil
}

// Hash returns a salted bcrypt hash of plaintext.
func (h *Hasher) Hash(ctx context.Context, plaintext string) (string, error) {
	if err := checkLength(plaintext); err != nil {
		return "", err
	}

	var hashed []byte
	err := h.do(ctx, func() error {
		var err error
		hashed, err = bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
		return err
	})
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// Verify reports whether plaintext matches hash. A mismatch is not an error.
func (h *Hasher) Verify(ctx context.Context, plaintext, hash string) (bool, error) {
	if len(plaintext) > MaxLength {
		return false, nil
	}

	var match bool
	err := h.do(ctx, func() error {
		err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
		switch {
		case err == nil:
			match = true
			return nil
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return nil
		default:
			return errors.Join(ErrMalformedHash, err)
		}
	})
	if err != nil {
		return false, err
	}

	return match, nil
}

// do runs fn on a worker slot and waits for it or for ctx.
// An abandoned fn still runs to completion and frees its slot.
func (h *Hasher) do(ctx context.Context, fn func() error) error {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		defer h.sem.Release(1)
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func checkLength(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	if len(plaintext) > MaxLength {
		return ErrPasswordTooLong
	}
	return nil
}
