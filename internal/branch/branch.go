// Package branch provides speculative cursors over a shared resource.
//
// A Branch holds its own copy of the root's cursor data. Children start from
// their parent's current data and only affect the parent when committed, so
// abandoning a branch is a rollback. Cursor data is copied by value; keep it
// small.
package branch

import (
	"errors"
	"fmt"
)

// Root owns the committed cursor data that top-level branches start from and
// commit into.
type Root[D any] interface {
	BranchData() D
	CommitBranch(D) error
}

// ErrorSink is implemented by roots that collect errors raised while
// committing scoped branches.
type ErrorSink interface {
	ReportError(err error)
}

var ErrAlreadyCommitted = errors.New("branch already committed")

// CommitError wraps a failure returned by Root.CommitBranch.
type CommitError struct {
	Err error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("failed to commit branch to root: %v", e.Err)
}

func (e *CommitError) Unwrap() error { return e.Err }

type Branch[D any] struct {
	root      Root[D]
	parent    *Branch[D]
	data      D
	committed bool
	depth     int
}

// Open starts a top-level branch seeded from the root's baseline.
func Open[D any](root Root[D]) *Branch[D] {
	return &Branch[D]{root: root, data: root.BranchData()}
}

// Child starts a nested branch seeded from a copy of b's current data.
func (b *Branch[D]) Child() *Branch[D] {
	return &Branch[D]{
		root:   b.root,
		parent: b,
		data:   b.data,
		depth:  b.depth + 1,
	}
}

// Data returns the branch's own cursor. Mutations are invisible to the
// parent until Commit.
func (b *Branch[D]) Data() *D { return &b.data }

// Depth is 0 for a top-level branch and grows by one per Child.
func (b *Branch[D]) Depth() int { return b.depth }

func (b *Branch[D]) Committed() bool { return b.committed }

// Commit copies the branch data onto its parent, or onto the root for a
// top-level branch. A branch can be committed once.
func (b *Branch[D]) Commit() error {
	if b.committed {
		return ErrAlreadyCommitted
	}

	if b.parent != nil {
		b.parent.data = b.data
		b.committed = true
		return nil
	}

	if err := b.root.CommitBranch(b.data); err != nil {
		return &CommitError{Err: err}
	}
	b.committed = true
	return nil
}

// Rule parses a T at a branch. Returning false means the rule did not apply;
// the caller discards the branch.
type Rule[D, T any] func(*Branch[D]) (T, bool)

// Scoped runs f on a child of b. The child is committed when f succeeds and
// discarded otherwise. A failed commit is returned with ok set to false.
func Scoped[D, T any](b *Branch[D], f func(*Branch[D]) (T, bool)) (T, bool, error) {
	var zero T

	child := b.Child()
	v, ok := f(child)
	if !ok {
		return zero, false, nil
	}
	if err := child.Commit(); err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// Inspect runs rule in a scoped child of b. Commit errors are handed to the
// root when it is an ErrorSink, and count as a failed match. A child commit
// onto its parent only fails when the rule already committed the child
// itself.
func Inspect[D, T any](b *Branch[D], rule Rule[D, T]) (T, bool) {
	v, ok, err := Scoped[D, T](b, rule)
	if err != nil {
		if sink, isSink := b.root.(ErrorSink); isSink {
			sink.ReportError(err)
		}
	}
	return v, ok
}

// First tries each rule in order in its own scoped child and returns the
// first match.
func First[D, T any](b *Branch[D], rules ...Rule[D, T]) (T, bool) {
	for _, rule := range rules {
		if v, ok := Inspect[D, T](b, rule); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Many applies rule until it fails and returns every match. A match that
// leaves the cursor unchanged stops the loop.
func Many[D comparable, T any](b *Branch[D], rule Rule[D, T]) []T {
	var out []T
	for {
		before := b.data
		v, ok := Inspect[D, T](b, rule)
		if !ok || b.data == before {
			return out
		}
		out = append(out, v)
	}
}
