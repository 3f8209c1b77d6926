package branch_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lpp/internal/branch"
)

type pos struct {
	At int
}

type counterRoot struct {
	committed pos
	fail      error
	reported  []error
}

func (r *counterRoot) BranchData() pos { return r.committed }

func (r *counterRoot) CommitBranch(p pos) error {
	if r.fail != nil {
		return r.fail
	}
	r.committed = p
	return nil
}

func (r *counterRoot) ReportError(err error) { r.reported = append(r.reported, err) }

// advance consumes n positions and succeeds when want is true.
func advance(n int, want bool) branch.Rule[pos, int] {
	return func(b *branch.Branch[pos]) (int, bool) {
		b.Data().At += n
		return b.Data().At, want
	}
}

func TestChildSeesParentData(t *testing.T) {
	root := &counterRoot{committed: pos{At: 3}}
	b := branch.Open[pos](root)
	assert.Equal(t, 3, b.Data().At)

	b.Data().At = 5
	child := b.Child()
	assert.Equal(t, 5, child.Data().At)
	assert.Equal(t, 1, child.Depth())
	assert.Equal(t, 2, child.Child().Depth())
}

func TestUncommittedChildLeavesParentUntouched(t *testing.T) {
	root := &counterRoot{}
	b := branch.Open[pos](root)

	child := b.Child()
	child.Data().At = 10
	assert.Equal(t, 0, b.Data().At)
	assert.Equal(t, 0, root.committed.At)
}

func TestCommitPropagatesOneLevel(t *testing.T) {
	root := &counterRoot{}
	b := branch.Open[pos](root)

	child := b.Child()
	grandchild := child.Child()
	grandchild.Data().At = 4

	require.NoError(t, grandchild.Commit())
	assert.Equal(t, 4, child.Data().At)
	assert.Equal(t, 0, b.Data().At)

	require.NoError(t, child.Commit())
	assert.Equal(t, 4, b.Data().At)
	assert.Equal(t, 0, root.committed.At)

	require.NoError(t, b.Commit())
	assert.Equal(t, 4, root.committed.At)
}

func TestDoubleCommit(t *testing.T) {
	root := &counterRoot{}
	child := branch.Open[pos](root).Child()

	require.NoError(t, child.Commit())
	assert.True(t, child.Committed())
	assert.ErrorIs(t, child.Commit(), branch.ErrAlreadyCommitted)
}

func TestRootCommitFailure(t *testing.T) {
	boom := errors.New("disk full")
	root := &counterRoot{fail: boom}
	b := branch.Open[pos](root)
	b.Data().At = 2

	err := b.Commit()
	var commitErr *branch.CommitError
	require.ErrorAs(t, err, &commitErr)
	assert.ErrorIs(t, err, boom)
	assert.False(t, b.Committed())
}

func TestScoped(t *testing.T) {
	root := &counterRoot{}
	b := branch.Open[pos](root)

	v, ok, err := branch.Scoped(b, advance(3, true))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, b.Data().At)

	_, ok, err = branch.Scoped(b, advance(7, false))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 3, b.Data().At, "failed attempt must not leak consumption")
}

func TestInspectCommitsIntoParentBranch(t *testing.T) {
	boom := errors.New("rejected")
	root := &counterRoot{fail: boom}
	top := branch.Open[pos](root)

	// children commit into their parent branch, never the root
	_, ok := branch.Inspect(top, advance(1, true))
	assert.True(t, ok)
	assert.Empty(t, root.reported)

	require.ErrorIs(t, top.Commit(), boom)
}

func TestFirstIsOrderedChoice(t *testing.T) {
	root := &counterRoot{}
	b := branch.Open[pos](root)

	v, ok := branch.First(b, advance(5, false), advance(2, true), advance(9, true))
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, b.Data().At)

	_, ok = branch.First(b, advance(1, false), advance(4, false))
	assert.False(t, ok)
	assert.Equal(t, 2, b.Data().At)
}

func TestManyStopsWithoutProgress(t *testing.T) {
	root := &counterRoot{}
	b := branch.Open[pos](root)

	calls := 0
	upTo3 := func(b *branch.Branch[pos]) (int, bool) {
		calls++
		if b.Data().At >= 3 {
			return 0, false
		}
		b.Data().At++
		return b.Data().At, true
	}
	assert.Equal(t, []int{1, 2, 3}, branch.Many(b, upTo3))
	assert.Equal(t, 4, calls)

	stuck := branch.Many(b, advance(0, true))
	assert.Empty(t, stuck)
}

func TestInspectReportsCommitErrorsToSink(t *testing.T) {
	root := &counterRoot{}
	b := branch.Open[pos](root)

	selfCommitting := func(child *branch.Branch[pos]) (int, bool) {
		child.Data().At = 4
		require.NoError(t, child.Commit())
		return child.Data().At, true
	}

	_, ok := branch.Inspect[pos, int](b, selfCommitting)
	assert.False(t, ok, "a failed commit counts as no match")
	require.Len(t, root.reported, 1)
	assert.ErrorIs(t, root.reported[0], branch.ErrAlreadyCommitted)
	assert.Equal(t, 4, b.Data().At, "the rule's own commit already landed")
}
