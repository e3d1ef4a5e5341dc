package move_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvplan/domain"
	"github.com/katalvlaran/lvplan/move"
)

type lesson struct {
	name string
	room string
	tags []string
}

func (l *lesson) String() string { return l.name }

var roomVar = domain.Variable[*lesson, string]{
	Name:  "room",
	Get:   func(l *lesson) string { return l.room },
	Set:   func(l *lesson, r string) { l.room = r },
	Range: func(*lesson) []string { return []string{"A", "B"} },
}

var tagsVar = domain.Variable[*lesson, []string]{
	Name: "tags",
	Get:  func(l *lesson) []string { return l.tags },
	Set:  func(l *lesson, t []string) { l.tags = t },
}

func TestChangeMove_DoAndUndo(t *testing.T) {
	l := &lesson{name: "math", room: "A"}
	m := move.NewChangeMove(roomVar, l, "B")

	require.True(t, m.IsDoable())
	undo := m.Do()
	assert.Equal(t, "B", l.room)
	assert.False(t, m.IsDoable(), "value already assigned")

	undo.Do()
	assert.Equal(t, "A", l.room)
	assert.Equal(t, "math {room -> B}", m.String())
}

func TestChangeMove_NonComparableValues(t *testing.T) {
	l := &lesson{name: "art", tags: []string{"x"}}

	assert.False(t, move.NewChangeMove(tagsVar, l, []string{"x"}).IsDoable())
	assert.True(t, move.NewChangeMove(tagsVar, l, []string{"y"}).IsDoable())
}

func TestChangeMove_InterfaceValues(t *testing.T) {
	type holder struct{ v any }
	anyVar := domain.Variable[*holder, any]{
		Name: "v",
		Get:  func(h *holder) any { return h.v },
		Set:  func(h *holder, v any) { h.v = v },
	}
	h := &holder{}

	assert.False(t, move.NewChangeMove[*holder, any](anyVar, h, nil).IsDoable())
	assert.True(t, move.NewChangeMove[*holder, any](anyVar, h, 3).IsDoable())

	h.v = []int{1}
	assert.False(t, move.NewChangeMove[*holder, any](anyVar, h, []int{1}).IsDoable())
}
