package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newNav(count *int, height int) *Service {
	s := NewService(nil)
	s.SetCountFunction(func() int { return *count })
	s.SetViewportHeight(height + chromeRows)
	return s
}

func TestNavigateClampsToList(t *testing.T) {
	count := 3
	s := newNav(&count, 10)

	s.Navigate(DirectionUp)
	assert.Equal(t, 0, s.GetCursor())

	s.Navigate(DirectionEnd)
	assert.Equal(t, 2, s.GetCursor())
	s.Navigate(DirectionDown)
	assert.Equal(t, 2, s.GetCursor())

	s.Navigate(DirectionHome)
	assert.Equal(t, 0, s.GetCursor())
}

func TestViewportFollowsCursor(t *testing.T) {
	count := 20
	s := newNav(&count, 5)

	s.MoveToIndex(7)
	assert.Equal(t, 3, s.GetViewportOffset())

	s.Navigate(DirectionPageUp)
	assert.Equal(t, 3, s.GetCursor())
	assert.Equal(t, 3, s.GetViewportOffset())

	s.Navigate(DirectionHome)
	assert.Equal(t, 0, s.GetViewportOffset())
}

func TestClampAfterShrink(t *testing.T) {
	count := 10
	s := newNav(&count, 5)
	s.MoveToIndex(9)

	count = 4
	s.Clamp()
	assert.Equal(t, 3, s.GetCursor())

	count = 0
	s.Clamp()
	assert.Equal(t, 0, s.GetCursor())
}

func TestResetReturnsToTop(t *testing.T) {
	count := 10
	s := newNav(&count, 3)
	s.MoveToIndex(8)
	s.Reset()
	assert.Equal(t, 0, s.GetCursor())
	assert.Equal(t, 0, s.GetViewportOffset())
}
