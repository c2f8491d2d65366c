package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextBufferRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"one",
		"one\ntwo\n",
		"func main() {\n\tprintln(1)\n}\n",
		"a\x00b\x1bc\x0cd\n",
		"\n\n",
	}

	for _, text := range tests {
		b := NewTextBuffer()
		b.SetText(text)
		assert.Equal(t, text, b.Text())
	}
}

func TestTextBufferInsert(t *testing.T) {
	b := NewTextBuffer()
	b.SetText("ac")

	b.MoveRight()
	b.InsertRunes([]rune("b"))
	assert.Equal(t, "abc", b.Text())
	assert.Equal(t, 2, b.Col())

	b.InsertRunes([]rune("\t1\n2"))
	assert.Equal(t, "ab\t1\n2c", b.Text())
	assert.Equal(t, 1, b.Row())
	assert.Equal(t, 1, b.Col())
}

func TestTextBufferDeleteBackward(t *testing.T) {
	b := NewTextBuffer()
	b.SetText("ab\ncd")

	assert.False(t, b.DeleteBackward(), "nothing before the start")

	b.MoveDown(1)
	assert.True(t, b.DeleteBackward())
	assert.Equal(t, "abcd", b.Text())
	assert.Equal(t, 0, b.Row())
	assert.Equal(t, 2, b.Col())

	assert.True(t, b.DeleteBackward())
	assert.Equal(t, "acd", b.Text())
	assert.Equal(t, 1, b.Col())
}

func TestTextBufferDeleteForward(t *testing.T) {
	b := NewTextBuffer()
	b.SetText("ab\ncd")

	b.LineEnd()
	assert.True(t, b.DeleteForward())
	assert.Equal(t, "abcd", b.Text())

	b.LineEnd()
	assert.False(t, b.DeleteForward(), "nothing after the end")

	b.LineStart()
	assert.True(t, b.DeleteForward())
	assert.Equal(t, "bcd", b.Text())
}

func TestTextBufferMovement(t *testing.T) {
	b := NewTextBuffer()
	b.SetText("long line\nab\nanother line")

	b.LineEnd()
	assert.Equal(t, 9, b.Col())

	b.MoveDown(1)
	assert.Equal(t, 2, b.Col(), "clamped to the short line")

	b.MoveDown(1)
	assert.Equal(t, 9, b.Col(), "goal column comes back")

	b.MoveDown(5)
	assert.Equal(t, 2, b.Row())

	b.MoveUp(10)
	assert.Equal(t, 0, b.Row())

	b.LineStart()
	b.MoveLeft()
	assert.Equal(t, 0, b.Col(), "cannot move before the start")

	b.LineEnd()
	b.MoveRight()
	assert.Equal(t, 1, b.Row(), "right at the end wraps")
	assert.Equal(t, 0, b.Col())

	b.MoveLeft()
	assert.Equal(t, 0, b.Row())
	assert.Equal(t, 9, b.Col())
}

func TestTextBufferReset(t *testing.T) {
	b := NewTextBuffer()
	b.SetText("x\ny")
	b.MoveDown(1)

	b.Reset()
	assert.Equal(t, "", b.Text())
	assert.Equal(t, 1, b.LineCount())
	assert.Equal(t, 0, b.Row())
	assert.Nil(t, b.Line(5))
}
