package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(content string) string {
	return `data: {"choices":[{"delta":{"content":"` + content + `"}}]}` + "\n"
}

func TestStreamDecoderSingleChunk(t *testing.T) {
	d := &StreamDecoder{}

	out := d.Feed([]byte(frame("hello") + frame("world") + "data: [DONE]\n"))
	require.Len(t, out, 2)
	assert.JSONEq(t, `{"choices":[{"delta":{"content":"hello"}}]}`, string(out[0]))
	assert.True(t, d.Done())
}

func TestStreamDecoderFrameSplitAcrossChunks(t *testing.T) {
	full := frame("مرحبا")

	for cut := 1; cut < len(full)-1; cut++ {
		d := &StreamDecoder{}
		first := d.Feed([]byte(full[:cut]))
		second := d.Feed([]byte(full[cut:]))

		got := append(first, second...)
		require.Len(t, got, 1, "cut at %d", cut)
		assert.JSONEq(t, `{"choices":[{"delta":{"content":"مرحبا"}}]}`, string(got[0]))
	}
}

func TestStreamDecoderSkipsCommentsAndBlankLines(t *testing.T) {
	d := &StreamDecoder{}

	out := d.Feed([]byte(": keep-alive\n\n" + frame("x") + "\r\n"))
	require.Len(t, out, 1)
}

func TestStreamDecoderHandlesCRLF(t *testing.T) {
	d := &StreamDecoder{}

	out := d.Feed([]byte("data: {\"choices\":[]}\r\ndata: [DONE]\r\n"))
	require.Len(t, out, 1)
	assert.True(t, d.Done())
}

func TestStreamDecoderSentinelWithSurroundingWhitespace(t *testing.T) {
	d := &StreamDecoder{}

	out := d.Feed([]byte(frame("a") + "data: [DONE] \n" + frame("late")))
	require.Len(t, out, 1)
	assert.True(t, d.Done())
}

func TestStreamDecoderSkipsWhitespaceOnlyLines(t *testing.T) {
	d := &StreamDecoder{}

	out := d.Feed([]byte("   \n\t\n" + frame("x") + "data: [DONE]\n"))
	require.Len(t, out, 1)
	assert.True(t, d.Done())
}

func TestStreamDecoderStopsAfterSentinel(t *testing.T) {
	d := &StreamDecoder{}

	out := d.Feed([]byte("data: [DONE]\n" + frame("late")))
	assert.Empty(t, out)
	assert.True(t, d.Done())
	assert.Empty(t, d.Feed([]byte(frame("more"))))
}

func TestStreamDecoderRebuffersPartialJSONLine(t *testing.T) {
	d := &StreamDecoder{}

	// terminated line whose payload is still invalid JSON: retried, not consumed
	out := d.Feed([]byte(`data: {"choices":[{"delta"` + "\n"))
	assert.Empty(t, out)

	// the decoder keeps the line buffered and the stream continues
	out = d.Feed([]byte(frame("next")))
	assert.Empty(t, out)
}

func TestStreamDecoderDropsUnterminatedTrailingLine(t *testing.T) {
	d := &StreamDecoder{}

	out := d.Feed([]byte(frame("a") + `data: {"choices":[{"delta":{"content":"trunc`))
	require.Len(t, out, 1)
	// no newline ever arrives; the fragment stays pending and is never emitted
	assert.False(t, d.Done())
}

func TestTranscriptBuilderMergesFragments(t *testing.T) {
	b := &TranscriptBuilder{}
	b.Append("user", "ما هي القوة؟")

	for _, p := range []string{
		`{"choices":[{"delta":{"content":"Hel"}}]}`,
		`{"choices":[{"delta":{"content":"lo"}}]}`,
		`{"choices":[{"delta":{"content":" world"}}]}`,
	} {
		b.Apply([]byte(p))
	}

	entries := b.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "user", entries[0].Role)
	assert.Equal(t, "assistant", entries[1].Role)
	assert.Equal(t, "Hello world", entries[1].Content)
	assert.Equal(t, "Hello world", b.AssistantText())
}

func TestTranscriptBuilderIgnoresOtherShapes(t *testing.T) {
	b := &TranscriptBuilder{}

	for _, p := range []string{
		`{}`,
		`{"choices":[]}`,
		`{"choices":[{"delta":{}}]}`,
		`{"id":"x","object":"chat.completion.chunk"}`,
		`[1,2,3]`,
	} {
		assert.Empty(t, b.Apply([]byte(p)), p)
	}
	assert.Empty(t, b.Entries())
}

func TestTranscriptBuilderOpensNewAssistantEntryAfterUserTurn(t *testing.T) {
	b := &TranscriptBuilder{}
	b.Append("user", "q1")
	b.Apply([]byte(`{"choices":[{"delta":{"content":"a1"}}]}`))
	b.Append("user", "q2")
	b.Apply([]byte(`{"choices":[{"delta":{"content":"a2"}}]}`))

	entries := b.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, "a1", entries[1].Content)
	assert.Equal(t, "a2", entries[3].Content)
}

func TestDecoderAndBuilderEndToEndChunked(t *testing.T) {
	stream := ": ping\n" +
		frame("الق") +
		frame("وة هي") +
		frame(" مؤثر خارجي") +
		"data: [DONE]\n"

	// feed in 3-byte chunks to exercise every boundary
	d := &StreamDecoder{}
	b := &TranscriptBuilder{}
	b.Append("user", "عرّف القوة")

	for i := 0; i < len(stream); i += 3 {
		end := i + 3
		if end > len(stream) {
			end = len(stream)
		}
		for _, p := range d.Feed([]byte(stream[i:end])) {
			b.Apply(p)
		}
	}

	require.True(t, d.Done())
	assert.Equal(t, "القوة هي مؤثر خارجي", b.AssistantText())
}
