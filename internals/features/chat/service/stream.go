package service

import (
	"encoding/json"
	"strings"
)

const doneSentinel = "[DONE]"

// StreamDecoder turns arbitrarily-chunked SSE bytes into data-frame payloads.
// It is line-buffered: a frame split across chunks is held in the pending
// buffer until its newline arrives. Comment lines (":" prefix) and blank
// keep-alive lines are skipped, and the "[DONE]" sentinel ends the stream.
//
// A payload that fails JSON validation is pushed back onto the buffer and
// processing stops for this chunk, so a frame whose bytes straddle a chunk
// boundary is retried once the rest arrives. Whatever sits unterminated in
// the buffer when the upstream closes is discarded with it.
type StreamDecoder struct {
	pending string
	done    bool
}

// Feed consumes one network chunk and returns the complete JSON payloads it
// unlocked, in order. After the sentinel, Feed returns nothing.
func (d *StreamDecoder) Feed(chunk []byte) [][]byte {
	if d.done {
		return nil
	}
	d.pending += string(chunk)

	var out [][]byte
	for {
		idx := strings.IndexByte(d.pending, '\n')
		if idx < 0 {
			break
		}
		line := strings.TrimSuffix(d.pending[:idx], "\r")
		d.pending = d.pending[idx+1:]

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, ":") {
			continue
		}
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		payload := strings.TrimSpace(line[len("data: "):])
		if payload == doneSentinel {
			d.done = true
			return out
		}
		if !json.Valid([]byte(payload)) {
			// incomplete frame: put the line back and wait for more bytes
			d.pending = line + "\n" + d.pending
			break
		}
		out = append(out, []byte(payload))
	}
	return out
}

// Done reports whether the terminator frame was seen.
func (d *StreamDecoder) Done() bool {
	return d.done
}

// ChatEntry is one role-tagged message in a transcript.
type ChatEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type deltaPayload struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// TranscriptBuilder folds decoded delta payloads into a message list. There
// is at most one open assistant entry: a content fragment extends the last
// entry when it is already an assistant one, otherwise it opens a new entry.
type TranscriptBuilder struct {
	entries []ChatEntry
}

// Append adds a finished message (typically the user turns) verbatim.
func (b *TranscriptBuilder) Append(role, content string) {
	b.entries = append(b.entries, ChatEntry{Role: role, Content: content})
}

// Apply extracts the delta content from one frame payload and merges it into
// the transcript. Payloads of any other shape are ignored. Returns the
// fragment that was applied ("" when the payload carried none).
func (b *TranscriptBuilder) Apply(payload []byte) string {
	var p deltaPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return ""
	}
	if len(p.Choices) == 0 || p.Choices[0].Delta.Content == "" {
		return ""
	}
	fragment := p.Choices[0].Delta.Content

	if n := len(b.entries); n > 0 && b.entries[n-1].Role == "assistant" {
		b.entries[n-1].Content += fragment
	} else {
		b.entries = append(b.entries, ChatEntry{Role: "assistant", Content: fragment})
	}
	return fragment
}

// Entries returns the transcript built so far.
func (b *TranscriptBuilder) Entries() []ChatEntry {
	return b.entries
}

// AssistantText returns the content of the open assistant entry, if any.
func (b *TranscriptBuilder) AssistantText() string {
	if n := len(b.entries); n > 0 && b.entries[n-1].Role == "assistant" {
		return b.entries[n-1].Content
	}
	return ""
}
