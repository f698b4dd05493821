package token

import (
	"fmt"
	"hash/fnv"
	"slices"

	"github.com/vmihailenco/msgpack/v5"
)

// Input is an ordered, owned sequence of tokens. Its length, not its byte
// length, is the size of the testcase.
type Input[T Token[T]] struct {
	tokens []T
}

// NewInput creates an Input that takes ownership of tokens.
func NewInput[T Token[T]](tokens []T) *Input[T] {
	return &Input[T]{tokens: tokens}
}

// Tokens returns the token sequence. Elements may be assigned in place;
// use the Input methods to change its length.
func (in *Input[T]) Tokens() []T {
	return in.tokens
}

// Len returns the number of tokens.
func (in *Input[T]) Len() int {
	return len(in.tokens)
}

// Set replaces the token at index i.
func (in *Input[T]) Set(i int, tok T) {
	in.tokens[i] = tok
}

// Remove deletes the token at index and shifts later tokens left by one.
func (in *Input[T]) Remove(index int) T {
	tok := in.tokens[index]
	in.tokens = slices.Delete(in.tokens, index, index+1)

	return tok
}

// Truncate drops every token at or past index n.
func (in *Input[T]) Truncate(n int) {
	if n >= len(in.tokens) {
		return
	}

	clear(in.tokens[n:])
	in.tokens = in.tokens[:n]
}

// Append adds values at the end of the sequence.
func (in *Input[T]) Append(values ...T) {
	in.tokens = append(in.tokens, values...)
}

// RemoveRange removes [start, end) by moving the suffix into the gap and
// truncating to len-(end-start). It panics when the range is invalid.
func (in *Input[T]) RemoveRange(start, end int) {
	n := len(in.tokens)
	if start < 0 || start > end || end > n {
		panic(fmt.Sprintf("token: invalid range [%d, %d) for length %d", start, end, n))
	}

	copy(in.tokens[start:], in.tokens[end:])
	in.Truncate(n - (end - start))
}

// InsertAt inserts values before index i, shifting the suffix right.
func (in *Input[T]) InsertAt(i int, values ...T) {
	in.tokens = slices.Insert(in.tokens, i, values...)
}

// ReplaceRange replaces [start, end) with values.
func (in *Input[T]) ReplaceRange(start, end int, values ...T) {
	in.tokens = slices.Replace(in.tokens, start, end, values...)
}

// Clone returns a deep copy of the sequence.
func (in *Input[T]) Clone() *Input[T] {
	return &Input[T]{tokens: slices.Clone(in.tokens)}
}

// Bytes lowers the sequence to raw bytes by concatenating every token's
// encoding in order.
func (in *Input[T]) Bytes() []byte {
	size := 0
	for _, tok := range in.tokens {
		size += len(tok.Bytes())
	}

	out := make([]byte, 0, size)
	for _, tok := range in.tokens {
		out = append(out, tok.Bytes()...)
	}

	return out
}

// Name returns a stable content-addressed name: FNV-1a over the
// concatenated token bytes, as 16 hex digits.
func (in *Input[T]) Name() string {
	h := fnv.New64a()
	for _, tok := range in.tokens {
		_, _ = h.Write(tok.Bytes())
	}

	return fmt.Sprintf("%016x", h.Sum64())
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (in *Input[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(in.tokens)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (in *Input[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	var tokens []T
	if err := dec.Decode(&tokens); err != nil {
		return err
	}

	in.tokens = tokens

	return nil
}

// Marshal serialises an Input with msgpack.
func Marshal[T Token[T]](in *Input[T]) ([]byte, error) {
	data, err := msgpack.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("marshal tokens: %w", err)
	}

	return data, nil
}

// Unmarshal decodes an Input produced by Marshal.
func Unmarshal[T Token[T]](data []byte) (*Input[T], error) {
	in := &Input[T]{}
	if err := msgpack.Unmarshal(data, in); err != nil {
		return nil, fmt.Errorf("unmarshal tokens: %w", err)
	}

	return in, nil
}
