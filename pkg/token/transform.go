package token

// RawInput is the byte-oriented testcase representation the core lexes from
// and lowers back into.
type RawInput interface {
	Bytes() []byte
}

// BytesInput is a plain byte buffer testcase.
type BytesInput struct {
	data []byte
}

// NewBytesInput wraps data.
func NewBytesInput(data []byte) *BytesInput {
	return &BytesInput{data: data}
}

// Bytes implements RawInput.
func (b *BytesInput) Bytes() []byte {
	return b.data
}

// Lowered is the result of lowering an Input for execution. Post keeps the
// structured form so that it, and not a re-lex of Raw, is what gets attached
// back to the corpus.
type Lowered[T Token[T]] struct {
	Raw  *BytesInput
	Post *Input[T]
}

// Lift lexes a raw testcase into a token Input.
func Lift[T Token[T]](lexer Lexer[T], raw RawInput) *Input[T] {
	return NewInput(lexer.Lex(raw.Bytes()))
}

// Lower builds a fresh byte buffer from in and carries in along as the post
// state.
func Lower[T Token[T]](in *Input[T]) Lowered[T] {
	return Lowered[T]{
		Raw:  NewBytesInput(in.Bytes()),
		Post: in,
	}
}
