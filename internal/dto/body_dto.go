package dto

// Body is an undecoded request body. Raw fails with a media type error when
// the request does not carry a JSON document.
type Body interface {
	Raw() ([]byte, error)
}

// BytesBody is a Body that is already known to be JSON.
type BytesBody []byte

func (b BytesBody) Raw() ([]byte, error) {
	return b, nil
}
