package root

// ContentType is the media type of the greeting body.
const ContentType = "text/plain; charset=utf-8"

// Output is the raw greeting response. Huma writes a []byte body verbatim.
type Output struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}
