package webservice

import "net/http"

// Method is the HTTP verb of a Resource. POST and PUT carry a body; GET and
// DELETE never do. The zero value is GET.
type Method struct {
	name string
	body []byte
	// hasBody distinguishes an empty POST/PUT payload from no payload.
	hasBody bool
}

var (
	// MethodGet fetches a resource.
	MethodGet = Method{name: http.MethodGet}
	// MethodDelete deletes a resource.
	MethodDelete = Method{name: http.MethodDelete}
)

// Post returns a POST method carrying body. The slice is copied.
func Post(body []byte) Method {
	return Method{name: http.MethodPost, body: cloneBytes(body), hasBody: true}
}

// Put returns a PUT method carrying body. The slice is copied.
func Put(body []byte) Method {
	return Method{name: http.MethodPut, body: cloneBytes(body), hasBody: true}
}

// Name returns the canonical uppercase verb sent on the wire.
func (m Method) Name() string {
	if m.name == "" {
		return http.MethodGet
	}
	return m.name
}

// String implements fmt.Stringer.
func (m Method) String() string {
	return m.Name()
}

// HasBody reports whether the method carries a request payload.
func (m Method) HasBody() bool {
	return m.hasBody
}

// Body returns a copy of the payload, or nil for GET and DELETE.
func (m Method) Body() []byte {
	if !m.hasBody {
		return nil
	}
	return cloneBytes(m.body)
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
