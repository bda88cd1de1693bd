package webservice

import (
	"encoding/json"
	"fmt"
)

// ParseFunc decodes a response body. A non-nil error is a decode failure.
type ParseFunc[T any] func(data []byte) (T, error)

// Resource describes a single network operation and how to decode its
// response into T. Resources perform no I/O and are safe to share.
type Resource[T any] struct {
	url    string
	method Method
	parse  ParseFunc[T]
}

// NewResource returns a GET resource decoded as JSON.
func NewResource[T any](url string) Resource[T] {
	return NewResourceWithMethod[T](url, MethodGet)
}

// NewResourceWithMethod returns a resource using method, decoded as JSON.
func NewResourceWithMethod[T any](url string, method Method) Resource[T] {
	return Resource[T]{
		url:    url,
		method: method,
		parse:  JSONParser[T](),
	}
}

// WithParser returns a copy of the resource that decodes with parse.
// A nil parse restores the JSON decoder.
func (r Resource[T]) WithParser(parse ParseFunc[T]) Resource[T] {
	if parse == nil {
		parse = JSONParser[T]()
	}
	r.parse = parse
	return r
}

// WithMethod returns a copy of the resource using method.
func (r Resource[T]) WithMethod(method Method) Resource[T] {
	r.method = method
	return r
}

// URL returns the absolute URL of the resource.
func (r Resource[T]) URL() string {
	return r.url
}

// Method returns the HTTP method of the resource.
func (r Resource[T]) Method() Method {
	return r.method
}

// Parse decodes data with the resource's decoder.
func (r Resource[T]) Parse(data []byte) (T, error) {
	if r.parse == nil {
		return JSONParser[T]()(data)
	}
	return r.parse(data)
}

// JSONParser decodes a JSON document into T.
func JSONParser[T any]() ParseFunc[T] {
	return func(data []byte) (T, error) {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return v, fmt.Errorf("webservice: decode json: %w", err)
		}
		return v, nil
	}
}

// RawParser returns the body bytes unchanged.
func RawParser() ParseFunc[[]byte] {
	return func(data []byte) ([]byte, error) {
		return cloneBytes(data), nil
	}
}

// StringParser returns the body as a string.
func StringParser() ParseFunc[string] {
	return func(data []byte) (string, error) {
		return string(data), nil
	}
}
